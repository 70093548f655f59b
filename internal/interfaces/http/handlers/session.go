// internal/interfaces/http/handlers/session.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/domain/session"
	"github.com/your-org/storefront/internal/domain/user"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
)

// sessionFromContext resolves the request's session. Authenticated
// requests get the identity's live session, re-established from the
// durable cache and the resource store after a restart. Anonymous requests
// share the anonymous session, whose add mutations fail with
// session.ErrAuthRequired; the bool reports which case applies.
func sessionFromContext(c *gin.Context, sessions *session.Manager) (*session.Session, bool) {
	claims, ok := middleware.GetClaimsFromContext(c)
	if !ok {
		return sessions.Anonymous(), false
	}

	ident := user.Identity{
		ID:      claims.UserID,
		Email:   claims.Email,
		IsAdmin: claims.IsAdmin,
	}
	return sessions.Resume(c.Request.Context(), ident), true
}
