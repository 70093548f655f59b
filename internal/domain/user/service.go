// internal/domain/user/service.go
package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/order"
	"github.com/your-org/storefront/internal/domain/wishlist"
	"github.com/your-org/storefront/internal/pkg/auth"
)

// ErrAccountBlocked is returned when a blocked identity attempts to log in
var ErrAccountBlocked = fmt.Errorf("account is blocked")

// Directory is the slice of the resource store used for identity lookups.
// The credential comparison happens store-side; CheckCredentials returns
// the zero-or-one matching record.
type Directory interface {
	FindByEmail(ctx context.Context, email string) ([]User, error)
	CheckCredentials(ctx context.Context, email, password string) (*User, error)
	CreateUser(ctx context.Context, u *User) (*User, error)
}

// Service handles registration and login
type Service struct {
	directory       Directory
	config          *config.Config
	passwordManager *auth.PasswordManager
	jwtManager      *auth.JWTManager
	log             *logrus.Logger
}

// NewService creates a new user service
func NewService(directory Directory, cfg *config.Config, log *logrus.Logger) *Service {
	return &Service{
		directory:       directory,
		config:          cfg,
		passwordManager: auth.NewPasswordManager(cfg),
		jwtManager:      auth.NewJWTManager(cfg),
		log:             log,
	}
}

// RegisterRequest represents user registration data
type RegisterRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// LoginRequest represents user login data
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// Register creates a new identity record with empty cart, wishlist and
// order history
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*User, error) {
	// Validate password confirmation
	if req.Password != req.ConfirmPassword {
		return nil, fmt.Errorf("passwords do not match")
	}

	if err := s.passwordManager.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Check if the email is already taken
	existing, err := s.directory.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing users: %w", err)
	}
	if len(existing) > 0 {
		return nil, fmt.Errorf("user with this email already exists")
	}

	newUser := &User{
		Identity: Identity{
			Name:    strings.TrimSpace(req.Name),
			Email:   email,
			IsBlock: false,
		},
		Password: req.Password,
		Wishlist: wishlist.Wishlist{},
		Cart:     cart.Cart{},
		Orders:   []order.Order{},
	}

	created, err := s.directory.CreateUser(ctx, newUser)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.WithField("user_id", created.ID).Info("User registered")

	// Never echo credentials back
	created.Password = ""
	return created, nil
}

// Login authenticates a user against the resource store. Blocked accounts
// are refused a session outright.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	match, err := s.directory.CheckCredentials(ctx, email, req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to verify credentials: %w", err)
	}
	if match == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if match.IsBlock {
		s.log.WithField("user_id", match.ID).Warn("Blocked account attempted login")
		return nil, ErrAccountBlocked
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(match.ID, match.Email, match.IsAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(match.ID, match.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	match.Password = ""

	return &AuthResponse{
		User:         match,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.config.JWT.AccessTokenExpiry.Seconds()),
	}, nil
}

// Refresh exchanges a valid refresh token for a new access token
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	claims, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	// Re-check the record so a block applied since issuance sticks
	records, err := s.directory.FindByEmail(ctx, claims.Email)
	if err != nil || len(records) == 0 {
		return nil, fmt.Errorf("account no longer exists")
	}
	rec := records[0]
	if rec.IsBlock {
		return nil, ErrAccountBlocked
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(rec.ID, rec.Email, rec.IsAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	rec.Password = ""

	return &AuthResponse{
		User:        &rec,
		AccessToken: accessToken,
		ExpiresIn:   int64(s.config.JWT.AccessTokenExpiry.Seconds()),
	}, nil
}
