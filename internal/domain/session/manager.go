// internal/domain/session/manager.go
package session

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/user"
)

// Manager owns one Session per authenticated identity plus a shared
// anonymous session. It is constructed once per application instance and
// injected into the HTTP layer; views never talk to the resource store
// directly for cart or wishlist state.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	anon     *Session

	store    RecordStore
	cache    Cache
	log      *logrus.Logger
	debounce time.Duration
	timeout  time.Duration
}

// NewManager creates a session manager
func NewManager(store RecordStore, cache Cache, log *logrus.Logger, cfg *config.Config) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		anon:     newSession(store, cache, log, cfg.Store.SyncDebounce, cfg.Store.RequestTimeout),
		store:    store,
		cache:    cache,
		log:      log,
		debounce: cfg.Store.SyncDebounce,
		timeout:  cfg.Store.RequestTimeout,
	}
}

// Anonymous returns the shared unauthenticated session. Its collections
// are always empty and its add mutations fail with ErrAuthRequired.
func (m *Manager) Anonymous() *Session {
	return m.anon
}

// Begin performs the Anonymous→Authenticated transition for ident: a
// single read of the remote record replaces any local state (remote wins
// over stale cache, nothing is merged). A failed read falls open to empty
// collections and is only logged. Any previous session for the identity is
// replaced.
func (m *Manager) Begin(ctx context.Context, ident user.Identity) *Session {
	s := newSession(m.store, m.cache, m.log, m.debounce, m.timeout)
	s.identity = &ident

	if rec, err := m.store.GetUser(ctx, ident.ID); err != nil {
		m.log.WithError(err).WithField("user_id", ident.ID).Warn("Failed to load user record, starting with empty session")
	} else {
		s.identity = &rec.Identity
		s.cart = rec.Cart.Clone()
		s.wishlist = rec.Wishlist.Clone()
	}

	s.mu.Lock()
	s.mirrorLocked()
	s.mu.Unlock()

	m.mu.Lock()
	if prev, ok := m.sessions[ident.ID]; ok {
		prev.sched.Stop()
	}
	m.sessions[ident.ID] = s
	m.mu.Unlock()

	return s
}

// Resume returns the live session for ident, re-establishing it after a
// restart when necessary. The durable cache seeds the identity before the
// remote fetch; the fetched record still wins.
func (m *Manager) Resume(ctx context.Context, ident user.Identity) *Session {
	m.mu.Lock()
	if s, ok := m.sessions[ident.ID]; ok {
		m.mu.Unlock()
		return s
	}
	m.mu.Unlock()

	if snap, err := m.cache.GetIdentity(ctx, ident.ID); err != nil {
		m.log.WithError(err).WithField("user_id", ident.ID).Warn("Failed to read cached identity, treating as miss")
	} else if snap != nil {
		ident = snap.Identity
	}

	return m.Begin(ctx, ident)
}

// SignOut tears the identity's session down to anonymous and purges its
// durable cache entries. The remote record is left as last reconciled; no
// remote call is made.
func (m *Manager) SignOut(ctx context.Context, userID string) {
	m.mu.Lock()
	s, ok := m.sessions[userID]
	delete(m.sessions, userID)
	m.mu.Unlock()

	if ok {
		s.signOut(ctx)
		return
	}
	// No live session; still drop any cached snapshots.
	if err := m.cache.Purge(ctx, userID); err != nil {
		m.log.WithError(err).WithField("user_id", userID).Warn("Failed to purge session cache")
	}
}
