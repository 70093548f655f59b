// internal/domain/session/session.go
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/product"
	"github.com/your-org/storefront/internal/domain/user"
	"github.com/your-org/storefront/internal/domain/wishlist"
)

// ErrAuthRequired signals a mutation that needs an authenticated identity.
// Callers surface it as a prompt to log in; the mutation itself is a no-op
// and is never queued for replay.
var ErrAuthRequired = errors.New("authentication required")

// RecordStore is the slice of the resource store the synchronizer depends
// on: the per-identity record read issued on identity transitions, and the
// partial update carrying reconciled cart/wishlist state.
type RecordStore interface {
	GetUser(ctx context.Context, id string) (*user.User, error)
	PatchUser(ctx context.Context, id string, fields map[string]any) error
}

// Session holds the authoritative in-memory view of one identity's
// {identity, cart, wishlist}. Mutations apply to memory synchronously,
// mirror to the durable cache in the same call, and schedule a debounced
// reconciliation write to the resource store. The remote record is the
// long-lived source of truth; this is a working copy.
type Session struct {
	mu       sync.Mutex
	identity *user.Identity
	cart     cart.Cart
	wishlist wishlist.Wishlist

	store   RecordStore
	cache   Cache
	sched   *Scheduler
	log     *logrus.Logger
	timeout time.Duration
}

func newSession(store RecordStore, cache Cache, log *logrus.Logger, debounce, timeout time.Duration) *Session {
	s := &Session{
		cart:     cart.Cart{},
		wishlist: wishlist.Wishlist{},
		store:    store,
		cache:    cache,
		log:      log,
		timeout:  timeout,
	}
	s.sched = NewScheduler(debounce, s.reconcile)
	return s
}

// Identity returns a copy of the authenticated identity, or false when the
// session is anonymous
func (s *Session) Identity() (user.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return user.Identity{}, false
	}
	return *s.identity, true
}

// Cart returns a copy of the current cart
func (s *Session) Cart() cart.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Clone()
}

// Wishlist returns a copy of the current wishlist
func (s *Session) Wishlist() wishlist.Wishlist {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.Clone()
}

// AddToCart upserts a product line, raising the quantity when the product
// is already present. Requires an authenticated identity.
func (s *Session) AddToCart(p product.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.identity == nil {
		return ErrAuthRequired
	}

	s.cart.Add(p)
	s.afterMutationLocked()
	return nil
}

// RemoveFromCart drops a cart line; removing an absent id is a no-op
func (s *Session) RemoveFromCart(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cart.Remove(productID) {
		return
	}
	s.afterMutationLocked()
}

// SetCartQuantity sets an existing line's quantity, clamped to a minimum
// of 1. Lines that do not exist are left untouched.
func (s *Session) SetCartQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cart.SetQuantity(productID, quantity) {
		return
	}
	s.afterMutationLocked()
}

// AdjustCartQuantity changes an existing line's quantity by delta, clamped
// to a minimum of 1
func (s *Session) AdjustCartQuantity(productID string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cart.Adjust(productID, delta) {
		return
	}
	s.afterMutationLocked()
}

// ClearCart empties the cart
func (s *Session) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Clear()
	s.afterMutationLocked()
}

// AddToWishlist inserts a product snapshot, unique by product id.
// Requires an authenticated identity.
func (s *Session) AddToWishlist(p product.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.identity == nil {
		return ErrAuthRequired
	}

	if !s.wishlist.Add(p) {
		return nil
	}
	s.afterMutationLocked()
	return nil
}

// RemoveFromWishlist drops a product; absent ids are a no-op
func (s *Session) RemoveFromWishlist(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.wishlist.Remove(productID) {
		return
	}
	s.afterMutationLocked()
}

// ClearWishlist empties the wishlist
func (s *Session) ClearWishlist() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.wishlist.Clear()
	s.afterMutationLocked()
}

// afterMutationLocked mirrors state into the durable cache on the same
// call and schedules the debounced reconciliation. Anonymous sessions have
// nothing to mirror or reconcile.
func (s *Session) afterMutationLocked() {
	if s.identity == nil {
		return
	}
	s.mirrorLocked()
	s.sched.Schedule()
}

// mirrorLocked overwrites both durable-cache entries with the current
// state. Cache failures are logged and otherwise ignored; the cache is a
// convenience copy, not authoritative.
func (s *Session) mirrorLocked() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	snap := &IdentitySnapshot{
		Identity: *s.identity,
		Wishlist: s.wishlist.Clone(),
	}
	if err := s.cache.PutIdentity(ctx, s.identity.ID, snap); err != nil {
		s.log.WithError(err).WithField("user_id", s.identity.ID).Warn("Failed to mirror identity snapshot to cache")
	}
	if err := s.cache.PutCart(ctx, s.identity.ID, s.cart.Clone()); err != nil {
		s.log.WithError(err).WithField("user_id", s.identity.ID).Warn("Failed to mirror cart snapshot to cache")
	}
}

// reconcile sends the current in-memory cart and wishlist (not a diff) as
// a partial update to the remote record. Last write wins; failures are
// logged and dropped; the next mutation's reconciliation is the only
// retry path.
func (s *Session) reconcile() {
	s.mu.Lock()
	if s.identity == nil {
		s.mu.Unlock()
		return
	}
	userID := s.identity.ID
	fields := map[string]any{
		"cart":     s.cart.Clone(),
		"wishlist": s.wishlist.Clone(),
	}
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.store.PatchUser(ctx, userID, fields); err != nil {
		s.log.WithError(err).WithField("user_id", userID).Warn("Failed to reconcile session state with store")
		return
	}
	s.log.WithField("user_id", userID).Debug("Reconciled session state with store")
}

// signOut transitions to anonymous: pending reconciliation is cancelled,
// both cache entries are purged, and the remote record is left as last
// reconciled. Nothing is merged back into any guest state.
func (s *Session) signOut(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sched.Stop()
	if s.identity != nil {
		if err := s.cache.Purge(ctx, s.identity.ID); err != nil {
			s.log.WithError(err).WithField("user_id", s.identity.ID).Warn("Failed to purge session cache")
		}
	}
	s.identity = nil
	s.cart = cart.Cart{}
	s.wishlist = wishlist.Wishlist{}
}
