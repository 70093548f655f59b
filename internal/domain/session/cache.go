// internal/domain/session/cache.go
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/user"
	"github.com/your-org/storefront/internal/domain/wishlist"
)

// IdentitySnapshot is the durable-cache copy of the identity plus wishlist,
// mirroring the cart snapshot kept under its own key
type IdentitySnapshot struct {
	Identity user.Identity     `json:"identity"`
	Wishlist wishlist.Wishlist `json:"wishlist"`
}

// Cache is the durable local mirror of session state. It exists for
// warm-restart continuity only: a miss (or any failure, surfaced as an
// error the caller logs and treats as a miss) is never fatal.
type Cache interface {
	GetIdentity(ctx context.Context, userID string) (*IdentitySnapshot, error)
	PutIdentity(ctx context.Context, userID string, snap *IdentitySnapshot) error
	GetCart(ctx context.Context, userID string) (cart.Cart, error)
	PutCart(ctx context.Context, userID string, c cart.Cart) error
	Purge(ctx context.Context, userID string) error
}

// cacheTTL bounds how long an orphaned snapshot survives a session that
// never signed out
const cacheTTL = 30 * 24 * time.Hour

// RedisCache mirrors session state into Redis under two independent keys
// per identity: one for the identity+wishlist snapshot, one for the cart.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a Redis-backed session cache
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func identityKey(userID string) string {
	return fmt.Sprintf("session:user:%s", userID)
}

func cartKey(userID string) string {
	return fmt.Sprintf("session:cart:%s", userID)
}

// GetIdentity reads the cached identity snapshot; a missing key returns
// (nil, nil)
func (r *RedisCache) GetIdentity(ctx context.Context, userID string) (*IdentitySnapshot, error) {
	data, err := r.client.Get(ctx, identityKey(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	var snap IdentitySnapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil, fmt.Errorf("corrupt identity snapshot: %w", err)
	}
	return &snap, nil
}

// PutIdentity overwrites the cached identity snapshot
func (r *RedisCache) PutIdentity(ctx context.Context, userID string, snap *IdentitySnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, identityKey(userID), data, cacheTTL).Err()
}

// GetCart reads the cached cart; a missing key returns an empty cart
func (r *RedisCache) GetCart(ctx context.Context, userID string) (cart.Cart, error) {
	data, err := r.client.Get(ctx, cartKey(userID)).Result()
	if err == redis.Nil {
		return cart.Cart{}, nil
	} else if err != nil {
		return nil, err
	}

	var c cart.Cart
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, fmt.Errorf("corrupt cart snapshot: %w", err)
	}
	return c, nil
}

// PutCart overwrites the cached cart
func (r *RedisCache) PutCart(ctx context.Context, userID string, c cart.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, cartKey(userID), data, cacheTTL).Err()
}

// Purge removes both cache keys for the identity
func (r *RedisCache) Purge(ctx context.Context, userID string) error {
	return r.client.Del(ctx, identityKey(userID), cartKey(userID)).Err()
}
