package session

import (
	"context"
	"sync"

	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/user"
)

// MockRecordStore implements RecordStore for testing. It is safe for
// concurrent use since reconciliation runs on the debounce timer goroutine.
type MockRecordStore struct {
	mu sync.Mutex

	User     *user.User
	GetErr   error
	PatchErr error

	GetCalls int
	Patches  []map[string]any
}

func (m *MockRecordStore) GetUser(_ context.Context, _ string) (*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetCalls++
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	u := *m.User
	return &u, nil
}

func (m *MockRecordStore) PatchUser(_ context.Context, _ string, fields map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PatchErr != nil {
		return m.PatchErr
	}
	m.Patches = append(m.Patches, fields)
	return nil
}

func (m *MockRecordStore) SetPatchErr(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PatchErr = err
}

func (m *MockRecordStore) PatchCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Patches)
}

func (m *MockRecordStore) LastPatch() map[string]any {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Patches) == 0 {
		return nil
	}
	return m.Patches[len(m.Patches)-1]
}

// MockCache implements Cache for testing
type MockCache struct {
	mu sync.Mutex

	Identities map[string]*IdentitySnapshot
	Carts      map[string]cart.Cart

	GetIdentityErr error
	PutErr         error
	PurgeErr       error

	Purged []string
}

func NewMockCache() *MockCache {
	return &MockCache{
		Identities: make(map[string]*IdentitySnapshot),
		Carts:      make(map[string]cart.Cart),
	}
}

func (m *MockCache) GetIdentity(_ context.Context, userID string) (*IdentitySnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetIdentityErr != nil {
		return nil, m.GetIdentityErr
	}
	return m.Identities[userID], nil
}

func (m *MockCache) PutIdentity(_ context.Context, userID string, snap *IdentitySnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PutErr != nil {
		return m.PutErr
	}
	m.Identities[userID] = snap
	return nil
}

func (m *MockCache) GetCart(_ context.Context, userID string) (cart.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Carts[userID], nil
}

func (m *MockCache) PutCart(_ context.Context, userID string, c cart.Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PutErr != nil {
		return m.PutErr
	}
	m.Carts[userID] = c
	return nil
}

func (m *MockCache) Purge(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PurgeErr != nil {
		return m.PurgeErr
	}
	delete(m.Identities, userID)
	delete(m.Carts, userID)
	m.Purged = append(m.Purged, userID)
	return nil
}

func (m *MockCache) CachedCart(userID string) cart.Cart {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Carts[userID]
}

func (m *MockCache) CachedIdentity(userID string) *IdentitySnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Identities[userID]
}

func (m *MockCache) PurgedIDs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.Purged...)
}
