package user

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/config"
)

// MockDirectory implements Directory for testing
type MockDirectory struct {
	Existing    []User
	Match       *User
	FindErr     error
	CheckErr    error
	CreateErr   error
	CreatedUser *User
}

func (m *MockDirectory) FindByEmail(_ context.Context, _ string) ([]User, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	return m.Existing, nil
}

func (m *MockDirectory) CheckCredentials(_ context.Context, _, _ string) (*User, error) {
	if m.CheckErr != nil {
		return nil, m.CheckErr
	}
	if m.Match == nil {
		return nil, nil
	}
	u := *m.Match
	return &u, nil
}

func (m *MockDirectory) CreateUser(_ context.Context, u *User) (*User, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	created := *u
	created.ID = "u1"
	m.CreatedUser = &created
	out := created
	return &out, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "storefront"},
		JWT: config.JWTConfig{
			Secret:             "test-secret-key-that-is-long-enough",
			AccessTokenExpiry:  15 * time.Minute,
			RefreshTokenExpiry: 7 * 24 * time.Hour,
		},
		Security: config.SecurityConfig{BcryptCost: 4},
	}
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestRegister_CreatesEmptyCollections(t *testing.T) {
	dir := &MockDirectory{}
	svc := NewService(dir, testConfig(), testLogger())

	created, err := svc.Register(context.Background(), &RegisterRequest{
		Name:            "Asha Rao",
		Email:           "Asha@Example.com",
		Password:        "Secret@123",
		ConfirmPassword: "Secret@123",
	})
	require.NoError(t, err)

	assert.Equal(t, "u1", created.ID)
	assert.Equal(t, "asha@example.com", created.Email)
	assert.False(t, created.IsBlock)
	assert.Empty(t, created.Password, "credentials must not be echoed back")

	require.NotNil(t, dir.CreatedUser)
	assert.NotNil(t, dir.CreatedUser.Cart)
	assert.NotNil(t, dir.CreatedUser.Wishlist)
	assert.NotNil(t, dir.CreatedUser.Orders)
	assert.Empty(t, dir.CreatedUser.Cart)
}

func TestRegister_PasswordMismatch(t *testing.T) {
	svc := NewService(&MockDirectory{}, testConfig(), testLogger())

	_, err := svc.Register(context.Background(), &RegisterRequest{
		Name:            "Asha",
		Email:           "asha@example.com",
		Password:        "Secret@123",
		ConfirmPassword: "Different@123",
	})
	assert.Error(t, err)
}

func TestRegister_WeakPassword(t *testing.T) {
	svc := NewService(&MockDirectory{}, testConfig(), testLogger())

	_, err := svc.Register(context.Background(), &RegisterRequest{
		Name:            "Asha",
		Email:           "asha@example.com",
		Password:        "weak",
		ConfirmPassword: "weak",
	})
	assert.Error(t, err)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	dir := &MockDirectory{
		Existing: []User{{Identity: Identity{ID: "u0", Email: "asha@example.com"}}},
	}
	svc := NewService(dir, testConfig(), testLogger())

	_, err := svc.Register(context.Background(), &RegisterRequest{
		Name:            "Asha",
		Email:           "asha@example.com",
		Password:        "Secret@123",
		ConfirmPassword: "Secret@123",
	})
	assert.Error(t, err)
	assert.Nil(t, dir.CreatedUser)
}

func TestLogin_Success(t *testing.T) {
	dir := &MockDirectory{
		Match: &User{Identity: Identity{ID: "u1", Name: "Asha", Email: "asha@example.com"}},
	}
	svc := NewService(dir, testConfig(), testLogger())

	resp, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "asha@example.com",
		Password: "Secret@123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, int64((15 * time.Minute).Seconds()), resp.ExpiresIn)
	assert.Equal(t, "u1", resp.User.ID)
	assert.Empty(t, resp.User.Password)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := NewService(&MockDirectory{}, testConfig(), testLogger())

	_, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "asha@example.com",
		Password: "wrong",
	})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrAccountBlocked)
}

func TestLogin_BlockedAccountRefused(t *testing.T) {
	dir := &MockDirectory{
		Match: &User{Identity: Identity{ID: "u1", Email: "asha@example.com", IsBlock: true}},
	}
	svc := NewService(dir, testConfig(), testLogger())

	// The credentials are valid; the block alone refuses the session.
	_, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "asha@example.com",
		Password: "Secret@123",
	})
	assert.ErrorIs(t, err, ErrAccountBlocked)
}

func TestLogin_DirectoryFailure(t *testing.T) {
	dir := &MockDirectory{CheckErr: errors.New("store down")}
	svc := NewService(dir, testConfig(), testLogger())

	_, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "asha@example.com",
		Password: "Secret@123",
	})
	assert.Error(t, err)
}

func TestRefresh_BlockAppliedSinceIssuanceSticks(t *testing.T) {
	dir := &MockDirectory{
		Match: &User{Identity: Identity{ID: "u1", Email: "asha@example.com"}},
	}
	svc := NewService(dir, testConfig(), testLogger())

	resp, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "asha@example.com",
		Password: "Secret@123",
	})
	require.NoError(t, err)

	// The account gets blocked after the refresh token was issued.
	dir.Existing = []User{{Identity: Identity{ID: "u1", Email: "asha@example.com", IsBlock: true}}}

	_, err = svc.Refresh(context.Background(), resp.RefreshToken)
	assert.ErrorIs(t, err, ErrAccountBlocked)
}

func TestRefresh_Success(t *testing.T) {
	dir := &MockDirectory{
		Match:    &User{Identity: Identity{ID: "u1", Email: "asha@example.com"}},
		Existing: []User{{Identity: Identity{ID: "u1", Email: "asha@example.com"}}},
	}
	svc := NewService(dir, testConfig(), testLogger())

	resp, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "asha@example.com",
		Password: "Secret@123",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), resp.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, "u1", refreshed.User.ID)
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	dir := &MockDirectory{
		Match: &User{Identity: Identity{ID: "u1", Email: "asha@example.com"}},
	}
	svc := NewService(dir, testConfig(), testLogger())

	resp, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "asha@example.com",
		Password: "Secret@123",
	})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), resp.AccessToken)
	assert.Error(t, err)
}
