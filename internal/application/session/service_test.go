package session

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/movie-notes-api/internal/config"
	"github.com/movie-notes-api/internal/domain"
	jwtinfra "github.com/movie-notes-api/internal/infrastructure/jwt"
	"github.com/movie-notes-api/internal/pkg/password"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockUserStore struct{ mock.Mock }

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockTokenIssuer struct{ mock.Mock }

func (m *mockTokenIssuer) Issue(userID, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}

// --- helpers ---

func hashed(t *testing.T, plain string) string {
	t.Helper()
	h, err := password.NewBcrypt().Hash(plain)
	require.NoError(t, err)
	return h
}

func newService(us *mockUserStore, ti tokenIssuer) Service {
	return NewService(ServiceDeps{UserRepo: us, Hasher: password.NewBcrypt(), TokenIssuer: ti})
}

// --- Signin tests ---

func TestSignin_MissingFields(t *testing.T) {
	svc := newService(&mockUserStore{}, &mockTokenIssuer{})
	for _, req := range []domain.SigninRequest{
		{Email: "a@x.com"},
		{Password: "pw"},
		{},
	} {
		_, err := svc.Signin(context.Background(), req)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrValidation))
		assert.Equal(t, "Email and password required", err.Error())
	}
}

func TestSignin_UnknownUser(t *testing.T) {
	us := &mockUserStore{}
	us.On("GetByEmail", mock.Anything, "nobody@x.com").Return(nil, domain.ErrNotFound)

	_, err := newService(us, &mockTokenIssuer{}).Signin(context.Background(), domain.SigninRequest{Email: "nobody@x.com", Password: "pw"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Equal(t, "User doesn't exist", err.Error())
}

func TestSignin_WrongPassword(t *testing.T) {
	us := &mockUserStore{}
	us.On("GetByEmail", mock.Anything, "a@x.com").Return(&domain.User{UserID: "u1", PasswordHash: hashed(t, "pw123456")}, nil)
	ti := &mockTokenIssuer{}

	_, err := newService(us, ti).Signin(context.Background(), domain.SigninRequest{Email: "a@x.com", Password: "nope"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCredentials))
	assert.Equal(t, "Invalid credentials", err.Error())
	ti.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
}

func TestSignin_StoreError_IsInternal(t *testing.T) {
	us := &mockUserStore{}
	us.On("GetByEmail", mock.Anything, "a@x.com").Return(nil, errors.New("timeout"))

	_, err := newService(us, &mockTokenIssuer{}).Signin(context.Background(), domain.SigninRequest{Email: "a@x.com", Password: "pw"})
	require.Error(t, err)
	var de *domain.Error
	assert.False(t, errors.As(err, &de))
}

func TestSignin_HappyPath(t *testing.T) {
	us := &mockUserStore{}
	us.On("GetByEmail", mock.Anything, "a@x.com").Return(&domain.User{UserID: "u1", Email: "a@x.com", PasswordHash: hashed(t, "pw123456")}, nil)
	ti := &mockTokenIssuer{}
	ti.On("Issue", "u1", "a@x.com").Return("signed-token", nil)

	tok, err := newService(us, ti).Signin(context.Background(), domain.SigninRequest{Email: "a@x.com", Password: "pw123456"})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", tok)
	ti.AssertExpectations(t)
}

func TestSignin_TokenDecodesToUserID(t *testing.T) {
	p, err := jwtinfra.NewProvider(&config.Config{JWTSecret: "secret"})
	require.NoError(t, err)
	us := &mockUserStore{}
	us.On("GetByEmail", mock.Anything, "a@x.com").Return(&domain.User{UserID: "u1", Email: "a@x.com", PasswordHash: hashed(t, "pw123456")}, nil)

	tok, err := newService(us, p).Signin(context.Background(), domain.SigninRequest{Email: "a@x.com", Password: "pw123456"})
	require.NoError(t, err)

	claims, err := p.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestSignin_WrongPassword_LogsThroughInjectedLogger(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	us := &mockUserStore{}
	us.On("GetByEmail", mock.Anything, "a@x.com").Return(&domain.User{UserID: "u1", Email: "a@x.com", PasswordHash: hashed(t, "right")}, nil)
	svc := NewService(ServiceDeps{UserRepo: us, Hasher: password.NewBcrypt(), TokenIssuer: &mockTokenIssuer{}, Logger: log})

	_, err := svc.Signin(context.Background(), domain.SigninRequest{Email: "a@x.com", Password: "wrong"})
	require.Error(t, err)
	assert.Contains(t, buf.String(), `"op":"session.Signin"`)
	assert.Contains(t, buf.String(), `"user_id":"u1"`)
}
