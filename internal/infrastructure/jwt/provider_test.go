package jwtinfra

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/movie-notes-api/internal/config"
	"github.com/movie-notes-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func newTestProvider(t *testing.T, clock *fakeClock) *Provider {
	t.Helper()
	p, err := NewProvider(&config.Config{JWTSecret: "test-secret"}, WithClock(clock.Now))
	require.NoError(t, err)
	return p
}

func TestNewProvider_EmptySecret(t *testing.T) {
	_, err := NewProvider(&config.Config{})
	assert.Error(t, err)
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	p := newTestProvider(t, clock)

	tok, err := p.Issue("u1", "a@x.com")
	require.NoError(t, err)

	claims, err := p.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.ID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, TokenLifetime, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestVerify_JustBeforeExpiry(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	p := newTestProvider(t, clock)
	tok, err := p.Issue("u1", "a@x.com")
	require.NoError(t, err)

	clock.t = clock.t.Add(TokenLifetime - time.Second)
	_, err = p.Verify(tok)
	assert.NoError(t, err)
}

func TestVerify_Expired(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	p := newTestProvider(t, clock)
	tok, err := p.Issue("u1", "a@x.com")
	require.NoError(t, err)

	clock.t = clock.t.Add(TokenLifetime + time.Second)
	_, err = p.Verify(tok)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
	assert.NotErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestVerify_TamperedPayload(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	p := newTestProvider(t, clock)
	tok, err := p.Issue("u1", "a@x.com")
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	other, err := p.Issue("u2", "b@x.com")
	require.NoError(t, err)
	parts[1] = strings.Split(other, ".")[1]

	_, err = p.Verify(strings.Join(parts, "."))
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestVerify_WrongSecret(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	other, err := NewProvider(&config.Config{JWTSecret: "other-secret"}, WithClock(clock.Now))
	require.NoError(t, err)
	tok, err := other.Issue("u1", "a@x.com")
	require.NoError(t, err)

	_, err = newTestProvider(t, clock).Verify(tok)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestVerify_Malformed(t *testing.T) {
	p := newTestProvider(t, &fakeClock{t: time.Now()})
	_, err := p.Verify("not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestVerify_RejectsNoneAlgorithm(t *testing.T) {
	p := newTestProvider(t, &fakeClock{t: time.Now()})
	claims := Claims{
		ID: "u1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = p.Verify(tok)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestVerify_MissingExpiry(t *testing.T) {
	p := newTestProvider(t, &fakeClock{t: time.Now()})
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{ID: "u1"}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = p.Verify(tok)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
