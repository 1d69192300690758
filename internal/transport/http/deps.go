package http

import (
	"context"

	"github.com/movie-notes-api/internal/domain"
	jwtinfra "github.com/movie-notes-api/internal/infrastructure/jwt"
	"github.com/movie-notes-api/internal/transport/http/metrics"
)

// UserRepository is the minimal interface the router requires from a user store.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Put(ctx context.Context, u *domain.User) error
	// ScanAll returns every user; pagination happens in memory.
	ScanAll(ctx context.Context) ([]domain.User, error)
}

// FavoriteRepository is the minimal interface the router requires from a favorite store.
type FavoriteRepository interface {
	Put(ctx context.Context, f *domain.Favorite) error
	ListByUser(ctx context.Context, userID string) ([]domain.Favorite, error)
}

// NoteRepository is the minimal interface the router requires from a note store.
// Delete and update only touch a note owned by userID.
type NoteRepository interface {
	Put(ctx context.Context, n *domain.Note) error
	ListByUser(ctx context.Context, userID string) ([]domain.Note, error)
	DeleteForUser(ctx context.Context, noteID, userID string) error
	UpdateForUser(ctx context.Context, noteID, userID string, updates map[string]interface{}) error
}

// PasswordHasher hashes new passwords and checks presented ones.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// TokenProvider issues tokens on signin and verifies them at the gate.
type TokenProvider interface {
	Issue(userID, email string) (string, error)
	Verify(token string) (*jwtinfra.Claims, error)
}

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	UserRepo     UserRepository
	FavoriteRepo FavoriteRepository
	NoteRepo     NoteRepository
	Hasher       PasswordHasher
	Tokens       TokenProvider
	Metrics      *metrics.Metrics // optional
}
