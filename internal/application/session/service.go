package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/movie-notes-api/internal/domain"
	"github.com/movie-notes-api/internal/pkg/validate"
)

type Service interface {
	// Signin checks credentials and returns a bearer token. No user payload
	// is returned.
	Signin(ctx context.Context, req domain.SigninRequest) (string, error)
}

type userStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type passwordVerifier interface {
	Verify(plaintext, digest string) bool
}

type tokenIssuer interface {
	Issue(userID, email string) (string, error)
}

type service struct {
	userRepo userStore
	hasher   passwordVerifier
	tokens   tokenIssuer
	log      *slog.Logger
}

type ServiceDeps struct {
	UserRepo    userStore
	Hasher      passwordVerifier
	TokenIssuer tokenIssuer
	Logger      *slog.Logger
}

func NewService(deps ServiceDeps) Service {
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}
	return &service{userRepo: deps.UserRepo, hasher: deps.Hasher, tokens: deps.TokenIssuer, log: log}
}

func (s *service) Signin(ctx context.Context, req domain.SigninRequest) (string, error) {
	const op = "session.Signin"
	log := s.log.With(slog.String("op", op))

	if err := validate.Struct(req); err != nil {
		return "", domain.NewError(domain.ErrValidation, "Email and password required")
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Account existence is disclosed on purpose; clients rely on this message.
			return "", domain.NewError(domain.ErrNotFound, "User doesn't exist")
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if !s.hasher.Verify(req.Password, u.PasswordHash) {
		log.Info("signin rejected", slog.String("user_id", u.UserID))
		return "", domain.NewError(domain.ErrCredentials, "Invalid credentials")
	}

	token, err := s.tokens.Issue(u.UserID, u.Email)
	if err != nil {
		return "", fmt.Errorf("%s: issue token: %w", op, err)
	}
	return token, nil
}
