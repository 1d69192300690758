package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/movie-notes-api/internal/domain"
	"github.com/movie-notes-api/internal/pkg/id"
	"github.com/movie-notes-api/internal/pkg/logger"
	"github.com/movie-notes-api/internal/pkg/validate"
)

// PageSize is the fixed number of users per listing page.
const PageSize = 10

type Service interface {
	Signup(ctx context.Context, req domain.SignupRequest) (*domain.User, error)
	List(ctx context.Context, page int) (*domain.UserPage, error)
}

type userStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Put(ctx context.Context, u *domain.User) error
	ScanAll(ctx context.Context) ([]domain.User, error)
}

type passwordHasher interface {
	Hash(plaintext string) (string, error)
}

type service struct {
	repo   userStore
	hasher passwordHasher
	log    *slog.Logger
}

type ServiceDeps struct {
	UserRepo userStore
	Hasher   passwordHasher
	Logger   *slog.Logger
}

func NewService(deps ServiceDeps) Service {
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}
	return &service{repo: deps.UserRepo, hasher: deps.Hasher, log: log}
}

// Signup creates a user after checking the email is free.
// Two concurrent signups with one email can both pass the check; nothing
// at the store level prevents that.
func (s *service) Signup(ctx context.Context, req domain.SignupRequest) (*domain.User, error) {
	const op = "user.Signup"
	log := s.log.With(slog.String("op", op))

	if err := validate.Struct(req); err != nil {
		return nil, domain.NewError(domain.ErrValidation, "Missing fields")
	}

	_, err := s.repo.GetByEmail(ctx, req.Email)
	if err == nil {
		return nil, domain.NewError(domain.ErrConflict, "Email already exists")
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("%s: lookup email: %w", op, err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%s: hash password: %w", op, err)
	}
	u := &domain.User{
		UserID:       id.New(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hash,
		Age:          req.Age,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Put(ctx, u); err != nil {
		log.Error("failed to save user", logger.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("user registered", slog.String("user_id", u.UserID))
	return u, nil
}

// List loads every user and cuts out one page in memory. The full scan grows
// with the table; a store-level cursor would be needed past a few thousand users.
func (s *service) List(ctx context.Context, page int) (*domain.UserPage, error) {
	if page < 1 {
		page = 1
	}
	users, err := s.repo.ScanAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.List: %w", err)
	}
	return paginate(users, page), nil
}

func paginate(users []domain.User, page int) *domain.UserPage {
	total := len(users)
	start := (page - 1) * PageSize
	end := start + PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	items := make([]domain.User, end-start)
	copy(items, users[start:end])
	return &domain.UserPage{
		Total:      total,
		Page:       page,
		TotalPages: (total + PageSize - 1) / PageSize,
		Users:      items,
	}
}
