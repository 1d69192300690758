package note

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/movie-notes-api/internal/domain"
	"github.com/movie-notes-api/internal/pkg/id"
	"github.com/movie-notes-api/internal/pkg/validate"
)

// Note attribute names used in partial update maps.
const (
	fieldTitle = "title"
	fieldDesc  = "desc"
)

type Service interface {
	Add(ctx context.Context, ownerID string, req domain.AddNoteRequest) (*domain.Note, error)
	List(ctx context.Context, ownerID string) ([]domain.Note, error)
	Delete(ctx context.Context, ownerID string, req domain.DeleteNoteRequest) error
	Update(ctx context.Context, ownerID string, req domain.UpdateNoteRequest) error
}

type noteStore interface {
	Put(ctx context.Context, n *domain.Note) error
	ListByUser(ctx context.Context, userID string) ([]domain.Note, error)
	DeleteForUser(ctx context.Context, noteID, userID string) error
	UpdateForUser(ctx context.Context, noteID, userID string, updates map[string]interface{}) error
}

type service struct {
	repo noteStore
	log  *slog.Logger
}

type ServiceDeps struct {
	NoteRepo noteStore
	Logger   *slog.Logger
}

func NewService(deps ServiceDeps) Service {
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}
	return &service{repo: deps.NoteRepo, log: log}
}

// Add stores a note owned by ownerID; req.UserID is ignored.
func (s *service) Add(ctx context.Context, ownerID string, req domain.AddNoteRequest) (*domain.Note, error) {
	now := time.Now().UTC()
	n := &domain.Note{
		NoteID:    id.New(),
		UserID:    ownerID,
		Title:     req.Title,
		Desc:      req.Desc,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Put(ctx, n); err != nil {
		return nil, fmt.Errorf("note.Add: %w", err)
	}
	return n, nil
}

func (s *service) List(ctx context.Context, ownerID string) ([]domain.Note, error) {
	notes, err := s.repo.ListByUser(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("note.List: %w", err)
	}
	return notes, nil
}

// Delete removes the caller's note. A note that is missing or owned by
// someone else is left alone and the call still succeeds.
func (s *service) Delete(ctx context.Context, ownerID string, req domain.DeleteNoteRequest) error {
	const op = "note.Delete"
	log := s.log.With(slog.String("op", op))

	if err := validate.Struct(req); err != nil {
		return domain.NewError(domain.ErrValidation, "NoteID required")
	}
	err := s.repo.DeleteForUser(ctx, req.NoteID, ownerID)
	if errors.Is(err, domain.ErrNotFound) {
		log.Info("no owned note to delete", slog.String("note_id", req.NoteID), slog.String("user_id", ownerID))
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	log.Info("note deleted", slog.String("note_id", req.NoteID), slog.String("user_id", ownerID))
	return nil
}

// Update sets only the fields present in req. Like Delete, a missing or
// foreign note is a silent no-op.
func (s *service) Update(ctx context.Context, ownerID string, req domain.UpdateNoteRequest) error {
	const op = "note.Update"
	log := s.log.With(slog.String("op", op))

	if err := validate.Struct(req); err != nil {
		return domain.NewError(domain.ErrValidation, "NoteID required")
	}
	updates := map[string]interface{}{}
	if req.Title != nil {
		updates[fieldTitle] = *req.Title
	}
	if req.Desc != nil {
		updates[fieldDesc] = *req.Desc
	}
	err := s.repo.UpdateForUser(ctx, req.NoteID, ownerID, updates)
	if errors.Is(err, domain.ErrNotFound) {
		log.Info("no owned note to update", slog.String("note_id", req.NoteID), slog.String("user_id", ownerID))
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
