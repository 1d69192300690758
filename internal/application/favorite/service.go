package favorite

import (
	"context"
	"fmt"
	"time"

	"github.com/movie-notes-api/internal/domain"
	"github.com/movie-notes-api/internal/pkg/id"
)

type Service interface {
	Add(ctx context.Context, ownerID string, req domain.AddFavoriteRequest) (*domain.Favorite, error)
	List(ctx context.Context, ownerID string) ([]domain.Favorite, error)
}

type favoriteStore interface {
	Put(ctx context.Context, f *domain.Favorite) error
	ListByUser(ctx context.Context, userID string) ([]domain.Favorite, error)
}

type service struct {
	repo favoriteStore
}

func NewService(repo favoriteStore) Service {
	return &service{repo: repo}
}

// Add stores a favorite owned by ownerID; req.UserID is ignored.
func (s *service) Add(ctx context.Context, ownerID string, req domain.AddFavoriteRequest) (*domain.Favorite, error) {
	f := &domain.Favorite{
		FavoriteID: id.New(),
		UserID:     ownerID,
		MovieName:  req.MovieName,
		ImgURL:     req.ImgURL,
		MovieID:    req.MovieID,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.Put(ctx, f); err != nil {
		return nil, fmt.Errorf("favorite.Add: %w", err)
	}
	return f, nil
}

func (s *service) List(ctx context.Context, ownerID string) ([]domain.Favorite, error) {
	favs, err := s.repo.ListByUser(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("favorite.List: %w", err)
	}
	return favs, nil
}
