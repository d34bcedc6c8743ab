package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/geo-snap/internal/logger"
	"github.com/MKhiriev/geo-snap/internal/store"
	"github.com/MKhiriev/geo-snap/models"
)

type favoriteService struct {
	favoriteRepository store.FavoriteRepository

	logger *logger.Logger
}

// NewFavoriteService constructs a [FavoriteService] backed by the favorite
// repository.
func NewFavoriteService(favoriteRepository store.FavoriteRepository, logger *logger.Logger) FavoriteService {
	return &favoriteService{
		favoriteRepository: favoriteRepository,
		logger:             logger,
	}
}

// Toggle reads the current state and issues the inverse operation. Both the
// upsert and the delete are idempotent, so two interleaved toggles cannot
// corrupt the table: the worst case is a stale displayed boolean, which the
// next listing corrects.
func (f *favoriteService) Toggle(ctx context.Context, userID, photoID int64) (bool, error) {
	log := logger.FromContext(ctx)

	if userID == 0 {
		return false, ErrValidationNoUserID
	}
	if photoID == 0 {
		return false, ErrValidationNoPhotoID
	}

	favorited, err := f.favoriteRepository.IsFavorite(ctx, userID, photoID)
	if err != nil {
		return false, fmt.Errorf("toggle favorite: %w", err)
	}

	if favorited {
		if _, err := f.favoriteRepository.Remove(ctx, userID, photoID); err != nil {
			return false, fmt.Errorf("toggle favorite: %w", err)
		}
	} else {
		if err := f.favoriteRepository.Add(ctx, userID, photoID); err != nil {
			return false, fmt.Errorf("toggle favorite: %w", err)
		}
	}

	log.Debug().
		Str("func", "*favoriteService.Toggle").
		Int64("user_id", userID).
		Int64("photo_id", photoID).
		Bool("favorited", !favorited).
		Msg("favorite toggled")

	return !favorited, nil
}

func (f *favoriteService) IsFavorite(ctx context.Context, userID, photoID int64) (bool, error) {
	if userID == 0 {
		return false, ErrValidationNoUserID
	}
	if photoID == 0 {
		return false, ErrValidationNoPhotoID
	}

	return f.favoriteRepository.IsFavorite(ctx, userID, photoID)
}

func (f *favoriteService) FavoritePhotos(ctx context.Context, userID int64) ([]models.FeedPhoto, error) {
	if userID == 0 {
		return nil, ErrValidationNoUserID
	}

	return f.favoriteRepository.ListPhotos(ctx, userID)
}
