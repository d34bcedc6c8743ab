package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/geo-snap/internal/logger"
	"github.com/MKhiriev/geo-snap/internal/store"
	"github.com/MKhiriev/geo-snap/models"
)

type statsService struct {
	photoRepository    store.PhotoRepository
	favoriteRepository store.FavoriteRepository

	logger *logger.Logger
}

// NewStatsService constructs a [StatsService] composing the photo and
// favorite repositories.
func NewStatsService(photoRepository store.PhotoRepository, favoriteRepository store.FavoriteRepository, logger *logger.Logger) StatsService {
	return &statsService{
		photoRepository:    photoRepository,
		favoriteRepository: favoriteRepository,
		logger:             logger,
	}
}

// UserStats recomputes every counter from the repositories. No caching: a
// toggle or an upload is visible in the very next call.
func (s *statsService) UserStats(ctx context.Context, userID int64) (models.UserStats, error) {
	if userID == 0 {
		return models.UserStats{}, ErrValidationNoUserID
	}

	photoCount, err := s.photoRepository.CountByUser(ctx, userID)
	if err != nil {
		return models.UserStats{}, fmt.Errorf("count photos: %w", err)
	}

	locationCount, err := s.photoRepository.CountLocationsByUser(ctx, userID)
	if err != nil {
		return models.UserStats{}, fmt.Errorf("count locations: %w", err)
	}

	favoriteCount, err := s.favoriteRepository.CountByUser(ctx, userID)
	if err != nil {
		return models.UserStats{}, fmt.Errorf("count favorites: %w", err)
	}

	return models.UserStats{
		PhotoCount:    photoCount,
		LocationCount: locationCount,
		FavoriteCount: favoriteCount,
	}, nil
}
