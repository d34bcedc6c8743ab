// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/geo-snap/internal/logger"
	"github.com/MKhiriev/geo-snap/internal/store"
	"github.com/MKhiriev/geo-snap/models"
)

// PhotoInput carries a captured photo into [PhotoService.Save]. Coordinates
// and location name are optional: the capture flow may run with location
// services disabled.
type PhotoInput struct {
	UserID       int64
	URI          string
	Comment      *string
	Latitude     *float64
	Longitude    *float64
	LocationName *string
	// TakenAt is the capture moment; the zero value defaults to the time of
	// the Save call.
	TakenAt time.Time
}

type photoService struct {
	photoRepository store.PhotoRepository

	logger *logger.Logger
}

// NewPhotoService constructs a [PhotoService] backed by the photo repository.
func NewPhotoService(photoRepository store.PhotoRepository, logger *logger.Logger) PhotoService {
	return &photoService{
		photoRepository: photoRepository,
		logger:          logger,
	}
}

func (p *photoService) Save(ctx context.Context, input PhotoInput) (int64, error) {
	log := logger.FromContext(ctx)

	if input.UserID == 0 {
		return 0, ErrValidationNoUserID
	}
	if input.URI == "" {
		return 0, ErrValidationNoPhotoURI
	}

	// a half-present pair is a caller contract breach we tolerate: the photo
	// is stored, but it will land in the no-location album
	if (input.Latitude == nil) != (input.Longitude == nil) {
		log.Warn().
			Str("func", "*photoService.Save").
			Int64("user_id", input.UserID).
			Msg("only one of latitude/longitude provided, storing photo without usable coordinates")
	}

	takenAt := input.TakenAt
	if takenAt.IsZero() {
		takenAt = time.Now().UTC()
	}

	photoID, err := p.photoRepository.CreatePhoto(ctx, models.Photo{
		UserID:       input.UserID,
		URI:          input.URI,
		Comment:      input.Comment,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		LocationName: input.LocationName,
		TakenAt:      takenAt,
	})
	if err != nil {
		return 0, fmt.Errorf("save photo: %w", err)
	}

	log.Info().
		Str("func", "*photoService.Save").
		Int64("user_id", input.UserID).
		Int64("photo_id", photoID).
		Msg("photo saved")

	return photoID, nil
}

func (p *photoService) Delete(ctx context.Context, photoID int64) (bool, error) {
	if photoID == 0 {
		return false, ErrValidationNoPhotoID
	}

	return p.photoRepository.DeletePhoto(ctx, photoID)
}

func (p *photoService) UserPhotos(ctx context.Context, ownerID, viewerID int64) ([]models.Photo, error) {
	if ownerID == 0 {
		return nil, ErrValidationNoUserID
	}

	return p.photoRepository.ListByUser(ctx, ownerID, viewerID)
}

func (p *photoService) Feed(ctx context.Context) ([]models.FeedPhoto, error) {
	return p.photoRepository.ListAll(ctx)
}

func (p *photoService) Albums(ctx context.Context, ownerID, viewerID int64) ([]models.Album, error) {
	photos, err := p.UserPhotos(ctx, ownerID, viewerID)
	if err != nil {
		return nil, err
	}

	return GroupIntoAlbums(photos), nil
}

func (p *photoService) AlbumPhotos(ctx context.Context, ownerID int64, locationName string) ([]models.Photo, error) {
	if ownerID == 0 {
		return nil, ErrValidationNoUserID
	}

	// the album named by the no-location sentinel holds the photos without
	// a location name, so the album list round-trips into this call
	if locationName == models.NoLocationAlbum {
		locationName = ""
	}

	return p.photoRepository.ListByLocation(ctx, ownerID, locationName)
}
