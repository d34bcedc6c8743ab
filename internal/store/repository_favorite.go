package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/geo-snap/internal/logger"
	"github.com/MKhiriev/geo-snap/models"
)

// favoriteRepository is the SQLite-backed implementation of
// [FavoriteRepository]. The UNIQUE(user_id, photo_id) constraint on the
// "favorites" table is the source of truth for idempotence: no matter how
// calls interleave, at most one row can exist per pair.
type favoriteRepository struct {
	*DB
	logger *logger.Logger
}

// NewFavoriteRepository constructs a [FavoriteRepository] backed by the
// provided database connection and logger.
func NewFavoriteRepository(db *DB, logger *logger.Logger) FavoriteRepository {
	return &favoriteRepository{
		DB:     db,
		logger: logger,
	}
}

// Add upserts a favorite row for the (user, photo) pair. INSERT OR REPLACE
// keyed on the pair's uniqueness constraint makes a repeated Add a no-op
// rather than an error, so the toggle protocol never has to special-case
// "already favorited".
//
// A FOREIGN KEY violation (user or photo missing) yields
// [ErrConstraintViolation].
func (f *favoriteRepository) Add(ctx context.Context, userID, photoID int64) error {
	log := logger.FromContext(ctx)

	_, err := f.DB.ExecContext(ctx, saveFavorite, userID, photoID)
	if err != nil {
		log.Err(err).
			Str("func", "*favoriteRepository.Add").
			Int64("user_id", userID).
			Int64("photo_id", photoID).
			Msg("failed to upsert favorite")

		if isForeignKeyViolation(err) {
			return ErrConstraintViolation
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Remove deletes the favorite row for the pair. The returned bool reports
// whether a row existed, so the caller can distinguish "nothing matched"
// from "operation failed".
func (f *favoriteRepository) Remove(ctx context.Context, userID, photoID int64) (bool, error) {
	log := logger.FromContext(ctx)

	result, err := f.DB.ExecContext(ctx, deleteFavorite, userID, photoID)
	if err != nil {
		log.Err(err).
			Str("func", "*favoriteRepository.Remove").
			Int64("user_id", userID).
			Int64("photo_id", photoID).
			Msg("failed to delete favorite")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "*favoriteRepository.Remove").
			Msg("failed to read affected rows")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

// IsFavorite reports whether the (user, photo) pair is currently favorited.
// Absence is a soft condition, never an error.
func (f *favoriteRepository) IsFavorite(ctx context.Context, userID, photoID int64) (bool, error) {
	log := logger.FromContext(ctx)

	var id int64
	err := f.DB.QueryRowContext(ctx, findFavorite, userID, photoID).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		log.Err(err).
			Str("func", "*favoriteRepository.IsFavorite").
			Int64("user_id", userID).
			Int64("photo_id", photoID).
			Msg("failed to scan favorite row")
		return false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return true, nil
}

// ListPhotos returns the user's favorited photos with owner names and the
// moment each was favorited, most recently favorited first.
func (f *favoriteRepository) ListPhotos(ctx context.Context, userID int64) ([]models.FeedPhoto, error) {
	log := logger.FromContext(ctx)

	rows, err := f.DB.QueryContext(ctx, listFavoritePhotos, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*favoriteRepository.ListPhotos").
			Int64("user_id", userID).
			Msg("failed to execute query for listing favorite photos")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	photos := make([]models.FeedPhoto, 0, 50)

	for rows.Next() {
		var photo models.FeedPhoto

		scanErr := rows.Scan(
			&photo.PhotoID,
			&photo.UserID,
			&photo.URI,
			&photo.Comment,
			&photo.Latitude,
			&photo.Longitude,
			&photo.LocationName,
			&photo.TakenAt,
			&photo.CreatedAt,
			&photo.OwnerName,
			&photo.FavoritedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*favoriteRepository.ListPhotos").
				Int64("user_id", userID).
				Msg("failed to scan favorite photo row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		// every row of this listing is a favorite of the viewer
		photo.IsFavorite = true

		photos = append(photos, photo)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*favoriteRepository.ListPhotos").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return photos, nil
}

// CountByUser returns the number of favorite rows owned by userID.
func (f *favoriteRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	log := logger.FromContext(ctx)

	var count int64
	if err := f.DB.QueryRowContext(ctx, countUserFavorites, userID).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "*favoriteRepository.CountByUser").
			Int64("user_id", userID).
			Msg("failed to scan favorite count")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return count, nil
}
