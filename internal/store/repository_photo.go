package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/geo-snap/internal/logger"
	"github.com/MKhiriev/geo-snap/models"
)

// photoRepository is the SQLite-backed implementation of [PhotoRepository].
// It executes all photo CRUD and listing operations directly against the
// "photos" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (user_id, photo_id, location, etc.).
type photoRepository struct {
	*DB
	logger *logger.Logger
}

// NewPhotoRepository constructs a [PhotoRepository] backed by the provided
// database connection and logger.
func NewPhotoRepository(db *DB, logger *logger.Logger) PhotoRepository {
	return &photoRepository{
		DB:     db,
		logger: logger,
	}
}

// CreatePhoto persists a new photo row and returns the database-assigned id.
//
// The caller supplies TakenAt; the row-creation timestamp is set by the
// database. Latitude/Longitude/Comment/LocationName pass through as-is,
// including a half-present coordinate pair; rejecting it is not this
// layer's contract, consumers treat it as "no location".
//
// Error handling:
//   - FOREIGN KEY violation (owner does not exist) → [ErrConstraintViolation].
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
func (p *photoRepository) CreatePhoto(ctx context.Context, photo models.Photo) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := p.DB.ExecContext(ctx, createPhoto,
		photo.UserID,
		photo.URI,
		photo.Comment,
		photo.Latitude,
		photo.Longitude,
		photo.LocationName,
		photo.TakenAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "*photoRepository.CreatePhoto").
			Int64("user_id", photo.UserID).
			Msg("failed to insert photo")

		if isForeignKeyViolation(err) {
			return 0, ErrConstraintViolation
		}
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	photoID, err := result.LastInsertId()
	if err != nil {
		log.Err(err).
			Str("func", "*photoRepository.CreatePhoto").
			Msg("failed to obtain inserted photo id")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return photoID, nil
}

// DeletePhoto removes a photo together with every favorite row referencing
// it. Both deletes run in one transaction so that a failure can never leave
// orphaned favorites behind.
//
// Returns false when no photo row matched; favorites of a nonexistent photo
// cannot exist, so the transaction is rolled back in that case as well.
func (p *photoRepository) DeletePhoto(ctx context.Context, photoID int64) (bool, error) {
	log := logger.FromContext(ctx)

	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "*photoRepository.DeletePhoto").
			Int64("photo_id", photoID).
			Msg("error during opening transaction")
		return false, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	// favorites first: the photo row is their referential anchor
	if _, err = tx.ExecContext(ctx, deletePhotoFavorites, photoID); err != nil {
		log.Err(err).
			Str("func", "*photoRepository.DeletePhoto").
			Int64("photo_id", photoID).
			Msg("failed to delete dependent favorites")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	result, err := tx.ExecContext(ctx, deletePhoto, photoID)
	if err != nil {
		log.Err(err).
			Str("func", "*photoRepository.DeletePhoto").
			Int64("photo_id", photoID).
			Msg("failed to delete photo")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "*photoRepository.DeletePhoto").
			Int64("photo_id", photoID).
			Msg("failed to read affected rows")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		// nothing matched; no need to commit the favorites delete either
		return false, nil
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "*photoRepository.DeletePhoto").
			Int64("photo_id", photoID).
			Msg("error committing transaction")
		return false, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return true, nil
}

// ListByUser returns every photo owned by ownerID ordered newest-taken
// first. IsFavorite is resolved for viewerID through a LEFT JOIN, so the
// flag reflects that viewer's favorites only; viewerID 0 matches nothing
// and yields IsFavorite=false throughout.
func (p *photoRepository) ListByUser(ctx context.Context, ownerID, viewerID int64) ([]models.Photo, error) {
	log := logger.FromContext(ctx)

	rows, err := p.DB.QueryContext(ctx, listUserPhotos, viewerID, ownerID)
	if err != nil {
		log.Err(err).
			Str("func", "*photoRepository.ListByUser").
			Int64("owner_id", ownerID).
			Int64("viewer_id", viewerID).
			Msg("failed to execute query for listing user photos")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	photos := make([]models.Photo, 0, 50)

	for rows.Next() {
		var photo models.Photo

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
			&photo.IsFavorite,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*photoRepository.ListByUser").
				Int64("owner_id", ownerID).
				Msg("failed to scan photo row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		photos = append(photos, photo)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*photoRepository.ListByUser").
			Int64("owner_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return photos, nil
}

// ListAll returns the cross-user feed: every photo joined with its owner's
// display name, newest-taken first.
func (p *photoRepository) ListAll(ctx context.Context) ([]models.FeedPhoto, error) {
	log := logger.FromContext(ctx)

	rows, err := p.DB.QueryContext(ctx, listAllPhotos)
	if err != nil {
		log.Err(err).
			Str("func", "*photoRepository.ListAll").
			Msg("failed to execute query for listing all photos")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	feed := make([]models.FeedPhoto, 0, 50)

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
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*photoRepository.ListAll").
				Msg("failed to scan feed photo row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		feed = append(feed, photo)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*photoRepository.ListAll").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return feed, nil
}

// ListByLocation returns the owner's photos belonging to one location
// bucket, newest-taken first. An empty locationName selects the photos that
// carry no location (NULL or empty string), mirroring the aggregation
// layer's bucketing.
func (p *photoRepository) ListByLocation(ctx context.Context, ownerID int64, locationName string) ([]models.Photo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPhotosByLocationQuery(ownerID, locationName)
	if err != nil {
		log.Err(err).
			Str("func", "*photoRepository.ListByLocation").
			Int64("owner_id", ownerID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*photoRepository.ListByLocation").
			Int64("owner_id", ownerID).
			Str("location", locationName).
			Msg("failed to execute query for listing photos by location")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	photos := make([]models.Photo, 0, 50)

	for rows.Next() {
		var photo models.Photo

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
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*photoRepository.ListByLocation").
				Int64("owner_id", ownerID).
				Msg("failed to scan photo row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		photos = append(photos, photo)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*photoRepository.ListByLocation").
			Int64("owner_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return photos, nil
}

// CountByUser returns the total number of photos owned by userID.
func (p *photoRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	return p.countQuery(ctx, "*photoRepository.CountByUser", countUserPhotos, userID)
}

// CountLocationsByUser returns the number of distinct location names among
// the user's photos. NULL and empty-string names are both excluded: an empty
// name carries no location information and must not count as one.
func (p *photoRepository) CountLocationsByUser(ctx context.Context, userID int64) (int64, error) {
	return p.countQuery(ctx, "*photoRepository.CountLocationsByUser", countUserLocations, userID)
}

func (p *photoRepository) countQuery(ctx context.Context, funcName, query string, userID int64) (int64, error) {
	log := logger.FromContext(ctx)

	var count int64
	if err := p.DB.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		log.Err(err).
			Str("func", funcName).
			Int64("user_id", userID).
			Msg("failed to scan count")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return count, nil
}
