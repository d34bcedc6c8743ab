package store

import (
	"context"

	"github.com/MKhiriev/geo-snap/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository provides account persistence for registration, login and
// profile management.
type UserRepository interface {
	// CreateUser inserts a new user row and returns the assigned id.
	// A duplicate email yields [ErrDuplicateEmail].
	CreateUser(ctx context.Context, name, email, password, birthDate string) (int64, error)

	// FindByCredentials returns the user matching the exact email/password
	// pair, or (nil, nil) when no row matches.
	FindByCredentials(ctx context.Context, email, password string) (*models.User, error)

	// FindByID returns the user with the given id, or (nil, nil) when the
	// user does not exist.
	FindByID(ctx context.Context, userID int64) (*models.User, error)

	// UpdateName sets the display name; false means no row matched.
	UpdateName(ctx context.Context, userID int64, name string) (bool, error)

	// UpdateProfileImage sets the profile image reference; false means no
	// row matched.
	UpdateProfileImage(ctx context.Context, userID int64, imageRef string) (bool, error)

	// ProfileImage returns the profile image reference, nil when unset or
	// when the user does not exist.
	ProfileImage(ctx context.Context, userID int64) (*string, error)
}

// PhotoRepository provides photo persistence and listing.
type PhotoRepository interface {
	// CreatePhoto inserts a photo row and returns the assigned id.
	// A nonexistent owner yields [ErrConstraintViolation].
	CreatePhoto(ctx context.Context, photo models.Photo) (int64, error)

	// DeletePhoto removes the photo and all favorites referencing it in a
	// single transaction; false means no photo row matched.
	DeletePhoto(ctx context.Context, photoID int64) (bool, error)

	// ListByUser returns the owner's photos newest-taken-first, with
	// IsFavorite populated for viewerID. Pass viewerID 0 when no viewing
	// user context exists.
	ListByUser(ctx context.Context, ownerID, viewerID int64) ([]models.Photo, error)

	// ListAll returns every photo with its owner's name, newest first.
	ListAll(ctx context.Context) ([]models.FeedPhoto, error)

	// ListByLocation returns the owner's photos for one location bucket,
	// newest first. An empty locationName selects photos without location.
	ListByLocation(ctx context.Context, ownerID int64, locationName string) ([]models.Photo, error)

	// CountByUser returns the number of photos owned by the user.
	CountByUser(ctx context.Context, userID int64) (int64, error)

	// CountLocationsByUser returns the number of distinct non-empty
	// location names among the user's photos.
	CountLocationsByUser(ctx context.Context, userID int64) (int64, error)
}

// FavoriteRepository provides the persisted side of the favorite toggle
// protocol.
type FavoriteRepository interface {
	// Add upserts the favorite row for the (user, photo) pair. Re-adding
	// an existing favorite is a no-op.
	Add(ctx context.Context, userID, photoID int64) error

	// Remove deletes the favorite row; false means it did not exist.
	Remove(ctx context.Context, userID, photoID int64) (bool, error)

	// IsFavorite reports whether the pair is currently favorited.
	IsFavorite(ctx context.Context, userID, photoID int64) (bool, error)

	// ListPhotos returns the user's favorited photos with owner names,
	// most recently favorited first.
	ListPhotos(ctx context.Context, userID int64) ([]models.FeedPhoto, error)

	// CountByUser returns the number of favorites owned by the user.
	CountByUser(ctx context.Context, userID int64) (int64, error)
}
