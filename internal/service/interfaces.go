package service

import (
	"context"

	"github.com/MKhiriev/geo-snap/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService covers registration, login and profile management.
type AuthService interface {
	// Register creates an account and returns its id. A duplicate email
	// yields [store.ErrDuplicateEmail].
	Register(ctx context.Context, name, email, password, birthDate string) (int64, error)

	// Login returns the user matching the credential pair, or (nil, nil)
	// when no account matches.
	Login(ctx context.Context, email, password string) (*models.User, error)

	// Profile returns the user's account record, nil when it does not exist.
	Profile(ctx context.Context, userID int64) (*models.User, error)

	// UpdateProfile changes the display name; false means no such user.
	UpdateProfile(ctx context.Context, userID int64, name string) (bool, error)

	// UpdateProfileImage changes the profile image reference; false means
	// no such user.
	UpdateProfileImage(ctx context.Context, userID int64, imageRef string) (bool, error)
}

// PhotoService covers photo capture persistence and the photo listings the
// gallery screens are built from.
type PhotoService interface {
	// Save persists a captured photo and returns its id.
	Save(ctx context.Context, input PhotoInput) (int64, error)

	// Delete removes a photo together with every favorite referencing it;
	// false means the photo did not exist.
	Delete(ctx context.Context, photoID int64) (bool, error)

	// UserPhotos returns the owner's photos newest first, with IsFavorite
	// resolved for the viewing user.
	UserPhotos(ctx context.Context, ownerID, viewerID int64) ([]models.Photo, error)

	// Feed returns every photo with owner names, newest first.
	Feed(ctx context.Context) ([]models.FeedPhoto, error)

	// Albums returns the owner's photos grouped into location albums, with
	// IsFavorite resolved for the viewing user.
	Albums(ctx context.Context, ownerID, viewerID int64) ([]models.Album, error)

	// AlbumPhotos returns the owner's photos belonging to a single location
	// album. An empty locationName selects the photos without a location.
	AlbumPhotos(ctx context.Context, ownerID int64, locationName string) ([]models.Photo, error)
}

// FavoriteService implements the favorite toggle protocol and the favorites
// listing.
type FavoriteService interface {
	// Toggle flips the favorite state of the (user, photo) pair and returns
	// the resulting state.
	Toggle(ctx context.Context, userID, photoID int64) (bool, error)

	// IsFavorite reports the current favorite state of the pair.
	IsFavorite(ctx context.Context, userID, photoID int64) (bool, error)

	// FavoritePhotos returns the user's favorites, most recently favorited
	// first.
	FavoritePhotos(ctx context.Context, userID int64) ([]models.FeedPhoto, error)
}

// StatsService computes per-user profile counters.
type StatsService interface {
	// UserStats recomputes photo, location and favorite counts from the
	// repositories on every call.
	UserStats(ctx context.Context, userID int64) (models.UserStats, error)
}
