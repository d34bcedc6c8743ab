package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/geo-snap/internal/config"
	"github.com/MKhiriev/geo-snap/internal/logger"
	"github.com/MKhiriev/geo-snap/models"
	"github.com/stretchr/testify/require"
)

// setupTestDB opens a fresh file-backed SQLite database in a temp dir and
// applies all migrations. Constraint behavior (UNIQUE, FOREIGN KEY) is only
// observable against the real driver, not against sqlmock.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	cfg := config.DB{DSN: filepath.Join(t.TempDir(), "geosnap_test.db")}
	db, err := NewConnectSQLite(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate())

	return db
}

func seedUser(t *testing.T, users UserRepository, email string) int64 {
	t.Helper()

	userID, err := users.CreateUser(context.Background(), "Test User", email, "secret", "1990-01-01")
	require.NoError(t, err)
	return userID
}

func seedPhoto(t *testing.T, photos PhotoRepository, userID int64, location *string, takenAt time.Time) int64 {
	t.Helper()

	photoID, err := photos.CreatePhoto(context.Background(), models.Photo{
		UserID:       userID,
		URI:          "file:///photos/p.jpg",
		LocationName: location,
		TakenAt:      takenAt,
	})
	require.NoError(t, err)
	return photoID
}

func TestIntegration_DuplicateEmailRejected(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db, logger.Nop())

	seedUser(t, users, "john@example.com")

	_, err := users.CreateUser(context.Background(), "Other", "john@example.com", "other", "")
	require.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestIntegration_PhotoRequiresExistingUser(t *testing.T) {
	db := setupTestDB(t)
	photos := NewPhotoRepository(db, logger.Nop())

	_, err := photos.CreatePhoto(context.Background(), models.Photo{
		UserID:  404,
		URI:     "file:///photos/orphan.jpg",
		TakenAt: time.Now(),
	})
	require.ErrorIs(t, err, ErrConstraintViolation)
}

func TestIntegration_FavoriteRequiresExistingPhoto(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db, logger.Nop())
	favorites := NewFavoriteRepository(db, logger.Nop())

	userID := seedUser(t, users, "john@example.com")

	err := favorites.Add(context.Background(), userID, 404)
	require.ErrorIs(t, err, ErrConstraintViolation)
}

func TestIntegration_FavoriteAddIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	users := NewUserRepository(db, logger.Nop())
	photos := NewPhotoRepository(db, logger.Nop())
	favorites := NewFavoriteRepository(db, logger.Nop())

	userID := seedUser(t, users, "john@example.com")
	photoID := seedPhoto(t, photos, userID, nil, time.Now())

	require.NoError(t, favorites.Add(ctx, userID, photoID))
	require.NoError(t, favorites.Add(ctx, userID, photoID))

	count, err := favorites.CountByUser(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	favorited, err := favorites.IsFavorite(ctx, userID, photoID)
	require.NoError(t, err)
	require.True(t, favorited)
}

func TestIntegration_FavoriteRemove(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	users := NewUserRepository(db, logger.Nop())
	photos := NewPhotoRepository(db, logger.Nop())
	favorites := NewFavoriteRepository(db, logger.Nop())

	userID := seedUser(t, users, "john@example.com")
	photoID := seedPhoto(t, photos, userID, nil, time.Now())

	require.NoError(t, favorites.Add(ctx, userID, photoID))

	removed, err := favorites.Remove(ctx, userID, photoID)
	require.NoError(t, err)
	require.True(t, removed)

	// second remove finds nothing, still no error
	removed, err = favorites.Remove(ctx, userID, photoID)
	require.NoError(t, err)
	require.False(t, removed)

	favorited, err := favorites.IsFavorite(ctx, userID, photoID)
	require.NoError(t, err)
	require.False(t, favorited)
}

func TestIntegration_DeletePhotoRemovesAllFavorites(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	users := NewUserRepository(db, logger.Nop())
	photos := NewPhotoRepository(db, logger.Nop())
	favorites := NewFavoriteRepository(db, logger.Nop())

	ownerID := seedUser(t, users, "owner@example.com")
	otherID := seedUser(t, users, "other@example.com")
	photoID := seedPhoto(t, photos, ownerID, nil, time.Now())

	// two different users favorite the same photo
	require.NoError(t, favorites.Add(ctx, ownerID, photoID))
	require.NoError(t, favorites.Add(ctx, otherID, photoID))

	deleted, err := photos.DeletePhoto(ctx, photoID)
	require.NoError(t, err)
	require.True(t, deleted)

	for _, userID := range []int64{ownerID, otherID} {
		count, countErr := favorites.CountByUser(ctx, userID)
		require.NoError(t, countErr)
		require.Equal(t, int64(0), count)
	}

	listed, err := photos.ListByUser(ctx, ownerID, ownerID)
	require.NoError(t, err)
	require.Empty(t, listed)
}

func TestIntegration_ListByUserResolvesViewerFavorites(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	users := NewUserRepository(db, logger.Nop())
	photos := NewPhotoRepository(db, logger.Nop())
	favorites := NewFavoriteRepository(db, logger.Nop())

	ownerID := seedUser(t, users, "owner@example.com")
	viewerID := seedUser(t, users, "viewer@example.com")

	older := seedPhoto(t, photos, ownerID, ptrString("Lisboa"), time.Now().Add(-time.Hour))
	newer := seedPhoto(t, photos, ownerID, ptrString("Porto"), time.Now())

	require.NoError(t, favorites.Add(ctx, viewerID, older))

	listed, err := photos.ListByUser(ctx, ownerID, viewerID)
	require.NoError(t, err)
	require.Len(t, listed, 2)

	// newest taken first
	require.Equal(t, newer, listed[0].PhotoID)
	require.Equal(t, older, listed[1].PhotoID)

	// the flag reflects the viewer's favorites, not the owner's
	require.False(t, listed[0].IsFavorite)
	require.True(t, listed[1].IsFavorite)

	// the owner has favorited nothing
	asOwner, err := photos.ListByUser(ctx, ownerID, ownerID)
	require.NoError(t, err)
	for _, photo := range asOwner {
		require.False(t, photo.IsFavorite)
	}
}

func TestIntegration_CountLocationsIgnoresNullAndEmpty(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	users := NewUserRepository(db, logger.Nop())
	photos := NewPhotoRepository(db, logger.Nop())

	userID := seedUser(t, users, "john@example.com")

	now := time.Now()
	seedPhoto(t, photos, userID, ptrString("Lisboa"), now)
	seedPhoto(t, photos, userID, ptrString("Lisboa"), now)
	seedPhoto(t, photos, userID, ptrString("Porto"), now)
	seedPhoto(t, photos, userID, nil, now)
	seedPhoto(t, photos, userID, ptrString(""), now)

	photoCount, err := photos.CountByUser(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, int64(5), photoCount)

	locationCount, err := photos.CountLocationsByUser(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, int64(2), locationCount)
}

func TestIntegration_ListByLocationBuckets(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	users := NewUserRepository(db, logger.Nop())
	photos := NewPhotoRepository(db, logger.Nop())

	userID := seedUser(t, users, "john@example.com")

	now := time.Now()
	lisboa := seedPhoto(t, photos, userID, ptrString("Lisboa"), now)
	seedPhoto(t, photos, userID, ptrString("Porto"), now)
	noLoc := seedPhoto(t, photos, userID, nil, now)
	emptyLoc := seedPhoto(t, photos, userID, ptrString(""), now)

	named, err := photos.ListByLocation(ctx, userID, "Lisboa")
	require.NoError(t, err)
	require.Len(t, named, 1)
	require.Equal(t, lisboa, named[0].PhotoID)

	// the no-location bucket covers both NULL and empty string
	unnamed, err := photos.ListByLocation(ctx, userID, "")
	require.NoError(t, err)
	require.Len(t, unnamed, 2)

	ids := []int64{unnamed[0].PhotoID, unnamed[1].PhotoID}
	require.ElementsMatch(t, []int64{noLoc, emptyLoc}, ids)
}

func TestIntegration_FavoriteListOrderedByFavoritedAt(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	users := NewUserRepository(db, logger.Nop())
	photos := NewPhotoRepository(db, logger.Nop())
	favorites := NewFavoriteRepository(db, logger.Nop())

	ownerID := seedUser(t, users, "owner@example.com")
	first := seedPhoto(t, photos, ownerID, ptrString("Lisboa"), time.Now())
	second := seedPhoto(t, photos, ownerID, ptrString("Porto"), time.Now())

	require.NoError(t, favorites.Add(ctx, ownerID, first))
	require.NoError(t, favorites.Add(ctx, ownerID, second))

	listed, err := favorites.ListPhotos(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, listed, 2)

	for _, photo := range listed {
		require.True(t, photo.IsFavorite)
		require.Equal(t, "Test User", photo.OwnerName)
		require.NotNil(t, photo.FavoritedAt)
	}
}

func TestIntegration_FeedJoinsOwnerNames(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	users := NewUserRepository(db, logger.Nop())
	photos := NewPhotoRepository(db, logger.Nop())

	aliceID := seedUser(t, users, "alice@example.com")
	bobID := seedUser(t, users, "bob@example.com")

	_, renameErr := users.UpdateName(ctx, aliceID, "Alice")
	require.NoError(t, renameErr)
	_, renameErr = users.UpdateName(ctx, bobID, "Bob")
	require.NoError(t, renameErr)

	seedPhoto(t, photos, aliceID, nil, time.Now().Add(-time.Minute))
	seedPhoto(t, photos, bobID, nil, time.Now())

	feed, err := photos.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 2)

	require.Equal(t, "Bob", feed[0].OwnerName)
	require.Equal(t, "Alice", feed[1].OwnerName)
}

func ptrString(s string) *string {
	return &s
}
