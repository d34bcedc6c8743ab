package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/geo-snap/internal/logger"
	"github.com/MKhiriev/geo-snap/internal/mock"
	"github.com/MKhiriev/geo-snap/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestPhotoSvc(t *testing.T) (PhotoService, *mock.MockPhotoRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := mock.NewMockPhotoRepository(ctrl)

	return NewPhotoService(mockRepo, logger.Nop()), mockRepo
}

func TestSave_DefaultsTakenAtToNow(t *testing.T) {
	svc, mockRepo := newTestPhotoSvc(t)
	ctx := context.Background()

	before := time.Now().UTC()

	var stored models.Photo
	mockRepo.EXPECT().
		CreatePhoto(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, photo models.Photo) (int64, error) {
			stored = photo
			return 11, nil
		})

	photoID, err := svc.Save(ctx, PhotoInput{UserID: 1, URI: "file:///photos/a.jpg"})
	require.NoError(t, err)
	assert.Equal(t, int64(11), photoID)

	after := time.Now().UTC()
	require.False(t, stored.TakenAt.IsZero())
	assert.False(t, stored.TakenAt.Before(before))
	assert.False(t, stored.TakenAt.After(after))
}

func TestSave_KeepsExplicitTakenAt(t *testing.T) {
	svc, mockRepo := newTestPhotoSvc(t)
	ctx := context.Background()

	takenAt := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	mockRepo.EXPECT().
		CreatePhoto(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, photo models.Photo) (int64, error) {
			assert.True(t, photo.TakenAt.Equal(takenAt))
			return 11, nil
		})

	_, err := svc.Save(ctx, PhotoInput{UserID: 1, URI: "file:///photos/a.jpg", TakenAt: takenAt})
	require.NoError(t, err)
}

func TestSave_Validation(t *testing.T) {
	svc, _ := newTestPhotoSvc(t)
	ctx := context.Background()

	_, err := svc.Save(ctx, PhotoInput{URI: "file:///photos/a.jpg"})
	assert.ErrorIs(t, err, ErrValidationNoUserID)

	_, err = svc.Save(ctx, PhotoInput{UserID: 1})
	assert.ErrorIs(t, err, ErrValidationNoPhotoURI)
}

func TestSave_StoresHalfCoordinatePairAsIs(t *testing.T) {
	svc, mockRepo := newTestPhotoSvc(t)
	ctx := context.Background()

	latitude := 38.7223

	mockRepo.EXPECT().
		CreatePhoto(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, photo models.Photo) (int64, error) {
			require.NotNil(t, photo.Latitude)
			assert.Nil(t, photo.Longitude)
			return 11, nil
		})

	_, err := svc.Save(ctx, PhotoInput{UserID: 1, URI: "file:///photos/a.jpg", Latitude: &latitude})
	require.NoError(t, err)
}

func TestAlbums_GroupsUserPhotos(t *testing.T) {
	svc, mockRepo := newTestPhotoSvc(t)
	ctx := context.Background()

	lisboa := "Lisboa"
	now := time.Now()
	photos := []models.Photo{
		{PhotoID: 1, UserID: 1, URI: "file:///1.jpg", LocationName: &lisboa, TakenAt: now},
		{PhotoID: 2, UserID: 1, URI: "file:///2.jpg", TakenAt: now.Add(-time.Minute)},
	}

	mockRepo.EXPECT().ListByUser(ctx, int64(1), int64(2)).Return(photos, nil)

	albums, err := svc.Albums(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, albums, 2)

	assert.Equal(t, "Lisboa", albums[0].Name)
	assert.Equal(t, models.NoLocationAlbum, albums[1].Name)
}

func TestAlbumPhotos_MapsNoLocationSentinelToEmptyBucket(t *testing.T) {
	svc, mockRepo := newTestPhotoSvc(t)
	ctx := context.Background()

	mockRepo.EXPECT().
		ListByLocation(ctx, int64(1), "").
		Return([]models.Photo{}, nil)

	_, err := svc.AlbumPhotos(ctx, 1, models.NoLocationAlbum)
	require.NoError(t, err)
}

func TestAlbumPhotos_PassesNamedLocation(t *testing.T) {
	svc, mockRepo := newTestPhotoSvc(t)
	ctx := context.Background()

	mockRepo.EXPECT().
		ListByLocation(ctx, int64(1), "Porto").
		Return([]models.Photo{{PhotoID: 3}}, nil)

	photos, err := svc.AlbumPhotos(ctx, 1, "Porto")
	require.NoError(t, err)
	require.Len(t, photos, 1)
}

func TestDelete_Validation(t *testing.T) {
	svc, _ := newTestPhotoSvc(t)

	_, err := svc.Delete(context.Background(), 0)
	assert.ErrorIs(t, err, ErrValidationNoPhotoID)
}

func TestFeed_PassesThrough(t *testing.T) {
	svc, mockRepo := newTestPhotoSvc(t)
	ctx := context.Background()

	feed := []models.FeedPhoto{
		{Photo: models.Photo{PhotoID: 1}, OwnerName: "Alice"},
	}
	mockRepo.EXPECT().ListAll(ctx).Return(feed, nil)

	got, err := svc.Feed(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Alice", got[0].OwnerName)
}
