package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/geo-snap/internal/config"
	"github.com/MKhiriev/geo-snap/internal/logger"
	"github.com/MKhiriev/geo-snap/internal/service"
	"github.com/MKhiriev/geo-snap/internal/store"
	"github.com/MKhiriev/geo-snap/internal/utils"
	"github.com/rs/zerolog"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("geosnapd")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.LogLevel != "" {
		level, parseErr := zerolog.ParseLevel(cfg.App.LogLevel)
		if parseErr != nil {
			log.Fatal().Err(parseErr).Msg("error parsing log level")
		}
		zerolog.SetGlobalLevel(level)
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	services := service.NewServices(storages, log)

	if cfg.App.DemoSeed {
		ctx := log.WithContext(context.Background())
		if seedErr := runDemoSeed(ctx, services); seedErr != nil {
			log.Fatal().Err(seedErr).Msg("error running demo seed")
		}
	}
}

// runDemoSeed exercises the full local data layer the way the mobile shell
// does on first launch: one account, a handful of geotagged photos, a couple
// of favorites, then the derived album list and profile counters.
func runDemoSeed(ctx context.Context, services *service.Services) error {
	const (
		demoEmail    = "demo@geosnap.local"
		demoPassword = "demo"
	)

	userID, err := services.AuthService.Register(ctx, "Demo User", demoEmail, demoPassword, "1990-01-01")
	if err != nil {
		if !errors.Is(err, store.ErrDuplicateEmail) {
			return fmt.Errorf("register demo user: %w", err)
		}

		// previous run already seeded the account, reuse it
		user, loginErr := services.AuthService.Login(ctx, demoEmail, demoPassword)
		if loginErr != nil {
			return fmt.Errorf("login demo user: %w", loginErr)
		}
		if user == nil {
			return errors.New("demo account exists but credentials do not match")
		}
		userID = user.UserID
	}

	uuids := utils.NewUUIDGenerator()
	seedPhotos := []struct {
		location  *string
		latitude  *float64
		longitude *float64
	}{
		{location: ptr("Lisboa"), latitude: ptr(38.7223), longitude: ptr(-9.1393)},
		{location: ptr("Lisboa"), latitude: ptr(38.7169), longitude: ptr(-9.1399)},
		{location: ptr("Porto"), latitude: ptr(41.1579), longitude: ptr(-8.6291)},
		{location: nil, latitude: nil, longitude: nil},
	}

	photoIDs := make([]int64, 0, len(seedPhotos))
	for _, seed := range seedPhotos {
		photoID, saveErr := services.PhotoService.Save(ctx, service.PhotoInput{
			UserID:       userID,
			URI:          fmt.Sprintf("file:///photos/%s.jpg", uuids.Generate()),
			Latitude:     seed.latitude,
			Longitude:    seed.longitude,
			LocationName: seed.location,
		})
		if saveErr != nil {
			return fmt.Errorf("save demo photo: %w", saveErr)
		}
		photoIDs = append(photoIDs, photoID)
	}

	if _, err := services.FavoriteService.Toggle(ctx, userID, photoIDs[0]); err != nil {
		return fmt.Errorf("favorite demo photo: %w", err)
	}

	albums, err := services.PhotoService.Albums(ctx, userID, userID)
	if err != nil {
		return fmt.Errorf("list demo albums: %w", err)
	}

	fmt.Println("Albums:")
	for _, album := range albums {
		fmt.Printf("  %s: %d photo(s), cover %s\n", album.Name, album.PhotoCount, album.CoverURI)
	}

	stats, err := services.StatsService.UserStats(ctx, userID)
	if err != nil {
		return fmt.Errorf("compute demo stats: %w", err)
	}

	fmt.Printf("Stats: %d photo(s), %d location(s), %d favorite(s)\n",
		stats.PhotoCount, stats.LocationCount, stats.FavoriteCount)

	return nil
}

func ptr[T any](v T) *T {
	return &v
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
