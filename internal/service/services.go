package service

import (
	"github.com/MKhiriev/geo-snap/internal/logger"
	"github.com/MKhiriev/geo-snap/internal/store"
)

// Services groups all application services into a single value that the
// entry point wires to the UI shell.
type Services struct {
	AuthService     AuthService
	PhotoService    PhotoService
	FavoriteService FavoriteService
	StatsService    StatsService
}

// NewServices builds the full service layer on top of the storage layer.
func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(storages.Users, logger),
		PhotoService:    NewPhotoService(storages.Photos, logger),
		FavoriteService: NewFavoriteService(storages.Favorites, logger),
		StatsService:    NewStatsService(storages.Photos, storages.Favorites, logger),
	}
}
