// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/geo-snap/internal/logger"
	"github.com/MKhiriev/geo-snap/internal/store"
	"github.com/MKhiriev/geo-snap/models"
)

type authService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] backed by the user repository.
func NewAuthService(userRepository store.UserRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (a *authService) Register(ctx context.Context, name, email, password, birthDate string) (int64, error) {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		log.Warn().
			Str("func", "*authService.Register").
			Msg("registration rejected: empty name, email or password")
		return 0, ErrInvalidDataProvided
	}

	userID, err := a.userRepository.CreateUser(ctx, name, email, password, birthDate)
	if err != nil {
		return 0, fmt.Errorf("register user: %w", err)
	}

	log.Info().
		Str("func", "*authService.Register").
		Int64("user_id", userID).
		Msg("user registered")

	return userID, nil
}

// Login matches the exact credential pair. Password hashing belongs to the
// authentication shell outside this module, so the stored credential is
// compared verbatim.
func (a *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindByCredentials(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login user: %w", err)
	}

	return user, nil
}

func (a *authService) Profile(ctx context.Context, userID int64) (*models.User, error) {
	if userID == 0 {
		return nil, ErrValidationNoUserID
	}

	return a.userRepository.FindByID(ctx, userID)
}

func (a *authService) UpdateProfile(ctx context.Context, userID int64, name string) (bool, error) {
	if userID == 0 {
		return false, ErrValidationNoUserID
	}
	if strings.TrimSpace(name) == "" {
		return false, ErrInvalidDataProvided
	}

	return a.userRepository.UpdateName(ctx, userID, strings.TrimSpace(name))
}

func (a *authService) UpdateProfileImage(ctx context.Context, userID int64, imageRef string) (bool, error) {
	if userID == 0 {
		return false, ErrValidationNoUserID
	}

	return a.userRepository.UpdateProfileImage(ctx, userID, imageRef)
}
