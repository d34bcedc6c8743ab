// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `
		INSERT INTO users (name, email, password, birth_date)
		VALUES (?, ?, ?, ?);`

	findUserByCredentials = `
		SELECT id, name, email, password, birth_date, profile_image, created_at
		FROM users
		WHERE email = ? AND password = ?;`

	findUserByID = `
		SELECT id, name, email, password, birth_date, profile_image, created_at
		FROM users
		WHERE id = ?;`

	updateUserName = `
		UPDATE users
		SET name = ?
		WHERE id = ?;`

	updateUserProfileImage = `
		UPDATE users
		SET profile_image = ?
		WHERE id = ?;`

	getUserProfileImage = `
		SELECT profile_image
		FROM users
		WHERE id = ?;`

	createPhoto = `
		INSERT INTO photos (user_id, uri, comment, latitude, longitude, location_name, taken_at)
		VALUES (?, ?, ?, ?, ?, ?, ?);`

	deletePhotoFavorites = `
		DELETE FROM favorites
		WHERE photo_id = ?;`

	deletePhoto = `
		DELETE FROM photos
		WHERE id = ?;`

	listUserPhotos = `
		SELECT
			p.id,
			p.user_id,
			p.uri,
			p.comment,
			p.latitude,
			p.longitude,
			p.location_name,
			p.taken_at,
			p.created_at,
			CASE WHEN f.id IS NOT NULL THEN 1 ELSE 0 END AS is_favorite
		FROM photos p
		LEFT JOIN favorites f ON p.id = f.photo_id AND f.user_id = ?
		WHERE p.user_id = ?
		ORDER BY p.taken_at DESC, p.id DESC;`

	listAllPhotos = `
		SELECT
			p.id,
			p.user_id,
			p.uri,
			p.comment,
			p.latitude,
			p.longitude,
			p.location_name,
			p.taken_at,
			p.created_at,
			u.name AS user_name
		FROM photos p
		JOIN users u ON p.user_id = u.id
		ORDER BY p.taken_at DESC, p.id DESC;`

	saveFavorite = `
		INSERT OR REPLACE INTO favorites (user_id, photo_id)
		VALUES (?, ?);`

	deleteFavorite = `
		DELETE FROM favorites
		WHERE user_id = ? AND photo_id = ?;`

	findFavorite = `
		SELECT id
		FROM favorites
		WHERE user_id = ? AND photo_id = ?;`

	listFavoritePhotos = `
		SELECT
			p.id,
			p.user_id,
			p.uri,
			p.comment,
			p.latitude,
			p.longitude,
			p.location_name,
			p.taken_at,
			p.created_at,
			u.name AS user_name,
			f.created_at AS favorited_at
		FROM photos p
		JOIN favorites f ON p.id = f.photo_id
		JOIN users u ON p.user_id = u.id
		WHERE f.user_id = ?
		ORDER BY f.created_at DESC, f.id DESC;`

	countUserPhotos = `
		SELECT COUNT(*)
		FROM photos
		WHERE user_id = ?;`

	countUserLocations = `
		SELECT COUNT(DISTINCT location_name)
		FROM photos
		WHERE user_id = ? AND location_name IS NOT NULL AND location_name != '';`

	countUserFavorites = `
		SELECT COUNT(*)
		FROM favorites
		WHERE user_id = ?;`
)

// buildSelectPhotosByLocationQuery builds the album-detail query: a user's
// photos filtered by location name. An empty locationName selects the
// "no location" bucket, which must match both NULL and '' so that the result
// agrees with how the aggregation layer groups photos.
func buildSelectPhotosByLocationQuery(userID int64, locationName string) (string, []any, error) {
	builder := sq.Select(
		"id",
		"user_id",
		"uri",
		"comment",
		"latitude",
		"longitude",
		"location_name",
		"taken_at",
		"created_at",
	).
		From("photos").
		Where(sq.Eq{"user_id": userID})

	if locationName == "" {
		builder = builder.Where(sq.Or{
			sq.Eq{"location_name": nil},
			sq.Eq{"location_name": ""},
		})
	} else {
		builder = builder.Where(sq.Eq{"location_name": locationName})
	}

	return builder.
		OrderBy("taken_at DESC", "id DESC").
		ToSql()
}
