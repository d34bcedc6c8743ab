package models

import "time"

// Favorite is a user-specific bookmark on a photo. At most one row exists
// per (user, photo) pair; the storage layer enforces this with a unique
// constraint, so re-adding an existing favorite never duplicates rows.
type Favorite struct {
	// FavoriteID is the internal unique identifier of the favorite row.
	FavoriteID int64 `json:"-"`

	// UserID references the user who favorited the photo.
	UserID int64 `json:"user_id"`

	// PhotoID references the favorited photo.
	PhotoID int64 `json:"photo_id"`

	// CreatedAt is the moment the favorite was added.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Favorite model.
func (f Favorite) TableName() string {
	return "favorites"
}
