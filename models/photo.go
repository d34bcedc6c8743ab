package models

import "time"

// Photo represents a single captured photograph with its metadata.
// Latitude and Longitude are semantically a pair: either both are set or
// both are nil. The store does not reject a half-present pair, but every
// consumer must treat it as "no location" (see [Photo.HasLocation]).
type Photo struct {
	// PhotoID is the internal unique identifier of the photo,
	// assigned by the database on insert.
	PhotoID int64 `json:"id"`

	// UserID references the owning user. Referential integrity is
	// enforced at the storage layer.
	UserID int64 `json:"user_id"`

	// URI is an opaque reference to the image location (file path or URL).
	// The data layer never interprets it.
	URI string `json:"uri"`

	// Comment is an optional free-form text attached at capture time.
	Comment *string `json:"comment,omitempty"`

	// Latitude of the capture point. Nil when the photo has no location.
	Latitude *float64 `json:"latitude,omitempty"`

	// Longitude of the capture point. Nil when the photo has no location.
	Longitude *float64 `json:"longitude,omitempty"`

	// LocationName is the optional human-readable place name resolved by
	// the geolocation collaborator. Album grouping keys on this value.
	LocationName *string `json:"location_name,omitempty"`

	// TakenAt is the capture timestamp. It is distinct from CreatedAt so
	// that backdated imports and timezone corrections are possible.
	TakenAt time.Time `json:"taken_at"`

	// CreatedAt is the row-creation timestamp.
	CreatedAt time.Time `json:"created_at"`

	// IsFavorite reports whether the viewing user has favorited this
	// photo. It is populated only by viewer-scoped listings and is never
	// persisted on the photos table.
	IsFavorite bool `json:"is_favorite"`
}

// TableName returns the name of the database table
// associated with the Photo model.
func (p Photo) TableName() string {
	return "photos"
}

// HasLocation reports whether the photo carries a complete coordinate pair.
// A half-present pair counts as no location.
func (p Photo) HasLocation() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// FeedPhoto is a photo enriched with cross-table attributes for feed and
// favorites listings: the owner's display name and, for favorites, the
// moment the viewer favorited it.
type FeedPhoto struct {
	Photo

	// OwnerName is the display name of the photo's owner.
	OwnerName string `json:"user_name"`

	// FavoritedAt is set only on favorites listings and holds the
	// creation timestamp of the favorite row.
	FavoritedAt *time.Time `json:"favorited_at,omitempty"`
}
