package models

// UserStats is the per-user rollup recomputed on demand from raw rows.
// It carries no identity and is never persisted.
type UserStats struct {
	// PhotoCount is the total number of photos owned by the user.
	PhotoCount int64 `json:"photo_count"`

	// LocationCount is the number of distinct non-empty location names
	// among the user's photos. NULL and "" are both excluded.
	LocationCount int64 `json:"location_count"`

	// FavoriteCount is the number of favorite rows owned by the user.
	FavoriteCount int64 `json:"favorite_count"`
}
