// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// NoLocationAlbum is the bucket name under which photos without a resolved
// location are grouped. The literal matches the label the mobile shell
// renders for location-less albums.
const NoLocationAlbum = "Sem localização"

// Album is a derived, non-persisted grouping of photos by location name.
// Album identity is the location-name string itself: nothing survives
// recomputation, and grouping the same photo slice twice yields identical
// albums.
type Album struct {
	// Name is the grouping key: a location name, or [NoLocationAlbum]
	// when the member photos carry none.
	Name string `json:"name"`

	// Photos holds the member photos in the order they appeared in the
	// grouped input.
	Photos []Photo `json:"photos"`

	// PhotoCount is len(Photos), kept as an explicit field so list views
	// can render counts without touching the member slice.
	PhotoCount int `json:"photo_count"`

	// CoverURI is the URI of the first member photo that has one.
	// Empty when no member carries an image reference.
	CoverURI string `json:"cover_uri"`

	// CreatedAt is the representative timestamp of the album: the TakenAt
	// of the first photo encountered for this grouping key.
	CreatedAt time.Time `json:"created_at"`
}
