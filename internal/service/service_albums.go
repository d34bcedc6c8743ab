// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/geo-snap/models"
)

// GroupIntoAlbums partitions photos into location albums in a single pass.
//
// The bucket key is the photo's location name; photos with a nil or empty
// location name share the [models.NoLocationAlbum] bucket. Albums appear in
// the order their first photo did, each photo lands in exactly one album,
// the cover is the first photo of the bucket with a non-empty URI, and the
// album's CreatedAt is its first photo's TakenAt. An empty input produces an
// empty (non-nil) slice.
func GroupIntoAlbums(photos []models.Photo) []models.Album {
	albums := make([]models.Album, 0)
	index := make(map[string]int)

	for _, photo := range photos {
		name := models.NoLocationAlbum
		if photo.LocationName != nil && *photo.LocationName != "" {
			name = *photo.LocationName
		}

		i, ok := index[name]
		if !ok {
			i = len(albums)
			index[name] = i
			albums = append(albums, models.Album{
				Name:      name,
				Photos:    make([]models.Photo, 0, 4),
				CreatedAt: photo.TakenAt,
			})
		}

		albums[i].Photos = append(albums[i].Photos, photo)
		albums[i].PhotoCount++
		if albums[i].CoverURI == "" {
			albums[i].CoverURI = photo.URI
		}
	}

	return albums
}
