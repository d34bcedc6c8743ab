// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_buildSelectPhotosByLocationQuery_NamedLocation(t *testing.T) {
	userID := int64(42)

	query, args, err := buildSelectPhotosByLocationQuery(userID, "Lisboa")
	require.NoError(t, err)

	// args checks
	require.Len(t, args, 2)
	require.Equal(t, userID, args[0])
	require.Equal(t, "Lisboa", args[1])

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from photos")
	require.Contains(t, q, "where")
	require.Contains(t, q, "user_id")
	require.Contains(t, q, "location_name")
	require.Contains(t, q, "order by taken_at desc")

	// placeholder format should be ? (SQLite)
	require.Contains(t, query, "?")
	require.NotContains(t, query, "$1")
}

func Test_buildSelectPhotosByLocationQuery_EmptyLocationMatchesNullAndEmpty(t *testing.T) {
	query, args, err := buildSelectPhotosByLocationQuery(1, "")
	require.NoError(t, err)

	q := strings.ToLower(query)

	// the no-location bucket must cover both NULL and '' so the album
	// detail agrees with the grouping
	require.Contains(t, q, "location_name is null")
	require.Contains(t, q, "or")
	require.Contains(t, q, "location_name = ?")

	// NULL is expressed in SQL, not as an argument
	require.Len(t, args, 2)
	require.Equal(t, int64(1), args[0])
	require.Equal(t, "", args[1])
}

func Test_buildSelectPhotosByLocationQuery_SelectsAllExpectedColumns(t *testing.T) {
	query, _, err := buildSelectPhotosByLocationQuery(1, "Porto")
	require.NoError(t, err)

	q := strings.ToLower(query)

	cols := []string{
		"id",
		"user_id",
		"uri",
		"comment",
		"latitude",
		"longitude",
		"location_name",
		"taken_at",
		"created_at",
	}
	for _, col := range cols {
		require.Contains(t, q, col)
	}
}
