// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/volant-app/volant/internal/model"
	"github.com/volant-app/volant/internal/parse"
	"github.com/volant-app/volant/pkg/errutil"
)

func TestSeedTrips(t *testing.T) {
	cfg := Default()
	cfg.Trips = []TripSeed{
		{Name: "Japan", Location: "Tokyo", Dates: "2024-03-01 to 2024-03-09", Tags: []string{"food"}},
		{Name: "Korea", Location: "Seoul", Dates: "2024-04-01 to 2024-04-05"},
	}

	trips, err := cfg.SeedTrips()
	require.NoError(t, err)
	require.Equal(t, 2, trips.Len())
	first := trips.Items()[0]
	assert.Equal(t, model.Name("Japan"), first.Name)
	assert.True(t, first.Tags.Contains("food"))
}

func TestSeedTrips_ReportsFieldConstraint(t *testing.T) {
	cfg := Default()
	cfg.Trips = []TripSeed{
		{Name: "Japan", Location: "Tokyo", Dates: "2024-03-01 to 2024-03-09"},
		{Name: "Korea!", Location: "Seoul", Dates: "2024-04-01 to 2024-04-05"},
	}

	_, err := cfg.SeedTrips()
	require.Error(t, err)
	errutil.AssertErrorCode(t, err, parse.CodeInvalidFormat)
	errutil.AssertErrorContext(t, err, "seed", 2)
	assert.Contains(t, err.Error(), model.NameConstraints)
}

func TestSeedTrips_RejectsOverlap(t *testing.T) {
	cfg := Default()
	cfg.Trips = []TripSeed{
		{Name: "Japan", Location: "Tokyo", Dates: "2024-03-01 to 2024-03-09"},
		{Name: "Korea", Location: "Seoul", Dates: "2024-03-09 to 2024-03-12"},
	}

	_, err := cfg.SeedTrips()
	errutil.AssertErrorCode(t, err, model.CodeTripOverlap)
}

func TestSeedTrips_Empty(t *testing.T) {
	trips, err := Default().SeedTrips()
	require.NoError(t, err)
	assert.Equal(t, 0, trips.Len())
}
