// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

package config

import (
	"github.com/samber/oops"

	"github.com/volant-app/volant/internal/model"
	"github.com/volant-app/volant/internal/parse"
)

// SeedTrips validates the configured trips with the same rules as the add
// command and returns them as a trip list.
func (c *Config) SeedTrips() (*model.TripList, error) {
	trips := model.NewTripList()
	for i, seed := range c.Trips {
		trip, err := seed.trip()
		if err == nil {
			err = model.AddTrip(trips, trip)
		}
		if err != nil {
			return nil, oops.
				With("seed", i+1).
				With("name", seed.Name).
				Wrapf(err, "trip seed %d", i+1)
		}
	}
	return trips, nil
}

func (s TripSeed) trip() (*model.Trip, error) {
	name, err := parse.ParseName(s.Name)
	if err != nil {
		return nil, err
	}
	location, err := parse.ParseLocation(s.Location)
	if err != nil {
		return nil, err
	}
	dates, err := parse.ParseDateRange(s.Dates)
	if err != nil {
		return nil, err
	}
	tags, err := parse.ParseTags(s.Tags)
	if err != nil {
		return nil, err
	}
	return model.NewTrip(name, location, dates, tags), nil
}
