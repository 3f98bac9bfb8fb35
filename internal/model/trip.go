// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

package model

import (
	"fmt"
	"strings"

	"github.com/oklog/ulid/v2"
)

// Trip is a planned journey with its own itinerary and journal.
type Trip struct {
	ID        ulid.ULID
	Name      Name
	Location  Location
	Range     DateRange
	Tags      TagSet
	Itinerary *ActivityList
	Journal   *EntryList
}

// NewTrip creates a trip with an empty itinerary and journal.
func NewTrip(name Name, location Location, dates DateRange, tags TagSet) *Trip {
	if tags == nil {
		tags = NewTagSet()
	}
	return &Trip{
		ID:        NewID(),
		Name:      name,
		Location:  location,
		Range:     dates,
		Tags:      tags,
		Itinerary: NewActivityList(),
		Journal:   NewEntryList(),
	}
}

// IdentityKey identifies a trip by its name, ignoring case, and its dates.
// Location and tags do not take part.
func (t *Trip) IdentityKey() string {
	return strings.ToLower(t.Name.String()) + "|" + t.Range.String()
}

func (t *Trip) String() string {
	s := fmt.Sprintf("%s (%s) %s", t.Name, t.Location, t.Range)
	if t.Tags.Len() > 0 {
		s += " " + t.Tags.String()
	}
	return s
}

// TripList holds trips in the order they were added.
type TripList = UniqueList[*Trip]

// NewTripList creates an empty trip list.
func NewTripList() *TripList {
	return NewUniqueList[*Trip](nil)
}

// AddTrip adds t to trips unless a trip with the same identity exists or
// the dates overlap another trip.
func AddTrip(trips *TripList, t *Trip) error {
	if trips.Contains(t) {
		return ErrDuplicate(t.IdentityKey())
	}
	for _, existing := range trips.Items() {
		if existing.Range.Overlaps(t.Range) {
			return ErrTripOverlap(existing)
		}
	}
	return trips.Add(t)
}
