// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

package model

import (
	"fmt"

	"github.com/oklog/ulid/v2"
)

// Activity is one item on a trip's itinerary.
type Activity struct {
	ID       ulid.ULID
	Name     Name
	Location Location
	Date     Date
	Time     TimeOfDay
}

// NewActivity creates an activity with a fresh ID.
func NewActivity(name Name, location Location, date Date, at TimeOfDay) Activity {
	return Activity{
		ID:       NewID(),
		Name:     name,
		Location: location,
		Date:     date,
		Time:     at,
	}
}

// IdentityKey identifies an activity by when it happens: two activities
// cannot share a date and time.
func (a Activity) IdentityKey() string {
	return a.Date.String() + " " + a.Time.String()
}

func (a Activity) String() string {
	return fmt.Sprintf("%s %s %s @ %s", a.Date, a.Time, a.Name, a.Location)
}

// ActivityList holds activities in chronological order.
type ActivityList = UniqueList[Activity]

// NewActivityList creates an empty itinerary.
func NewActivityList() *ActivityList {
	return NewUniqueList(func(a, b Activity) bool {
		return chronological(a.Date, a.Time, b.Date, b.Time)
	})
}

func chronological(d1 Date, t1 TimeOfDay, d2 Date, t2 TimeOfDay) bool {
	if c := d1.Compare(d2); c != 0 {
		return c < 0
	}
	return t1.Minutes() < t2.Minutes()
}
