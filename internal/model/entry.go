// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

package model

import (
	"fmt"
	"strings"

	"github.com/oklog/ulid/v2"
)

// Entry is one journal entry written during a trip.
type Entry struct {
	ID       ulid.ULID
	Date     Date
	Time     TimeOfDay
	Content  Content
	Feeling  Feeling  // empty when not recorded
	Location Location // empty when not recorded
}

// NewEntry creates a journal entry with a fresh ID.
func NewEntry(date Date, at TimeOfDay, content Content, feeling Feeling, location Location) Entry {
	return Entry{
		ID:       NewID(),
		Date:     date,
		Time:     at,
		Content:  content,
		Feeling:  feeling,
		Location: location,
	}
}

// IdentityKey identifies an entry by when it was written.
func (e Entry) IdentityKey() string {
	return e.Date.String() + " " + e.Time.String()
}

func (e Entry) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", e.Date, e.Time)
	if e.Feeling != "" {
		fmt.Fprintf(&b, " (%s)", e.Feeling)
	}
	if e.Location != "" {
		fmt.Fprintf(&b, " @ %s", e.Location)
	}
	fmt.Fprintf(&b, ": %s", e.Content)
	return b.String()
}

// EntryList holds journal entries in chronological order.
type EntryList = UniqueList[Entry]

// NewEntryList creates an empty journal.
func NewEntryList() *EntryList {
	return NewUniqueList(func(a, b Entry) bool {
		return chronological(a.Date, a.Time, b.Date, b.Time)
	})
}
