// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

package model

import (
	"sort"
	"strings"
)

// Tag labels a trip.
type Tag string

// IsValidTagName reports whether s satisfies the tag grammar.
func IsValidTagName(s string) bool {
	return withinLength(s, MaxTagLength) && tagRegex.MatchString(s)
}

// MustTag converts s to a Tag. Panics if s is not a valid tag name.
func MustTag(s string) Tag {
	mustSatisfy(IsValidTagName(s), TagConstraints)
	return Tag(s)
}

// String returns the tag in its bracketed display form.
func (t Tag) String() string { return "[" + string(t) + "]" }

// TagSet is a set of tags keyed by tag value. The zero value is not usable;
// create one with NewTagSet.
type TagSet map[Tag]struct{}

// NewTagSet returns a set holding tags, with duplicates collapsed.
func NewTagSet(tags ...Tag) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

// Add inserts t, reporting whether it was absent.
func (s TagSet) Add(t Tag) bool {
	if _, ok := s[t]; ok {
		return false
	}
	s[t] = struct{}{}
	return true
}

// Contains reports whether t is in the set.
func (s TagSet) Contains(t Tag) bool {
	_, ok := s[t]
	return ok
}

// Len returns the number of tags.
func (s TagSet) Len() int { return len(s) }

// Sorted returns the tags in lexical order.
func (s TagSet) Sorted() []Tag {
	tags := make([]Tag, 0, len(s))
	for t := range s {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}

// Equal reports whether both sets hold the same tags.
func (s TagSet) Equal(other TagSet) bool {
	if len(s) != len(other) {
		return false
	}
	for t := range s {
		if !other.Contains(t) {
			return false
		}
	}
	return true
}

// String renders the tags in lexical order, e.g. "[beach][family]".
func (s TagSet) String() string {
	var b strings.Builder
	for _, t := range s.Sorted() {
		b.WriteString(t.String())
	}
	return b.String()
}
