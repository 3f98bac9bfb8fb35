// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

package model

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// Length limits for free-text values, counted in runes.
const (
	MaxNameLength     = 60
	MaxLocationLength = 100
	MaxTagLength      = 30
	MaxContentLength  = 2000
)

// Grammar messages. Each one is shown verbatim to the user when the matching
// IsValid* predicate rejects their input.
const (
	NameConstraints     = "Names should only contain alphanumeric characters and spaces, and it should not be blank or longer than 60 characters."
	LocationConstraints = "Locations can take any values, and it should not be blank or longer than 100 characters."
	TagConstraints      = "Tags names should be a single alphanumeric word of at most 30 characters."
	ContentConstraints  = "Journal content should not be blank or longer than 2000 characters."
)

var (
	nameRegex        = regexp.MustCompile(`^[\p{L}\p{N}]+( [\p{L}\p{N}]+)*$`)
	leadingTextRegex = regexp.MustCompile(`^\S.*$`)
	tagRegex         = regexp.MustCompile(`^[\p{L}\p{N}]+$`)
)

// Name is the name of a trip or an activity.
type Name string

// IsValidName reports whether s satisfies the name grammar.
func IsValidName(s string) bool {
	return withinLength(s, MaxNameLength) && nameRegex.MatchString(s)
}

// MustName converts s to a Name. Panics if s is not a valid name.
func MustName(s string) Name {
	mustSatisfy(IsValidName(s), NameConstraints)
	return Name(s)
}

func (n Name) String() string { return string(n) }

// Location is where a trip, activity or journal entry takes place.
type Location string

// IsValidLocation reports whether s satisfies the location grammar.
func IsValidLocation(s string) bool {
	return withinLength(s, MaxLocationLength) && leadingTextRegex.MatchString(s) && !hasControlChars(s)
}

// MustLocation converts s to a Location. Panics if s is not a valid location.
func MustLocation(s string) Location {
	mustSatisfy(IsValidLocation(s), LocationConstraints)
	return Location(s)
}

func (l Location) String() string { return string(l) }

// Content is the body of a journal entry.
type Content string

// IsValidContent reports whether s satisfies the journal content grammar.
// Tabs are the only control character allowed.
func IsValidContent(s string) bool {
	if s == "" || !withinLength(s, MaxContentLength) || !leadingTextRegex.MatchString(s) {
		return false
	}
	for _, r := range s {
		if unicode.IsControl(r) && r != '\t' {
			return false
		}
	}
	return true
}

// MustContent converts s to Content. Panics if s is not valid content.
func MustContent(s string) Content {
	mustSatisfy(IsValidContent(s), ContentConstraints)
	return Content(s)
}

func (c Content) String() string { return string(c) }

func withinLength(s string, limit int) bool {
	return utf8.ValidString(s) && utf8.RuneCountInString(s) <= limit
}

func hasControlChars(s string) bool {
	for _, r := range s {
		if unicode.IsControl(r) {
			return true
		}
	}
	return false
}

func mustSatisfy(ok bool, constraint string) {
	if !ok {
		panic("model: " + constraint)
	}
}
