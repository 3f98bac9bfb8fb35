// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

package model

import "strings"

// Feeling records the writer's mood in a journal entry.
type Feeling string

// Feelings accepted by the journal.
const (
	FeelingHappy   Feeling = "happy"
	FeelingExcited Feeling = "excited"
	FeelingRelaxed Feeling = "relaxed"
	FeelingNeutral Feeling = "neutral"
	FeelingTired   Feeling = "tired"
	FeelingSad     Feeling = "sad"
	FeelingAngry   Feeling = "angry"
)

// FeelingConstraints is shown when a feeling is not recognised.
const FeelingConstraints = "Feeling should be one of: happy, excited, relaxed, neutral, tired, sad, angry."

var feelings = map[Feeling]bool{
	FeelingHappy:   true,
	FeelingExcited: true,
	FeelingRelaxed: true,
	FeelingNeutral: true,
	FeelingTired:   true,
	FeelingSad:     true,
	FeelingAngry:   true,
}

// IsValidFeeling reports whether s names a feeling, ignoring case.
func IsValidFeeling(s string) bool {
	return feelings[Feeling(strings.ToLower(s))]
}

// MustFeeling converts s to its canonical lower-case Feeling.
// Panics if s is not a feeling.
func MustFeeling(s string) Feeling {
	mustSatisfy(IsValidFeeling(s), FeelingConstraints)
	return Feeling(strings.ToLower(s))
}

func (f Feeling) String() string { return string(f) }
