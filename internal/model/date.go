// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

package model

import (
	"fmt"
	"regexp"
	"time"
)

// DateLayout is the only accepted textual form of a calendar date.
const DateLayout = "2006-01-02"

// Grammar messages for dates and times.
const (
	DateConstraints = "Dates should be real calendar dates in the format YYYY-MM-DD."
	TimeConstraints = "Times should be in 24-hour HH:MM format, e.g. 09:30."
)

var (
	dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRegex = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)
)

// Date is a calendar day without a time zone.
type Date struct {
	t time.Time
}

// NewDate returns the date for year, month and day. Out-of-range values are
// normalised the way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// IsValidDate reports whether s is a real calendar date in DateLayout.
func IsValidDate(s string) bool {
	if !dateRegex.MatchString(s) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// MustDate parses s. Panics if s is not a valid date.
func MustDate(s string) Date {
	t, err := time.Parse(DateLayout, s)
	mustSatisfy(err == nil && dateRegex.MatchString(s), DateConstraints)
	return Date{t: t}
}

// IsZero reports whether d is the zero date.
func (d Date) IsZero() bool { return d.t.IsZero() }

// Time returns the date as midnight UTC.
func (d Date) Time() time.Time { return d.t }

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

// After reports whether d is later than other.
func (d Date) After(other Date) bool { return d.t.After(other.t) }

// Compare returns -1, 0 or +1 as d is before, equal to or after other.
func (d Date) Compare(other Date) int { return d.t.Compare(other.t) }

// AddDays returns the date n days after d.
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

func (d Date) String() string { return d.t.Format(DateLayout) }

// TimeOfDay is a wall-clock time with minute precision.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// IsValidTime reports whether s is a 24-hour HH:MM time.
func IsValidTime(s string) bool {
	return timeRegex.MatchString(s)
}

// MustTime parses s. Panics if s is not a valid time.
func MustTime(s string) TimeOfDay {
	mustSatisfy(IsValidTime(s), TimeConstraints)
	var t TimeOfDay
	// The grammar guarantees two two-digit fields.
	if _, err := fmt.Sscanf(s, "%d:%d", &t.Hour, &t.Minute); err != nil {
		panic("model: " + err.Error())
	}
	return t
}

// Minutes returns the number of minutes since midnight.
func (t TimeOfDay) Minutes() int { return t.Hour*60 + t.Minute }

func (t TimeOfDay) String() string { return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute) }
