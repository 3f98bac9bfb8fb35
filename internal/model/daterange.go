// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

package model

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// DateRangeSeparator joins the two dates of a date range in display form.
const DateRangeSeparator = " to "

// DateRangeConstraints is shown when a date range is rejected.
const DateRangeConstraints = "Date ranges should be written as START to END, e.g. 2020-01-01 to 2020-01-05, " +
	"where both are real dates in YYYY-MM-DD format and END is not before START."

// dateRangeLexer has no token for free words or stray whitespace, so
// anything other than two dates joined by " to " fails to lex.
var dateRangeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Date", Pattern: `\d{4}-\d{2}-\d{2}`},
	{Name: "Sep", Pattern: ` to `},
})

// dateRangeText is the grammar: Date Sep Date.
type dateRangeText struct {
	Start string `parser:"@Date Sep"`
	End   string `parser:"@Date"`
}

var dateRangeParser = participle.MustBuild[dateRangeText](
	participle.Lexer(dateRangeLexer),
)

// SplitDateRange parses s with the date-range grammar and returns the raw
// start and end tokens. The tokens are shaped like dates but are not checked
// against the calendar.
func SplitDateRange(s string) (start, end string, ok bool) {
	ast, err := dateRangeParser.ParseString("", s)
	if err != nil {
		return "", "", false
	}
	return ast.Start, ast.End, true
}

// IsValidDateRange reports whether s is "START to END" where both are real
// dates and END is not before START.
func IsValidDateRange(s string) bool {
	start, end, ok := SplitDateRange(s)
	if !ok || !IsValidDate(start) || !IsValidDate(end) {
		return false
	}
	return !MustDate(end).Before(MustDate(start))
}

// DateRange is an inclusive span of calendar days.
type DateRange struct {
	Start Date
	End   Date
}

// NewDateRange returns the range from start to end.
// Panics if end is before start.
func NewDateRange(start, end Date) DateRange {
	if end.Before(start) {
		panic(fmt.Sprintf("model: date range end %s is before start %s", end, start))
	}
	return DateRange{Start: start, End: end}
}

// MustDateRange parses s. Panics if s is not a valid date range.
func MustDateRange(s string) DateRange {
	mustSatisfy(IsValidDateRange(s), DateRangeConstraints)
	start, end, _ := SplitDateRange(s)
	return NewDateRange(MustDate(start), MustDate(end))
}

// Contains reports whether d falls inside the range, ends included.
func (r DateRange) Contains(d Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// Overlaps reports whether the two ranges share at least one day.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.End.Before(other.Start) && !other.End.Before(r.Start)
}

// Days returns the number of days in the range, ends included.
func (r DateRange) Days() int {
	return int(r.End.Time().Sub(r.Start.Time()).Hours()/24) + 1
}

func (r DateRange) String() string {
	return r.Start.String() + DateRangeSeparator + r.End.String()
}
