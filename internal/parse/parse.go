// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

// Package parse converts raw user text into model values.
//
// Every function trims its input, checks it against the grammar the model
// package owns for that field, and either builds the value or fails with an
// INVALID_FORMAT error carrying the field's constraint message.
package parse

import (
	"strconv"
	"strings"

	"github.com/volant-app/volant/internal/model"
)

// Field names reported in INVALID_FORMAT errors.
const (
	FieldIndex     = "index"
	FieldName      = "name"
	FieldLocation  = "location"
	FieldDateRange = "date_range"
	FieldDate      = "date"
	FieldTime      = "time"
	FieldTag       = "tag"
	FieldContent   = "content"
	FieldFeeling   = "feeling"
)

// ParseIndex parses a one-based index.
func ParseIndex(oneBasedIndex string) (model.Index, error) {
	trimmed := strings.TrimSpace(oneBasedIndex)
	n, ok := nonZeroUnsignedInteger(trimmed)
	if !ok {
		return model.Index{}, ErrInvalidFormat(FieldIndex, MessageInvalidIndex)
	}
	return model.FromOneBased(n), nil
}

// nonZeroUnsignedInteger accepts decimal digits only, no sign, with a value
// between 1 and the largest 32-bit signed integer.
func nonZeroUnsignedInteger(s string) (int, bool) {
	v, err := strconv.ParseUint(s, 10, 31)
	if err != nil || v == 0 {
		return 0, false
	}
	return int(v), true
}

// ParseName parses a trip or activity name.
func ParseName(name string) (model.Name, error) {
	trimmed := strings.TrimSpace(name)
	if !model.IsValidName(trimmed) {
		return "", ErrInvalidFormat(FieldName, model.NameConstraints)
	}
	return model.Name(trimmed), nil
}

// ParseLocation parses a location.
func ParseLocation(location string) (model.Location, error) {
	trimmed := strings.TrimSpace(location)
	if !model.IsValidLocation(trimmed) {
		return "", ErrInvalidFormat(FieldLocation, model.LocationConstraints)
	}
	return model.Location(trimmed), nil
}

// ParseDateRange parses "START to END".
func ParseDateRange(dateRange string) (model.DateRange, error) {
	trimmed := strings.TrimSpace(dateRange)
	if !model.IsValidDateRange(trimmed) {
		return model.DateRange{}, ErrInvalidFormat(FieldDateRange, model.DateRangeConstraints)
	}
	// The grammar check above already produced both halves; splitting again
	// with the same grammar cannot disagree with it.
	start, end, _ := model.SplitDateRange(trimmed)
	return model.NewDateRange(model.MustDate(start), model.MustDate(end)), nil
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(date string) (model.Date, error) {
	trimmed := strings.TrimSpace(date)
	if !model.IsValidDate(trimmed) {
		return model.Date{}, ErrInvalidFormat(FieldDate, model.DateConstraints)
	}
	return model.MustDate(trimmed), nil
}

// ParseTime parses an HH:MM time of day.
func ParseTime(at string) (model.TimeOfDay, error) {
	trimmed := strings.TrimSpace(at)
	if !model.IsValidTime(trimmed) {
		return model.TimeOfDay{}, ErrInvalidFormat(FieldTime, model.TimeConstraints)
	}
	return model.MustTime(trimmed), nil
}

// ParseTag parses a single tag.
func ParseTag(tag string) (model.Tag, error) {
	trimmed := strings.TrimSpace(tag)
	if !model.IsValidTagName(trimmed) {
		return "", ErrInvalidFormat(FieldTag, model.TagConstraints)
	}
	return model.Tag(trimmed), nil
}

// ParseTags parses every tag in tags. It stops at the first invalid tag and
// returns no set in that case.
func ParseTags(tags []string) (model.TagSet, error) {
	set := model.NewTagSet()
	for _, raw := range tags {
		tag, err := ParseTag(raw)
		if err != nil {
			return nil, err
		}
		set.Add(tag)
	}
	return set, nil
}

// ParseContent parses journal text.
func ParseContent(content string) (model.Content, error) {
	trimmed := strings.TrimSpace(content)
	if !model.IsValidContent(trimmed) {
		return "", ErrInvalidFormat(FieldContent, model.ContentConstraints)
	}
	return model.Content(trimmed), nil
}

// ParseFeeling parses a feeling, ignoring case.
func ParseFeeling(feeling string) (model.Feeling, error) {
	trimmed := strings.TrimSpace(feeling)
	if !model.IsValidFeeling(trimmed) {
		return "", ErrInvalidFormat(FieldFeeling, model.FeelingConstraints)
	}
	return model.MustFeeling(trimmed), nil
}
