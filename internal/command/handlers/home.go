// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gobwas/glob"

	"github.com/volant-app/volant/internal/command"
	"github.com/volant-app/volant/internal/model"
	"github.com/volant-app/volant/internal/parse"
)

// Argument prefixes.
const (
	PrefixName     parse.Prefix = "n/"
	PrefixLocation parse.Prefix = "l/"
	PrefixDate     parse.Prefix = "d/"
	PrefixTag      parse.Prefix = "t/"
	PrefixTime     parse.Prefix = "t/"
	PrefixContent  parse.Prefix = "c/"
	PrefixFeeling  parse.Prefix = "f/"
)

// Usage text for home page commands.
const (
	AddTripUsage = "add: Adds a trip to Volant.\n" +
		"Parameters: n/NAME l/LOCATION d/START to END [t/TAG]...\n" +
		"Example: add n/Japan l/Tokyo d/2024-03-01 to 2024-03-09 t/food t/family"
	DeleteTripUsage = "delete: Deletes the trip at the given index of the trip list.\n" +
		"Parameters: INDEX (must be a positive integer)\nExample: delete 1"
	ListTripsUsage = "list: Lists all trips.\nExample: list"
	FindTripsUsage = "find: Lists trips whose name matches the pattern, ignoring case. " +
		"Use * and ? as wildcards.\nParameters: PATTERN\nExample: find jap*"
	GotoTripUsage = "goto: Opens the itinerary of the trip at the given index.\n" +
		"Parameters: INDEX (must be a positive integer)\nExample: goto 1"
)

// Messages for home page commands.
const (
	MessageTripAdded        = "New trip added: %s"
	MessageDuplicateTrip    = "This trip already exists in Volant."
	MessageTripOverlap      = "The dates of this trip overlap with %s (%s)."
	MessageTripDeleted      = "Deleted trip: %s"
	MessageInvalidTripIndex = "The trip index provided is invalid."
	MessageNoTrips          = "You have no trips yet. Add one with the add command."
	MessageTripsListed      = "Here are your trips:"
	MessageNoTripsMatched   = "No trips match %q."
	MessageTripsMatched     = "%d trip(s) match %q:"
	MessageOpenedItinerary  = "Opened the itinerary of %s."
	MessageInvalidPattern   = "Patterns may use * and ? wildcards and [abc] character classes."
)

// FieldPattern is the field reported for malformed find patterns.
const FieldPattern = "pattern"

// AddTripCommand adds a trip to the trip list.
type AddTripCommand struct {
	Trip *model.Trip
}

// ParseAddTrip parses "n/NAME l/LOCATION d/START to END [t/TAG]...".
func ParseAddTrip(args string) (command.Command, error) {
	m := parse.Tokenize(args, PrefixName, PrefixLocation, PrefixDate, PrefixTag)
	if !m.RequirePrefixes(PrefixName, PrefixLocation, PrefixDate) || m.Preamble() != "" {
		return nil, command.ErrInvalidCommandFormat(AddTripUsage)
	}

	rawName, _ := m.Value(PrefixName)
	name, err := parse.ParseName(rawName)
	if err != nil {
		return nil, err
	}
	rawLocation, _ := m.Value(PrefixLocation)
	location, err := parse.ParseLocation(rawLocation)
	if err != nil {
		return nil, err
	}
	rawDates, _ := m.Value(PrefixDate)
	dates, err := parse.ParseDateRange(rawDates)
	if err != nil {
		return nil, err
	}
	tags, err := parse.ParseTags(m.AllValues(PrefixTag))
	if err != nil {
		return nil, err
	}

	return &AddTripCommand{Trip: model.NewTrip(name, location, dates, tags)}, nil
}

// Execute implements command.Command.
func (c *AddTripCommand) Execute(ctx context.Context, env *command.Env) (command.Result, error) {
	if err := model.AddTrip(env.Trips, c.Trip); err != nil {
		switch {
		case model.HasCode(err, model.CodeDuplicateEntity):
			return command.Result{}, command.CommandFailed(MessageDuplicateTrip, err)
		case model.HasCode(err, model.CodeTripOverlap):
			msg := fmt.Sprintf(MessageTripOverlap, contextString(err, "trip"), contextString(err, "dates"))
			return command.Result{}, command.CommandFailed(msg, err)
		default:
			return command.Result{}, err
		}
	}
	slog.InfoContext(ctx, "trip added", "trip_id", c.Trip.ID.String(), "trips", env.Trips.Len())
	return command.Result{Feedback: fmt.Sprintf(MessageTripAdded, c.Trip)}, nil
}

// DeleteTripCommand removes the trip at Index.
type DeleteTripCommand struct {
	Index model.Index
}

// ParseDeleteTrip parses "INDEX".
func ParseDeleteTrip(args string) (command.Command, error) {
	index, err := parse.ParseIndex(args)
	if err != nil {
		return nil, err
	}
	return &DeleteTripCommand{Index: index}, nil
}

// Execute implements command.Command.
func (c *DeleteTripCommand) Execute(ctx context.Context, env *command.Env) (command.Result, error) {
	removed, err := env.Trips.RemoveAt(c.Index)
	if err != nil {
		return command.Result{}, command.CommandFailed(MessageInvalidTripIndex, err)
	}
	slog.InfoContext(ctx, "trip deleted", "trip_id", removed.ID.String(), "trips", env.Trips.Len())
	return command.Result{Feedback: fmt.Sprintf(MessageTripDeleted, removed)}, nil
}

// ListTripsCommand shows every trip.
type ListTripsCommand struct{}

// Execute implements command.Command.
func (ListTripsCommand) Execute(_ context.Context, env *command.Env) (command.Result, error) {
	trips := env.Trips.Items()
	if len(trips) == 0 {
		return command.Result{Feedback: MessageNoTrips}, nil
	}
	return command.Result{Feedback: numbered(MessageTripsListed, trips)}, nil
}

// FindTripsCommand lists trips whose names match a glob pattern.
type FindTripsCommand struct {
	Pattern string
	matcher glob.Glob
}

// ParseFindTrips parses "PATTERN". A pattern with no wildcard matches any
// name containing it.
func ParseFindTrips(args string) (command.Command, error) {
	pattern := strings.TrimSpace(args)
	if pattern == "" {
		return nil, command.ErrInvalidCommandFormat(FindTripsUsage)
	}
	expr := strings.ToLower(pattern)
	if !strings.ContainsAny(expr, "*?[") {
		expr = "*" + glob.QuoteMeta(expr) + "*"
	}
	matcher, err := glob.Compile(expr)
	if err != nil {
		return nil, parse.ErrInvalidFormat(FieldPattern, MessageInvalidPattern)
	}
	return &FindTripsCommand{Pattern: pattern, matcher: matcher}, nil
}

// Execute implements command.Command.
func (c *FindTripsCommand) Execute(_ context.Context, env *command.Env) (command.Result, error) {
	matches := env.Trips.Filter(func(t *model.Trip) bool {
		return c.matcher.Match(strings.ToLower(t.Name.String()))
	})
	if len(matches) == 0 {
		return command.Result{Feedback: fmt.Sprintf(MessageNoTripsMatched, c.Pattern)}, nil
	}

	// numbered by position in the full list so goto and delete still apply
	var b strings.Builder
	fmt.Fprintf(&b, MessageTripsMatched, len(matches), c.Pattern)
	for _, t := range matches {
		index, _ := env.Trips.IndexOf(t)
		fmt.Fprintf(&b, "\n%s. %s", index, t)
	}
	return command.Result{Feedback: b.String()}, nil
}

// GotoTripCommand opens the itinerary of the trip at Index.
type GotoTripCommand struct {
	Index model.Index
}

// ParseGotoTrip parses "INDEX".
func ParseGotoTrip(args string) (command.Command, error) {
	index, err := parse.ParseIndex(args)
	if err != nil {
		return nil, err
	}
	return &GotoTripCommand{Index: index}, nil
}

// Execute implements command.Command.
func (c *GotoTripCommand) Execute(ctx context.Context, env *command.Env) (command.Result, error) {
	trip, err := env.Trips.Get(c.Index)
	if err != nil {
		return command.Result{}, command.CommandFailed(MessageInvalidTripIndex, err)
	}
	slog.DebugContext(ctx, "trip opened", "trip_id", trip.ID.String())
	return command.Result{
		Feedback: fmt.Sprintf(MessageOpenedItinerary, trip.Name),
		Nav:      command.NavItinerary,
		Trip:     trip,
	}, nil
}
