// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

package handlers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/volant-app/volant/internal/command"
	"github.com/volant-app/volant/internal/model"
	"github.com/volant-app/volant/internal/parse"
)

// Usage text for journal page commands.
const (
	AddEntryUsage = "add: Adds an entry to the journal.\n" +
		"Parameters: d/DATE t/TIME c/CONTENT [f/FEELING] [l/LOCATION]\n" +
		"Example: add d/2024-03-02 t/21:00 c/Ate ramen in Shinjuku. f/happy l/Shinjuku"
	DeleteEntryUsage = "delete: Deletes the entry at the given index of the journal.\n" +
		"Parameters: INDEX (must be a positive integer)\nExample: delete 1"
	ListEntriesUsage   = "list: Lists the journal.\nExample: list"
	OpenItineraryUsage = "itinerary: Opens the itinerary of this trip.\nExample: itinerary"
)

// Messages for journal page commands.
const (
	MessageEntryAdded        = "New entry added: %s"
	MessageDuplicateEntry    = "An entry at this date and time already exists in the journal."
	MessageEntryOutsideTrip  = "The entry date must lie within the trip dates (%s)."
	MessageEntryDeleted      = "Deleted entry: %s"
	MessageInvalidEntryIndex = "The entry index provided is invalid."
	MessageNoEntries         = "The journal for %s is empty."
	MessageEntriesListed     = "Journal for %s:"
)

// AddEntryCommand adds an entry to the open trip's journal.
type AddEntryCommand struct {
	Entry model.Entry
}

// ParseAddEntry parses "d/DATE t/TIME c/CONTENT [f/FEELING] [l/LOCATION]".
func ParseAddEntry(args string) (command.Command, error) {
	m := parse.Tokenize(args, PrefixDate, PrefixTime, PrefixContent, PrefixFeeling, PrefixLocation)
	if !m.RequirePrefixes(PrefixDate, PrefixTime, PrefixContent) || m.Preamble() != "" {
		return nil, command.ErrInvalidCommandFormat(AddEntryUsage)
	}

	rawDate, _ := m.Value(PrefixDate)
	date, err := parse.ParseDate(rawDate)
	if err != nil {
		return nil, err
	}
	rawTime, _ := m.Value(PrefixTime)
	at, err := parse.ParseTime(rawTime)
	if err != nil {
		return nil, err
	}
	rawContent, _ := m.Value(PrefixContent)
	content, err := parse.ParseContent(rawContent)
	if err != nil {
		return nil, err
	}

	var feeling model.Feeling
	if rawFeeling, ok := m.Value(PrefixFeeling); ok {
		if feeling, err = parse.ParseFeeling(rawFeeling); err != nil {
			return nil, err
		}
	}
	var location model.Location
	if rawLocation, ok := m.Value(PrefixLocation); ok {
		if location, err = parse.ParseLocation(rawLocation); err != nil {
			return nil, err
		}
	}

	return &AddEntryCommand{Entry: model.NewEntry(date, at, content, feeling, location)}, nil
}

// Execute implements command.Command.
func (c *AddEntryCommand) Execute(ctx context.Context, env *command.Env) (command.Result, error) {
	trip, err := requireTrip(env)
	if err != nil {
		return command.Result{}, err
	}
	if !trip.Range.Contains(c.Entry.Date) {
		return command.Result{}, command.CommandFailed(fmt.Sprintf(MessageEntryOutsideTrip, trip.Range), nil)
	}
	if err := trip.Journal.Add(c.Entry); err != nil {
		return command.Result{}, command.CommandFailed(MessageDuplicateEntry, err)
	}
	slog.InfoContext(ctx, "journal entry added",
		"trip_id", trip.ID.String(),
		"entry_id", c.Entry.ID.String(),
	)
	return command.Result{Feedback: fmt.Sprintf(MessageEntryAdded, c.Entry)}, nil
}

// DeleteEntryCommand removes the entry at Index.
type DeleteEntryCommand struct {
	Index model.Index
}

// ParseDeleteEntry parses "INDEX".
func ParseDeleteEntry(args string) (command.Command, error) {
	index, err := parse.ParseIndex(args)
	if err != nil {
		return nil, err
	}
	return &DeleteEntryCommand{Index: index}, nil
}

// Execute implements command.Command.
func (c *DeleteEntryCommand) Execute(ctx context.Context, env *command.Env) (command.Result, error) {
	trip, err := requireTrip(env)
	if err != nil {
		return command.Result{}, err
	}
	removed, err := trip.Journal.RemoveAt(c.Index)
	if err != nil {
		return command.Result{}, command.CommandFailed(MessageInvalidEntryIndex, err)
	}
	slog.InfoContext(ctx, "journal entry deleted",
		"trip_id", trip.ID.String(),
		"entry_id", removed.ID.String(),
	)
	return command.Result{Feedback: fmt.Sprintf(MessageEntryDeleted, removed)}, nil
}

// ListEntriesCommand shows the open trip's journal.
type ListEntriesCommand struct{}

// Execute implements command.Command.
func (ListEntriesCommand) Execute(_ context.Context, env *command.Env) (command.Result, error) {
	trip, err := requireTrip(env)
	if err != nil {
		return command.Result{}, err
	}
	entries := trip.Journal.Items()
	if len(entries) == 0 {
		return command.Result{Feedback: fmt.Sprintf(MessageNoEntries, trip.Name)}, nil
	}
	return command.Result{Feedback: numbered(fmt.Sprintf(MessageEntriesListed, trip.Name), entries)}, nil
}

// OpenItineraryCommand switches to the open trip's itinerary.
type OpenItineraryCommand struct{}

// Execute implements command.Command.
func (OpenItineraryCommand) Execute(_ context.Context, env *command.Env) (command.Result, error) {
	trip, err := requireTrip(env)
	if err != nil {
		return command.Result{}, err
	}
	return command.Result{
		Feedback: fmt.Sprintf(MessageOpenedItinerary, trip.Name),
		Nav:      command.NavItinerary,
		Trip:     trip,
	}, nil
}
