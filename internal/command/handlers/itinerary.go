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

// Usage text for itinerary page commands.
const (
	AddActivityUsage = "add: Adds an activity to the itinerary.\n" +
		"Parameters: n/NAME l/LOCATION d/DATE t/TIME\n" +
		"Example: add n/Visit Sensoji l/Asakusa d/2024-03-02 t/09:30"
	DeleteActivityUsage = "delete: Deletes the activity at the given index of the itinerary.\n" +
		"Parameters: INDEX (must be a positive integer)\nExample: delete 1"
	ListActivitiesUsage = "list: Lists the itinerary.\nExample: list"
	OpenJournalUsage    = "journal: Opens the journal of this trip.\nExample: journal"
)

// Messages for itinerary page commands.
const (
	MessageActivityAdded        = "New activity added: %s"
	MessageDuplicateActivity    = "An activity at this date and time already exists in the itinerary."
	MessageActivityOutsideTrip  = "The activity date must lie within the trip dates (%s)."
	MessageActivityDeleted      = "Deleted activity: %s"
	MessageInvalidActivityIndex = "The activity index provided is invalid."
	MessageNoActivities         = "No activities planned for %s yet."
	MessageActivitiesListed     = "Itinerary for %s:"
	MessageOpenedJournal        = "Opened the journal of %s."
)

// AddActivityCommand adds an activity to the open trip's itinerary.
type AddActivityCommand struct {
	Activity model.Activity
}

// ParseAddActivity parses "n/NAME l/LOCATION d/DATE t/TIME".
func ParseAddActivity(args string) (command.Command, error) {
	m := parse.Tokenize(args, PrefixName, PrefixLocation, PrefixDate, PrefixTime)
	if !m.RequirePrefixes(PrefixName, PrefixLocation, PrefixDate, PrefixTime) || m.Preamble() != "" {
		return nil, command.ErrInvalidCommandFormat(AddActivityUsage)
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

	return &AddActivityCommand{Activity: model.NewActivity(name, location, date, at)}, nil
}

// Execute implements command.Command.
func (c *AddActivityCommand) Execute(ctx context.Context, env *command.Env) (command.Result, error) {
	trip, err := requireTrip(env)
	if err != nil {
		return command.Result{}, err
	}
	if !trip.Range.Contains(c.Activity.Date) {
		return command.Result{}, command.CommandFailed(fmt.Sprintf(MessageActivityOutsideTrip, trip.Range), nil)
	}
	if err := trip.Itinerary.Add(c.Activity); err != nil {
		return command.Result{}, command.CommandFailed(MessageDuplicateActivity, err)
	}
	slog.InfoContext(ctx, "activity added",
		"trip_id", trip.ID.String(),
		"activity_id", c.Activity.ID.String(),
	)
	return command.Result{Feedback: fmt.Sprintf(MessageActivityAdded, c.Activity)}, nil
}

// DeleteActivityCommand removes the activity at Index.
type DeleteActivityCommand struct {
	Index model.Index
}

// ParseDeleteActivity parses "INDEX".
func ParseDeleteActivity(args string) (command.Command, error) {
	index, err := parse.ParseIndex(args)
	if err != nil {
		return nil, err
	}
	return &DeleteActivityCommand{Index: index}, nil
}

// Execute implements command.Command.
func (c *DeleteActivityCommand) Execute(ctx context.Context, env *command.Env) (command.Result, error) {
	trip, err := requireTrip(env)
	if err != nil {
		return command.Result{}, err
	}
	removed, err := trip.Itinerary.RemoveAt(c.Index)
	if err != nil {
		return command.Result{}, command.CommandFailed(MessageInvalidActivityIndex, err)
	}
	slog.InfoContext(ctx, "activity deleted",
		"trip_id", trip.ID.String(),
		"activity_id", removed.ID.String(),
	)
	return command.Result{Feedback: fmt.Sprintf(MessageActivityDeleted, removed)}, nil
}

// ListActivitiesCommand shows the open trip's itinerary.
type ListActivitiesCommand struct{}

// Execute implements command.Command.
func (ListActivitiesCommand) Execute(_ context.Context, env *command.Env) (command.Result, error) {
	trip, err := requireTrip(env)
	if err != nil {
		return command.Result{}, err
	}
	activities := trip.Itinerary.Items()
	if len(activities) == 0 {
		return command.Result{Feedback: fmt.Sprintf(MessageNoActivities, trip.Name)}, nil
	}
	return command.Result{Feedback: numbered(fmt.Sprintf(MessageActivitiesListed, trip.Name), activities)}, nil
}

// OpenJournalCommand switches to the open trip's journal.
type OpenJournalCommand struct{}

// Execute implements command.Command.
func (OpenJournalCommand) Execute(_ context.Context, env *command.Env) (command.Result, error) {
	trip, err := requireTrip(env)
	if err != nil {
		return command.Result{}, err
	}
	return command.Result{
		Feedback: fmt.Sprintf(MessageOpenedJournal, trip.Name),
		Nav:      command.NavJournal,
		Trip:     trip,
	}, nil
}
