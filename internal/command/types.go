// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

// Package command turns one line of user input into an executable command.
//
// Each page owns a static Table mapping command words to argument parsers.
// A Dispatcher bound to a table splits the line, looks up the word and runs
// the word's parser; the resulting Command executes against an Env that the
// caller supplies explicitly.
package command

import (
	"context"

	"github.com/volant-app/volant/internal/model"
)

// Page identifies the screen a dispatcher serves.
type Page string

// Pages.
const (
	PageHome      Page = "home"
	PageItinerary Page = "itinerary"
	PageJournal   Page = "journal"
)

// Navigation is a page change requested by a command.
type Navigation int

// Navigation requests.
const (
	NavNone Navigation = iota
	NavBack
	NavExit
	NavItinerary
	NavJournal
)

func (n Navigation) String() string {
	switch n {
	case NavNone:
		return "none"
	case NavBack:
		return "back"
	case NavExit:
		return "exit"
	case NavItinerary:
		return "itinerary"
	case NavJournal:
		return "journal"
	default:
		return "unknown"
	}
}

// Env is the page state a command executes against.
// Trip is nil on the home page.
type Env struct {
	Page  Page
	Trips *model.TripList
	Trip  *model.Trip
}

// Result is what a command reports back to the session.
type Result struct {
	Feedback string
	Nav      Navigation
	Trip     *model.Trip // target of NavItinerary and NavJournal
}

// Command is a fully parsed, ready to run user request.
type Command interface {
	Execute(ctx context.Context, env *Env) (Result, error)
}

// ArgParser turns the argument text after a command word into a Command.
// It fails with the field validator's INVALID_FORMAT error when a field does
// not match its grammar.
type ArgParser func(args string) (Command, error)

// Entry binds a command word to its argument parser.
type Entry struct {
	Name  string    // command word, matched exactly
	Parse ArgParser // argument parser
	Usage string    // usage text shown by help and on format errors
	Help  string    // one-line description
}
