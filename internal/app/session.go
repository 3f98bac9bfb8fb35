// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

// Package app runs a Volant session: the page back-stack, the per-page
// dispatchers and the read-eval-print loop around them.
package app

import (
	"context"
	"log/slog"

	"github.com/samber/oops"

	"github.com/volant-app/volant/internal/command"
	"github.com/volant-app/volant/internal/command/handlers"
	"github.com/volant-app/volant/internal/model"
)

// frame is one entry of the page back-stack.
type frame struct {
	page command.Page
	trip *model.Trip
}

// Reply is the outcome of one handled line.
type Reply struct {
	Feedback string
	Page     command.Page // page active after the line
	Done     bool
}

// Session owns the trip list and the stack of visited pages.
// It is not safe for concurrent use; one goroutine drives it.
type Session struct {
	trips       *model.TripList
	dispatchers map[command.Page]*command.Dispatcher
	stack       []frame
	done        bool
	logger      *slog.Logger
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithTrips starts the session with an existing trip list.
func WithTrips(trips *model.TripList) SessionOption {
	return func(s *Session) {
		s.trips = trips
	}
}

// WithLogger sets the logger handed to the dispatchers.
func WithLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// NewSession creates a session on the home page.
func NewSession(opts ...SessionOption) (*Session, error) {
	s := &Session{
		stack: []frame{{page: command.PageHome}},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.trips == nil {
		s.trips = model.NewTripList()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	tables := handlers.Tables()
	s.dispatchers = make(map[command.Page]*command.Dispatcher, len(tables))
	for page, table := range tables {
		d, err := command.NewDispatcher(table, command.WithLogger(s.logger))
		if err != nil {
			return nil, oops.With("page", string(page)).Wrap(err)
		}
		s.dispatchers[page] = d
	}
	return s, nil
}

// Page returns the active page.
func (s *Session) Page() command.Page {
	return s.top().page
}

// Trip returns the trip open on the active page, or nil on the home page.
func (s *Session) Trip() *model.Trip {
	return s.top().trip
}

// Trips returns the session's trip list.
func (s *Session) Trips() *model.TripList {
	return s.trips
}

// Depth returns the number of pages on the back-stack.
func (s *Session) Depth() int {
	return len(s.stack)
}

// Done reports whether the user asked to exit.
func (s *Session) Done() bool {
	return s.done
}

// Handle dispatches line on the active page and applies any navigation the
// command requests. Failures leave the session unchanged.
func (s *Session) Handle(ctx context.Context, line string) (Reply, error) {
	if s.done {
		return Reply{Page: s.Page(), Done: true}, nil
	}

	top := s.top()
	env := &command.Env{Page: top.page, Trips: s.trips, Trip: top.trip}
	result, err := s.dispatchers[top.page].Dispatch(ctx, line, env)
	if err != nil {
		return Reply{Page: top.page}, err
	}

	s.navigate(result)
	return Reply{Feedback: result.Feedback, Page: s.Page(), Done: s.done}, nil
}

func (s *Session) navigate(result command.Result) {
	switch result.Nav {
	case command.NavNone:
	case command.NavBack:
		if len(s.stack) > 1 {
			s.stack = s.stack[:len(s.stack)-1]
		}
	case command.NavExit:
		s.done = true
	case command.NavItinerary:
		s.open(frame{page: command.PageItinerary, trip: result.Trip})
	case command.NavJournal:
		s.open(frame{page: command.PageJournal, trip: result.Trip})
	}
}

// open moves to target. Switching back to the page directly below pops
// instead of pushing, so toggling between a trip's pages keeps the stack flat.
func (s *Session) open(target frame) {
	if n := len(s.stack); n >= 2 && s.stack[n-2] == target {
		s.stack = s.stack[:n-1]
		return
	}
	s.stack = append(s.stack, target)
}

func (s *Session) top() frame {
	return s.stack[len(s.stack)-1]
}
