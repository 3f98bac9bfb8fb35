// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

package handlers

import (
	"fmt"
	"strings"

	"github.com/samber/oops"

	"github.com/volant-app/volant/internal/command"
	"github.com/volant-app/volant/internal/model"
)

// numbered renders items as a one-based numbered list under header.
func numbered[T fmt.Stringer](header string, items []T) string {
	var b strings.Builder
	b.WriteString(header)
	for i, item := range items {
		fmt.Fprintf(&b, "\n%s. %s", model.FromZeroBased(i), item)
	}
	return b.String()
}

// contextString reads a string value from an oops error's context.
func contextString(err error, key string) string {
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return ""
	}
	s, _ := oopsErr.Context()[key].(string)
	return s
}

// requireTrip returns the trip open on the current page.
func requireTrip(env *command.Env) (*model.Trip, error) {
	if env.Trip == nil {
		return nil, command.CommandFailed(MessageNoTripOpen, nil)
	}
	return env.Trip, nil
}

// noArgs adapts a constructor into a parser that ignores trailing text.
func noArgs(build func() command.Command) command.ArgParser {
	return func(string) (command.Command, error) {
		return build(), nil
	}
}
