// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/volant-app/volant/internal/command"
)

// Messages for the commands every page shares.
const (
	MessageAlreadyHome = "Already at the home page."
	MessageGoodbye     = "Goodbye!"
	MessageNoTripOpen  = "No trip is open on this page."
)

// Usage text for the shared commands.
const (
	BackUsage = "back: Returns to the previous page.\nExample: back"
	ExitUsage = "exit: Exits the program.\nExample: exit"
)

// BackCommand returns to the previous page.
type BackCommand struct{}

// Execute implements command.Command.
func (BackCommand) Execute(_ context.Context, env *command.Env) (command.Result, error) {
	if env.Page == command.PageHome {
		return command.Result{}, command.CommandFailed(MessageAlreadyHome, nil)
	}
	return command.Result{Nav: command.NavBack}, nil
}

// ExitCommand ends the session.
type ExitCommand struct{}

// Execute implements command.Command.
func (ExitCommand) Execute(context.Context, *command.Env) (command.Result, error) {
	return command.Result{Feedback: MessageGoodbye, Nav: command.NavExit}, nil
}

// HelpCommand lists the usage of every command on the page.
type HelpCommand struct {
	Entries []command.Entry
}

// Execute implements command.Command.
func (c HelpCommand) Execute(_ context.Context, env *command.Env) (command.Result, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Commands on the %s page:", env.Page)
	for _, e := range c.Entries {
		b.WriteString("\n\n")
		b.WriteString(e.Usage)
	}
	return command.Result{Feedback: b.String()}, nil
}
