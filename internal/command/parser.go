// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

package command

import (
	"regexp"
	"strings"
)

// HelpUsage is the usage hint carried by INVALID_COMMAND_FORMAT errors.
const HelpUsage = "help: Shows program usage instructions.\nExample: help"

// commandFormat splits a trimmed line into the command word and the rest.
var commandFormat = regexp.MustCompile(`(?s)^(?P<commandWord>\S+)(?P<arguments>.*)$`)

var (
	commandWordGroup = commandFormat.SubexpIndex("commandWord")
	argumentsGroup   = commandFormat.SubexpIndex("arguments")
)

// ParsedCommand represents a split input line.
type ParsedCommand struct {
	Name string // command word
	Args string // everything after the word, leading whitespace included
	Raw  string // original input
}

// Parse splits raw input into command word and arguments.
// Args keeps its leading separator so prefix tokenizing can anchor on it.
func Parse(input string) (*ParsedCommand, error) {
	trimmed := strings.TrimSpace(input)
	m := commandFormat.FindStringSubmatch(trimmed)
	if m == nil {
		return nil, ErrInvalidCommandFormat(HelpUsage)
	}
	return &ParsedCommand{
		Name: m[commandWordGroup],
		Args: m[argumentsGroup],
		Raw:  input,
	}, nil
}
