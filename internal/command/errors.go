// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

package command

import (
	"github.com/samber/oops"

	"github.com/volant-app/volant/internal/model"
	"github.com/volant-app/volant/internal/parse"
)

// Error codes for command parsing and execution failures.
const (
	CodeInvalidCommandFormat = "INVALID_COMMAND_FORMAT"
	CodeUnknownCommand       = "UNKNOWN_COMMAND"
	CodeCommandFailed        = "COMMAND_FAILED"
	CodeInvalidName          = "INVALID_NAME"
	CodeDuplicateCommand     = "DUPLICATE_COMMAND"
	CodeInvalidEntry         = "INVALID_ENTRY"
)

// User-facing messages.
const (
	MessageInvalidCommandFormat = "Invalid command format! \n"
	MessageUnknownCommand       = "Unknown command"
	MessageGeneric              = "Something went wrong. Try again."
)

// ErrNilTable is returned when a dispatcher is built without a table.
var ErrNilTable = oops.Code(CodeInvalidEntry).Errorf("command table is nil")

// ErrNilEnv is returned when a command is dispatched without page state.
var ErrNilEnv = oops.Code(CodeInvalidEntry).Errorf("command environment is nil")

// ErrInvalidCommandFormat reports a line with no command word.
func ErrInvalidCommandFormat(usage string) error {
	message := MessageInvalidCommandFormat + usage
	return oops.Code(CodeInvalidCommandFormat).
		With("usage", usage).
		With("message", message).
		Errorf("%s", message)
}

// ErrUnknownCommand reports a command word missing from the page's table.
func ErrUnknownCommand(word string) error {
	return oops.Code(CodeUnknownCommand).
		With("command", word).
		With("message", MessageUnknownCommand).
		Errorf("%s", MessageUnknownCommand)
}

// CommandFailed reports a command that parsed but could not be carried out.
// The message is shown to the user verbatim.
func CommandFailed(message string, cause error) error {
	builder := oops.Code(CodeCommandFailed).With("message", message)
	if cause != nil {
		builder = builder.With("cause", cause.Error())
	}
	return builder.Errorf("%s", message)
}

// UserMessage extracts the text to show the user for err.
func UserMessage(err error) string {
	if err == nil {
		return MessageGeneric
	}
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return MessageGeneric
	}

	switch oopsErr.Code() {
	case CodeInvalidCommandFormat, CodeUnknownCommand, CodeCommandFailed, parse.CodeInvalidFormat:
		if msg, ok := oopsErr.Context()["message"].(string); ok && msg != "" {
			return msg
		}
		return oopsErr.Error()
	case model.CodeDuplicateEntity:
		return "That entry already exists."
	case model.CodeEntityNotFound:
		return "That entry does not exist."
	case model.CodeIndexOutOfRange:
		return "The index provided is invalid."
	case model.CodeTripOverlap:
		return "The trip dates overlap with another trip."
	default:
		return MessageGeneric
	}
}

// IsUserError reports whether err is an expected, user-correctable failure.
func IsUserError(err error) bool {
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return false
	}
	switch oopsErr.Code() {
	case CodeInvalidCommandFormat, CodeUnknownCommand, CodeCommandFailed, parse.CodeInvalidFormat:
		return true
	default:
		return false
	}
}
