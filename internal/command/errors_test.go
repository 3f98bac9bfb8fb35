// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

package command

import (
	"errors"
	"testing"

	"github.com/samber/oops"
	"github.com/stretchr/testify/assert"

	"github.com/volant-app/volant/internal/model"
	"github.com/volant-app/volant/internal/parse"
)

func TestErrUnknownCommand(t *testing.T) {
	err := ErrUnknownCommand("frobnicate")
	assert.Error(t, err)

	oopsErr, ok := oops.AsOops(err)
	assert.True(t, ok)
	assert.Equal(t, "UNKNOWN_COMMAND", oopsErr.Code())
	assert.Equal(t, "frobnicate", oopsErr.Context()["command"])
	assert.Equal(t, "Unknown command", err.Error())
}

func TestErrInvalidCommandFormat(t *testing.T) {
	err := ErrInvalidCommandFormat("x: usage")
	oopsErr, _ := oops.AsOops(err)
	assert.Equal(t, "INVALID_COMMAND_FORMAT", oopsErr.Code())
	assert.Equal(t, "x: usage", oopsErr.Context()["usage"])
	assert.Equal(t, "Invalid command format! \nx: usage", err.Error())
}

func TestCommandFailed(t *testing.T) {
	err := CommandFailed("This trip already exists in Volant.", nil)
	oopsErr, _ := oops.AsOops(err)
	assert.Equal(t, "COMMAND_FAILED", oopsErr.Code())
	assert.Equal(t, "This trip already exists in Volant.", oopsErr.Context()["message"])
	assert.NotContains(t, oopsErr.Context(), "cause")
}

func TestCommandFailed_WithCause(t *testing.T) {
	cause := model.ErrDuplicate("japan|2024-03-01 to 2024-03-09")
	err := CommandFailed("This trip already exists in Volant.", cause)

	oopsErr, ok := oops.AsOops(err)
	assert.True(t, ok)
	assert.Equal(t, "COMMAND_FAILED", oopsErr.Code())
	assert.Equal(t, cause.Error(), oopsErr.Context()["cause"])
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, MessageGeneric},
		{"plain error", errors.New("boom"), MessageGeneric},
		{"unknown command", ErrUnknownCommand("x"), "Unknown command"},
		{"invalid command format", ErrInvalidCommandFormat(HelpUsage), "Invalid command format! \n" + HelpUsage},
		{"invalid field", parse.ErrInvalidFormat(parse.FieldIndex, parse.MessageInvalidIndex), parse.MessageInvalidIndex},
		{"command failed", CommandFailed("Already at the home page.", nil), "Already at the home page."},
		{"duplicate entity", model.ErrDuplicate("x"), "That entry already exists."},
		{"not found", model.ErrNotFound("x"), "That entry does not exist."},
		{"index out of range", model.ErrIndexOutOfRange(model.FromOneBased(3), 2), "The index provided is invalid."},
		{"other code", oops.Code("SOMETHING_ELSE").Errorf("x"), MessageGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}

func TestIsUserError(t *testing.T) {
	assert.True(t, IsUserError(ErrUnknownCommand("x")))
	assert.True(t, IsUserError(ErrInvalidCommandFormat(HelpUsage)))
	assert.True(t, IsUserError(CommandFailed("no", nil)))
	assert.True(t, IsUserError(parse.ErrInvalidFormat(parse.FieldName, "bad")))
	assert.False(t, IsUserError(model.ErrNotFound("x")))
	assert.False(t, IsUserError(errors.New("boom")))
	assert.False(t, IsUserError(nil))
}
