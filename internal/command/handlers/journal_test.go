// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/volant-app/volant/internal/command"
	"github.com/volant-app/volant/internal/model"
	"github.com/volant-app/volant/internal/parse"
	"github.com/volant-app/volant/pkg/errutil"
)

func TestParseAddEntry(t *testing.T) {
	cmd, err := ParseAddEntry(" d/2024-03-02 t/21:00 c/Ate ramen in Shinjuku. f/Happy l/Shinjuku")
	require.NoError(t, err)
	entry := cmd.(*AddEntryCommand).Entry
	assert.Equal(t, model.Content("Ate ramen in Shinjuku."), entry.Content)
	assert.Equal(t, model.FeelingHappy, entry.Feeling)
	assert.Equal(t, model.Location("Shinjuku"), entry.Location)

	cmd, err = ParseAddEntry(" c/Quiet day. t/08:00 d/2024-03-03")
	require.NoError(t, err)
	entry = cmd.(*AddEntryCommand).Entry
	assert.Empty(t, entry.Feeling)
	assert.Empty(t, entry.Location)
}

func TestParseAddEntry_Errors(t *testing.T) {
	_, err := ParseAddEntry(" d/2024-03-02 t/21:00")
	errutil.AssertErrorCode(t, err, command.CodeInvalidCommandFormat)

	_, err = ParseAddEntry(" d/2024-03-02 t/21:00 c/Fine. f/meh")
	errutil.AssertErrorContext(t, err, "field", parse.FieldFeeling)

	_, err = ParseAddEntry(" d/2024-03-02 t/21:00 c/Fine. l/")
	errutil.AssertErrorContext(t, err, "field", parse.FieldLocation)

	_, err = ParseAddEntry(" d/03-02 t/21:00 c/Fine.")
	errutil.AssertErrorContext(t, err, "field", parse.FieldDate)
}

func TestJournal_AddListDelete(t *testing.T) {
	env := tripEnv(command.PageJournal)

	result, err := run(t, env, "add d/2024-03-02 t/21:00 c/Ate ramen. f/happy")
	require.NoError(t, err)
	assert.Equal(t, "New entry added: 2024-03-02 21:00 (happy): Ate ramen.", result.Feedback)

	_, err = run(t, env, "add d/2024-03-02 t/21:00 c/Again.")
	assert.Equal(t, MessageDuplicateEntry, command.UserMessage(err))

	_, err = run(t, env, "add d/2024-05-02 t/21:00 c/Later.")
	assert.Equal(t, "The entry date must lie within the trip dates (2024-03-01 to 2024-03-09).", command.UserMessage(err))

	result, err = run(t, env, "list")
	require.NoError(t, err)
	assert.Equal(t, "Journal for Japan:\n1. 2024-03-02 21:00 (happy): Ate ramen.", result.Feedback)

	_, err = run(t, env, "delete 1")
	require.NoError(t, err)
	result, err = run(t, env, "list")
	require.NoError(t, err)
	assert.Equal(t, "The journal for Japan is empty.", result.Feedback)

	_, err = run(t, env, "delete 1")
	assert.Equal(t, MessageInvalidEntryIndex, command.UserMessage(err))
}

func TestJournal_OpenItinerary(t *testing.T) {
	env := tripEnv(command.PageJournal)
	result, err := run(t, env, "itinerary")
	require.NoError(t, err)
	assert.Equal(t, command.NavItinerary, result.Nav)
	assert.Same(t, env.Trip, result.Trip)
}
