// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/volant-app/volant/internal/command"
)

func TestBack(t *testing.T) {
	_, err := run(t, homeEnv(), "back")
	require.Error(t, err)
	assert.Equal(t, MessageAlreadyHome, command.UserMessage(err))

	for _, page := range []command.Page{command.PageItinerary, command.PageJournal} {
		result, err := run(t, tripEnv(page), "  back   ")
		require.NoError(t, err, page)
		assert.Equal(t, command.NavBack, result.Nav)

		result, err = run(t, tripEnv(page), "back to where I was")
		require.NoError(t, err, page)
		assert.Equal(t, command.NavBack, result.Nav)
	}
}

func TestExit(t *testing.T) {
	result, err := run(t, homeEnv(), "exit")
	require.NoError(t, err)
	assert.Equal(t, command.NavExit, result.Nav)
	assert.Equal(t, MessageGoodbye, result.Feedback)
}

func TestHelp_ListsPageCommands(t *testing.T) {
	result, err := run(t, tripEnv(command.PageItinerary), "help")
	require.NoError(t, err)
	assert.Contains(t, result.Feedback, "Commands on the itinerary page:")
	assert.Contains(t, result.Feedback, AddActivityUsage)
	assert.Contains(t, result.Feedback, OpenJournalUsage)
	assert.NotContains(t, result.Feedback, AddTripUsage)
}
