// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/volant-app/volant/internal/command"
	"github.com/volant-app/volant/internal/model"
)

// run dispatches line on page against env and fails the test on
// dispatcher construction errors only.
func run(t *testing.T, env *command.Env, line string) (command.Result, error) {
	t.Helper()
	d, err := command.NewDispatcher(Tables()[env.Page])
	require.NoError(t, err)
	return d.Dispatch(context.Background(), line, env)
}

func homeEnv() *command.Env {
	return &command.Env{Page: command.PageHome, Trips: model.NewTripList()}
}

// tripEnv returns an env on page with one open trip spanning
// 2024-03-01 to 2024-03-09.
func tripEnv(page command.Page) *command.Env {
	trips := model.NewTripList()
	trip := model.NewTrip(
		model.MustName("Japan"),
		model.MustLocation("Tokyo"),
		model.MustDateRange("2024-03-01 to 2024-03-09"),
		nil,
	)
	if err := model.AddTrip(trips, trip); err != nil {
		panic(err)
	}
	return &command.Env{Page: page, Trips: trips, Trip: trip}
}
