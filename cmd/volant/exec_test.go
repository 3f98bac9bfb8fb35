// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/volant-app/volant/pkg/errutil"
)

func TestExecCommand_Args(t *testing.T) {
	out, _, err := execute(t, "", "exec",
		"add n/Japan l/Tokyo d/2024-03-01 to 2024-03-09",
		"goto 1",
		"add n/Sushi l/Tsukiji d/2024-03-02 t/08:00",
		"list",
	)
	require.NoError(t, err)

	assert.Contains(t, out, "volant:home> add n/Japan l/Tokyo d/2024-03-01 to 2024-03-09\n")
	assert.Contains(t, out, "volant:itinerary> list\n")
	assert.Contains(t, out, "1. 2024-03-02 08:00 Sushi @ Tsukiji")
}

func TestExecCommand_File(t *testing.T) {
	path := writeFile(t, "plan.txt", "add n/Japan l/Tokyo d/2024-03-01 to 2024-03-09\nlist\n")

	out, _, err := execute(t, "", "exec", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "1. Japan (Tokyo) 2024-03-01 to 2024-03-09")
}

func TestExecCommand_Stdin(t *testing.T) {
	out, _, err := execute(t, "add n/Japan l/Tokyo d/2024-03-01 to 2024-03-09\nlist\n", "exec", "-f", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "1. Japan (Tokyo) 2024-03-01 to 2024-03-09")
}

func TestExecCommand_FailsWhenAnyLineFails(t *testing.T) {
	out, _, err := execute(t, "", "exec", "frobnicate", "list")
	require.Error(t, err)

	errutil.AssertErrorCode(t, err, CodeExecFailed)
	errutil.AssertErrorContext(t, err, "failures", 1)
	assert.Contains(t, out, "Unknown command")
	assert.Contains(t, out, "You have no trips yet.")
}

func TestExecCommand_NoInput(t *testing.T) {
	_, _, err := execute(t, "", "exec")
	require.Error(t, err)
	errutil.AssertErrorCode(t, err, CodeExecFailed)
}

func TestExecCommand_ArgsAndFile(t *testing.T) {
	_, _, err := execute(t, "", "exec", "--file", "plan.txt", "list")
	require.Error(t, err)
	errutil.AssertErrorCode(t, err, CodeExecFailed)
}

func TestExecCommand_MissingFile(t *testing.T) {
	_, _, err := execute(t, "", "exec", "--file", "/definitely/not/here.txt")
	require.Error(t, err)
	errutil.AssertErrorCode(t, err, CodeExecFailed)
}
