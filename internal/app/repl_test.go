// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession()
	require.NoError(t, err)
	return s
}

func TestREPL_RunsUntilEOF(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	in := strings.NewReader("add n/Japan l/Tokyo d/2024-03-01 to 2024-03-09\n\nlist\n")
	var out bytes.Buffer
	r := NewREPL(newTestSession(t), in, &out)

	require.NoError(t, r.Run(context.Background()))

	got := out.String()
	assert.True(t, strings.HasPrefix(got, "volant:home> "))
	assert.Contains(t, got, "New trip added: Japan (Tokyo) 2024-03-01 to 2024-03-09\n")
	assert.Contains(t, got, "1. Japan (Tokyo) 2024-03-01 to 2024-03-09\n")
	assert.Equal(t, 0, r.Failures())
}

func TestREPL_ReportsFailuresAndContinues(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	in := strings.NewReader("frobnicate\ndelete abc\ngoto 1\nlist\n")
	var out bytes.Buffer
	r := NewREPL(newTestSession(t), in, &out)

	require.NoError(t, r.Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "Unknown command\n")
	assert.Contains(t, got, "Index is not a non-zero unsigned integer.\n")
	assert.Contains(t, got, "The trip index provided is invalid.\n")
	assert.Contains(t, got, "You have no trips yet.")
	assert.Equal(t, 3, r.Failures())
}

func TestREPL_StopsOnExit(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	in := strings.NewReader("exit\nlist\n")
	var out bytes.Buffer
	session := newTestSession(t)
	r := NewREPL(session, in, &out, WithPrompt("trip"), WithBanner("Welcome"))

	require.NoError(t, r.Run(context.Background()))

	assert.Equal(t, "Welcome\ntrip:home> Goodbye!\n", out.String())
	assert.True(t, session.Done())
}

func TestREPL_PromptFollowsPage(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	in := strings.NewReader("add n/Japan l/Tokyo d/2024-03-01 to 2024-03-09\ngoto 1\njournal\n")
	var out bytes.Buffer
	r := NewREPL(newTestSession(t), in, &out, WithEcho(true))

	require.NoError(t, r.Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "volant:home> goto 1\n")
	assert.Contains(t, got, "volant:itinerary> journal\n")
	assert.True(t, strings.HasSuffix(got, "volant:journal> "))
}

func TestREPL_StopsOnContextCancel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	pr, pw := io.Pipe()
	defer func() { _ = pw.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	r := NewREPL(newTestSession(t), pr, io.Discard)

	errCh := make(chan error, 1)
	go func() { errCh <- r.Run(ctx) }()

	cancel()
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("REPL did not stop after cancel")
	}
	require.NoError(t, pw.Close())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("tty gone") }

func TestREPL_ReturnsReadErrors(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	r := NewREPL(newTestSession(t), failingReader{}, io.Discard)
	err := r.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tty gone")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestREPL_LogsWriteFailures(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))
	r := NewREPL(newTestSession(t), strings.NewReader("list\n"), failingWriter{}, WithREPLLogger(logger))

	require.NoError(t, r.Run(context.Background()))
	assert.Contains(t, logs.String(), "failed to write output")
}
