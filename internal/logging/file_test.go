// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "volant.log")

	w, err := OpenFile(path)
	require.NoError(t, err)

	logger := Setup("volant", "test", "json", slog.LevelInfo, w)
	logger.Info("written to file")
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestOpenFile_EmptyPath(t *testing.T) {
	_, err := OpenFile("")
	assert.Error(t, err)
}
