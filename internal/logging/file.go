// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

package logging

import (
	"io"

	"github.com/samber/oops"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits for the log file.
const (
	MaxFileSizeMB = 16
	MaxBackups    = 3
	MaxAgeDays    = 28
)

// OpenFile returns a size-rotated writer for path. The file and any missing
// directories are created on first write. The caller closes it.
func OpenFile(path string) (io.WriteCloser, error) {
	if path == "" {
		return nil, oops.Code("LOG_FILE_INVALID").Errorf("log file path is empty")
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    MaxFileSizeMB,
		MaxBackups: MaxBackups,
		MaxAge:     MaxAgeDays,
	}, nil
}
