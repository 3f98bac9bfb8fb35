// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

package command

import "time"

// MetricsRecorder tracks parse metrics for a single line.
type MetricsRecorder struct {
	startTime   time.Time
	page        Page
	commandName string
	status      string
}

// NewMetricsRecorder initializes a recorder for a single parse on page.
func NewMetricsRecorder(page Page) *MetricsRecorder {
	return &MetricsRecorder{
		startTime:   time.Now(),
		page:        page,
		commandName: unknownCommandLabel,
		status:      StatusSuccess,
	}
}

// SetCommandName sets the command word once it is known to be in the table.
func (m *MetricsRecorder) SetCommandName(name string) {
	m.commandName = name
}

// SetStatus sets the parse status.
func (m *MetricsRecorder) SetStatus(status string) {
	m.status = status
}

// Record writes the collected metrics.
func (m *MetricsRecorder) Record() {
	RecordCommandParse(m.page, m.commandName, m.status)
	RecordCommandParseDuration(m.page, time.Since(m.startTime))
}
