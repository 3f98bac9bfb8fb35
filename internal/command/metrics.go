// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

package command

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Status constants for command metrics.
const (
	StatusSuccess              = "success"
	StatusInvalidFormat        = "invalid_format"
	StatusInvalidCommandFormat = "invalid_command_format"
	StatusUnknownCommand       = "unknown_command"
	StatusFailed               = "failed"
	StatusError                = "error"
)

// unknownCommandLabel stands in for words that are not in the table, which
// keeps label cardinality bounded by the tables.
const unknownCommandLabel = "unknown"

// CommandParses counts parse attempts per page, command word and outcome.
// Use RegisterMetrics to register this with a Prometheus registry.
var CommandParses = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "volant_command_parses_total",
		Help: "Total number of command lines parsed",
	},
	[]string{"page", "command", "status"},
)

// CommandParseDuration is the histogram for parse duration.
// Use RegisterMetrics to register this with a Prometheus registry.
var CommandParseDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "volant_command_parse_duration_seconds",
		Help:    "Command parse duration in seconds",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"page"},
)

// CommandExecutions counts executed commands per page, word and outcome.
// Use RegisterMetrics to register this with a Prometheus registry.
var CommandExecutions = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "volant_command_executions_total",
		Help: "Total number of command executions",
	},
	[]string{"page", "command", "status"},
)

// RegisterMetrics registers command package metrics with the given Prometheus registry.
// Panics if registration fails (following prometheus convention).
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(CommandParses)
	reg.MustRegister(CommandParseDuration)
	reg.MustRegister(CommandExecutions)
}

// RecordCommandParse increments the parse counter.
func RecordCommandParse(page Page, command, status string) {
	CommandParses.WithLabelValues(string(page), command, status).Inc()
}

// RecordCommandParseDuration records how long a parse took.
func RecordCommandParseDuration(page Page, duration time.Duration) {
	CommandParseDuration.WithLabelValues(string(page)).Observe(duration.Seconds())
}

// RecordCommandExecution increments the execution counter.
func RecordCommandExecution(page Page, command, status string) {
	CommandExecutions.WithLabelValues(string(page), command, status).Inc()
}
