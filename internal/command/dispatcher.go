// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

package command

import (
	"context"
	"log/slog"

	"github.com/samber/oops"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/volant-app/volant/internal/parse"
	"github.com/volant-app/volant/pkg/errutil"
)

var tracer = otel.Tracer("volant/command")

// Dispatcher parses lines against one page's table and runs the result.
// It holds no page state; Dispatch receives it explicitly.
type Dispatcher struct {
	table  *Table
	logger *slog.Logger
}

// DispatcherOption configures a Dispatcher during construction.
type DispatcherOption func(*Dispatcher)

// WithLogger sets the logger used for rejected input and failed commands.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// NewDispatcher creates a dispatcher bound to table.
func NewDispatcher(table *Table, opts ...DispatcherOption) (*Dispatcher, error) {
	if table == nil {
		return nil, ErrNilTable
	}
	d := &Dispatcher{table: table}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	return d, nil
}

// Page returns the page this dispatcher serves.
func (d *Dispatcher) Page() Page {
	return d.table.Page()
}

// Table returns the dispatcher's command table.
func (d *Dispatcher) Table() *Table {
	return d.table
}

// Parse maps one line of input to a command.
//
// A line with no command word fails with INVALID_COMMAND_FORMAT, a word not
// in the table fails with UNKNOWN_COMMAND, and errors from the word's
// argument parser are returned unchanged.
func (d *Dispatcher) Parse(ctx context.Context, input string) (Command, error) {
	cmd, _, err := d.parse(ctx, input)
	return cmd, err
}

// parse also returns the command word, or "" when the line has none.
func (d *Dispatcher) parse(ctx context.Context, input string) (cmd Command, word string, err error) {
	page := d.table.Page()
	recorder := NewMetricsRecorder(page)

	ctx, span := tracer.Start(ctx, "command.parse",
		trace.WithAttributes(attribute.String("command.page", string(page))),
	)
	defer func() {
		recorder.SetStatus(parseStatus(err))
		recorder.Record()
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	parsed, err := Parse(input)
	if err != nil {
		return nil, "", err
	}
	span.SetAttributes(attribute.String("command.name", parsed.Name))

	entry, ok := d.table.Get(parsed.Name)
	if !ok {
		err = ErrUnknownCommand(parsed.Name)
		return nil, parsed.Name, err
	}
	recorder.SetCommandName(entry.Name)

	cmd, err = entry.Parse(parsed.Args)
	if err != nil {
		d.logger.DebugContext(ctx, "command arguments rejected",
			"page", string(page),
			"command", entry.Name,
			"error", err,
		)
		return nil, entry.Name, err
	}
	return cmd, entry.Name, nil
}

// Dispatch parses input and executes the command against env.
func (d *Dispatcher) Dispatch(ctx context.Context, input string, env *Env) (Result, error) {
	if env == nil {
		return Result{}, ErrNilEnv
	}

	cmd, name, err := d.parse(ctx, input)
	if err != nil {
		return Result{}, err
	}

	page := d.table.Page()

	ctx, span := tracer.Start(ctx, "command.execute",
		trace.WithAttributes(
			attribute.String("command.page", string(page)),
			attribute.String("command.name", name),
		),
	)
	defer span.End()

	result, err := cmd.Execute(ctx, env)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		status := StatusError
		level := slog.LevelWarn
		if IsUserError(err) {
			status = StatusFailed
			level = slog.LevelDebug
		}
		RecordCommandExecution(page, name, status)
		errutil.LogErrorContext(ctx, d.logger, level, "command execution failed", oops.
			With("page", string(page)).
			With("command", name).
			Wrap(err))
		return Result{}, err
	}

	span.SetAttributes(attribute.String("command.navigation", result.Nav.String()))
	RecordCommandExecution(page, name, StatusSuccess)
	return result, nil
}

func parseStatus(err error) string {
	if err == nil {
		return StatusSuccess
	}
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return StatusError
	}
	switch oopsErr.Code() {
	case parse.CodeInvalidFormat:
		return StatusInvalidFormat
	case CodeInvalidCommandFormat:
		return StatusInvalidCommandFormat
	case CodeUnknownCommand:
		return StatusUnknownCommand
	default:
		return StatusError
	}
}
