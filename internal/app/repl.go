// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/samber/oops"

	"github.com/volant-app/volant/internal/command"
	"github.com/volant-app/volant/internal/observability"
	"github.com/volant-app/volant/pkg/errutil"
)

// DefaultPrompt is the prompt prefix shown before the page name.
const DefaultPrompt = "volant"

// REPL reads lines, hands them to a Session and prints the replies.
type REPL struct {
	session  *Session
	in       io.Reader
	out      io.Writer
	prompt   string
	banner   string
	echo     bool
	logger   *slog.Logger
	failures int
}

// REPLOption configures a REPL.
type REPLOption func(*REPL)

// WithPrompt sets the prompt prefix.
func WithPrompt(prompt string) REPLOption {
	return func(r *REPL) {
		if prompt != "" {
			r.prompt = prompt
		}
	}
}

// WithBanner prints banner once before the first prompt.
func WithBanner(banner string) REPLOption {
	return func(r *REPL) {
		r.banner = banner
	}
}

// WithEcho writes each input line after the prompt, for non-interactive input.
func WithEcho(echo bool) REPLOption {
	return func(r *REPL) {
		r.echo = echo
	}
}

// WithREPLLogger sets the logger for unexpected failures.
func WithREPLLogger(logger *slog.Logger) REPLOption {
	return func(r *REPL) {
		r.logger = logger
	}
}

// NewREPL creates a loop over session reading from in and writing to out.
func NewREPL(session *Session, in io.Reader, out io.Writer, opts ...REPLOption) *REPL {
	r := &REPL{
		session: session,
		in:      in,
		out:     out,
		prompt:  DefaultPrompt,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Failures returns how many lines failed so far.
func (r *REPL) Failures() int {
	return r.failures
}

// Run processes input until EOF, an exit command or ctx is cancelled.
// Rejected lines are reported to the user and never stop the loop.
func (r *REPL) Run(ctx context.Context) error {
	lineCh := make(chan string)
	errCh := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		scanner := bufio.NewScanner(r.in)
		for scanner.Scan() {
			select {
			case lineCh <- scanner.Text():
			case <-done:
				return
			}
		}
		errCh <- scanner.Err()
	}()

	if r.banner != "" {
		r.writeln(ctx, r.banner)
	}
	r.writePrompt(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil

		case err := <-errCh:
			if err != nil {
				return oops.Code("INPUT_READ_FAILED").Wrap(err)
			}
			return nil

		case line := <-lineCh:
			if strings.TrimSpace(line) == "" {
				r.writePrompt(ctx)
				continue
			}
			if r.echo {
				r.writeln(ctx, line)
			}
			r.handle(ctx, line)
			if r.session.Done() {
				return nil
			}
			r.writePrompt(ctx)
		}
	}
}

func (r *REPL) handle(ctx context.Context, line string) {
	reply, err := r.session.Handle(ctx, line)
	if err != nil {
		r.failures++
		if command.IsUserError(err) {
			observability.RecordLine(observability.LineRejected)
		} else {
			observability.RecordLine(observability.LineError)
			errutil.LogErrorContext(ctx, r.logger, slog.LevelError, "command failed", err)
		}
		r.writeln(ctx, command.UserMessage(err))
		return
	}
	observability.RecordLine(observability.LineAccepted)
	if reply.Feedback != "" {
		r.writeln(ctx, reply.Feedback)
	}
}

func (r *REPL) writePrompt(ctx context.Context) {
	r.write(ctx, fmt.Sprintf("%s:%s> ", r.prompt, r.session.Page()))
}

func (r *REPL) writeln(ctx context.Context, s string) {
	r.write(ctx, s+"\n")
}

// write logs output failures without stopping the loop.
func (r *REPL) write(ctx context.Context, s string) {
	if n, err := io.WriteString(r.out, s); err != nil {
		observability.RecordOutputFailure()
		r.logger.WarnContext(ctx, "failed to write output",
			"bytes_written", n,
			"error", err,
		)
	}
}
