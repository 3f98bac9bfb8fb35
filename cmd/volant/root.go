// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/volant-app/volant/internal/app"
	"github.com/volant-app/volant/internal/command"
	"github.com/volant-app/volant/internal/config"
	"github.com/volant-app/volant/internal/logging"
	"github.com/volant-app/volant/internal/observability"
	"github.com/volant-app/volant/internal/xdg"
)

const serviceName = "volant"

const banner = "Welcome to Volant! Type help to see what you can do."

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command for the Volant CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "volant",
		Short: "Volant - a command-line travel planner",
		Long: `Volant keeps your trips, their itineraries and a travel journal.
Run without a subcommand to start the interactive prompt.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file path (default: XDG_CONFIG_HOME/volant/config.yaml)")
	flags.String("log-format", config.DefaultLogFormat, "log format (json or text)")
	flags.String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	flags.String("log-file", "", "log file path, - for stderr (default: XDG_STATE_HOME/volant/volant.log)")
	flags.String("metrics-addr", "", "metrics/health HTTP address (empty = disabled)")
	flags.String("prompt", config.DefaultPrompt, "prompt prefix")

	cmd.AddCommand(NewExecCmd())
	cmd.AddCommand(NewConfigCmd())

	return cmd
}

// runtime is what every session-running command needs after startup.
type runtime struct {
	cfg    *config.Config
	logger *slog.Logger
	closer io.Closer
}

func (r *runtime) Close() error {
	if r.closer == nil {
		return nil
	}
	//nolint:wrapcheck // closing the log writer at exit
	return r.closer.Close()
}

// setup loads configuration and installs the default logger.
// logDefault is the log destination used when log-file is unset.
func setup(cmd *cobra.Command, logDefault func() (string, error)) (*runtime, error) {
	path, required := configFile, configFile != ""
	if path == "" {
		var err error
		if path, err = xdg.ConfigFile(); err != nil {
			slog.Debug("no default config file location", "error", err)
			path = ""
		}
	}

	cfg, err := config.Load(path, required, cmd.Flags())
	if err != nil {
		return nil, oops.Wrapf(err, "load configuration")
	}

	rt := &runtime{cfg: cfg}

	logPath := cfg.LogFile
	if logPath == "" {
		if logPath, err = logDefault(); err != nil {
			return nil, oops.Wrapf(err, "resolve log file")
		}
	}

	var w io.Writer = cmd.ErrOrStderr()
	if logPath != config.StderrLogFile {
		if err := xdg.EnsureDir(filepath.Dir(logPath)); err != nil {
			return nil, oops.Wrapf(err, "create log directory")
		}
		file, err := logging.OpenFile(logPath)
		if err != nil {
			return nil, oops.Wrapf(err, "open log file")
		}
		w, rt.closer = file, file
	}

	rt.logger = logging.SetDefault(serviceName, version, cfg.LogFormat, cfg.Level(), w)
	return rt, nil
}

// newSession builds a session holding the configured seed trips.
func (r *runtime) newSession() (*app.Session, error) {
	trips, err := r.cfg.SeedTrips()
	if err != nil {
		return nil, oops.Wrapf(err, "load seed trips")
	}
	session, err := app.NewSession(app.WithTrips(trips), app.WithLogger(r.logger))
	if err != nil {
		return nil, oops.Wrapf(err, "create session")
	}
	return session, nil
}

// startObservability starts the metrics server when metrics-addr is set.
// The returned stop func is always safe to call.
func (r *runtime) startObservability(ctx context.Context, cancel context.CancelFunc, ready *atomic.Bool) (func(), error) {
	if r.cfg.MetricsAddr == "" {
		return func() {}, nil
	}

	server := observability.NewServer(r.cfg.MetricsAddr, ready.Load, command.RegisterMetrics)
	errCh, err := server.Start()
	if err != nil {
		return nil, oops.Wrapf(err, "start observability server")
	}
	go monitorServerErrors(ctx, cancel, errCh, "observability")

	return func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := server.Stop(shutdownCtx); err != nil {
			slog.Warn("error stopping observability server", "error", err)
		}
	}, nil
}

// monitorServerErrors cancels the session if a background server fails.
func monitorServerErrors(ctx context.Context, cancel context.CancelFunc, errCh <-chan error, name string) {
	select {
	case err, ok := <-errCh:
		if ok && err != nil {
			slog.Error("server failed", "server", name, "error", err)
			cancel()
		}
	case <-ctx.Done():
	}
}

// runSession runs a REPL over in until it finishes, with signal handling and
// the optional observability server.
func (r *runtime) runSession(cmd *cobra.Command, in io.Reader, opts ...app.REPLOption) (*app.REPL, error) {
	session, err := r.newSession()
	if err != nil {
		return nil, err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var ready atomic.Bool
	stopObs, err := r.startObservability(ctx, cancel, &ready)
	if err != nil {
		return nil, err
	}
	defer stopObs()

	opts = append([]app.REPLOption{
		app.WithPrompt(r.cfg.Prompt),
		app.WithREPLLogger(r.logger),
	}, opts...)
	repl := app.NewREPL(session, in, cmd.OutOrStdout(), opts...)

	r.logger.InfoContext(ctx, "session started",
		"trips", session.Trips().Len(),
		"metrics_addr", r.cfg.MetricsAddr,
	)
	ready.Store(true)
	runErr := repl.Run(ctx)
	ready.Store(false)
	r.logger.InfoContext(ctx, "session ended", "failures", repl.Failures())

	if runErr != nil {
		return repl, oops.Wrapf(runErr, "run session")
	}
	return repl, nil
}

func runInteractive(cmd *cobra.Command) error {
	rt, err := setup(cmd, xdg.LogFile)
	if err != nil {
		return err
	}
	defer func() { _ = rt.Close() }()

	_, err = rt.runSession(cmd, cmd.InOrStdin(), app.WithBanner(banner))
	return err
}
