// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

package main

import (
	"io"
	"os"
	"strings"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/volant-app/volant/internal/app"
	"github.com/volant-app/volant/internal/config"
)

// CodeExecFailed marks a batch run in which some lines were rejected.
const CodeExecFailed = "EXEC_FAILED"

// NewExecCmd creates the exec subcommand.
func NewExecCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "exec [LINE...]",
		Short: "Run commands non-interactively",
		Long: `Run commands without the interactive prompt. Each argument is one
command line; with --file the lines are read from a file, or standard input
when the file is "-". Every line is echoed after its prompt. The command fails
if any line is rejected.

  volant exec "add n/Japan l/Tokyo d/2024-03-01 to 2024-03-09" "list"
  volant exec --file plan.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, closeIn, err := execInput(cmd, file, args)
			if err != nil {
				return err
			}
			defer closeIn()
			return runExec(cmd, in)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", `read command lines from a file ("-" for stdin)`)

	return cmd
}

func execInput(cmd *cobra.Command, file string, args []string) (io.Reader, func(), error) {
	switch {
	case file != "" && len(args) > 0:
		return nil, nil, oops.Code(CodeExecFailed).Errorf("pass command lines as arguments or --file, not both")
	case file == "-":
		return cmd.InOrStdin(), func() {}, nil
	case file != "":
		f, err := os.Open(file) //nolint:gosec // user-chosen script path
		if err != nil {
			return nil, nil, oops.Code(CodeExecFailed).With("path", file).Wrap(err)
		}
		return f, func() { _ = f.Close() }, nil
	case len(args) == 0:
		return nil, nil, oops.Code(CodeExecFailed).Errorf("no command lines given")
	default:
		return strings.NewReader(strings.Join(args, "\n") + "\n"), func() {}, nil
	}
}

func runExec(cmd *cobra.Command, in io.Reader) error {
	rt, err := setup(cmd, func() (string, error) { return config.StderrLogFile, nil })
	if err != nil {
		return err
	}
	defer func() { _ = rt.Close() }()

	repl, err := rt.runSession(cmd, in, app.WithEcho(true))
	if err != nil {
		return err
	}
	if n := repl.Failures(); n > 0 {
		return oops.Code(CodeExecFailed).
			With("failures", n).
			Errorf("%d command line(s) failed", n)
	}
	return nil
}
