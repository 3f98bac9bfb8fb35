// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

package main

import (
	"fmt"
	"os"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/volant-app/volant/internal/config"
)

// NewConfigCmd creates the config subcommand group.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and validate configuration files",
	}

	cmd.AddCommand(newConfigSchemaCmd())
	cmd.AddCommand(newConfigValidateCmd())

	return cmd
}

func newConfigSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			schema, err := config.GenerateSchema()
			if err != nil {
				return oops.Wrapf(err, "generate schema")
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(schema))
			return err //nolint:wrapcheck // stdout write failure
		},
	}
}

func newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Validate a config file without starting a session",
		Long: `Validates a config file against the schema, checks every setting and
parses every seed trip. Exits with code 0 on success, non-zero on failure.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigValidate(cmd, args[0])
		},
	}
}

func runConfigValidate(cmd *cobra.Command, path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // user-chosen config path
	if err != nil {
		return oops.Code(config.CodeConfigRead).With("path", path).Wrap(err)
	}
	if err := config.ValidateSchema(data); err != nil {
		cmd.PrintErrln(config.FormatSchemaError(err))
		return oops.Code(config.CodeConfigInvalid).With("path", path).Wrapf(err, "schema validation")
	}

	cfg, err := config.Load(path, true, nil)
	if err != nil {
		return err //nolint:wrapcheck // Load errors carry their own context
	}
	trips, err := cfg.SeedTrips()
	if err != nil {
		return oops.Wrapf(err, "seed trips")
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s is valid (%d trip(s))\n", path, trips.Len())
	return err //nolint:wrapcheck // stdout write failure
}
