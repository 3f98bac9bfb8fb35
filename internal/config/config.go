// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

// Package config loads Volant's configuration from an optional YAML file and
// command-line flags.
package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"net"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"

	"github.com/volant-app/volant/internal/logging"
)

// Error codes for configuration failures.
const (
	CodeConfigInvalid  = "CONFIG_INVALID"
	CodeConfigNotFound = "CONFIG_NOT_FOUND"
	CodeConfigRead     = "CONFIG_READ_FAILED"
)

// Default values.
const (
	DefaultLogFormat = "json"
	DefaultLogLevel  = "info"
	DefaultPrompt    = "volant"
)

// StderrLogFile selects standard error instead of a log file.
const StderrLogFile = "-"

// TripSeed is a trip loaded into the session at startup.
type TripSeed struct {
	Name     string   `koanf:"name" json:"name" jsonschema:"minLength=1" jsonschema_description:"Trip name"`
	Location string   `koanf:"location" json:"location" jsonschema:"minLength=1" jsonschema_description:"Trip destination"`
	Dates    string   `koanf:"dates" json:"dates" jsonschema_description:"Date range as START to END in YYYY-MM-DD form"`
	Tags     []string `koanf:"tags" json:"tags,omitempty" jsonschema_description:"Single-word tags"`
}

// Config holds every configurable setting.
type Config struct {
	LogFormat   string     `koanf:"log-format" json:"log-format,omitempty" jsonschema:"enum=json,enum=text" jsonschema_description:"Log output format"`
	LogLevel    string     `koanf:"log-level" json:"log-level,omitempty" jsonschema:"enum=debug,enum=info,enum=warn,enum=error" jsonschema_description:"Minimum log level"`
	LogFile     string     `koanf:"log-file" json:"log-file,omitempty" jsonschema_description:"Log file path; - for standard error"`
	MetricsAddr string     `koanf:"metrics-addr" json:"metrics-addr,omitempty" jsonschema_description:"Metrics and health HTTP address; empty disables it"`
	Prompt      string     `koanf:"prompt" json:"prompt,omitempty" jsonschema:"minLength=1" jsonschema_description:"Prompt prefix"`
	Trips       []TripSeed `koanf:"trips" json:"trips,omitempty" jsonschema_description:"Trips loaded at startup"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		LogFormat: DefaultLogFormat,
		LogLevel:  DefaultLogLevel,
		Prompt:    DefaultPrompt,
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.LogFormat != "json" && c.LogFormat != "text" {
		return oops.Code(CodeConfigInvalid).
			With("key", "log-format").
			Errorf("log-format must be 'json' or 'text', got %q", c.LogFormat)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return oops.Code(CodeConfigInvalid).
			With("key", "log-level").
			Wrap(err)
	}
	if strings.TrimSpace(c.Prompt) == "" {
		return oops.Code(CodeConfigInvalid).
			With("key", "prompt").
			Errorf("prompt cannot be blank")
	}
	if c.MetricsAddr != "" {
		if _, _, err := net.SplitHostPort(c.MetricsAddr); err != nil {
			return oops.Code(CodeConfigInvalid).
				With("key", "metrics-addr").
				Wrapf(err, "metrics-addr %q is not host:port", c.MetricsAddr)
		}
	}
	return nil
}

// Level returns the parsed log level.
func (c *Config) Level() slog.Level {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// Load builds the configuration from defaults, the YAML file at path and
// flags, in increasing precedence. Flags left at their default do not
// override the file. A missing file is an error only when required is set.
func Load(path string, required bool, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist) && !required:
			slog.Debug("config file not found, using defaults", "path", path)
		case errors.Is(err, fs.ErrNotExist):
			return nil, oops.Code(CodeConfigNotFound).
				With("path", path).
				Errorf("config file %s does not exist", path)
		case err != nil:
			return nil, oops.Code(CodeConfigRead).
				With("path", path).
				Wrap(err)
		default:
			if err := ValidateSchema(data); err != nil {
				return nil, oops.Code(CodeConfigInvalid).
					With("path", path).
					Wrapf(err, "config file %s", path)
			}
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, oops.Code(CodeConfigRead).
					With("path", path).
					Wrap(err)
			}
		}
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return nil, oops.Code(CodeConfigRead).Wrap(err)
		}
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, oops.Code(CodeConfigInvalid).Wrap(err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
