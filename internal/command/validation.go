// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

package command

import (
	"regexp"

	"github.com/samber/oops"
)

// MaxNameLength is the maximum length of a command word.
const MaxNameLength = 20

// namePattern: a lowercase letter, then lowercase letters, digits or hyphens.
var namePattern = regexp.MustCompile(`^[a-z][a-z0-9-]{0,19}$`)

// ValidateCommandName validates a command word for a table.
func ValidateCommandName(name string) error {
	if name == "" {
		return oops.Code(CodeInvalidName).
			Errorf("command name cannot be empty")
	}

	if len(name) > MaxNameLength {
		return oops.Code(CodeInvalidName).
			With("name", name).
			With("length", len(name)).
			With("max", MaxNameLength).
			Errorf("command name exceeds maximum length of %d", MaxNameLength)
	}

	if !namePattern.MatchString(name) {
		return oops.Code(CodeInvalidName).
			With("name", name).
			Errorf("command name must start with a lowercase letter and contain only lowercase letters, digits, or hyphens")
	}

	return nil
}
