// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

package parse

import "github.com/samber/oops"

// CodeInvalidFormat marks a field whose text failed its grammar.
const CodeInvalidFormat = "INVALID_FORMAT"

// MessageInvalidIndex is shown when an index is not a positive integer.
const MessageInvalidIndex = "Index is not a non-zero unsigned integer."

// ErrInvalidFormat creates the error for a field that failed its grammar.
// message is the user-facing constraint for that field.
func ErrInvalidFormat(field, message string) error {
	return oops.Code(CodeInvalidFormat).
		With("field", field).
		With("message", message).
		Errorf("%s", message)
}

// IsInvalidFormat reports whether err is an InvalidFormat error.
func IsInvalidFormat(err error) bool {
	oopsErr, ok := oops.AsOops(err)
	return ok && oopsErr.Code() == CodeInvalidFormat
}
