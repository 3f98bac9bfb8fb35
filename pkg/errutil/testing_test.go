// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

package errutil_test

import (
	"testing"

	"github.com/samber/oops"

	"github.com/volant-app/volant/pkg/errutil"
)

func TestAssertErrorCode_MatchingCode(t *testing.T) {
	err := oops.Code("INVALID_FORMAT").Errorf("bad input")
	errutil.AssertErrorCode(t, err, "INVALID_FORMAT")
}

func TestAssertErrorContext_MatchingKeyValue(t *testing.T) {
	err := oops.With("field", "index").Errorf("bad input")
	errutil.AssertErrorContext(t, err, "field", "index")
}

func TestAssertErrorContextKeys_AllPresent(t *testing.T) {
	err := oops.With("trip", "Japan", "dates", "2024-03-01 to 2024-03-09").Errorf("overlap")
	errutil.AssertErrorContextKeys(t, err, "trip", "dates")
}

func TestRequireOops_ReturnsError(t *testing.T) {
	err := oops.Code("UNKNOWN_COMMAND").Errorf("nope")
	oopsErr := errutil.RequireOops(t, err)
	if oopsErr.Code() != "UNKNOWN_COMMAND" {
		t.Errorf("Code() = %v, want UNKNOWN_COMMAND", oopsErr.Code())
	}
}
