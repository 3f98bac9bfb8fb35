// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

package model

import "github.com/samber/oops"

// Error codes for collection operations.
const (
	CodeDuplicateEntity = "DUPLICATE_ENTITY"
	CodeEntityNotFound  = "ENTITY_NOT_FOUND"
	CodeIndexOutOfRange = "INDEX_OUT_OF_RANGE"
	CodeTripOverlap     = "TRIP_OVERLAP"
)

// ErrDuplicate reports that an entity with the same identity already exists.
func ErrDuplicate(identity string) error {
	return oops.Code(CodeDuplicateEntity).
		With("identity", identity).
		Errorf("operation would result in duplicate entities")
}

// ErrNotFound reports that no entity with the given identity exists.
func ErrNotFound(identity string) error {
	return oops.Code(CodeEntityNotFound).
		With("identity", identity).
		Errorf("entity not found")
}

// ErrIndexOutOfRange reports that an index is past the end of a list.
func ErrIndexOutOfRange(index Index, size int) error {
	return oops.Code(CodeIndexOutOfRange).
		With("index", index.OneBased()).
		With("size", size).
		Errorf("index %d is out of range for %d entities", index.OneBased(), size)
}

// ErrTripOverlap reports that a trip's dates clash with an existing trip.
func ErrTripOverlap(existing *Trip) error {
	return oops.Code(CodeTripOverlap).
		With("trip", existing.Name.String()).
		With("dates", existing.Range.String()).
		Errorf("dates overlap with trip %s (%s)", existing.Name, existing.Range)
}

// HasCode reports whether err is an oops error carrying code.
func HasCode(err error, code string) bool {
	oopsErr, ok := oops.AsOops(err)
	return ok && oopsErr.Code() == code
}
