// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

package model

import (
	"fmt"
	"strconv"
)

// Index is a position in a displayed list. It is stored zero-based and shown
// to users one-based.
type Index struct {
	zeroBased int
}

// FromZeroBased creates an Index from a zero-based position.
// Panics if i is negative.
func FromZeroBased(i int) Index {
	if i < 0 {
		panic(fmt.Sprintf("model: negative zero-based index %d", i))
	}
	return Index{zeroBased: i}
}

// FromOneBased creates an Index from a one-based position.
// Panics if i is less than 1.
func FromOneBased(i int) Index {
	if i < 1 {
		panic(fmt.Sprintf("model: one-based index %d is below 1", i))
	}
	return Index{zeroBased: i - 1}
}

// ZeroBased returns the zero-based position.
func (i Index) ZeroBased() int { return i.zeroBased }

// OneBased returns the one-based position.
func (i Index) OneBased() int { return i.zeroBased + 1 }

// String returns the one-based position in decimal.
func (i Index) String() string {
	return strconv.Itoa(i.OneBased())
}
