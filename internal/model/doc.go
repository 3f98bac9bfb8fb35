// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

// Package model holds the trip planner's value objects, the grammars that
// decide whether raw text is a valid value, and the entity collections.
//
// Value objects (Name, Location, Date, DateRange, Tag, ...) are immutable and
// compare structurally. Each grammar is exposed as an IsValid* predicate with a
// matching *Constraints message; constructors named Must* panic when handed
// text that fails the grammar, so callers check first.
package model
