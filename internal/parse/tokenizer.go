// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

package parse

import (
	"slices"
	"strings"
)

// Prefix introduces a named argument, e.g. "n/" in "n/Japan".
type Prefix string

// ArgMultimap holds the values found for each prefix by Tokenize.
type ArgMultimap struct {
	preamble string
	values   map[Prefix][]string
}

// Tokenize splits args into prefixed values. A prefix only counts when it
// follows whitespace, so "l/Tokyo n/a" has two prefixes but "url/x" has none.
// Text before the first prefix is the preamble. All values are trimmed.
func Tokenize(args string, prefixes ...Prefix) ArgMultimap {
	type position struct {
		start  int
		prefix Prefix
	}

	// A leading space lets a prefix at the very start of args match too.
	args = " " + args

	var positions []position
	for _, p := range prefixes {
		needle := " " + string(p)
		from := 0
		for {
			i := strings.Index(args[from:], needle)
			if i < 0 {
				break
			}
			start := from + i + 1
			positions = append(positions, position{start: start, prefix: p})
			from = start
		}
	}
	slices.SortFunc(positions, func(a, b position) int { return a.start - b.start })

	m := ArgMultimap{values: make(map[Prefix][]string)}
	end := len(args)
	if len(positions) > 0 {
		end = positions[0].start
	}
	m.preamble = strings.TrimSpace(args[:end])

	for i, pos := range positions {
		valueEnd := len(args)
		if i+1 < len(positions) {
			valueEnd = positions[i+1].start
		}
		value := strings.TrimSpace(args[pos.start+len(pos.prefix) : valueEnd])
		m.values[pos.prefix] = append(m.values[pos.prefix], value)
	}
	return m
}

// Preamble returns the text before the first prefix.
func (m ArgMultimap) Preamble() string { return m.preamble }

// Value returns the last value given for p.
func (m ArgMultimap) Value(p Prefix) (string, bool) {
	vs := m.values[p]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// AllValues returns every value given for p, in order.
func (m ArgMultimap) AllValues(p Prefix) []string {
	return slices.Clone(m.values[p])
}

// Has reports whether p appeared at least once.
func (m ArgMultimap) Has(p Prefix) bool {
	return len(m.values[p]) > 0
}

// RequirePrefixes reports whether every one of ps appeared.
func (m ArgMultimap) RequirePrefixes(ps ...Prefix) bool {
	for _, p := range ps {
		if !m.Has(p) {
			return false
		}
	}
	return true
}
