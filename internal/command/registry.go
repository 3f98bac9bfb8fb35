// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

package command

import (
	"slices"
	"strings"

	"github.com/samber/oops"
)

// Table is a page's static mapping from command word to entry.
// It is built once and never modified, so it is safe for concurrent reads.
type Table struct {
	page     Page
	commands map[string]Entry
}

// NewTable builds the command table for page.
// Every word must pass ValidateCommandName, have a parser, and appear once.
func NewTable(page Page, entries ...Entry) (*Table, error) {
	t := &Table{
		page:     page,
		commands: make(map[string]Entry, len(entries)),
	}
	for _, entry := range entries {
		if err := ValidateCommandName(entry.Name); err != nil {
			return nil, oops.With("page", string(page)).Wrap(err)
		}
		if entry.Parse == nil {
			return nil, oops.Code(CodeInvalidEntry).
				With("page", string(page)).
				With("command", entry.Name).
				Errorf("command %q has no argument parser", entry.Name)
		}
		if _, exists := t.commands[entry.Name]; exists {
			return nil, oops.Code(CodeDuplicateCommand).
				With("page", string(page)).
				With("command", entry.Name).
				Errorf("command %q registered twice on page %s", entry.Name, page)
		}
		t.commands[entry.Name] = entry
	}
	return t, nil
}

// MustTable is NewTable for statically known entries; it panics on error.
func MustTable(page Page, entries ...Entry) *Table {
	t, err := NewTable(page, entries...)
	if err != nil {
		panic(err)
	}
	return t
}

// Page returns the page the table serves.
func (t *Table) Page() Page {
	return t.page
}

// Get retrieves an entry by its exact command word.
func (t *Table) Get(word string) (Entry, bool) {
	entry, ok := t.commands[word]
	return entry, ok
}

// Len returns the number of command words.
func (t *Table) Len() int {
	return len(t.commands)
}

// All returns all entries sorted by command word.
// The returned slice is a copy and safe to modify.
func (t *Table) All() []Entry {
	entries := make([]Entry, 0, len(t.commands))
	for _, e := range t.commands {
		entries = append(entries, e)
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Name, b.Name)
	})
	return entries
}
