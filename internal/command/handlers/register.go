// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Volant Contributors

// Package handlers holds the argument parsers and commands of every page and
// the static tables binding them to command words.
package handlers

import (
	"sync"

	"github.com/volant-app/volant/internal/command"
)

var (
	homeTable      = sync.OnceValue(func() *command.Table { return newPageTable(command.PageHome, homeEntries()...) })
	itineraryTable = sync.OnceValue(func() *command.Table { return newPageTable(command.PageItinerary, itineraryEntries()...) })
	journalTable   = sync.OnceValue(func() *command.Table { return newPageTable(command.PageJournal, journalEntries()...) })
)

// HomeTable returns the home page's command table.
func HomeTable() *command.Table { return homeTable() }

// ItineraryTable returns the itinerary page's command table.
func ItineraryTable() *command.Table { return itineraryTable() }

// JournalTable returns the journal page's command table.
func JournalTable() *command.Table { return journalTable() }

// Tables returns every page's table keyed by page.
func Tables() map[command.Page]*command.Table {
	return map[command.Page]*command.Table{
		command.PageHome:      HomeTable(),
		command.PageItinerary: ItineraryTable(),
		command.PageJournal:   JournalTable(),
	}
}

// newPageTable adds the shared back, help and exit words to entries.
// Panics if any entry is invalid (indicates a programming error).
func newPageTable(page command.Page, entries ...command.Entry) *command.Table {
	var table *command.Table
	shared := []command.Entry{
		{
			Name:  "back",
			Parse: noArgs(func() command.Command { return BackCommand{} }),
			Usage: BackUsage,
			Help:  "Returns to the previous page",
		},
		{
			Name:  "help",
			Parse: noArgs(func() command.Command { return HelpCommand{Entries: table.All()} }),
			Usage: command.HelpUsage,
			Help:  "Shows program usage instructions",
		},
		{
			Name:  "exit",
			Parse: noArgs(func() command.Command { return ExitCommand{} }),
			Usage: ExitUsage,
			Help:  "Exits the program",
		},
	}
	table = command.MustTable(page, append(shared, entries...)...)
	return table
}

func homeEntries() []command.Entry {
	return []command.Entry{
		{Name: "add", Parse: ParseAddTrip, Usage: AddTripUsage, Help: "Adds a trip"},
		{Name: "delete", Parse: ParseDeleteTrip, Usage: DeleteTripUsage, Help: "Deletes a trip"},
		{Name: "list", Parse: noArgs(func() command.Command { return ListTripsCommand{} }), Usage: ListTripsUsage, Help: "Lists all trips"},
		{Name: "find", Parse: ParseFindTrips, Usage: FindTripsUsage, Help: "Finds trips by name"},
		{Name: "goto", Parse: ParseGotoTrip, Usage: GotoTripUsage, Help: "Opens a trip's itinerary"},
	}
}

func itineraryEntries() []command.Entry {
	return []command.Entry{
		{Name: "add", Parse: ParseAddActivity, Usage: AddActivityUsage, Help: "Adds an activity"},
		{Name: "delete", Parse: ParseDeleteActivity, Usage: DeleteActivityUsage, Help: "Deletes an activity"},
		{Name: "list", Parse: noArgs(func() command.Command { return ListActivitiesCommand{} }), Usage: ListActivitiesUsage, Help: "Lists the itinerary"},
		{Name: "journal", Parse: noArgs(func() command.Command { return OpenJournalCommand{} }), Usage: OpenJournalUsage, Help: "Opens the journal"},
	}
}

func journalEntries() []command.Entry {
	return []command.Entry{
		{Name: "add", Parse: ParseAddEntry, Usage: AddEntryUsage, Help: "Adds a journal entry"},
		{Name: "delete", Parse: ParseDeleteEntry, Usage: DeleteEntryUsage, Help: "Deletes a journal entry"},
		{Name: "list", Parse: noArgs(func() command.Command { return ListEntriesCommand{} }), Usage: ListEntriesUsage, Help: "Lists the journal"},
		{Name: "itinerary", Parse: noArgs(func() command.Command { return OpenItineraryCommand{} }), Usage: OpenItineraryUsage, Help: "Opens the itinerary"},
	}
}
