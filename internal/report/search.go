package report

import (
	"sort"
	"strings"

	"github.com/nmtri/soquy/internal/model"
)

// Window narrows a search to a calendar period relative to "now".
type Window string

const (
	// WindowAll places no date restriction.
	WindowAll Window = "all"
	// WindowMonth restricts to the current calendar month.
	WindowMonth Window = "month"
	// WindowYear restricts to the current calendar year.
	WindowYear Window = "year"
)

// SearchItem is one matched transaction with its resolved category.
type SearchItem struct {
	Category    model.Category
	Transaction model.Transaction
}

// SearchGroup is the matches of one day, newest day first in results.
type SearchGroup struct {
	Date  model.Date
	Items []SearchItem
}

// Search filters the transaction list by the date window AND a
// case-insensitive substring match against the resolved category name
// or the note. A blank query matches everything. Results are grouped
// by date descending.
func Search(txns []model.Transaction, index model.CategoryIndex, query string, window Window, now model.Date) []SearchGroup {
	needle := strings.ToLower(strings.TrimSpace(query))

	byDate := make(map[model.Date][]SearchItem)
	for _, txn := range txns {
		if !inWindow(txn.Date, window, now) {
			continue
		}

		category := index.Resolve(txn.CategoryID)
		if needle != "" {
			name := strings.ToLower(category.Name)
			note := strings.ToLower(txn.Note)
			if !strings.Contains(name, needle) && !strings.Contains(note, needle) {
				continue
			}
		}

		byDate[txn.Date] = append(byDate[txn.Date], SearchItem{Category: category, Transaction: txn})
	}

	groups := make([]SearchGroup, 0, len(byDate))
	for date, items := range byDate {
		groups = append(groups, SearchGroup{Date: date, Items: items})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[j].Date.Before(groups[i].Date)
	})
	return groups
}

func inWindow(d model.Date, window Window, now model.Date) bool {
	switch window {
	case WindowMonth:
		return d.Year == now.Year && d.Month == now.Month
	case WindowYear:
		return d.Year == now.Year
	default:
		return true
	}
}
