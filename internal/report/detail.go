package report

import (
	"sort"

	"github.com/nmtri/soquy/internal/model"
)

// DateGroup is the transactions of a single day with their subtotal.
type DateGroup struct {
	Date         model.Date
	Transactions []model.Transaction
	Subtotal     int64
}

// CategoryDetail is the drill-down view for one category over a window.
// AvgPerTransaction truncates toward zero; AvgPerDay divides by the
// number of distinct dates that have a transaction, not calendar days.
// Both are 0 when their divisor is 0.
type CategoryDetail struct {
	Groups            []DateGroup
	Total             int64
	AvgPerTransaction int64
	AvgPerDay         int64
	Count             int
}

// DetailForCategory filters the transactions to one category and
// computes its totals, averages, and per-day groups sorted by date
// descending.
func DetailForCategory(txns []model.Transaction, categoryID int64) CategoryDetail {
	var detail CategoryDetail

	byDate := make(map[model.Date][]model.Transaction)
	for _, txn := range txns {
		if txn.CategoryID != categoryID {
			continue
		}
		detail.Total += txn.Amount
		detail.Count++
		byDate[txn.Date] = append(byDate[txn.Date], txn)
	}

	if detail.Count > 0 {
		detail.AvgPerTransaction = detail.Total / int64(detail.Count)
	}
	if days := len(byDate); days > 0 {
		detail.AvgPerDay = detail.Total / int64(days)
	}

	detail.Groups = groupsByDateDesc(byDate)
	return detail
}

// groupsByDateDesc flattens a date map into groups ordered newest first,
// computing each day's subtotal.
func groupsByDateDesc(byDate map[model.Date][]model.Transaction) []DateGroup {
	groups := make([]DateGroup, 0, len(byDate))
	for date, txns := range byDate {
		var subtotal int64
		for _, txn := range txns {
			subtotal += txn.Amount
		}
		groups = append(groups, DateGroup{Date: date, Transactions: txns, Subtotal: subtotal})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[j].Date.Before(groups[i].Date)
	})
	return groups
}
