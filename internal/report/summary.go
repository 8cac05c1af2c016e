// Package report computes derived views over in-memory transaction
// lists: monthly summaries, daily chart series, category breakdowns,
// drill-downs and search. Every function is pure; inputs are passed in
// and nothing is read or written. All totals are int64 arithmetic;
// percentages are the only floating-point output and are cosmetic.
package report

import "github.com/nmtri/soquy/internal/model"

// Summary is the income/expense/balance triple for one period.
type Summary struct {
	Income  int64
	Expense int64
	Balance int64
}

// MonthlySummary totals the transactions dated inside the month.
// Balance is income minus expense.
func MonthlySummary(txns []model.Transaction, month model.Month) Summary {
	var s Summary
	for _, txn := range txns {
		if model.MonthOf(txn.Date) != month {
			continue
		}
		switch txn.Type {
		case model.TypeIncome:
			s.Income += txn.Amount
		case model.TypeExpense:
			s.Expense += txn.Amount
		}
	}
	s.Balance = s.Income - s.Expense
	return s
}

// DayPoint is one chart data point: the income and expense totals for
// a single calendar day.
type DayPoint struct {
	Date    model.Date
	Income  int64
	Expense int64
}

// DailySeries produces one point per calendar day of the month, in
// ascending date order. Days without transactions yield (0, 0); the
// result always has exactly month.Days() entries.
func DailySeries(txns []model.Transaction, month model.Month) []DayPoint {
	byDay := make(map[int]*DayPoint)
	for _, txn := range txns {
		if model.MonthOf(txn.Date) != month {
			continue
		}
		p, ok := byDay[txn.Date.Day]
		if !ok {
			p = &DayPoint{}
			byDay[txn.Date.Day] = p
		}
		switch txn.Type {
		case model.TypeIncome:
			p.Income += txn.Amount
		case model.TypeExpense:
			p.Expense += txn.Amount
		}
	}

	series := make([]DayPoint, month.Days())
	for day := 1; day <= month.Days(); day++ {
		point := DayPoint{Date: model.NewDate(month.Year, month.Month, day)}
		if p, ok := byDay[day]; ok {
			point.Income = p.Income
			point.Expense = p.Expense
		}
		series[day-1] = point
	}
	return series
}
