package view

import (
	"context"

	"github.com/nmtri/soquy/internal/common"
	"github.com/nmtri/soquy/internal/model"
	"github.com/nmtri/soquy/internal/report"
	"github.com/nmtri/soquy/internal/storage"
)

// ReportData is the breakdown screen's derived view model.
type ReportData struct {
	Breakdown report.BreakdownResult
	Start     model.Date
	End       model.Date
	Type      model.TransactionType
}

// Report drives the category-breakdown screen. The window is either a
// single month or, in year mode, that month's whole calendar year.
type Report struct {
	store    *storage.Store
	month    model.Month
	typ      model.TransactionType
	yearMode bool
	screen[ReportData]
}

// NewReport creates the report view model, defaulting to the expense
// breakdown of the given month.
func NewReport(store *storage.Store, month model.Month) *Report {
	return &Report{store: store, month: month, typ: model.TypeExpense}
}

// Load fetches the selected window and rebuilds the breakdown.
func (r *Report) Load(ctx context.Context) {
	r.setLoading()

	var start, end model.Date
	if r.yearMode {
		start = model.NewDate(r.month.Year, 1, 1)
		end = model.NewDate(r.month.Year, 12, 31)
	} else {
		start = r.month.First()
		end = r.month.Last()
	}

	txns, err := r.store.GetTransactionsInRange(ctx, start, end)
	if err != nil {
		r.setFailed(common.UserMessage(err))
		return
	}
	categories, err := r.store.GetAllCategories(ctx)
	if err != nil {
		r.setFailed(common.UserMessage(err))
		return
	}

	r.setLoaded(ReportData{
		Start:     start,
		End:       end,
		Type:      r.typ,
		Breakdown: report.Breakdown(txns, model.NewCategoryIndex(categories), r.typ),
	})
}

// SetType switches between the income and expense breakdown.
func (r *Report) SetType(ctx context.Context, typ model.TransactionType) {
	r.typ = typ
	r.Load(ctx)
}

// SetMonth selects a month window.
func (r *Report) SetMonth(ctx context.Context, month model.Month) {
	r.month = month
	r.yearMode = false
	r.Load(ctx)
}

// SetYear selects a whole-year window.
func (r *Report) SetYear(ctx context.Context, year int) {
	r.month = model.Month{Year: year, Month: 1}
	r.yearMode = true
	r.Load(ctx)
}
