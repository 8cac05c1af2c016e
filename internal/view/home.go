package view

import (
	"context"

	"github.com/nmtri/soquy/internal/common"
	"github.com/nmtri/soquy/internal/model"
	"github.com/nmtri/soquy/internal/report"
	"github.com/nmtri/soquy/internal/storage"
)

// HomeData is the home screen's derived view model: the month summary
// and its daily chart series.
type HomeData struct {
	Series  []report.DayPoint
	Month   model.Month
	Summary report.Summary
}

// Home drives the month-overview screen.
type Home struct {
	store *storage.Store
	month model.Month
	screen[HomeData]
}

// NewHome creates the home view model positioned on the given month.
func NewHome(store *storage.Store, month model.Month) *Home {
	return &Home{store: store, month: month}
}

// Load fetches the selected month and rebuilds the view model.
func (h *Home) Load(ctx context.Context) {
	h.setLoading()

	month := h.month
	txns, err := h.store.GetTransactionsInRange(ctx, month.First(), month.Last())
	if err != nil {
		h.setFailed(common.UserMessage(err))
		return
	}

	h.setLoaded(HomeData{
		Month:   month,
		Summary: report.MonthlySummary(txns, month),
		Series:  report.DailySeries(txns, month),
	})
}

// SetMonth changes the selected month and reloads.
func (h *Home) SetMonth(ctx context.Context, month model.Month) {
	h.month = month
	h.Load(ctx)
}

// Month returns the currently selected month.
func (h *Home) Month() model.Month {
	return h.month
}

// DeleteTransaction removes a transaction and reloads the month.
func (h *Home) DeleteTransaction(ctx context.Context, id int64) {
	if err := h.store.DeleteTransaction(ctx, id); err != nil {
		h.setFailed(common.UserMessage(err))
		return
	}
	h.Load(ctx)
}
