package view

import (
	"context"

	"github.com/nmtri/soquy/internal/common"
	"github.com/nmtri/soquy/internal/model"
	"github.com/nmtri/soquy/internal/report"
	"github.com/nmtri/soquy/internal/storage"
)

// DetailData is the category drill-down view model.
type DetailData struct {
	Detail   report.CategoryDetail
	Category model.Category
	Start    model.Date
	End      model.Date
}

// Detail drives the per-category drill-down screen.
type Detail struct {
	store *storage.Store
	screen[DetailData]
}

// NewDetail creates the drill-down view model.
func NewDetail(store *storage.Store) *Detail {
	return &Detail{store: store}
}

// Load fetches the window and computes the category's detail. The
// category id is resolved totally: an id that no longer exists shows
// up under the sentinel Other category.
func (d *Detail) Load(ctx context.Context, categoryID int64, start, end model.Date) {
	d.setLoading()

	txns, err := d.store.GetTransactionsInRange(ctx, start, end)
	if err != nil {
		d.setFailed(common.UserMessage(err))
		return
	}
	categories, err := d.store.GetAllCategories(ctx)
	if err != nil {
		d.setFailed(common.UserMessage(err))
		return
	}

	index := model.NewCategoryIndex(categories)
	d.setLoaded(DetailData{
		Category: index.Resolve(categoryID),
		Start:    start,
		End:      end,
		Detail:   report.DetailForCategory(txns, categoryID),
	})
}
