package view

import (
	"context"

	"github.com/nmtri/soquy/internal/common"
	"github.com/nmtri/soquy/internal/model"
	"github.com/nmtri/soquy/internal/report"
	"github.com/nmtri/soquy/internal/storage"
)

// SearchData is the search screen's derived view model.
type SearchData struct {
	Query  string
	Window report.Window
	Groups []report.SearchGroup
}

// Search drives the transaction search screen.
type Search struct {
	store *storage.Store
	screen[SearchData]
}

// NewSearch creates the search view model.
func NewSearch(store *storage.Store) *Search {
	return &Search{store: store}
}

// Query runs a search over the full transaction list: the window
// predicate ANDed with a case-insensitive match on category name or
// note.
func (s *Search) Query(ctx context.Context, query string, window report.Window) {
	s.setLoading()

	txns, err := s.store.GetAllTransactions(ctx)
	if err != nil {
		s.setFailed(common.UserMessage(err))
		return
	}
	categories, err := s.store.GetAllCategories(ctx)
	if err != nil {
		s.setFailed(common.UserMessage(err))
		return
	}

	s.setLoaded(SearchData{
		Query:  query,
		Window: window,
		Groups: report.Search(txns, model.NewCategoryIndex(categories), query, window, model.Today()),
	})
}
