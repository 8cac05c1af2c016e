package view

import (
	"context"

	"github.com/nmtri/soquy/internal/common"
	"github.com/nmtri/soquy/internal/model"
	"github.com/nmtri/soquy/internal/storage"
)

// EditorData is the add/edit screen's view model: the transaction
// being edited (zero-valued for a new entry) and the selectable
// categories for its type.
type EditorData struct {
	Categories  []model.Category
	Transaction model.Transaction
}

// Editor drives the add/edit transaction screen.
type Editor struct {
	store *storage.Store
	screen[EditorData]
}

// NewEditor creates the editor view model.
func NewEditor(store *storage.Store) *Editor {
	return &Editor{store: store}
}

// LoadNew prepares the editor for a fresh entry of the given type.
func (e *Editor) LoadNew(ctx context.Context, typ model.TransactionType) {
	e.setLoading()

	categories, err := e.store.GetCategoriesByType(ctx, typ)
	if err != nil {
		e.setFailed(common.UserMessage(err))
		return
	}

	e.setLoaded(EditorData{
		Transaction: model.Transaction{Type: typ, Date: model.Today()},
		Categories:  categories,
	})
}

// LoadTransaction loads an existing transaction for editing. A missing
// id becomes a Failed state, not a panic.
func (e *Editor) LoadTransaction(ctx context.Context, id int64) {
	e.setLoading()

	txn, err := e.store.GetTransactionByID(ctx, id)
	if err != nil {
		e.setFailed(common.UserMessage(err))
		return
	}
	categories, err := e.store.GetCategoriesByType(ctx, txn.Type)
	if err != nil {
		e.setFailed(common.UserMessage(err))
		return
	}

	e.setLoaded(EditorData{Transaction: *txn, Categories: categories})
}

// Save validates and persists the transaction: insert when its id is
// zero, update otherwise. Validation failures surface inline and no
// partial write happens.
func (e *Editor) Save(ctx context.Context, txn *model.Transaction) error {
	e.setLoading()

	var err error
	if txn.ID == 0 {
		err = e.store.CreateTransaction(ctx, txn)
	} else {
		err = e.store.UpdateTransaction(ctx, txn)
	}
	if err != nil {
		e.setFailed(common.UserMessage(err))
		return err
	}

	categories, catErr := e.store.GetCategoriesByType(ctx, txn.Type)
	if catErr != nil {
		e.setFailed(common.UserMessage(catErr))
		return nil
	}
	e.setLoaded(EditorData{Transaction: *txn, Categories: categories})
	return nil
}

// Delete removes the transaction being edited.
func (e *Editor) Delete(ctx context.Context, id int64) error {
	if err := e.store.DeleteTransaction(ctx, id); err != nil {
		e.setFailed(common.UserMessage(err))
		return err
	}
	return nil
}
