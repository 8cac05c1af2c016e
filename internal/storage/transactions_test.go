package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/nmtri/soquy/internal/common"
	"github.com/nmtri/soquy/internal/model"
)

func TestCreateTransaction(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()
	catID := expenseCategoryID(t, store)

	txn := &model.Transaction{
		Amount:     45000,
		Type:       model.TypeExpense,
		CategoryID: catID,
		Note:       "phở bò",
		Date:       testDate(5),
	}
	if err := store.CreateTransaction(ctx, txn); err != nil {
		t.Fatalf("CreateTransaction failed: %v", err)
	}
	if txn.ID == 0 {
		t.Error("Expected id to be assigned")
	}
	if txn.CreatedAt.IsZero() {
		t.Error("Expected created_at to be assigned")
	}

	got, err := store.GetTransactionByID(ctx, txn.ID)
	if err != nil {
		t.Fatalf("GetTransactionByID failed: %v", err)
	}
	if got.Amount != 45000 || got.Type != model.TypeExpense || got.CategoryID != catID {
		t.Errorf("Round trip mismatch: %+v", got)
	}
	if got.Note != "phở bò" {
		t.Errorf("Note = %q, want %q", got.Note, "phở bò")
	}
	if got.Date != testDate(5) {
		t.Errorf("Date = %v, want %v", got.Date, testDate(5))
	}
}

func TestCreateTransactionValidation(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()
	expenseCat := expenseCategoryID(t, store)
	incomeCat := incomeCategoryID(t, store)

	tests := []struct {
		name string
		txn  *model.Transaction
	}{
		{
			name: "zero amount",
			txn:  &model.Transaction{Amount: 0, Type: model.TypeExpense, CategoryID: expenseCat, Date: testDate(1)},
		},
		{
			name: "negative amount",
			txn:  &model.Transaction{Amount: -500, Type: model.TypeExpense, CategoryID: expenseCat, Date: testDate(1)},
		},
		{
			name: "invalid type",
			txn:  &model.Transaction{Amount: 1000, Type: "TRANSFER", CategoryID: expenseCat, Date: testDate(1)},
		},
		{
			name: "missing date",
			txn:  &model.Transaction{Amount: 1000, Type: model.TypeExpense, CategoryID: expenseCat},
		},
		{
			name: "no category",
			txn:  &model.Transaction{Amount: 1000, Type: model.TypeExpense, Date: testDate(1)},
		},
		{
			name: "unknown category",
			txn:  &model.Transaction{Amount: 1000, Type: model.TypeExpense, CategoryID: 99999, Date: testDate(1)},
		},
		{
			name: "category type mismatch",
			txn:  &model.Transaction{Amount: 1000, Type: model.TypeExpense, CategoryID: incomeCat, Date: testDate(1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.CreateTransaction(ctx, tt.txn)
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			if !common.IsValidation(err) {
				t.Errorf("Expected validation error, got %v", err)
			}
		})
	}

	// Nothing must have been written.
	count, err := store.CountTransactions(ctx)
	if err != nil {
		t.Fatalf("CountTransactions failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 transactions after rejected writes, got %d", count)
	}
}

func TestUpdateTransaction(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()
	catID := expenseCategoryID(t, store)

	txn := &model.Transaction{Amount: 10000, Type: model.TypeExpense, CategoryID: catID, Date: testDate(1)}
	if err := store.CreateTransaction(ctx, txn); err != nil {
		t.Fatalf("CreateTransaction failed: %v", err)
	}
	created := txn.CreatedAt

	txn.Amount = 25000
	txn.Note = "sửa lại"
	txn.Date = testDate(2)
	if err := store.UpdateTransaction(ctx, txn); err != nil {
		t.Fatalf("UpdateTransaction failed: %v", err)
	}

	got, err := store.GetTransactionByID(ctx, txn.ID)
	if err != nil {
		t.Fatalf("GetTransactionByID failed: %v", err)
	}
	if got.Amount != 25000 || got.Note != "sửa lại" || got.Date != testDate(2) {
		t.Errorf("Update not persisted: %+v", got)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt changed on update: %v != %v", got.CreatedAt, created)
	}
}

func TestUpdateMissingTransaction(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()
	catID := expenseCategoryID(t, store)

	txn := &model.Transaction{ID: 42, Amount: 1000, Type: model.TypeExpense, CategoryID: catID, Date: testDate(1)}
	err := store.UpdateTransaction(ctx, txn)
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestDeleteTransaction(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()
	catID := expenseCategoryID(t, store)

	txn := &model.Transaction{Amount: 1000, Type: model.TypeExpense, CategoryID: catID, Date: testDate(1)}
	if err := store.CreateTransaction(ctx, txn); err != nil {
		t.Fatalf("CreateTransaction failed: %v", err)
	}

	if err := store.DeleteTransaction(ctx, txn.ID); err != nil {
		t.Fatalf("DeleteTransaction failed: %v", err)
	}
	if _, err := store.GetTransactionByID(ctx, txn.ID); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
	if err := store.DeleteTransaction(ctx, txn.ID); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Expected ErrNotFound on second delete, got %v", err)
	}
}

func TestGetTransactionsInRange(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()
	catID := expenseCategoryID(t, store)

	for _, day := range []int{1, 10, 20, 31} {
		txn := &model.Transaction{Amount: 1000, Type: model.TypeExpense, CategoryID: catID, Date: testDate(day)}
		if err := store.CreateTransaction(ctx, txn); err != nil {
			t.Fatalf("CreateTransaction failed: %v", err)
		}
	}

	// Range bounds are inclusive on both ends.
	txns, err := store.GetTransactionsInRange(ctx, testDate(10), testDate(20))
	if err != nil {
		t.Fatalf("GetTransactionsInRange failed: %v", err)
	}
	if len(txns) != 2 {
		t.Fatalf("Expected 2 transactions in range, got %d", len(txns))
	}
	// Newest first.
	if txns[0].Date != testDate(20) || txns[1].Date != testDate(10) {
		t.Errorf("Wrong order: %v, %v", txns[0].Date, txns[1].Date)
	}

	// Inverted range is rejected.
	if _, err := store.GetTransactionsInRange(ctx, testDate(20), testDate(10)); err == nil {
		t.Error("Expected error for inverted range")
	}
}

func TestSumByTypeInRange(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()
	expenseCat := expenseCategoryID(t, store)
	incomeCat := incomeCategoryID(t, store)

	entries := []struct {
		typ    model.TransactionType
		cat    int64
		amount int64
		day    int
	}{
		{model.TypeExpense, expenseCat, 30000, 5},
		{model.TypeExpense, expenseCat, 20000, 6},
		{model.TypeIncome, incomeCat, 15000000, 1},
	}
	for _, e := range entries {
		txn := &model.Transaction{Amount: e.amount, Type: e.typ, CategoryID: e.cat, Date: testDate(e.day)}
		if err := store.CreateTransaction(ctx, txn); err != nil {
			t.Fatalf("CreateTransaction failed: %v", err)
		}
	}

	expense, err := store.SumByTypeInRange(ctx, model.TypeExpense, testDate(1), testDate(31))
	if err != nil {
		t.Fatalf("SumByTypeInRange failed: %v", err)
	}
	if expense != 50000 {
		t.Errorf("Expense sum = %d, want 50000", expense)
	}

	income, err := store.SumByTypeInRange(ctx, model.TypeIncome, testDate(1), testDate(31))
	if err != nil {
		t.Fatalf("SumByTypeInRange failed: %v", err)
	}
	if income != 15000000 {
		t.Errorf("Income sum = %d, want 15000000", income)
	}

	empty, err := store.SumByTypeInRange(ctx, model.TypeExpense, testDate(25), testDate(31))
	if err != nil {
		t.Fatalf("SumByTypeInRange failed: %v", err)
	}
	if empty != 0 {
		t.Errorf("Empty range sum = %d, want 0", empty)
	}
}

func TestDailyTotalsInRange(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()
	expenseCat := expenseCategoryID(t, store)
	incomeCat := incomeCategoryID(t, store)

	entries := []struct {
		typ    model.TransactionType
		cat    int64
		amount int64
		day    int
	}{
		{model.TypeExpense, expenseCat, 10000, 5},
		{model.TypeExpense, expenseCat, 20000, 5},
		{model.TypeIncome, incomeCat, 50000, 5},
		{model.TypeExpense, expenseCat, 7000, 9},
	}
	for _, e := range entries {
		txn := &model.Transaction{Amount: e.amount, Type: e.typ, CategoryID: e.cat, Date: testDate(e.day)}
		if err := store.CreateTransaction(ctx, txn); err != nil {
			t.Fatalf("CreateTransaction failed: %v", err)
		}
	}

	totals, err := store.DailyTotalsInRange(ctx, testDate(1), testDate(31))
	if err != nil {
		t.Fatalf("DailyTotalsInRange failed: %v", err)
	}
	if len(totals) != 2 {
		t.Fatalf("Expected 2 daily totals, got %d", len(totals))
	}
	// Ascending date order.
	if totals[0].Date != testDate(5) || totals[1].Date != testDate(9) {
		t.Errorf("Wrong order: %v, %v", totals[0].Date, totals[1].Date)
	}
	if totals[0].Income != 50000 || totals[0].Expense != 30000 {
		t.Errorf("Day 5 totals = %+v, want income 50000 expense 30000", totals[0])
	}
	if totals[1].Income != 0 || totals[1].Expense != 7000 {
		t.Errorf("Day 9 totals = %+v, want income 0 expense 7000", totals[1])
	}
}

func TestNilContextRejected(t *testing.T) {
	store := createTestStore(t)

	//nolint:staticcheck // deliberately passing a nil context
	if _, err := store.GetAllTransactions(nil); err == nil {
		t.Error("Expected error for nil context")
	}
}
