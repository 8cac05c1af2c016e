package view

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmtri/soquy/internal/model"
	"github.com/nmtri/soquy/internal/storage"
)

func testStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func seedExpense(t *testing.T, store *storage.Store, amount int64, date model.Date) *model.Transaction {
	t.Helper()
	ctx := context.Background()

	cats, err := store.GetCategoriesByType(ctx, model.TypeExpense)
	require.NoError(t, err)

	txn := &model.Transaction{
		Amount:     amount,
		Type:       model.TypeExpense,
		CategoryID: cats[0].ID,
		Date:       date,
	}
	require.NoError(t, store.CreateTransaction(ctx, txn))
	return txn
}

func TestHomeLoad(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	jan := model.Month{Year: 2026, Month: time.January}

	seedExpense(t, store, 45000, model.NewDate(2026, time.January, 5))
	seedExpense(t, store, 5000, model.NewDate(2026, time.February, 1))

	home := NewHome(store, jan)
	assert.Equal(t, PhaseIdle, home.State().Phase)

	home.Load(ctx)

	state := home.State()
	require.Equal(t, PhaseLoaded, state.Phase)
	assert.Equal(t, int64(45000), state.Data.Summary.Expense)
	assert.Equal(t, int64(-45000), state.Data.Summary.Balance)
	assert.Len(t, state.Data.Series, 31)
	assert.Equal(t, int64(45000), state.Data.Series[4].Expense)
}

func TestHomeSetMonth(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	seedExpense(t, store, 5000, model.NewDate(2026, time.February, 1))

	home := NewHome(store, model.Month{Year: 2026, Month: time.January})
	home.Load(ctx)
	assert.Equal(t, int64(0), home.State().Data.Summary.Expense)

	feb := model.Month{Year: 2026, Month: time.February}
	home.SetMonth(ctx, feb)
	assert.Equal(t, feb, home.Month())
	assert.Equal(t, int64(5000), home.State().Data.Summary.Expense)
}

func TestHomeDeleteTransactionReloads(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	jan := model.Month{Year: 2026, Month: time.January}

	txn := seedExpense(t, store, 45000, model.NewDate(2026, time.January, 5))

	home := NewHome(store, jan)
	home.Load(ctx)
	home.DeleteTransaction(ctx, txn.ID)

	state := home.State()
	require.Equal(t, PhaseLoaded, state.Phase)
	assert.Equal(t, int64(0), state.Data.Summary.Expense)
}

func TestHomeDeleteMissingTransactionFails(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	home := NewHome(store, model.Month{Year: 2026, Month: time.January})
	home.Load(ctx)
	home.DeleteTransaction(ctx, 99999)

	state := home.State()
	assert.Equal(t, PhaseFailed, state.Phase)
	assert.NotEmpty(t, state.Err)
}

func TestReportLoadAndSetType(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	jan := model.Month{Year: 2026, Month: time.January}

	seedExpense(t, store, 35000, model.NewDate(2026, time.January, 5))
	seedExpense(t, store, 15000, model.NewDate(2026, time.January, 6))

	rep := NewReport(store, jan)
	rep.Load(ctx)

	state := rep.State()
	require.Equal(t, PhaseLoaded, state.Phase)
	assert.Equal(t, model.TypeExpense, state.Data.Type)
	assert.Equal(t, int64(50000), state.Data.Breakdown.Total)
	assert.Equal(t, jan.First(), state.Data.Start)
	assert.Equal(t, jan.Last(), state.Data.End)

	rep.SetType(ctx, model.TypeIncome)
	state = rep.State()
	require.Equal(t, PhaseLoaded, state.Phase)
	assert.Equal(t, int64(0), state.Data.Breakdown.Total)
}

func TestReportYearMode(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	seedExpense(t, store, 10000, model.NewDate(2026, time.January, 5))
	seedExpense(t, store, 20000, model.NewDate(2026, time.November, 5))

	rep := NewReport(store, model.Month{Year: 2026, Month: time.January})
	rep.SetYear(ctx, 2026)

	state := rep.State()
	require.Equal(t, PhaseLoaded, state.Phase)
	assert.Equal(t, int64(30000), state.Data.Breakdown.Total)
	assert.Equal(t, model.NewDate(2026, time.January, 1), state.Data.Start)
	assert.Equal(t, model.NewDate(2026, time.December, 31), state.Data.End)
}

func TestDetailLoad(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	txn := seedExpense(t, store, 35000, model.NewDate(2026, time.January, 5))

	detail := NewDetail(store)
	detail.Load(ctx, txn.CategoryID, model.NewDate(2026, time.January, 1), model.NewDate(2026, time.January, 31))

	state := detail.State()
	require.Equal(t, PhaseLoaded, state.Phase)
	assert.Equal(t, txn.CategoryID, state.Data.Category.ID)
	assert.Equal(t, int64(35000), state.Data.Detail.Total)
	assert.Equal(t, 1, state.Data.Detail.Count)
}

func TestDetailLoadOrphanedCategory(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	detail := NewDetail(store)
	detail.Load(ctx, 99999, model.NewDate(2026, time.January, 1), model.NewDate(2026, time.January, 31))

	state := detail.State()
	require.Equal(t, PhaseLoaded, state.Phase)
	assert.Equal(t, "Other", state.Data.Category.Name)
}

func TestSearchQuery(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	txn := seedExpense(t, store, 45000, model.NewDate(2026, time.January, 5))
	txn.Note = "phở bò"
	require.NoError(t, store.UpdateTransaction(ctx, txn))

	search := NewSearch(store)
	search.Query(ctx, "phở", "all")

	state := search.State()
	require.Equal(t, PhaseLoaded, state.Phase)
	require.Len(t, state.Data.Groups, 1)
	assert.Equal(t, txn.ID, state.Data.Groups[0].Items[0].Transaction.ID)
}

func TestEditorSaveNewAndUpdate(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	cats, err := store.GetCategoriesByType(ctx, model.TypeExpense)
	require.NoError(t, err)

	editor := NewEditor(store)
	editor.LoadNew(ctx, model.TypeExpense)

	state := editor.State()
	require.Equal(t, PhaseLoaded, state.Phase)
	assert.Equal(t, model.TypeExpense, state.Data.Transaction.Type)
	assert.NotEmpty(t, state.Data.Categories)

	txn := &model.Transaction{
		Amount:     45000,
		Type:       model.TypeExpense,
		CategoryID: cats[0].ID,
		Date:       model.NewDate(2026, time.January, 5),
	}
	require.NoError(t, editor.Save(ctx, txn))
	assert.NotZero(t, txn.ID)

	txn.Amount = 50000
	require.NoError(t, editor.Save(ctx, txn))

	got, err := store.GetTransactionByID(ctx, txn.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(50000), got.Amount)
}

func TestEditorSaveValidationFailure(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	editor := NewEditor(store)
	txn := &model.Transaction{
		Amount: -100,
		Type:   model.TypeExpense,
		Date:   model.NewDate(2026, time.January, 5),
	}
	err := editor.Save(ctx, txn)
	require.Error(t, err)

	state := editor.State()
	assert.Equal(t, PhaseFailed, state.Phase)
	assert.NotEmpty(t, state.Err)

	count, cerr := store.CountTransactions(ctx)
	require.NoError(t, cerr)
	assert.Zero(t, count)
}

func TestSubscribeDisplacesStaleState(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	home := NewHome(store, model.Month{Year: 2026, Month: time.January})
	ch := home.Subscribe()

	// Two loads without consuming: only the freshest state remains.
	home.Load(ctx)
	home.SetMonth(ctx, model.Month{Year: 2026, Month: time.February})

	var last State[HomeData]
	for {
		select {
		case s := <-ch:
			last = s
			continue
		default:
		}
		break
	}
	assert.Equal(t, PhaseLoaded, last.Phase)
	assert.Equal(t, model.Month{Year: 2026, Month: time.February}, last.Data.Month)
}
