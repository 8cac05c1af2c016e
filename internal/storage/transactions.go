package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nmtri/soquy/internal/common"
	"github.com/nmtri/soquy/internal/model"
)

// DailyTotal is the income and expense sum for one distinct date.
type DailyTotal struct {
	Date    model.Date
	Income  int64
	Expense int64
}

// validateTransactionWrite enforces the write-time invariants: positive
// amount, a known type, and a category that exists and shares the
// transaction's type.
func (s *Store) validateTransactionWrite(ctx context.Context, txn *model.Transaction) error {
	if txn == nil {
		return fmt.Errorf("%w: transaction", ErrNilParameter)
	}
	if txn.Amount <= 0 {
		return common.NewValidationError("amount", "must be greater than zero")
	}
	if !txn.Type.Valid() {
		return common.NewValidationError("type", fmt.Sprintf("invalid transaction type %q", txn.Type))
	}
	if txn.Date.IsZero() {
		return common.NewValidationError("date", "missing date")
	}
	if txn.CategoryID <= 0 {
		return common.NewValidationError("category", "no category selected")
	}

	cat, err := s.GetCategoryByID(ctx, txn.CategoryID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.NewValidationError("category", fmt.Sprintf("category %d does not exist", txn.CategoryID))
		}
		return err
	}
	if cat.Type != txn.Type {
		return common.NewValidationError("category",
			fmt.Sprintf("category %q is %s but transaction is %s", cat.Name, cat.Type, txn.Type))
	}
	return nil
}

// CreateTransaction inserts a new transaction and assigns its id and
// creation timestamp.
func (s *Store) CreateTransaction(ctx context.Context, txn *model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := s.validateTransactionWrite(ctx, txn); err != nil {
		return err
	}

	now := time.Now().UTC()
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO transactions (amount, type, category_id, note, date, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		txn.Amount, string(txn.Type), txn.CategoryID, txn.Note, txn.Date.String(), now)
	if err != nil {
		return common.WrapStorage("insert transaction", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return common.WrapStorage("insert transaction", err)
	}
	txn.ID = id
	txn.CreatedAt = now

	slog.Debug("created transaction", "id", id, "amount", txn.Amount, "type", txn.Type)
	s.notifyTransactions(ctx)
	return nil
}

// UpdateTransaction rewrites an existing transaction. The creation
// timestamp is preserved.
func (s *Store) UpdateTransaction(ctx context.Context, txn *model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := s.validateTransactionWrite(ctx, txn); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE transactions
		SET amount = ?, type = ?, category_id = ?, note = ?, date = ?
		WHERE id = ?`,
		txn.Amount, string(txn.Type), txn.CategoryID, txn.Note, txn.Date.String(), txn.ID)
	if err != nil {
		return common.WrapStorage("update transaction", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return common.WrapStorage("update transaction", err)
	}
	if affected == 0 {
		return fmt.Errorf("transaction %d: %w", txn.ID, common.ErrNotFound)
	}

	s.notifyTransactions(ctx)
	return nil
}

// DeleteTransaction removes a transaction by id. Deletion has no
// cascading side effects.
func (s *Store) DeleteTransaction(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return common.WrapStorage("delete transaction", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return common.WrapStorage("delete transaction", err)
	}
	if affected == 0 {
		return fmt.Errorf("transaction %d: %w", id, common.ErrNotFound)
	}

	slog.Debug("deleted transaction", "id", id)
	s.notifyTransactions(ctx)
	return nil
}

// GetTransactionByID returns a single transaction, or ErrNotFound.
func (s *Store) GetTransactionByID(ctx context.Context, id int64) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, amount, type, category_id, note, date, created_at
		FROM transactions
		WHERE id = ?`, id)

	txn, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("transaction %d: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, common.WrapStorage("query transaction", err)
	}
	return txn, nil
}

// GetAllTransactions returns every transaction, newest first. Within a
// date, later-created entries come first.
func (s *Store) GetAllTransactions(ctx context.Context) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, amount, type, category_id, note, date, created_at
		FROM transactions
		ORDER BY date DESC, created_at DESC`)
	if err != nil {
		return nil, common.WrapStorage("query transactions", err)
	}
	defer func() { _ = rows.Close() }()

	return collectTransactions(rows)
}

// GetTransactionsInRange returns transactions with start <= date <= end,
// newest first.
func (s *Store) GetTransactionsInRange(ctx context.Context, start, end model.Date) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateRange(start, end); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, amount, type, category_id, note, date, created_at
		FROM transactions
		WHERE date >= ? AND date <= ?
		ORDER BY date DESC, created_at DESC`,
		start.String(), end.String())
	if err != nil {
		return nil, common.WrapStorage("query transactions", err)
	}
	defer func() { _ = rows.Close() }()

	return collectTransactions(rows)
}

// SumByTypeInRange returns the total amount of the given type with
// start <= date <= end. Zero when the range is empty.
func (s *Store) SumByTypeInRange(ctx context.Context, typ model.TransactionType, start, end model.Date) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateRange(start, end); err != nil {
		return 0, err
	}

	var total int64
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE type = ? AND date >= ? AND date <= ?`,
		string(typ), start.String(), end.String()).Scan(&total)
	if err != nil {
		return 0, common.WrapStorage("sum transactions", err)
	}
	return total, nil
}

// DailyTotalsInRange returns, for every distinct date in the inclusive
// range that has at least one transaction, the income and expense sums,
// ordered by ascending date. Days without transactions are absent;
// chart padding is the report engine's job.
func (s *Store) DailyTotalsInRange(ctx context.Context, start, end model.Date) ([]DailyTotal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateRange(start, end); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT date,
		       SUM(CASE WHEN type = 'INCOME' THEN amount ELSE 0 END) AS total_income,
		       SUM(CASE WHEN type = 'EXPENSE' THEN amount ELSE 0 END) AS total_expense
		FROM transactions
		WHERE date >= ? AND date <= ?
		GROUP BY date
		ORDER BY date ASC`,
		start.String(), end.String())
	if err != nil {
		return nil, common.WrapStorage("query daily totals", err)
	}
	defer func() { _ = rows.Close() }()

	var totals []DailyTotal
	for rows.Next() {
		var (
			dateStr string
			dt      DailyTotal
		)
		if err := rows.Scan(&dateStr, &dt.Income, &dt.Expense); err != nil {
			return nil, common.WrapStorage("scan daily total", err)
		}
		dt.Date, err = model.ParseDate(dateStr)
		if err != nil {
			return nil, common.WrapStorage("parse daily total date", err)
		}
		totals = append(totals, dt)
	}
	if err := rows.Err(); err != nil {
		return nil, common.WrapStorage("iterate daily totals", err)
	}
	return totals, nil
}

// CountTransactions returns the number of stored transactions.
func (s *Store) CountTransactions(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&count)
	if err != nil {
		return 0, common.WrapStorage("count transactions", err)
	}
	return count, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (*model.Transaction, error) {
	var (
		txn     model.Transaction
		typeStr string
		dateStr string
	)
	if err := row.Scan(&txn.ID, &txn.Amount, &typeStr, &txn.CategoryID, &txn.Note, &dateStr, &txn.CreatedAt); err != nil {
		return nil, err
	}

	typ, err := model.ParseTransactionType(typeStr)
	if err != nil {
		return nil, err
	}
	txn.Type = typ

	txn.Date, err = model.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

func collectTransactions(rows *sql.Rows) ([]model.Transaction, error) {
	var txns []model.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, common.WrapStorage("scan transaction", err)
		}
		txns = append(txns, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, common.WrapStorage("iterate transactions", err)
	}
	return txns, nil
}
