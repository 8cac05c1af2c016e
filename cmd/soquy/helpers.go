package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/nmtri/soquy/internal/model"
	"github.com/nmtri/soquy/internal/storage"
)

// openStore constructs the single store instance for this process and
// brings the schema up to date. The caller owns Close.
func openStore(ctx context.Context) (*storage.Store, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".local", "share", "soquy", "soquy.db")
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		return nil, err
	}
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}
	return store, nil
}

// parseMonthFlag turns a --month value (YYYY-MM, empty means current)
// into a Month.
func parseMonthFlag(s string) (model.Month, error) {
	if s == "" {
		return model.MonthOf(model.Today()), nil
	}
	d, err := model.ParseDate(s + "-01")
	if err != nil {
		return model.Month{}, fmt.Errorf("invalid month %q: want YYYY-MM", s)
	}
	return model.MonthOf(d), nil
}

// parseDateFlag turns a --date value (YYYY-MM-DD, empty means today)
// into a Date.
func parseDateFlag(s string) (model.Date, error) {
	if s == "" {
		return model.Today(), nil
	}
	return model.ParseDate(s)
}

// parseTypeFlag maps income/expense flags to the transaction type.
func parseTypeFlag(s string) (model.TransactionType, error) {
	switch strings.ToLower(s) {
	case "income", "in", "thu":
		return model.TypeIncome, nil
	case "expense", "out", "chi":
		return model.TypeExpense, nil
	default:
		return "", fmt.Errorf("invalid type %q: want income or expense", s)
	}
}

// resolveCategory accepts either a numeric category id or a category
// name (case-insensitive) and returns the matching category.
func resolveCategory(ctx context.Context, store *storage.Store, ref string) (*model.Category, error) {
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		return store.GetCategoryByID(ctx, id)
	}

	categories, err := store.GetAllCategories(ctx)
	if err != nil {
		return nil, err
	}
	for _, cat := range categories {
		if strings.EqualFold(cat.Name, ref) {
			c := cat
			return &c, nil
		}
	}
	return nil, fmt.Errorf("no category named %q", ref)
}

// displayCurrency reads the configured display currency.
func displayCurrency(ctx context.Context, store *storage.Store) string {
	settings, err := store.GetSettings(ctx)
	if err != nil {
		return model.CurrencyVND
	}
	return settings.Currency
}
