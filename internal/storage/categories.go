package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nmtri/soquy/internal/common"
	"github.com/nmtri/soquy/internal/model"
)

// validateCategoryWrite enforces category invariants at write time.
func validateCategoryWrite(cat *model.Category) error {
	if cat == nil {
		return fmt.Errorf("%w: category", ErrNilParameter)
	}
	if cat.Name == "" {
		return common.NewValidationError("name", "category name cannot be blank")
	}
	if !cat.Type.Valid() {
		return common.NewValidationError("type", fmt.Sprintf("invalid category type %q", cat.Type))
	}
	if err := model.ValidateColor(cat.Color); err != nil {
		return common.NewValidationError("color", err.Error())
	}
	return nil
}

// CreateCategory inserts a new category and assigns its id.
func (s *Store) CreateCategory(ctx context.Context, cat *model.Category) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateCategoryWrite(cat); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO categories (name, type, icon, color, is_default)
		VALUES (?, ?, ?, ?, ?)`,
		cat.Name, string(cat.Type), cat.Icon, cat.Color, cat.IsDefault)
	if err != nil {
		return common.WrapStorage("insert category", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return common.WrapStorage("insert category", err)
	}
	cat.ID = id

	slog.Info("created category", "id", id, "name", cat.Name, "type", cat.Type)
	s.notifyCategories(ctx)
	return nil
}

// UpdateCategory rewrites a category's display fields. Default
// categories may be edited; their identity never changes.
func (s *Store) UpdateCategory(ctx context.Context, cat *model.Category) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateCategoryWrite(cat); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE categories
		SET name = ?, type = ?, icon = ?, color = ?
		WHERE id = ?`,
		cat.Name, string(cat.Type), cat.Icon, cat.Color, cat.ID)
	if err != nil {
		return common.WrapStorage("update category", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return common.WrapStorage("update category", err)
	}
	if affected == 0 {
		return fmt.Errorf("category %d: %w", cat.ID, common.ErrNotFound)
	}

	s.notifyCategories(ctx)
	return nil
}

// DeleteCategory removes a category by id. Deleting a default category
// fails with ErrProtectedCategory and leaves the category set
// unchanged. Transactions referencing the category are not touched;
// reads resolve them to the sentinel Other category.
func (s *Store) DeleteCategory(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	cat, err := s.GetCategoryByID(ctx, id)
	if err != nil {
		return err
	}
	if cat.IsDefault {
		return fmt.Errorf("category %q: %w", cat.Name, common.ErrProtectedCategory)
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id); err != nil {
		return common.WrapStorage("delete category", err)
	}

	slog.Info("deleted category", "id", id, "name", cat.Name)
	s.notifyCategories(ctx)
	return nil
}

// GetCategoryByID returns a single category, or ErrNotFound.
func (s *Store) GetCategoryByID(ctx context.Context, id int64) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, type, icon, color, is_default
		FROM categories
		WHERE id = ?`, id)

	cat, err := scanCategory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("category %d: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, common.WrapStorage("query category", err)
	}
	return cat, nil
}

// GetAllCategories returns every category ordered by type then name.
func (s *Store) GetAllCategories(ctx context.Context) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, type, icon, color, is_default
		FROM categories
		ORDER BY type, name`)
	if err != nil {
		return nil, common.WrapStorage("query categories", err)
	}
	defer func() { _ = rows.Close() }()

	return collectCategories(rows)
}

// GetCategoriesByType returns the categories of one type ordered by name.
func (s *Store) GetCategoriesByType(ctx context.Context, typ model.TransactionType) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if !typ.Valid() {
		return nil, common.NewValidationError("type", fmt.Sprintf("invalid category type %q", typ))
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, type, icon, color, is_default
		FROM categories
		WHERE type = ?
		ORDER BY name`, string(typ))
	if err != nil {
		return nil, common.WrapStorage("query categories", err)
	}
	defer func() { _ = rows.Close() }()

	return collectCategories(rows)
}

func scanCategory(row rowScanner) (*model.Category, error) {
	var (
		cat     model.Category
		typeStr string
	)
	if err := row.Scan(&cat.ID, &cat.Name, &typeStr, &cat.Icon, &cat.Color, &cat.IsDefault); err != nil {
		return nil, err
	}

	typ, err := model.ParseTransactionType(typeStr)
	if err != nil {
		return nil, err
	}
	cat.Type = typ
	return &cat, nil
}

func collectCategories(rows *sql.Rows) ([]model.Category, error) {
	var cats []model.Category
	for rows.Next() {
		cat, err := scanCategory(rows)
		if err != nil {
			return nil, common.WrapStorage("scan category", err)
		}
		cats = append(cats, *cat)
	}
	if err := rows.Err(); err != nil {
		return nil, common.WrapStorage("iterate categories", err)
	}
	return cats, nil
}
