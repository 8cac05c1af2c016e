package storage

import (
	"context"
	"strconv"

	"github.com/nmtri/soquy/internal/common"
	"github.com/nmtri/soquy/internal/model"
)

// Setting keys.
const (
	settingTheme    = "theme_color"
	settingLanguage = "language"
	settingCurrency = "currency"
	settingDarkMode = "dark_mode"
)

// GetSettings reads the persisted settings, filling in defaults for
// keys that have never been written.
func (s *Store) GetSettings(ctx context.Context) (model.Settings, error) {
	settings := model.DefaultSettings()
	if err := validateContext(ctx); err != nil {
		return settings, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return settings, common.WrapStorage("query settings", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return settings, common.WrapStorage("scan setting", err)
		}
		switch key {
		case settingTheme:
			settings.Theme = value
		case settingLanguage:
			settings.Language = value
		case settingCurrency:
			settings.Currency = value
		case settingDarkMode:
			settings.DarkMode = value == "true"
		}
	}
	if err := rows.Err(); err != nil {
		return settings, common.WrapStorage("iterate settings", err)
	}
	return settings, nil
}

// SaveSettings validates and persists the full settings set.
func (s *Store) SaveSettings(ctx context.Context, settings model.Settings) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return common.NewValidationError("settings", err.Error())
	}

	pairs := map[string]string{
		settingTheme:    settings.Theme,
		settingLanguage: settings.Language,
		settingCurrency: settings.Currency,
		settingDarkMode: strconv.FormatBool(settings.DarkMode),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return common.WrapStorage("save settings", err)
	}
	for key, value := range pairs {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO settings (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			key, value); err != nil {
			_ = tx.Rollback()
			return common.WrapStorage("save settings", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return common.WrapStorage("save settings", err)
	}
	return nil
}
