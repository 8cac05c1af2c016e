package model

import "fmt"

// Fixed setting values. Theme offers exactly two colors; amounts are
// always stored in VND and only converted for display.
const (
	ThemePurple = "#9C27B0"
	ThemeBlue   = "#2196F3"

	LanguageVI = "vi"
	LanguageEN = "en"

	CurrencyVND = "VND"
	CurrencyUSD = "USD"
)

// Settings is the small persisted key/value set controlling display
// behavior. All fields default to fixed values on first run.
type Settings struct {
	Theme    string
	Language string
	Currency string
	DarkMode bool
}

// DefaultSettings returns the first-run settings.
func DefaultSettings() Settings {
	return Settings{
		Theme:    ThemePurple,
		Language: LanguageVI,
		Currency: CurrencyVND,
		DarkMode: false,
	}
}

// Validate rejects values outside the fixed sets.
func (s Settings) Validate() error {
	if s.Theme != ThemePurple && s.Theme != ThemeBlue {
		return fmt.Errorf("invalid theme %q", s.Theme)
	}
	if s.Language != LanguageVI && s.Language != LanguageEN {
		return fmt.Errorf("invalid language %q", s.Language)
	}
	if s.Currency != CurrencyVND && s.Currency != CurrencyUSD {
		return fmt.Errorf("invalid currency %q", s.Currency)
	}
	return nil
}
