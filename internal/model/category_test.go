package model

import "testing"

func TestDisplayColor(t *testing.T) {
	tests := []struct {
		name  string
		color string
		want  string
	}{
		{"valid hex", "#FF5722", "#FF5722"},
		{"lowercase hex", "#ff5722", "#ff5722"},
		{"garbage", "not-a-color", FallbackColor},
		{"empty", "", FallbackColor},
		{"missing hash", "FF5722", FallbackColor},
		{"too short", "#FFF", FallbackColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := Category{Color: tt.color}
			if got := cat.DisplayColor(); got != tt.want {
				t.Errorf("DisplayColor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCategoryIndexResolve(t *testing.T) {
	idx := NewCategoryIndex([]Category{
		{ID: 1, Name: "Ăn uống", Type: TypeExpense},
		{ID: 2, Name: "Lương", Type: TypeIncome},
	})

	if got := idx.Resolve(1); got.Name != "Ăn uống" {
		t.Errorf("Resolve(1) = %q, want %q", got.Name, "Ăn uống")
	}

	// Unknown ids resolve to the sentinel, never a zero Category.
	other := idx.Resolve(999)
	if other.Name != "Other" {
		t.Errorf("Resolve(999).Name = %q, want Other", other.Name)
	}
	if other.Color != FallbackColor {
		t.Errorf("Resolve(999).Color = %q, want fallback", other.Color)
	}
}

func TestValidateColor(t *testing.T) {
	if err := ValidateColor("#4CAF50"); err != nil {
		t.Errorf("ValidateColor(#4CAF50) = %v, want nil", err)
	}
	if err := ValidateColor("green"); err == nil {
		t.Error("ValidateColor(green) = nil, want error")
	}
}

func TestDefaultCategories(t *testing.T) {
	cats := DefaultCategories()

	var income, expense int
	for _, cat := range cats {
		if !cat.IsDefault {
			t.Errorf("category %q is not marked default", cat.Name)
		}
		if err := ValidateColor(cat.Color); err != nil {
			t.Errorf("category %q has invalid color: %v", cat.Name, err)
		}
		switch cat.Type {
		case TypeIncome:
			income++
		case TypeExpense:
			expense++
		default:
			t.Errorf("category %q has invalid type %q", cat.Name, cat.Type)
		}
	}

	if expense != 9 {
		t.Errorf("expected 9 expense categories, got %d", expense)
	}
	if income != 5 {
		t.Errorf("expected 5 income categories, got %d", income)
	}
}

func TestParseTransactionType(t *testing.T) {
	if typ, err := ParseTransactionType("INCOME"); err != nil || typ != TypeIncome {
		t.Errorf("ParseTransactionType(INCOME) = %v, %v", typ, err)
	}
	if typ, err := ParseTransactionType("EXPENSE"); err != nil || typ != TypeExpense {
		t.Errorf("ParseTransactionType(EXPENSE) = %v, %v", typ, err)
	}
	if _, err := ParseTransactionType("income"); err == nil {
		t.Error("lowercase input must be rejected")
	}
	if _, err := ParseTransactionType(""); err == nil {
		t.Error("empty input must be rejected")
	}
}

func TestSettingsValidate(t *testing.T) {
	if err := DefaultSettings().Validate(); err != nil {
		t.Errorf("default settings must validate, got %v", err)
	}

	s := DefaultSettings()
	s.Theme = "#FFFFFF"
	if err := s.Validate(); err == nil {
		t.Error("arbitrary theme must be rejected")
	}

	s = DefaultSettings()
	s.Language = "fr"
	if err := s.Validate(); err == nil {
		t.Error("unsupported language must be rejected")
	}

	s = DefaultSettings()
	s.Currency = "EUR"
	if err := s.Validate(); err == nil {
		t.Error("unsupported currency must be rejected")
	}
}
