package model

import (
	"fmt"
	"regexp"
)

// FallbackColor is used when a category's stored color cannot be parsed
// and for the sentinel Other category.
const FallbackColor = "#607D8B"

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Category is a user-facing grouping label for transactions. A category
// belongs to exactly one transaction type. Default categories are seeded
// at first run and can be edited but never deleted.
type Category struct {
	Name      string
	Icon      string
	Color     string
	Type      TransactionType
	ID        int64
	IsDefault bool
}

// DisplayColor returns the stored color, falling back to FallbackColor
// when it is not a parseable hex color.
func (c Category) DisplayColor() string {
	if hexColorRe.MatchString(c.Color) {
		return c.Color
	}
	return FallbackColor
}

// OtherCategory is the sentinel returned for transactions whose category
// no longer exists. It never appears in the store.
func OtherCategory() Category {
	return Category{
		ID:    0,
		Name:  "Other",
		Icon:  "📦",
		Color: FallbackColor,
	}
}

// CategoryIndex resolves category ids to categories, totalizing lookups
// so aggregation code never deals with missing categories.
type CategoryIndex map[int64]Category

// NewCategoryIndex builds an index from a category list.
func NewCategoryIndex(categories []Category) CategoryIndex {
	idx := make(CategoryIndex, len(categories))
	for _, c := range categories {
		idx[c.ID] = c
	}
	return idx
}

// Resolve returns the category for id, or the sentinel Other category
// when the id is unknown. The result is always a valid category.
func (idx CategoryIndex) Resolve(id int64) Category {
	if c, ok := idx[id]; ok {
		return c
	}
	return OtherCategory()
}

// ValidateColor checks that a color is a parseable #RRGGBB hex string.
func ValidateColor(color string) error {
	if !hexColorRe.MatchString(color) {
		return fmt.Errorf("invalid color %q: want #RRGGBB", color)
	}
	return nil
}
