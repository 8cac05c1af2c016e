package report

import (
	"testing"
	"time"

	"github.com/nmtri/soquy/internal/model"
)

func searchFixture() []model.Transaction {
	mk := func(id int64, date model.Date, categoryID int64, note string) model.Transaction {
		t := txn(id, model.TypeExpense, 10000, date, categoryID)
		t.Note = note
		return t
	}
	return []model.Transaction{
		mk(1, model.NewDate(2026, time.August, 30), 1, "phở bò"),
		mk(2, model.NewDate(2026, time.August, 15), 2, "áo mới"),
		mk(3, model.NewDate(2026, time.March, 1), 1, "cơm trưa"),
		mk(4, model.NewDate(2025, time.December, 25), 2, "quà giáng sinh"),
	}
}

func TestSearchByNote(t *testing.T) {
	now := model.NewDate(2026, time.August, 31)
	groups := Search(searchFixture(), testIndex(), "phở", WindowAll, now)

	if len(groups) != 1 {
		t.Fatalf("len(groups) = %d, want 1", len(groups))
	}
	if groups[0].Items[0].Transaction.ID != 1 {
		t.Errorf("matched ID = %d, want 1", groups[0].Items[0].Transaction.ID)
	}
}

func TestSearchByCategoryName(t *testing.T) {
	now := model.NewDate(2026, time.August, 31)

	// Case-insensitive match on the resolved category name.
	groups := Search(searchFixture(), testIndex(), "mua", WindowAll, now)

	var total int
	for _, g := range groups {
		total += len(g.Items)
	}
	if total != 2 {
		t.Fatalf("matched %d transactions, want 2", total)
	}
	for _, g := range groups {
		for _, item := range g.Items {
			if item.Category.Name != "Mua sắm" {
				t.Errorf("matched category %q, want Mua sắm", item.Category.Name)
			}
		}
	}
}

func TestSearchBlankQueryMatchesAll(t *testing.T) {
	now := model.NewDate(2026, time.August, 31)
	groups := Search(searchFixture(), testIndex(), "   ", WindowAll, now)

	var total int
	for _, g := range groups {
		total += len(g.Items)
	}
	if total != 4 {
		t.Errorf("matched %d transactions, want all 4", total)
	}
}

func TestSearchWindows(t *testing.T) {
	now := model.NewDate(2026, time.August, 31)

	tests := []struct {
		name   string
		window Window
		want   int
	}{
		{"all", WindowAll, 4},
		{"current month", WindowMonth, 2},
		{"current year", WindowYear, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups := Search(searchFixture(), testIndex(), "", tt.window, now)
			var total int
			for _, g := range groups {
				total += len(g.Items)
			}
			if total != tt.want {
				t.Errorf("window %s matched %d, want %d", tt.window, total, tt.want)
			}
		})
	}
}

func TestSearchGroupOrder(t *testing.T) {
	now := model.NewDate(2026, time.August, 31)
	groups := Search(searchFixture(), testIndex(), "", WindowAll, now)

	for i := 1; i < len(groups); i++ {
		if groups[i-1].Date.Before(groups[i].Date) {
			t.Errorf("groups out of order: %v before %v", groups[i-1].Date, groups[i].Date)
		}
	}
}

func TestSearchNoMatches(t *testing.T) {
	now := model.NewDate(2026, time.August, 31)
	groups := Search(searchFixture(), testIndex(), "zzz-not-there", WindowAll, now)
	if len(groups) != 0 {
		t.Errorf("len(groups) = %d, want 0", len(groups))
	}
}
