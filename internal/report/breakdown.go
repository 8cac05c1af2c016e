package report

import (
	"math"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/nmtri/soquy/internal/model"
)

// CategoryStat is one category's share of a period total. Category is
// always a valid category; transactions whose category no longer
// exists are attributed to the sentinel Other category.
type CategoryStat struct {
	Category   model.Category
	Amount     int64
	Percentage float64
	Count      int
}

// BreakdownResult is a per-category decomposition of one transaction
// type over a window.
type BreakdownResult struct {
	Stats []CategoryStat
	Total int64
}

// Breakdown groups the transactions of the given type by category,
// sums each group and computes its percentage of the grand total,
// rounded to one decimal. Percentages are 0 when the total is 0. The
// result is sorted by amount descending; ties order by name in
// Vietnamese collation, so diacritics sort where a reader expects them.
func Breakdown(txns []model.Transaction, index model.CategoryIndex, typ model.TransactionType) BreakdownResult {
	type group struct {
		amount int64
		count  int
	}
	groups := make(map[int64]*group)

	var total int64
	for _, txn := range txns {
		if txn.Type != typ {
			continue
		}
		g, ok := groups[txn.CategoryID]
		if !ok {
			g = &group{}
			groups[txn.CategoryID] = g
		}
		g.amount += txn.Amount
		g.count++
		total += txn.Amount
	}

	stats := make([]CategoryStat, 0, len(groups))
	for categoryID, g := range groups {
		stats = append(stats, CategoryStat{
			Category:   index.Resolve(categoryID),
			Amount:     g.amount,
			Count:      g.count,
			Percentage: percentOf(g.amount, total),
		})
	}

	// Collators buffer internally, so build one per call instead of
	// sharing a package-level instance across goroutines.
	names := collate.New(language.Vietnamese)
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Amount != stats[j].Amount {
			return stats[i].Amount > stats[j].Amount
		}
		return names.CompareString(stats[i].Category.Name, stats[j].Category.Name) < 0
	})

	return BreakdownResult{Stats: stats, Total: total}
}

// percentOf returns amount/total*100 rounded to one decimal, 0 when
// total is 0.
func percentOf(amount, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(amount)/float64(total)*1000) / 10
}
