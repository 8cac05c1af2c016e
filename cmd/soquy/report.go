package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nmtri/soquy/internal/currency"
	"github.com/nmtri/soquy/internal/model"
	"github.com/nmtri/soquy/internal/report"
)

func reportCmd() *cobra.Command {
	var (
		monthFlag string
		yearFlag  int
		typeFlag  string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Category breakdown for a month or a year",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			typ, err := parseTypeFlag(typeFlag)
			if err != nil {
				return err
			}
			start, end, period, err := reportWindow(monthFlag, yearFlag)
			if err != nil {
				return err
			}

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			txns, err := store.GetTransactionsInRange(ctx, start, end)
			if err != nil {
				return err
			}
			categories, err := store.GetAllCategories(ctx)
			if err != nil {
				return err
			}

			result := report.Breakdown(txns, model.NewCategoryIndex(categories), typ)
			code := displayCurrency(ctx, store)

			label := "Chi tiêu"
			if typ == model.TypeIncome {
				label = "Thu nhập"
			}
			fmt.Printf("%s · %s\n", label, period)
			fmt.Printf("Tổng: %s\n\n", currency.Format(result.Total, code))

			if len(result.Stats) == 0 {
				fmt.Println("Nothing recorded in this period.")
				return nil
			}
			for _, stat := range result.Stats {
				bar := strings.Repeat("█", int(stat.Percentage/5))
				fmt.Printf("  %s %-15s %5.1f%%  %-20s %s (%d)\n",
					stat.Category.Icon, stat.Category.Name, stat.Percentage, bar,
					currency.Format(stat.Amount, code), stat.Count)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&monthFlag, "month", "", "month to report (YYYY-MM, default: current)")
	cmd.Flags().IntVar(&yearFlag, "year", 0, "report a whole year instead of a month")
	cmd.Flags().StringVar(&typeFlag, "type", "expense", "report income or expense")

	cmd.AddCommand(reportDetailCmd())
	return cmd
}

func reportDetailCmd() *cobra.Command {
	var (
		monthFlag   string
		yearFlag    int
		categoryRef string
	)

	cmd := &cobra.Command{
		Use:   "detail",
		Short: "Per-day drill-down for one category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			start, end, period, err := reportWindow(monthFlag, yearFlag)
			if err != nil {
				return err
			}

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			cat, err := resolveCategory(ctx, store, categoryRef)
			if err != nil {
				return err
			}
			txns, err := store.GetTransactionsInRange(ctx, start, end)
			if err != nil {
				return err
			}

			detail := report.DetailForCategory(txns, cat.ID)
			code := displayCurrency(ctx, store)

			fmt.Printf("%s %s · %s\n", cat.Icon, cat.Name, period)
			fmt.Printf("  Tổng:           %s (%d giao dịch)\n", currency.Format(detail.Total, code), detail.Count)
			fmt.Printf("  TB / giao dịch: %s\n", currency.Format(detail.AvgPerTransaction, code))
			fmt.Printf("  TB / ngày:      %s\n", currency.Format(detail.AvgPerDay, code))

			for _, group := range detail.Groups {
				fmt.Printf("\n%s  (%s)\n", group.Date, currency.Format(group.Subtotal, code))
				for _, txn := range group.Transactions {
					note := txn.Note
					if note != "" {
						note = "  " + note
					}
					fmt.Printf("  #%-5d %s%s\n", txn.ID, currency.Format(txn.Amount, code), note)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&monthFlag, "month", "", "month to report (YYYY-MM, default: current)")
	cmd.Flags().IntVar(&yearFlag, "year", 0, "report a whole year instead of a month")
	cmd.Flags().StringVar(&categoryRef, "category", "", "category id or name (required)")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

// reportWindow resolves --month/--year flags into a date range and a
// display label. --year wins when both are given.
func reportWindow(monthFlag string, yearFlag int) (model.Date, model.Date, string, error) {
	if yearFlag != 0 {
		start := model.NewDate(yearFlag, 1, 1)
		end := model.NewDate(yearFlag, 12, 31)
		return start, end, fmt.Sprintf("%d", yearFlag), nil
	}
	month, err := parseMonthFlag(monthFlag)
	if err != nil {
		return model.Date{}, model.Date{}, "", err
	}
	return month.First(), month.Last(), month.String(), nil
}
