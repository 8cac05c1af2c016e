package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nmtri/soquy/internal/currency"
	"github.com/nmtri/soquy/internal/report"
)

func summaryCmd() *cobra.Command {
	var (
		monthFlag string
		showChart bool
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Monthly income, expense and balance",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			month, err := parseMonthFlag(monthFlag)
			if err != nil {
				return err
			}

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			txns, err := store.GetTransactionsInRange(ctx, month.First(), month.Last())
			if err != nil {
				return err
			}

			summary := report.MonthlySummary(txns, month)
			code := displayCurrency(ctx, store)

			fmt.Printf("%s\n", month)
			fmt.Printf("  Thu nhập:  %s\n", currency.Format(summary.Income, code))
			fmt.Printf("  Chi tiêu:  %s\n", currency.Format(summary.Expense, code))
			fmt.Printf("  Số dư:     %s\n", currency.Format(summary.Balance, code))

			if showChart {
				fmt.Println()
				for _, point := range report.DailySeries(txns, month) {
					if point.Income == 0 && point.Expense == 0 {
						continue
					}
					fmt.Printf("  %s  +%s  -%s\n", point.Date,
						currency.Format(point.Income, code),
						currency.Format(point.Expense, code))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&monthFlag, "month", "", "month to summarize (YYYY-MM, default: current)")
	cmd.Flags().BoolVar(&showChart, "daily", false, "also print per-day totals")
	return cmd
}
