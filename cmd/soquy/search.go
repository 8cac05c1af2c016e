package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nmtri/soquy/internal/currency"
	"github.com/nmtri/soquy/internal/model"
	"github.com/nmtri/soquy/internal/report"
)

func searchCmd() *cobra.Command {
	var windowFlag string

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search transactions by category name or note",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			window, err := parseWindowFlag(windowFlag)
			if err != nil {
				return err
			}
			var query string
			if len(args) > 0 {
				query = args[0]
			}

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			txns, err := store.GetAllTransactions(ctx)
			if err != nil {
				return err
			}
			categories, err := store.GetAllCategories(ctx)
			if err != nil {
				return err
			}

			groups := report.Search(txns, model.NewCategoryIndex(categories), query, window, model.Today())
			if len(groups) == 0 {
				fmt.Println("No matches.")
				return nil
			}

			code := displayCurrency(ctx, store)
			for _, group := range groups {
				fmt.Printf("%s\n", group.Date)
				for _, item := range group.Items {
					txn := item.Transaction
					sign := "-"
					if txn.Type == model.TypeIncome {
						sign = "+"
					}
					note := txn.Note
					if note != "" {
						note = "  " + note
					}
					fmt.Printf("  #%-5d %s %-15s %s%s%s\n",
						txn.ID, item.Category.Icon, item.Category.Name,
						sign, currency.Format(txn.Amount, code), note)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&windowFlag, "window", "all", "date window: all, month or year")
	return cmd
}

func parseWindowFlag(s string) (report.Window, error) {
	switch strings.ToLower(s) {
	case "all", "":
		return report.WindowAll, nil
	case "month":
		return report.WindowMonth, nil
	case "year":
		return report.WindowYear, nil
	default:
		return "", fmt.Errorf("invalid window %q: want all, month or year", s)
	}
}
