package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nmtri/soquy/internal/currency"
	"github.com/nmtri/soquy/internal/model"
)

func addCmd() *cobra.Command {
	var (
		amount      int64
		typeFlag    string
		categoryRef string
		note        string
		dateFlag    string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new transaction",
		Example: `  soquy add --amount 45000 --category "Ăn uống" --note "phở bò"
  soquy add --amount 15000000 --type income --category Lương --date 2026-08-01`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			typ, err := parseTypeFlag(typeFlag)
			if err != nil {
				return err
			}
			date, err := parseDateFlag(dateFlag)
			if err != nil {
				return err
			}
			cat, err := resolveCategory(ctx, store, categoryRef)
			if err != nil {
				return err
			}

			txn := &model.Transaction{
				Amount:     amount,
				Type:       typ,
				CategoryID: cat.ID,
				Note:       note,
				Date:       date,
			}
			if err := store.CreateTransaction(ctx, txn); err != nil {
				return err
			}

			code := displayCurrency(ctx, store)
			fmt.Printf("Recorded #%d: %s %s %s (%s)\n",
				txn.ID, cat.Icon, cat.Name, currency.Format(txn.Amount, code), txn.Date)
			return nil
		},
	}

	cmd.Flags().Int64Var(&amount, "amount", 0, "amount in VND (required)")
	cmd.Flags().StringVar(&typeFlag, "type", "expense", "transaction type: income or expense")
	cmd.Flags().StringVar(&categoryRef, "category", "", "category id or name (required)")
	cmd.Flags().StringVar(&note, "note", "", "free-text note")
	cmd.Flags().StringVar(&dateFlag, "date", "", "transaction date YYYY-MM-DD (default: today)")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}
