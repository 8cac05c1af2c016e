package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nmtri/soquy/internal/currency"
	"github.com/nmtri/soquy/internal/model"
)

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "List, edit and delete transactions",
	}
	cmd.AddCommand(txListCmd())
	cmd.AddCommand(txShowCmd())
	cmd.AddCommand(txEditCmd())
	cmd.AddCommand(txDeleteCmd())
	return cmd
}

func txListCmd() *cobra.Command {
	var monthFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			var txns []model.Transaction
			if monthFlag != "" {
				month, err := parseMonthFlag(monthFlag)
				if err != nil {
					return err
				}
				txns, err = store.GetTransactionsInRange(ctx, month.First(), month.Last())
				if err != nil {
					return err
				}
			} else {
				txns, err = store.GetAllTransactions(ctx)
				if err != nil {
					return err
				}
			}

			if len(txns) == 0 {
				fmt.Println("No transactions recorded.")
				return nil
			}

			categories, err := store.GetAllCategories(ctx)
			if err != nil {
				return err
			}
			index := model.NewCategoryIndex(categories)
			code := displayCurrency(ctx, store)

			for _, txn := range txns {
				printTransaction(txn, index, code)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&monthFlag, "month", "", "restrict to a month (YYYY-MM)")
	return cmd
}

func txShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid transaction id %q", args[0])
			}

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			txn, err := store.GetTransactionByID(ctx, id)
			if err != nil {
				return err
			}
			categories, err := store.GetAllCategories(ctx)
			if err != nil {
				return err
			}

			printTransaction(*txn, model.NewCategoryIndex(categories), displayCurrency(ctx, store))
			return nil
		},
	}
}

func txEditCmd() *cobra.Command {
	var (
		amount      int64
		typeFlag    string
		categoryRef string
		note        string
		dateFlag    string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid transaction id %q", args[0])
			}

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			txn, err := store.GetTransactionByID(ctx, id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("amount") {
				txn.Amount = amount
			}
			if cmd.Flags().Changed("type") {
				typ, err := parseTypeFlag(typeFlag)
				if err != nil {
					return err
				}
				txn.Type = typ
			}
			if cmd.Flags().Changed("category") {
				cat, err := resolveCategory(ctx, store, categoryRef)
				if err != nil {
					return err
				}
				txn.CategoryID = cat.ID
			}
			if cmd.Flags().Changed("note") {
				txn.Note = note
			}
			if cmd.Flags().Changed("date") {
				date, err := model.ParseDate(dateFlag)
				if err != nil {
					return err
				}
				txn.Date = date
			}

			if err := store.UpdateTransaction(ctx, txn); err != nil {
				return err
			}
			fmt.Printf("Updated #%d\n", txn.ID)
			return nil
		},
	}

	cmd.Flags().Int64Var(&amount, "amount", 0, "new amount in VND")
	cmd.Flags().StringVar(&typeFlag, "type", "", "new type: income or expense")
	cmd.Flags().StringVar(&categoryRef, "category", "", "new category id or name")
	cmd.Flags().StringVar(&note, "note", "", "new note")
	cmd.Flags().StringVar(&dateFlag, "date", "", "new date YYYY-MM-DD")
	return cmd
}

func txDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid transaction id %q", args[0])
			}

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteTransaction(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Deleted #%d\n", id)
			return nil
		},
	}
}

func printTransaction(txn model.Transaction, index model.CategoryIndex, code string) {
	cat := index.Resolve(txn.CategoryID)
	sign := "-"
	if txn.Type == model.TypeIncome {
		sign = "+"
	}
	note := txn.Note
	if note != "" {
		note = "  " + note
	}
	fmt.Printf("#%-5d %s  %s %-15s %s%s%s\n",
		txn.ID, txn.Date, cat.Icon, cat.Name, sign, currency.Format(txn.Amount, code), note)
}
