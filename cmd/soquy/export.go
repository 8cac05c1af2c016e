package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nmtri/soquy/internal/export"
	"github.com/nmtri/soquy/internal/model"
	"github.com/nmtri/soquy/internal/report"
)

func exportCmd() *cobra.Command {
	var (
		monthFlag string
		yearFlag  int
		typeFlag  string
		outFlag   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a category report to a PDF file",
		Example: `  soquy export --month 2026-08
  soquy export --year 2026 --type income --out thu-nhap-2026.pdf`,
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
			if outFlag == "" {
				outFlag = fmt.Sprintf("soquy-report-%s.pdf", period)
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

			title := "Báo cáo chi tiêu"
			if typ == model.TypeIncome {
				title = "Báo cáo thu nhập"
			}
			doc := export.ReportDoc{
				Title:        title,
				Period:       period,
				CurrencyCode: displayCurrency(ctx, store),
				Result:       result,
				GeneratedAt:  time.Now(),
			}
			if err := export.WritePDF(outFlag, doc); err != nil {
				return err
			}

			fmt.Printf("Wrote %s (%d categories)\n", outFlag, len(result.Stats))
			return nil
		},
	}

	cmd.Flags().StringVar(&monthFlag, "month", "", "month to export (YYYY-MM, default: current)")
	cmd.Flags().IntVar(&yearFlag, "year", 0, "export a whole year instead of a month")
	cmd.Flags().StringVar(&typeFlag, "type", "expense", "export income or expense")
	cmd.Flags().StringVar(&outFlag, "out", "", "output file (default: soquy-report-<period>.pdf)")
	return cmd
}
