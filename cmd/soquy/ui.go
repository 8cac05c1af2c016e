package main

import (
	"github.com/spf13/cobra"

	"github.com/nmtri/soquy/internal/tui"
)

func uiCmd() *cobra.Command {
	var monthFlag string

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive dashboard",
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

			settings, err := store.GetSettings(ctx)
			if err != nil {
				return err
			}

			return tui.Run(ctx, store, settings, month)
		},
	}

	cmd.Flags().StringVar(&monthFlag, "month", "", "month to open on (YYYY-MM, default: current)")
	return cmd
}
