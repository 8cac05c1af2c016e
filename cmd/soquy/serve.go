package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nmtri/soquy/internal/server"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve transactions read-only over HTTP",
		Long: `Expose the transaction table to other local processes as a
read-only JSON API. Only GET is accepted; mutation verbs get 405.

  GET /transactions            all transactions, newest first
  GET /transactions?from=..&to=..  date-range filter (YYYY-MM-DD)
  GET /transactions/{id}       a single transaction`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if !cmd.Flags().Changed("addr") {
				if configured := viper.GetString("serve.addr"); configured != "" {
					addr = configured
				}
			}

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			return server.New(store, addr).ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8345", "listen address")
	return cmd
}
