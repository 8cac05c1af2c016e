package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nmtri/soquy/internal/remind"
)

func remindCmd() *cobra.Command {
	var (
		daemon   bool
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Send the daily spending reminder",
		Long: `Send a desktop notification nudging you to record today's spending.
The message depends on what the ledger holds: nothing yet today,
nothing today but spending yesterday, or entries already made.

With --daemon, stays resident and repeats on a fixed interval. A
second daemon detects the first via its pidfile and exits, keeping
the existing schedule.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			reminder := remind.New(store, remind.DesktopNotifier{})

			if !daemon {
				return reminder.RunOnce(ctx)
			}

			if !cmd.Flags().Changed("interval") {
				if configured := viper.GetDuration("remind.interval"); configured > 0 {
					interval = configured
				}
			}

			pidfile, err := reminderPidfile()
			if err != nil {
				return err
			}
			return reminder.RunDaemon(ctx, interval, pidfile)
		},
	}

	cmd.Flags().BoolVar(&daemon, "daemon", false, "stay resident and repeat on an interval")
	cmd.Flags().DurationVar(&interval, "interval", 24*time.Hour, "reminder interval in daemon mode")
	return cmd
}

func reminderPidfile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	dir := filepath.Join(home, ".local", "share", "soquy")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create state directory: %w", err)
	}
	return filepath.Join(dir, "remind.pid"), nil
}
