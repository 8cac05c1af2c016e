package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nmtri/soquy/internal/model"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show and change display settings",
	}
	cmd.AddCommand(settingsShowCmd())
	cmd.AddCommand(settingsSetCmd())
	return cmd
}

func settingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			settings, err := store.GetSettings(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("theme:     %s\n", settings.Theme)
			fmt.Printf("language:  %s\n", settings.Language)
			fmt.Printf("currency:  %s\n", settings.Currency)
			fmt.Printf("dark-mode: %t\n", settings.DarkMode)
			return nil
		},
	}
}

func settingsSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting",
		Long: `Change one setting. Keys and accepted values:

  theme      purple | blue
  language   vi | en
  currency   VND | USD
  dark-mode  true | false`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			key, value := strings.ToLower(args[0]), args[1]

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			settings, err := store.GetSettings(ctx)
			if err != nil {
				return err
			}

			switch key {
			case "theme":
				switch strings.ToLower(value) {
				case "purple":
					settings.Theme = model.ThemePurple
				case "blue":
					settings.Theme = model.ThemeBlue
				default:
					return fmt.Errorf("invalid theme %q: want purple or blue", value)
				}
			case "language", "lang":
				settings.Language = strings.ToLower(value)
			case "currency":
				settings.Currency = strings.ToUpper(value)
			case "dark-mode", "darkmode":
				dark, err := strconv.ParseBool(value)
				if err != nil {
					return fmt.Errorf("invalid dark-mode %q: want true or false", value)
				}
				settings.DarkMode = dark
			default:
				return fmt.Errorf("unknown setting %q: want theme, language, currency or dark-mode", key)
			}

			if err := store.SaveSettings(ctx, settings); err != nil {
				return err
			}
			fmt.Printf("Set %s\n", key)
			return nil
		},
	}
}
