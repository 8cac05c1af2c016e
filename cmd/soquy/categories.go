package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nmtri/soquy/internal/model"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"cat"},
		Short:   "Manage transaction categories",
	}
	cmd.AddCommand(categoriesListCmd())
	cmd.AddCommand(categoriesAddCmd())
	cmd.AddCommand(categoriesEditCmd())
	cmd.AddCommand(categoriesDeleteCmd())
	return cmd
}

func categoriesListCmd() *cobra.Command {
	var typeFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			var cats []model.Category
			if typeFlag != "" {
				typ, err := parseTypeFlag(typeFlag)
				if err != nil {
					return err
				}
				cats, err = store.GetCategoriesByType(ctx, typ)
				if err != nil {
					return err
				}
			} else {
				cats, err = store.GetAllCategories(ctx)
				if err != nil {
					return err
				}
			}

			for _, cat := range cats {
				marker := " "
				if cat.IsDefault {
					marker = "*"
				}
				fmt.Printf("#%-4d %s %s %-18s %-7s %s\n",
					cat.ID, marker, cat.Icon, cat.Name, cat.Type, cat.DisplayColor())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&typeFlag, "type", "", "restrict to income or expense")
	return cmd
}

func categoriesAddCmd() *cobra.Command {
	var (
		name     string
		typeFlag string
		icon     string
		color    string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a custom category",
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

			cat := &model.Category{
				Name:  name,
				Type:  typ,
				Icon:  icon,
				Color: color,
			}
			if err := store.CreateCategory(ctx, cat); err != nil {
				return err
			}
			fmt.Printf("Created category #%d: %s %s\n", cat.ID, cat.Icon, cat.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "category name (required)")
	cmd.Flags().StringVar(&typeFlag, "type", "expense", "category type: income or expense")
	cmd.Flags().StringVar(&icon, "icon", "🏷️", "display icon")
	cmd.Flags().StringVar(&color, "color", model.FallbackColor, "display color (#RRGGBB)")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func categoriesEditCmd() *cobra.Command {
	var (
		name  string
		icon  string
		color string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a category's display fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid category id %q", args[0])
			}

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			cat, err := store.GetCategoryByID(ctx, id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				cat.Name = name
			}
			if cmd.Flags().Changed("icon") {
				cat.Icon = icon
			}
			if cmd.Flags().Changed("color") {
				cat.Color = color
			}

			if err := store.UpdateCategory(ctx, cat); err != nil {
				return err
			}
			fmt.Printf("Updated category #%d\n", cat.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&icon, "icon", "", "new icon")
	cmd.Flags().StringVar(&color, "color", "", "new color (#RRGGBB)")
	return cmd
}

func categoriesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a custom category",
		Long: `Delete a custom category. Built-in categories cannot be deleted.
Transactions that referenced the deleted category remain and show up
under "Other" in reports.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid category id %q", args[0])
			}

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteCategory(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Deleted category #%d\n", id)
			return nil
		},
	}
}
