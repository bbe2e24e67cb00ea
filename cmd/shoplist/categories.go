package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"shoplist/pkg/client"
)

// defaultCategories matches the server's seed list.
var defaultCategories = []string{"Mercearia", "Hortifruti", "Açougue", "Padaria", "Bebidas"}

func newCategoriesCommand(newClient func() *client.Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"category", "c"},
		Short:   "Manage item categories",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:     "list",
			Aliases: []string{"ls"},
			Short:   "List categories with their item counts",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				categories, err := newClient().ListCategories(cmd.Context())
				if err != nil {
					return err
				}
				printCategories(cmd.OutOrStdout(), categories)
				return nil
			},
		},
		&cobra.Command{
			Use:   "add <name>",
			Short: "Create a category",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				category, err := newClient().CreateCategory(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				printCategories(cmd.OutOrStdout(), []client.Category{*category})
				return nil
			},
		},
		&cobra.Command{
			Use:   "rename <id> <name>",
			Short: "Rename a category",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				category, err := newClient().RenameCategory(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				printCategories(cmd.OutOrStdout(), []client.Category{*category})
				return nil
			},
		},
		&cobra.Command{
			Use:     "rm <id>",
			Aliases: []string{"delete"},
			Short:   "Delete a category no item refers to",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := newClient().DeleteCategory(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "deleted", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Create the default categories that are missing",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				api := newClient()
				created := 0
				for _, name := range defaultCategories {
					_, err := api.CreateCategory(cmd.Context(), name)
					switch {
					case err == nil:
						created++
					case client.IsStatus(err, http.StatusConflict):
						// already there
					default:
						return fmt.Errorf("seed %q: %w", name, err)
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created %d of %d categories\n", created, len(defaultCategories))
				return nil
			},
		},
	)
	return cmd
}
