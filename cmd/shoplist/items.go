package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"shoplist/pkg/client"
)

func newItemsCommand(newClient func() *client.Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "items",
		Aliases: []string{"item", "i"},
		Short:   "List and edit shopping list items",
	}
	cmd.AddCommand(
		newItemsListCommand(newClient),
		newItemsGetCommand(newClient),
		newItemsAddCommand(newClient),
		newItemsEditCommand(newClient),
		newItemsDoneCommand(newClient),
		newItemsRemoveCommand(newClient),
	)
	return cmd
}

func newItemsListCommand(newClient func() *client.Client) *cobra.Command {
	var (
		search     string
		onlyOpen   bool
		categoryID string
		page       int
		perPage    int
		sortBy     string
		order      string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List items with filters, sorting and paging",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			controller := client.NewListController(newClient())
			controller.Update(func(s *client.ListState) {
				s.SetSearch(search)
				s.SetOnlyOpen(onlyOpen)
				s.SetCategoryID(categoryID)
				s.SetPerPage(perPage)
				s.SetPage(page)
				s.SortBy = client.SortBy(sortBy)
				s.Order = client.Order(order)
			})

			result, _, err := controller.Refresh(cmd.Context())
			if err != nil {
				return err
			}
			printItems(cmd.OutOrStdout(), result.Data)
			printMeta(cmd.OutOrStdout(), result.Meta)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&search, "search", "s", "", "case-insensitive name filter")
	flags.BoolVar(&onlyOpen, "open", false, "only items not yet done")
	flags.StringVarP(&categoryID, "category", "c", "", "only items in this category id")
	flags.IntVarP(&page, "page", "p", 1, "page number")
	flags.IntVar(&perPage, "per-page", client.DefaultPerPage, "items per page (1-50)")
	flags.StringVar(&sortBy, "sort", string(client.SortByCreatedAt), "createdAt, updatedAt, name, quantity or done")
	flags.StringVar(&order, "order", string(client.OrderDesc), "asc or desc")
	return cmd
}

func newItemsGetCommand(newClient func() *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := newClient().GetItem(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printItem(cmd.OutOrStdout(), *item)
			return nil
		},
	}
}

func newItemsAddCommand(newClient func() *client.Client) *cobra.Command {
	var (
		quantity   int
		categoryID string
		done       bool
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := client.ItemCreate{Name: args[0], Quantity: quantity}
			if cmd.Flags().Changed("done") {
				req.Done = &done
			}
			if categoryID != "" {
				req.CategoryID = &categoryID
			}

			item, err := newClient().CreateItem(cmd.Context(), req)
			if err != nil {
				return err
			}
			printItem(cmd.OutOrStdout(), *item)
			return nil
		},
	}

	cmd.Flags().IntVarP(&quantity, "quantity", "q", 1, "how many to buy")
	cmd.Flags().StringVarP(&categoryID, "category", "c", "", "category id")
	cmd.Flags().BoolVar(&done, "done", false, "mark as already bought")
	return cmd
}

func newItemsEditCommand(newClient func() *client.Client) *cobra.Command {
	var (
		name          string
		quantity      int
		categoryID    string
		clearCategory bool
		done          bool
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change some fields of an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if clearCategory && flags.Changed("category") {
				return errors.New("--category and --clear-category are mutually exclusive")
			}

			var req client.ItemUpdate
			if flags.Changed("name") {
				req.Name = &name
			}
			if flags.Changed("quantity") {
				req.Quantity = &quantity
			}
			if flags.Changed("done") {
				req.Done = &done
			}
			if flags.Changed("category") {
				req.CategoryID = &categoryID
			}
			req.ClearCategory = clearCategory

			item, err := newClient().UpdateItem(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			printItem(cmd.OutOrStdout(), *item)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&name, "name", "n", "", "new name")
	flags.IntVarP(&quantity, "quantity", "q", 1, "new quantity")
	flags.StringVarP(&categoryID, "category", "c", "", "move to this category id")
	flags.BoolVar(&clearCategory, "clear-category", false, "remove the item from its category")
	flags.BoolVar(&done, "done", false, "bought state")
	return cmd
}

func newItemsDoneCommand(newClient func() *client.Client) *cobra.Command {
	var undo bool

	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark an item as bought",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			done := !undo
			item, err := newClient().UpdateItem(cmd.Context(), args[0], client.ItemUpdate{Done: &done})
			if err != nil {
				return err
			}
			printItem(cmd.OutOrStdout(), *item)
			return nil
		},
	}

	cmd.Flags().BoolVar(&undo, "undo", false, "mark as not bought")
	return cmd
}

func newItemsRemoveCommand(newClient func() *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete an item",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newClient().DeleteItem(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "deleted", args[0])
			return nil
		},
	}
}
