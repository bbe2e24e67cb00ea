package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"shoplist/pkg/client"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func printItems(w io.Writer, items []client.Item) {
	if len(items) == 0 {
		fmt.Fprintln(w, "no items")
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tQTY\tDONE\tCATEGORY\tUPDATED")
	for _, item := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			item.ID, item.Name, strconv.Itoa(item.Quantity), checkbox(item.Done), categoryName(item), item.UpdatedAt)
	}
	_ = tw.Flush()
}

func printItem(w io.Writer, item client.Item) {
	printItems(w, []client.Item{item})
}

func printMeta(w io.Writer, meta client.Meta) {
	fmt.Fprintf(w, "page %d/%d, %d items, sorted by %s %s\n",
		meta.Page, meta.TotalPages, meta.Total, meta.SortBy, meta.Order)
}

func printCategories(w io.Writer, categories []client.Category) {
	if len(categories) == 0 {
		fmt.Fprintln(w, "no categories")
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tITEMS")
	for _, category := range categories {
		count := "-"
		if category.ItemsCount != nil {
			count = strconv.Itoa(*category.ItemsCount)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", category.ID, category.Name, count)
	}
	_ = tw.Flush()
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func categoryName(item client.Item) string {
	if item.Category != nil {
		return item.Category.Name
	}
	return "-"
}
