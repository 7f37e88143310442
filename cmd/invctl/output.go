package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/ridloal/inventory-manager/internal/inventory/derive"
	"github.com/ridloal/inventory-manager/internal/product/domain"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"
)

func colorize(color, text string) string {
	if noColor {
		return text
	}
	return color + text + colorReset
}

func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, colorize(colorGreen, "✓ "+msg))
}

func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, colorize(colorRed, "✗ "+msg))
}

func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, colorize(colorYellow, "⚠ "+msg))
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderProductTable(products []domain.Product) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, colorize(colorBold, "ID\tNAME\tCATEGORY\tPRICE\tQTY\tDESCRIPTION"))
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			p.ID,
			p.Name,
			p.CategoryOrDefault(),
			derive.FormatCurrency(p.Price),
			p.Quantity,
			truncate(p.DescriptionOrEmpty(), 40),
		)
	}
	w.Flush()
}

func renderStats(stats derive.Stats) {
	fmt.Fprintf(os.Stdout, "\n%s %d products | total value %s | %d low stock | %d categories\n",
		colorize(colorBold, "Catalog:"),
		stats.Total,
		derive.FormatCurrency(stats.TotalValue),
		stats.LowStock,
		stats.Categories,
	)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
