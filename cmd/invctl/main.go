// invctl is the terminal surface for the inventory service. Every command
// drives the session controller, which owns the client-side state and talks
// to the API; rendering stays here.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ridloal/inventory-manager/internal/inventory/session"
	"github.com/ridloal/inventory-manager/internal/platform/config"
	"github.com/ridloal/inventory-manager/internal/product/client"
)

var version = "dev"

var (
	apiBaseURL string
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:     "invctl",
	Short:   "Manage the product inventory from the terminal",
	Version: version,
	Long: `invctl lists, filters, creates, edits, and deletes products in the
inventory service, and derives summary statistics over the catalog.

The API base URL is taken from --api or INVENTORY_API_URL.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var newInventoryAPI = func() client.InventoryAPI {
	base := apiBaseURL
	if base == "" {
		base = config.LoadClientConfig().APIBaseURL
	}
	return client.New(base)
}

func newController() *session.Controller {
	return session.NewController(newInventoryAPI())
}

func main() {
	rootCmd.PersistentFlags().StringVar(&apiBaseURL, "api", "", "inventory API base URL (default from INVENTORY_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(listCmd, getCmd, addCmd, editCmd, rmCmd, statsCmd)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
