package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ridloal/inventory-manager/internal/product/domain"
)

// --- list ---

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List products, optionally filtered by free text",
	Long: `List products in reverse creation order.

The search term matches name, category, and description, case-insensitively.
Statistics in the footer always cover the full catalog, not the filtered view.

Examples:
  invctl list
  invctl list --search widget`,
	RunE: func(cmd *cobra.Command, args []string) error {
		search, _ := cmd.Flags().GetString("search")

		ctrl := newController()
		ctrl.SetFilter(search)
		if !ctrl.Refresh(cmd.Context()) {
			return errors.New(ctrl.LastError())
		}

		visible := ctrl.Visible()
		if len(visible) == 0 {
			if search != "" {
				printWarning("No products match %q", search)
			} else {
				printWarning("No products found")
			}
		} else {
			renderProductTable(visible)
		}
		renderStats(ctrl.Stats())
		return nil
	},
}

// --- get ---

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one product as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newInventoryAPI().GetProduct(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(p)
	},
}

// --- add ---

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a product",
	Long: `Create a product.

Examples:
  invctl add --name "Widget" --category Tools --price 9.99 --quantity 5
  invctl add --name "Manual" --description "No price yet"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl := newController()
		ctrl.OpenCreateForm()

		if !ctrl.Submit(cmd.Context(), inputFromFlags(cmd, nil)) {
			printError("%s", ctrl.LastError())
			return errors.New("product not created")
		}
		ctrl.CloseForm()

		printSuccess("Product created")
		renderStats(ctrl.Stats())
		return nil
	},
}

// --- edit ---

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Update a product",
	Long: `Update a product. Only the given flags change; the rest keep their
current values.

Examples:
  invctl edit 3f2a... --quantity 0
  invctl edit 3f2a... --name "Widget v2" --price 12.50`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl := newController()
		if !ctrl.Refresh(cmd.Context()) {
			return errors.New(ctrl.LastError())
		}

		current := findProduct(ctrl.Products(), args[0])
		if current == nil {
			return fmt.Errorf("product %s not found", args[0])
		}
		ctrl.OpenEditForm(*current)

		if !ctrl.Submit(cmd.Context(), inputFromFlags(cmd, current)) {
			printError("%s", ctrl.LastError())
			return errors.New("product not updated")
		}
		ctrl.CloseForm()

		printSuccess("Product %s updated", current.ID)
		return nil
	},
}

// --- rm ---

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		skipConfirm, _ := cmd.Flags().GetBool("yes")

		ctrl := newController()
		if !ctrl.Refresh(cmd.Context()) {
			return errors.New(ctrl.LastError())
		}

		target := findProduct(ctrl.Products(), args[0])
		if target == nil {
			return fmt.Errorf("product %s not found", args[0])
		}

		ctrl.RequestDelete(*target)
		if !skipConfirm && !confirmDelete(target.Name) {
			ctrl.CancelDelete()
			printWarning("Delete cancelled")
			return nil
		}

		if !ctrl.ConfirmDelete(cmd.Context()) {
			printError("%s", ctrl.LastError())
			return errors.New("product not deleted")
		}
		printSuccess("Product %s deleted", target.ID)
		return nil
	},
}

// --- stats ---

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl := newController()
		if !ctrl.Refresh(cmd.Context()) {
			return errors.New(ctrl.LastError())
		}
		renderStats(ctrl.Stats())
		return nil
	},
}

func init() {
	listCmd.Flags().String("search", "", "free-text filter over name, category, description")

	for _, cmd := range []*cobra.Command{addCmd, editCmd} {
		cmd.Flags().String("name", "", "product name (required on add)")
		cmd.Flags().String("category", "", "product category")
		cmd.Flags().Float64("price", 0, "unit price, must be >= 0")
		cmd.Flags().Int("quantity", 0, "stock quantity, must be >= 0")
		cmd.Flags().String("description", "", "free-text description")
	}

	rmCmd.Flags().Bool("yes", false, "skip the confirmation prompt")
}

// inputFromFlags builds the candidate fields for Submit. With a current
// product (edit mode), unset flags keep the stored values; otherwise only
// the supplied flags are sent.
func inputFromFlags(cmd *cobra.Command, current *domain.Product) domain.ProductInput {
	var in domain.ProductInput
	if current != nil {
		in = domain.ProductInput{
			Name:        current.Name,
			Category:    current.CategoryOrEmpty(),
			Price:       domain.Number{Value: current.Price, Supplied: true},
			Quantity:    domain.Number{Value: float64(current.Quantity), Supplied: true},
			Description: current.DescriptionOrEmpty(),
		}
	}

	if cmd.Flags().Changed("name") {
		in.Name, _ = cmd.Flags().GetString("name")
	}
	if cmd.Flags().Changed("category") {
		in.Category, _ = cmd.Flags().GetString("category")
	}
	if cmd.Flags().Changed("price") {
		price, _ := cmd.Flags().GetFloat64("price")
		in.Price = domain.Number{Value: price, Supplied: true}
	}
	if cmd.Flags().Changed("quantity") {
		quantity, _ := cmd.Flags().GetInt("quantity")
		in.Quantity = domain.Number{Value: float64(quantity), Supplied: true}
	}
	if cmd.Flags().Changed("description") {
		in.Description, _ = cmd.Flags().GetString("description")
	}
	return in
}

func findProduct(products []domain.Product, id string) *domain.Product {
	for i := range products {
		if products[i].ID == id {
			return &products[i]
		}
	}
	return nil
}

func confirmDelete(name string) bool {
	fmt.Fprintf(os.Stderr, "Are you sure you want to delete %q? This action cannot be undone. [y/N]: ", name)
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
