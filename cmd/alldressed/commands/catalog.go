package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/all-dressed/alldressed-go/pkg/alldressed"
)

var packageRenderer = &OutputRenderer[alldressed.Package]{
	Columns: []column[alldressed.Package]{
		{Header: "ID", Value: func(p *alldressed.Package) string { return p.ID() }},
		{Header: "Name", Value: func(p *alldressed.Package) string { return p.Name() }},
		{Header: "Root", Value: func(p *alldressed.Package) string { return formatBool(p.IsRoot()) }},
		{Header: "Packages", Value: func(p *alldressed.Package) string { return formatInt(len(p.Packages)) }},
		{Header: "Products", Value: func(p *alldressed.Package) string { return formatInt(len(p.Products)) }},
	},
	NoItemsMsg: "No packages found.",
}

var productRenderer = &OutputRenderer[alldressed.Product]{
	Columns: []column[alldressed.Product]{
		{Header: "ID", Value: func(p *alldressed.Product) string { return p.ID() }},
		{Header: "Name", Value: func(p *alldressed.Product) string { return p.Name() }},
		{Header: "Price", Value: func(p *alldressed.Product) string { return formatInt(p.Int("price")) }},
		{Header: "Currency", Value: func(p *alldressed.Product) string { return currencyCode(p.Currency) }},
	},
	NoItemsMsg: "No products found.",
}

var itemRenderer = &OutputRenderer[alldressed.Item]{
	Columns: []column[alldressed.Item]{
		{Header: "ID", Value: func(i *alldressed.Item) string { return i.ID() }},
		{Header: "Type", Value: func(i *alldressed.Item) string { return string(i.Type()) }},
		{Header: "Name", Value: func(i *alldressed.Item) string { return i.String("name") }},
	},
	NoItemsMsg: "No items found.",
}

// NewPackagesCommand creates the packages command group
func NewPackagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "packages",
		Aliases: []string{"package", "pkg"},
		Short:   "Inspect packages",
		Long:    "List the packages of the catalog or of a menu and display a single package",
	}

	cmd.AddCommand(newPackagesListCommand())
	cmd.AddCommand(newPackagesGetCommand())

	return cmd
}

func newPackagesListCommand() *cobra.Command {
	var (
		menu string
		root bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List packages",
		Long:  "List the packages of the catalog, or of a menu with --menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			builder := client.Packages()
			if menu != "" {
				builder = builder.ForMenu(menu)
			}

			if root {
				builder = builder.Root()
			}

			packages, err := builder.Get(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list packages: %w", err)
			}

			return packageRenderer.Render(cmd, packages)
		},
	}

	cmd.Flags().StringVar(&menu, "menu", "", "menu id")
	cmd.Flags().BoolVar(&root, "root", false, "only packages without a parent")

	return cmd
}

func newPackagesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PACKAGE_ID",
		Short: "Get package details",
		Long:  "Display a package along with its sub-packages and products",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			pkg, err := client.Packages().Find(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get package: %w", err)
			}

			if pkg == nil {
				return fmt.Errorf("%w: %s", alldressed.ErrPackageNotFound, args[0])
			}

			return packageRenderer.RenderOne(cmd, pkg)
		},
	}
}

// NewProductsCommand creates the products command group
func NewProductsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"product"},
		Short:   "Inspect products",
		Long:    "List the products of the catalog, of a menu or of a package",
	}

	cmd.AddCommand(newProductsListCommand())

	return cmd
}

func newProductsListCommand() *cobra.Command {
	var menu, pkg string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		Long:  "List the products of the catalog, narrowed by --menu and --package",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			builder := client.Products()
			if menu != "" {
				builder = builder.ForMenu(menu)
			}

			if pkg != "" {
				builder = builder.ForPackage(pkg)
			}

			products, err := builder.Get(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list products: %w", err)
			}

			return productRenderer.Render(cmd, products)
		},
	}

	cmd.Flags().StringVar(&menu, "menu", "", "menu id")
	cmd.Flags().StringVar(&pkg, "package", "", "package id")

	return cmd
}

// NewItemsCommand creates the items command group
func NewItemsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "items",
		Aliases: []string{"item"},
		Short:   "Inspect menu items",
		Long:    "List the packages and products offered by a menu",
	}

	cmd.AddCommand(newItemsListCommand())

	return cmd
}

func newItemsListCommand() *cobra.Command {
	var (
		menu     string
		packages bool
		products bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List menu items",
		Long:  "List the items of a menu given by id or by date (YYYY-MM-DD)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			builder := client.Items().ForMenu(menu)
			if packages {
				builder = builder.Packages()
			}

			if products {
				builder = builder.Products()
			}

			items, err := builder.Get(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list items: %w", err)
			}

			return itemRenderer.Render(cmd, items)
		},
	}

	cmd.Flags().StringVar(&menu, "menu", "", "menu id or date")
	cmd.Flags().BoolVar(&packages, "packages", false, "include packages")
	cmd.Flags().BoolVar(&products, "products", false, "include products")
	_ = cmd.MarkFlagRequired("menu")

	return cmd
}
