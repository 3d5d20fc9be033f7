package commands

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/all-dressed/alldressed-go/pkg/alldressed"
)

func TestCommandGroups(t *testing.T) {
	tests := []struct {
		name        string
		command     func() *cobra.Command
		subcommands []string
	}{
		{name: "zones", command: NewZonesCommand, subcommands: []string{"list", "get"}},
		{name: "schedules", command: NewSchedulesCommand, subcommands: []string{"list"}},
		{name: "frequencies", command: NewFrequenciesCommand, subcommands: []string{"list"}},
		{name: "customers", command: NewCustomersCommand, subcommands: []string{"list", "get"}},
		{name: "subscriptions", command: NewSubscriptionsCommand, subcommands: []string{"list", "get"}},
		{name: "menus", command: NewMenusCommand, subcommands: []string{"list"}},
		{name: "invoices", command: NewInvoicesCommand, subcommands: []string{"list"}},
		{name: "discounts", command: NewDiscountsCommand, subcommands: []string{"get"}},
		{name: "gift-cards", command: NewGiftCardsCommand, subcommands: []string{"get"}},
		{name: "packages", command: NewPackagesCommand, subcommands: []string{"list", "get"}},
		{name: "products", command: NewProductsCommand, subcommands: []string{"list"}},
		{name: "items", command: NewItemsCommand, subcommands: []string{"list"}},
		{name: "taxes", command: NewTaxesCommand, subcommands: []string{"get"}},
		{name: "tags", command: NewTagsCommand, subcommands: []string{"list"}},
		{name: "config", command: NewConfigCommand, subcommands: []string{"show", "set", "unset", "clear"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd := tt.command()
			assert.Equal(t, tt.name, cmd.Use)
			assert.NotEmpty(t, cmd.Short)
			assert.Len(t, cmd.Commands(), len(tt.subcommands))

			for _, name := range tt.subcommands {
				sub := findSubcommand(cmd, name)
				require.NotNil(t, sub, name)
				assert.NotNil(t, sub.RunE, name)
			}
		})
	}
}

func TestRequiredFlags(t *testing.T) {
	tests := []struct {
		name    string
		command *cobra.Command
		flag    string
	}{
		{name: "schedules list", command: newSchedulesListCommand(), flag: "postcode"},
		{name: "frequencies list", command: newFrequenciesListCommand(), flag: "schedule"},
		{name: "menus list", command: newMenusListCommand(), flag: "subscription"},
		{name: "invoices list", command: newInvoicesListCommand(), flag: "customer"},
		{name: "items list", command: newItemsListCommand(), flag: "menu"},
		{name: "taxes get", command: newTaxesGetCommand(), flag: "country"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flag := tt.command.Flags().Lookup(tt.flag)
			require.NotNil(t, flag)
			assert.Equal(t, []string{"true"}, flag.Annotations[cobra.BashCompOneRequiredFlag])
		})
	}
}

func TestZonesGet(t *testing.T) {
	fake := setupFakeClient(t, OutputFormatJSON)
	fake.Data("zones/H0H0H0", map[string]any{"id": "qc", "name": "Quebec"})

	out, err := execute(t, NewZonesCommand(), "get", "H0H0H0")
	require.NoError(t, err)

	var zone map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &zone))
	assert.Equal(t, "qc", zone["id"])
	assert.Equal(t, "Quebec", zone["name"])
}

func TestZonesGetNotFound(t *testing.T) {
	fake := setupFakeClient(t, OutputFormatJSON)
	fake.Error("zones/*", http.StatusNotFound, "No zone serves this postcode")

	_, err := execute(t, NewZonesCommand(), "get", "X1X1X1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, alldressed.ErrZoneNotFound))
	assert.Contains(t, err.Error(), "failed to get zone")
}

func TestZonesListTable(t *testing.T) {
	fake := setupFakeClient(t, OutputFormatTable)
	fake.Data("zones", []map[string]any{
		{"id": "qc", "name": "Quebec"},
		{"id": "on", "name": "Ontario"},
	})

	out, err := execute(t, NewZonesCommand(), "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Quebec")
	assert.Contains(t, out, "Ontario")
}

func TestTagsListEmptyTable(t *testing.T) {
	fake := setupFakeClient(t, OutputFormatTable)
	fake.Data("tags", []any{})

	out, err := execute(t, NewTagsCommand(), "list")
	require.NoError(t, err)
	assert.Equal(t, "No tags found.\n", out)
}

func TestTagsListYAML(t *testing.T) {
	fake := setupFakeClient(t, OutputFormatYAML)
	fake.Data("tags", []map[string]any{{"id": "t1", "name": "vegan"}})

	out, err := execute(t, NewTagsCommand(), "list")
	require.NoError(t, err)
	assert.Contains(t, out, "- id: t1")
	assert.Contains(t, out, "name: vegan")
}

func TestSchedulesList(t *testing.T) {
	fake := setupFakeClient(t, OutputFormatJSON)
	fake.Data("zones/H0H0H0/schedules*", []map[string]any{{"id": "s1", "day": "monday"}})

	out, err := execute(t, NewSchedulesCommand(), "list", "--postcode", "H0H0H0", "--available")
	require.NoError(t, err)
	assert.Contains(t, out, `"day": "monday"`)

	last, ok := fake.Last()
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(last.Path, "zones/H0H0H0/schedules"))
}

func TestSubscriptionsListForCustomer(t *testing.T) {
	fake := setupFakeClient(t, OutputFormatJSON)
	fake.Data("customers/c1/subscriptions", []map[string]any{{"id": "s1", "status": "active", "frequency": 2}})

	out, err := execute(t, NewSubscriptionsCommand(), "list", "--customer", "c1")
	require.NoError(t, err)

	var subscriptions []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &subscriptions))
	require.Len(t, subscriptions, 1)
	assert.Equal(t, "active", subscriptions[0]["status"])
}

func TestCustomersGetTable(t *testing.T) {
	fake := setupFakeClient(t, OutputFormatTable)
	fake.Data("customers/c1", map[string]any{
		"id":       "c1",
		"email":    "jane@example.com",
		"currency": map[string]any{"id": "cad", "code": "CAD"},
	})

	out, err := execute(t, NewCustomersCommand(), "get", "c1")
	require.NoError(t, err)
	assert.Contains(t, out, "jane@example.com")
	assert.Contains(t, out, "CAD")
}

func TestInvoicesPageThrough(t *testing.T) {
	fake := setupFakeClient(t, OutputFormatJSON)
	fake.JSON("customers/c1/invoices", map[string]any{
		"data":  []map[string]any{{"id": "i1"}, {"id": "i2"}},
		"links": map[string]any{"next": "https://api.alldressed.test/accounts/acc/customers/c1/invoices?page=2"},
		"meta":  map[string]any{"current_page": 1, "last_page": 2, "total": 3},
	})
	fake.JSON("customers/c1/invoices?page=2", map[string]any{
		"data":  []map[string]any{{"id": "i3"}},
		"links": map[string]any{"prev": "https://api.alldressed.test/accounts/acc/customers/c1/invoices?page=1"},
		"meta":  map[string]any{"current_page": 2, "last_page": 2, "total": 3},
	})

	out, err := execute(t, NewInvoicesCommand(), "list", "--customer", "c1", "--page-through")
	require.NoError(t, err)

	var invoices []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &invoices))
	require.Len(t, invoices, 3)
	assert.Equal(t, "i3", invoices[2]["id"])
	assert.Len(t, fake.Requests(), 2)
}

func TestInvoicesSinglePageTable(t *testing.T) {
	fake := setupFakeClient(t, OutputFormatTable)
	fake.JSON("customers/c1/invoices?page=2", map[string]any{
		"data": []map[string]any{{"id": "i3", "number": "INV-3"}},
		"meta": map[string]any{"current_page": 2, "last_page": 3, "total": 7},
	})

	out, err := execute(t, NewInvoicesCommand(), "list", "--customer", "c1", "--page", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "INV-3")
	assert.Contains(t, out, "Page 2 of 3, 7 invoices in total")
	assert.Len(t, fake.Requests(), 1)
}

func TestPackagesListRoot(t *testing.T) {
	fake := setupFakeClient(t, OutputFormatJSON)
	fake.Data("menus/m1/packages?root=1", []map[string]any{{"id": "p1", "name": "Family box", "parent": nil}})

	out, err := execute(t, NewPackagesCommand(), "list", "--menu", "m1", "--root")
	require.NoError(t, err)
	assert.Contains(t, out, "Family box")
}

func TestProductsListForPackage(t *testing.T) {
	fake := setupFakeClient(t, OutputFormatJSON)
	fake.Data("menus/m1/packages/p1/products", []map[string]any{{"id": "pr1", "name": "Soup"}})

	_, err := execute(t, NewProductsCommand(), "list", "--menu", "m1", "--package", "p1")
	require.NoError(t, err)

	last, ok := fake.Last()
	require.True(t, ok)
	assert.Equal(t, "menus/m1/packages/p1/products", last.Path)
}

func TestItemsListInvalidMenu(t *testing.T) {
	fake := setupFakeClient(t, OutputFormatJSON)

	_, err := execute(t, NewItemsCommand(), "list", "--menu", "next-week")
	require.Error(t, err)
	assert.True(t, errors.Is(err, alldressed.ErrInvalidMenuIdentifier))
	assert.Empty(t, fake.Requests())
}

func TestTaxesGet(t *testing.T) {
	fake := setupFakeClient(t, OutputFormatTable)
	fake.Data("POST shipping/taxes", []map[string]any{{"name": "GST", "rate": 5}, {"name": "QST", "rate": 9.975}})

	out, err := execute(t, NewTaxesCommand(), "get", "--country", "CA", "--state", "QC")
	require.NoError(t, err)
	assert.Contains(t, out, "9.975%")

	last, ok := fake.Last()
	require.True(t, ok)
	assert.Equal(t, map[string]any{"country": "CA", "state": "QC", "city": nil, "postcode": nil}, last.JSON())
}

func TestDiscountsGet(t *testing.T) {
	fake := setupFakeClient(t, OutputFormatJSON)
	fake.Data("discounts/WELCOME?customer=c1", map[string]any{"id": "d1", "code": "WELCOME"})

	out, err := execute(t, NewDiscountsCommand(), "get", "WELCOME", "--customer", "c1")
	require.NoError(t, err)
	assert.Contains(t, out, `"code": "WELCOME"`)
}

func TestGiftCardsGetNotFound(t *testing.T) {
	fake := setupFakeClient(t, OutputFormatJSON)
	fake.Error("gift-cards/NOPE", http.StatusNotFound, "Not found")

	_, err := execute(t, NewGiftCardsCommand(), "get", "NOPE")
	assert.True(t, errors.Is(err, alldressed.ErrGiftCardNotFound))
}
