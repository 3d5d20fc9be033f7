package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/all-dressed/alldressed-go/internal/http"
	"github.com/all-dressed/alldressed-go/pkg/alldressed"
)

func TestMenuIdentifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		menu  string
		valid bool
	}{
		{menu: "0b6a3c4e-8f1d-4a7e-9c2b-5d6e7f8a9b0c", valid: true},
		{menu: "2024-05-06", valid: true},
		{menu: "2024-5-6", valid: false},
		{menu: "next-week", valid: false},
		{menu: "{0b6a3c4e-8f1d-4a7e-9c2b-5d6e7f8a9b0c}", valid: false},
		{menu: "", valid: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.menu, func(t *testing.T) {
			t.Parallel()

			_, err := menuIdentifier(testCase.menu)
			if testCase.valid {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, alldressed.ErrInvalidMenuIdentifier)
			}
		})
	}
}

func TestChoiceBuilder_InvalidMenuFailsWithoutRequest(t *testing.T) {
	t.Parallel()

	fake := internalhttp.NewFakeTransport()

	_, err := NewTestClient(t, fake).Choices().ForMenu("next-week").OfSubscription("s1").Get(context.Background())
	require.ErrorIs(t, err, alldressed.ErrInvalidMenuIdentifier)
	assert.Empty(t, fake.Requests())
}

func TestChoiceBuilder_ValidMenuReplacesInvalidOne(t *testing.T) {
	t.Parallel()

	fake := internalhttp.NewFakeTransport().FakeJSON("subscriptions/s1/2024-05-06/choices", map[string]any{"data": []any{}})

	choices, err := NewTestClient(t, fake).Choices().
		ForMenu("next-week").
		ForMenu("2024-05-06").
		OfSubscription("s1").
		Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, choices)
	assert.Len(t, fake.Requests(), 1)
}

func TestChoiceBuilder_Get(t *testing.T) {
	t.Parallel()

	fake := internalhttp.NewFakeTransport().FakeJSON("subscriptions/s1/2024-05-06/choices", map[string]any{
		"data": []any{
			map[string]any{
				"id":       "ch1",
				"quantity": 2,
				"choosable": map[string]any{
					"id":       "cb1",
					"sellable": map[string]any{"id": "p1", "type": "product", "name": "Soup"},
				},
				"package": nil,
			},
		},
	})

	choices, err := NewTestClient(t, fake).Choices().ForMenu("2024-05-06").OfSubscription("s1").Get(context.Background())
	require.NoError(t, err)
	require.Len(t, choices, 1)

	choice := choices[0]
	assert.Equal(t, 2, choice.Quantity())
	assert.Nil(t, choice.Package)
	assert.True(t, choice.Has("package"))
	require.NotNil(t, choice.Choosable)
	require.NotNil(t, choice.Choosable.Sellable)
	require.NotNil(t, choice.Choosable.Sellable.Product)
	assert.Equal(t, "Soup", choice.Choosable.Sellable.Product.Name())
}

func TestChoiceBuilder_Update(t *testing.T) {
	t.Parallel()

	fake := internalhttp.NewFakeTransport().Fake("PUT subscriptions/s1/2024-05-06/choices", internalhttp.FakeResponse{
		StatusCode: http.StatusNoContent,
	})

	choosable := &alldressed.Choosable{Entity: alldressed.NewEntity(alldressed.Attributes{"id": "cb1"})}
	pkg := &alldressed.Package{Entity: alldressed.NewEntity(alldressed.Attributes{"id": "pkg1"})}

	err := NewTestClient(t, fake).Choices().ForMenu("2024-05-06").OfSubscription("s1").Update(context.Background(), []*alldressed.Choice{
		alldressed.NewChoice(choosable, 3, pkg),
		alldressed.NewChoice(choosable, 1, nil),
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"choices": []any{
		map[string]any{"id": "cb1", "quantity": float64(3), "package": "pkg1"},
		map[string]any{"id": "cb1", "quantity": float64(1), "package": nil},
	}}, fake.Requests()[0].JSON())
}

func TestItemBuilder_Get(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		build    func(alldressed.ItemBuilder) alldressed.ItemBuilder
		expected string
	}{
		{
			name:     "every type",
			build:    func(b alldressed.ItemBuilder) alldressed.ItemBuilder { return b },
			expected: "",
		},
		{
			name:     "packages",
			build:    func(b alldressed.ItemBuilder) alldressed.ItemBuilder { return b.Packages() },
			expected: "package",
		},
		{
			name:     "products and packages",
			build:    func(b alldressed.ItemBuilder) alldressed.ItemBuilder { return b.Products().Packages() },
			expected: "package,product",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			fake := internalhttp.NewFakeTransport().FakeJSON("menus/2024-05-06/items", map[string]any{
				"data": []any{map[string]any{"id": "i1", "type": "package"}},
			})

			items, err := testCase.build(NewTestClient(t, fake).Items().ForMenu("2024-05-06")).Get(context.Background())
			require.NoError(t, err)
			require.Len(t, items, 1)
			assert.Equal(t, alldressed.ItemTypePackage, items[0].Type())
			assert.Equal(t, testCase.expected, fake.Requests()[0].Query.Get("types"))
		})
	}

	t.Run("menu is required", func(t *testing.T) {
		t.Parallel()

		fake := internalhttp.NewFakeTransport()

		_, err := NewTestClient(t, fake).Items().Get(context.Background())
		require.ErrorIs(t, err, alldressed.ErrMissingMenu)

		_, err = NewTestClient(t, fake).Items().ForMenu("soon").Get(context.Background())
		require.ErrorIs(t, err, alldressed.ErrInvalidMenuIdentifier)
		assert.Empty(t, fake.Requests())
	})

	t.Run("valid menu replaces an invalid one", func(t *testing.T) {
		t.Parallel()

		fake := internalhttp.NewFakeTransport().FakeJSON("menus/2024-05-06/items", map[string]any{"data": []any{}})

		items, err := NewTestClient(t, fake).Items().ForMenu("soon").ForMenu("2024-05-06").Get(context.Background())
		require.NoError(t, err)
		assert.Empty(t, items)
		assert.Len(t, fake.Requests(), 1)
	})
}
