package alldressed_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/all-dressed/alldressed-go/pkg/alldressed"
)

func TestEntity_Accessors(t *testing.T) {
	t.Parallel()

	entity, err := alldressed.Decode[alldressed.Entity]([]byte(`{
		"id": 42,
		"name": "box",
		"count": "3",
		"rate": 1.5,
		"active": 1,
		"meta": {"nested": {"key": "deep"}},
		"created_at": "2024-05-06T10:00:00-04:00",
		"nothing": null
	}`))
	require.NoError(t, err)

	assert.Equal(t, "42", entity.ID())
	assert.Equal(t, "box", entity.String("name"))
	assert.Equal(t, 3, entity.Int("count"))
	assert.InDelta(t, 1.5, entity.Float("rate"), 0)
	assert.True(t, entity.Bool("active"))
	assert.Equal(t, "deep", entity.Get("meta.nested.key"))
	assert.Equal(t, time.Date(2024, 5, 6, 14, 0, 0, 0, time.UTC), entity.Time("created_at"))
	assert.True(t, entity.Has("nothing"))
	assert.True(t, entity.Missing("absent"))
	assert.Empty(t, entity.String("absent"))
}

func TestEntity_IDIsImmutable(t *testing.T) {
	t.Parallel()

	entity := alldressed.NewEntity(alldressed.Attributes{"id": "c1"})
	entity.Set("id", "c2")
	entity.Set("email", "jane@example.com")

	assert.Equal(t, "c1", entity.ID())
	assert.Equal(t, "jane@example.com", entity.String("email"))

	var empty alldressed.Entity
	empty.Set("id", "c3")
	assert.Equal(t, "c3", empty.ID())
}

func TestEntity_AttributesAreCopied(t *testing.T) {
	t.Parallel()

	attrs := alldressed.Attributes{"name": "box"}
	entity := alldressed.NewEntity(attrs)
	attrs["name"] = "changed"

	assert.Equal(t, "box", entity.String("name"))

	copied := entity.Attributes()
	copied["name"] = "changed"
	assert.Equal(t, "box", entity.String("name"))
}

func TestOrder_Hydration(t *testing.T) {
	t.Parallel()

	order, err := alldressed.Decode[alldressed.Order]([]byte(`{
		"id": "o1",
		"total": 4599,
		"shipping": {"line_1": "1 Main St", "city": "Montreal"},
		"billing": null,
		"customer": {"id": "c1", "currency": {"code": "cad"}},
		"currency": {"code": "cad", "symbol": "$"},
		"invoices": [{"id": "inv1", "lines": [{"id": "l1", "sellable": {"id": "pkg1", "type": "package", "name": "Box"}}]}]
	}`))
	require.NoError(t, err)

	assert.Equal(t, 4599, order.Int("total"))
	require.NotNil(t, order.Shipping)
	assert.Equal(t, "1 Main St", order.Shipping.Line1)
	assert.Nil(t, order.Billing)
	assert.True(t, order.Has("billing"))
	assert.Equal(t, "cad", order.Customer.Currency.Code())
	assert.Equal(t, "$", order.Currency.Symbol())

	require.Len(t, order.Invoices, 1)
	sellable := order.Invoices[0].Lines[0].Sellable
	require.NotNil(t, sellable.Package)
	assert.Equal(t, alldressed.SellableTypePackage, sellable.Type)
	assert.Equal(t, "pkg1", sellable.ID())
	assert.Equal(t, "Box", sellable.Package.Name())

	// relations are kept out of the attribute bag
	assert.NotContains(t, order.Attributes(), "customer")
}

func TestSellable_UnknownType(t *testing.T) {
	t.Parallel()

	var sellable alldressed.Sellable
	require.NoError(t, json.Unmarshal([]byte(`{"id":"x1","type":"voucher"}`), &sellable))

	assert.Nil(t, sellable.Product)
	assert.Nil(t, sellable.Package)
	require.NotNil(t, sellable.Raw)
	assert.Equal(t, "x1", sellable.ID())

	encoded, err := json.Marshal(sellable)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"x1","type":"voucher"}`, string(encoded))
}

func TestSubscription_RoundTrip(t *testing.T) {
	t.Parallel()

	raw := `{"id":"s1","frequency":2,"customer":{"id":"c1"},"discount":{"code":"WELCOME","values":[{"type":"percentage","value":10}]}}`

	subscription, err := alldressed.Decode[alldressed.Subscription]([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, alldressed.FrequencyBiweekly, subscription.Frequency())
	assert.Equal(t, alldressed.DiscountValueTypePercentage, subscription.Discount.Values[0].Type)

	encoded, err := json.Marshal(subscription)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(encoded))
}

func TestMenu_DatesInUTC(t *testing.T) {
	t.Parallel()

	menu, err := alldressed.Decode[alldressed.Menu]([]byte(`{
		"id": "m1",
		"date": "2024-05-06",
		"cutoff": "2024-05-02 23:59:00",
		"delivery_date": "2024-05-06T08:00:00+02:00"
	}`))
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC), menu.Date)
	assert.Equal(t, time.Date(2024, 5, 2, 23, 59, 0, 0, time.UTC), menu.CutOff)
	assert.Equal(t, time.Date(2024, 5, 6, 6, 0, 0, 0, time.UTC), menu.DeliveryDate)
	assert.Equal(t, menu.Date, menu.Time("date"))

	_, err = alldressed.Decode[alldressed.Menu]([]byte(`{"date":"next monday"}`))
	require.Error(t, err)
}

func TestDiscountValue_ToPayload(t *testing.T) {
	t.Parallel()

	currency, err := alldressed.Decode[alldressed.Currency]([]byte(`{"id":"cur1","code":"cad"}`))
	require.NoError(t, err)

	value := alldressed.NewDiscountValue(alldressed.DiscountValueTypeFixed, 500, currency)
	assert.Equal(t, alldressed.Attributes{"type": "fixed", "value": 500, "currency": "cur1"}, value.ToPayload())

	choice := alldressed.NewDiscountItemChoice("i1", 2)
	assert.Equal(t, alldressed.Attributes{"id": "i1", "quantity": 2}, choice.ToPayload())
	assert.Nil(t, alldressed.DiscountItemChoicesPayload(nil))
}

func TestLineItem_ToPayload(t *testing.T) {
	t.Parallel()

	assert.Equal(t, alldressed.Attributes{"id": "p1", "quantity": 1}, (&alldressed.LineItem{ID: "p1"}).ToPayload())
	assert.Equal(t, alldressed.Attributes{"id": "p1", "quantity": 3}, (&alldressed.LineItem{ID: "p1", Quantity: 3}).ToPayload())
	assert.Nil(t, alldressed.LineItemsPayload(nil))
}
