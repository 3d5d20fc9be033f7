package client

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/all-dressed/alldressed-go/internal/http"
	"github.com/all-dressed/alldressed-go/pkg/alldressed"
)

func TestMenuBuilder_Get(t *testing.T) {
	t.Parallel()

	fake := internalhttp.NewFakeTransport().FakeJSON("subscriptions/s1/menus", map[string]any{
		"data": []any{map[string]any{
			"id":            "m1",
			"date":          "2024-05-06",
			"cutoff":        "2024-05-02T23:59:00-04:00",
			"delivery_date": "2024-05-06T00:00:00Z",
			"skipped":       true,
		}},
	})

	menus, err := NewTestClient(t, fake).Menus().ForSubscription("s1").Get(context.Background())
	require.NoError(t, err)
	require.Len(t, menus, 1)

	assert.Equal(t, time.Date(2024, 5, 3, 3, 59, 0, 0, time.UTC), menus[0].CutOff)
	assert.Equal(t, time.UTC, menus[0].Date.Location())
	assert.True(t, menus[0].IsSkipped())
}

func TestMenuBuilder_RequiresContext(t *testing.T) {
	t.Parallel()

	fake := internalhttp.NewFakeTransport()
	client := NewTestClient(t, fake)

	_, err := client.Menus().Get(context.Background())
	require.ErrorIs(t, err, alldressed.ErrMissingSubscription)

	require.ErrorIs(t, client.Menus().For("m1").Skip(context.Background()), alldressed.ErrMissingSubscription)
	require.ErrorIs(t, client.Menus().ForSubscription("s1").Unskip(context.Background()), alldressed.ErrMissingMenu)

	_, err = client.Menus().Copy(context.Background(), time.Now(), time.Now())
	require.ErrorIs(t, err, alldressed.ErrMissingMenu)

	assert.Empty(t, fake.Requests())
}

func TestMenuBuilder_SkipAndUnskip(t *testing.T) {
	t.Parallel()

	fake := internalhttp.NewFakeTransport().
		Fake("POST subscriptions/s1/m1/skip", internalhttp.FakeResponse{StatusCode: http.StatusNoContent}).
		Fake("POST subscriptions/s1/m1/unskip", internalhttp.FakeResponse{StatusCode: http.StatusNoContent})
	client := NewTestClient(t, fake)

	require.NoError(t, client.Menus().ForSubscription("s1").For("m1").Skip(context.Background()))
	require.NoError(t, client.Menus().ForSubscription("s1").For("m1").Unskip(context.Background()))

	requests := fake.Requests()
	require.Len(t, requests, 2)
	assert.Equal(t, "subscriptions/s1/m1/skip", requests[0].Path)
	assert.Equal(t, "subscriptions/s1/m1/unskip", requests[1].Path)
}

func TestMenuBuilder_Copy(t *testing.T) {
	t.Parallel()

	fake := internalhttp.NewFakeTransport().FakeJSON("POST menus/m1/copy", map[string]any{
		"data": map[string]any{"id": "m2", "date": "2024-05-13"},
	})

	from := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	menu, err := NewTestClient(t, fake).Menus().For("m1").Copy(context.Background(), from, to)
	require.NoError(t, err)
	assert.Equal(t, "m2", menu.ID())
	assert.Equal(t, to, menu.Date)

	body := fake.Requests()[0].JSON()
	assert.Equal(t, "2024-05-06T00:00:00Z", body["from"])
	assert.Equal(t, "2024-05-13T00:00:00Z", body["to"])
}
