package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/all-dressed/alldressed-go/internal/http"
	"github.com/all-dressed/alldressed-go/pkg/alldressed"
)

const testAccount = "acc"

// NewTestClient returns a client answering from fake.
func NewTestClient(t *testing.T, fake *internalhttp.FakeTransport) *Client {
	t.Helper()

	client, err := New(&alldressed.Config{
		AccountID: testAccount,
		APIBase:   "https://api.test",
		APIKey:    "secret",
	}, internalhttp.WithTransport(fake))
	require.NoError(t, err)

	return client
}

// NewTestServer returns a client talking to an httptest server whose routes
// are mounted under /accounts/acc.
func NewTestServer(t *testing.T, routes func(r chi.Router)) *Client {
	t.Helper()

	router := chi.NewRouter()
	router.Route("/accounts/"+testAccount, routes)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	client, err := New(&alldressed.Config{
		AccountID: testAccount,
		APIBase:   server.URL,
		APIKey:    "secret",
	})
	require.NoError(t, err)

	return client
}

// writeJSON writes body with status.
func writeJSON(t *testing.T, writer http.ResponseWriter, status int, body any) {
	t.Helper()

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)

	if body != nil {
		assert.NoError(t, json.NewEncoder(writer).Encode(body))
	}
}

// readJSON decodes the request body.
func readJSON(t *testing.T, request *http.Request) map[string]any {
	t.Helper()

	raw, err := io.ReadAll(request.Body)
	require.NoError(t, err)

	var body map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &body))
	}

	return body
}

// TestGetOperation represents a lookup that must hit ExpectedPath.
type TestGetOperation[T any] struct {
	Name         string
	ID           string
	ExpectedPath string
	StatusCode   int
	Response     any
	WantErr      error
}

// RunGetTests runs a series of lookups against a fake transport.
func RunGetTests[T any](
	t *testing.T,
	tests []TestGetOperation[T],
	find func(*Client) func(context.Context, string) (*T, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			status := testCase.StatusCode
			if status == 0 {
				status = http.StatusOK
			}

			fake := internalhttp.NewFakeTransport().Fake(testCase.ExpectedPath, internalhttp.FakeResponse{
				StatusCode: status,
				Body:       testCase.Response,
			})

			result, err := find(NewTestClient(t, fake))(context.Background(), testCase.ID)

			requests := fake.Requests()
			require.Len(t, requests, 1)
			assert.Equal(t, http.MethodGet, requests[0].Method)
			assert.Equal(t, testCase.ExpectedPath, requests[0].Path)

			if testCase.WantErr != nil {
				require.ErrorIs(t, err, testCase.WantErr)
				assert.Nil(t, result)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
		})
	}
}

// notFoundBody is the body the API sends with a 404.
var notFoundBody = map[string]any{"message": "Not Found"}
