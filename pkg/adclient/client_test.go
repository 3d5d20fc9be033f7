package adclient_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/all-dressed/alldressed-go/pkg/adclient"
	"github.com/all-dressed/alldressed-go/pkg/alldressed"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires a config", func(t *testing.T) {
		t.Parallel()

		_, err := adclient.New(nil)
		require.ErrorIs(t, err, alldressed.ErrConfigRequired)
	})

	t.Run("requires an API key", func(t *testing.T) {
		t.Parallel()

		_, err := adclient.New(&alldressed.Config{AccountID: "acc"})
		require.ErrorIs(t, err, alldressed.ErrMissingAPIKey)
	})

	t.Run("creates client with key", func(t *testing.T) {
		t.Parallel()

		client, err := adclient.NewWithKey("acc", "secret")
		require.NoError(t, err)
		assert.Equal(t, "acc", client.AccountID())
		assert.Equal(t, "other", client.WithAccount("other").AccountID())
	})

	t.Run("does not modify the config", func(t *testing.T) {
		t.Parallel()

		config := &alldressed.Config{APIBase: "api.test/", APIKey: "secret"}

		_, err := adclient.New(config)
		require.NoError(t, err)
		assert.Equal(t, "api.test/", config.APIBase)
	})
}

func TestClientIntegration(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/accounts/acc/zones/H0H0H0":
			assert.Equal(t, "Bearer secret", request.Header.Get("Authorization"))
			_ = json.NewEncoder(writer).Encode(map[string]any{"data": map[string]any{"id": "z1", "name": "Montreal"}})
		default:
			writer.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(writer).Encode(map[string]any{"message": "Not Found"})
		}
	}))
	defer server.Close()

	var logs bytes.Buffer

	logger := logrus.New()
	logger.SetOutput(&logs)
	logger.SetLevel(logrus.DebugLevel)

	client, err := adclient.New(&alldressed.Config{
		AccountID: "acc",
		APIBase:   server.URL + "/",
		APIKey:    "secret",
		Debug:     true,
		Logger:    adclient.NewLogrusLogger(logger),
	})
	require.NoError(t, err)

	zone, err := client.Zones().Find(context.Background(), "H0H0H0")
	require.NoError(t, err)
	assert.Equal(t, "Montreal", zone.Name())
	assert.Contains(t, logs.String(), "HTTP Request")

	_, err = client.Zones().Find(context.Background(), "A1A1A1")
	require.ErrorIs(t, err, alldressed.ErrZoneNotFound)
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("ALLDRESSED_API_KEY", "secret")
	t.Setenv("ALLDRESSED_ACCOUNT_ID", "acc")

	client, err := adclient.NewFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "acc", client.AccountID())

	t.Setenv("ALLDRESSED_API_KEY", "")

	_, err = adclient.NewFromEnv()
	require.ErrorIs(t, err, alldressed.ErrMissingAPIKey)
}

func TestLogrusLogger(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer

	logger := logrus.New()
	logger.SetOutput(&logs)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.InfoLevel)

	adapter := adclient.NewLogrusLogger(logger)
	adapter.Debug("hidden", nil)
	adapter.Warn("getting zones failed", map[string]interface{}{"account": "acc"})

	assert.NotContains(t, logs.String(), "hidden")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
	assert.Equal(t, "warning", entry["level"])
	assert.Equal(t, "getting zones failed", entry["msg"])
	assert.Equal(t, "acc", entry["account"])
}
