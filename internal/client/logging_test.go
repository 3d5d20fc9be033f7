package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/all-dressed/alldressed-go/internal/http"
	"github.com/all-dressed/alldressed-go/pkg/alldressed"
)

type mockLogger struct {
	mock.Mock
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.Called(msg, fields) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.Called(msg, fields) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.Called(msg, fields) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.Called(msg, fields) }

func newLoggedClient(t *testing.T, logger alldressed.Logger, fake *internalhttp.FakeTransport) *Client {
	t.Helper()

	client, err := New(&alldressed.Config{
		AccountID: testAccount,
		APIBase:   "https://api.test",
		APIKey:    "secret",
		Logger:    logger,
	}, internalhttp.WithTransport(fake))
	require.NoError(t, err)

	return client
}

func TestBuilder_LogsEndpointAndFailure(t *testing.T) {
	t.Parallel()

	logger := &mockLogger{}
	logger.On("Debug", "getting zones", map[string]interface{}{
		"account":  testAccount,
		"endpoint": "zones/X1X1X1",
	}).Once()
	logger.On("Error", "getting zones failed", mock.MatchedBy(func(fields map[string]interface{}) bool {
		return fields["account"] == testAccount &&
			fields["endpoint"] == "zones/X1X1X1" &&
			fields["error"] != ""
	})).Once()

	fake := internalhttp.NewFakeTransport().
		Fake("zones/*", internalhttp.FakeResponse{StatusCode: http.StatusNotFound, Body: map[string]any{"message": "No zone"}})

	_, err := newLoggedClient(t, logger, fake).Zones().ForPostcode("X1X1X1").Get(context.Background())
	require.Error(t, err)

	logger.AssertExpectations(t)
}

func TestBuilder_DoesNotLogErrorsOnSuccess(t *testing.T) {
	t.Parallel()

	logger := &mockLogger{}
	logger.On("Debug", "getting tags", mock.Anything).Once()

	fake := internalhttp.NewFakeTransport().FakeJSON("tags", map[string]any{"data": []any{}})

	tags, err := newLoggedClient(t, logger, fake).Tags().Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tags)

	logger.AssertExpectations(t)
	logger.AssertNotCalled(t, "Error", mock.Anything, mock.Anything)
}
