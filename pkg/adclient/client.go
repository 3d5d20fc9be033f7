// Package adclient provides the main entry point for creating All Dressed API clients
package adclient

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/all-dressed/alldressed-go/internal/client"
	"github.com/all-dressed/alldressed-go/pkg/alldressed"
)

// New creates a new All Dressed API client. The API base gets an https
// scheme when it has none. With Debug set and no Logger, logs go to the
// standard logrus logger at debug level.
func New(config *alldressed.Config) (alldressed.Client, error) {
	if config == nil {
		return nil, alldressed.ErrConfigRequired
	}

	normalized := *config
	normalized.APIBase = normalizeAPIBase(config.APIBase)

	if normalized.Debug && normalized.Logger == nil {
		logger := logrus.StandardLogger()
		logger.SetLevel(logrus.DebugLevel)

		normalized.Logger = NewLogrusLogger(logger)
	}

	c, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewFromEnv creates a client configured by the ALLDRESSED_* environment
// variables.
func NewFromEnv() (alldressed.Client, error) {
	config, err := alldressed.ConfigFromEnv()
	if err != nil {
		return nil, err
	}

	return New(config)
}

// NewWithKey creates a client for the account using the production API.
func NewWithKey(accountID, apiKey string) (alldressed.Client, error) {
	return New(&alldressed.Config{
		AccountID: accountID,
		APIKey:    apiKey,
	})
}

func normalizeAPIBase(apiBase string) string {
	apiBase = strings.TrimSuffix(strings.TrimSpace(apiBase), "/")
	if apiBase == "" {
		return alldressed.DefaultAPIBase
	}

	if !strings.HasPrefix(apiBase, "http://") && !strings.HasPrefix(apiBase, "https://") {
		apiBase = "https://" + apiBase
	}

	return apiBase
}
