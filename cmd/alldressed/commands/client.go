package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/all-dressed/alldressed-go/pkg/adclient"
	"github.com/all-dressed/alldressed-go/pkg/alldressed"
)

var (
	// ErrNoAPIKeyConfigured is returned when neither the flags, the
	// environment nor the config file hold an API key.
	ErrNoAPIKeyConfigured = errors.New("no API key configured, use 'alldressed login' first")
	// ErrNoAccountConfigured is returned when no account is selected.
	ErrNoAccountConfigured = errors.New("no account configured, use --account or 'alldressed config set account'")
)

// clientFactory builds the client of every command. Tests replace it.
var clientFactory = adclient.New

// CreateClient creates a client from the flags, the ALLDRESSED_* environment
// and the config file, in that order of precedence.
func CreateClient() (alldressed.Client, error) {
	config := loadConfig()

	if config.APIKey == "" {
		return nil, ErrNoAPIKeyConfigured
	}

	if config.Account == "" {
		return nil, ErrNoAccountConfigured
	}

	clientConfig := &alldressed.Config{
		AccountID:     config.Account,
		APIBase:       config.APIBase,
		APIKey:        config.APIKey,
		Debug:         viper.GetBool("debug"),
		SkipTLSVerify: config.SkipSSLValidation,
		Timeout:       config.Timeout,
		RetryMax:      config.RetryMax,
	}

	if clientConfig.Debug || viper.GetBool("verbose") {
		clientConfig.Logger = newLogger()
	}

	client, err := clientFactory(clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// newLogger logs to stderr so that it never mixes with json or yaml output.
func newLogger() alldressed.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.DebugLevel)

	return adclient.NewLogrusLogger(logger)
}
