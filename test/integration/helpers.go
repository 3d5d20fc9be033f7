//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/all-dressed/alldressed-go/pkg/adclient"
	"github.com/all-dressed/alldressed-go/pkg/alldressed"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	Account    string
	APIKey     string
	APIBase    string
	Postcode   string
	Customer   string
	BinaryPath string
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		Account:    os.Getenv("ALLDRESSED_ACCOUNT_ID"),
		APIKey:     os.Getenv("ALLDRESSED_API_KEY"),
		APIBase:    os.Getenv("ALLDRESSED_API_BASE"),
		Postcode:   os.Getenv("ALLDRESSED_TEST_POSTCODE"),
		Customer:   os.Getenv("ALLDRESSED_TEST_CUSTOMER"),
		BinaryPath: getBinaryPath(),
	}
}

// getBinaryPath determines the path to the alldressed binary
func getBinaryPath() string {
	if path := os.Getenv("ALLDRESSED_BINARY_PATH"); path != "" {
		return path
	}

	for _, candidate := range []string{"../../alldressed", "./alldressed"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "alldressed"
}

// SkipIfMissingConfig skips test if the sandbox account is not configured
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.APIKey == "" || config.Account == "" {
		t.Skip("ALLDRESSED_API_KEY or ALLDRESSED_ACCOUNT_ID not set, skipping integration test")
	}
}

// SkipIfMissingBinary skips test if the CLI has not been built
func (config *TestConfig) SkipIfMissingBinary(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath(config.BinaryPath); err != nil {
		t.Skipf("alldressed binary not found at %s, skipping integration test", config.BinaryPath)
	}
}

// NewClient creates a client for the sandbox account
func (config *TestConfig) NewClient(t *testing.T) alldressed.Client {
	t.Helper()

	client, err := adclient.New(&alldressed.Config{
		AccountID: config.Account,
		APIKey:    config.APIKey,
		APIBase:   config.APIBase,
		Timeout:   30 * time.Second,
		RetryMax:  2,
	})
	require.NoError(t, err)

	return client
}

// Run executes the CLI with the sandbox credentials and json output
func (config *TestConfig) Run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	args = append(args, "--output", "json")

	// #nosec G204 -- test binary from the environment
	cmd := exec.Command(config.BinaryPath, args...)
	cmd.Env = append(os.Environ(),
		"ALLDRESSED_ACCOUNT="+config.Account,
		"ALLDRESSED_API_KEY="+config.APIKey,
		"ALLDRESSED_API_BASE="+config.APIBase,
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	return stdout.String(), stderr.String(), err
}

// AssertJSONOutput checks that output is valid JSON
func AssertJSONOutput(t *testing.T, output string) {
	t.Helper()

	var decoded any
	require.NoError(t, json.Unmarshal([]byte(output), &decoded), "output is not JSON: %s", output)
}
