package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/all-dressed/alldressed-go/pkg/adtest"
	"github.com/all-dressed/alldressed-go/pkg/alldressed"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

// setupFakeClient makes every command talk to the returned fake and writes
// the config to a temporary file. Commands share viper and the client
// factory, so tests using it must not run in parallel.
func setupFakeClient(t *testing.T, output string) *adtest.Fake {
	t.Helper()

	cli, fake := adtest.New(t, "acc")

	previous := clientFactory
	clientFactory = func(*alldressed.Config) (alldressed.Client, error) {
		return cli, nil
	}

	viper.Reset()
	viper.SetConfigFile(filepath.Join(t.TempDir(), "config.yml"))
	viper.Set("account", "acc")
	viper.Set("api_key", "secret")
	viper.Set("output", output)

	t.Cleanup(func() {
		clientFactory = previous

		viper.Reset()
	})

	return fake
}

// execute runs cmd with args and returns what it wrote.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}
