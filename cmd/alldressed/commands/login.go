package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// readSecret reads the API key without echo. Tests replace it.
var readSecret = func() ([]byte, error) {
	return term.ReadPassword(int(os.Stdin.Fd()))
}

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Store credentials for an account",
		Long:  "Verify an API key against an account and store both in the config file. Missing values are prompted for.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			reader := bufio.NewReader(cmd.InOrStdin())

			account := viper.GetString("account")
			if account == "" {
				_, _ = fmt.Fprint(out, "Account: ")
				account = readLine(reader)
			}

			if account == "" {
				return ErrNoAccountConfigured
			}

			apiKey := viper.GetString("api_key")
			if apiKey == "" {
				_, _ = fmt.Fprint(out, "API key: ")

				secret, err := readSecret()
				if err != nil {
					return fmt.Errorf("failed to read API key: %w", err)
				}

				_, _ = fmt.Fprintln(out)
				apiKey = strings.TrimSpace(string(secret))
			}

			if apiKey == "" {
				return ErrNoAPIKeyConfigured
			}

			viper.Set("account", account)
			viper.Set("api_key", apiKey)

			client, err := CreateClient()
			if err != nil {
				return err
			}

			// Verify the key with an authenticated read.
			if _, err := client.Tags().Get(context.Background()); err != nil {
				return fmt.Errorf("failed to connect to API: %w", err)
			}

			if err := saveConfig(loadConfig()); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(out, "Logged in to account %s\n", account)

			return nil
		},
	}
}

func readLine(reader *bufio.Reader) string {
	line, _ := reader.ReadString('\n')

	return strings.TrimSpace(line)
}
