package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/all-dressed/alldressed-go/internal/constants"
)

// ConfigDirName is the directory under $HOME holding config.yml.
const ConfigDirName = ".alldressed"

// ErrUnknownConfigKey is returned by config set and unset for keys the CLI
// does not store.
var ErrUnknownConfigKey = errors.New("unknown configuration key")

// configKeys are the keys accepted by config set and unset.
var configKeys = []string{"account", "api_base", "api_key", "output", "skip_ssl_validation", "timeout", "retry_max"}

// Config is the content of config.yml.
type Config struct {
	Account           string        `json:"account,omitempty"             yaml:"account,omitempty"`
	APIBase           string        `json:"api_base,omitempty"            yaml:"api_base,omitempty"`
	APIKey            string        `json:"api_key,omitempty"             yaml:"api_key,omitempty"`
	Output            string        `json:"output,omitempty"              yaml:"output,omitempty"`
	SkipSSLValidation bool          `json:"skip_ssl_validation,omitempty" yaml:"skip_ssl_validation,omitempty"`
	Timeout           time.Duration `json:"timeout,omitempty"             yaml:"timeout,omitempty"`
	RetryMax          int           `json:"retry_max,omitempty"           yaml:"retry_max,omitempty"`
}

// NewConfigCommand creates the config command group
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage the account, API key and output settings of the CLI",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	cmd.AddCommand(newConfigClearCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration with the API key masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.APIKey = maskSecret(config.APIKey)

			out := cmd.OutOrStdout()

			format, err := outputFormat(out)
			if err != nil {
				return err
			}

			switch format {
			case OutputFormatJSON:
				return renderJSON(out, config)
			case OutputFormatYAML:
				encoder := yaml.NewEncoder(out)
				encoder.SetIndent(constants.DefaultIndent)

				return encoder.Encode(config)
			default:
				table := tablewriter.NewWriter(out)
				table.Header("Property", "Value")
				_ = table.Append("Account", config.Account)
				_ = table.Append("API Base", config.APIBase)
				_ = table.Append("API Key", config.APIKey)
				_ = table.Append("Output", config.Output)
				_ = table.Append("Skip SSL Validation", formatBool(config.SkipSSLValidation))
				_ = table.Append("Timeout", config.Timeout.String())
				_ = table.Append("Retry Max", formatInt(config.RetryMax))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long: "Set a configuration value. Keys: account, api_base, api_key, output, skip_ssl_validation, timeout, retry_max\n\n" +
			"Flags must come before KEY. Everything after KEY is taken as is, so values may start with a dash.",
		Example: "  alldressed config set retry_max 3\n  alldressed --debug config set api_key -sk_live\n  alldressed config set -- retry_max 0",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			config := loadConfig()
			if err := setConfigValue(config, key, value); err != nil {
				return err
			}

			if err := saveConfig(config); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", key)

			return nil
		},
	}

	// Values such as "-1" are arguments, not shorthand flags.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if !slices.Contains(configKeys, key) {
				return fmt.Errorf("%w: %s", ErrUnknownConfigKey, key)
			}

			config := loadConfig()
			if err := setConfigValue(config, key, ""); err != nil {
				return err
			}

			if err := saveConfig(config); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", key)

			return nil
		},
	}
}

func newConfigClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear configuration",
		Long:  "Remove the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile, err := configFilePath()
			if err != nil {
				return err
			}

			if err := os.Remove(configFile); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to remove config file: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cleared all configuration")

			return nil
		},
	}
}

func loadConfig() *Config {
	return &Config{
		Account:           viper.GetString("account"),
		APIBase:           viper.GetString("api_base"),
		APIKey:            viper.GetString("api_key"),
		Output:            viper.GetString("output"),
		SkipSSLValidation: viper.GetBool("skip_ssl_validation"),
		Timeout:           viper.GetDuration("timeout"),
		RetryMax:          viper.GetInt("retry_max"),
	}
}

// setConfigValue stores value at key. An empty value resets the key.
func setConfigValue(config *Config, key, value string) error {
	switch key {
	case "account":
		config.Account = value
	case "api_base":
		config.APIBase = value
	case "api_key":
		config.APIKey = value
	case "output":
		if value != "" && value != OutputFormatTable && value != OutputFormatJSON && value != OutputFormatYAML {
			return fmt.Errorf("%w: %q", ErrUnknownOutputFormat, value)
		}

		config.Output = value
	case "skip_ssl_validation":
		if value == "" {
			config.SkipSSLValidation = false

			return nil
		}

		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}

		config.SkipSSLValidation = parsed
	case "timeout":
		if value == "" {
			config.Timeout = 0

			return nil
		}

		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}

		config.Timeout = parsed
	case "retry_max":
		if value == "" {
			config.RetryMax = 0

			return nil
		}

		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < 0 {
			return fmt.Errorf("invalid value for %s: %q", key, value)
		}

		config.RetryMax = parsed
	default:
		return fmt.Errorf("%w: %s", ErrUnknownConfigKey, key)
	}

	viper.Set(key, value)

	return nil
}

func configFilePath() (string, error) {
	if configFile := viper.ConfigFileUsed(); configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ConfigDirName, "config.yml"), nil
}

func saveConfig(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configFile, data, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// maskSecret keeps the last four characters of secret.
func maskSecret(secret string) string {
	const visible = 4

	if secret == "" {
		return ""
	}

	if len(secret) <= visible {
		return "****"
	}

	return "****" + secret[len(secret)-visible:]
}
