package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/postlane-io/postman-client/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config is the CLI configuration persisted to ~/.postman-cli/config.yml.
type Config struct {
	APIKey    string `json:"api_key,omitempty"   yaml:"api_key,omitempty"`
	Workspace string `json:"workspace,omitempty" yaml:"workspace,omitempty"`
	BaseURL   string `json:"base_url,omitempty"  yaml:"base_url,omitempty"`
	Output    string `json:"output,omitempty"    yaml:"output,omitempty"`
}

// loadConfig builds the effective configuration from viper (flags, config
// file, environment).
func loadConfig() *Config {
	return &Config{
		APIKey:    viper.GetString("api_key"),
		Workspace: viper.GetString("workspace"),
		BaseURL:   viper.GetString("base_url"),
		Output:    viper.GetString("output"),
	}
}

// configFilePath returns the config file in use, defaulting to
// ~/.postman-cli/config.yml.
func configFilePath() (string, error) {
	if configFile := viper.ConfigFileUsed(); configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	configDir := filepath.Join(home, ".postman-cli")

	err = os.MkdirAll(configDir, 0700)
	if err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(configDir, "config.yml"), nil
}

// saveConfig writes the configuration to disk. The file holds the API key,
// so it is not world readable.
func saveConfig(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(configFile, data, 0600)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// NewConfigCommand creates the config command group
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "View and modify the persisted CLI configuration",
	}

	cmd.AddCommand(newConfigViewCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigViewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			apiKey := constants.NotAvailable
			if config.APIKey != "" {
				apiKey = maskAPIKey(config.APIKey)
			}

			workspace := config.Workspace
			if workspace == "" {
				workspace = constants.NotAvailable
			}

			baseURL := config.BaseURL
			if baseURL == "" {
				baseURL = "https://api.getpostman.com"
			}

			if handled, err := renderStructured(viper.GetString("output"), config); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Setting", "Value")
			_ = table.Append("API Key", apiKey)
			_ = table.Append("Workspace", workspace)
			_ = table.Append("Base URL", baseURL)
			_ = table.Append("Output", config.Output)
			_ = table.Render()

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Keys: workspace, base_url, output",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			config := loadConfig()

			switch key {
			case "workspace":
				config.Workspace = value
			case "base_url":
				config.BaseURL = value
			case "output":
				if value != constants.FormatTable && value != constants.FormatJSON && value != constants.FormatYAML {
					return fmt.Errorf("%w: %s", constants.ErrInvalidOutputFormat, value)
				}

				config.Output = value
			default:
				return fmt.Errorf("unknown config key %q, use 'postman login' to set the API key", key)
			}

			err := saveConfig(config)
			if err != nil {
				return err
			}

			fmt.Printf("Set %s to %s\n", key, value)

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Clear a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			config := loadConfig()

			switch key {
			case "workspace":
				config.Workspace = ""
			case "base_url":
				config.BaseURL = ""
			case "output":
				config.Output = constants.FormatTable
			default:
				return fmt.Errorf("unknown config key %q", key)
			}

			err := saveConfig(config)
			if err != nil {
				return err
			}

			fmt.Printf("Unset %s\n", key)

			return nil
		},
	}
}

// maskAPIKey shows only the prefix and last four characters of a key.
func maskAPIKey(apiKey string) string {
	if len(apiKey) <= 9 {
		return constants.MaskedSecret
	}

	return apiKey[:5] + "..." + apiKey[len(apiKey)-4:]
}
