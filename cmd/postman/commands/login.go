package commands

import (
	"context"
	"fmt"
	"strings"
	"syscall"

	"github.com/postlane-io/postman-client/internal/constants"
	"github.com/postlane-io/postman-client/pkg/postman"
	"github.com/postlane-io/postman-client/pkg/postmanclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var apiKey string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with the Postman API",
		Long:  "Verify a Postman API key and persist it for later commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiKey == "" {
				apiKey = viper.GetString("api_key")
			}

			if apiKey == "" {
				fmt.Print("API key: ")
				byteKey, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read API key: %w", err)
				}

				apiKey = strings.TrimSpace(string(byteKey))

				fmt.Println()
			}

			if apiKey == "" {
				return constants.ErrEmptyAPIKey
			}

			config := &postman.Config{
				APIKey:      apiKey,
				BaseURL:     viper.GetString("base_url"),
				WorkspaceID: viper.GetString("workspace"),
			}

			client, err := postmanclient.New(context.Background(), config)
			if err != nil {
				return err
			}

			// Verify the key against the API before persisting it
			workspaces, err := client.Workspaces().List(context.Background())
			if err != nil {
				if postman.IsAuthentication(err) {
					return fmt.Errorf("API key was rejected: %w", err)
				}

				return fmt.Errorf("failed to verify API key: %w", err)
			}

			cliConfig := loadConfig()
			cliConfig.APIKey = apiKey

			err = saveConfig(cliConfig)
			if err != nil {
				return err
			}

			fmt.Printf("Logged in. You have access to %d workspace(s).\n", len(workspaces))

			return nil
		},
	}

	cmd.Flags().StringVar(&apiKey, "with-key", "", "API key (prompted when omitted)")

	return cmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored API key",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.APIKey = ""

			err := saveConfig(config)
			if err != nil {
				return err
			}

			fmt.Println("Logged out")

			return nil
		},
	}
}
