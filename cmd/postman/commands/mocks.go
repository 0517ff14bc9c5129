package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/postlane-io/postman-client/internal/constants"
	"github.com/postlane-io/postman-client/pkg/postman"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewMocksCommand creates the mocks command group
func NewMocksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "mocks",
		Aliases: []string{"mock"},
		Short:   "Manage mock servers",
		Long:    "List and manage Postman mock servers",
	}

	cmd.AddCommand(newMocksListCommand())
	cmd.AddCommand(newMocksGetCommand())
	cmd.AddCommand(newMocksCreateCommand())
	cmd.AddCommand(newMocksUpdateCommand())
	cmd.AddCommand(newMocksDeleteCommand())

	return cmd
}

func newMocksListCommand() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List mock servers",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			mocks, err := client.Mocks().List(context.Background(), workspace)
			if err != nil {
				return fmt.Errorf("failed to list mocks: %w", err)
			}

			if handled, err := renderStructured(viper.GetString("output"), mocks); handled {
				return err
			}

			if len(mocks) == 0 {
				fmt.Println("No mock servers found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "URL", "Private")

			for _, mock := range mocks {
				table.Append(mock.ID, truncate(mock.Name), mock.MockURL, yesNo(mock.Private))
			}

			table.Render()

			return nil
		},
	}

	cmd.Flags().StringVar(&workspace, "workspace", "", "workspace ID to scope the list")

	return cmd
}

func newMocksGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Get a mock server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			mock, err := client.Mocks().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get mock: %w", err)
			}

			if handled, err := renderStructured(viper.GetString("output"), mock); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("Name", mock.Name)
			_ = table.Append("ID", mock.ID)
			_ = table.Append("URL", mock.MockURL)
			_ = table.Append("Collection", mock.CollectionUID)
			_ = table.Append("Environment", mock.EnvironmentUID)
			_ = table.Append("Private", yesNo(mock.Private))
			table.Render()

			return nil
		},
	}
}

func newMocksCreateCommand() *cobra.Command {
	var (
		collection  string
		environment string
		private     bool
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a mock server",
		Long:  "Create a mock server backed by a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if collection == "" {
				return constants.ErrCollectionRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			request := &postman.MockCreateRequest{
				Name:           args[0],
				CollectionUID:  collection,
				EnvironmentUID: environment,
				Private:        private,
			}

			mock, err := client.Mocks().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create mock: %w", err)
			}

			fmt.Printf("Created mock server '%s' at %s\n", mock.Name, mock.MockURL)

			return nil
		},
	}

	cmd.Flags().StringVar(&collection, "collection", "", "collection UID to serve")
	cmd.Flags().StringVar(&environment, "environment", "", "environment UID to resolve variables with")
	cmd.Flags().BoolVar(&private, "private", false, "require the API key for mock calls")

	return cmd
}

func newMocksUpdateCommand() *cobra.Command {
	var (
		name        string
		collection  string
		environment string
		private     bool
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a mock server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			request := &postman.MockCreateRequest{
				Name:           name,
				CollectionUID:  collection,
				EnvironmentUID: environment,
				Private:        private,
			}

			mock, err := client.Mocks().Update(context.Background(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to update mock: %w", err)
			}

			fmt.Printf("Updated mock server '%s'\n", mock.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new mock name")
	cmd.Flags().StringVar(&collection, "collection", "", "collection UID to serve")
	cmd.Flags().StringVar(&environment, "environment", "", "environment UID to resolve variables with")
	cmd.Flags().BoolVar(&private, "private", false, "require the API key for mock calls")

	return cmd
}

func newMocksDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a mock server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			err = client.Mocks().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete mock: %w", err)
			}

			fmt.Printf("Deleted mock server %s\n", args[0])

			return nil
		},
	}
}
