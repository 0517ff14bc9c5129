package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewWorkspacesCommand creates the workspaces command group
func NewWorkspacesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "workspaces",
		Aliases: []string{"workspace", "ws"},
		Short:   "Manage workspaces",
		Long:    "List and inspect Postman workspaces",
	}

	cmd.AddCommand(newWorkspacesListCommand())
	cmd.AddCommand(newWorkspacesGetCommand())

	return cmd
}

func newWorkspacesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List workspaces",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			workspaces, err := client.Workspaces().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list workspaces: %w", err)
			}

			if handled, err := renderStructured(viper.GetString("output"), workspaces); handled {
				return err
			}

			if len(workspaces) == 0 {
				fmt.Println("No workspaces found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Type", "Visibility")

			for _, workspace := range workspaces {
				table.Append(workspace.ID, truncate(workspace.Name), workspace.Type, workspace.Visibility)
			}

			table.Render()

			return nil
		},
	}
}

func newWorkspacesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Get a workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			workspace, err := client.Workspaces().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get workspace: %w", err)
			}

			if handled, err := renderStructured(viper.GetString("output"), workspace); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("Name", workspace.Name)
			_ = table.Append("ID", workspace.ID)
			_ = table.Append("Type", workspace.Type)
			_ = table.Append("Visibility", workspace.Visibility)
			_ = table.Append("Description", truncate(workspace.Description))
			table.Render()

			return nil
		},
	}
}
