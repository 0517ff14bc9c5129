package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/postlane-io/postman-client/pkg/postman"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewAPIsCommand creates the apis command group
func NewAPIsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "apis",
		Aliases: []string{"api"},
		Short:   "Manage API definitions",
		Long:    "List and manage Postman API definitions, versions, and schemas",
	}

	cmd.AddCommand(newAPIsListCommand())
	cmd.AddCommand(newAPIsGetCommand())
	cmd.AddCommand(newAPIsCreateCommand())
	cmd.AddCommand(newAPIsUpdateCommand())
	cmd.AddCommand(newAPIsDeleteCommand())
	cmd.AddCommand(newAPIsVersionsCommand())
	cmd.AddCommand(newAPIsSchemasCommand())

	return cmd
}

func newAPIsListCommand() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List API definitions",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			apis, err := client.APIs().List(context.Background(), workspace)
			if err != nil {
				return fmt.Errorf("failed to list APIs: %w", err)
			}

			if handled, err := renderStructured(viper.GetString("output"), apis); handled {
				return err
			}

			if len(apis) == 0 {
				fmt.Println("No APIs found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Summary", "Updated")

			for _, api := range apis {
				table.Append(api.ID, truncate(api.Name), truncate(api.Summary), formatTime(api.UpdatedAt))
			}

			table.Render()

			return nil
		},
	}

	cmd.Flags().StringVar(&workspace, "workspace", "", "workspace ID to scope the list")

	return cmd
}

func newAPIsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Get an API definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			api, err := client.APIs().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get API: %w", err)
			}

			if handled, err := renderStructured(viper.GetString("output"), api); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("Name", api.Name)
			_ = table.Append("ID", api.ID)
			_ = table.Append("Summary", api.Summary)
			_ = table.Append("Description", truncate(api.Description))
			_ = table.Append("Created By", api.CreatedBy)
			_ = table.Append("Updated", formatTime(api.UpdatedAt))
			table.Render()

			return nil
		},
	}
}

func newAPIsCreateCommand() *cobra.Command {
	var (
		workspace   string
		summary     string
		description string
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create an API definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			request := &postman.APICreateRequest{
				Name:        args[0],
				Summary:     summary,
				Description: description,
			}

			api, err := client.APIs().Create(context.Background(), workspace, request)
			if err != nil {
				return fmt.Errorf("failed to create API: %w", err)
			}

			fmt.Printf("Created API '%s' (%s)\n", api.Name, api.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&workspace, "workspace", "", "workspace ID to create in")
	cmd.Flags().StringVar(&summary, "summary", "", "short summary")
	cmd.Flags().StringVar(&description, "description", "", "long description")

	return cmd
}

func newAPIsUpdateCommand() *cobra.Command {
	var (
		name        string
		summary     string
		description string
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update an API definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			request := &postman.APICreateRequest{
				Name:        name,
				Summary:     summary,
				Description: description,
			}

			api, err := client.APIs().Update(context.Background(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to update API: %w", err)
			}

			fmt.Printf("Updated API '%s'\n", api.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new API name")
	cmd.Flags().StringVar(&summary, "summary", "", "short summary")
	cmd.Flags().StringVar(&description, "description", "", "long description")

	return cmd
}

func newAPIsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an API definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			err = client.APIs().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete API: %w", err)
			}

			fmt.Printf("Deleted API %s\n", args[0])

			return nil
		},
	}
}

func newAPIsVersionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "versions ID [VERSION_ID]",
		Short: "List or show API versions",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			if len(args) == 2 {
				version, err := client.APIs().Version(context.Background(), args[0], args[1])
				if err != nil {
					return fmt.Errorf("failed to get API version: %w", err)
				}

				if handled, err := renderStructured(viper.GetString("output"), version); handled {
					return err
				}

				fmt.Printf("%s (%s), created %s\n", version.Name, version.ID, formatTime(version.CreatedAt))

				return nil
			}

			versions, err := client.APIs().Versions(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list API versions: %w", err)
			}

			if handled, err := renderStructured(viper.GetString("output"), versions); handled {
				return err
			}

			if len(versions) == 0 {
				fmt.Println("No versions found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Created")

			for _, version := range versions {
				table.Append(version.ID, version.Name, formatTime(version.CreatedAt))
			}

			table.Render()

			return nil
		},
	}
}

func newAPIsSchemasCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schemas ID VERSION_ID",
		Short: "List schemas of an API version",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			schemas, err := client.APIs().Schemas(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to list schemas: %w", err)
			}

			if handled, err := renderStructured(viper.GetString("output"), schemas); handled {
				return err
			}

			if len(schemas) == 0 {
				fmt.Println("No schemas found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Type", "Language")

			for _, schema := range schemas {
				table.Append(schema.ID, schema.Type, schema.Language)
			}

			table.Render()

			return nil
		},
	}
}
