package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/postlane-io/postman-client/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewEnvironmentsCommand creates the environments command group
func NewEnvironmentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "environments",
		Aliases: []string{"environment", "env"},
		Short:   "Manage environments",
		Long:    "List and manage Postman environments and their variables",
	}

	cmd.AddCommand(newEnvironmentsListCommand())
	cmd.AddCommand(newEnvironmentsGetCommand())
	cmd.AddCommand(newEnvironmentsCreateCommand())
	cmd.AddCommand(newEnvironmentsUpdateCommand())
	cmd.AddCommand(newEnvironmentsDeleteCommand())
	cmd.AddCommand(newEnvironmentsDuplicateCommand())

	return cmd
}

// parseVariables splits repeated KEY=VALUE flags into a map.
func parseVariables(pairs []string) (map[string]string, error) {
	values := make(map[string]string, len(pairs))

	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid variable %q, expected KEY=VALUE", pair)
		}

		values[key] = value
	}

	return values, nil
}

func newEnvironmentsListCommand() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List environments",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			environments, err := client.Environments().List(context.Background(), workspace)
			if err != nil {
				return fmt.Errorf("failed to list environments: %w", err)
			}

			if handled, err := renderStructured(viper.GetString("output"), environments); handled {
				return err
			}

			if len(environments) == 0 {
				fmt.Println("No environments found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("UID", "Name", "Updated")

			for _, environment := range environments {
				table.Append(environment.UID, truncate(environment.Name), formatTime(environment.UpdatedAt))
			}

			table.Render()

			return nil
		},
	}

	cmd.Flags().StringVar(&workspace, "workspace", "", "workspace ID to scope the list")

	return cmd
}

func newEnvironmentsGetCommand() *cobra.Command {
	var showSecrets bool

	cmd := &cobra.Command{
		Use:   "get UID",
		Short: "Get an environment",
		Long:  "Fetch an environment and its variables. Secret values are masked unless --show-secrets is set.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			environment, err := client.Environments().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get environment: %w", err)
			}

			if handled, err := renderStructured(viper.GetString("output"), environment); handled {
				return err
			}

			fmt.Printf("Environment: %s (%s)\n\n", environment.Name, environment.UID)

			if len(environment.Values) == 0 {
				fmt.Println("No variables")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Key", "Value", "Type", "Enabled")

			for _, value := range environment.Values {
				display := displayValue(value)
				if showSecrets {
					display = value.Value
				}

				table.Append(value.Key, truncate(display), value.Type, yesNo(value.Enabled))
			}

			table.Render()

			return nil
		},
	}

	cmd.Flags().BoolVar(&showSecrets, "show-secrets", false, "print secret variable values")

	return cmd
}

func newEnvironmentsCreateCommand() *cobra.Command {
	var (
		workspace string
		variables []string
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create an environment",
		Long: `Create an environment from KEY=VALUE variable flags.

Variables whose names look sensitive (key, token, secret, password, ...)
are stored as secret type automatically.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseVariables(variables)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			environment, err := client.Environments().Create(context.Background(), workspace, args[0], values)
			if err != nil {
				return fmt.Errorf("failed to create environment: %w", err)
			}

			fmt.Printf("Created environment '%s' (%s)\n", environment.Name, environment.UID)

			return nil
		},
	}

	cmd.Flags().StringVar(&workspace, "workspace", "", "workspace ID to create in")
	cmd.Flags().StringSliceVar(&variables, "var", nil, "variable as KEY=VALUE (repeatable)")

	return cmd
}

func newEnvironmentsUpdateCommand() *cobra.Command {
	var (
		name      string
		variables []string
	)

	cmd := &cobra.Command{
		Use:   "update UID",
		Short: "Update an environment",
		Long: `Apply a partial update to an environment.

A --name renames it; --var values merge into the existing variable set.
Variables already stored as secrets keep their secret type.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" && len(variables) == 0 {
				return constants.ErrEnvironmentRequired
			}

			values, err := parseVariables(variables)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			environment, err := client.Environments().Update(context.Background(), args[0], name, values)
			if err != nil {
				return fmt.Errorf("failed to update environment: %w", err)
			}

			fmt.Printf("Updated environment '%s'\n", environment.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new environment name")
	cmd.Flags().StringSliceVar(&variables, "var", nil, "variable as KEY=VALUE (repeatable)")

	return cmd
}

func newEnvironmentsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete UID",
		Short: "Delete an environment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			err = client.Environments().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete environment: %w", err)
			}

			fmt.Printf("Deleted environment %s\n", args[0])

			return nil
		},
	}
}

func newEnvironmentsDuplicateCommand() *cobra.Command {
	var (
		name      string
		workspace string
	)

	cmd := &cobra.Command{
		Use:   "duplicate UID",
		Short: "Duplicate an environment",
		Long:  "Copy an environment including all variables, preserving secret types",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			environment, err := client.Environments().Duplicate(context.Background(), args[0], name, workspace)
			if err != nil {
				return fmt.Errorf("failed to duplicate environment: %w", err)
			}

			fmt.Printf("Duplicated environment as '%s' (%s)\n", environment.Name, environment.UID)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "name for the copy (defaults to '<original> Copy')")
	cmd.Flags().StringVar(&workspace, "workspace", "", "workspace ID to create the copy in")

	return cmd
}
