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

// NewMonitorsCommand creates the monitors command group
func NewMonitorsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "monitors",
		Aliases: []string{"monitor"},
		Short:   "Manage monitors",
		Long:    "List and manage Postman monitors and their run history",
	}

	cmd.AddCommand(newMonitorsListCommand())
	cmd.AddCommand(newMonitorsGetCommand())
	cmd.AddCommand(newMonitorsCreateCommand())
	cmd.AddCommand(newMonitorsUpdateCommand())
	cmd.AddCommand(newMonitorsDeleteCommand())
	cmd.AddCommand(newMonitorsRunsCommand())

	return cmd
}

func newMonitorsListCommand() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List monitors",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			monitors, err := client.Monitors().List(context.Background(), workspace)
			if err != nil {
				return fmt.Errorf("failed to list monitors: %w", err)
			}

			if handled, err := renderStructured(viper.GetString("output"), monitors); handled {
				return err
			}

			if len(monitors) == 0 {
				fmt.Println("No monitors found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Collection", "Schedule")

			for _, monitor := range monitors {
				schedule := constants.NotAvailable
				if monitor.Schedule != nil {
					schedule = monitor.Schedule.Cron
				}

				table.Append(monitor.ID, truncate(monitor.Name), monitor.CollectionUID, schedule)
			}

			table.Render()

			return nil
		},
	}

	cmd.Flags().StringVar(&workspace, "workspace", "", "workspace ID to scope the list")

	return cmd
}

func newMonitorsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Get a monitor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			monitor, err := client.Monitors().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get monitor: %w", err)
			}

			if handled, err := renderStructured(viper.GetString("output"), monitor); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("Name", monitor.Name)
			_ = table.Append("ID", monitor.ID)
			_ = table.Append("Collection", monitor.CollectionUID)
			_ = table.Append("Environment", monitor.EnvironmentUID)

			if monitor.Schedule != nil {
				_ = table.Append("Cron", monitor.Schedule.Cron)
				_ = table.Append("Timezone", monitor.Schedule.Timezone)
				_ = table.Append("Next Run", formatTime(monitor.Schedule.NextRun))
			}

			table.Render()

			return nil
		},
	}
}

func monitorRequestFromFlags(cmd *cobra.Command, name, collection, environment, cron, timezone string) *postman.MonitorCreateRequest {
	request := &postman.MonitorCreateRequest{
		Name:           name,
		CollectionUID:  collection,
		EnvironmentUID: environment,
	}

	if cmd.Flags().Changed("cron") || cmd.Flags().Changed("timezone") {
		request.Schedule = &postman.MonitorSchedule{
			Cron:     cron,
			Timezone: timezone,
		}
	}

	return request
}

func newMonitorsCreateCommand() *cobra.Command {
	var (
		collection  string
		environment string
		cron        string
		timezone    string
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a monitor",
		Long:  "Create a monitor that runs a collection on a cron schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if collection == "" {
				return constants.ErrCollectionRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			request := monitorRequestFromFlags(cmd, args[0], collection, environment, cron, timezone)

			monitor, err := client.Monitors().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create monitor: %w", err)
			}

			fmt.Printf("Created monitor '%s' (%s)\n", monitor.Name, monitor.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&collection, "collection", "", "collection UID to run")
	cmd.Flags().StringVar(&environment, "environment", "", "environment UID to run with")
	cmd.Flags().StringVar(&cron, "cron", "0 0 * * *", "cron schedule")
	cmd.Flags().StringVar(&timezone, "timezone", "UTC", "schedule timezone")

	return cmd
}

func newMonitorsUpdateCommand() *cobra.Command {
	var (
		name        string
		collection  string
		environment string
		cron        string
		timezone    string
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a monitor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			request := monitorRequestFromFlags(cmd, name, collection, environment, cron, timezone)

			monitor, err := client.Monitors().Update(context.Background(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to update monitor: %w", err)
			}

			fmt.Printf("Updated monitor '%s'\n", monitor.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new monitor name")
	cmd.Flags().StringVar(&collection, "collection", "", "collection UID to run")
	cmd.Flags().StringVar(&environment, "environment", "", "environment UID to run with")
	cmd.Flags().StringVar(&cron, "cron", "", "cron schedule")
	cmd.Flags().StringVar(&timezone, "timezone", "", "schedule timezone")

	return cmd
}

func newMonitorsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a monitor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			err = client.Monitors().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete monitor: %w", err)
			}

			fmt.Printf("Deleted monitor %s\n", args[0])

			return nil
		},
	}
}

func newMonitorsRunsCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs ID",
		Short: "Show monitor run history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("limit") && limit <= 0 {
				return constants.ErrInvalidRunLimit
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			runs, err := client.Monitors().Runs(context.Background(), args[0], limit)
			if err != nil {
				return fmt.Errorf("failed to list monitor runs: %w", err)
			}

			if handled, err := renderStructured(viper.GetString("output"), runs); handled {
				return err
			}

			if len(runs) == 0 {
				fmt.Println("No runs found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Status", "Started", "Assertions", "Failed")

			for _, run := range runs {
				assertions := constants.NotAvailable
				failed := constants.NotAvailable

				if run.Stats != nil {
					assertions = fmt.Sprintf("%d", run.Stats.Assertions.Total)
					failed = fmt.Sprintf("%d", run.Stats.Assertions.Failed)
				}

				table.Append(run.ID, run.Status, formatTime(run.StartedAt), assertions, failed)
			}

			table.Render()

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", constants.DefaultRunLimit, "number of runs to fetch")

	return cmd
}
