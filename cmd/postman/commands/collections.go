package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/postlane-io/postman-client/internal/constants"
	"github.com/postlane-io/postman-client/pkg/postman"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewCollectionsCommand creates the collections command group
func NewCollectionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "collections",
		Aliases: []string{"collection"},
		Short:   "Manage collections",
		Long:    "List and manage Postman collections, forks, and pull requests",
	}

	cmd.AddCommand(newCollectionsListCommand())
	cmd.AddCommand(newCollectionsGetCommand())
	cmd.AddCommand(newCollectionsCreateCommand())
	cmd.AddCommand(newCollectionsUpdateCommand())
	cmd.AddCommand(newCollectionsDeleteCommand())
	cmd.AddCommand(newCollectionsForkCommand())
	cmd.AddCommand(newCollectionsDuplicateCommand())
	cmd.AddCommand(newPullRequestsCommand())

	return cmd
}

func newCollectionsListCommand() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List collections",
		Long:  "List all collections, optionally scoped to a workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			collections, err := client.Collections().List(context.Background(), workspace)
			if err != nil {
				return fmt.Errorf("failed to list collections: %w", err)
			}

			if handled, err := renderStructured(viper.GetString("output"), collections); handled {
				return err
			}

			if len(collections) == 0 {
				fmt.Println("No collections found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("UID", "Name", "Forked", "Updated")

			for _, collection := range collections {
				table.Append(collection.UID, truncate(collection.Name), yesNo(collection.Fork != nil), formatTime(collection.UpdatedAt))
			}

			table.Render()

			return nil
		},
	}

	cmd.Flags().StringVar(&workspace, "workspace", "", "workspace ID to scope the list")

	return cmd
}

func newCollectionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get UID",
		Short: "Get a collection",
		Long:  "Fetch the full collection document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			collection, err := client.Collections().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get collection: %w", err)
			}

			if handled, err := renderStructured(viper.GetString("output"), collection); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("Name", collection.Info.Name)
			_ = table.Append("UID", collection.Info.UID)
			_ = table.Append("Description", truncate(collection.Info.Description))
			_ = table.Append("Items", fmt.Sprintf("%d", len(collection.Items)))
			_ = table.Append("Variables", fmt.Sprintf("%d", len(collection.Variables)))

			if collection.Fork != nil {
				_ = table.Append("Fork Label", collection.Fork.Label)
				_ = table.Append("Forked From", collection.Fork.From)
			}

			table.Render()

			return nil
		},
	}
}

func newCollectionsCreateCommand() *cobra.Command {
	var (
		workspace string
		fromFile  string
		name      string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a collection",
		Long:  "Create a collection from a JSON document or an empty one by name",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			var detail postman.CollectionDetail

			if fromFile != "" {
				data, err := os.ReadFile(fromFile)
				if err != nil {
					return fmt.Errorf("failed to read collection file: %w", err)
				}

				if err := json.Unmarshal(data, &detail); err != nil {
					return fmt.Errorf("failed to parse collection file: %w", err)
				}
			}

			if name != "" {
				detail.Info.Name = name
			}

			if detail.Info.Name == "" {
				return constants.ErrNameRequired
			}

			collection, err := client.Collections().Create(context.Background(), workspace, &detail)
			if err != nil {
				return fmt.Errorf("failed to create collection: %w", err)
			}

			fmt.Printf("Created collection '%s' (%s)\n", collection.Name, collection.UID)

			return nil
		},
	}

	cmd.Flags().StringVar(&workspace, "workspace", "", "workspace ID to create in")
	cmd.Flags().StringVar(&fromFile, "from-file", "", "JSON file with the collection document")
	cmd.Flags().StringVar(&name, "name", "", "collection name (overrides the file)")

	return cmd
}

func newCollectionsUpdateCommand() *cobra.Command {
	var fromFile string

	cmd := &cobra.Command{
		Use:   "update UID",
		Short: "Update a collection",
		Long:  "Replace a collection with the document from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if fromFile == "" {
				return constants.ErrCollectionRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			data, err := os.ReadFile(fromFile)
			if err != nil {
				return fmt.Errorf("failed to read collection file: %w", err)
			}

			var detail postman.CollectionDetail
			if err := json.Unmarshal(data, &detail); err != nil {
				return fmt.Errorf("failed to parse collection file: %w", err)
			}

			collection, err := client.Collections().Update(context.Background(), args[0], &detail)
			if err != nil {
				return fmt.Errorf("failed to update collection: %w", err)
			}

			fmt.Printf("Updated collection '%s'\n", collection.Name)

			return nil
		},
	}

	cmd.Flags().StringVar(&fromFile, "from-file", "", "JSON file with the collection document")

	return cmd
}

func newCollectionsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete UID",
		Short: "Delete a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			err = client.Collections().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete collection: %w", err)
			}

			fmt.Printf("Deleted collection %s\n", args[0])

			return nil
		},
	}
}

func newCollectionsForkCommand() *cobra.Command {
	var (
		label     string
		workspace string
	)

	cmd := &cobra.Command{
		Use:   "fork UID",
		Short: "Fork a collection",
		Long:  "Create a fork of a collection with retained lineage (v10+ API)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			fork, err := client.Collections().Fork(context.Background(), args[0], label, workspace)
			if err != nil {
				return fmt.Errorf("failed to fork collection: %w", err)
			}

			fmt.Printf("Forked collection as '%s' (%s)\n", fork.Name, fork.UID)

			return nil
		},
	}

	cmd.Flags().StringVar(&label, "label", "", "label for the fork")
	cmd.Flags().StringVar(&workspace, "workspace", "", "workspace ID to fork into")
	_ = cmd.MarkFlagRequired("label")

	return cmd
}

func newCollectionsDuplicateCommand() *cobra.Command {
	var (
		name      string
		workspace string
	)

	cmd := &cobra.Command{
		Use:   "duplicate UID",
		Short: "Duplicate a collection",
		Long:  "Create a standalone copy of a collection without fork lineage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			copy, err := client.Collections().Duplicate(context.Background(), args[0], name, workspace)
			if err != nil {
				return fmt.Errorf("failed to duplicate collection: %w", err)
			}

			fmt.Printf("Duplicated collection as '%s' (%s)\n", copy.Name, copy.UID)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "name for the copy (defaults to '<original> Copy')")
	cmd.Flags().StringVar(&workspace, "workspace", "", "workspace ID to create the copy in")

	return cmd
}

func newPullRequestsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pull-requests",
		Aliases: []string{"pr"},
		Short:   "Manage collection pull requests",
	}

	cmd.AddCommand(newPullRequestsListCommand())
	cmd.AddCommand(newPullRequestsCreateCommand())
	cmd.AddCommand(newPullRequestsMergeCommand())

	return cmd
}

func newPullRequestsListCommand() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list UID",
		Short: "List pull requests for a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			pullRequests, err := client.Collections().ListPullRequests(context.Background(), args[0], status)
			if err != nil {
				return fmt.Errorf("failed to list pull requests: %w", err)
			}

			if handled, err := renderStructured(viper.GetString("output"), pullRequests); handled {
				return err
			}

			if len(pullRequests) == 0 {
				fmt.Println("No pull requests found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Title", "Status", "Created")

			for _, pullRequest := range pullRequests {
				table.Append(pullRequest.ID, truncate(pullRequest.Title), pullRequest.Status, formatTime(pullRequest.CreatedAt))
			}

			table.Render()

			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status (open, merged, declined)")

	return cmd
}

func newPullRequestsCreateCommand() *cobra.Command {
	var (
		source      string
		title       string
		description string
		reviewers   []string
	)

	cmd := &cobra.Command{
		Use:   "create UID",
		Short: "Open a pull request against a collection",
		Long:  "Open a pull request proposing to merge a fork into its parent collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if source == "" {
				return constants.ErrSourceRequired
			}

			if title == "" {
				return constants.ErrTitleRequired
			}

			if len(reviewers) == 0 {
				return constants.ErrReviewersRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			request := &postman.PullRequestCreateRequest{
				Source:      source,
				Title:       title,
				Description: description,
				Reviewers:   reviewers,
			}

			pullRequest, err := client.Collections().CreatePullRequest(context.Background(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to create pull request: %w", err)
			}

			fmt.Printf("Opened pull request '%s' (%s)\n", pullRequest.Title, pullRequest.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "UID of the forked collection")
	cmd.Flags().StringVar(&title, "title", "", "pull request title")
	cmd.Flags().StringVar(&description, "description", "", "pull request description")
	cmd.Flags().StringSliceVar(&reviewers, "reviewer", nil, "reviewer user ID (repeatable)")

	return cmd
}

func newPullRequestsMergeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "merge UID PR_ID",
		Short: "Merge a pull request",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			pullRequest, err := client.Collections().MergePullRequest(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to merge pull request: %w", err)
			}

			fmt.Printf("Merged pull request %s (status: %s)\n", pullRequest.ID, pullRequest.Status)

			return nil
		},
	}
}
