package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/identkit-io/dirsvc/pkg/dirsvc"
)

// resourceOps adapts one typed resource client to the shared command set.
type resourceOps struct {
	list   func(ctx context.Context, client dirsvc.Client, opts *dirsvc.ListOptions) ([]dirsvc.DirectoryObject, error)
	filter func(ctx context.Context, client dirsvc.Client, field, search string, opts *dirsvc.FilterOptions) ([]dirsvc.DirectoryObject, error)
	find   func(ctx context.Context, client dirsvc.Client, field, search string, opts *dirsvc.FilterOptions) (dirsvc.DirectoryObject, bool, error)
	get    func(ctx context.Context, client dirsvc.Client, id string) (dirsvc.DirectoryObject, error)
}

// newResourceCommand builds the list/filter/find/get command group for one
// resource type.
func newResourceCommand(use, singular string, columns []string, ops resourceOps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("Look up %s", use),
		Long:  fmt.Sprintf("List, filter, and find %s in the directory", use),
	}

	cmd.AddCommand(newResourceListCommand(use, columns, ops))
	cmd.AddCommand(newResourceFilterCommand(use, columns, ops))
	cmd.AddCommand(newResourceFindCommand(singular, ops))
	cmd.AddCommand(newResourceGetCommand(singular, ops))

	return cmd
}

func newResourceListCommand(use string, columns []string, ops resourceOps) *cobra.Command {
	var (
		refresh    bool
		skipDetail bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List all %s", use),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			objects, err := ops.list(context.Background(), client, &dirsvc.ListOptions{
				Refresh:    refresh,
				SkipDetail: skipDetail,
			})
			if err != nil {
				return fmt.Errorf("failed to list %s: %w", use, err)
			}

			return renderObjects(objects, columns)
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "refetch the listing before reading it")
	cmd.Flags().BoolVar(&skipDetail, "skip-detail", false, "use listing fields directly, skipping per-id detail fetches")

	return cmd
}

func newResourceFilterCommand(use string, columns []string, ops resourceOps) *cobra.Command {
	var skipDetail bool

	cmd := &cobra.Command{
		Use:   "filter FIELD VALUE",
		Short: fmt.Sprintf("Filter %s by exact field value", use),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			objects, err := ops.filter(context.Background(), client, args[0], args[1], &dirsvc.FilterOptions{
				SkipDetail: skipDetail,
			})
			if err != nil {
				return fmt.Errorf("failed to filter %s: %w", use, err)
			}

			return renderObjects(objects, columns)
		},
	}

	cmd.Flags().BoolVar(&skipDetail, "skip-detail", false, "use listing fields directly, skipping per-id detail fetches")

	return cmd
}

func newResourceFindCommand(singular string, ops resourceOps) *cobra.Command {
	return &cobra.Command{
		Use:   "find FIELD VALUE",
		Short: fmt.Sprintf("Find the first %s matching an exact field value", singular),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			obj, found, err := ops.find(context.Background(), client, args[0], args[1], nil)
			if err != nil {
				return fmt.Errorf("failed to find %s: %w", singular, err)
			}

			if !found {
				cmd.Printf("No %s found with %s = %q\n", singular, args[0], args[1])

				return nil
			}

			return renderObject(obj)
		},
	}
}

func newResourceGetCommand(singular string, ops resourceOps) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: fmt.Sprintf("Get one %s by id", singular),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			obj, err := ops.get(context.Background(), client, args[0])
			if err != nil {
				return fmt.Errorf("failed to get %s: %w", singular, err)
			}

			return renderObject(obj)
		},
	}
}

// asObjects converts a typed slice to the shared read-only view.
func asObjects[T dirsvc.DirectoryObject](items []T) []dirsvc.DirectoryObject {
	objects := make([]dirsvc.DirectoryObject, 0, len(items))
	for _, item := range items {
		objects = append(objects, item)
	}

	return objects
}
