package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/identkit-io/dirsvc/pkg/dirsvc"
)

// NewGroupsCommand creates the groups command group.
func NewGroupsCommand() *cobra.Command {
	return newResourceCommand("groups", "group", []string{"name"}, resourceOps{
		list: func(ctx context.Context, client dirsvc.Client, opts *dirsvc.ListOptions) ([]dirsvc.DirectoryObject, error) {
			groups, err := client.Groups().List(ctx, opts)
			if err != nil {
				return nil, err
			}

			return asObjects(groups), nil
		},
		filter: func(ctx context.Context, client dirsvc.Client, field, search string, opts *dirsvc.FilterOptions) ([]dirsvc.DirectoryObject, error) {
			groups, err := client.Groups().Filter(ctx, field, search, opts)
			if err != nil {
				return nil, err
			}

			return asObjects(groups), nil
		},
		find: func(ctx context.Context, client dirsvc.Client, field, search string, opts *dirsvc.FilterOptions) (dirsvc.DirectoryObject, bool, error) {
			return client.Groups().Find(ctx, field, search, opts)
		},
		get: func(ctx context.Context, client dirsvc.Client, id string) (dirsvc.DirectoryObject, error) {
			return client.Groups().Get(ctx, id)
		},
	})
}
