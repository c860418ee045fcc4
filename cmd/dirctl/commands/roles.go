package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/identkit-io/dirsvc/pkg/dirsvc"
)

// NewRolesCommand creates the roles command group.
func NewRolesCommand() *cobra.Command {
	return newResourceCommand("roles", "role", []string{"name"}, resourceOps{
		list: func(ctx context.Context, client dirsvc.Client, opts *dirsvc.ListOptions) ([]dirsvc.DirectoryObject, error) {
			roles, err := client.Roles().List(ctx, opts)
			if err != nil {
				return nil, err
			}

			return asObjects(roles), nil
		},
		filter: func(ctx context.Context, client dirsvc.Client, field, search string, opts *dirsvc.FilterOptions) ([]dirsvc.DirectoryObject, error) {
			roles, err := client.Roles().Filter(ctx, field, search, opts)
			if err != nil {
				return nil, err
			}

			return asObjects(roles), nil
		},
		find: func(ctx context.Context, client dirsvc.Client, field, search string, opts *dirsvc.FilterOptions) (dirsvc.DirectoryObject, bool, error) {
			return client.Roles().Find(ctx, field, search, opts)
		},
		get: func(ctx context.Context, client dirsvc.Client, id string) (dirsvc.DirectoryObject, error) {
			return client.Roles().Get(ctx, id)
		},
	})
}
