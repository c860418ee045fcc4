package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/identkit-io/dirsvc/pkg/dirsvc"
)

// NewUsersCommand creates the users command group.
func NewUsersCommand() *cobra.Command {
	return newResourceCommand("users", "user", []string{"username", "email", "firstname", "lastname"}, resourceOps{
		list: func(ctx context.Context, client dirsvc.Client, opts *dirsvc.ListOptions) ([]dirsvc.DirectoryObject, error) {
			users, err := client.Users().List(ctx, opts)
			if err != nil {
				return nil, err
			}

			return asObjects(users), nil
		},
		filter: func(ctx context.Context, client dirsvc.Client, field, search string, opts *dirsvc.FilterOptions) ([]dirsvc.DirectoryObject, error) {
			users, err := client.Users().Filter(ctx, field, search, opts)
			if err != nil {
				return nil, err
			}

			return asObjects(users), nil
		},
		find: func(ctx context.Context, client dirsvc.Client, field, search string, opts *dirsvc.FilterOptions) (dirsvc.DirectoryObject, bool, error) {
			return client.Users().Find(ctx, field, search, opts)
		},
		get: func(ctx context.Context, client dirsvc.Client, id string) (dirsvc.DirectoryObject, error) {
			return client.Users().Get(ctx, id)
		},
	})
}
