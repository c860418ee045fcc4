package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/identkit-io/dirsvc/pkg/dirsvc"
)

// NewEventsCommand creates the events command group.
func NewEventsCommand() *cobra.Command {
	return newResourceCommand("events", "event", []string{"event-type-id", "created-at"}, resourceOps{
		list: func(ctx context.Context, client dirsvc.Client, opts *dirsvc.ListOptions) ([]dirsvc.DirectoryObject, error) {
			events, err := client.Events().List(ctx, opts)
			if err != nil {
				return nil, err
			}

			return asObjects(events), nil
		},
		filter: func(ctx context.Context, client dirsvc.Client, field, search string, opts *dirsvc.FilterOptions) ([]dirsvc.DirectoryObject, error) {
			events, err := client.Events().Filter(ctx, field, search, opts)
			if err != nil {
				return nil, err
			}

			return asObjects(events), nil
		},
		find: func(ctx context.Context, client dirsvc.Client, field, search string, opts *dirsvc.FilterOptions) (dirsvc.DirectoryObject, bool, error) {
			return client.Events().Find(ctx, field, search, opts)
		},
		get: func(ctx context.Context, client dirsvc.Client, id string) (dirsvc.DirectoryObject, error) {
			return client.Events().Get(ctx, id)
		},
	})
}
