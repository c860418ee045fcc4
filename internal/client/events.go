package client

import (
	"context"

	"github.com/identkit-io/dirsvc/internal/constants"
	"github.com/identkit-io/dirsvc/internal/httpx"
	"github.com/identkit-io/dirsvc/pkg/dirsvc"
)

// EventsClient implements dirsvc.EventsClient.
type EventsClient struct {
	dir *directory
}

// NewEventsClient creates a new events client.
func NewEventsClient(httpClient *httpx.Client, logger dirsvc.Logger) *EventsClient {
	return &EventsClient{
		dir: newDirectory(httpClient, logger, resource{
			listPath: constants.APIBasePath + "/events",
			element:  "event",
		}),
	}
}

// Get implements dirsvc.EventsClient.Get.
func (c *EventsClient) Get(ctx context.Context, id string) (*dirsvc.Event, error) {
	record, err := c.dir.detail(ctx, id)
	if err != nil {
		return nil, err
	}

	return dirsvc.NewEvent(record), nil
}

// List implements dirsvc.EventsClient.List.
func (c *EventsClient) List(ctx context.Context, opts *dirsvc.ListOptions) ([]*dirsvc.Event, error) {
	records, err := c.dir.list(ctx, opts)
	if err != nil {
		return nil, err
	}

	return wrapAll(records, dirsvc.NewEvent), nil
}

// Filter implements dirsvc.EventsClient.Filter.
func (c *EventsClient) Filter(ctx context.Context, field, search string, opts *dirsvc.FilterOptions) ([]*dirsvc.Event, error) {
	records, err := c.dir.filter(ctx, field, search, opts)
	if err != nil {
		return nil, err
	}

	return wrapAll(records, dirsvc.NewEvent), nil
}

// Find implements dirsvc.EventsClient.Find.
func (c *EventsClient) Find(ctx context.Context, field, search string, opts *dirsvc.FilterOptions) (*dirsvc.Event, bool, error) {
	record, ok, err := c.dir.find(ctx, field, search, opts)
	if err != nil || !ok {
		return nil, ok, err
	}

	return dirsvc.NewEvent(record), true, nil
}

// Refresh implements dirsvc.EventsClient.Refresh.
func (c *EventsClient) Refresh(ctx context.Context) error {
	return c.dir.refresh(ctx)
}
