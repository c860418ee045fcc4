package client

import (
	"context"

	"github.com/identkit-io/dirsvc/internal/constants"
	"github.com/identkit-io/dirsvc/internal/httpx"
	"github.com/identkit-io/dirsvc/pkg/dirsvc"
)

// GroupsClient implements dirsvc.GroupsClient.
type GroupsClient struct {
	dir *directory
}

// NewGroupsClient creates a new groups client.
func NewGroupsClient(httpClient *httpx.Client, logger dirsvc.Logger) *GroupsClient {
	return &GroupsClient{
		dir: newDirectory(httpClient, logger, resource{
			listPath: constants.APIBasePath + "/groups",
			element:  "group",
		}),
	}
}

// Get implements dirsvc.GroupsClient.Get.
func (c *GroupsClient) Get(ctx context.Context, id string) (*dirsvc.Group, error) {
	record, err := c.dir.detail(ctx, id)
	if err != nil {
		return nil, err
	}

	return dirsvc.NewGroup(record), nil
}

// List implements dirsvc.GroupsClient.List.
func (c *GroupsClient) List(ctx context.Context, opts *dirsvc.ListOptions) ([]*dirsvc.Group, error) {
	records, err := c.dir.list(ctx, opts)
	if err != nil {
		return nil, err
	}

	return wrapAll(records, dirsvc.NewGroup), nil
}

// Filter implements dirsvc.GroupsClient.Filter.
func (c *GroupsClient) Filter(ctx context.Context, field, search string, opts *dirsvc.FilterOptions) ([]*dirsvc.Group, error) {
	records, err := c.dir.filter(ctx, field, search, opts)
	if err != nil {
		return nil, err
	}

	return wrapAll(records, dirsvc.NewGroup), nil
}

// Find implements dirsvc.GroupsClient.Find.
func (c *GroupsClient) Find(ctx context.Context, field, search string, opts *dirsvc.FilterOptions) (*dirsvc.Group, bool, error) {
	record, ok, err := c.dir.find(ctx, field, search, opts)
	if err != nil || !ok {
		return nil, ok, err
	}

	return dirsvc.NewGroup(record), true, nil
}

// Refresh implements dirsvc.GroupsClient.Refresh.
func (c *GroupsClient) Refresh(ctx context.Context) error {
	return c.dir.refresh(ctx)
}
