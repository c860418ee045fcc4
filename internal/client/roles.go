package client

import (
	"context"

	"github.com/identkit-io/dirsvc/internal/constants"
	"github.com/identkit-io/dirsvc/internal/httpx"
	"github.com/identkit-io/dirsvc/pkg/dirsvc"
)

// RolesClient implements dirsvc.RolesClient.
type RolesClient struct {
	dir *directory
}

// NewRolesClient creates a new roles client.
func NewRolesClient(httpClient *httpx.Client, logger dirsvc.Logger) *RolesClient {
	return &RolesClient{
		dir: newDirectory(httpClient, logger, resource{
			listPath: constants.APIBasePath + "/roles",
			element:  "role",
		}),
	}
}

// Get implements dirsvc.RolesClient.Get.
func (c *RolesClient) Get(ctx context.Context, id string) (*dirsvc.Role, error) {
	record, err := c.dir.detail(ctx, id)
	if err != nil {
		return nil, err
	}

	return dirsvc.NewRole(record), nil
}

// List implements dirsvc.RolesClient.List.
func (c *RolesClient) List(ctx context.Context, opts *dirsvc.ListOptions) ([]*dirsvc.Role, error) {
	records, err := c.dir.list(ctx, opts)
	if err != nil {
		return nil, err
	}

	return wrapAll(records, dirsvc.NewRole), nil
}

// Filter implements dirsvc.RolesClient.Filter.
func (c *RolesClient) Filter(ctx context.Context, field, search string, opts *dirsvc.FilterOptions) ([]*dirsvc.Role, error) {
	records, err := c.dir.filter(ctx, field, search, opts)
	if err != nil {
		return nil, err
	}

	return wrapAll(records, dirsvc.NewRole), nil
}

// Find implements dirsvc.RolesClient.Find.
func (c *RolesClient) Find(ctx context.Context, field, search string, opts *dirsvc.FilterOptions) (*dirsvc.Role, bool, error) {
	record, ok, err := c.dir.find(ctx, field, search, opts)
	if err != nil || !ok {
		return nil, ok, err
	}

	return dirsvc.NewRole(record), true, nil
}

// Refresh implements dirsvc.RolesClient.Refresh.
func (c *RolesClient) Refresh(ctx context.Context) error {
	return c.dir.refresh(ctx)
}
