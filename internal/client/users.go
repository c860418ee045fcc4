package client

import (
	"context"

	"github.com/identkit-io/dirsvc/internal/constants"
	"github.com/identkit-io/dirsvc/internal/httpx"
	"github.com/identkit-io/dirsvc/pkg/dirsvc"
)

// UsersClient implements dirsvc.UsersClient.
type UsersClient struct {
	dir *directory
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *httpx.Client, logger dirsvc.Logger) *UsersClient {
	return &UsersClient{
		dir: newDirectory(httpClient, logger, resource{
			listPath: constants.APIBasePath + "/users",
			element:  "user",
		}),
	}
}

// Get implements dirsvc.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, id string) (*dirsvc.User, error) {
	record, err := c.dir.detail(ctx, id)
	if err != nil {
		return nil, err
	}

	return dirsvc.NewUser(record), nil
}

// List implements dirsvc.UsersClient.List.
func (c *UsersClient) List(ctx context.Context, opts *dirsvc.ListOptions) ([]*dirsvc.User, error) {
	records, err := c.dir.list(ctx, opts)
	if err != nil {
		return nil, err
	}

	return wrapAll(records, dirsvc.NewUser), nil
}

// Filter implements dirsvc.UsersClient.Filter.
func (c *UsersClient) Filter(ctx context.Context, field, search string, opts *dirsvc.FilterOptions) ([]*dirsvc.User, error) {
	records, err := c.dir.filter(ctx, field, search, opts)
	if err != nil {
		return nil, err
	}

	return wrapAll(records, dirsvc.NewUser), nil
}

// Find implements dirsvc.UsersClient.Find.
func (c *UsersClient) Find(ctx context.Context, field, search string, opts *dirsvc.FilterOptions) (*dirsvc.User, bool, error) {
	record, ok, err := c.dir.find(ctx, field, search, opts)
	if err != nil || !ok {
		return nil, ok, err
	}

	return dirsvc.NewUser(record), true, nil
}

// Refresh implements dirsvc.UsersClient.Refresh.
func (c *UsersClient) Refresh(ctx context.Context) error {
	return c.dir.refresh(ctx)
}
