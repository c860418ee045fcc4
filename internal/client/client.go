// Package client implements the dirsvc.Client interface over the
// authenticated transport session.
package client

import (
	"fmt"

	"github.com/identkit-io/dirsvc/internal/constants"
	"github.com/identkit-io/dirsvc/internal/httpx"
	"github.com/identkit-io/dirsvc/pkg/dirsvc"
)

// Client implements the dirsvc.Client interface.
type Client struct {
	httpClient *httpx.Client
	baseURL    string
	logger     dirsvc.Logger

	// Resource clients
	users  *UsersClient
	roles  *RolesClient
	groups *GroupsClient
	events *EventsClient
}

// New creates a new directory API client.
func New(config *dirsvc.Config) (*Client, error) {
	if config.APIEndpoint == "" {
		return nil, dirsvc.ErrAPIEndpointRequired
	}

	if config.APIKey == "" {
		return nil, dirsvc.ErrAPIKeyRequired
	}

	httpOpts, err := createHTTPClientOptions(config)
	if err != nil {
		return nil, err
	}

	httpClient := httpx.NewClient(config.APIEndpoint, config.APIKey, httpOpts...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    config.APIEndpoint,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *dirsvc.Config) ([]httpx.Option, error) {
	var httpOpts []httpx.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, httpx.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, httpx.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, httpx.WithUserAgent(config.UserAgent))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, httpx.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	if config.Cache != nil {
		cache, err := dirsvc.NewCacheFromConfig(config.Cache)
		if err != nil {
			return nil, fmt.Errorf("creating response cache: %w", err)
		}

		manager := dirsvc.NewCacheManager(cache, config.Logger)
		httpOpts = append(httpOpts, httpx.WithResponseCache(manager, config.CacheTTL))
	}

	return httpOpts, nil
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.users = NewUsersClient(c.httpClient, c.logger)
	c.roles = NewRolesClient(c.httpClient, c.logger)
	c.groups = NewGroupsClient(c.httpClient, c.logger)
	c.events = NewEventsClient(c.httpClient, c.logger)
}

// Users implements dirsvc.Client.Users.
func (c *Client) Users() dirsvc.UsersClient {
	return c.users
}

// Roles implements dirsvc.Client.Roles.
func (c *Client) Roles() dirsvc.RolesClient {
	return c.roles
}

// Groups implements dirsvc.Client.Groups.
func (c *Client) Groups() dirsvc.GroupsClient {
	return c.groups
}

// Events implements dirsvc.Client.Events.
func (c *Client) Events() dirsvc.EventsClient {
	return c.events
}
