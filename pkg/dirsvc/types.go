package dirsvc

import (
	"context"
	"time"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a dirsvc.Client.
//
// # Authentication
//
// The directory API uses a single API key established at session creation.
// The key is sent as the basic-auth username on every request, paired with
// the fixed placeholder password the API expects; there is no per-request
// credential override and no token lifecycle.
//
// # Timeouts and retries
//
// Per-request timeouts should generally be controlled via the context passed
// to client methods. Retry behavior for transient failures can be tuned via
// RetryMax/RetryWaitMin/RetryWaitMax; with RetryMax zero a single failed
// fetch propagates immediately.
type Config struct {
	// APIEndpoint: base URL for the directory API (e.g.
	// "https://api.example.com"). dirclient.New normalizes this value by
	// trimming a trailing slash and adding "https://" if no scheme is
	// present.
	APIEndpoint string

	// APIKey: the API key used as the basic-auth credential for all
	// requests on the session.
	APIKey string

	// HTTPTimeout: optional default HTTP timeout where supported. Most
	// client calls should rely on context timeouts.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of retries for transient failures (>=500,
	// 429, and connection errors). If 0, no retries are attempted.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// Debug: enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer and the
	// lookup engine.
	Logger Logger
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string

	// Cache: optional response cache for per-id detail fetches. Nil (the
	// default) disables response caching entirely, preserving the
	// one-detail-fetch-per-hit cost model. The listing document cache is
	// separate and always in memory.
	Cache *CacheConfig
	// CacheTTL: time-to-live for cached detail responses. Only consulted
	// when Cache is set; defaults to a short interval when zero.
	CacheTTL time.Duration
}

// ListOptions control a bulk listing lookup.
type ListOptions struct {
	// Refresh forces an unconditional refetch and reparse of the listing
	// document before reading it. Without it the cached document is reused
	// once populated.
	Refresh bool

	// SkipDetail constructs objects directly from the listing records
	// instead of refetching each object's full detail by id. The listing
	// may carry only partial fields per record; the default two-phase flow
	// (bulk index, then per-id detail) is preserved unless this is set.
	SkipDetail bool
}

// FilterOptions control a filter or find lookup.
//
// Filter deliberately carries no Refresh knob: unlike List it always trusts
// the last-loaded snapshot and only fetches when nothing has been loaded
// yet. Callers that need fresh data must reload explicitly (Refresh on the
// resource client) before filtering.
type FilterOptions struct {
	// SkipDetail behaves exactly as in ListOptions.
	SkipDetail bool
}

// UsersClient provides lookups over the users section of the directory.
type UsersClient interface {
	Get(ctx context.Context, id string) (*User, error)
	List(ctx context.Context, opts *ListOptions) ([]*User, error)
	Filter(ctx context.Context, field, search string, opts *FilterOptions) ([]*User, error)
	Find(ctx context.Context, field, search string, opts *FilterOptions) (*User, bool, error)
	Refresh(ctx context.Context) error
}

// RolesClient provides lookups over the roles section of the directory.
type RolesClient interface {
	Get(ctx context.Context, id string) (*Role, error)
	List(ctx context.Context, opts *ListOptions) ([]*Role, error)
	Filter(ctx context.Context, field, search string, opts *FilterOptions) ([]*Role, error)
	Find(ctx context.Context, field, search string, opts *FilterOptions) (*Role, bool, error)
	Refresh(ctx context.Context) error
}

// GroupsClient provides lookups over the groups section of the directory.
type GroupsClient interface {
	Get(ctx context.Context, id string) (*Group, error)
	List(ctx context.Context, opts *ListOptions) ([]*Group, error)
	Filter(ctx context.Context, field, search string, opts *FilterOptions) ([]*Group, error)
	Find(ctx context.Context, field, search string, opts *FilterOptions) (*Group, bool, error)
	Refresh(ctx context.Context) error
}

// EventsClient provides lookups over the events section of the directory.
type EventsClient interface {
	Get(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context, opts *ListOptions) ([]*Event, error)
	Filter(ctx context.Context, field, search string, opts *FilterOptions) ([]*Event, error)
	Find(ctx context.Context, field, search string, opts *FilterOptions) (*Event, bool, error)
	Refresh(ctx context.Context) error
}

// Client provides access to all resource-specific clients.
type Client interface {
	Users() UsersClient
	Roles() RolesClient
	Groups() GroupsClient
	Events() EventsClient
}
