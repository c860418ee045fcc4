// Package httpx implements the authenticated transport session for the
// directory API. Credentials are established once at construction and
// reused for every request on the session.
package httpx

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/identkit-io/dirsvc/internal/constants"
	"github.com/identkit-io/dirsvc/pkg/dirsvc"
)

// basicAuthPassword is the fixed placeholder the directory API expects as
// the basic-auth counterpart of the API key.
const basicAuthPassword = "x"

// Request represents an HTTP request to the directory API.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string

	// Cacheable marks the response as storable in the configured response
	// cache. Only detail fetches set this; listing fetches must always hit
	// the server so reload semantics stay unconditional.
	Cacheable bool
	// CacheTTL overrides the client's default TTL for this response.
	CacheTTL time.Duration
}

// Response represents an HTTP response from the directory API.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client is the authenticated HTTP session.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *retryablehttp.Client
	logger     dirsvc.Logger
	debug      bool
	userAgent  string
	cache      *dirsvc.CacheManager
	cacheTTL   time.Duration
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets a structured logger.
func WithLogger(logger dirsvc.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig enables retries for transient failures.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithHTTPClient replaces the underlying standard HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient = httpClient
	}
}

// WithResponseCache enables the response cache for cacheable requests.
func WithResponseCache(manager *dirsvc.CacheManager, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = manager

		if ttl > 0 {
			c.cacheTTL = ttl
		}
	}
}

// NewClient creates a new authenticated session for the directory API. The
// API key is paired with the API's fixed placeholder password and reused
// for all requests; there is no per-request credential override.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: retryClient,
		userAgent:  "dirsvc-client/1.0",
		cacheTTL:   constants.DefaultCacheTTL,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do performs the request. Transport failures and non-2xx statuses fail
// uniformly with a *dirsvc.NetworkError; error bodies are never interpreted
// as data.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	cacheKey := ""
	if req.Cacheable && c.cache != nil && req.Method == http.MethodGet {
		cacheKey = c.cache.GetCacheKey(req.Method, req.Path, queryParams(req.Query))

		data, err := c.cache.Get(ctx, cacheKey)
		if err == nil {
			c.logDebug("directory response served from cache", map[string]interface{}{"url": fullURL})

			return &Response{StatusCode: http.StatusOK, Body: data}, nil
		}
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.SetBasicAuth(c.apiKey, basicAuthPassword)
	httpReq.Header.Set("Accept", "application/xml")
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("X-Request-Id", uuid.NewString())

	for name, value := range req.Headers {
		httpReq.Header.Set(name, value)
	}

	c.logDebug("directory request", map[string]interface{}{
		"method": req.Method,
		"url":    fullURL,
	})

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &dirsvc.NetworkError{URL: fullURL, Err: err}
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &dirsvc.NetworkError{URL: fullURL, Err: err}
	}

	c.logDebug("directory response", map[string]interface{}{
		"status": resp.StatusCode,
		"url":    fullURL,
		"bytes":  len(body),
	})

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &dirsvc.NetworkError{URL: fullURL, StatusCode: resp.StatusCode}
	}

	if cacheKey != "" {
		ttl := req.CacheTTL
		if ttl == 0 {
			ttl = c.cacheTTL
		}

		_ = c.cache.SetWithETag(ctx, cacheKey, body, resp.Header.Get("ETag"), ttl)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
	}, nil
}

// Get performs an authenticated GET.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

func (c *Client) logDebug(msg string, fields map[string]interface{}) {
	if c.debug && c.logger != nil {
		c.logger.Debug(msg, fields)
	}
}

func queryParams(query url.Values) map[string]string {
	if len(query) == 0 {
		return nil
	}

	params := make(map[string]string, len(query))
	for name := range query {
		params[name] = query.Get(name)
	}

	return params
}
