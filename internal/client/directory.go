package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/antchfx/xmlquery"

	"github.com/identkit-io/dirsvc/internal/httpx"
	"github.com/identkit-io/dirsvc/pkg/dirsvc"
)

// resource describes one section of the directory listing document.
type resource struct {
	// listPath is the bulk listing endpoint, e.g. "/api/v3/users". Detail
	// fetches append "/<id>".
	listPath string
	// element is the record element name within the listing, e.g. "user".
	element string
}

// directory implements the lookup protocol for one resource: a cached
// listing document, tree queries over it, and per-id detail fetches for
// every matched record.
type directory struct {
	httpClient *httpx.Client
	logger     dirsvc.Logger
	res        resource
	cache      *documentCache
}

func newDirectory(httpClient *httpx.Client, logger dirsvc.Logger, res resource) *directory {
	return &directory{
		httpClient: httpClient,
		logger:     logger,
		res:        res,
		cache:      &documentCache{},
	}
}

// load performs the unconditional listing fetch and reparse behind a cache
// reload.
func (d *directory) load(ctx context.Context) (*dirsvc.Document, error) {
	d.logDebug("reloading listing", map[string]interface{}{"path": d.res.listPath})

	resp, err := d.httpClient.Get(ctx, d.res.listPath, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching %s listing: %w", d.res.element, err)
	}

	doc, err := dirsvc.ParseDocument(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing %s listing: %w", d.res.element, err)
	}

	return doc, nil
}

// refresh reloads the listing document unconditionally.
func (d *directory) refresh(ctx context.Context) error {
	_, err := d.cache.ensure(ctx, d.load, true)

	return err
}

// detail fetches one object's full record by id. The listing may carry only
// partial fields per record; the per-id endpoint is authoritative.
func (d *directory) detail(ctx context.Context, id string) (*dirsvc.Record, error) {
	req := &httpx.Request{
		Method:    http.MethodGet,
		Path:      d.res.listPath + "/" + id,
		Cacheable: true,
	}

	resp, err := d.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s %s: %w", d.res.element, id, err)
	}

	doc, err := dirsvc.ParseDocument(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing %s %s: %w", d.res.element, id, err)
	}

	node := doc.Record(d.res.element)
	if node == nil {
		return nil, &dirsvc.ParseError{
			Err: fmt.Errorf("%w: %s %s", dirsvc.ErrDetailRecordMissing, d.res.element, id),
		}
	}

	return dirsvc.NewRecord(node)
}

// materialize turns listing record nodes into constructed records,
// refetching each object's detail by id unless the caller opted out.
func (d *directory) materialize(ctx context.Context, nodes []*xmlquery.Node, skipDetail bool) ([]*dirsvc.Record, error) {
	records := make([]*dirsvc.Record, 0, len(nodes))

	for _, node := range nodes {
		record, err := dirsvc.NewRecord(node)
		if err != nil {
			return nil, err
		}

		if !skipDetail {
			record, err = d.detail(ctx, record.Identity())
			if err != nil {
				return nil, err
			}
		}

		records = append(records, record)
	}

	return records, nil
}

// list returns every record of the section in document order, without
// deduplication. The cache reloads when opts.Refresh is set or nothing has
// been loaded yet.
func (d *directory) list(ctx context.Context, opts *dirsvc.ListOptions) ([]*dirsvc.Record, error) {
	if opts == nil {
		opts = &dirsvc.ListOptions{}
	}

	doc, err := d.cache.ensure(ctx, d.load, opts.Refresh)
	if err != nil {
		return nil, err
	}

	return d.materialize(ctx, doc.Records(d.res.element), opts.SkipDetail)
}

// filter returns every record whose named field exactly equals search, in
// document order. Unlike list, filter never honors a refresh request: it
// always trusts the last-loaded snapshot and only fetches when the cache is
// empty.
func (d *directory) filter(ctx context.Context, field, search string, opts *dirsvc.FilterOptions) ([]*dirsvc.Record, error) {
	if opts == nil {
		opts = &dirsvc.FilterOptions{}
	}

	d.logDebug("filter", map[string]interface{}{
		"element": d.res.element,
		"field":   field,
		"search":  search,
	})

	doc, err := d.cache.ensure(ctx, d.load, false)
	if err != nil {
		return nil, err
	}

	return d.materialize(ctx, doc.FilterRecords(d.res.element, field, search), opts.SkipDetail)
}

// find returns the first filter match. A miss is an explicit absent result,
// never an error.
func (d *directory) find(ctx context.Context, field, search string, opts *dirsvc.FilterOptions) (*dirsvc.Record, bool, error) {
	records, err := d.filter(ctx, field, search, opts)
	if err != nil {
		return nil, false, err
	}

	if len(records) == 0 {
		return nil, false, nil
	}

	return records[0], true, nil
}

func (d *directory) logDebug(msg string, fields map[string]interface{}) {
	if d.logger != nil {
		d.logger.Debug(msg, fields)
	}
}

// wrapAll converts constructed records into typed objects, preserving
// order.
func wrapAll[T any](records []*dirsvc.Record, wrap func(*dirsvc.Record) T) []T {
	objects := make([]T, 0, len(records))
	for _, record := range records {
		objects = append(objects, wrap(record))
	}

	return objects
}
