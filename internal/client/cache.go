package client

import (
	"context"
	"sync"

	"github.com/identkit-io/dirsvc/pkg/dirsvc"
)

// cacheState is the explicit lifecycle of a document cache: empty until the
// first successful reload, populated afterwards.
type cacheState int

const (
	cacheEmpty cacheState = iota
	cachePopulated
)

// loadFunc fetches and parses a fresh listing document.
type loadFunc func(ctx context.Context) (*dirsvc.Document, error)

// documentCache holds the most recently fetched listing document for one
// resource. Exactly one document is held at a time; a reload replaces it
// wholesale, never merges.
type documentCache struct {
	mu    sync.Mutex
	state cacheState
	doc   *dirsvc.Document
}

// ensure returns the cached document, reloading first when refresh is set
// or nothing has been loaded yet. The whole check-empty, reload, read
// sequence runs under one lock, so a caller sharing the client across
// goroutines never observes a mid-reload document.
func (c *documentCache) ensure(ctx context.Context, load loadFunc, refresh bool) (*dirsvc.Document, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if refresh || c.state == cacheEmpty {
		doc, err := load(ctx)
		if err != nil {
			// A failed fetch or parse must not clobber a previously good
			// document.
			return nil, err
		}

		c.doc = doc
		c.state = cachePopulated
	}

	return c.doc, nil
}

// populated reports whether a document has been loaded.
func (c *documentCache) populated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state == cachePopulated
}
