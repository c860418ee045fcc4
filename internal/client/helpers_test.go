package client

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/identkit-io/dirsvc/internal/httpx"
)

// fakeDirectory is an in-memory directory API for tests: one listing
// document per resource path plus per-id detail documents, with hit
// counters so tests can assert which endpoints were actually fetched.
type fakeDirectory struct {
	mu          sync.Mutex
	listings    map[string]string // listing path -> XML
	details     map[string]string // detail path -> XML
	listingHits map[string]int
	detailHits  map[string]int
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{
		listings:    make(map[string]string),
		details:     make(map[string]string),
		listingHits: make(map[string]int),
		detailHits:  make(map[string]int),
	}
}

func (f *fakeDirectory) setListing(path, xml string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.listings[path] = xml
}

func (f *fakeDirectory) setDetail(path, xml string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.details[path] = xml
}

func (f *fakeDirectory) listingCount(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.listingHits[path]
}

func (f *fakeDirectory) detailCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	total := 0
	for _, count := range f.detailHits {
		total += count
	}

	return total
}

func (f *fakeDirectory) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	path := request.URL.Path

	if xml, ok := f.listings[path]; ok {
		f.listingHits[path]++

		writer.Header().Set("Content-Type", "application/xml")
		_, _ = writer.Write([]byte(xml))

		return
	}

	if xml, ok := f.details[path]; ok {
		f.detailHits[path]++

		writer.Header().Set("Content-Type", "application/xml")
		_, _ = writer.Write([]byte(xml))

		return
	}

	writer.WriteHeader(http.StatusNotFound)
	_, _ = writer.Write([]byte(`<error>not found</error>`))
}

// newTestServer starts a fake directory server and returns it with a client
// pointed at it.
func newTestServer() (*fakeDirectory, *httptest.Server, *Client) {
	fake := newFakeDirectory()
	server := httptest.NewServer(fake)

	client := &Client{
		httpClient: httpx.NewClient(server.URL, "test-key"),
		baseURL:    server.URL,
	}
	client.initializeResourceClients()

	return fake, server, client
}

// userListing builds a users listing document from (id, email) pairs.
func userListing(pairs ...[2]string) string {
	var builder strings.Builder

	builder.WriteString("<users>")

	for _, pair := range pairs {
		builder.WriteString("<user><id>")
		builder.WriteString(pair[0])
		builder.WriteString("</id><email>")
		builder.WriteString(pair[1])
		builder.WriteString("</email></user>")
	}

	builder.WriteString("</users>")

	return builder.String()
}

// userDetail builds a per-id user detail document carrying fields the
// listing does not.
func userDetail(id, email, firstname string) string {
	return "<user><id>" + id + "</id><email>" + email + "</email><firstname>" + firstname + "</firstname></user>"
}
