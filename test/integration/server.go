//go:build integration

package integration

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"

	"github.com/julienschmidt/httprouter"
)

// mockDirectory is an in-process directory API server backed by httprouter.
// It serves listing and per-id detail documents for every resource type and
// verifies the basic-auth credential on each request.
type mockDirectory struct {
	mu      sync.Mutex
	apiKey  string
	records map[string]map[string]map[string]string // resource -> id -> field -> value
}

func newMockDirectory(apiKey string) *mockDirectory {
	return &mockDirectory{
		apiKey:  apiKey,
		records: make(map[string]map[string]map[string]string),
	}
}

// addRecord registers a record under a plural resource name ("users").
// The fields map must carry an "id" entry.
func (m *mockDirectory) addRecord(resource string, fields map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.records[resource] == nil {
		m.records[resource] = make(map[string]map[string]string)
	}

	m.records[resource][fields["id"]] = fields
}

func (m *mockDirectory) removeRecord(resource, id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.records[resource], id)
}

func (m *mockDirectory) start() *httptest.Server {
	router := httprouter.New()
	router.GET("/api/v3/:resource", m.handleListing)
	router.GET("/api/v3/:resource/:id", m.handleDetail)

	return httptest.NewServer(router)
}

func (m *mockDirectory) authorized(request *http.Request) bool {
	username, password, ok := request.BasicAuth()

	return ok && username == m.apiKey && password == "x"
}

func (m *mockDirectory) handleListing(writer http.ResponseWriter, request *http.Request, params httprouter.Params) {
	if !m.authorized(request) {
		writer.WriteHeader(http.StatusUnauthorized)

		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	resource := params.ByName("resource")

	records, ok := m.records[resource]
	if !ok {
		writer.WriteHeader(http.StatusNotFound)

		return
	}

	ids := make([]string, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	var builder strings.Builder

	builder.WriteString("<" + resource + ">")

	for _, id := range ids {
		builder.WriteString(renderRecord(singular(resource), records[id]))
	}

	builder.WriteString("</" + resource + ">")

	writeXML(writer, builder.String())
}

func (m *mockDirectory) handleDetail(writer http.ResponseWriter, request *http.Request, params httprouter.Params) {
	if !m.authorized(request) {
		writer.WriteHeader(http.StatusUnauthorized)

		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	resource := params.ByName("resource")

	fields, ok := m.records[resource][params.ByName("id")]
	if !ok {
		writer.WriteHeader(http.StatusNotFound)

		return
	}

	writeXML(writer, renderRecord(singular(resource), fields))
}

func renderRecord(element string, fields map[string]string) string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}

	sort.Strings(names)

	var builder strings.Builder

	builder.WriteString("<" + element + ">")

	for _, name := range names {
		fmt.Fprintf(&builder, "<%s>%s</%s>", name, fields[name], name)
	}

	builder.WriteString("</" + element + ">")

	return builder.String()
}

func singular(resource string) string {
	return strings.TrimSuffix(resource, "s")
}

func writeXML(writer http.ResponseWriter, body string) {
	writer.Header().Set("Content-Type", "application/xml")
	_, _ = writer.Write([]byte(body))
}
