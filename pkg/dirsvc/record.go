package dirsvc

import (
	"github.com/antchfx/xmlquery"
)

// Record is a read-only view over one record element of a directory
// document. Field values are copied out of the node once at construction;
// the record never mutates or retains the underlying tree.
type Record struct {
	element  string
	identity string
	fields   map[string]string
}

// NewRecord builds a Record from one record element. Every element child
// becomes a named field (first occurrence wins when a name repeats). The
// record must carry a non-empty id child; otherwise construction fails with
// a *MissingIdentityError.
func NewRecord(node *xmlquery.Node) (*Record, error) {
	fields := make(map[string]string)

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != xmlquery.ElementNode {
			continue
		}

		if _, ok := fields[child.Data]; !ok {
			fields[child.Data] = child.InnerText()
		}
	}

	identity, ok := fields["id"]
	if !ok || identity == "" {
		return nil, &MissingIdentityError{Element: node.Data}
	}

	return &Record{
		element:  node.Data,
		identity: identity,
		fields:   fields,
	}, nil
}

// Identity returns the record's id. It is always non-empty once the record
// is constructed.
func (r *Record) Identity() string {
	return r.identity
}

// Element returns the record's element name (e.g. "user").
func (r *Record) Element() string {
	return r.element
}

// Field returns the text of the named field. A field the record does not
// carry is reported as absent, never as an error; the remote schema has
// many optional fields.
func (r *Record) Field(name string) (string, bool) {
	value, ok := r.fields[name]

	return value, ok
}

// Fields returns a copy of all named fields.
func (r *Record) Fields() map[string]string {
	fields := make(map[string]string, len(r.fields))
	for name, value := range r.fields {
		fields[name] = value
	}

	return fields
}
