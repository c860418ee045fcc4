package dirsvc

import (
	"bytes"

	"github.com/antchfx/xmlquery"
)

// Document is the parsed, immutable result of one listing (or detail) call.
// A new fetch replaces the document wholesale; nothing merges into it.
type Document struct {
	root *xmlquery.Node
}

// ParseDocument parses raw response bytes into a Document. Payloads that
// cannot be interpreted as an XML document with at least one element fail
// with a *ParseError.
func ParseDocument(data []byte) (*Document, error) {
	root, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	if root.SelectElement("*") == nil {
		return nil, &ParseError{Err: ErrMalformedDocument}
	}

	return &Document{root: root}, nil
}

// Records returns every record element named elem, in document order.
func (d *Document) Records(elem string) []*xmlquery.Node {
	return xmlquery.Find(d.root, "//"+elem)
}

// Record returns the first record element named elem, or nil. Detail
// payloads carry exactly one record, which this selects.
func (d *Document) Record(elem string) *xmlquery.Node {
	return xmlquery.FindOne(d.root, "//"+elem)
}

// FilterRecords returns every record named elem that has a child field with
// text content exactly equal to search, in document order. The match is
// full string equality, case-sensitive; substrings never match. The child
// comparison is done directly on the queried nodes rather than by
// interpolating search into an XPath expression, so search terms containing
// quotes behave the same as any other value.
func (d *Document) FilterRecords(elem, field, search string) []*xmlquery.Node {
	var matches []*xmlquery.Node

	for _, rec := range d.Records(elem) {
		for child := rec.FirstChild; child != nil; child = child.NextSibling {
			if child.Type != xmlquery.ElementNode || child.Data != field {
				continue
			}

			if child.InnerText() == search {
				matches = append(matches, rec)

				break
			}
		}
	}

	return matches
}
