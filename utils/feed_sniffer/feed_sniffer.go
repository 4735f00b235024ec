// Package feed_sniffer inspects raw documents for RSS/Atom signals without building a feed model.
package feed_sniffer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	xpp "github.com/mmcdole/goxpp"
	"golang.org/x/net/html/charset"
)

var ErrNoRootElement = errors.New("document has no root element")

// Document records the root element and the local names of its direct children.
type Document struct {
	Root     string
	Children map[string]bool
}

// HasFeedShape reports whether the root exposes a channel, item or entry child.
func (d *Document) HasFeedShape() bool {
	return d.Children["channel"] || d.Children["item"] || d.Children["entry"]
}

// Inspect walks the whole document with a strict pull parser, so any syntax error fails.
// Namespaces are ignored; names are compared by local part.
func Inspect(body []byte) (*Document, error) {
	p := xpp.NewXMLPullParser(bytes.NewReader(body), true, charset.NewReaderLabel)

	doc := &Document{Children: make(map[string]bool)}
	depth := 0

	for {
		event, err := p.Next()
		if err != nil {
			return nil, fmt.Errorf("malformed xml: %w", err)
		}

		switch event {
		case xpp.StartTag:
			depth++
			name := strings.ToLower(p.Name)
			switch depth {
			case 1:
				if doc.Root != "" {
					return nil, errors.New("malformed xml: multiple root elements")
				}
				doc.Root = name
			case 2:
				doc.Children[name] = true
			}
		case xpp.EndTag:
			depth--
		case xpp.EndDocument:
			if doc.Root == "" {
				return nil, ErrNoRootElement
			}
			if depth != 0 {
				return nil, io.ErrUnexpectedEOF
			}
			return doc, nil
		}
	}
}

// HasContentTypeSignal reports whether a Content-Type header names an XML, RSS or Atom media type.
func HasContentTypeSignal(contentType string) bool {
	ct := strings.ToLower(contentType)
	return strings.Contains(ct, "xml") || strings.Contains(ct, "rss") || strings.Contains(ct, "atom")
}

// HasBodySignal reports whether the body carries an <rss, <feed or <?xml marker.
func HasBodySignal(body []byte) bool {
	lower := bytes.ToLower(body)
	return bytes.Contains(lower, []byte("<rss")) ||
		bytes.Contains(lower, []byte("<feed")) ||
		bytes.Contains(lower, []byte("<?xml"))
}
