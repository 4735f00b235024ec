package feed_sniffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspect(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantRoot  string
		wantShape bool
		wantErr   bool
	}{
		{
			name:      "rss 2.0",
			body:      `<?xml version="1.0"?><rss version="2.0"><channel><title>x</title><item><title>a</title></item></channel></rss>`,
			wantRoot:  "rss",
			wantShape: true,
		},
		{
			name:      "atom with namespace",
			body:      `<feed xmlns="http://www.w3.org/2005/Atom"><title>x</title><entry><id>1</id></entry></feed>`,
			wantRoot:  "feed",
			wantShape: true,
		},
		{
			name:      "rdf with prefixed root",
			body:      `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#" xmlns="http://purl.org/rss/1.0/"><channel/><item/></rdf:RDF>`,
			wantRoot:  "rdf",
			wantShape: true,
		},
		{
			name:      "well formed but not a feed",
			body:      `<html><body><p>hello</p></body></html>`,
			wantRoot:  "html",
			wantShape: false,
		},
		{
			name:      "nested item is not a direct child",
			body:      `<root><wrapper><item/></wrapper></root>`,
			wantRoot:  "root",
			wantShape: false,
		},
		{name: "truncated", body: `<rss><channel><item>`, wantErr: true},
		{name: "mismatched tags", body: `<rss><channel></rss></channel>`, wantErr: true},
		{name: "not xml", body: `{"json": true}`, wantErr: true},
		{name: "empty", body: ``, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Inspect([]byte(tt.body))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRoot, doc.Root)
			assert.Equal(t, tt.wantShape, doc.HasFeedShape())
		})
	}
}

func TestInspect_DeclaredCharset(t *testing.T) {
	body := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><rss><channel><title>Caf\xe9</title></channel></rss>"
	doc, err := Inspect([]byte(body))
	require.NoError(t, err)
	assert.True(t, doc.HasFeedShape())
}

func TestSignals(t *testing.T) {
	assert.True(t, HasContentTypeSignal("application/rss+xml; charset=utf-8"))
	assert.True(t, HasContentTypeSignal("application/atom+xml"))
	assert.True(t, HasContentTypeSignal("text/XML"))
	assert.False(t, HasContentTypeSignal("text/html"))
	assert.False(t, HasContentTypeSignal(""))

	assert.True(t, HasBodySignal([]byte(`<RSS version="2.0">`)))
	assert.True(t, HasBodySignal([]byte(`<feed xmlns="http://www.w3.org/2005/Atom">`)))
	assert.True(t, HasBodySignal([]byte(`<?xml version="1.0"?><x/>`)))
	assert.False(t, HasBodySignal([]byte(`<html></html>`)))
}
