package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rssWithItems(count int) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?><rss version="2.0"><channel><title>Test Feed</title>`)
	for i := 0; i < count; i++ {
		fmt.Fprintf(&b, `<item>
			<title>Headline %d</title>
			<description><![CDATA[<p>Some <b>markup</b> heavy description %d. %s</p>]]></description>
			<link>https://example.org/story/%d</link>
			<pubDate>Mon, 0%d Jan 2024 12:00:00 GMT</pubDate>
		</item>`, i, i, strings.Repeat("padding words here ", 20), i, (i%7)+1)
	}
	b.WriteString(`</channel></rss>`)
	return b.String()
}

func TestParseFeedCapsAndStripsDescriptions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(rssWithItems(15)))
	}))
	defer srv.Close()

	client := NewNewsClient(testConfig("http://127.0.0.1:0"))

	articles, err := client.parseFeed(context.Background(), srv.URL)
	require.NoError(t, err)

	// Per-feed cap is 10 even when the feed offers 15.
	assert.Len(t, articles, maxArticlesPerFeed)

	for _, a := range articles {
		assert.LessOrEqual(t, len(a.Description), maxDescriptionLen)
		assert.NotContains(t, a.Description, "<")
		assert.True(t, strings.HasSuffix(a.Description, "..."))
		assert.Equal(t, "BBC News", a.Source)
		assert.False(t, a.PublishedAt.IsZero())
	}
}

func TestCleanDescription(t *testing.T) {
	client := NewNewsClient(testConfig("http://127.0.0.1:0"))

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"strips tags", "<p>Hello <b>world</b></p>", "Hello world"},
		{"unescapes entities", "Fish &amp; chips", "Fish & chips"},
		{"normalizes whitespace", "  too \n\n many\tspaces ", "too many spaces"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, client.CleanDescription(tt.input))
		})
	}

	long := client.CleanDescription(strings.Repeat("x", 500))
	assert.Len(t, long, maxDescriptionLen)
	assert.True(t, strings.HasSuffix(long, "..."))
}

func TestCleanDescriptionTruncatesOnRuneBoundary(t *testing.T) {
	client := NewNewsClient(testConfig("http://127.0.0.1:0"))

	// A multi-byte rune straddling the cut point must be dropped
	// whole, never split into a dangling lead byte.
	got := client.CleanDescription(strings.Repeat("x", 196) + "é…")

	assert.True(t, utf8.ValidString(got), "truncated description must stay valid UTF-8: %q", got)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.LessOrEqual(t, len(got), maxDescriptionLen)
	assert.NotContains(t, got, "\xc3")

	// Multi-byte text under the cap passes through untouched.
	assert.Equal(t, "crise à l’Élysée", client.CleanDescription("crise à l’Élysée"))
}

type failingTransport struct{}

func (failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, fmt.Errorf("network unreachable")
}

func TestFetchFallsBackToMockArticles(t *testing.T) {
	client := NewNewsClient(testConfig("http://127.0.0.1:0"))
	// Make every feed unreachable to force the designed fallback.
	client.parser.Client = &http.Client{Transport: failingTransport{}}

	articles := client.Fetch(context.Background(), "Wakanda")

	require.NotEmpty(t, articles)
	assert.LessOrEqual(t, len(articles), maxArticleReturn)

	for _, a := range articles {
		assert.Contains(t, a.Title, "Wakanda")
		assert.LessOrEqual(t, len(a.Description), maxDescriptionLen)
		assert.Equal(t, "World News", a.Category)
	}

	// Most recent first.
	for i := 1; i < len(articles); i++ {
		assert.False(t, articles[i].PublishedAt.After(articles[i-1].PublishedAt))
	}
}

func TestMockArticlesDeterministicTitles(t *testing.T) {
	client := NewNewsClient(testConfig("http://127.0.0.1:0"))

	first := client.mockArticles("Genovia")
	second := client.mockArticles("Genovia")

	require.Len(t, first, len(mockNewsTitles))
	for i := range first {
		assert.Equal(t, first[i].Title, second[i].Title)
		assert.Equal(t, first[i].URL, second[i].URL)
		assert.Equal(t, first[i].Source, second[i].Source)
	}
}
