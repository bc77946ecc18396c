package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const samplePage = `<!DOCTYPE html>
<html>
<head>
  <title> Python Tutorial </title>
  <style>body { color: red; }</style>
  <script>var tracking = "noise";</script>
</head>
<body>
  <h1>Learn Python</h1>
  <p>Python is a programming language.</p>
  <noscript>Enable JavaScript</noscript>
</body>
</html>`

func TestExtract(t *testing.T) {
	root, err := html.Parse(strings.NewReader(samplePage))
	require.NoError(t, err)

	title, content := extract(root)
	assert.Equal(t, "Python Tutorial", title)
	assert.Contains(t, content, "Learn Python")
	assert.Contains(t, content, "programming language")

	// script, style and noscript subtrees never leak into the content.
	assert.NotContains(t, content, "tracking")
	assert.NotContains(t, content, "color: red")
	assert.NotContains(t, content, "Enable JavaScript")
}

func TestScrape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(samplePage))
	}))
	defer server.Close()

	doc, err := New().Scrape(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, server.URL, doc.ID)
	assert.Equal(t, server.URL, doc.URL)
	assert.Equal(t, "Python Tutorial", doc.Title)
	assert.Contains(t, doc.Content, "Learn Python")
	require.NotNil(t, doc.ScrapedAt)
}

func TestScrapeNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := New().Scrape(context.Background(), server.URL)
	assert.Error(t, err)
}
