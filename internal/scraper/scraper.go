// Package scraper fetches a web page and turns it into a Document: the
// page <title> becomes the title and the visible text becomes the content.
package scraper

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/searchlite/searchlite/model"
)

const defaultTimeout = 15 * time.Second

// Scraper fetches and extracts documents from URLs.
type Scraper struct {
	client *http.Client
}

// New creates a scraper with a bounded request timeout.
func New() *Scraper {
	return &Scraper{client: &http.Client{Timeout: defaultTimeout}}
}

// Scrape fetches the URL and returns a document whose ID is the URL
// itself. The caller decides whether to index or persist it.
func (s *Scraper) Scrape(ctx context.Context, url string) (model.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return model.Document{}, fmt.Errorf("failed to build request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", "searchlite/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return model.Document{}, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.Document{}, fmt.Errorf("fetching %s returned status %d", url, resp.StatusCode)
	}

	root, err := html.Parse(resp.Body)
	if err != nil {
		return model.Document{}, fmt.Errorf("failed to parse HTML from %s: %w", url, err)
	}

	title, content := extract(root)
	now := time.Now().UTC()
	return model.Document{
		ID:        url,
		Title:     title,
		Content:   content,
		URL:       url,
		ScrapedAt: &now,
	}, nil
}

// extract walks the parsed tree collecting the title and the visible text,
// skipping script and style subtrees.
func extract(root *html.Node) (title, content string) {
	var text strings.Builder

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			case "title":
				if title == "" && n.FirstChild != nil {
					title = strings.TrimSpace(n.FirstChild.Data)
				}
				return
			}
		}
		if n.Type == html.TextNode {
			trimmed := strings.TrimSpace(n.Data)
			if trimmed != "" {
				if text.Len() > 0 {
					text.WriteByte(' ')
				}
				text.WriteString(trimmed)
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)

	return title, text.String()
}
