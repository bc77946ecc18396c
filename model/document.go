package model

import "time"

// Document is a single indexable record. ID is the only required field;
// Title and URL are optional and ScrapedAt is only set for documents that
// were ingested by the scraper.
type Document struct {
	ID        string     `json:"id"`
	Title     string     `json:"title,omitempty"`
	Content   string     `json:"content"`
	URL       string     `json:"url,omitempty"`
	ScrapedAt *time.Time `json:"scraped_at,omitempty"`
}

// CombinedText returns the text that gets indexed for this document:
// title and content joined with a space when a title is present.
func (d Document) CombinedText() string {
	if d.Title == "" {
		return d.Content
	}
	return d.Title + " " + d.Content
}
