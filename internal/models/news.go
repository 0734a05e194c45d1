package models

import "time"

// NewsArticle represents a single headline pulled from an RSS feed
// (or synthesized when every feed is unreachable).
type NewsArticle struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"publishedAt"`
	Category    string    `json:"category,omitempty"`
}
