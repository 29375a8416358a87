// Package news defines core reading models for the Hacker News reader.
package news

import "time"

// NewsItem holds the fields shared by feed entries, details and comments.
type NewsItem struct {
	ID      int    `json:"id"`
	TimeAgo string `json:"time_ago"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	User    string `json:"user"`
	Content string `json:"content"`
}

// FeedEntry is one row of the paginated front page.
type FeedEntry struct {
	NewsItem
	CommentsCount int  `json:"comments_count"`
	Points        int  `json:"points"`
	Read          bool `json:"-"`
}

// DetailItem is a single story with its comment tree.
type DetailItem struct {
	NewsItem
	Comments []CommentNode `json:"comments"`
}

// CommentNode is a comment and its replies. Level is 0 for top-level comments.
type CommentNode struct {
	NewsItem
	Comments []CommentNode `json:"comments"`
	Level    int           `json:"level"`
}

// Visit records a story opened in the detail screen.
type Visit struct {
	ID        int       `db:"id"`
	Title     string    `db:"title"`
	URL       string    `db:"url"`
	User      string    `db:"user"`
	VisitedAt time.Time `db:"visited_at"`
}
