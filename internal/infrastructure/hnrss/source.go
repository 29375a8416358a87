// Package hnrss reads the front page from an hnrss.org style RSS feed.
package hnrss

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/tesso57/hnreader/internal/domain/news"
)

// DefaultURL is the hnrss front page feed.
const DefaultURL = "https://hnrss.org/frontpage"

const feedAcceptHeader = "application/rss+xml, application/atom+xml, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.5"

var (
	reItemID   = regexp.MustCompile(`item\?id=(\d+)`)
	rePoints   = regexp.MustCompile(`Points:\s*(\d+)`)
	reComments = regexp.MustCompile(`#\s*Comments:\s*(\d+)`)
)

type acceptTransport struct {
	base http.RoundTripper
}

func (t acceptTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	clone := req.Clone(req.Context())
	if clone.Header.Get("Accept") == "" {
		clone.Header.Set("Accept", feedAcceptHeader)
	}
	return base.RoundTrip(clone)
}

// ParserFunc is exposed for testing.
var ParserFunc = defaultParser

func defaultParser(ctx context.Context, feedURL string, client *http.Client) (*gofeed.Feed, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = "hnreader/1.0"
	fp.Client = client
	return fp.ParseURLWithContext(feedURL, ctx)
}

// Source implements usecase.FeedSource on top of an RSS feed.
type Source struct {
	url    string
	client *http.Client
	now    func() time.Time
}

// NewSource creates a Source. An empty url uses DefaultURL.
func NewSource(feedURL string, timeout time.Duration) *Source {
	if strings.TrimSpace(feedURL) == "" {
		feedURL = DefaultURL
	}
	return &Source{
		url:    feedURL,
		client: &http.Client{Timeout: timeout, Transport: acceptTransport{base: http.DefaultTransport}},
		now:    time.Now,
	}
}

// FetchFeed parses the feed into entries. Items without a story id are skipped.
func (s *Source) FetchFeed(ctx context.Context) ([]news.FeedEntry, error) {
	parsed, err := ParserFunc(ctx, s.url, s.client)
	if err != nil {
		return nil, fmt.Errorf("fetch rss feed: %w", err)
	}
	if parsed == nil {
		return nil, errors.New("fetch rss feed: empty response")
	}

	now := s.now()
	entries := make([]news.FeedEntry, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item == nil {
			continue
		}
		id, ok := storyID(item)
		if !ok {
			continue
		}
		entries = append(entries, news.FeedEntry{
			NewsItem: news.NewsItem{
				ID:      id,
				Title:   item.Title,
				URL:     item.Link,
				User:    author(item),
				TimeAgo: timeAgo(now, item.PublishedParsed),
			},
			Points:        firstInt(rePoints, item.Description),
			CommentsCount: firstInt(reComments, item.Description),
		})
	}
	return entries, nil
}

func storyID(item *gofeed.Item) (int, bool) {
	for _, candidate := range []string{item.GUID, item.Description, item.Link} {
		if candidate == "" {
			continue
		}
		if u, err := url.Parse(candidate); err == nil && u.Query().Get("id") != "" {
			if id, err := strconv.Atoi(u.Query().Get("id")); err == nil {
				return id, true
			}
		}
		if m := reItemID.FindStringSubmatch(candidate); m != nil {
			if id, err := strconv.Atoi(m[1]); err == nil {
				return id, true
			}
		}
	}
	return 0, false
}

func author(item *gofeed.Item) string {
	if len(item.Authors) > 0 && item.Authors[0] != nil {
		return item.Authors[0].Name
	}
	if item.Author != nil {
		return item.Author.Name
	}
	return ""
}

func firstInt(re *regexp.Regexp, text string) int {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}

func timeAgo(now time.Time, then *time.Time) string {
	if then == nil || then.IsZero() {
		return ""
	}
	if then.After(now) {
		return "just now"
	}
	d := now.Sub(*then)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute")
	case d < 24*time.Hour:
		return plural(int(d/time.Hour), "hour")
	default:
		return plural(int(d/(24*time.Hour)), "day")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit + " ago"
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
