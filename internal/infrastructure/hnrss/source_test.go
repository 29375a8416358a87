package hnrss

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frontpageRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:dc="http://purl.org/dc/elements/1.1/">
  <channel>
    <title>Hacker News: Front Page</title>
    <link>https://news.ycombinator.com/</link>
    <item>
      <title>Show HN: A thing</title>
      <description><![CDATA[<p>Article URL: <a href="https://example.com/thing">https://example.com/thing</a></p>
<p>Comments URL: <a href="https://news.ycombinator.com/item?id=4242">https://news.ycombinator.com/item?id=4242</a></p>
<p>Points: 128</p>
<p># Comments: 37</p>]]></description>
      <pubDate>Fri, 02 Jan 2026 10:00:00 +0000</pubDate>
      <link>https://example.com/thing</link>
      <dc:creator>alice</dc:creator>
      <comments>https://news.ycombinator.com/item?id=4242</comments>
      <guid isPermaLink="false">https://news.ycombinator.com/item?id=4242</guid>
    </item>
    <item>
      <title>No id here</title>
      <description>nothing</description>
      <link>https://example.com/other</link>
    </item>
  </channel>
</rss>`

func TestSource_FetchFeed(t *testing.T) {
	var gotAccept, gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(frontpageRSS))
	}))
	defer server.Close()

	src := NewSource(server.URL, 5*time.Second)
	src.now = func() time.Time { return time.Date(2026, 1, 2, 13, 0, 0, 0, time.UTC) }

	entries, err := src.FetchFeed(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, 4242, entry.ID)
	assert.Equal(t, "Show HN: A thing", entry.Title)
	assert.Equal(t, "https://example.com/thing", entry.URL)
	assert.Equal(t, "alice", entry.User)
	assert.Equal(t, 128, entry.Points)
	assert.Equal(t, 37, entry.CommentsCount)
	assert.Equal(t, "3 hours ago", entry.TimeAgo)

	assert.Equal(t, feedAcceptHeader, gotAccept)
	assert.Equal(t, "hnreader/1.0", gotUA)
}

func TestSource_FetchFeedParserError(t *testing.T) {
	orig := ParserFunc
	defer func() { ParserFunc = orig }()
	ParserFunc = func(context.Context, string, *http.Client) (*gofeed.Feed, error) {
		return nil, errors.New("offline")
	}

	_, err := NewSource("", time.Second).FetchFeed(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "offline")
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time {
		v := now.Add(-d)
		return &v
	}

	assert.Equal(t, "", timeAgo(now, nil))
	assert.Equal(t, "just now", timeAgo(now, at(10*time.Second)))
	assert.Equal(t, "1 minute ago", timeAgo(now, at(time.Minute)))
	assert.Equal(t, "5 minutes ago", timeAgo(now, at(5*time.Minute)))
	assert.Equal(t, "1 hour ago", timeAgo(now, at(time.Hour)))
	assert.Equal(t, "2 days ago", timeAgo(now, at(49*time.Hour)))
}
