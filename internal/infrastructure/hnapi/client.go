package hnapi

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/tesso57/hnreader/internal/domain/news"
)

// Default endpoints of the public HNPWA API.
const (
	DefaultFeedURL = "https://api.hnpwa.com/v0/news/1.json"
	DefaultItemURL = "https://api.hnpwa.com/v0/item/@id.json"
)

// ErrEmptyItem is returned when the item endpoint answers with no story,
// e.g. a JSON null for an unknown id.
var ErrEmptyItem = errors.New("empty response")

// idToken is replaced by the item id in the item endpoint.
const idToken = "@id"

// Client fetches the feed list and story details. It owns a Fetcher and
// forwards both calls to it.
type Client struct {
	fetcher *Fetcher
	feedURL string
	itemURL string
}

// NewClient creates a Client. Empty endpoints fall back to the defaults.
func NewClient(fetcher *Fetcher, feedURL, itemURL string) *Client {
	if feedURL == "" {
		feedURL = DefaultFeedURL
	}
	if itemURL == "" {
		itemURL = DefaultItemURL
	}
	return &Client{fetcher: fetcher, feedURL: feedURL, itemURL: itemURL}
}

// FetchFeed returns the feed entries in API order.
func (c *Client) FetchFeed(ctx context.Context) ([]news.FeedEntry, error) {
	var entries []news.FeedEntry
	if err := c.fetcher.GetJSON(ctx, c.feedURL, &entries); err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	return entries, nil
}

// FetchDetail returns the story id with its nested comments.
func (c *Client) FetchDetail(ctx context.Context, id string) (*news.DetailItem, error) {
	var item *news.DetailItem
	if err := c.fetcher.GetJSON(ctx, c.ItemURL(id), &item); err != nil {
		return nil, fmt.Errorf("fetch item %q: %w", id, err)
	}
	if item == nil || item.ID == 0 {
		return nil, fmt.Errorf("fetch item %q: %w", id, ErrEmptyItem)
	}
	return item, nil
}

// ItemURL expands the item endpoint for id.
func (c *Client) ItemURL(id string) string {
	return strings.Replace(c.itemURL, idToken, url.PathEscape(id), 1)
}
