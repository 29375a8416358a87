// Package hnapi reads the Hacker News PWA JSON API.
package hnapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// MaxResponseSize bounds a decoded response body.
const MaxResponseSize = 10 * 1024 * 1024

const userAgent = "hnreader/1.0"

// Fetcher performs GET requests and decodes JSON bodies.
type Fetcher struct {
	http *http.Client
	log  zerolog.Logger
}

// NewFetcher creates a Fetcher. A nil httpClient gets a 10 second timeout.
func NewFetcher(httpClient *http.Client, logger zerolog.Logger) *Fetcher {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Fetcher{http: httpClient, log: logger}
}

// GetJSON fetches url and decodes the body into out.
func (f *Fetcher) GetJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := f.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s failed: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	f.log.Debug().
		Str("url", url).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("GET")

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("request %s failed with status %d: %s", url, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, MaxResponseSize)).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", url, err)
	}
	return nil
}
