// Package usecase contains application-level services.
package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/tesso57/hnreader/internal/domain/news"
)

// FeedSource fetches the front-page feed.
type FeedSource interface {
	FetchFeed(ctx context.Context) ([]news.FeedEntry, error)
}

// DetailSource fetches one story with its comments.
type DetailSource interface {
	FetchDetail(ctx context.Context, id string) (*news.DetailItem, error)
}

// VisitRepository abstracts visit history persistence.
type VisitRepository interface {
	Record(ctx context.Context, visit news.Visit) error
	Recent(ctx context.Context, limit int) ([]news.Visit, error)
}

// ErrNoHistory is returned when no visit repository is configured.
var ErrNoHistory = errors.New("visit history is not configured")

// ReadingService coordinates news fetching and visit history.
type ReadingService struct {
	Feed    FeedSource
	Detail  DetailSource
	Visits  VisitRepository
	Timeout time.Duration
	Now     func() time.Time
}

// NewReadingService constructs a ReadingService.
func NewReadingService(feed FeedSource, detail DetailSource, visits VisitRepository, timeout time.Duration, now func() time.Time) ReadingService {
	return ReadingService{
		Feed:    feed,
		Detail:  detail,
		Visits:  visits,
		Timeout: timeout,
		Now:     now,
	}
}

// FetchFeed fetches the feed list.
func (s ReadingService) FetchFeed() ([]news.FeedEntry, error) {
	ctx, cancel := s.context()
	defer cancel()
	return s.Feed.FetchFeed(ctx)
}

// FetchDetail fetches a story and its comment tree.
func (s ReadingService) FetchDetail(id string) (*news.DetailItem, error) {
	ctx, cancel := s.context()
	defer cancel()
	return s.Detail.FetchDetail(ctx, id)
}

// RecordVisit stores that item was opened. It is a no-op without a repository.
func (s ReadingService) RecordVisit(item news.DetailItem) error {
	if s.Visits == nil {
		return nil
	}
	ctx, cancel := s.context()
	defer cancel()
	return s.Visits.Record(ctx, news.Visit{
		ID:        item.ID,
		Title:     item.Title,
		URL:       item.URL,
		User:      item.User,
		VisitedAt: s.now(),
	})
}

// RecentVisits returns the latest visits, newest first.
func (s ReadingService) RecentVisits(limit int) ([]news.Visit, error) {
	if s.Visits == nil {
		return nil, ErrNoHistory
	}
	if limit <= 0 {
		limit = 20
	}
	ctx, cancel := s.context()
	defer cancel()
	return s.Visits.Recent(ctx, limit)
}

func (s ReadingService) context() (context.Context, context.CancelFunc) {
	if s.Timeout > 0 {
		return context.WithTimeout(context.Background(), s.Timeout)
	}
	return context.WithCancel(context.Background())
}

func (s ReadingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
