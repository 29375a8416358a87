package news

import "fmt"

// Store holds the fetched feed and the page the reader is on.
// It is created once at startup and shared by pointer, so read flags set by
// one screen are visible to the others without a re-fetch.
type Store struct {
	currentPage int
	feed        []FeedEntry
}

// NewStore constructs an empty Store positioned on page 1.
func NewStore() *Store {
	return new(Store{currentPage: 1})
}

// CurrentPage returns the 1-based page number.
func (s *Store) CurrentPage() int {
	return s.currentPage
}

// SetCurrentPage moves to page; values below 1 become 1.
func (s *Store) SetCurrentPage(page int) {
	if page < 1 {
		page = 1
	}
	s.currentPage = page
}

// HasFeed reports whether the feed has been populated.
func (s *Store) HasFeed() bool {
	return len(s.feed) > 0
}

// SetFeed replaces the feed. Every entry starts unread.
func (s *Store) SetFeed(entries []FeedEntry) {
	feed := make([]FeedEntry, len(entries))
	copy(feed, entries)
	for i := range feed {
		feed[i].Read = false
	}
	s.feed = feed
}

// Invalidate drops the cached feed so the next load fetches again.
func (s *Store) Invalidate() {
	s.feed = nil
}

// FeedLength returns the number of entries.
func (s *Store) FeedLength() int {
	return len(s.feed)
}

// EntryAt returns the entry at index. Callers bound the index against
// FeedLength first; an out of range index panics.
func (s *Store) EntryAt(index int) FeedEntry {
	if index < 0 || index >= len(s.feed) {
		panic(fmt.Sprintf("news: entry index %d out of range [0,%d)", index, len(s.feed)))
	}
	return s.feed[index]
}

// MarkRead flags the first entry with id as read.
func (s *Store) MarkRead(id int) {
	for i := range s.feed {
		if s.feed[i].ID == id {
			s.feed[i].Read = true
			return
		}
	}
}

// PageCount returns ceil(FeedLength / pageSize).
func (s *Store) PageCount(pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	n := len(s.feed)
	count := n / pageSize
	if n%pageSize > 0 {
		count++
	}
	return count
}

// PreviousPage returns CurrentPage-1 without clamping.
func (s *Store) PreviousPage() int {
	return s.currentPage - 1
}

// NextPage returns CurrentPage+1 without clamping.
func (s *Store) NextPage() int {
	return s.currentPage + 1
}

// Window returns the [start, end) index range of the current page, clamped
// to FeedLength. A page past the end yields an empty range.
func (s *Store) Window(pageSize int) (int, int) {
	n := len(s.feed)
	if pageSize <= 0 {
		return 0, 0
	}
	start := (s.currentPage - 1) * pageSize
	if start >= n {
		return n, n
	}
	end := min(start+pageSize, n)
	return start, end
}
