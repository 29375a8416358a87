// Package history persists visited stories in a SQLite database.
package history

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/tesso57/hnreader/internal/domain/news"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS visits (
	id         INTEGER PRIMARY KEY,
	title      TEXT NOT NULL DEFAULT '',
	url        TEXT NOT NULL DEFAULT '',
	user       TEXT NOT NULL DEFAULT '',
	visited_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_visits_visited_at ON visits (visited_at DESC);
`

// ErrClosed is returned after Close.
var ErrClosed = errors.New("history: manager is closed")

// Manager stores visits. It implements usecase.VisitRepository.
type Manager struct {
	mu     sync.Mutex
	path   string
	db     *sqlx.DB
	closed bool
}

// NewManager creates a history manager for the database at path.
// The database is opened lazily on first use.
func NewManager(path string) *Manager {
	return new(Manager{
		path: strings.TrimSpace(path),
	})
}

// Path returns the database location.
func (m *Manager) Path() string {
	return m.path
}

// Record inserts or refreshes a visit.
func (m *Manager) Record(ctx context.Context, visit news.Visit) error {
	db, err := m.open()
	if err != nil {
		return err
	}
	_, err = db.NamedExecContext(ctx, `
		INSERT INTO visits (id, title, url, user, visited_at)
		VALUES (:id, :title, :url, :user, :visited_at)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			url = excluded.url,
			user = excluded.user,
			visited_at = excluded.visited_at`, visit)
	if err != nil {
		return fmt.Errorf("record visit %d: %w", visit.ID, err)
	}
	return nil
}

// Recent returns up to limit visits, newest first.
func (m *Manager) Recent(ctx context.Context, limit int) ([]news.Visit, error) {
	db, err := m.open()
	if err != nil {
		return nil, err
	}
	visits := []news.Visit{}
	err = db.SelectContext(ctx, &visits, `
		SELECT id, title, url, user, visited_at
		FROM visits
		ORDER BY visited_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("load visits: %w", err)
	}
	return visits, nil
}

// Close releases the database handle.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	if m.db == nil {
		return nil
	}
	err := m.db.Close()
	m.db = nil
	return err
}

func (m *Manager) open() (*sqlx.DB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db != nil {
		return m.db, nil
	}
	if m.closed {
		return nil, ErrClosed
	}
	if dir := filepath.Dir(m.path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("create history directory: %w", err)
		}
	}

	db, err := sqlx.Open("sqlite", m.path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate history database: %w", err)
	}
	m.db = db
	return db, nil
}
