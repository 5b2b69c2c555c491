package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/runnerr0/lifelog/internal/clock"
	"github.com/runnerr0/lifelog/internal/logging"
)

// Store defines the journal data operations.
type Store interface {
	Insert(ctx context.Context, text string) (*Event, error)
	Get(ctx context.Context, id int64) (*Event, error)
	FetchByDatePrefix(ctx context.Context, prefix string) ([]Event, error)
	FetchFrom(ctx context.Context, startDate string) ([]Event, error)
	FetchAll(ctx context.Context) ([]Event, error)
	Search(ctx context.Context, keyword string) ([]Event, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*Stats, error)
	Close() error
}

// Options configures Open. Zero values select the system clock and a
// logger that discards everything.
type Options struct {
	Clock  clock.Clock
	Logger *slog.Logger
}

// SQLiteStore implements Store backed by a single SQLite file.
type SQLiteStore struct {
	mu     sync.Mutex
	db     *sql.DB
	path   string
	closed bool

	clock clock.Clock
	log   *slog.Logger

	// Prepared statements
	insertEvent *sql.Stmt
	getEvent    *sql.Stmt
	deleteEvent *sql.Stmt
}

const selectColumns = `SELECT id, timestamp, text FROM life_events`

// Open opens the journal database at path, creating the file and schema
// if they do not exist. The parent directory must already exist.
func Open(path string, opts Options) (*SQLiteStore, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty database path", ErrStorageUnavailable)
	}

	db, err := sql.Open("sqlite3", connString(path))
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrStorageUnavailable, path, err)
	}

	// One connection: the journal has a single writer and this keeps
	// pragmas applied to the only connection in use.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: connect %s: %w", ErrStorageUnavailable, path, err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	if err := ensureSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: create schema: %w", ErrStorageUnavailable, err)
	}

	s := &SQLiteStore{
		db:    db,
		path:  path,
		clock: opts.Clock,
		log:   opts.Logger,
	}
	if s.clock == nil {
		s.clock = clock.System()
	}
	if s.log == nil {
		s.log = logging.Discard()
	}

	if err := s.prepareStatements(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: prepare statements: %w", ErrStorageUnavailable, err)
	}

	s.log.Debug("store opened", "path", path)
	return s, nil
}

// connString turns a file path into a SQLite URI so that '?', '#' and '%'
// in the path are part of the file name rather than query syntax.
func connString(path string) string {
	return "file:" + (&url.URL{Path: path}).EscapedPath()
}

func (s *SQLiteStore) prepareStatements() error {
	var err error

	s.insertEvent, err = s.db.Prepare(`INSERT INTO life_events (timestamp, text) VALUES (?, ?)`)
	if err != nil {
		return err
	}

	s.getEvent, err = s.db.Prepare(selectColumns + ` WHERE id = ?`)
	if err != nil {
		return err
	}

	s.deleteEvent, err = s.db.Prepare(`DELETE FROM life_events WHERE id = ?`)
	if err != nil {
		return err
	}

	return nil
}

// Path returns the database file the store was opened on.
func (s *SQLiteStore) Path() string {
	return s.path
}

func (s *SQLiteStore) checkOpen() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrInvalidHandle
	}
	return nil
}

// escapeLike makes s match literally inside a LIKE pattern using '\' as the
// escape character.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// parseTimestamp reads a stored timestamp in the local time zone.
func parseTimestamp(s string) (time.Time, error) {
	t, err := time.ParseInLocation(TimestampLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("cannot parse timestamp: %s", s)
	}
	return t, nil
}

// Insert stores text as a new event stamped with the store clock's current
// time. Text is stored verbatim; empty strings are accepted.
func (s *SQLiteStore) Insert(ctx context.Context, text string) (*Event, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	now := s.clock.Now().Local().Truncate(time.Second)
	stamp := now.Format(TimestampLayout)

	res, err := s.insertEvent.ExecContext(ctx, stamp, text)
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("read event id: %w", err)
	}

	e := &Event{ID: id, Timestamp: now, Text: text}

	s.log.Debug("event inserted", "id", id, "timestamp", stamp, "text", text)
	return e, nil
}

// Get retrieves a single event by id.
func (s *SQLiteStore) Get(ctx context.Context, id int64) (*Event, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	var e Event
	var stamp string
	err := s.getEvent.QueryRowContext(ctx, id).Scan(&e.ID, &stamp, &e.Text)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("event %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if e.Timestamp, err = parseTimestamp(stamp); err != nil {
		return nil, fmt.Errorf("event %d: %w", id, err)
	}

	return &e, nil
}

// FetchByDatePrefix returns events whose timestamp starts with prefix,
// typically a YYYY-MM-DD day. Wildcard characters in prefix match literally.
func (s *SQLiteStore) FetchByDatePrefix(ctx context.Context, prefix string) ([]Event, error) {
	return s.scanEvents(ctx,
		selectColumns+` WHERE timestamp LIKE ? ESCAPE '\' ORDER BY id`,
		escapeLike(prefix)+"%",
	)
}

// FetchFrom returns events recorded at or after the start of startDate.
// There is no upper bound.
func (s *SQLiteStore) FetchFrom(ctx context.Context, startDate string) ([]Event, error) {
	return s.scanEvents(ctx,
		selectColumns+` WHERE timestamp >= ? ORDER BY id`,
		startDate+" 00:00:00",
	)
}

// FetchAll returns every event in insertion order.
func (s *SQLiteStore) FetchAll(ctx context.Context) ([]Event, error) {
	return s.scanEvents(ctx, selectColumns+` ORDER BY id`)
}

// Search returns events whose text contains keyword. Matching follows SQLite
// LIKE, which ignores case for ASCII letters only.
func (s *SQLiteStore) Search(ctx context.Context, keyword string) ([]Event, error) {
	s.log.Debug("search", "keyword", keyword)
	return s.scanEvents(ctx,
		selectColumns+` WHERE text LIKE ? ESCAPE '\' ORDER BY id`,
		"%"+escapeLike(keyword)+"%",
	)
}

// scanEvents executes a query and scans results into Event slices.
func (s *SQLiteStore) scanEvents(ctx context.Context, query string, args ...interface{}) ([]Event, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	events := []Event{}
	for rows.Next() {
		var e Event
		var stamp string
		if err := rows.Scan(&e.ID, &stamp, &e.Text); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		if e.Timestamp, err = parseTimestamp(stamp); err != nil {
			return nil, fmt.Errorf("event %d: %w", e.ID, err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// Delete removes the event with the given id. Deleting an id that does not
// exist is not an error.
func (s *SQLiteStore) Delete(ctx context.Context, id int64) error {
	if err := s.checkOpen(); err != nil {
		return err
	}

	res, err := s.deleteEvent.ExecContext(ctx, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	s.log.Debug("event deleted", "id", id, "rows", n)

	return nil
}

// Stats returns aggregate statistics about the database.
func (s *SQLiteStore) Stats(ctx context.Context) (*Stats, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	stats := &Stats{}

	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM life_events").Scan(&stats.TotalEvents)
	if err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}

	if stats.TotalEvents > 0 {
		var oldest, newest string
		err = s.db.QueryRowContext(ctx,
			"SELECT MIN(timestamp), MAX(timestamp), MAX(id) FROM life_events",
		).Scan(&oldest, &newest, &stats.LastID)
		if err != nil {
			return nil, fmt.Errorf("event time range: %w", err)
		}
		if stats.OldestEvent, err = parseTimestamp(oldest); err != nil {
			return nil, err
		}
		if stats.NewestEvent, err = parseTimestamp(newest); err != nil {
			return nil, err
		}
	}

	stats.DatabaseSizeBytes = s.databaseSize(ctx)

	return stats, nil
}

// databaseSize returns the logical database size (page_count * page_size),
// which includes pages still held in the WAL. It falls back to the file size.
func (s *SQLiteStore) databaseSize(ctx context.Context) int64 {
	var pageCount, pageSize int64
	err := s.db.QueryRowContext(ctx, "PRAGMA page_count").Scan(&pageCount)
	if err == nil {
		err = s.db.QueryRowContext(ctx, "PRAGMA page_size").Scan(&pageSize)
	}
	if err == nil {
		return pageCount * pageSize
	}

	if info, err := os.Stat(s.path); err == nil {
		return info.Size()
	}
	return 0
}

// Close releases the prepared statements and the database connection.
// The store cannot be reopened; later calls return ErrInvalidHandle.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrInvalidHandle
	}
	s.closed = true

	stmts := []*sql.Stmt{s.insertEvent, s.getEvent, s.deleteEvent}
	for _, stmt := range stmts {
		if stmt != nil {
			stmt.Close()
		}
	}

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	s.log.Debug("store closed", "path", s.path)
	return nil
}
