package archive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"marquee/internal/config"
	"marquee/internal/media"
)

// ErrUnavailable indicates the archive could not be opened or read. The run
// must abort rather than silently starting from an empty archive, which
// would re-announce everything.
var ErrUnavailable = errors.New("archive unavailable")

// ErrLocked indicates another marquee run holds the archive lock.
var ErrLocked = errors.New("archive locked by another run")

// Record is one announced title as persisted.
type Record struct {
	TMDBID      int64
	Title       string
	IMDbID      string
	Director    string
	AnnouncedAt time.Time
}

// Stats summarizes the archive for CLI inspection.
type Stats struct {
	Announced     int
	LastAnnounced time.Time
}

// Store manages archive persistence backed by SQLite. A file lock next to
// the database prevents two runs from interleaving commits.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open initializes or connects to the archive database and acquires the run
// lock.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("%w: ensure directories: %v", ErrUnavailable, err)
	}

	lock := flock.New(cfg.Archive.Path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("%w: acquire lock: %v", ErrUnavailable, err)
	}
	if !locked {
		return nil, ErrLocked
	}

	db, err := sql.Open("sqlite", cfg.Archive.Path)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("%w: open sqlite db: %v", ErrUnavailable, err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("%w: apply pragma %q: %v", ErrUnavailable, pragma, execErr)
		}
	}

	store := &Store{db: db, path: cfg.Archive.Path, lock: lock}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return store, nil
}

// Close releases the run lock and the database connection.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var firstErr error
	if s.db != nil {
		firstErr = s.db.Close()
	}
	if s.lock != nil {
		if err := s.lock.Unlock(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Path returns the database location.
func (s *Store) Path() string {
	return s.path
}

// Seen loads the full announced id set. Called once at run start; the
// pipeline evaluates every credit against this snapshot.
func (s *Store) Seen(ctx context.Context) (Set, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT tmdb_id FROM announced")
	if err != nil {
		return nil, fmt.Errorf("%w: load announced ids: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	seen := NewSet()
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: scan announced id: %v", ErrUnavailable, err)
		}
		seen.Add(id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate announced ids: %v", ErrUnavailable, err)
	}
	return seen, nil
}

// Commit records the delivered releases in one transaction. INSERT OR IGNORE
// keeps the archive monotonic even if a release was committed by an earlier
// run.
func (s *Store) Commit(ctx context.Context, releases []media.Release) error {
	if len(releases) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin commit tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		"INSERT OR IGNORE INTO announced (tmdb_id, title, imdb_id, director, announced_at) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, release := range releases {
		if _, err := stmt.ExecContext(ctx, release.TMDBID, release.Title, release.IMDbID, release.Director, now); err != nil {
			return fmt.Errorf("insert announced %d: %w", release.TMDBID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit archive: %w", err)
	}
	return nil
}

// All returns every announced record, most recent first.
func (s *Store) All(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT tmdb_id, title, imdb_id, director, announced_at FROM announced ORDER BY announced_at DESC, tmdb_id")
	if err != nil {
		return nil, fmt.Errorf("%w: list announced: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var announced string
		if err := rows.Scan(&rec.TMDBID, &rec.Title, &rec.IMDbID, &rec.Director, &announced); err != nil {
			return nil, fmt.Errorf("%w: scan announced: %v", ErrUnavailable, err)
		}
		if parsed, parseErr := time.Parse(time.RFC3339, announced); parseErr == nil {
			rec.AnnouncedAt = parsed
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate announced: %v", ErrUnavailable, err)
	}
	return records, nil
}

// Stats summarizes the archive.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var stats Stats
	var last sql.NullString
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1), MAX(announced_at) FROM announced").Scan(&stats.Announced, &last)
	if err != nil {
		return Stats{}, fmt.Errorf("%w: archive stats: %v", ErrUnavailable, err)
	}
	if last.Valid {
		if parsed, parseErr := time.Parse(time.RFC3339, last.String); parseErr == nil {
			stats.LastAnnounced = parsed
		}
	}
	return stats, nil
}
