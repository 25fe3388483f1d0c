// Package cache persists movie metadata lookups in a local SQLite database.
//
// Keys are normalized lowercase titles (see internal/title). Entries are
// never expired: a title looked up once never costs another external call.
package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound signals a cache miss.
var ErrNotFound = errors.New("movie not in cache")

type Cache struct {
	readDB  *sql.DB
	writeDB *sql.DB
}

func Open(dbPath string) (*Cache, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	writeDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening write db: %w", err)
	}
	writeDB.SetMaxOpenConns(1)

	readDB, err := sql.Open("sqlite", dbPath+"?mode=ro")
	if err != nil {
		writeDB.Close()
		return nil, fmt.Errorf("opening read db: %w", err)
	}

	c := &Cache{readDB: readDB, writeDB: writeDB}
	if err := c.init(); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

func (c *Cache) init() error {
	_, err := c.writeDB.Exec(`
		CREATE TABLE IF NOT EXISTS movies (
			title      TEXT PRIMARY KEY,
			rating     REAL NOT NULL DEFAULT 0,
			poster     TEXT NOT NULL DEFAULT '',
			imdb_id    TEXT NOT NULL DEFAULT '',
			fetched_at DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

func (c *Cache) Close() error {
	var errs []error
	if c.readDB != nil {
		errs = append(errs, c.readDB.Close())
	}
	if c.writeDB != nil {
		errs = append(errs, c.writeDB.Close())
	}
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

// GetMovie looks up a movie by its normalized lowercase title key.
// Returns ErrNotFound on a miss.
func (c *Cache) GetMovie(key string) (Movie, error) {
	var m Movie
	err := c.readDB.QueryRow(
		"SELECT title, rating, poster, imdb_id, fetched_at FROM movies WHERE title = ?", key,
	).Scan(&m.Title, &m.Rating, &m.Poster, &m.IMDBID, &m.FetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Movie{}, ErrNotFound
	}
	if err != nil {
		return Movie{}, fmt.Errorf("querying movie %q: %w", key, err)
	}
	return m, nil
}

// PutMovie upserts a movie record keyed by its Title. Last write wins.
func (c *Cache) PutMovie(m Movie) error {
	if m.FetchedAt.IsZero() {
		m.FetchedAt = time.Now()
	}
	_, err := c.writeDB.Exec(`
		INSERT INTO movies (title, rating, poster, imdb_id, fetched_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(title) DO UPDATE SET
			rating = excluded.rating,
			poster = excluded.poster,
			imdb_id = excluded.imdb_id,
			fetched_at = excluded.fetched_at
	`, m.Title, m.Rating, m.Poster, m.IMDBID, m.FetchedAt)
	if err != nil {
		return fmt.Errorf("upserting movie %q: %w", m.Title, err)
	}
	return nil
}

// Stats returns the number of cached movies and the database file size.
func (c *Cache) Stats(dbPath string) (count int, size int64, err error) {
	if err := c.readDB.QueryRow("SELECT COUNT(*) FROM movies").Scan(&count); err != nil {
		return 0, 0, fmt.Errorf("counting movies: %w", err)
	}
	info, err := os.Stat(dbPath)
	if err != nil {
		return 0, 0, fmt.Errorf("stat db file: %w", err)
	}
	return count, info.Size(), nil
}

// LastScan returns when the guide was last scanned, or an error if never.
func (c *Cache) LastScan() (time.Time, error) {
	var value string
	if err := c.readDB.QueryRow("SELECT value FROM meta WHERE key = 'last_scan'").Scan(&value); err != nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339, value)
}

// SetLastScan records the current time as the last guide scan.
func (c *Cache) SetLastScan() error {
	_, err := c.writeDB.Exec(`
		INSERT INTO meta (key, value) VALUES ('last_scan', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, time.Now().Format(time.RFC3339))
	return err
}
