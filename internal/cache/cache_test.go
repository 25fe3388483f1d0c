package cache

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func testDB(t *testing.T) *Cache {
	t.Helper()
	dir := t.TempDir()
	db, err := Open(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleMovie() Movie {
	return Movie{
		Title:  "skazani na shawshank",
		Rating: 8.7,
		Poster: "https://image.tmdb.org/t/p/w500/abc.jpg",
		IMDBID: "tt0111161",
	}
}

func TestPutAndGet(t *testing.T) {
	db := testDB(t)
	want := sampleMovie()

	if err := db.PutMovie(want); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := db.GetMovie("skazani na shawshank")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Rating != want.Rating {
		t.Errorf("rating = %v, want %v", got.Rating, want.Rating)
	}
	if got.Poster != want.Poster {
		t.Errorf("poster = %q, want %q", got.Poster, want.Poster)
	}
	if got.IMDBID != want.IMDBID {
		t.Errorf("imdb id = %q, want %q", got.IMDBID, want.IMDBID)
	}
	if got.FetchedAt.IsZero() {
		t.Error("expected fetched_at to be set on put")
	}
}

func TestGetMiss(t *testing.T) {
	db := testDB(t)
	_, err := db.GetMovie("nie ma takiego filmu")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestPutLastWriteWins(t *testing.T) {
	db := testDB(t)
	m := sampleMovie()

	if err := db.PutMovie(m); err != nil {
		t.Fatalf("first put: %v", err)
	}
	m.Rating = 9.1
	m.IMDBID = "tt9999999"
	if err := db.PutMovie(m); err != nil {
		t.Fatalf("second put: %v", err)
	}

	got, err := db.GetMovie(m.Title)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Rating != 9.1 {
		t.Errorf("expected overwritten rating 9.1, got %v", got.Rating)
	}
	if got.IMDBID != "tt9999999" {
		t.Errorf("expected overwritten imdb id, got %q", got.IMDBID)
	}
}

func TestSingleRowPerKey(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	db.PutMovie(Movie{Title: "matrix", Rating: 7.0})
	db.PutMovie(Movie{Title: "matrix", Rating: 8.0})

	count, _, err := db.Stats(dbPath)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if count != 1 {
		t.Errorf("expected a single row per key, got %d", count)
	}
}

func TestPutEmptyOptionalFields(t *testing.T) {
	db := testDB(t)
	if err := db.PutMovie(Movie{Title: "bez plakatu", Rating: 6.0}); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := db.GetMovie("bez plakatu")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Poster != "" || got.IMDBID != "" {
		t.Errorf("expected empty optional fields, got poster=%q imdb=%q", got.Poster, got.IMDBID)
	}
}

func TestStats(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	db.PutMovie(Movie{Title: "a", Rating: 1})
	db.PutMovie(Movie{Title: "b", Rating: 2})

	count, size, err := db.Stats(dbPath)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if count != 2 {
		t.Errorf("expected count 2, got %d", count)
	}
	if size == 0 {
		t.Error("expected non-zero db size")
	}
}

func TestLastScan(t *testing.T) {
	db := testDB(t)

	if _, err := db.LastScan(); err == nil {
		t.Error("expected error when no scan recorded")
	}

	if err := db.SetLastScan(); err != nil {
		t.Fatalf("SetLastScan: %v", err)
	}
	got, err := db.LastScan()
	if err != nil {
		t.Fatalf("LastScan: %v", err)
	}
	if time.Since(got) > 2*time.Second {
		t.Errorf("last scan too old: %v", got)
	}
}

func TestOpenIdempotentSchema(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	db.PutMovie(sampleMovie())
	db.Close()

	// Reopen over the same file; schema creation must not clobber data.
	db, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer db.Close()

	if _, err := db.GetMovie("skazani na shawshank"); err != nil {
		t.Errorf("expected movie to survive reopen: %v", err)
	}
}
