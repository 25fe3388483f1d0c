// Package guide runs the scan pipeline: fetch the programme guide, pick
// tonight's movies, resolve metadata through the cache, and produce a
// rating-sorted list ready for display.
package guide

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/grzegorztttt-code/Tv-guide-from-chat/internal/cache"
	"github.com/grzegorztttt-code/Tv-guide-from-chat/internal/epg"
	"github.com/grzegorztttt-code/Tv-guide-from-chat/internal/genre"
	"github.com/grzegorztttt-code/Tv-guide-from-chat/internal/title"
	"github.com/grzegorztttt-code/Tv-guide-from-chat/internal/tmdb"
)

// Movie is a broadcast joined with its resolved metadata. It lives only for
// the duration of a render pass; nothing here is persisted.
type Movie struct {
	Title   string
	Start   time.Time
	Channel string
	Genre   genre.Genre
	Rating  float64
	Poster  string
	IMDBID  string
}

// TimeLabel formats the start time for display.
func (m Movie) TimeLabel() string {
	return m.Start.Format("15:04")
}

// Fetcher downloads and parses a programme guide.
type Fetcher interface {
	Fetch(ctx context.Context) (*epg.Guide, error)
}

// Metadata resolves movie metadata from an external service.
type Metadata interface {
	SearchMovie(ctx context.Context, query string) (*tmdb.Result, error)
	ExternalIDs(ctx context.Context, movieID int) (string, error)
}

// Scanner wires the pipeline stages together.
type Scanner struct {
	fetcher Fetcher
	meta    Metadata
	db      *cache.Cache
	now     func() time.Time
}

func NewScanner(fetcher Fetcher, meta Metadata, db *cache.Cache) *Scanner {
	return &Scanner{
		fetcher: fetcher,
		meta:    meta,
		db:      db,
		now:     time.Now,
	}
}

// Result holds the scanned movies plus non-fatal per-title errors.
type Result struct {
	Movies []Movie
	Errors []error
}

// Scan fetches the guide and returns tonight's movies sorted by rating
// descending. A guide fetch or parse failure aborts the scan. Titles that
// fail to resolve (no results, request error) are skipped; request errors
// are reported in Result.Errors.
func (s *Scanner) Scan(ctx context.Context, startHour int) (Result, error) {
	g, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return Result{}, err
	}

	now := s.now()
	programmes := epg.Filter(g, now, startHour)

	var result Result
	for _, p := range programmes {
		clean := title.Normalize(p.Title)
		if clean == "" {
			continue
		}

		meta, err := s.resolve(ctx, clean)
		if err != nil {
			if !errors.Is(err, tmdb.ErrNoResults) {
				result.Errors = append(result.Errors, fmt.Errorf("%s: %w", clean, err))
			}
			continue
		}

		start, err := p.StartTime()
		if err != nil {
			continue
		}

		result.Movies = append(result.Movies, Movie{
			Title:   clean,
			Start:   start,
			Channel: p.Channel,
			Genre:   genre.Classify(p.Category(), clean),
			Rating:  meta.Rating,
			Poster:  meta.Poster,
			IMDBID:  meta.IMDBID,
		})
	}

	SortByRating(result.Movies)

	if s.db != nil {
		s.db.SetLastScan()
	}
	return result, nil
}

// resolve returns cached metadata for a normalized title, querying the
// external service and caching the answer on a miss. The external id lookup
// is best-effort: its failure does not discard the search result.
func (s *Scanner) resolve(ctx context.Context, clean string) (cache.Movie, error) {
	key := strings.ToLower(clean)

	if m, err := s.db.GetMovie(key); err == nil {
		return m, nil
	} else if !errors.Is(err, cache.ErrNotFound) {
		return cache.Movie{}, err
	}

	hit, err := s.meta.SearchMovie(ctx, clean)
	if err != nil {
		return cache.Movie{}, err
	}

	m := cache.Movie{
		Title:  key,
		Rating: hit.VoteAverage,
		Poster: hit.PosterURL(),
	}
	if hit.ID != 0 {
		if imdbID, err := s.meta.ExternalIDs(ctx, hit.ID); err == nil {
			m.IMDBID = imdbID
		}
	}

	if err := s.db.PutMovie(m); err != nil {
		return cache.Movie{}, err
	}
	return m, nil
}

// SortByRating orders movies by rating descending. The sort is stable so
// equally rated movies keep their guide order.
func SortByRating(movies []Movie) {
	sort.SliceStable(movies, func(i, j int) bool {
		return movies[i].Rating > movies[j].Rating
	})
}

// FilterRating returns the movies rated at or above min.
func FilterRating(movies []Movie, min float64) []Movie {
	out := make([]Movie, 0, len(movies))
	for _, m := range movies {
		if m.Rating >= min {
			out = append(out, m)
		}
	}
	return out
}
