package cache

import "time"

// Movie is a cached metadata lookup. Title is the normalized lowercase
// cache key; Poster and IMDBID may be empty when the external service had
// no data for them.
type Movie struct {
	Title     string
	Rating    float64
	Poster    string
	IMDBID    string
	FetchedAt time.Time
}
