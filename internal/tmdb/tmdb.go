// Package tmdb is a minimal client for The Movie Database API v3.
//
// Only the two endpoints the guide needs are implemented: movie search and
// external id lookup (for IMDb links). Authentication uses the api_key query
// parameter. There is no retry and no rate-limit handling; TMDB's free tier
// allows far more requests than a single guide scan issues.
package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultBaseURL = "https://api.themoviedb.org/3"
	imageBaseURL   = "https://image.tmdb.org/t/p/w500"
)

// ErrNoResults signals that a search returned an empty result list.
var ErrNoResults = errors.New("tmdb: no results")

// Result is the first search hit for a movie title.
type Result struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	VoteAverage float64 `json:"vote_average"`
	PosterPath  string  `json:"poster_path"`
}

// PosterURL returns the full w500 poster URL, or "" when TMDB has no poster.
func (r *Result) PosterURL() string {
	if r.PosterPath == "" {
		return ""
	}
	return imageBaseURL + r.PosterPath
}

// Client talks to the TMDB API.
type Client struct {
	apiKey   string
	language string
	baseURL  string
	client   *http.Client
}

// NewClient creates a TMDB client. language is the search locale ("pl-PL").
func NewClient(apiKey, language string) *Client {
	return &Client{
		apiKey:   apiKey,
		language: language,
		baseURL:  defaultBaseURL,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// SearchMovie searches TMDB by title and returns the first result.
// Returns ErrNoResults when the search matches nothing.
func (c *Client) SearchMovie(ctx context.Context, query string) (*Result, error) {
	q := url.Values{}
	q.Set("api_key", c.apiKey)
	q.Set("query", query)
	q.Set("language", c.language)

	var resp struct {
		Results []Result `json:"results"`
	}
	if err := c.get(ctx, "/search/movie?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 {
		return nil, ErrNoResults
	}
	return &resp.Results[0], nil
}

// ExternalIDs fetches the IMDb id for a TMDB movie id. An empty string means
// TMDB has no cross-reference for the movie.
func (c *Client) ExternalIDs(ctx context.Context, movieID int) (string, error) {
	q := url.Values{}
	q.Set("api_key", c.apiKey)

	var resp struct {
		IMDBID string `json:"imdb_id"`
	}
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/external_ids?%s", movieID, q.Encode()), &resp); err != nil {
		return "", err
	}
	return resp.IMDBID, nil
}

func (c *Client) get(ctx context.Context, path string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("tmdb: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("tmdb: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("tmdb: invalid API key")
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tmdb: HTTP %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("tmdb: decode response: %w", err)
	}
	return nil
}
