package tmdb

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient("test-key", "pl-PL")
	c.baseURL = srv.URL
	return c
}

func TestSearchMovie(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/movie" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("api_key") != "test-key" {
			t.Errorf("missing api_key, got %q", q.Get("api_key"))
		}
		if q.Get("query") != "Skazani na Shawshank" {
			t.Errorf("unexpected query %q", q.Get("query"))
		}
		if q.Get("language") != "pl-PL" {
			t.Errorf("unexpected language %q", q.Get("language"))
		}
		fmt.Fprint(w, `{"results":[
			{"id":278,"title":"Skazani na Shawshank","vote_average":8.7,"poster_path":"/abc.jpg"},
			{"id":999,"title":"Inny film","vote_average":5.0}
		]}`)
	})

	got, err := c.SearchMovie(context.Background(), "Skazani na Shawshank")
	if err != nil {
		t.Fatalf("SearchMovie: %v", err)
	}
	if got.ID != 278 {
		t.Errorf("expected first result (id 278), got %d", got.ID)
	}
	if got.VoteAverage != 8.7 {
		t.Errorf("vote_average = %v, want 8.7", got.VoteAverage)
	}
	if got.PosterURL() != "https://image.tmdb.org/t/p/w500/abc.jpg" {
		t.Errorf("unexpected poster URL %q", got.PosterURL())
	}
}

func TestSearchMovieNoResults(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results":[]}`)
	})

	_, err := c.SearchMovie(context.Background(), "nie istnieje")
	if !errors.Is(err, ErrNoResults) {
		t.Errorf("expected ErrNoResults, got %v", err)
	}
}

func TestSearchMovieHTTPError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	})

	if _, err := c.SearchMovie(context.Background(), "Matrix"); err == nil {
		t.Error("expected error on HTTP 500")
	}
}

func TestExternalIDs(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/278/external_ids" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		fmt.Fprint(w, `{"imdb_id":"tt0111161"}`)
	})

	got, err := c.ExternalIDs(context.Background(), 278)
	if err != nil {
		t.Fatalf("ExternalIDs: %v", err)
	}
	if got != "tt0111161" {
		t.Errorf("imdb id = %q, want tt0111161", got)
	}
}

func TestExternalIDsMissing(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"imdb_id":null}`)
	})

	got, err := c.ExternalIDs(context.Background(), 42)
	if err != nil {
		t.Fatalf("ExternalIDs: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty imdb id, got %q", got)
	}
}

func TestPosterURLEmpty(t *testing.T) {
	r := Result{}
	if r.PosterURL() != "" {
		t.Errorf("expected empty poster URL, got %q", r.PosterURL())
	}
}
