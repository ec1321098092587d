package tmdb

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(log, srv.URL, "test-key", 5*time.Second)
}

func TestPopular(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/popular", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"page":2,"results":[{"id":603,"title":"The Matrix","vote_average":8.2}],"total_pages":10,"total_results":200}`))
	})
	movies, err := client.Popular(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, int64(603), movies[0].ID)
	assert.Equal(t, "The Matrix", movies[0].Title)
}

func TestSearch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/movie", r.URL.Path)
		assert.Equal(t, "matrix", r.URL.Query().Get("query"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"page":1,"results":[{"id":603,"title":"The Matrix"},{"id":604,"title":"The Matrix Reloaded"}]}`))
	})
	movies, err := client.Search(context.Background(), "matrix", 0)
	require.NoError(t, err)
	assert.Len(t, movies, 2)
}

func TestDetails(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/603", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":603,"title":"The Matrix","overview":"A hacker...","release_date":"1999-03-30","vote_average":8.2}`))
	})
	movie, err := client.Details(context.Background(), 603)
	require.NoError(t, err)
	assert.Equal(t, "The Matrix", movie.Title)
	assert.Equal(t, "1999-03-30", movie.ReleaseDate)
}

func TestUpstreamErrorCarriesMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status_code":7,"status_message":"Invalid API key: You must be granted a valid key."}`))
	})
	_, err := client.Details(context.Background(), 603)
	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid API key: You must be granted a valid key.", apiErr.Message)
}

func TestUpstreamErrorWithoutBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	_, err := client.Popular(context.Background(), 0)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusText(http.StatusServiceUnavailable), apiErr.Message)
}

func TestMirrorConversion(t *testing.T) {
	m := Movie{ID: 603, Title: "The Matrix", Overview: "o", PosterPath: "/p.jpg", BackdropPath: "/b.jpg", ReleaseDate: "1999-03-30", VoteAverage: 8.2}
	mirror := m.Mirror()
	assert.Equal(t, int64(603), mirror.TMDBID)
	assert.Equal(t, "The Matrix", mirror.Title)
	assert.Equal(t, "/p.jpg", mirror.PosterPath)
	assert.Zero(t, mirror.ID)
}
