// Package tmdb is a read-only client for the external movie catalog. The
// backend holds the API credential; browsing traffic from the client app goes
// to the catalog directly and never through here.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"cinescope/proj/internal/domain/models"
)

type Client struct {
	log        *slog.Logger
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func New(log *slog.Logger, baseURL string, apiKey string, timeout time.Duration) *Client {
	return &Client{
		log:        log,
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// Movie is the reshaped catalog record exposed through the proxy endpoints.
type Movie struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date"`
	VoteAverage  float64 `json:"vote_average"`
}

// Mirror converts a catalog record into the local mirror representation.
func (m *Movie) Mirror() *models.Movie {
	return &models.Movie{
		TMDBID:       m.ID,
		Title:        m.Title,
		Overview:     m.Overview,
		PosterPath:   m.PosterPath,
		BackdropPath: m.BackdropPath,
		ReleaseDate:  m.ReleaseDate,
		VoteAverage:  m.VoteAverage,
	}
}

type listing struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// APIError carries a non-2xx catalog response. The upstream message is kept so
// callers can attach it to their own error responses.
type APIError struct {
	StatusCode int
	Message    string `json:"status_message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("catalog responded with %d: %s", e.StatusCode, e.Message)
}

func (c *Client) get(ctx context.Context, path string, query url.Values, dst any) error {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.apiKey)
	reqURL := c.baseURL + path + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		c.log.Warn("catalog error response", "path", path, "status", resp.StatusCode, "message", apiErr.Message)
		return apiErr
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}

func (c *Client) Popular(ctx context.Context, page int) ([]Movie, error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	var body listing
	if err := c.get(ctx, "/movie/popular", query, &body); err != nil {
		return nil, err
	}
	return body.Results, nil
}

func (c *Client) Search(ctx context.Context, searchQuery string, page int) ([]Movie, error) {
	query := url.Values{}
	query.Set("query", searchQuery)
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	var body listing
	if err := c.get(ctx, "/search/movie", query, &body); err != nil {
		return nil, err
	}
	return body.Results, nil
}

func (c *Client) Details(ctx context.Context, id int64) (*Movie, error) {
	var movie Movie
	if err := c.get(ctx, "/movie/"+strconv.FormatInt(id, 10), nil, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}
