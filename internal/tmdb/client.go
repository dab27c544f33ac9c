// Package tmdb wraps the remote movie-catalog HTTP API.
package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"movielookup/internal/model"
)

// maxBodySize bounds catalog responses; pages are a few KB in practice.
const maxBodySize = 5 * 1024 * 1024

// ErrNotFound is returned when the catalog has no movie with the requested ID.
var ErrNotFound = errors.New("movie not found")

// HTTPClient is the interface for performing HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a stateless catalog client. It performs no retries and
// keeps no cache; callers decide how to handle failures.
type Client struct {
	client   HTTPClient
	baseURL  string
	apiKey   string
	language string
}

// New creates a Client against the given base URL.
// A nil httpClient falls back to a client with a 10s timeout.
func New(baseURL, apiKey, language string, httpClient HTTPClient) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		client:   httpClient,
		baseURL:  baseURL,
		apiKey:   apiKey,
		language: language,
	}
}

// Popular fetches one page of the popular-movies feed.
func (c *Client) Popular(ctx context.Context, page int) (*model.PopularPage, error) {
	q := url.Values{}
	q.Set("api_key", c.apiKey)
	q.Set("page", fmt.Sprintf("%d", page))
	q.Set("language", c.language)

	var out model.PopularPage
	if err := c.getJSON(ctx, "/movie/popular", q, &out); err != nil {
		return nil, fmt.Errorf("popular page %d: %w", page, err)
	}
	return &out, nil
}

// Detail fetches the full record for a single movie.
// Returns ErrNotFound when the catalog reports no such movie.
func (c *Client) Detail(ctx context.Context, movieID int) (*model.MovieDetail, error) {
	q := url.Values{}
	q.Set("api_key", c.apiKey)
	q.Set("language", c.language)

	var out model.MovieDetail
	if err := c.getJSON(ctx, fmt.Sprintf("/movie/%d", movieID), q, &out); err != nil {
		return nil, fmt.Errorf("detail %d: %w", movieID, err)
	}
	return &out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("http get: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
