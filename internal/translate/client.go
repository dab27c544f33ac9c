// Package translate wraps a best-effort text translation HTTP endpoint.
//
// The endpoint replies with a positional JSON array rather than an object:
// element 0 is a list of segments, and element 0 of each segment is a translated
// text fragment. The full translation is the in-order concatenation of those
// fragments. The shape is an external contract; it is validated strictly at
// this boundary and any mismatch is reported as an error so callers can fall
// back to the untranslated text.
package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const maxBodySize = 1 * 1024 * 1024

// HTTPClient is the interface for performing HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a stateless translation client. No retries, no caching.
type Client struct {
	client  HTTPClient
	baseURL string
}

// New creates a Client against the given base URL.
// A nil httpClient falls back to a client with a 10s timeout.
func New(baseURL string, httpClient HTTPClient) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{client: httpClient, baseURL: baseURL}
}

// Translate translates text from the source to the target language code.
func (c *Client) Translate(ctx context.Context, text, source, target string) (string, error) {
	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("dt", "t")
	q.Set("sl", source)
	q.Set("tl", target)
	q.Set("q", text)

	reqURL := c.baseURL + "/translate_a/single?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("http get: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	out, err := Reassemble(body)
	if err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}

// Reassemble extracts the full translated string from the raw response body.
// The decode is two-phase: the outer positional array is split into raw
// elements first, then each expected element is decoded into its actual type.
func Reassemble(body []byte) (string, error) {
	var outer []json.RawMessage
	if err := json.Unmarshal(body, &outer); err != nil {
		return "", fmt.Errorf("outer array: %w", err)
	}
	if len(outer) == 0 {
		return "", fmt.Errorf("outer array is empty")
	}

	var segments []json.RawMessage
	if err := json.Unmarshal(outer[0], &segments); err != nil {
		return "", fmt.Errorf("segment list: %w", err)
	}

	var b strings.Builder
	for i, seg := range segments {
		var parts []json.RawMessage
		if err := json.Unmarshal(seg, &parts); err != nil {
			return "", fmt.Errorf("segment %d: %w", i, err)
		}
		if len(parts) == 0 {
			return "", fmt.Errorf("segment %d is empty", i)
		}
		var fragment string
		if err := json.Unmarshal(parts[0], &fragment); err != nil {
			return "", fmt.Errorf("segment %d fragment: %w", i, err)
		}
		b.WriteString(fragment)
	}
	return b.String(), nil
}
