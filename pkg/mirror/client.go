package mirror

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// headerTimeout bounds how long a mirror may take to start responding.
// The body itself can be tens of megabytes, so the overall deadline is
// left to the request context.
const headerTimeout = 10 * time.Second

// Client streams index files from a mirror.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	http      *http.Client
	userAgent string
}

// NewClient creates a mirror client with standard timeouts.
func NewClient() *Client {
	return &Client{
		http: &http.Client{
			Transport: &http.Transport{ResponseHeaderTimeout: headerTimeout},
		},
		userAgent: "pkgstats",
	}
}

// Fetch performs a GET for url and returns the response body for
// streaming. The caller must close it.
//
// Returns:
//   - [ErrNotFound] if the mirror answers 404
//   - [ErrNetwork] for transport failures and any other non-200 status
func (c *Client) Fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	if err := checkStatus(resp.StatusCode, url); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

func checkStatus(code int, url string) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, url)
	default:
		return fmt.Errorf("%w: status %d for %s", ErrNetwork, code, url)
	}
}
