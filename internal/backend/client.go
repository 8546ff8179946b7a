package backend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/atomicstack/tvgrid/internal/catalog"
)

// ErrNoSetsURL is returned by FetchSet when the client has no sets prefix.
var ErrNoSetsURL = errors.New("sets url not configured")

// StatusError reports a non-2xx response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// Client fetches the catalog root and dynamic sets.
type Client struct {
	homeURL string
	setsURL string
	http    *http.Client
}

// NewClient returns a client with the given per-request timeout. A zero
// timeout disables it.
func NewClient(homeURL, setsURL string, timeout time.Duration) *Client {
	return &Client{
		homeURL: homeURL,
		setsURL: setsURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// SetURL returns the document location for a dynamic set.
func (c *Client) SetURL(id string) (string, error) {
	if strings.TrimSpace(c.setsURL) == "" {
		return "", ErrNoSetsURL
	}
	return strings.TrimRight(c.setsURL, "/") + "/" + url.PathEscape(id) + ".json", nil
}

// FetchHome loads and decodes the catalog root.
func (c *Client) FetchHome(ctx context.Context) (catalog.Home, error) {
	var home catalog.Home
	err := c.get(ctx, c.homeURL, func(body io.Reader) error {
		var derr error
		home, derr = catalog.DecodeHome(body)
		return derr
	})
	if err != nil {
		return catalog.Home{}, fmt.Errorf("fetch home: %w", err)
	}
	return home, nil
}

// FetchSet loads the items of one dynamic container.
func (c *Client) FetchSet(ctx context.Context, id string) ([]catalog.RawItem, error) {
	target, err := c.SetURL(id)
	if err != nil {
		return nil, fmt.Errorf("fetch set %s: %w", id, err)
	}
	var items []catalog.RawItem
	err = c.get(ctx, target, func(body io.Reader) error {
		var derr error
		items, derr = catalog.DecodeSet(body)
		return derr
	})
	if err != nil {
		return nil, fmt.Errorf("fetch set %s: %w", id, err)
	}
	return items, nil
}

func (c *Client) get(ctx context.Context, target string, decode func(io.Reader) error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{URL: target, StatusCode: resp.StatusCode}
	}
	return decode(resp.Body)
}
