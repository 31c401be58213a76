// Package fetch implements [mdview.Fetcher] over net/http.
//
// Requests are resolved against the host page URL and restricted to its
// origin, redirects included, mirroring a browser's same-origin fetch mode.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/fwojciec/mdview"
)

// Interface compliance check.
var _ mdview.Fetcher = (*Client)(nil)

// ErrCrossOrigin indicates a request or redirect left the page's origin.
var ErrCrossOrigin = errors.New("cross-origin request blocked")

const acceptHeader = "text/*"

// Client implements [mdview.Fetcher].
type Client struct {
	base       *url.URL
	httpClient *http.Client
}

// Option configures a [Client].
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client. Its redirect policy is wrapped
// so redirects cannot leave the page's origin.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a Client for the page at pageURL. Relative document paths are
// resolved against it.
func New(pageURL string, opts ...Option) (*Client, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("fetch: page URL %q must be absolute", pageURL)
	}

	c := &Client{
		base:       base,
		httpClient: http.DefaultClient,
	}
	for _, o := range opts {
		o(c)
	}

	hc := *c.httpClient
	next := hc.CheckRedirect
	hc.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		if !sameOrigin(c.base, req.URL) {
			return fmt.Errorf("redirect to %s: %w", req.URL, ErrCrossOrigin)
		}
		if next != nil {
			return next(req, via)
		}
		if len(via) >= 10 {
			return errors.New("stopped after 10 redirects")
		}
		return nil
	}
	c.httpClient = &hc
	return c, nil
}

// Fetch issues a GET for path. A non-2xx status is returned as a Response,
// not an error.
func (c *Client) Fetch(ctx context.Context, path string) (*mdview.Response, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	target := c.base.ResolveReference(ref)
	if !sameOrigin(c.base, target) {
		return nil, fmt.Errorf("fetch: %s: %w", target, ErrCrossOrigin)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	req.Header.Set("Accept", acceptHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch: read body: %w", err)
	}

	return &mdview.Response{
		StatusCode: resp.StatusCode,
		Status:     statusText(resp),
		Body:       body,
	}, nil
}

// statusText returns the reason phrase of resp, falling back to the
// standard text when the server sent none.
func statusText(resp *http.Response) string {
	if s, ok := strings.CutPrefix(resp.Status, strconv.Itoa(resp.StatusCode)+" "); ok && s != "" {
		return s
	}
	return http.StatusText(resp.StatusCode)
}

func sameOrigin(a, b *url.URL) bool {
	return strings.EqualFold(a.Scheme, b.Scheme) &&
		strings.EqualFold(a.Hostname(), b.Hostname()) &&
		originPort(a) == originPort(b)
}

// originPort returns u's port, defaulting to the scheme's well-known port.
func originPort(u *url.URL) string {
	if p := u.Port(); p != "" {
		return p
	}
	switch strings.ToLower(u.Scheme) {
	case "http":
		return "80"
	case "https":
		return "443"
	}
	return ""
}
