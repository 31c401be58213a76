package mdview

import (
	"context"
	"fmt"
)

// Fetcher retrieves a document by path. Implementations restrict requests to
// the host page's origin and must return non-2xx responses as a Response
// rather than an error; the loader turns those into a rendered heading.
type Fetcher interface {
	Fetch(ctx context.Context, path string) (*Response, error)
}

// Response is the outcome of a single fetch.
type Response struct {
	StatusCode int
	Status     string // reason phrase without the code, e.g. "Not Found"
	Body       []byte
}

// OK reports whether the status code is in the 2xx range.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode <= 299
}

// Text returns the body on success, otherwise a level-1 heading naming the
// status, e.g. "# 404 Not Found\n".
func (r *Response) Text() []byte {
	if r.OK() {
		return r.Body
	}
	return []byte(fmt.Sprintf("# %d %s\n", r.StatusCode, r.Status))
}
