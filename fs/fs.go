// Package fs serves documents from a local directory tree. It lets the
// command-line tools preview a docs folder without running a web server.
package fs

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"net/http"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/mdview"
)

// DefaultPattern matches every Markdown document below the root.
const DefaultPattern = "**/*.md"

// Interface compliance check.
var _ mdview.Fetcher = (*Fetcher)(nil)

// Fetcher implements mdview.Fetcher over a file system. Missing files and
// directories answer 404 and unreadable files 403, mirroring what a static
// file server would send.
type Fetcher struct {
	fsys iofs.FS
}

// NewFetcher creates a Fetcher rooted at fsys.
func NewFetcher(fsys iofs.FS) *Fetcher {
	return &Fetcher{fsys: fsys}
}

// Dir creates a Fetcher rooted at the directory dir.
func Dir(dir string) (*Fetcher, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("fs: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("fs: %s is not a directory", dir)
	}
	return NewFetcher(os.DirFS(dir)), nil
}

// Fetch reads path relative to the root. A leading "/" is ignored.
func (f *Fetcher) Fetch(ctx context.Context, path string) (*mdview.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := strings.TrimPrefix(path, "/")
	if !iofs.ValidPath(name) {
		return status(http.StatusNotFound), nil
	}

	body, err := iofs.ReadFile(f.fsys, name)
	switch {
	case err == nil:
		return &mdview.Response{StatusCode: http.StatusOK, Status: http.StatusText(http.StatusOK), Body: body}, nil
	case errors.Is(err, iofs.ErrNotExist):
		return status(http.StatusNotFound), nil
	case errors.Is(err, iofs.ErrPermission):
		return status(http.StatusForbidden), nil
	}

	// Reading a directory fails with a plain error on most file systems.
	if info, statErr := iofs.Stat(f.fsys, name); statErr == nil && info.IsDir() {
		return status(http.StatusNotFound), nil
	}
	return nil, fmt.Errorf("fs: read %s: %w", name, err)
}

func status(code int) *mdview.Response {
	return &mdview.Response{StatusCode: code, Status: http.StatusText(code)}
}

// Glob returns the sorted slash-separated paths of files under fsys that
// match pattern. Paths hidden from the viewer (dot files and anything below
// a dot directory) are skipped.
func Glob(fsys iofs.FS, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("fs: invalid glob pattern: %s", pattern)
	}

	var matches []string
	err := doublestar.GlobWalk(fsys, pattern, func(path string, d iofs.DirEntry) error {
		if d.IsDir() || !mdview.ValidPath(path) {
			return nil
		}
		matches = append(matches, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fs: match %s: %w", pattern, err)
	}
	sort.Strings(matches)
	return matches, nil
}
