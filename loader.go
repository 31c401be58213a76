package mdview

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/mdview/dom"
	"golang.org/x/net/html"
)

// Loader runs the fetch, parse and render pipeline for a container.
type Loader struct {
	fetcher  Fetcher
	parser   Parser
	renderer TreeRenderer
	observer Observer
	clock    Clock
	logger   *slog.Logger

	defaultPathKey string
	defaultPath    string
}

// Option configures a [Loader].
type Option func(*Loader)

// WithObserver sets the telemetry observer. The default discards events.
func WithObserver(o Observer) Option {
	return func(l *Loader) { l.observer = o }
}

// WithClock sets the clock used for telemetry values. The default measures
// from the loader's construction.
func WithClock(c Clock) Option {
	return func(l *Loader) { l.clock = c }
}

// WithLogger sets the logger. The default discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) { l.logger = logger }
}

// WithDefaultPathKey sets the container dataset name consulted when Load
// is called without a path. "homePage" reads the data-home-page attribute.
func WithDefaultPathKey(name string) Option {
	return func(l *Loader) { l.defaultPathKey = name }
}

// WithDefaultPath sets the path used when neither the caller nor the
// container names a document.
func WithDefaultPath(path string) Option {
	return func(l *Loader) { l.defaultPath = path }
}

// NewLoader creates a Loader from its three collaborators.
func NewLoader(fetcher Fetcher, parser Parser, renderer TreeRenderer, opts ...Option) *Loader {
	l := &Loader{
		fetcher:        fetcher,
		parser:         parser,
		renderer:       renderer,
		observer:       NopObserver{},
		clock:          SinceClock(time.Now()),
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		defaultPathKey: DefaultPathKey,
		defaultPath:    DefaultPath,
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Load fetches the document at path and replaces the container's children
// with its rendered form. An empty path falls back to the container's
// default-path attribute, then to the loader's default path.
//
// A non-2xx response is not an error: it renders as a heading naming the
// status. Any other failure is returned wrapped in [ErrLoad]. If rendering
// fails after the container was cleared, the container is left empty.
func (l *Loader) Load(ctx context.Context, container *html.Node, path string) error {
	l.timing(EventBegin)

	path = l.resolvePath(container, path)
	if err := l.load(ctx, container, path); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrLoad, path, err)
	}

	l.timing(EventEnd)
	return nil
}

func (l *Loader) load(ctx context.Context, container *html.Node, path string) error {
	doc, err := l.fetchDocument(ctx, path)
	if err != nil {
		return err
	}

	dom.RemoveChildren(container)

	if err := l.renderer.Render(doc, container); err != nil {
		return err
	}
	l.logger.Debug("rendered document", "path", path, "bytes", len(doc.Source))
	return nil
}

// Document fetches and parses the document at path without rendering it.
// An empty path falls back to the loader's default path. It emits the same
// timing events as Load and wraps failures in [ErrLoad].
func (l *Loader) Document(ctx context.Context, path string) (*Document, error) {
	l.timing(EventBegin)

	if path == "" {
		path = l.defaultPath
	}
	doc, err := l.fetchDocument(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrLoad, path, err)
	}

	l.timing(EventEnd)
	return doc, nil
}

func (l *Loader) fetchDocument(ctx context.Context, path string) (*Document, error) {
	resp, err := l.fetcher.Fetch(ctx, path)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		l.logger.Debug("fetch returned non-success status",
			"path", path, "status", resp.StatusCode)
	}
	return l.parser.Parse(resp.Text())
}

func (l *Loader) resolvePath(container *html.Node, path string) string {
	if path != "" {
		return path
	}
	if v, ok := dom.Dataset(container, l.defaultPathKey); ok {
		return v
	}
	return l.defaultPath
}

func (l *Loader) timing(name string) {
	l.observer.Timing(name, l.clock().Milliseconds())
}
