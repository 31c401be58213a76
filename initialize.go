package mdview

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/mdview/dom"
	"golang.org/x/net/html"
)

// StartupConfig describes how Initialize finds its inputs in the host page.
// Zero fields take the package defaults.
type StartupConfig struct {
	// ContainerID is the id of the render target. Default DefaultContainerID.
	ContainerID string

	// Query is the page's query string including the leading "?".
	Query string

	// Ready signals that the parser is usable. Nil means ready now.
	Ready ReadySource

	// Timeout bounds the wait on Ready. Default DefaultReadyTimeout.
	Timeout time.Duration
}

// Initialize runs the startup sequence against page: it locates the
// container, derives the document path from cfg.Query, waits for cfg.Ready
// and then loads the document.
//
// A page without the container is not an error; Initialize returns nil and
// does nothing. If the ready wait fails the error wraps [ErrReady] and no
// fetch is issued.
func (l *Loader) Initialize(ctx context.Context, page *html.Node, cfg StartupConfig) error {
	if cfg.ContainerID == "" {
		cfg.ContainerID = DefaultContainerID
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultReadyTimeout
	}

	container := dom.ElementByID(page, cfg.ContainerID)
	if container == nil {
		l.logger.Debug("container not found; viewer disabled", "id", cfg.ContainerID)
		return nil
	}

	path := PathFromQuery(cfg.Query)

	if err := WaitReady(ctx, cfg.Ready, cfg.Timeout); err != nil {
		return fmt.Errorf("%w: %w", ErrReady, err)
	}

	return l.Load(ctx, container, path)
}
