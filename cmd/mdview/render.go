package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fwojciec/mdview"
	"github.com/fwojciec/mdview/dom"
	"github.com/spf13/cobra"
	"golang.org/x/net/html"
)

type renderOptions struct {
	page       string
	src        source
	query      string
	readyAfter time.Duration
	timeout    time.Duration
}

func newRenderCmd(a *app) *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a document into an HTML host page",
		Long: `Render parses the host page, finds the viewer container, fetches the
document named by --query (or the container's data-welcome-page attribute)
relative to --base or from --dir, and writes the page with the rendered
document to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.render(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.page, "page", "-", "Host page HTML file, - for stdin")
	opts.src.addFlags(cmd)
	cmd.Flags().StringVar(&opts.query, "query", "", "Page query string, e.g. ?view=guide.md")
	cmd.Flags().DurationVar(&opts.readyAfter, "ready-after", 0, "Delay before the parser script reports ready")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "Ready wait limit (default from config)")
	return cmd
}

func (a *app) render(cmd *cobra.Command, opts renderOptions) error {
	page, err := readPage(cmd.InOrStdin(), opts.page)
	if err != nil {
		return err
	}
	loader, err := a.newLoader(opts.src)
	if err != nil {
		return err
	}

	timeout := a.cfg.Timeout
	if opts.timeout > 0 {
		timeout = opts.timeout
	}

	ready, stop := a.readySource(page, opts.readyAfter)
	defer stop()

	err = loader.Initialize(cmd.Context(), page, mdview.StartupConfig{
		ContainerID: a.cfg.ContainerID,
		Query:       opts.query,
		Ready:       ready,
		Timeout:     timeout,
	})
	if err != nil {
		return err
	}

	out, err := dom.Render(page)
	if err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	_, err = io.WriteString(cmd.OutOrStdout(), out)
	return err
}

// readySource models the parser script. A page that references the script
// gets a signal fired after delay; a page without it is ready at once.
func (a *app) readySource(page *html.Node, delay time.Duration) (mdview.ReadySource, func()) {
	if dom.ElementByID(page, a.cfg.ScriptID) == nil {
		return nil, func() {}
	}
	sig := mdview.NewSignal()
	if delay <= 0 {
		sig.Fire()
		return sig, func() {}
	}
	t := time.AfterFunc(delay, sig.Fire)
	return sig, func() { t.Stop() }
}

func readPage(stdin io.Reader, path string) (*html.Node, error) {
	if path == "-" {
		page, err := dom.Parse(stdin)
		if err != nil {
			return nil, fmt.Errorf("parse page: %w", err)
		}
		return page, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	defer f.Close()
	page, err := dom.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse page %s: %w", path, err)
	}
	return page, nil
}
