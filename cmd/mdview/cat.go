package main

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/mdview"
	"github.com/fwojciec/mdview/ansi"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newCatCmd(a *app) *cobra.Command {
	var (
		src   source
		width int
		color string
	)
	cmd := &cobra.Command{
		Use:   "cat [PATH]",
		Short: "Print a document to the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.fetchDocument(cmd.Context(), src, pathArg(args))
			if err != nil {
				return a.reportError(cmd, color, err)
			}
			if width <= 0 {
				width = a.cfg.Width
			}
			out := cmd.OutOrStdout()
			lr, err := colorRenderer(out, color)
			if err != nil {
				return err
			}
			_, err = io.WriteString(out, ansi.Render(doc, width, mdview.DefaultTheme(), ansi.WithRenderer(lr))+"\n")
			return err
		},
	}
	src.addFlags(cmd)
	cmd.Flags().IntVar(&width, "width", 0, "Wrap width (default from config)")
	cmd.Flags().StringVar(&color, "color", "auto", "Color output: auto, always, never")
	return cmd
}

// colorRenderer returns a lipgloss renderer for w. In auto mode the color
// profile is detected from w, so pipes and buffers get plain text.
func colorRenderer(w io.Writer, mode string) (*lipgloss.Renderer, error) {
	lr := lipgloss.NewRenderer(w)
	switch mode {
	case "auto":
	case "always":
		lr.SetColorProfile(termenv.ANSI)
	case "never":
		lr.SetColorProfile(termenv.Ascii)
	default:
		return nil, fmt.Errorf("invalid --color %q: want auto, always or never", mode)
	}
	return lr, nil
}

// reportedError marks an error already shown to the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// reportError writes err to stderr in the theme's error color and returns
// it marked as reported.
func (a *app) reportError(cmd *cobra.Command, color string, err error) error {
	w := cmd.ErrOrStderr()
	lr, lrErr := colorRenderer(w, color)
	if lrErr != nil {
		return lrErr
	}
	fmt.Fprintln(w, ansi.Error(err, mdview.DefaultTheme(), ansi.WithRenderer(lr)))
	return &reportedError{err: err}
}

func pathArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// fetchDocument fetches and parses path for terminal output.
func (a *app) fetchDocument(ctx context.Context, src source, path string) (*mdview.Document, error) {
	if path != "" && !mdview.ValidPath(path) {
		return nil, fmt.Errorf("path %q is not allowed", path)
	}
	loader, err := a.newLoader(src)
	if err != nil {
		return nil, err
	}
	return loader.Document(ctx, path)
}
