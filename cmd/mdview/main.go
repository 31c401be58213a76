// Command mdview fetches Markdown documents and renders them into an HTML
// host page or the terminal.
//
// Usage:
//
//	mdview render --page index.html --base http://localhost:8080/ [--query ?view=guide.md]
//	mdview cat guide.md --base http://localhost:8080/
//	mdview view guide.md --base http://localhost:8080/
//
// Settings are read from mdview.yaml when present; flags override them.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
)

// Version is set at build time.
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintf(os.Stderr, "mdview: %v\n", err)
		}
		os.Exit(1)
	}
}
