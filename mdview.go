// Package mdview renders Markdown documents into a host page's DOM.
//
// A [Loader] fetches a Markdown resource through a [Fetcher], parses it with
// a [Parser] and renders the resulting [Document] into a container element
// with a [TreeRenderer]. [Loader.Initialize] performs the one-time startup
// sequence: it locates the container in the page, derives the document path
// from the page query, waits for the parser to become ready and runs the
// first load.
//
// The host page is an HTML node tree from golang.org/x/net/html. The loader
// borrows the container element and only ever replaces its children.
package mdview

import "time"

const (
	// DefaultContainerID is the id of the element that receives rendered output.
	DefaultContainerID = "mdview"

	// DefaultScriptID is the id of the element whose load signals parser readiness.
	DefaultScriptID = "commonmark-script"

	// DefaultPathKey is the container dataset entry holding the fallback
	// document path (the data-welcome-page attribute).
	DefaultPathKey = "welcomePage"

	// DefaultPath is fetched when neither the query nor the container names a document.
	DefaultPath = "welcome.md"

	// DefaultReadyTimeout bounds the wait for the parser to become ready.
	DefaultReadyTimeout = 5000 * time.Millisecond

	// ViewPrefix is the optional key in front of the document path in a query.
	ViewPrefix = "view="
)
