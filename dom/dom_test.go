package dom_test

import (
	"testing"

	"github.com/fwojciec/mdview/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const page = `<!DOCTYPE html>
<html><head><script id="commonmark-script" src="commonmark.js"></script></head>
<body><main id="mdview" data-welcome-page="intro.md"><p>Loading…</p><p>Still loading</p></main></body></html>`

func TestElementByID(t *testing.T) {
	t.Parallel()

	doc, err := dom.ParseString(page)
	require.NoError(t, err)

	t.Run("finds element", func(t *testing.T) {
		t.Parallel()
		n := dom.ElementByID(doc, "mdview")
		require.NotNil(t, n)
		assert.Equal(t, "main", n.Data)
	})

	t.Run("finds element in head", func(t *testing.T) {
		t.Parallel()
		n := dom.ElementByID(doc, "commonmark-script")
		require.NotNil(t, n)
		assert.Equal(t, "script", n.Data)
	})

	t.Run("missing id returns nil", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, dom.ElementByID(doc, "nope"))
	})

	t.Run("nil root returns nil", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, dom.ElementByID(nil, "mdview"))
	})
}

func TestDataset(t *testing.T) {
	t.Parallel()

	doc, err := dom.ParseString(page)
	require.NoError(t, err)
	n := dom.ElementByID(doc, "mdview")
	require.NotNil(t, n)

	v, ok := dom.Dataset(n, "welcomePage")
	assert.True(t, ok)
	assert.Equal(t, "intro.md", v)

	_, ok = dom.Dataset(n, "missing")
	assert.False(t, ok)
}

func TestDataAttr(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "data-welcome-page", dom.DataAttr("welcomePage"))
	assert.Equal(t, "data-x", dom.DataAttr("x"))
}

func TestRemoveChildren(t *testing.T) {
	t.Parallel()

	doc, err := dom.ParseString(page)
	require.NoError(t, err)
	n := dom.ElementByID(doc, "mdview")
	require.NotNil(t, n.FirstChild)

	dom.RemoveChildren(n)
	assert.Nil(t, n.FirstChild)
	assert.Nil(t, n.LastChild)

	// Empty container stays empty.
	dom.RemoveChildren(n)
	assert.Nil(t, n.FirstChild)
}

func TestRenderAndInnerHTML(t *testing.T) {
	t.Parallel()

	p := dom.Element("p", html.Attribute{Key: "class", Val: "x"})
	p.AppendChild(dom.TextNode("a < b"))

	out, err := dom.Render(p)
	require.NoError(t, err)
	assert.Equal(t, `<p class="x">a &lt; b</p>`, out)

	inner, err := dom.InnerHTML(p)
	require.NoError(t, err)
	assert.Equal(t, "a &lt; b", inner)

	assert.Equal(t, "a < b", dom.Text(p))
}
