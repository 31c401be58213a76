package goldmark_test

import (
	"testing"

	"github.com/fwojciec/mdview"
	"github.com/fwojciec/mdview/dom"
	"github.com/fwojciec/mdview/goldmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// render parses src with p, renders it into a fresh container and returns
// the container's inner HTML.
func render(t *testing.T, p *goldmark.Parser, r *goldmark.Renderer, src string) string {
	t.Helper()
	doc, err := p.Parse([]byte(src))
	require.NoError(t, err)
	container := dom.Element("main")
	require.NoError(t, r.Render(doc, container))
	out, err := dom.InnerHTML(container)
	require.NoError(t, err)
	return out
}

func TestRenderer_CommonMark(t *testing.T) {
	t.Parallel()

	p, err := goldmark.NewParser()
	require.NoError(t, err)
	r := goldmark.NewRenderer()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"empty input renders nothing", "", ""},
		{"paragraph", "hello world", "<p>hello world</p>"},
		{"status heading", "# 404 Not Found\n", "<h1>404 Not Found</h1>"},
		{"heading levels", "### Third", "<h3>Third</h3>"},
		{"emphasis", "*a* and **b**", "<p><em>a</em> and <strong>b</strong></p>"},
		{"bold italic", "***both***", "<p><em><strong>both</strong></em></p>"},
		{"soft break", "a\nb", "<p>a\nb</p>"},
		{"hard break", "a  \nb", "<p>a<br/>\nb</p>"},
		{"code span", "use `x < y`", "<p>use <code>x &lt; y</code></p>"},
		{"backslash escape", `a \* b`, "<p>a * b</p>"},
		{"entity", "1 &lt; 2", "<p>1 &lt; 2</p>"},
		{"link with title", `[click](https://example.com "Title")`, `<p><a href="https://example.com" title="Title">click</a></p>`},
		{"image", "![alt *text*](img.png)", `<p><img src="img.png" alt="alt text"/></p>`},
		{"link entity references resolve", `[a](a&amp;b "t&amp;x")`, `<p><a href="a&amp;b" title="t&amp;x">a</a></p>`},
		{"link backslash escape resolves", `[a](foo\)bar)`, `<p><a href="foo)bar">a</a></p>`},
		{"link space is percent-encoded", "[a](<my doc.md>)", `<p><a href="my%20doc.md">a</a></p>`},
		{"image title escape resolves", `![x](p.png "a \"q\"")`, `<p><img src="p.png" alt="x" title="a &#34;q&#34;"/></p>`},
		{"autolink", "<https://example.com>", `<p><a href="https://example.com">https://example.com</a></p>`},
		{"email autolink", "<me@example.com>", `<p><a href="mailto:me@example.com">me@example.com</a></p>`},
		{"bullet list", "- one\n- two", "<ul><li>one</li><li>two</li></ul>"},
		{"ordered list start", "3. three\n4. four", `<ol start="3"><li>three</li><li>four</li></ol>`},
		{"ordered list from one", "1. one", "<ol><li>one</li></ol>"},
		{"loose list", "- one\n\n- two", "<ul><li><p>one</p></li><li><p>two</p></li></ul>"},
		{"nested list", "- outer\n  - inner", "<ul><li>outer<ul><li>inner</li></ul></li></ul>"},
		{"block quote", "> quoted", "<blockquote><p>quoted</p></blockquote>"},
		{"fenced code", "```go\nx := 1\n```", `<pre><code class="language-go">x := 1` + "\n" + `</code></pre>`},
		{"fenced code without language", "```\nplain\n```", "<pre><code>plain\n</code></pre>"},
		{"indented code", "    indented\n", "<pre><code>indented\n</code></pre>"},
		{"thematic break", "above\n\n---\n\nbelow", "<p>above</p><hr/><p>below</p>"},
		{"strikethrough is literal without extension", "~~x~~", "<p>~~x~~</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, render(t, p, r, tt.src))
		})
	}
}

func TestRenderer_RawHTML(t *testing.T) {
	t.Parallel()

	p, err := goldmark.NewParser()
	require.NoError(t, err)
	src := "<div class=\"note\">hi</div>\n\ntext <b>bold</b>"

	t.Run("parsed into elements by default", func(t *testing.T) {
		t.Parallel()
		out := render(t, p, goldmark.NewRenderer(), src)
		assert.Contains(t, out, `<div class="note">hi</div>`)
		assert.Contains(t, out, "<b>")
	})

	t.Run("paired inline tags enclose their content", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "<p>a <b>bold</b> c</p>", render(t, p, goldmark.NewRenderer(), "a <b>bold</b> c"))
	})

	t.Run("markdown inside inline tags", func(t *testing.T) {
		t.Parallel()
		out := render(t, p, goldmark.NewRenderer(), "<span>*x* & `<y>`</span> end")
		assert.Equal(t, "<p><span><em>x</em> &amp; <code>&lt;y&gt;</code></span> end</p>", out)
	})

	t.Run("inline tags in tight list items", func(t *testing.T) {
		t.Parallel()
		out := render(t, p, goldmark.NewRenderer(), "- <i>one</i> two")
		assert.Equal(t, "<ul><li><i>one</i> two</li></ul>", out)
	})

	t.Run("inline tags in headings", func(t *testing.T) {
		t.Parallel()
		out := render(t, p, goldmark.NewRenderer(), "# <sup>1</sup> Title")
		assert.Equal(t, "<h1><sup>1</sup> Title</h1>", out)
	})

	t.Run("kept as text when requested", func(t *testing.T) {
		t.Parallel()
		out := render(t, p, goldmark.NewRenderer(goldmark.WithRawHTMLAsText()), src)
		assert.Contains(t, out, `&lt;div class=&#34;note&#34;&gt;hi&lt;/div&gt;`)
		assert.NotContains(t, out, "<b>")
	})
}

func TestRenderer_LinkAttributes(t *testing.T) {
	t.Parallel()

	p, err := goldmark.NewParser()
	require.NoError(t, err)
	doc, err := p.Parse([]byte(`[a](a&amp;b "t&amp;x") ![i](foo\)bar)`))
	require.NoError(t, err)
	container := dom.Element("main")
	require.NoError(t, goldmark.NewRenderer().Render(doc, container))

	para := container.FirstChild
	require.NotNil(t, para)
	link := para.FirstChild
	require.NotNil(t, link)
	href, _ := dom.Attr(link, "href")
	title, _ := dom.Attr(link, "title")
	assert.Equal(t, "a&b", href)
	assert.Equal(t, "t&x", title)

	img := para.LastChild
	require.NotNil(t, img)
	src, _ := dom.Attr(img, "src")
	assert.Equal(t, "foo)bar", src)
}

func TestRenderer_Extensions(t *testing.T) {
	t.Parallel()

	p, err := goldmark.NewParser(goldmark.WithExtensions("gfm", "definition"))
	require.NoError(t, err)
	r := goldmark.NewRenderer()

	t.Run("strikethrough", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "<p><del>gone</del></p>", render(t, p, r, "~~gone~~"))
	})

	t.Run("table", func(t *testing.T) {
		t.Parallel()
		out := render(t, p, r, "| a | b |\n|---|:-:|\n| 1 | 2 |")
		assert.Contains(t, out, "<table><thead><tr><th>a</th>")
		assert.Contains(t, out, `<th align="center">b</th>`)
		assert.Contains(t, out, "<tbody><tr><td>1</td>")
		assert.Contains(t, out, `<td align="center">2</td>`)
	})

	t.Run("task list", func(t *testing.T) {
		t.Parallel()
		out := render(t, p, r, "- [x] done\n- [ ] todo")
		assert.Contains(t, out, `<input type="checkbox" disabled="" checked=""/>`)
		assert.Contains(t, out, `<input type="checkbox" disabled=""/>`)
	})

	t.Run("linkify", func(t *testing.T) {
		t.Parallel()
		out := render(t, p, r, "see https://example.com now")
		assert.Contains(t, out, `<a href="https://example.com">https://example.com</a>`)
	})

	t.Run("definition list", func(t *testing.T) {
		t.Parallel()
		out := render(t, p, r, "Term\n: Definition")
		assert.Contains(t, out, "<dl><dt>Term</dt><dd>")
		assert.Contains(t, out, "Definition")
	})
}

func TestRenderer_AppendsToExistingChildren(t *testing.T) {
	t.Parallel()

	p, err := goldmark.NewParser()
	require.NoError(t, err)
	doc, err := p.Parse([]byte("new"))
	require.NoError(t, err)

	container := dom.Element("main")
	container.AppendChild(dom.TextNode("old"))
	require.NoError(t, goldmark.NewRenderer().Render(doc, container))

	out, err := dom.InnerHTML(container)
	require.NoError(t, err)
	assert.Equal(t, "old<p>new</p>", out)
}

func TestRenderer_NoDocument(t *testing.T) {
	t.Parallel()

	r := goldmark.NewRenderer()
	assert.ErrorIs(t, r.Render(nil, &html.Node{}), goldmark.ErrNoDocument)
	assert.ErrorIs(t, r.Render(&mdview.Document{}, &html.Node{}), goldmark.ErrNoDocument)
}
