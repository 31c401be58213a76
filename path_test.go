package mdview_test

import (
	"testing"

	"github.com/fwojciec/mdview"
	"github.com/stretchr/testify/assert"
)

func TestPathFromQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"empty query", "", ""},
		{"bare question mark", "?", ""},
		{"view key", "?view=docs/intro.md", "docs/intro.md"},
		{"bare path", "?notes.md", "notes.md"},
		{"view key without path", "?view=", ""},
		{"missing question mark", "view=intro.md", ""},
		{"only first view prefix stripped", "?view=view=x.md", "view=x.md"},
		{"leading dot rejected", "?view=.env", ""},
		{"parent directory rejected", "?view=../secret.md", ""},
		{"bare parent directory rejected", "?../secret.md", ""},
		{"hidden segment rejected", "?view=docs/.git/config", ""},
		{"nested parent rejected", "?view=docs/../../x.md", ""},
		{"dot inside name allowed", "?view=docs/v1.2/notes.md", "docs/v1.2/notes.md"},
		{"other parameters kept verbatim", "?view=a.md&x=1", "a.md&x=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, mdview.PathFromQuery(tt.query))
		})
	}
}

func TestValidPath(t *testing.T) {
	t.Parallel()

	assert.True(t, mdview.ValidPath("welcome.md"))
	assert.True(t, mdview.ValidPath("a/b.c/d.md"))
	assert.True(t, mdview.ValidPath(""))
	assert.False(t, mdview.ValidPath(".hidden"))
	assert.False(t, mdview.ValidPath("a/.hidden"))
	assert.False(t, mdview.ValidPath("a/../b"))
}
