package pagedepth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func parse(t *testing.T, s string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(s))
	require.NoError(t, err)
	return doc
}

func TestMaxDepth(t *testing.T) {
	tests := []struct {
		name string
		page string
		want int
	}{
		{"no lists", `<p>hello</p>`, 0},
		{"flat list", `<ul><li>a</li><li>b</li></ul>`, 1},
		{"ul ol ul", `<ul><li><ol><li><ul></ul></li></ol></li></ul>`, 3},
		{"sibling lists", `<ol><li>x</li></ol><ul><li><ul><li>y</li></ul></li></ul>`, 2},
		{"deep ol chain", `<ol><li><ol><li><ol><li><ol></ol></li></ol></li></ol></li></ol>`, 4},
		{"follows first nested list only", `<ul><li><ul></ul></li><li><ul><li><ul></ul></li></ul></li></ul>`, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaxDepth(parse(t, tt.page)))
		})
	}
}

func TestDepthOfSingleElement(t *testing.T) {
	doc := parse(t, `<ul><li>plain</li></ul>`)
	ul := first(doc, atom.Ul)
	require.NotNil(t, ul)
	assert.Equal(t, 1, Depth(ul))
	assert.Equal(t, 0, Depth(nil))
}

func TestMaxDepthReader(t *testing.T) {
	d, err := MaxDepthReader(strings.NewReader(`<html><body><ul><li><ol></ol></li></ul></body></html>`))
	require.NoError(t, err)
	assert.Equal(t, 2, d)
}
