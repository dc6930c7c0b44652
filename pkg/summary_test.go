package pkg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeading(t *testing.T) {
	tdt := []struct {
		input string
		want  string
	}{
		{input: "# Hello World\n\ntext", want: "Hello World"},
		{input: "intro\n\n## Second *level* `code`\n\n# Later", want: "Second level code"},
		{input: "Setext\n======\n", want: "Setext"},
		{input: "---\ntitle: x\n# not a heading\n---\n\n# Body\n", want: "Body"},
		{input: "no heading here\n", want: ""},
		{input: "", want: ""},
	}

	for _, v := range tdt {
		assert.Equal(t, v.want, Heading([]byte(v.input)), v.input)
	}
}

func TestList(t *testing.T) {
	root := newSite(t, map[string]string{
		"_posts/2023-05-01-b.md":   "# B\n",
		"_posts/2023-05-01-a.md":   "# A\n",
		"_posts/2021-01-01-old.md": "no heading\n",
		"_posts/README.md":         "# skip me\n",
	})
	require.NoError(t, os.MkdirAll(filepath.Join(root, "_posts", "2020-01-01-dir.md"), 0775))

	entries, err := List(DirFS(root), "", logr.Discard())
	require.NoError(t, err)

	var got [][3]string
	for _, e := range entries {
		got = append(got, [3]string{e.Date(), e.Title, e.Heading})
	}
	assert.Equal(t, [][3]string{
		{"2021-01-01", "old", ""},
		{"2023-05-01", "a", "A"},
		{"2023-05-01", "b", "B"},
	}, got)
}

func TestListMissingDir(t *testing.T) {
	_, err := List(DirFS(t.TempDir()), "nope", logr.Discard())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
