package pkg

import (
	"bytes"
	"strings"

	bf "github.com/russross/blackfriday/v2"
)

// Heading returns the text of the first markdown heading of a post body,
// skipping the front matter block. It returns "" when there is none.
func Heading(data []byte) string {
	md := bf.New(bf.WithExtensions(bf.CommonExtensions))
	ast := md.Parse(stripFrontMatter(data))

	var title strings.Builder
	ast.Walk(func(node *bf.Node, entering bool) bf.WalkStatus {
		if node.Type != bf.Heading {
			return bf.GoToNext
		}
		node.Walk(func(n *bf.Node, entering bool) bf.WalkStatus {
			if entering {
				switch n.Type {
				case bf.Text, bf.Code:
					title.Write(n.Literal)
				case bf.Softbreak, bf.Hardbreak:
					title.WriteByte(' ')
				}
			}
			return bf.GoToNext
		})
		return bf.Terminate
	})
	return strings.TrimSpace(title.String())
}

func stripFrontMatter(data []byte) []byte {
	if !bytes.HasPrefix(data, fmDelim) {
		return data
	}
	lines := bytes.SplitAfter(data, []byte("\n"))
	if !bytes.Equal(bytes.TrimRight(lines[0], "\r\n"), fmDelim) {
		return data
	}
	var n int
	for i, l := range lines {
		n += len(l)
		if i > 0 && bytes.Equal(bytes.TrimRight(l, "\r\n"), fmDelim) {
			return data[n:]
		}
	}
	return data
}
