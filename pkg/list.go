package pkg

import (
	"path"
	"sort"

	"github.com/go-logr/logr"
)

type Entry struct {
	*Post
	Heading string
}

// List returns the posts found directly under postsDir, ordered by date
// then title. Files not named like a post are skipped.
func List(fsys FS, postsDir string, log logr.Logger) (entries []Entry, err error) {
	if postsDir == "" {
		postsDir = DefaultPostsDir
	}
	dir, err := fsys.ReadDir(postsDir)
	if err != nil {
		return nil, err
	}
	for _, de := range dir {
		if de.IsDir() {
			continue
		}
		p, perr := ParseName(de.Name())
		if perr != nil {
			log.V(1).Info("skip", "file", path.Join(postsDir, de.Name()))
			continue
		}
		p.Dir = postsDir
		var data []byte
		if data, err = fsys.ReadFile(p.Path()); err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Post: p, Heading: Heading(data)})
	}
	sort.Slice(entries, func(i, j int) bool {
		if a, b := entries[i].Date(), entries[j].Date(); a != b {
			return a < b
		}
		return entries[i].Title < entries[j].Title
	})
	return
}
