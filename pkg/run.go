package pkg

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/go-logr/logr"
)

type RunConfig struct {
	Now         time.Time
	Input       string
	RootDir     string
	PostsDir    string
	DryRun      bool
	FrontMatter bool
	FS          FS
	Log         logr.Logger
}

// Result describes a roll. Renamed is false for dry runs and for posts
// already dated Now; the front matter of the latter is still updated.
type Result struct {
	From, To *Post
	Renamed  bool
	// FrontMatter is true when the date key was rewritten.
	FrontMatter bool
}

// Exec renames cfg.Input so its date is cfg.Now, keeping the title.
func Exec(cfg RunConfig) (res *Result, err error) {
	if cfg.RootDir == "" {
		cfg.RootDir = "."
	}
	if cfg.PostsDir == "" {
		cfg.PostsDir = DefaultPostsDir
	}
	if cfg.FS == nil {
		cfg.FS = DirFS(cfg.RootDir)
	}
	if cfg.Now.IsZero() {
		cfg.Now = time.Now()
	}
	log := cfg.Log.WithValues("post", cfg.Input)

	var from *Post
	if from, err = ParsePath(cfg.PostsDir, cfg.Input); err != nil {
		return
	}
	res = &Result{From: from, To: from.Roll(cfg.Now)}
	src, dst := from.Path(), res.To.Path()

	log.V(1).Info("parsed", "title", from.Title, "date", from.Date(), "root", cfg.RootDir)

	// the same checks run for a dry run, so its preview only promises
	// renames that would succeed
	if _, err = cfg.FS.Stat(src); err != nil {
		return nil, err
	}
	if src != dst {
		if _, serr := cfg.FS.Stat(dst); serr == nil {
			return nil, &os.LinkError{Op: "rename", Old: src, New: dst, Err: fs.ErrExist}
		} else if !errors.Is(serr, fs.ErrNotExist) {
			return nil, serr
		}
	}

	if cfg.DryRun {
		log.Info("dry run", "to", dst)
		return
	}

	var orig []byte
	if cfg.FrontMatter {
		if orig, res.FrontMatter, err = rollFrontMatter(cfg.FS, src, res.To.Date()); err != nil {
			return nil, err
		}
		if res.FrontMatter {
			log.V(1).Info("front matter date updated", "date", res.To.Date())
		}
	}

	if src == dst {
		log.Info("already dated today", "date", from.Date())
		return
	}

	if err = cfg.FS.Rename(src, dst); err != nil {
		if res.FrontMatter {
			if werr := cfg.FS.WriteFile(src, orig); werr != nil {
				log.Error(werr, "restore front matter")
			}
		}
		return nil, err
	}
	res.Renamed = true
	log.Info("rolled", "to", dst)
	return
}

// rollFrontMatter returns the content of name before the rewrite.
func rollFrontMatter(fsys FS, name, date string) (orig []byte, changed bool, err error) {
	if orig, err = fsys.ReadFile(name); err != nil {
		return
	}
	var data []byte
	if data, changed = SetFrontMatterDate(orig, date); !changed {
		return
	}
	if err = fsys.WriteFile(name, data); err != nil {
		return nil, false, fmt.Errorf("update front matter of %q: %w", name, err)
	}
	return
}
