package pkg

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

const (
	DefaultPostsDir = "_posts"
	DateLayout      = "2006-01-02"
	Ext             = ".md"
)

var ErrNoMatch = errors.New("not a dated post path")

var nameRe = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})-(?P<title>.*)\.md$`)

// Post is a dated post file: <Dir>/<YYYY-MM-DD>-<Title>.md
type Post struct {
	Dir   string
	Year  string
	Month string
	Day   string
	// Title is the slug after the date, kept verbatim.
	Title string
}

// ParsePath parses pth as a post under dir. The path must start with dir
// followed by a slash; anything else is ErrNoMatch.
func ParsePath(dir, pth string) (*Post, error) {
	if dir == "" {
		dir = DefaultPostsDir
	}
	prefix := dir + "/"
	if len(pth) <= len(prefix) || pth[:len(prefix)] != prefix {
		return nil, fmt.Errorf("%q: %w (want %s/YYYY-MM-DD-TITLE%s)", pth, ErrNoMatch, dir, Ext)
	}
	p, err := ParseName(pth[len(prefix):])
	if err != nil {
		return nil, fmt.Errorf("%q: %w (want %s/YYYY-MM-DD-TITLE%s)", pth, ErrNoMatch, dir, Ext)
	}
	p.Dir = dir
	return p, nil
}

// ParseName parses a bare file name such as 2023-01-01-hello.md.
func ParseName(name string) (*Post, error) {
	m := nameRe.FindStringSubmatch(name)
	if m == nil {
		return nil, ErrNoMatch
	}
	return &Post{
		Year:  m[1],
		Month: m[2],
		Day:   m[3],
		Title: m[nameRe.SubexpIndex("title")],
	}, nil
}

// Date returns the YYYY-MM-DD part of the name.
func (p *Post) Date() string {
	return p.Year + "-" + p.Month + "-" + p.Day
}

// Name returns the base file name.
func (p *Post) Name() string {
	return p.Date() + "-" + p.Title + Ext
}

// Path returns the slash separated path, Dir included.
func (p *Post) Path() string {
	return p.Dir + "/" + p.Name()
}

// Roll returns a copy of p dated at now, in now's location.
func (p *Post) Roll(now time.Time) *Post {
	c := *p
	d := now.Format(DateLayout)
	c.Year, c.Month, c.Day = d[0:4], d[5:7], d[8:10]
	return &c
}
