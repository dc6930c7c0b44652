package pkg

import (
	"bytes"
	"regexp"
)

var (
	fmDelim  = []byte("---")
	fmDateRe = regexp.MustCompile(`^(date:\s*["']?)\d{4}-\d{2}-\d{2}`)
)

// SetFrontMatterDate replaces the YYYY-MM-DD prefix of the date key in the
// leading --- block of data. Anything after the date (time, zone, quote) is
// kept. The second result reports whether data was changed.
func SetFrontMatterDate(data []byte, date string) ([]byte, bool) {
	lines := bytes.SplitAfter(data, []byte("\n"))
	if len(lines) == 0 || !bytes.Equal(bytes.TrimRight(lines[0], "\r\n"), fmDelim) {
		return data, false
	}
	end := -1
	for i := 1; i < len(lines); i++ {
		if bytes.Equal(bytes.TrimRight(lines[i], "\r\n"), fmDelim) {
			end = i
			break
		}
	}
	// unterminated block: not front matter
	for i := 1; i < end; i++ {
		line := lines[i]
		loc := fmDateRe.FindSubmatchIndex(line)
		if loc == nil {
			continue
		}
		var out bytes.Buffer
		out.Grow(len(data))
		for _, l := range lines[:i] {
			out.Write(l)
		}
		out.Write(line[:loc[3]])
		out.WriteString(date)
		out.Write(line[loc[1]:])
		for _, l := range lines[i+1:] {
			out.Write(l)
		}
		return out.Bytes(), !bytes.Equal(out.Bytes(), data)
	}
	return data, false
}
