package format

import (
	"regexp"
	"strings"
)

// Segment is a run of text; Match marks runs that matched the query.
type Segment struct {
	Text  string
	Match bool
}

// Highlight splits text into segments so that every case-insensitive
// occurrence of query is a Match segment and everything else passes through
// unchanged. An empty query yields the whole text as a single segment. The
// query is quoted, so regex metacharacters match literally.
func Highlight(text, query string) []Segment {
	if query == "" {
		return []Segment{{Text: text}}
	}

	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(query))
	locs := re.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return []Segment{{Text: text}}
	}

	segs := make([]Segment, 0, 2*len(locs)+1)
	pos := 0
	for _, loc := range locs {
		if loc[0] > pos {
			segs = append(segs, Segment{Text: text[pos:loc[0]]})
		}
		segs = append(segs, Segment{Text: text[loc[0]:loc[1]], Match: true})
		pos = loc[1]
	}
	if pos < len(text) {
		segs = append(segs, Segment{Text: text[pos:]})
	}

	return segs
}

const (
	ansiReset = "\x1b[0m"
	ansiMatch = "\x1b[1;33m"
)

// RenderANSI flattens segments back into a string, wrapping match segments
// in terminal emphasis. With color disabled the output equals the original
// text.
func RenderANSI(segs []Segment, color bool) string {
	var b strings.Builder
	for _, s := range segs {
		if s.Match && color {
			b.WriteString(ansiMatch)
			b.WriteString(s.Text)
			b.WriteString(ansiReset)
			continue
		}
		b.WriteString(s.Text)
	}
	return b.String()
}
