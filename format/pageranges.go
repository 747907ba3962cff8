// Package format holds the presentation helpers: page-range collapsing,
// query highlighting and search-type labels.
package format

import (
	"slices"
	"strconv"
	"strings"
)

// PageRanges renders page numbers as a comma-separated list with consecutive
// runs collapsed, e.g. [1 2 3 5 7 8] -> "1-3, 5, 7-8". The input is sorted
// and deduplicated first, so pages may be passed exactly as the backend
// returned them.
func PageRanges(pages []int) string {
	if len(pages) == 0 {
		return ""
	}

	sorted := slices.Clone(pages)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	var b strings.Builder
	start, prev := sorted[0], sorted[0]

	flush := func() {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(start))
		if prev != start {
			b.WriteByte('-')
			b.WriteString(strconv.Itoa(prev))
		}
	}

	for _, p := range sorted[1:] {
		if p == prev+1 {
			prev = p
			continue
		}
		flush()
		start, prev = p, p
	}
	flush()

	return b.String()
}
