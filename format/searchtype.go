package format

// SearchTypeLabel maps a backend search type to its display name. Unknown
// types get a neutral label rather than an error; the value is display-only.
func SearchTypeLabel(searchType string) string {
	switch searchType {
	case "semantic":
		return "Semantic"
	case "keyword":
		return "Keyword"
	case "hybrid":
		return "Hybrid"
	default:
		return "Search"
	}
}

func searchTypeColor(searchType string) string {
	switch searchType {
	case "semantic":
		return "\x1b[34m"
	case "keyword":
		return "\x1b[32m"
	case "hybrid":
		return "\x1b[35m"
	default:
		return ""
	}
}

// SearchTypeTag renders the bracketed label shown next to each result,
// coloured per search type when color is enabled.
func SearchTypeTag(searchType string, color bool) string {
	label := "[" + SearchTypeLabel(searchType) + "]"
	if !color {
		return label
	}

	c := searchTypeColor(searchType)
	if c == "" {
		return label
	}
	return c + label + ansiReset
}
