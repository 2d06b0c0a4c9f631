package routes

import (
	"regexp"
	"strings"
)

var (
	numericSegment  = regexp.MustCompile(`^\d+$`)
	uuidSegment     = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
	objectIDSegment = regexp.MustCompile(`(?i)^[0-9a-f]{24}$`)

	keywordSeparators = regexp.MustCompile(`[\s,]+`)
)

// IsDynamicSegment reports whether a route segment looks like a runtime
// identifier (numeric id, UUID, 24-hex object id) rather than a name.
func IsDynamicSegment(seg string) bool {
	return numericSegment.MatchString(seg) ||
		uuidSegment.MatchString(seg) ||
		objectIDSegment.MatchString(seg)
}

// ExtractSearchTerms derives the lower-cased keyword-search terms for a
// route: its non-dynamic segments followed by the tokens of keyword
// (whitespace or comma separated). Duplicates are dropped, first
// occurrence wins.
func ExtractSearchTerms(routePath, keyword string) []string {
	var raw []string
	for _, seg := range Segments(routePath) {
		if !IsDynamicSegment(seg) {
			raw = append(raw, seg)
		}
	}
	for _, tok := range keywordSeparators.Split(strings.TrimSpace(keyword), -1) {
		if tok != "" {
			raw = append(raw, tok)
		}
	}

	seen := make(map[string]struct{}, len(raw))
	terms := make([]string, 0, len(raw))
	for _, t := range raw {
		lower := strings.ToLower(t)
		if _, ok := seen[lower]; ok {
			continue
		}
		seen[lower] = struct{}{}
		terms = append(terms, lower)
	}
	return terms
}
