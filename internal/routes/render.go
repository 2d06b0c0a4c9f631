package routes

import (
	"fmt"
	"strings"
)

// Label is the short human description of how the file was found.
func (r *Result) Label() string {
	switch r.Confidence {
	case ConfidenceExact:
		return "exact match"
	case ConfidenceKeywordUnique:
		return "unique keyword match"
	case ConfidenceKeywordBest:
		return fmt.Sprintf("best of %d keyword matches", r.KeywordMatches)
	default:
		return "not found"
	}
}

// Text renders the result for a human or an editor assistant.
func (r *Result) Text() string {
	var b strings.Builder

	if !r.Found {
		fmt.Fprintf(&b, "No source file found for route %q.\n", r.RoutePath)
		fmt.Fprintf(&b, "Project root: %s\n", r.ProjectRoot)
		b.WriteString("Candidates tried (partial):\n")
		for _, c := range r.CandidatesTried {
			fmt.Fprintf(&b, "  - %s\n", c)
		}
		if r.Truncated() {
			b.WriteString("  ...\n")
		}
		b.WriteString("Pass the keyword parameter (a page or menu name, several separated by spaces or commas) ")
		b.WriteString("to search the page directories by keyword. Dynamic segments such as numeric ids, ")
		b.WriteString("UUIDs and 24-character object ids (e.g. /user/123) are dropped before matching.")
		return b.String()
	}

	fmt.Fprintf(&b, "Route %q resolves to (%s):\n\n", r.RoutePath, r.Label())
	fmt.Fprintf(&b, "File: %s\n", r.Path)
	fmt.Fprintf(&b, "Relative: %s\n", r.RelativePath)
	if r.Confidence != ConfidenceExact && len(r.Terms) > 0 {
		fmt.Fprintf(&b, "Search terms: %s\n", strings.Join(r.Terms, ", "))
	}
	b.WriteString("\nOpen the path above in your editor to edit the page.")
	return b.String()
}
