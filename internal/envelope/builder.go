package envelope

import (
	"fmt"

	"route2file/internal/routes"
)

// ToolName is the tool suggested in follow-up calls.
const ToolName = "open_route_source"

// Builder constructs Response envelopes using a fluent API.
type Builder struct {
	resp *Response
}

// New creates a new envelope builder.
func New() *Builder {
	return &Builder{
		resp: &Response{
			SchemaVersion: CurrentSchemaVersion,
		},
	}
}

// Data sets the tool-specific payload.
func (b *Builder) Data(data interface{}) *Builder {
	b.resp.Data = data
	return b
}

func (b *Builder) meta() *Meta {
	if b.resp.Meta == nil {
		b.resp.Meta = &Meta{}
	}
	return b.resp.Meta
}

// FromResult populates data and metadata from a resolution result.
func (b *Builder) FromResult(r *routes.Result) *Builder {
	if r == nil {
		return b
	}
	b.Data(r)

	conf := &Confidence{Tier: TierFor(r.Confidence)}
	switch r.Confidence {
	case routes.ConfidenceExact:
		conf.Reasons = []string{"convention-candidate"}
	case routes.ConfidenceKeywordUnique:
		conf.Reasons = []string{"keyword-search", "single-top-score"}
	case routes.ConfidenceKeywordBest:
		conf.Reasons = []string{"keyword-search", "tied-top-score"}
	default:
		conf.Reasons = []string{"no-match"}
	}
	b.meta().Confidence = conf

	b.WithTruncation(r.Truncated(), len(r.CandidatesTried), r.TotalCandidates, "candidate-preview")

	if r.Terms != nil {
		b.meta().Search = &Search{
			Terms:      r.Terms,
			Matches:    r.KeywordMatches,
			MatchCount: r.MatchCount,
		}
	}

	if r.EscapesRoot {
		b.WarningWithCode(WarnPathEscapesRoot,
			"route contains \"..\" segments that resolve outside the project root")
	}
	if r.Confidence == routes.ConfidenceKeywordBest {
		b.WarningWithCode(WarnAmbiguousMatch,
			fmt.Sprintf("%d files scored equally or lower; the shortest path was chosen", r.KeywordMatches))
	}

	if r.Confidence != routes.ConfidenceExact {
		b.suggestKeywordRetry(r)
	}
	return b
}

// suggestKeywordRetry proposes calling the tool again with an explicit
// keyword, pre-filled from the route's own terms when there are any.
func (b *Builder) suggestKeywordRetry(r *routes.Result) {
	params := map[string]interface{}{
		"routePath":   r.RoutePath,
		"projectRoot": r.ProjectRoot,
	}
	reason := "narrow the keyword search with a page or menu name"
	if !r.Found {
		reason = "search page directories by keyword"
	}
	if len(r.Terms) > 0 {
		params["keyword"] = r.Terms[len(r.Terms)-1]
	}
	b.resp.SuggestedNextCalls = append(b.resp.SuggestedNextCalls, SuggestedCall{
		Tool:   ToolName,
		Params: params,
		Reason: reason,
	})
}

// WithTruncation adds truncation metadata.
func (b *Builder) WithTruncation(truncated bool, shown, total int, reason string) *Builder {
	if !truncated {
		return b
	}
	b.meta().Truncation = &Truncation{
		IsTruncated: true,
		Shown:       shown,
		Total:       total,
		Reason:      reason,
	}
	return b
}

// CallID records the correlation id of the tool call.
func (b *Builder) CallID(id string) *Builder {
	if id != "" {
		b.meta().CallID = id
	}
	return b
}

// WarningWithCode adds a warning with a code.
func (b *Builder) WarningWithCode(code, msg string) *Builder {
	b.resp.Warnings = append(b.resp.Warnings, Warning{Code: code, Message: msg})
	return b
}

// Error sets the error field.
func (b *Builder) Error(err error) *Builder {
	if err != nil {
		msg := err.Error()
		b.resp.Error = &msg
	}
	return b
}

// Build returns the completed response envelope.
func (b *Builder) Build() *Response {
	return b.resp
}
