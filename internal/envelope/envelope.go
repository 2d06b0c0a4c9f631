// Package envelope provides the structured wrapper carried alongside every
// tool response. The envelope reports confidence, truncation, warnings and
// suggested next calls so that a client can act on a result without
// parsing its text rendering.
package envelope

// ConfidenceTier represents the quality tier of results.
type ConfidenceTier string

const (
	// TierHigh indicates an exact convention match.
	TierHigh ConfidenceTier = "high"
	// TierMedium indicates a single best keyword match.
	TierMedium ConfidenceTier = "medium"
	// TierLow indicates a keyword match picked among equally scored files.
	TierLow ConfidenceTier = "low"
	// TierNone indicates that nothing matched.
	TierNone ConfidenceTier = "none"
)

// Confidence describes result quality.
type Confidence struct {
	Tier    ConfidenceTier `json:"tier"`
	Reasons []string       `json:"reasons,omitempty"`
}

// Truncation describes result trimming.
type Truncation struct {
	IsTruncated bool   `json:"isTruncated"`
	Shown       int    `json:"shown,omitempty"`
	Total       int    `json:"total,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

// Search describes the keyword fallback, when it ran.
type Search struct {
	Terms      []string `json:"terms"`
	Matches    int      `json:"matches"`
	MatchCount int      `json:"matchCount,omitempty"`
}

// Meta holds response metadata.
type Meta struct {
	Confidence *Confidence `json:"confidence,omitempty"`
	Truncation *Truncation `json:"truncation,omitempty"`
	Search     *Search     `json:"search,omitempty"`
	CallID     string      `json:"callId,omitempty"`
}

// SuggestedCall represents a recommended follow-up tool call.
type SuggestedCall struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params,omitempty"`
	Reason string                 `json:"reason,omitempty"`
}

// Warning represents a non-fatal issue.
type Warning struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// Response is the standard envelope for tool responses.
type Response struct {
	SchemaVersion      string          `json:"schemaVersion"`
	Data               interface{}     `json:"data"`
	Meta               *Meta           `json:"meta,omitempty"`
	Warnings           []Warning       `json:"warnings,omitempty"`
	Error              *string         `json:"error,omitempty"`
	SuggestedNextCalls []SuggestedCall `json:"suggestedNextCalls,omitempty"`
}

// CurrentSchemaVersion is the current envelope schema version.
const CurrentSchemaVersion = "1.0"

// Warning codes.
const (
	WarnPathEscapesRoot = "PATH_ESCAPES_ROOT"
	WarnAmbiguousMatch  = "AMBIGUOUS_MATCH"
)
