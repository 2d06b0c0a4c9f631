package routes

import (
	"context"
	"log/slog"
	"os"

	"route2file/internal/paths"
	"route2file/internal/slogutil"
)

// Confidence describes how a route was matched to a file.
type Confidence string

const (
	// ConfidenceExact: a convention candidate exists on disk.
	ConfidenceExact Confidence = "exact"
	// ConfidenceKeywordUnique: keyword search with a single top-scoring file.
	ConfidenceKeywordUnique Confidence = "keyword-unique"
	// ConfidenceKeywordBest: keyword search where several files tie on score.
	ConfidenceKeywordBest Confidence = "keyword-best"
)

// DefaultPreviewLimit bounds Result.CandidatesTried.
const DefaultPreviewLimit = 20

// Query is the input of one resolution.
type Query struct {
	RoutePath   string `json:"routePath"`
	ProjectRoot string `json:"projectRoot,omitempty"`
	Keyword     string `json:"keyword,omitempty"`
}

// Result is the outcome of one resolution.
type Result struct {
	RoutePath    string       `json:"routePath"`
	ProjectRoot  string       `json:"projectRoot"`
	Found        bool         `json:"found"`
	Path         string       `json:"path,omitempty"`
	RelativePath string       `json:"relativePath,omitempty"`
	Confidence   Confidence   `json:"confidence,omitempty"`
	Conventions  []Convention `json:"conventions"`

	// CandidatesTried previews the exact-match candidates in probe order.
	CandidatesTried []string `json:"candidatesTried"`
	TotalCandidates int      `json:"totalCandidates"`

	// Keyword fallback details; empty when the exact phase hit.
	Terms          []string `json:"terms,omitempty"`
	KeywordMatches int      `json:"keywordMatches,omitempty"`
	MatchCount     int      `json:"matchCount,omitempty"`

	// EscapesRoot is set when some candidate lies outside ProjectRoot,
	// which happens for routes containing "..". Such paths are still probed.
	EscapesRoot bool `json:"escapesRoot,omitempty"`
}

// Truncated reports whether CandidatesTried is a strict prefix of all candidates.
func (r *Result) Truncated() bool {
	return r.TotalCandidates > len(r.CandidatesTried)
}

// Options configures a Resolver.
type Options struct {
	// DefaultRoot is used when a query carries no project root.
	// Empty means the working directory.
	DefaultRoot     string
	PreviewLimit    int
	ExtraIgnoreDirs []string
	Parallel        bool
	Logger          *slog.Logger
}

// Resolver maps route paths to source files. It holds no per-request
// state and is safe for concurrent use.
type Resolver struct {
	defaultRoot  string
	previewLimit int
	collector    *Collector
	logger       *slog.Logger
}

// NewResolver creates a resolver.
func NewResolver(opts Options) *Resolver {
	if opts.PreviewLimit <= 0 {
		opts.PreviewLimit = DefaultPreviewLimit
	}
	if opts.Logger == nil {
		opts.Logger = slogutil.NewDiscardLogger()
	}
	return &Resolver{
		defaultRoot:  opts.DefaultRoot,
		previewLimit: opts.PreviewLimit,
		collector:    NewCollector(opts.ExtraIgnoreDirs, opts.Parallel),
		logger:       opts.Logger,
	}
}

// DefaultRoot returns the root used when a query carries none.
func (r *Resolver) DefaultRoot() string {
	return r.defaultRoot
}

// Resolve finds the file rendering q.RoutePath. Exact convention
// candidates are probed first; on a miss the route's stable segments and
// the keyword are matched against every page file. A route with no match
// is a normal result with Found=false. Errors come only from ctx or from
// failing to determine the working directory.
func (r *Resolver) Resolve(ctx context.Context, q Query) (*Result, error) {
	root, err := paths.ResolveRoot(q.ProjectRoot, r.defaultRoot)
	if err != nil {
		return nil, err
	}

	segments := Segments(q.RoutePath)
	conventions := DetectConventions(root)
	candidates := GenerateCandidates(root, segments, conventions)

	res := &Result{
		RoutePath:       q.RoutePath,
		ProjectRoot:     root,
		Conventions:     conventions,
		CandidatesTried: preview(candidates, r.previewLimit),
		TotalCandidates: len(candidates),
	}
	for _, c := range candidates {
		if !paths.IsWithinRoot(c, root) {
			res.EscapesRoot = true
			r.logger.Warn("Candidate escapes project root", "route", q.RoutePath, "candidate", c)
			break
		}
	}

	r.logger.Debug("Generated candidates",
		"route", q.RoutePath,
		"root", root,
		"conventions", len(conventions),
		"candidates", len(candidates),
	)

	found, err := firstExisting(ctx, candidates)
	if err != nil {
		return nil, err
	}
	if found != "" {
		res.setFound(found, ConfidenceExact)
		return res, nil
	}

	res.Terms = ExtractSearchTerms(q.RoutePath, q.Keyword)
	if len(res.Terms) == 0 {
		r.logger.Debug("No search terms, skipping keyword search", "route", q.RoutePath)
		return res, nil
	}

	files, err := r.collector.CollectAll(ctx, root, conventions)
	if err != nil {
		return nil, err
	}
	matches := RankMatches(files, res.Terms)

	r.logger.Debug("Keyword search",
		"route", q.RoutePath,
		"terms", res.Terms,
		"files", len(files),
		"matches", len(matches),
	)

	if len(matches) == 0 {
		return res, nil
	}

	res.KeywordMatches = len(matches)
	res.MatchCount = matches[0].MatchCount
	confidence := ConfidenceKeywordUnique
	if topTied(matches) > 1 {
		confidence = ConfidenceKeywordBest
	}
	res.setFound(matches[0].File.Path, confidence)
	return res, nil
}

func (r *Result) setFound(path string, confidence Confidence) {
	r.Found = true
	r.Path = path
	r.RelativePath = paths.RelativeTo(r.ProjectRoot, path)
	r.Confidence = confidence
}

// firstExisting returns the first candidate that is a readable regular
// file, or "" when none is.
func firstExisting(ctx context.Context, candidates []string) (string, error) {
	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if isReadableFile(c) {
			return c, nil
		}
	}
	return "", nil
}

func isReadableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}

func preview(candidates []string, limit int) []string {
	n := len(candidates)
	if n > limit {
		n = limit
	}
	out := make([]string, n)
	copy(out, candidates[:n])
	return out
}
