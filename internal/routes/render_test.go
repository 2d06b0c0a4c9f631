package routes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"route2file/internal/testutil"
)

func TestResultText_Golden(t *testing.T) {
	tests := []struct {
		name    string
		entries []string
		query   Query
	}{
		{
			name:    "exact",
			entries: []string{"pages/dashboard/settings.tsx"},
			query:   Query{RoutePath: "/dashboard/settings"},
		},
		{
			name:    "keyword_best",
			entries: []string{"src/views/user/list.vue", "src/pages/user/list.vue"},
			query:   Query{RoutePath: "/user/123"},
		},
		{
			name:    "not_found_truncated",
			entries: []string{"app/", "pages/", "src/views/", "src/pages/", "views/"},
			query:   Query{RoutePath: "/a/b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := testutil.NewProject(t, tt.entries...)
			res := resolve(t, root, tt.query)
			testutil.AssertGolden(t, "text_"+tt.name, testutil.NormalizeRoot(res.Text(), root))
		})
	}
}

func TestResultText_NotFoundShort(t *testing.T) {
	root := testutil.NewProject(t, "views/")
	res := resolve(t, root, Query{RoutePath: "/x"})

	text := res.Text()
	assert.Contains(t, text, `No source file found for route "/x".`)
	assert.Contains(t, text, "Project root: "+root)
	assert.Equal(t, 8, strings.Count(text, "\n  - "))
	assert.NotContains(t, text, "  ...")
	assert.Contains(t, text, "keyword")
}

func TestResultLabel(t *testing.T) {
	tests := []struct {
		res  Result
		want string
	}{
		{Result{Confidence: ConfidenceExact}, "exact match"},
		{Result{Confidence: ConfidenceKeywordUnique, KeywordMatches: 4}, "unique keyword match"},
		{Result{Confidence: ConfidenceKeywordBest, KeywordMatches: 3}, "best of 3 keyword matches"},
		{Result{}, "not found"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.res.Label())
	}
}
