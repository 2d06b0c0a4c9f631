package routes

import (
	"sort"
	"strings"

	"route2file/internal/paths"
)

// ScoredMatch is a page file with the number of distinct search terms
// found in its relative path.
type ScoredMatch struct {
	File       PageFile `json:"file"`
	MatchCount int      `json:"matchCount"`
}

// RankMatches scores files against terms and returns those with at least
// one hit, best first: more matched terms, then shorter relative path,
// then collection order.
func RankMatches(files []PageFile, terms []string) []ScoredMatch {
	if len(terms) == 0 {
		return nil
	}

	var matches []ScoredMatch
	for _, f := range files {
		normalized := strings.ToLower(paths.NormalizePath(f.RelPath))
		count := 0
		for _, t := range terms {
			if strings.Contains(normalized, t) {
				count++
			}
		}
		if count > 0 {
			matches = append(matches, ScoredMatch{File: f, MatchCount: count})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].MatchCount != matches[j].MatchCount {
			return matches[i].MatchCount > matches[j].MatchCount
		}
		return len(matches[i].File.RelPath) < len(matches[j].File.RelPath)
	})
	return matches
}

// topTied returns how many leading matches share the best score.
func topTied(matches []ScoredMatch) int {
	if len(matches) == 0 {
		return 0
	}
	n := 1
	for n < len(matches) && matches[n].MatchCount == matches[0].MatchCount {
		n++
	}
	return n
}
