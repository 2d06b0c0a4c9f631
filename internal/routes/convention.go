package routes

import (
	"os"
	"path/filepath"
	"strings"
)

// ConventionKind identifies a frontend routing convention.
type ConventionKind string

const (
	NextApp   ConventionKind = "next-app"
	NextPages ConventionKind = "next-pages"
	SrcViews  ConventionKind = "src-views"
	SrcPages  ConventionKind = "src-pages"
	Views     ConventionKind = "views"
	Pages     ConventionKind = "pages"
)

// Convention is a routing convention detected under a project root.
// Dir is relative to the root and always uses forward slashes.
type Convention struct {
	Kind ConventionKind `json:"kind"`
	Dir  string         `json:"dir"`
}

// knownConventions is the probe order. Pages Router and the generic pages
// bucket share a directory on purpose: both interpretations are tried.
var knownConventions = []Convention{
	{NextApp, "app"},
	{NextPages, "pages"},
	{SrcViews, "src/views"},
	{SrcPages, "src/pages"},
	{Views, "views"},
	{Pages, "pages"},
}

// pageExtensions are the extensions a view/page-directory file may carry.
var pageExtensions = []string{".vue", ".tsx", ".jsx", ".js"}

// appPageSuffixes are the App Router page file suffixes.
var appPageSuffixes = []string{"page.tsx", "page.js", "page.jsx"}

// DetectConventions returns the known conventions whose directory exists
// under root, in probe order. Stat failures count as absence.
func DetectConventions(root string) []Convention {
	var found []Convention
	for _, c := range knownConventions {
		info, err := os.Stat(filepath.Join(root, filepath.FromSlash(c.Dir)))
		if err != nil || !info.IsDir() {
			continue
		}
		found = append(found, c)
	}
	return found
}

// IsViewDir reports whether the convention belongs to the generic
// "views/pages directory" family used by Vue and plain React projects.
func (c Convention) IsViewDir() bool {
	switch c.Kind {
	case SrcViews, SrcPages, Views, Pages:
		return true
	}
	return false
}

// IsPageFile reports whether a file under the convention directory looks
// like a route file. App Router only counts page.* files (case-insensitive);
// the other conventions accept any file with a page extension.
func (c Convention) IsPageFile(name string) bool {
	if c.Kind == NextApp {
		lower := strings.ToLower(name)
		for _, suffix := range appPageSuffixes {
			if strings.HasSuffix(lower, suffix) {
				return true
			}
		}
		return false
	}
	for _, ext := range pageExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

func hasKind(conventions []Convention, kind ConventionKind) bool {
	for _, c := range conventions {
		if c.Kind == kind {
			return true
		}
	}
	return false
}
