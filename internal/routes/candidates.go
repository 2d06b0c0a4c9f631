package routes

import "path/filepath"

// CandidateSet is an insertion-ordered set of file paths keyed by their
// cleaned form.
type CandidateSet struct {
	order []string
	seen  map[string]struct{}
}

// NewCandidateSet returns an empty set.
func NewCandidateSet() *CandidateSet {
	return &CandidateSet{seen: make(map[string]struct{})}
}

// Add inserts path unless an equal cleaned path is already present.
// It reports whether the path was new.
func (s *CandidateSet) Add(path string) bool {
	n := filepath.Clean(path)
	if _, ok := s.seen[n]; ok {
		return false
	}
	s.seen[n] = struct{}{}
	s.order = append(s.order, n)
	return true
}

// Paths returns the paths in first-seen order.
func (s *CandidateSet) Paths() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of distinct paths.
func (s *CandidateSet) Len() int {
	return len(s.order)
}

var (
	appRouterExts   = []string{".tsx", ".js", ".jsx"}
	pagesRouterExts = []string{".tsx", ".jsx", ".js"}
)

// GenerateCandidates returns every file path that could render the route
// under the detected conventions, most specific convention first:
// App Router, then Pages Router, then the view/page directories.
// It never touches the filesystem.
func GenerateCandidates(root string, segments []string, conventions []Convention) []string {
	set := NewCandidateSet()

	if hasKind(conventions, NextApp) {
		for _, p := range appRouterCandidates(root, segments) {
			set.Add(p)
		}
	}
	if hasKind(conventions, NextPages) {
		for _, p := range pagesRouterCandidates(root, segments) {
			set.Add(p)
		}
	}

	var viewDirs []string
	for _, c := range conventions {
		if c.IsViewDir() {
			viewDirs = append(viewDirs, c.Dir)
		}
	}
	for _, p := range viewDirCandidates(root, segments, viewDirs) {
		set.Add(p)
	}

	return set.Paths()
}

// appRouterCandidates: app/<segments>/page.<ext>.
func appRouterCandidates(root string, segments []string) []string {
	dir := joinUnder(root, "app", segments)
	out := make([]string, 0, len(appRouterExts))
	for _, ext := range appRouterExts {
		out = append(out, filepath.Join(dir, "page"+ext))
	}
	return out
}

// pagesRouterCandidates: pages/<segments>.<ext> and pages/<segments>/index.<ext>,
// or pages/index.<ext> for the root route.
func pagesRouterCandidates(root string, segments []string) []string {
	pagesDir := filepath.Join(root, "pages")
	if len(segments) == 0 {
		out := make([]string, 0, len(pagesRouterExts))
		for _, ext := range pagesRouterExts {
			out = append(out, filepath.Join(pagesDir, "index"+ext))
		}
		return out
	}

	target := joinUnder(root, "pages", segments)
	out := make([]string, 0, 2*len(pagesRouterExts))
	for _, ext := range pagesRouterExts {
		out = append(out, target+ext)
		out = append(out, filepath.Join(target, "index"+ext))
	}
	return out
}

// viewDirCandidates covers Vue and plain React layouts:
// <base>/<segments>/index.<ext> and <base>/<parent segments>/<last>.<ext>.
// The root route has no view-directory candidates.
func viewDirCandidates(root string, segments []string, dirs []string) []string {
	if len(segments) == 0 || len(dirs) == 0 {
		return nil
	}

	var out []string
	for _, dir := range dirs {
		target := joinUnder(root, dir, segments)
		parent, last := filepath.Dir(target), filepath.Base(target)
		for _, ext := range pageExtensions {
			out = append(out, filepath.Join(target, "index"+ext))
			out = append(out, filepath.Join(parent, last+ext))
		}
	}
	return out
}

func joinUnder(root, dir string, segments []string) string {
	parts := make([]string, 0, len(segments)+2)
	parts = append(parts, root, filepath.FromSlash(dir))
	parts = append(parts, segments...)
	return filepath.Join(parts...)
}
