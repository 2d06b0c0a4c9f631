// Package routes maps a running application's route path to the frontend
// source file that renders it.
package routes

import "strings"

// Segments splits a route path into its non-empty path segments.
// "/guild/42/salary/" -> ["guild", "42", "salary"]. An empty route is the
// application root and yields no segments.
func Segments(routePath string) []string {
	trimmed := strings.TrimSpace(routePath)
	trimmed = strings.TrimPrefix(trimmed, "/")
	if trimmed == "" {
		return nil
	}

	parts := strings.Split(trimmed, "/")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}
