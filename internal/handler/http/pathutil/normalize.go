package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns are evaluated in order from most specific to least specific.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/players/\d+$`), Template: "/players/:id"},
	{Pattern: regexp.MustCompile(`^/players/\d+/active$`), Template: "/players/:id/active"},
	{Pattern: regexp.MustCompile(`^/players/\d+/points$`), Template: "/players/:id/points"},
	{Pattern: regexp.MustCompile(`^/teams/\d+$`), Template: "/teams/:id"},
}

// NormalizePath collapses numeric IDs into templates so metric labels stay
// bounded. Query strings and a trailing slash are stripped first; paths that
// match no pattern are returned unchanged.
//
// Examples:
//
//	NormalizePath("/players/123")           // "/players/:id"
//	NormalizePath("/players/123/points")    // "/players/:id/points"
//	NormalizePath("/teams/standings")       // "/teams/standings" (unchanged)
//	NormalizePath("/players/123?size=5")    // "/players/:id"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}
	return path
}
