package snapshot

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/keshon/codesnap/internal/fs"
)

// Matcher evaluates include/exclude patterns against candidate paths.
//
// Two pattern forms exist. A rooted pattern starts with "/" and matches
// exactly one path relative to the scan root, and only if that file really
// exists. Anything else is a glob: "**" collapses to "*", a pattern without
// a slash is matched against the basename, a pattern with a slash against
// the whole relative path.
type Matcher struct {
	fsys fs.FS
	root string
}

func NewMatcher(fsys fs.FS, root string) *Matcher {
	return &Matcher{fsys: fsys, root: root}
}

// Matches reports whether rel (slash-separated, root-relative) satisfies
// pattern. Malformed patterns match nothing; no error is ever raised.
func (m *Matcher) Matches(pattern, rel string) bool {
	if strings.HasPrefix(pattern, "/") {
		want := strings.TrimPrefix(pattern, "/")
		if rel != want {
			return false
		}
		return m.fsys.Exists(filepath.Join(m.root, filepath.FromSlash(want)))
	}

	// Single-level glob semantics only: every ** degrades to *.
	for strings.Contains(pattern, "**") {
		pattern = strings.ReplaceAll(pattern, "**", "*")
	}

	if !strings.Contains(pattern, "/") {
		return matchGlob(pattern, path.Base(rel))
	}
	return matchGlob(pattern, rel)
}

// MatchesAny reports whether rel satisfies at least one pattern.
func (m *Matcher) MatchesAny(patterns []string, rel string) bool {
	for _, p := range patterns {
		if m.Matches(p, rel) {
			return true
		}
	}
	return false
}

// matchGlob is a shell-case-style matcher: '*' matches any run of
// characters (separators included), '?' matches a single character.
// Iterative with single-star backtracking.
func matchGlob(pattern, s string) bool {
	var pi, si int
	star, mark := -1, 0

	for si < len(s) {
		switch {
		case pi < len(pattern) && (pattern[pi] == '?' || pattern[pi] == s[si]):
			pi++
			si++
		case pi < len(pattern) && pattern[pi] == '*':
			star, mark = pi, si
			pi++
		case star >= 0:
			pi = star + 1
			mark++
			si = mark
		default:
			return false
		}
	}

	for pi < len(pattern) && pattern[pi] == '*' {
		pi++
	}
	return pi == len(pattern)
}
