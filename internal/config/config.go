package config

import (
	"os"
	"strconv"

	"github.com/keshon/codesnap/internal/fs"
	"github.com/keshon/codesnap/internal/util"
)

const (
	// ConfigFile holds persistent defaults next to the project being packed.
	ConfigFile = ".codesnap.json"

	DefaultOutput = "snapshot.txt"
)

// DefaultIgnoredDirs are pruned during the walk fallback unless default
// ignores are disabled. Git-aware discovery relies on ignore rules instead.
var DefaultIgnoredDirs = []string{
	".git", "node_modules", "vendor", "dist", "build", ".cache",
	".idea", ".vscode", "target", "bin", "out", "coverage", ".hg", ".svn",
}

// DocExtensions are document-like extensions whose '#' lines are headings,
// not comments, so hash stripping is disabled for them.
var DocExtensions = []string{
	"md", "txt", "rst", "doc", "docx", "rtf", "pdf", "org", "adoc", "asciidoc",
}

// Settings are user defaults, a lower-priority layer under command flags.
type Settings struct {
	Output string `json:"output,omitempty"`
	Jobs   int    `json:"jobs,omitempty"`
	Split  int    `json:"split,omitempty"`
}

// Load reads Settings from .codesnap.json (if present), then applies
// CODESNAP_* environment overrides. Missing or malformed layers are
// skipped, never fatal.
func Load(fsys fs.FS) Settings {
	s := Settings{Output: DefaultOutput}

	var fileCfg Settings
	if err := util.ReadJSON(fsys, ConfigFile, &fileCfg); err == nil {
		if fileCfg.Output != "" {
			s.Output = fileCfg.Output
		}
		if fileCfg.Jobs > 0 {
			s.Jobs = fileCfg.Jobs
		}
		if fileCfg.Split > 0 {
			s.Split = fileCfg.Split
		}
	}

	if v := os.Getenv("CODESNAP_OUTPUT"); v != "" {
		s.Output = v
	}
	if n, err := strconv.Atoi(os.Getenv("CODESNAP_JOBS")); err == nil && n > 0 {
		s.Jobs = n
	}
	if n, err := strconv.Atoi(os.Getenv("CODESNAP_SPLIT")); err == nil && n > 0 {
		s.Split = n
	}

	return s
}

// IsDocExtension reports whether ext (lowercased, no dot) is document-like.
func IsDocExtension(ext string) bool {
	for _, e := range DocExtensions {
		if e == ext {
			return true
		}
	}
	return false
}
