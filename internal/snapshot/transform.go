package snapshot

import (
	"github.com/keshon/codesnap/internal/config"
)

// TransformConfig controls the per-file content pipeline.
type TransformConfig struct {
	StripComments   bool
	StripBlankLines bool
	MaxFileBytes    int64 // 0 = unlimited
	TreeOnly        bool  // path lines only, content never read
}

// Apply runs the content pipeline for one file: comment stripping first,
// blank-line compaction second. Pure and file-local, safe to run
// concurrently across files.
func Apply(content []byte, relPath string, cfg TransformConfig) []byte {
	if cfg.StripComments {
		content = StripComments(content, !config.IsDocExtension(extOf(relPath)))
	}
	if cfg.StripBlankLines {
		content = CompactBlankLines(content)
	}
	return content
}
