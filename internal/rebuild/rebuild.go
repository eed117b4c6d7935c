package rebuild

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/zeebo/xxh3"

	"github.com/keshon/codesnap/internal/fs"
)

// Stats are the totals of one rebuild run. The run is best-effort: it
// always reaches end of input and reports what happened.
type Stats struct {
	Created       int `json:"created"`
	Overwritten   int `json:"overwritten"`
	SkippedExists int `json:"skipped_exists"`
	Unchanged     int `json:"unchanged"` // subset of SkippedExists
	ParseErrors   int `json:"parse_errors"`
	WriteErrors   int `json:"write_errors"`
}

// Options tune a Rebuilder.
type Options struct {
	Force   bool      // overwrite existing targets
	DiffOut io.Writer // when set, print a unified diff for skipped targets that differ
	WarnOut io.Writer // defaults to stderr
}

// Rebuilder materializes parsed snapshot entries under a build root.
type Rebuilder struct {
	fsys  fs.FS
	root  string
	opts  Options
	stats Stats
}

func NewRebuilder(fsys fs.FS, root string, opts Options) *Rebuilder {
	if opts.WarnOut == nil {
		opts.WarnOut = os.Stderr
	}
	return &Rebuilder{fsys: fsys, root: root, opts: opts}
}

// materialize writes one parsed entry. Filesystem trouble on a single
// target is warned about and counted; it never aborts the stream.
func (rb *Rebuilder) materialize(relPath string, content []byte) {
	target := filepath.Join(rb.root, filepath.FromSlash(relPath))

	if rb.fsys.Exists(target) && !rb.opts.Force {
		rb.stats.SkippedExists++
		rb.compareExisting(target, content)
		return
	}

	existed := rb.fsys.Exists(target)

	if err := rb.fsys.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		fmt.Fprintf(rb.opts.WarnOut, "Warning: mkdir for %s: %v\n", relPath, err)
		rb.stats.WriteErrors++
		return
	}
	if err := rb.fsys.WriteFile(target, content, 0o644); err != nil {
		fmt.Fprintf(rb.opts.WarnOut, "Warning: write %s: %v\n", relPath, err)
		rb.stats.WriteErrors++
		return
	}

	if existed {
		rb.stats.Overwritten++
	} else {
		rb.stats.Created++
	}
}

// compareExisting classifies a skipped target as unchanged or differing,
// and renders a unified diff when one was requested.
func (rb *Rebuilder) compareExisting(target string, content []byte) {
	existing, err := rb.fsys.ReadFile(target)
	if err != nil {
		return
	}
	if xxh3.Hash(existing) == xxh3.Hash(content) {
		rb.stats.Unchanged++
		return
	}
	if rb.opts.DiffOut == nil {
		return
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(existing)),
		B:        difflib.SplitLines(string(content)),
		FromFile: target,
		ToFile:   target + " (snapshot)",
		Context:  3,
	})
	if err != nil {
		return
	}
	fmt.Fprint(rb.opts.DiffOut, diff)
}

// Report renders the human-readable rebuild summary.
func (s Stats) Report() string {
	out := fmt.Sprintf("Rebuilt %d files (%d created, %d overwritten), %d skipped (exists)",
		s.Created+s.Overwritten, s.Created, s.Overwritten, s.SkippedExists)
	if s.Unchanged > 0 {
		out += fmt.Sprintf(", %d of them unchanged", s.Unchanged)
	}
	if s.ParseErrors > 0 {
		out += fmt.Sprintf(", %d parse errors", s.ParseErrors)
	}
	if s.WriteErrors > 0 {
		out += fmt.Sprintf(", %d write errors", s.WriteErrors)
	}
	return out
}
