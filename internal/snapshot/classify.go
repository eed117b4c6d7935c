package snapshot

import (
	"os/exec"
	"strings"
)

// Hooks used for testing (overridable)
var (
	lookFileTool = func() (string, error) { return exec.LookPath("file") }
	sniffMime    = func(tool, path string) (string, error) {
		out, err := exec.Command(tool, "-b", "--mime-type", path).Output()
		return strings.TrimSpace(string(out)), err
	}
)

// Classifier decides whether a candidate file is text. It shells out to the
// file(1) utility; when the utility is missing or fails, it fails open and
// reports text, so a snapshot is never blocked on absent tooling.
type Classifier struct {
	tool string
}

func NewClassifier() *Classifier {
	tool, err := lookFileTool()
	if err != nil {
		return &Classifier{}
	}
	return &Classifier{tool: tool}
}

// IsText reports whether path looks like a text file. A MIME type starting
// with "text/" or carrying a charset counts as text. This is a heuristic:
// a binary slipping through surfaces later as garbled snapshot content,
// never as a failure here.
func (c *Classifier) IsText(path string) bool {
	if c.tool == "" {
		return true
	}
	mime, err := sniffMime(c.tool, path)
	if err != nil {
		return true
	}
	return strings.HasPrefix(mime, "text/") || strings.Contains(mime, "charset")
}
