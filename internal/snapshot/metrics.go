package snapshot

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/keshon/codesnap/internal/util"
)

// Skip reasons accounted in Metrics. Skips are bookkeeping, not errors.
const (
	SkipNoMatch  = "no_match"
	SkipExcluded = "excluded"
	SkipBinary   = "binary"
	SkipSize     = "size"
)

// Metrics is the result of one snapshot run: what was accepted, what was
// skipped and why. It is plain mutable state threaded through the filter
// loop and returned by value, never package-level.
type Metrics struct {
	Accepted     int            `json:"accepted"`
	ByExtension  map[string]int `json:"by_extension"`
	Skipped      map[string]int `json:"skipped"`
	Artifacts    int            `json:"artifacts"`
	BytesWritten int64          `json:"bytes_written"`
}

func NewMetrics() *Metrics {
	return &Metrics{
		ByExtension: make(map[string]int),
		Skipped:     make(map[string]int),
	}
}

func (m *Metrics) Accept(path string) {
	m.Accepted++
	ext := extOf(path)
	if ext == "" {
		ext = "(none)"
	}
	m.ByExtension[ext]++
}

func (m *Metrics) Skip(reason string) {
	m.Skipped[reason]++
}

// Report renders the human-readable run summary.
func (m *Metrics) Report() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Selected %d files\n", m.Accepted)
	if m.Artifacts > 0 {
		fmt.Fprintf(&b, "Wrote %d artifact(s), %s\n",
			m.Artifacts, humanize.Bytes(uint64(m.BytesWritten)))
	}

	if len(m.ByExtension) > 0 {
		b.WriteString("\nBy extension:\n")
		for _, ext := range util.SortedKeys(m.ByExtension) {
			fmt.Fprintf(&b, "  %-10s %d\n", ext, m.ByExtension[ext])
		}
	}

	if len(m.Skipped) > 0 {
		b.WriteString("\nSkipped:\n")
		for _, reason := range util.SortedKeys(m.Skipped) {
			fmt.Fprintf(&b, "  %-10s %d\n", reason, m.Skipped[reason])
		}
	}

	return b.String()
}
