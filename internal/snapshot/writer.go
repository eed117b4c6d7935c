package snapshot

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/keshon/codesnap/internal/fs"
	"github.com/keshon/codesnap/internal/progress"
	"github.com/keshon/codesnap/internal/util"
)

// ErrOutputExists signals that the resolved output path is already taken
// and force-overwrite was not requested. Zero bytes are written.
var ErrOutputExists = errors.New("output file already exists")

// Config describes one snapshot run.
type Config struct {
	Root           string
	Include        []string
	Exclude        []string
	Transform      TransformConfig
	Split          int // files per artifact, 0 = single artifact
	Output         string
	Force          bool
	UseGit         bool
	DefaultIgnores bool
	Jobs           int // transform workers, 0 = NumCPU
}

// Entry is one accepted file inside an artifact. Content stays nil in
// tree-only mode.
type Entry struct {
	Path    string
	Content []byte
}

// Writer orchestrates discovery, filtering, transformation and
// serialization. The classifier and lister are injectable for tests.
type Writer struct {
	FS     fs.FS
	IsText func(fullPath string) bool
	List   func(fsys fs.FS, root string, useGit, defaultIgnores bool) ([]string, error)
}

func NewWriter(fsys fs.FS) *Writer {
	cls := NewClassifier()
	return &Writer{
		FS:     fsys,
		IsText: cls.IsText,
		List:   ListCandidates,
	}
}

// Write produces one or more snapshot artifacts and returns the run
// metrics. Candidates are processed in sorted order; that ordering is a
// contract of the split sequence, so transformation may parallelize but
// serialization never does.
func (w *Writer) Write(cfg Config) (*Metrics, error) {
	if cfg.Output == "" {
		return nil, fmt.Errorf("output path required")
	}
	if len(cfg.Include) == 0 {
		return nil, fmt.Errorf("at least one include pattern required")
	}
	if !w.FS.IsDir(cfg.Root) {
		return nil, fmt.Errorf("root %q is not a directory", cfg.Root)
	}
	if w.FS.Exists(cfg.Output) && !cfg.Force {
		return nil, fmt.Errorf("%w: %s", ErrOutputExists, cfg.Output)
	}

	candidates, err := w.List(w.FS, cfg.Root, cfg.UseGit, cfg.DefaultIgnores)
	if err != nil {
		return nil, fmt.Errorf("enumerate candidates: %w", err)
	}

	accepted, metrics := w.filter(cfg, candidates)

	entries, err := w.loadEntries(cfg, accepted)
	if err != nil {
		return nil, err
	}

	if err := w.writeArtifacts(cfg, entries, metrics); err != nil {
		return nil, err
	}
	return metrics, nil
}

// Filter applies include, exclude, binary and size checks without writing
// anything. Used by the dry-run command.
func (w *Writer) Filter(cfg Config) ([]string, *Metrics, error) {
	if len(cfg.Include) == 0 {
		return nil, nil, fmt.Errorf("at least one include pattern required")
	}
	if !w.FS.IsDir(cfg.Root) {
		return nil, nil, fmt.Errorf("root %q is not a directory", cfg.Root)
	}
	candidates, err := w.List(w.FS, cfg.Root, cfg.UseGit, cfg.DefaultIgnores)
	if err != nil {
		return nil, nil, fmt.Errorf("enumerate candidates: %w", err)
	}
	accepted, metrics := w.filter(cfg, candidates)
	return accepted, metrics, nil
}

func (w *Writer) filter(cfg Config, candidates []string) ([]string, *Metrics) {
	matcher := NewMatcher(w.FS, cfg.Root)
	metrics := NewMetrics()

	var accepted []string
	for _, rel := range candidates {
		if !matcher.MatchesAny(cfg.Include, rel) {
			metrics.Skip(SkipNoMatch)
			continue
		}
		// Exclude is only consulted after an include hit, and always wins.
		if matcher.MatchesAny(cfg.Exclude, rel) {
			metrics.Skip(SkipExcluded)
			continue
		}
		full := filepath.Join(cfg.Root, filepath.FromSlash(rel))
		if !cfg.Transform.TreeOnly && !w.IsText(full) {
			metrics.Skip(SkipBinary)
			continue
		}
		if cfg.Transform.MaxFileBytes > 0 {
			if fi, err := w.FS.Stat(full); err == nil && fi.Size() > cfg.Transform.MaxFileBytes {
				metrics.Skip(SkipSize)
				continue
			}
		}
		metrics.Accept(rel)
		accepted = append(accepted, rel)
	}
	return accepted, metrics
}

// loadEntries reads and transforms accepted files. Reads and transforms run
// on a bounded worker pool; results land in their original slots so the
// sorted order survives.
func (w *Writer) loadEntries(cfg Config, accepted []string) ([]Entry, error) {
	entries := make([]Entry, len(accepted))
	for i, rel := range accepted {
		entries[i].Path = rel
	}
	if cfg.Transform.TreeOnly || len(accepted) == 0 {
		return entries, nil
	}

	jobs := cfg.Jobs
	if jobs <= 0 {
		jobs = util.WorkerCount()
	}

	bar := progress.NewProgress(len(accepted), "Packing files ")
	defer bar.Finish()

	idx := make([]int, len(accepted))
	for i := range idx {
		idx[i] = i
	}
	err := util.Parallel(idx, jobs, func(i int) error {
		rel := accepted[i]
		data, err := w.FS.ReadFile(filepath.Join(cfg.Root, filepath.FromSlash(rel)))
		if err != nil {
			return fmt.Errorf("read %q: %w", rel, err)
		}
		entries[i].Content = Apply(data, rel, cfg.Transform)
		bar.Increment()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// writeArtifacts serializes entries into the split sequence. A split
// boundary always starts a fresh artifact; no artifact holds a partial
// trailing group.
func (w *Writer) writeArtifacts(cfg Config, entries []Entry, m *Metrics) error {
	chunks := chunkEntries(entries, cfg.Split)
	if len(chunks) == 0 {
		if cfg.Split > 0 {
			return nil
		}
		// Non-split runs still produce the (empty) base artifact.
		chunks = [][]Entry{nil}
	}

	for i, chunk := range chunks {
		name := splitName(cfg.Output, i+1)
		var buf bytes.Buffer
		for _, e := range chunk {
			appendEntry(&buf, e, cfg.Transform.TreeOnly)
		}
		if err := w.FS.WriteFile(name, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write artifact %q: %w", name, err)
		}
		m.Artifacts++
		m.BytesWritten += int64(buf.Len())
	}
	return nil
}

// appendEntry emits one entry: path line, fenced content, blank separator.
// Tree-only mode emits the bare path line.
func appendEntry(buf *bytes.Buffer, e Entry, treeOnly bool) {
	buf.WriteString(e.Path)
	buf.WriteByte('\n')
	if treeOnly {
		return
	}
	buf.WriteString("```")
	buf.WriteString(FenceTag(e.Path))
	buf.WriteByte('\n')
	buf.Write(e.Content)
	if n := len(e.Content); n > 0 && e.Content[n-1] != '\n' {
		buf.WriteByte('\n')
	}
	buf.WriteString("```\n\n")
}

// splitName numbers artifacts past the first: snapshot.txt -> snapshot-2.txt,
// extensionless snapshot -> snapshot-2.
func splitName(base string, idx int) string {
	if idx <= 1 {
		return base
	}
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + "-" + strconv.Itoa(idx) + ext
}

func chunkEntries(entries []Entry, split int) [][]Entry {
	if len(entries) == 0 {
		return nil
	}
	if split <= 0 {
		return [][]Entry{entries}
	}
	var chunks [][]Entry
	for start := 0; start < len(entries); start += split {
		end := min(start+split, len(entries))
		chunks = append(chunks, entries[start:end])
	}
	return chunks
}
