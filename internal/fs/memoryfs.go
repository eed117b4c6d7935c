package fs

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// MemoryFS is a pure in-memory filesystem used by tests.
type MemoryFS struct {
	files map[string][]byte
	dirs  map[string]struct{}
}

func NewMemoryFS() *MemoryFS {
	f := &MemoryFS{
		files: make(map[string][]byte),
		dirs:  make(map[string]struct{}),
	}
	f.dirs["/"] = struct{}{}
	f.dirs["."] = struct{}{}
	return f
}

// normalize paths
func clean(p string) string {
	if p == "" {
		return "."
	}
	return filepath.ToSlash(filepath.Clean(p))
}

func (f *MemoryFS) hasDir(p string) bool {
	_, ok := f.dirs[clean(p)]
	return ok
}

func (f *MemoryFS) Open(p string) (io.ReadSeekCloser, error) {
	data, ok := f.files[clean(p)]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return &memReadSeekCloser{Reader: bytes.NewReader(data)}, nil
}

type memReadSeekCloser struct {
	*bytes.Reader
}

func (m *memReadSeekCloser) Close() error { return nil }

func (f *MemoryFS) ReadFile(p string) ([]byte, error) {
	data, ok := f.files[clean(p)]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return append([]byte(nil), data...), nil
}

func (f *MemoryFS) WriteFile(p string, data []byte, perm os.FileMode) error {
	p = clean(p)
	if !f.hasDir(path.Dir(p)) {
		return fs.ErrNotExist
	}
	f.files[p] = append([]byte(nil), data...)
	return nil
}

func (f *MemoryFS) MkdirAll(p string, perm os.FileMode) error {
	cur := ""
	for _, seg := range strings.Split(clean(p), "/") {
		if seg == "" || seg == "." {
			continue
		}
		cur = path.Join(cur, seg)
		f.dirs[cur] = struct{}{}
	}
	return nil
}

func (f *MemoryFS) Remove(p string) error {
	p = clean(p)
	if _, ok := f.files[p]; ok {
		delete(f.files, p)
		return nil
	}
	if _, ok := f.dirs[p]; ok {
		delete(f.dirs, p)
		return nil
	}
	return fs.ErrNotExist
}

func (f *MemoryFS) Rename(oldp, newp string) error {
	oldp, newp = clean(oldp), clean(newp)
	if data, ok := f.files[oldp]; ok {
		if !f.hasDir(path.Dir(newp)) {
			return fs.ErrNotExist
		}
		delete(f.files, oldp)
		f.files[newp] = data
		return nil
	}
	if _, ok := f.dirs[oldp]; ok {
		delete(f.dirs, oldp)
		f.dirs[newp] = struct{}{}
		return nil
	}
	return fs.ErrNotExist
}

func (f *MemoryFS) Stat(p string) (os.FileInfo, error) {
	p = clean(p)
	if data, ok := f.files[p]; ok {
		return &memInfo{name: path.Base(p), size: int64(len(data))}, nil
	}
	if _, ok := f.dirs[p]; ok {
		return &memInfo{name: path.Base(p), dir: true}, nil
	}
	return nil, fs.ErrNotExist
}

// ReadDir lists immediate children, directories first, each group sorted,
// so walks over a MemoryFS are deterministic.
func (f *MemoryFS) ReadDir(p string) ([]os.DirEntry, error) {
	p = clean(p)
	if !f.hasDir(p) {
		return nil, fs.ErrNotExist
	}

	prefix := p
	if prefix != "/" && prefix != "." {
		prefix += "/"
	}

	child := func(full string) (string, bool) {
		if p != "." && !strings.HasPrefix(full, prefix) {
			return "", false
		}
		rest := full
		if p != "." {
			rest = strings.TrimPrefix(full, prefix)
		}
		name := strings.Split(rest, "/")[0]
		return name, name != "" && name != "." && name != "/"
	}

	seen := map[string]bool{}
	var dirNames, fileNames []string
	for dp := range f.dirs {
		if name, ok := child(dp); ok && !seen[name] {
			seen[name] = true
			dirNames = append(dirNames, name)
		}
	}
	for fp := range f.files {
		if name, ok := child(fp); ok && !seen[name] {
			seen[name] = true
			fileNames = append(fileNames, name)
		}
	}
	sort.Strings(dirNames)
	sort.Strings(fileNames)

	out := make([]os.DirEntry, 0, len(dirNames)+len(fileNames))
	for _, name := range dirNames {
		out = append(out, memDirEntry{name: name, isDir: true})
	}
	for _, name := range fileNames {
		out = append(out, memDirEntry{name: name})
	}
	return out, nil
}

func (f *MemoryFS) CreateTempFile(dir, pattern string) (io.WriteCloser, string, error) {
	if !f.hasDir(dir) {
		return nil, "", fs.ErrNotExist
	}
	tmpName := path.Join(clean(dir), pattern+"-tmp")
	buf := &bytes.Buffer{}
	wc := &memWriteCloser{
		buf: buf,
		onClose: func() {
			f.files[clean(tmpName)] = buf.Bytes()
		},
	}
	return wc, tmpName, nil
}

type memWriteCloser struct {
	buf     *bytes.Buffer
	onClose func()
}

func (m *memWriteCloser) Write(p []byte) (int, error) { return m.buf.Write(p) }
func (m *memWriteCloser) Close() error {
	if m.onClose != nil {
		m.onClose()
	}
	return nil
}

func (f *MemoryFS) IsDir(p string) bool { return f.hasDir(p) }
func (f *MemoryFS) Exists(p string) bool {
	p = clean(p)
	_, isFile := f.files[p]
	return isFile || f.hasDir(p)
}

type memInfo struct {
	name string
	size int64
	dir  bool
}

func (f *memInfo) Name() string       { return f.name }
func (f *memInfo) Size() int64        { return f.size }
func (f *memInfo) Mode() fs.FileMode  { return 0o644 }
func (f *memInfo) ModTime() time.Time { return time.Time{} }
func (f *memInfo) IsDir() bool        { return f.dir }
func (f *memInfo) Sys() interface{}   { return nil }

type memDirEntry struct {
	name  string
	isDir bool
}

func (d memDirEntry) Name() string               { return d.name }
func (d memDirEntry) IsDir() bool                { return d.isDir }
func (d memDirEntry) Type() fs.FileMode          { return 0 }
func (d memDirEntry) Info() (os.FileInfo, error) { return &memInfo{name: d.name, dir: d.isDir}, nil }
