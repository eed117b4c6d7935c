package snapshot

import (
	"os/exec"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/keshon/codesnap/internal/config"
	"github.com/keshon/codesnap/internal/fs"
)

// Hooks used for testing (overridable)
var gitListFiles = func(root string) ([]string, error) {
	out, err := exec.Command("git", "-C", root,
		"ls-files", "--cached", "--others", "--exclude-standard").Output()
	if err != nil {
		return nil, err
	}
	return strings.Split(string(out), "\n"), nil
}

// ListCandidates enumerates project-relative candidate paths under root.
// When useGit is set it prefers git's view (tracked plus untracked files,
// ignore rules honored) and falls back to a filesystem walk when git is
// unavailable or root is not a repository. The result is de-duplicated and
// sorted for deterministic artifact ordering.
func ListCandidates(fsys fs.FS, root string, useGit, defaultIgnores bool) ([]string, error) {
	if useGit {
		if listed, err := gitListFiles(root); err == nil {
			return normalizeCandidates(fsys, root, listed), nil
		}
	}
	return walkCandidates(fsys, root, defaultIgnores)
}

// normalizeCandidates cleans git output: slash-separated, existing regular
// files only (git still lists files deleted from the working tree),
// de-duplicated, sorted.
func normalizeCandidates(fsys fs.FS, root string, listed []string) []string {
	seen := make(map[string]struct{}, len(listed))
	var out []string
	for _, p := range listed {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		p = path.Clean(filepath.ToSlash(p))
		if _, dup := seen[p]; dup {
			continue
		}
		full := filepath.Join(root, filepath.FromSlash(p))
		if !fsys.Exists(full) || fsys.IsDir(full) {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// walkCandidates recursively lists regular files under root, pruning the
// default-ignore directory names unless disabled.
func walkCandidates(fsys fs.FS, root string, defaultIgnores bool) ([]string, error) {
	ignored := make(map[string]struct{})
	if defaultIgnores {
		for _, d := range config.DefaultIgnoredDirs {
			ignored[d] = struct{}{}
		}
	}

	var out []string
	var walk func(dir, rel string) error
	walk = func(dir, rel string) error {
		entries, err := fsys.ReadDir(dir)
		if err != nil {
			return err
		}
		for _, e := range entries {
			name := e.Name()
			childRel := name
			if rel != "" {
				childRel = rel + "/" + name
			}
			if e.IsDir() {
				if _, skip := ignored[name]; skip {
					continue
				}
				if err := walk(filepath.Join(dir, name), childRel); err != nil {
					return err
				}
				continue
			}
			out = append(out, childRel)
		}
		return nil
	}

	if err := walk(root, ""); err != nil {
		return nil, err
	}
	sort.Strings(out)
	return out, nil
}
