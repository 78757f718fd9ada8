package scanner

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/frherrer/atomic-builder/internal/domain"
)

// Scanner discovers atomic test files under a directory.
type Scanner interface {
	Scan(rootDir string, patterns []string, excludes []string) ([]string, error)
}

// FileScanner implements Scanner on top of an fs.FS walk.
type FileScanner struct {
	Recursive bool
	// open maps a root directory to a file system; os.DirFS by default.
	open func(root string) fs.FS
}

// NewScanner creates a FileScanner over the host file system.
func NewScanner(recursive bool) *FileScanner {
	return &FileScanner{Recursive: recursive, open: os.DirFS}
}

// NewFSScanner creates a FileScanner reading from fsys. Root directories
// passed to Scan are resolved inside fsys.
func NewFSScanner(fsys fs.FS, recursive bool) *FileScanner {
	return &FileScanner{
		Recursive: recursive,
		open: func(root string) fs.FS {
			sub, err := fs.Sub(fsys, path.Clean(filepath.ToSlash(root)))
			if err != nil {
				return fsys
			}
			return sub
		},
	}
}

// Scan walks rootDir and returns sorted paths (joined onto rootDir) of files
// matching any include pattern and no exclude pattern. Patterns are matched
// against the slash-separated path relative to rootDir; "**" spans
// directories.
func (s *FileScanner) Scan(rootDir string, patterns []string, excludes []string) ([]string, error) {
	var files []string
	fsys := s.open(rootDir)

	err := fs.WalkDir(fsys, ".", func(rel string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if rel == "." {
				return nil
			}
			if !s.Recursive || matchAny(rel, excludes) {
				return fs.SkipDir
			}
			return nil
		}

		if matchAny(rel, excludes) || !matchAny(rel, patterns) {
			return nil
		}
		files = append(files, filepath.Join(rootDir, filepath.FromSlash(rel)))
		return nil
	})
	if err != nil {
		return nil, domain.NewError("scan", rootDir, 0, "failed to scan directory", err)
	}

	sort.Strings(files)
	return files, nil
}

func matchAny(rel string, patterns []string) bool {
	for _, p := range patterns {
		if matchGlob(rel, p) {
			return true
		}
	}
	return false
}

// matchGlob matches a slash-separated path against a glob pattern. A
// pattern without a slash also matches the base name alone.
func matchGlob(rel, pattern string) bool {
	if strings.Contains(pattern, "**") {
		parts := strings.SplitN(pattern, "**", 2)
		prefix := strings.TrimSuffix(parts[0], "/")
		suffix := strings.TrimPrefix(parts[1], "/")

		if prefix != "" {
			if rel != prefix && !strings.HasPrefix(rel, prefix+"/") {
				return false
			}
			rel = strings.TrimPrefix(strings.TrimPrefix(rel, prefix), "/")
		}
		if suffix == "" {
			return true
		}

		segments := strings.Split(rel, "/")
		for i := range segments {
			if ok, _ := path.Match(suffix, strings.Join(segments[i:], "/")); ok {
				return true
			}
		}
		return false
	}

	if !strings.Contains(pattern, "/") {
		if ok, _ := path.Match(pattern, path.Base(rel)); ok {
			return true
		}
	}
	ok, _ := path.Match(pattern, rel)
	return ok
}
