package fileutil

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
)

// ErrNotDirectory reports that a listed path exists but is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// FileEntry is a regular file found directly inside a directory.
type FileEntry struct {
	// Name is the base name as reported by the directory listing.
	Name string `json:"name"`
	// Path is the listed directory joined with Name.
	Path string `json:"path"`
}

// Lister enumerates regular files on an injected filesystem,
// so tests can run against an in-memory one.
type Lister struct {
	fs afero.Fs
}

func NewLister(fsys afero.Fs) *Lister {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &Lister{fs: fsys}
}

// ListRegularFiles returns the regular files directly contained in dir,
// sorted by name. Symlinks are resolved before the check, so a link to a
// regular file is included and a link to a directory is not. Entries whose
// metadata cannot be read are skipped.
func (l *Lister) ListRegularFiles(dir string) ([]FileEntry, error) {
	info, err := l.fs.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("files list in dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("files list in dir: %s: %w", dir, ErrNotDirectory)
	}

	dirList, err := afero.ReadDir(l.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("files list in dir: %w", err)
	}

	files := make([]FileEntry, 0, len(dirList))
	for _, item := range dirList {
		joined := filepath.Join(dir, item.Name())

		target, err := l.fs.Stat(joined)
		if err != nil || !target.Mode().IsRegular() {
			continue
		}
		files = append(files, FileEntry{Name: item.Name(), Path: joined})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})

	return files, nil
}

// ListRegularFiles lists dir on the OS filesystem.
func ListRegularFiles(dir string) ([]FileEntry, error) {
	return NewLister(afero.NewOsFs()).ListRegularFiles(dir)
}
