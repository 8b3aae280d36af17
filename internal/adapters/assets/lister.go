// Package assets exposes the bundled media directory to the catalog layer.
package assets

import (
	"io/fs"
	"os"
)

// DirLister lists file names inside a directory of an fs.FS. Directories are
// skipped; the catalog only cares about files it can render.
type DirLister struct {
	fsys fs.FS
}

func NewFS(fsys fs.FS) *DirLister { return &DirLister{fsys: fsys} }

// NewDir roots the lister at an on-disk assets directory.
func NewDir(root string) *DirLister { return &DirLister{fsys: os.DirFS(root)} }

func (l *DirLister) List(dir string) ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}
