package pathmatch

import (
	"io/fs"
	"os"
	"path/filepath"
)

// FileSystem is the directory enumeration capability a Matcher walks with.
// A fresh listing is requested for each directory visited; the Matcher
// never mutates the namespace and requires no ordering from ReadDir.
//
// [testing/fstest.MapFS] satisfies FileSystem, as does any fs.FS wrapped
// with [WrapFS].
type FileSystem interface {
	// ReadDir lists the entries of the named directory.
	ReadDir(name string) ([]fs.DirEntry, error)

	// Stat describes the named file or directory.
	Stat(name string) (fs.FileInfo, error)
}

// osFS is the default FileSystem, backed by the operating system. Unlike an
// fs.FS it accepts absolute paths, parent references, and (on Windows)
// drive letters.
type osFS struct{}

func (osFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(filepath.FromSlash(name))
}

func (osFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(filepath.FromSlash(name))
}

// WrapFS adapts an fs.FS into a FileSystem. Walks over a wrapped fs.FS are
// confined to it: absolute patterns and parent references above its root
// fail enumeration and so match nothing.
func WrapFS(fsys fs.FS) FileSystem { return wrapFS{fsys} }

type wrapFS struct{ fsys fs.FS }

func (w wrapFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return fs.ReadDir(w.fsys, name)
}

func (w wrapFS) Stat(name string) (fs.FileInfo, error) {
	return fs.Stat(w.fsys, name)
}
