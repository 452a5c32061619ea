package rename

import (
	"io/fs"
	"os"
	"path/filepath"
)

type (
	// FS is the file system capability used by [Enumerate] and [Applier].
	// All names are relative to a single directory.
	FS interface {
		ReadDir() ([]fs.DirEntry, error)
		Stat(name string) (fs.FileInfo, error)
		Lstat(name string) (fs.FileInfo, error)
		Rename(oldName, newName string) error
	}

	// OSFS implements [FS] on a directory of the host file system.
	OSFS struct {
		Dir string
	}
)

func (o OSFS) path(name string) string {
	return filepath.Join(o.Dir, name)
}

func (o OSFS) ReadDir() ([]fs.DirEntry, error) {
	return os.ReadDir(o.Dir)
}

func (o OSFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(o.path(name))
}

func (o OSFS) Lstat(name string) (fs.FileInfo, error) {
	return os.Lstat(o.path(name))
}

func (o OSFS) Rename(oldName, newName string) error {
	return os.Rename(o.path(oldName), o.path(newName))
}
