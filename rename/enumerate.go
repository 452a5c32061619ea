package rename

import (
	"errors"
	"fmt"
)

type (
	Kind byte

	Entry struct {
		Name string
		Kind Kind
	}
)

const (
	KindOther Kind = iota
	KindFile
	KindDir
)

var ErrReadDir = errors.New("failed to read directory")

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "directory"
	default:
		return "other"
	}
}

// Enumerate lists the entries of the directory behind fsys in the order it returns them.
// Symlinks are followed, so a link to a regular file is a file and a dangling link is [KindOther].
//
// Non-nil returned error wraps [ErrReadDir].
func Enumerate(fsys FS) ([]Entry, error) {
	items, err := fsys.ReadDir()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrReadDir, err.Error())
	}

	entries := make([]Entry, 0, len(items))

	for _, item := range items {
		entry := Entry{Name: item.Name()}

		info, err := fsys.Stat(item.Name())
		switch {
		case err != nil:
			entry.Kind = KindOther
		case info.IsDir():
			entry.Kind = KindDir
		case info.Mode().IsRegular():
			entry.Kind = KindFile
		default:
			entry.Kind = KindOther
		}

		entries = append(entries, entry)
	}

	return entries, nil
}
