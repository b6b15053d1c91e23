package fs

import (
	"os"
	"time"
)

// Kind classifies an entry by its own lstat type. Symlinks keep their own
// kind rather than their target's, so resolution can never cycle.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
	KindSymlink
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	case KindSymlink:
		return "symlink"
	case KindOther:
		return "other"
	default:
		return "unknown"
	}
}

// Entry represents a single file or directory on disk.
type Entry struct {
	Name     string
	FullPath string
	Kind     Kind
	Size     int64
	Modified time.Time
	Mode     os.FileMode
}

// IsDir reports whether the entry itself is a directory.
func (e Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

// IsHidden reports whether the entry should be treated as hidden.
func (e Entry) IsHidden() bool {
	return IsHidden(e.FullPath, e.Name)
}
