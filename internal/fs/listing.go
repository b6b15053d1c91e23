package fs

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"golang.org/x/text/unicode/norm"
)

// Listing failures are reduced to three causes the UI can explain.
var (
	ErrNotFound         = errors.New("directory not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotADirectory    = errors.New("not a directory")
)

// List reads the entries of path, sorted directories-first and then
// case-insensitive by name. The ordering is stable so a cursor position
// stays meaningful across repeated listings of an unchanged directory.
// Every call re-reads from the OS; nothing is cached.
func List(path string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, classifyListError(path, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, e := range dirEntries {
		info, err := e.Info()
		if err != nil {
			// Entry vanished between ReadDir and Info; skip it.
			continue
		}

		rawName := e.Name()
		entries = append(entries, Entry{
			Name:     norm.NFC.String(rawName),
			FullPath: filepath.Join(path, rawName),
			Kind:     kindOf(info.Mode()),
			Size:     info.Size(),
			Modified: info.ModTime(),
			Mode:     info.Mode(),
		})
	}

	sortEntries(entries)
	return entries, nil
}

// kindOf maps a file mode to a Kind. The symlink bit is checked first so a
// link is classified by itself, never by what it points at.
func kindOf(mode os.FileMode) Kind {
	switch {
	case mode&os.ModeSymlink != 0:
		return KindSymlink
	case mode.IsDir():
		return KindDirectory
	case mode.IsRegular():
		return KindFile
	default:
		return KindOther
	}
}

func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if (entries[i].Kind == KindDirectory) != (entries[j].Kind == KindDirectory) {
			return entries[i].Kind == KindDirectory
		}
		li, lj := strings.ToLower(entries[i].Name), strings.ToLower(entries[j].Name)
		if li != lj {
			return li < lj
		}
		return entries[i].Name < entries[j].Name
	})
}

func classifyListError(path string, err error) error {
	switch {
	case errors.Is(err, iofs.ErrNotExist):
		return fmt.Errorf("%s: %w", path, ErrNotFound)
	case errors.Is(err, iofs.ErrPermission):
		return fmt.Errorf("%s: %w", path, ErrPermissionDenied)
	case errors.Is(err, syscall.ENOTDIR):
		return fmt.Errorf("%s: %w", path, ErrNotADirectory)
	default:
		return fmt.Errorf("cannot read directory %s: %w", path, err)
	}
}
