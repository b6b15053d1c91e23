package state

import (
	"path/filepath"

	fsutil "github.com/dunefm/dune/internal/fs"
)

// listDirectoryFn mirrors fs.List but is overridable in tests.
var listDirectoryFn = fsutil.List

// LoadDirectory lists path and installs it as the current directory,
// resetting cursor and scroll. The state is left untouched when the listing
// fails, so callers can recover by reporting the error and staying put.
func LoadDirectory(s *AppState, path string) error {
	dirPath := filepath.Clean(path)

	entries, err := listDirectoryFn(dirPath)
	if err != nil {
		return err
	}

	s.CurrentPath = dirPath
	s.Entries = visibleEntries(entries, s.ShowHidden)
	s.Cursor = 0
	s.ScrollOffset = 0
	return nil
}

func visibleEntries(entries []Entry, showHidden bool) []Entry {
	if showHidden {
		return entries
	}
	visible := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.IsHidden() {
			continue
		}
		visible = append(visible, e)
	}
	return visible
}
