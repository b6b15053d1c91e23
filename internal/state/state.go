package state

import (
	fsutil "github.com/dunefm/dune/internal/fs"
)

// Entry mirrors fs.Entry so UI/state code can rely on a stable type.
type Entry = fsutil.Entry

// Mode selects which key map is active. Exactly one mode is active at any
// time; mode-specific key handling cannot leak between them.
type Mode int

const (
	// ModeNavigation accepts movement and selection keys.
	ModeNavigation Mode = iota
	// ModePrompt accepts free text for a pending command line.
	ModePrompt
)

func (m Mode) String() string {
	switch m {
	case ModeNavigation:
		return "navigation"
	case ModePrompt:
		return "command"
	default:
		return "unknown"
	}
}

// StatusKind styles the state panel.
type StatusKind int

const (
	StatusOK StatusKind = iota
	StatusInfo
	StatusError
)

// Status is the outcome of the most recent operation. It is overwritten by
// every operation, never accumulated.
type Status struct {
	Kind StatusKind
	Text string
}

// AppState is the single source of truth. It is owned by the application
// loop and mutated exclusively through the Reducer; the renderer and the
// exit handshake only ever read it.
type AppState struct {
	// Navigation & filesystem
	CurrentPath string  // always an existing, readable directory when set
	Entries     []Entry // listing of CurrentPath at last refresh

	// Selection & viewport
	Cursor       int // index into Entries; 0 when Entries is empty
	ScrollOffset int // Cursor always lies in [ScrollOffset, ScrollOffset+viewport)

	// Input mode
	Mode         Mode
	PromptBuffer string // accumulated text while in ModePrompt

	Status Status

	// Hidden files
	ShowHidden bool

	// Dimensions
	ScreenWidth  int
	ScreenHeight int
}

// CurrentEntry returns the entry under the cursor, or nil when the listing
// is empty.
func (s *AppState) CurrentEntry() *Entry {
	if s.Cursor < 0 || s.Cursor >= len(s.Entries) {
		return nil
	}
	return &s.Entries[s.Cursor]
}

func (s *AppState) setStatusError(text string) {
	s.Status = Status{Kind: StatusError, Text: text}
}

func (s *AppState) setStatusInfo(text string) {
	s.Status = Status{Kind: StatusInfo, Text: text}
}

func (s *AppState) clearStatus() {
	s.Status = Status{}
}
