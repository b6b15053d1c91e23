package state

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	fsutil "github.com/dunefm/dune/internal/fs"
)

// CommandRunner interprets a confirmed prompt line. It receives the raw
// text and the directory it was typed in, and returns a one-line summary
// for the state panel.
type CommandRunner interface {
	Run(line string, dir string) (string, error)
}

// Reducer applies actions to state. Filesystem failures during navigation
// are recovered locally: they set the status message and leave the rest of
// the state untouched, so the user can retry or navigate elsewhere.
type Reducer struct {
	runner CommandRunner
}

// NewReducer creates a new reducer. runner may be nil, in which case prompt
// confirmation reports that no interpreter is configured.
func NewReducer(runner CommandRunner) *Reducer {
	return &Reducer{runner: runner}
}

// Reduce applies an action to state. The returned error reports internal
// faults only; expected filesystem failures never surface here.
func (r *Reducer) Reduce(s *AppState, action Action) error {
	defer func() {
		s.clampCursor()
		s.updateScrollVisibility()
	}()

	switch a := action.(type) {

	// ===== NAVIGATION =====

	case CursorUpAction:
		s.Cursor--

	case CursorDownAction:
		s.Cursor++

	case PageUpAction:
		s.Cursor -= pageStep(s)

	case PageDownAction:
		s.Cursor += pageStep(s)

	case CursorHomeAction:
		s.Cursor = 0

	case CursorEndAction:
		s.Cursor = len(s.Entries) - 1

	case EnterEntryAction:
		r.enterEntry(s)

	case GoToParentAction:
		r.goToParent(s)

	case RefreshAction:
		r.reloadPreservingSelection(s)

	case ToggleHiddenAction:
		s.ShowHidden = !s.ShowHidden
		r.reloadPreservingSelection(s)

	// ===== PROMPT =====

	case PromptStartAction:
		if s.Mode == ModeNavigation {
			s.Mode = ModePrompt
			s.PromptBuffer = ""
			s.setStatusInfo("command:")
		}

	case PromptCharAction:
		if s.Mode == ModePrompt {
			s.PromptBuffer += string(a.Char)
		}

	case PromptBackspaceAction:
		if s.Mode == ModePrompt && len(s.PromptBuffer) > 0 {
			runes := []rune(s.PromptBuffer)
			s.PromptBuffer = string(runes[:len(runes)-1])
		}

	case PromptCancelAction:
		if s.Mode == ModePrompt {
			s.Mode = ModeNavigation
			s.PromptBuffer = ""
			s.clearStatus()
		}

	case PromptConfirmAction:
		r.confirmPrompt(s)

	// ===== VIEW =====

	case ResizeAction:
		s.ScreenWidth = a.Width
		s.ScreenHeight = a.Height
	}

	return nil
}

func pageStep(s *AppState) int {
	step := s.VisibleLines()
	if step < 1 {
		step = 1
	}
	return step
}

// enterEntry descends into the selected directory. Non-directory kinds are
// deliberately left alone here: opening files belongs to the application's
// Opener collaborator, which intercepts the action before it reaches the
// reducer.
func (r *Reducer) enterEntry(s *AppState) {
	entry := s.CurrentEntry()
	if entry == nil {
		return
	}

	switch entry.Kind {
	case fsutil.KindDirectory:
		entries, err := listDirectoryFn(entry.FullPath)
		if err != nil {
			s.setStatusError(navErrorText("enter", entry.Name, err))
			return
		}
		s.CurrentPath = filepath.Clean(entry.FullPath)
		s.Entries = visibleEntries(entries, s.ShowHidden)
		s.Cursor = 0
		s.ScrollOffset = 0
		s.clearStatus()
	case fsutil.KindFile, fsutil.KindSymlink, fsutil.KindOther:
		// Delegated to the Opener collaborator.
	}
}

// goToParent ascends one level. At the filesystem root this is a no-op.
// On success the cursor lands on the directory just exited, so navigating
// up and back down is visually stable.
func (r *Reducer) goToParent(s *AppState) {
	current := s.CurrentPath
	parent := filepath.Dir(current)
	if parent == current {
		return // already at root
	}

	entries, err := listDirectoryFn(parent)
	if err != nil {
		s.setStatusError(navErrorText("leave for", parent, err))
		return
	}

	exited := filepath.Base(current)
	s.CurrentPath = parent
	s.Entries = visibleEntries(entries, s.ShowHidden)
	s.Cursor = 0
	s.ScrollOffset = 0
	for idx, e := range s.Entries {
		if e.IsDir() && e.Name == exited {
			s.Cursor = idx
			break
		}
	}
	s.clearStatus()
}

// reloadPreservingSelection re-lists the current directory. The selection
// is preserved by name when the previously selected entry still exists,
// even if its index shifted; otherwise the cursor clamps by position.
func (r *Reducer) reloadPreservingSelection(s *AppState) {
	var selectedName string
	if entry := s.CurrentEntry(); entry != nil {
		selectedName = entry.Name
	}

	entries, err := listDirectoryFn(s.CurrentPath)
	if err != nil {
		s.setStatusError(navErrorText("refresh", s.CurrentPath, err))
		return
	}

	s.Entries = visibleEntries(entries, s.ShowHidden)
	if selectedName != "" {
		for idx, e := range s.Entries {
			if e.Name == selectedName {
				s.Cursor = idx
				s.clearStatus()
				return
			}
		}
	}
	s.clearStatus()
}

// confirmPrompt hands the buffer to the command interpreter. The buffer is
// cleared and the mode returns to navigation regardless of the outcome.
func (r *Reducer) confirmPrompt(s *AppState) {
	if s.Mode != ModePrompt {
		return
	}

	line := s.PromptBuffer
	s.PromptBuffer = ""
	s.Mode = ModeNavigation

	if strings.TrimSpace(line) == "" {
		s.clearStatus()
		return
	}

	if r.runner == nil {
		s.setStatusError("no command interpreter configured")
		return
	}

	summary, err := r.runner.Run(line, s.CurrentPath)
	if err != nil {
		s.setStatusError(err.Error())
	} else {
		s.setStatusInfo(summary)
	}

	// The command may have changed the directory contents.
	var selectedName string
	if entry := s.CurrentEntry(); entry != nil {
		selectedName = entry.Name
	}
	entries, listErr := listDirectoryFn(s.CurrentPath)
	if listErr != nil {
		return // keep the command outcome in the status panel
	}
	s.Entries = visibleEntries(entries, s.ShowHidden)
	for idx, e := range s.Entries {
		if e.Name == selectedName {
			s.Cursor = idx
			break
		}
	}
}

func navErrorText(verb, target string, err error) string {
	switch {
	case errors.Is(err, fsutil.ErrPermissionDenied):
		return fmt.Sprintf("cannot %s %s: permission denied", verb, target)
	case errors.Is(err, fsutil.ErrNotFound):
		return fmt.Sprintf("cannot %s %s: no longer exists", verb, target)
	case errors.Is(err, fsutil.ErrNotADirectory):
		return fmt.Sprintf("cannot %s %s: not a directory", verb, target)
	default:
		return fmt.Sprintf("cannot %s %s: %v", verb, target, err)
	}
}
