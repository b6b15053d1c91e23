package state

import (
	"errors"
	"fmt"
	"testing"

	fsutil "github.com/dunefm/dune/internal/fs"
)

// ===== TEST FIXTURES =====

func dirEntry(parent, name string) Entry {
	return Entry{Name: name, FullPath: parent + "/" + name, Kind: fsutil.KindDirectory}
}

func fileEntry(parent, name string) Entry {
	return Entry{Name: name, FullPath: parent + "/" + name, Kind: fsutil.KindFile}
}

// fakeTree installs a canned filesystem for the duration of a test.
type fakeTree struct {
	listings map[string][]Entry
	failures map[string]error
}

func installTree(t *testing.T, tree fakeTree) {
	t.Helper()
	prev := listDirectoryFn
	listDirectoryFn = func(path string) ([]Entry, error) {
		if err, ok := tree.failures[path]; ok {
			return nil, err
		}
		entries, ok := tree.listings[path]
		if !ok {
			return nil, fsutil.ErrNotFound
		}
		return entries, nil
	}
	t.Cleanup(func() { listDirectoryFn = prev })
}

func testState(path string, entries []Entry) *AppState {
	return &AppState{
		CurrentPath:  path,
		Entries:      entries,
		ShowHidden:   true,
		ScreenWidth:  80,
		ScreenHeight: 24,
	}
}

func reduce(t *testing.T, s *AppState, actions ...Action) {
	t.Helper()
	r := NewReducer(nil)
	for _, a := range actions {
		if err := r.Reduce(s, a); err != nil {
			t.Fatalf("Failed to reduce %T: %v", a, err)
		}
	}
}

// ===== CURSOR TESTS =====

func TestCursorDownAndUp(t *testing.T) {
	s := testState("/d", []Entry{fileEntry("/d", "a"), fileEntry("/d", "b"), fileEntry("/d", "c")})

	reduce(t, s, CursorDownAction{})
	if s.Cursor != 1 {
		t.Errorf("Expected cursor=1 after down, got %d", s.Cursor)
	}
	reduce(t, s, CursorUpAction{})
	if s.Cursor != 0 {
		t.Errorf("Expected cursor=0 after up, got %d", s.Cursor)
	}
}

func TestCursorClampsAtEdges(t *testing.T) {
	s := testState("/d", []Entry{fileEntry("/d", "a"), fileEntry("/d", "b")})

	reduce(t, s, CursorUpAction{})
	if s.Cursor != 0 {
		t.Errorf("Expected cursor pinned at 0, got %d", s.Cursor)
	}
	reduce(t, s, CursorDownAction{}, CursorDownAction{}, CursorDownAction{})
	if s.Cursor != 1 {
		t.Errorf("Expected cursor pinned at last index 1, got %d", s.Cursor)
	}
}

func TestCursorOnEmptyListing(t *testing.T) {
	s := testState("/d", nil)

	reduce(t, s, CursorDownAction{}, CursorUpAction{}, CursorEndAction{}, PageDownAction{})
	if s.Cursor != 0 {
		t.Errorf("Expected cursor=0 on empty listing, got %d", s.Cursor)
	}
	if s.CurrentEntry() != nil {
		t.Error("Expected no current entry on empty listing")
	}
}

func TestHomeAndEnd(t *testing.T) {
	entries := make([]Entry, 10)
	for i := range entries {
		entries[i] = fileEntry("/d", fmt.Sprintf("f%02d", i))
	}
	s := testState("/d", entries)

	reduce(t, s, CursorEndAction{})
	if s.Cursor != 9 {
		t.Errorf("Expected cursor=9 after End, got %d", s.Cursor)
	}
	reduce(t, s, CursorHomeAction{})
	if s.Cursor != 0 {
		t.Errorf("Expected cursor=0 after Home, got %d", s.Cursor)
	}
	if s.ScrollOffset != 0 {
		t.Errorf("Expected scroll reset to 0 after Home, got %d", s.ScrollOffset)
	}
}

func TestPageMovesByViewportHeight(t *testing.T) {
	entries := make([]Entry, 50)
	for i := range entries {
		entries[i] = fileEntry("/d", fmt.Sprintf("f%02d", i))
	}
	s := testState("/d", entries)
	s.ScreenHeight = 12 // viewport of 10

	reduce(t, s, PageDownAction{})
	if s.Cursor != 10 {
		t.Errorf("Expected cursor=10 after PageDown, got %d", s.Cursor)
	}
	reduce(t, s, PageUpAction{})
	if s.Cursor != 0 {
		t.Errorf("Expected cursor=0 after PageUp, got %d", s.Cursor)
	}
}

// ===== SCROLL TESTS =====

func TestScrollContainmentInvariant(t *testing.T) {
	entries := make([]Entry, 100)
	for i := range entries {
		entries[i] = fileEntry("/d", fmt.Sprintf("f%03d", i))
	}
	s := testState("/d", entries)
	s.ScreenHeight = 10

	moves := []Action{
		CursorEndAction{}, CursorUpAction{}, PageUpAction{}, PageUpAction{},
		CursorDownAction{}, CursorDownAction{}, PageDownAction{},
		CursorHomeAction{}, PageDownAction{}, CursorEndAction{}, CursorHomeAction{},
	}
	r := NewReducer(nil)
	for i, a := range moves {
		if err := r.Reduce(s, a); err != nil {
			t.Fatalf("Failed to reduce move %d: %v", i, err)
		}
		visible := s.VisibleLines()
		if s.Cursor < s.ScrollOffset || s.Cursor >= s.ScrollOffset+visible {
			t.Fatalf("Containment broken after move %d: cursor=%d offset=%d visible=%d",
				i, s.Cursor, s.ScrollOffset, visible)
		}
	}
}

func TestScrollOnTinyTerminal(t *testing.T) {
	entries := []Entry{fileEntry("/d", "a"), fileEntry("/d", "b"), fileEntry("/d", "c")}
	s := testState("/d", entries)
	s.ScreenHeight = 2 // no room for a files viewport

	reduce(t, s, CursorEndAction{})
	if s.ScrollOffset != 0 {
		t.Errorf("Expected scroll=0 with zero viewport, got %d", s.ScrollOffset)
	}
	if s.Cursor != 2 {
		t.Errorf("Expected cursor still tracks selection, got %d", s.Cursor)
	}
}

// ===== ENTER / PARENT TESTS =====

func TestEnterDirectoryAndReturn(t *testing.T) {
	installTree(t, fakeTree{listings: map[string][]Entry{
		"/home/kim":      {dirEntry("/home/kim", "Documents"), dirEntry("/home/kim", "zeta"), fileEntry("/home/kim", "notes.txt")},
		"/home/kim/zeta": {fileEntry("/home/kim/zeta", "inner.txt")},
	}})
	s := testState("/home/kim", []Entry{
		dirEntry("/home/kim", "Documents"), dirEntry("/home/kim", "zeta"), fileEntry("/home/kim", "notes.txt"),
	})

	reduce(t, s, CursorDownAction{}, EnterEntryAction{})
	if s.CurrentPath != "/home/kim/zeta" {
		t.Errorf("Expected path /home/kim/zeta, got %s", s.CurrentPath)
	}
	if s.Cursor != 0 || s.ScrollOffset != 0 {
		t.Errorf("Expected cursor and scroll reset, got cursor=%d offset=%d", s.Cursor, s.ScrollOffset)
	}

	reduce(t, s, GoToParentAction{})
	if s.CurrentPath != "/home/kim" {
		t.Errorf("Expected path restored to /home/kim, got %s", s.CurrentPath)
	}
	if got := s.CurrentEntry(); got == nil || got.Name != "zeta" {
		t.Errorf("Expected cursor on exited directory zeta, got %+v", got)
	}
}

func TestEnterFileIsNoOp(t *testing.T) {
	installTree(t, fakeTree{listings: map[string][]Entry{}})
	s := testState("/d", []Entry{fileEntry("/d", "notes.txt")})

	reduce(t, s, EnterEntryAction{})
	if s.CurrentPath != "/d" {
		t.Errorf("Expected path unchanged for file entry, got %s", s.CurrentPath)
	}
}

func TestEnterUnreadableDirectoryKeepsState(t *testing.T) {
	installTree(t, fakeTree{
		listings: map[string][]Entry{},
		failures: map[string]error{"/d/locked": fsutil.ErrPermissionDenied},
	})
	s := testState("/d", []Entry{dirEntry("/d", "locked"), fileEntry("/d", "a")})
	s.Cursor = 0

	reduce(t, s, EnterEntryAction{})
	if s.CurrentPath != "/d" {
		t.Errorf("Expected path unchanged after failed enter, got %s", s.CurrentPath)
	}
	if len(s.Entries) != 2 || s.Cursor != 0 {
		t.Errorf("Expected listing and cursor unchanged, got %d entries cursor=%d", len(s.Entries), s.Cursor)
	}
	if s.Status.Kind != StatusError || s.Status.Text == "" {
		t.Errorf("Expected error status, got %+v", s.Status)
	}
}

func TestParentAtRootIsNoOp(t *testing.T) {
	installTree(t, fakeTree{listings: map[string][]Entry{"/": {dirEntry("/", "etc")}}})
	s := testState("/", []Entry{dirEntry("/", "etc")})

	reduce(t, s, GoToParentAction{})
	if s.CurrentPath != "/" {
		t.Errorf("Expected path to stay at root, got %s", s.CurrentPath)
	}
}

func TestParentFailureKeepsState(t *testing.T) {
	installTree(t, fakeTree{
		listings: map[string][]Entry{},
		failures: map[string]error{"/gone": fsutil.ErrNotFound},
	})
	s := testState("/gone/sub", []Entry{fileEntry("/gone/sub", "a")})

	reduce(t, s, GoToParentAction{})
	if s.CurrentPath != "/gone/sub" {
		t.Errorf("Expected path unchanged after failed ascent, got %s", s.CurrentPath)
	}
	if s.Status.Kind != StatusError {
		t.Errorf("Expected error status, got %+v", s.Status)
	}
}

// ===== REFRESH TESTS =====

func TestRefreshPreservesSelectionByName(t *testing.T) {
	installTree(t, fakeTree{listings: map[string][]Entry{
		"/d": {fileEntry("/d", "aaa"), fileEntry("/d", "bbb"), fileEntry("/d", "ccc")},
	}})
	// The listing on screen predates "aaa" appearing; bbb sits at index 0.
	s := testState("/d", []Entry{fileEntry("/d", "bbb"), fileEntry("/d", "ccc")})
	s.Cursor = 0

	reduce(t, s, RefreshAction{})
	if got := s.CurrentEntry(); got == nil || got.Name != "bbb" {
		t.Errorf("Expected selection preserved on bbb, got %+v", got)
	}
	if s.Cursor != 1 {
		t.Errorf("Expected cursor moved to bbb's new index 1, got %d", s.Cursor)
	}
}

func TestRefreshClampsWhenSelectionVanished(t *testing.T) {
	installTree(t, fakeTree{listings: map[string][]Entry{
		"/d": {fileEntry("/d", "aaa")},
	}})
	s := testState("/d", []Entry{fileEntry("/d", "aaa"), fileEntry("/d", "zzz")})
	s.Cursor = 1

	reduce(t, s, RefreshAction{})
	if s.Cursor != 0 {
		t.Errorf("Expected cursor clamped to 0, got %d", s.Cursor)
	}
}

func TestRefreshFailureKeepsListing(t *testing.T) {
	installTree(t, fakeTree{
		listings: map[string][]Entry{},
		failures: map[string]error{"/d": errors.New("disk on fire")},
	})
	s := testState("/d", []Entry{fileEntry("/d", "a"), fileEntry("/d", "b")})

	reduce(t, s, RefreshAction{})
	if len(s.Entries) != 2 {
		t.Errorf("Expected stale listing kept after failed refresh, got %d entries", len(s.Entries))
	}
	if s.Status.Kind != StatusError {
		t.Errorf("Expected error status, got %+v", s.Status)
	}
}

// ===== HIDDEN TOGGLE TESTS =====

func TestToggleHiddenFiltersAndRestores(t *testing.T) {
	hidden := fileEntry("/d", ".secret")
	installTree(t, fakeTree{listings: map[string][]Entry{
		"/d": {hidden, fileEntry("/d", "visible")},
	}})
	s := testState("/d", []Entry{hidden, fileEntry("/d", "visible")})
	s.ShowHidden = true
	s.Cursor = 1 // visible

	reduce(t, s, ToggleHiddenAction{})
	if s.ShowHidden {
		t.Error("Expected ShowHidden flipped off")
	}
	if len(s.Entries) != 1 || s.Entries[0].Name != "visible" {
		t.Errorf("Expected only visible entries, got %+v", s.Entries)
	}
	if got := s.CurrentEntry(); got == nil || got.Name != "visible" {
		t.Errorf("Expected selection preserved on visible, got %+v", got)
	}

	reduce(t, s, ToggleHiddenAction{})
	if len(s.Entries) != 2 {
		t.Errorf("Expected hidden entries restored, got %d", len(s.Entries))
	}
}

// ===== PROMPT TESTS =====

type fakeRunner struct {
	gotLine string
	gotDir  string
	summary string
	err     error
}

func (f *fakeRunner) Run(line, dir string) (string, error) {
	f.gotLine = line
	f.gotDir = dir
	return f.summary, f.err
}

func TestPromptLifecycle(t *testing.T) {
	installTree(t, fakeTree{listings: map[string][]Entry{"/d": {fileEntry("/d", "a")}}})
	runner := &fakeRunner{summary: "touch b: ok"}
	r := NewReducer(runner)
	s := testState("/d", []Entry{fileEntry("/d", "a")})

	mustReduce := func(a Action) {
		t.Helper()
		if err := r.Reduce(s, a); err != nil {
			t.Fatalf("Failed to reduce %T: %v", a, err)
		}
	}

	mustReduce(PromptStartAction{})
	if s.Mode != ModePrompt {
		t.Fatalf("Expected prompt mode, got %v", s.Mode)
	}
	for _, ch := range "touch bx" {
		mustReduce(PromptCharAction{Char: ch})
	}
	mustReduce(PromptBackspaceAction{})
	if s.PromptBuffer != "touch b" {
		t.Errorf("Expected buffer 'touch b', got %q", s.PromptBuffer)
	}

	mustReduce(PromptConfirmAction{})
	if s.Mode != ModeNavigation {
		t.Errorf("Expected return to navigation mode, got %v", s.Mode)
	}
	if s.PromptBuffer != "" {
		t.Errorf("Expected buffer cleared, got %q", s.PromptBuffer)
	}
	if runner.gotLine != "touch b" || runner.gotDir != "/d" {
		t.Errorf("Expected runner called with ('touch b', /d), got (%q, %q)", runner.gotLine, runner.gotDir)
	}
	if s.Status.Kind != StatusInfo || s.Status.Text != "touch b: ok" {
		t.Errorf("Expected info status with summary, got %+v", s.Status)
	}
}

func TestPromptCancelDiscardsBuffer(t *testing.T) {
	s := testState("/d", nil)

	reduce(t, s, PromptStartAction{}, PromptCharAction{Char: 'r'}, PromptCharAction{Char: 'm'}, PromptCancelAction{})
	if s.Mode != ModeNavigation {
		t.Errorf("Expected navigation mode after cancel, got %v", s.Mode)
	}
	if s.PromptBuffer != "" {
		t.Errorf("Expected buffer discarded, got %q", s.PromptBuffer)
	}
}

func TestPromptConfirmFailureSetsErrorStatus(t *testing.T) {
	installTree(t, fakeTree{listings: map[string][]Entry{"/d": nil}})
	runner := &fakeRunner{err: errors.New("rm: exit 1: no such file")}
	r := NewReducer(runner)
	s := testState("/d", nil)

	for _, a := range []Action{PromptStartAction{}, PromptCharAction{Char: 'r'}, PromptConfirmAction{}} {
		if err := r.Reduce(s, a); err != nil {
			t.Fatalf("Failed to reduce %T: %v", a, err)
		}
	}
	if s.Mode != ModeNavigation {
		t.Errorf("Expected navigation mode even on failure, got %v", s.Mode)
	}
	if s.Status.Kind != StatusError || s.Status.Text != "rm: exit 1: no such file" {
		t.Errorf("Expected error status with runner message, got %+v", s.Status)
	}
}

func TestPromptConfirmEmptyLineIsQuiet(t *testing.T) {
	runner := &fakeRunner{summary: "should not run"}
	r := NewReducer(runner)
	s := testState("/d", nil)

	for _, a := range []Action{PromptStartAction{}, PromptConfirmAction{}} {
		if err := r.Reduce(s, a); err != nil {
			t.Fatalf("Failed to reduce %T: %v", a, err)
		}
	}
	if runner.gotLine != "" && runner.gotDir != "" {
		t.Error("Expected runner not invoked for empty line")
	}
	if s.Status.Text != "" {
		t.Errorf("Expected blank status, got %+v", s.Status)
	}
}

func TestPromptConfirmRefreshesListing(t *testing.T) {
	installTree(t, fakeTree{listings: map[string][]Entry{
		"/d": {fileEntry("/d", "a"), fileEntry("/d", "b")},
	}})
	runner := &fakeRunner{summary: "touch b: ok"}
	r := NewReducer(runner)
	s := testState("/d", []Entry{fileEntry("/d", "a")})

	for _, a := range []Action{PromptStartAction{}, PromptCharAction{Char: 't'}, PromptConfirmAction{}} {
		if err := r.Reduce(s, a); err != nil {
			t.Fatalf("Failed to reduce %T: %v", a, err)
		}
	}
	if len(s.Entries) != 2 {
		t.Errorf("Expected listing refreshed after command, got %d entries", len(s.Entries))
	}
}

func TestPromptKeysIgnoredInNavigationMode(t *testing.T) {
	s := testState("/d", nil)

	reduce(t, s, PromptCharAction{Char: 'x'}, PromptBackspaceAction{}, PromptConfirmAction{})
	if s.Mode != ModeNavigation || s.PromptBuffer != "" {
		t.Errorf("Expected prompt state untouched, got mode=%v buffer=%q", s.Mode, s.PromptBuffer)
	}
}

// ===== RESIZE TESTS =====

func TestResizeUpdatesDimensionsAndScroll(t *testing.T) {
	entries := make([]Entry, 40)
	for i := range entries {
		entries[i] = fileEntry("/d", fmt.Sprintf("f%02d", i))
	}
	s := testState("/d", entries)
	s.ScreenHeight = 22
	reduce(t, s, CursorEndAction{})

	reduce(t, s, ResizeAction{Width: 40, Height: 8})
	if s.ScreenWidth != 40 || s.ScreenHeight != 8 {
		t.Errorf("Expected 40x8, got %dx%d", s.ScreenWidth, s.ScreenHeight)
	}
	visible := s.VisibleLines()
	if s.Cursor < s.ScrollOffset || s.Cursor >= s.ScrollOffset+visible {
		t.Errorf("Containment broken after resize: cursor=%d offset=%d visible=%d",
			s.Cursor, s.ScrollOffset, visible)
	}
}
