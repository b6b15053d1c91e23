package state

// Rows permanently reserved around the files region: one header row and one
// state row. Prompt mode reserves a third. The render layout carves the
// screen with the same arithmetic, so the containment invariant computed
// here matches what actually ends up on screen.
const fixedChromeRows = 2

// VisibleLines returns the height of the files viewport for the current
// screen size and mode. Never negative; a too-small terminal yields 0 and
// the files region simply renders empty.
func (s *AppState) VisibleLines() int {
	lines := s.ScreenHeight - fixedChromeRows
	if s.Mode == ModePrompt {
		lines--
	}
	if lines < 0 {
		lines = 0
	}
	return lines
}

// clampCursor re-establishes the cursor invariant: within [0, len-1] for a
// non-empty listing, 0 otherwise.
func (s *AppState) clampCursor() {
	if len(s.Entries) == 0 {
		s.Cursor = 0
		return
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
	if s.Cursor >= len(s.Entries) {
		s.Cursor = len(s.Entries) - 1
	}
}

// updateScrollVisibility moves ScrollOffset by the minimum amount needed to
// keep the cursor inside the viewport, then clamps the offset to the valid
// range for the listing length.
func (s *AppState) updateScrollVisibility() {
	visible := s.VisibleLines()
	if visible <= 0 {
		s.ScrollOffset = 0
		return
	}

	if s.Cursor < s.ScrollOffset {
		s.ScrollOffset = s.Cursor
	} else if s.Cursor >= s.ScrollOffset+visible {
		s.ScrollOffset = s.Cursor - visible + 1
	}

	maxOffset := len(s.Entries) - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.ScrollOffset < 0 {
		s.ScrollOffset = 0
	}
	if s.ScrollOffset > maxOffset {
		s.ScrollOffset = maxOffset
	}
}
