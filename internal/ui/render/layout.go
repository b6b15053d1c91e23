package render

import statepkg "github.com/dunefm/dune/internal/state"

// Region is a horizontal band of the screen. Height 0 means the panel is
// dropped for this frame.
type Region struct {
	Y      int
	Height int
}

// Layout carves the screen into the four stacked panels. The arithmetic
// matches AppState.VisibleLines, so the rows the state machine scrolls for
// are exactly the rows the renderer fills.
type Layout struct {
	Header Region
	Files  Region
	Status Region
	Prompt Region
}

// ComputeLayout is a pure function of the screen size and the input mode.
// Panels degrade in a fixed order as the terminal shrinks: files first,
// then prompt, then status, with the header surviving down to one row.
func ComputeLayout(w, h int, mode statepkg.Mode) Layout {
	var l Layout
	if w <= 0 || h <= 0 {
		return l
	}

	l.Header = Region{Y: 0, Height: 1}

	bottom := h // first row past the files region
	if mode == statepkg.ModePrompt && h >= 3 {
		l.Prompt = Region{Y: h - 1, Height: 1}
		bottom = h - 1
	}
	if h >= 2 {
		l.Status = Region{Y: bottom - 1, Height: 1}
		bottom--
	}

	filesHeight := bottom - 1
	if filesHeight < 0 {
		filesHeight = 0
	}
	l.Files = Region{Y: 1, Height: filesHeight}

	return l
}
