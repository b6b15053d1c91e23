package render

import (
	"fmt"

	fsutil "github.com/dunefm/dune/internal/fs"
	statepkg "github.com/dunefm/dune/internal/state"
	textutil "github.com/dunefm/dune/internal/textutil"
	"github.com/gdamore/tcell/v2"
)

// Renderer handles all UI rendering
type Renderer struct {
	screen         tcell.Screen
	theme          ColorTheme
	runeWidthCache [128]int // ASCII cache (0-127)
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// Render draws the entire UI based on state
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()
	r.screen.HideCursor()

	w, h := r.screen.Size()
	layout := ComputeLayout(w, h, state.Mode)

	if layout.Header.Height > 0 {
		r.drawHeader(state, layout.Header.Y, w)
	}
	if layout.Files.Height > 0 {
		r.drawFiles(state, layout.Files, w)
	}
	if layout.Status.Height > 0 {
		r.drawStatusLine(state, layout.Status.Y, w)
	}
	if layout.Prompt.Height > 0 {
		r.drawPromptLine(state, layout.Prompt.Y, w)
	}

	r.screen.Show()
}

// drawHeader renders the top bar: application name, current path, entry
// count, and the active mode.
func (r *Renderer) drawHeader(state *statepkg.AppState, y, w int) {
	headerStyle := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg)

	right := fmt.Sprintf("%d items · %s", len(state.Entries), state.Mode)
	rightWidth := r.measureTextWidth(right)

	endX := r.drawTextLine(0, y, w, "dune", headerStyle.Bold(true))
	if endX < w {
		r.screen.SetContent(endX, y, ' ', nil, headerStyle)
		endX++
	}

	pathBudget := w - endX - rightWidth - 2
	if pathBudget > 0 {
		path := textutil.SanitizeTerminalText(state.CurrentPath)
		path = r.fitPathToWidth(path, pathBudget)
		endX = r.drawTextLine(endX, y, pathBudget, path, headerStyle)
	}

	rightStart := w - rightWidth
	if rightStart > endX {
		r.fillLine(endX, y, rightStart, headerStyle)
		r.drawTextLine(rightStart, y, rightWidth, right, headerStyle)
	} else {
		r.fillLine(endX, y, w, headerStyle)
	}
}

// drawFiles renders the scrolled listing. The slice of entries shown is
// Entries[ScrollOffset : ScrollOffset+height]; the state machine guarantees
// the cursor falls inside it.
func (r *Renderer) drawFiles(state *statepkg.AppState, region Region, w int) {
	if len(state.Entries) == 0 {
		emptyStyle := tcell.StyleDefault.Foreground(r.theme.HiddenFg)
		r.drawTextLine(1, region.Y, w-1, "(empty directory)", emptyStyle)
		return
	}

	end := state.ScrollOffset + region.Height
	if end > len(state.Entries) {
		end = len(state.Entries)
	}

	for row, idx := 0, state.ScrollOffset; idx < end; row, idx = row+1, idx+1 {
		r.drawFileRow(state, idx, region.Y+row, w)
	}
}

func (r *Renderer) drawFileRow(state *statepkg.AppState, idx, y, w int) {
	entry := state.Entries[idx]
	selected := idx == state.Cursor

	style := tcell.StyleDefault
	switch {
	case selected:
		style = style.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
	case entry.IsHidden():
		style = style.Foreground(r.theme.HiddenFg)
	case entry.Kind == fsutil.KindDirectory:
		style = style.Foreground(r.theme.DirectoryFg)
	case entry.Kind == fsutil.KindSymlink:
		style = style.Foreground(r.theme.SymlinkFg)
	default:
		style = style.Foreground(r.theme.FileFg)
	}

	name := textutil.SanitizeTerminalText(entry.Name)
	if entry.IsDir() {
		name += "/"
	}

	// Metadata block on the right, dropped on narrow terminals.
	meta := ""
	metaWidth := 0
	if w >= 50 {
		meta = fmt.Sprintf("%*s  %*s  %*s",
			sizeColumnWidth, formatSize(entry),
			dateColumnWidth, formatModified(entry.Modified),
			permsColumnWidth, formatPermissions(entry))
		metaWidth = r.measureTextWidth(meta) + 1
	}

	nameBudget := w - 1 - metaWidth
	if nameBudget < 1 {
		nameBudget = 1
	}
	name = r.truncateTextToWidth(name, nameBudget)

	endX := r.drawTextLine(1, y, nameBudget, name, style)
	r.fillLine(endX, y, w-metaWidth, style)
	if metaWidth > 0 {
		metaStyle := style
		if !selected {
			metaStyle = metaStyle.Foreground(r.theme.MetaFg)
		}
		r.drawTextLine(w-metaWidth, y, metaWidth, meta, metaStyle)
	}
	if selected {
		r.screen.SetContent(0, y, ' ', nil, style)
	}
}

// drawStatusLine renders the outcome of the last operation.
func (r *Renderer) drawStatusLine(state *statepkg.AppState, y, w int) {
	style := tcell.StyleDefault
	switch state.Status.Kind {
	case statepkg.StatusInfo:
		style = style.Foreground(r.theme.InfoFg)
	case statepkg.StatusError:
		style = style.Foreground(r.theme.ErrorFg).Bold(true)
	}

	text := textutil.SanitizeTerminalText(state.Status.Text)
	text = r.truncateTextToWidth(text, w-1)
	endX := r.drawTextLine(0, y, w, text, style)
	r.fillLine(endX, y, w, tcell.StyleDefault)
}

// drawPromptLine renders the pending command line with a visible cursor.
func (r *Renderer) drawPromptLine(state *statepkg.AppState, y, w int) {
	style := tcell.StyleDefault.Foreground(r.theme.PromptFg)

	endX := r.drawTextLine(0, y, w, "> ", style.Bold(true))
	buffer := textutil.SanitizeTerminalText(state.PromptBuffer)

	// Keep the tail of the buffer visible when it outgrows the screen.
	budget := w - endX - 1
	if budget > 0 && r.measureTextWidth(buffer) > budget {
		buffer = r.fitPathToWidth(buffer, budget)
	}
	endX = r.drawTextLine(endX, y, w-endX, buffer, style)
	r.fillLine(endX, y, w, style)
	if endX < w {
		r.screen.ShowCursor(endX, y)
	}
}
