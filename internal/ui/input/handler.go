package input

import (
	statepkg "github.com/dunefm/dune/internal/state"
	"github.com/gdamore/tcell/v2"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
	state      *statepkg.AppState // Reference to current state for mode checking
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetState sets the state reference for mode checking
func (ih *InputHandler) SetState(state *statepkg.AppState) {
	ih.state = state
}

// ProcessEvent converts a tcell event into an Action. Returns false when
// the event ends the session.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

// processKeyEvent handles keyboard input
func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	// Ctrl+C quits from either mode.
	if ev.Key() == tcell.KeyCtrlC {
		ih.actionChan <- statepkg.QuitAction{}
		return false
	}

	if ih.state != nil && ih.state.Mode == statepkg.ModePrompt {
		return ih.processPromptKey(ev)
	}
	return ih.processNavigationKey(ev)
}

// processPromptKey handles keys while the command prompt is open. Every
// printable rune goes into the buffer, including 'q'.
func (ih *InputHandler) processPromptKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyTab:
		ih.actionChan <- statepkg.PromptCancelAction{}
		return true

	case tcell.KeyEnter:
		ih.actionChan <- statepkg.PromptConfirmAction{}
		return true

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ih.actionChan <- statepkg.PromptBackspaceAction{}
		return true

	case tcell.KeyRune:
		ih.actionChan <- statepkg.PromptCharAction{Char: ev.Rune()}
		return true

	default:
		return true
	}
}

// processNavigationKey handles keys in the default browsing mode.
func (ih *InputHandler) processNavigationKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyUp:
		ih.actionChan <- statepkg.CursorUpAction{}
		return true

	case tcell.KeyDown:
		ih.actionChan <- statepkg.CursorDownAction{}
		return true

	case tcell.KeyPgUp:
		ih.actionChan <- statepkg.PageUpAction{}
		return true

	case tcell.KeyPgDn:
		ih.actionChan <- statepkg.PageDownAction{}
		return true

	case tcell.KeyHome:
		ih.actionChan <- statepkg.CursorHomeAction{}
		return true

	case tcell.KeyEnd:
		ih.actionChan <- statepkg.CursorEndAction{}
		return true

	case tcell.KeyEnter, tcell.KeyRight:
		ih.actionChan <- statepkg.EnterEntryAction{}
		return true

	case tcell.KeyLeft, tcell.KeyBackspace, tcell.KeyBackspace2:
		ih.actionChan <- statepkg.GoToParentAction{}
		return true

	case tcell.KeyTab:
		ih.actionChan <- statepkg.PromptStartAction{}
		return true

	case tcell.KeyF5:
		ih.actionChan <- statepkg.RefreshAction{}
		return true

	case tcell.KeyEscape:
		ih.actionChan <- statepkg.QuitAction{}
		return false

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			ih.actionChan <- statepkg.QuitAction{}
			return false

		case ':':
			ih.actionChan <- statepkg.PromptStartAction{}
			return true

		case '.':
			ih.actionChan <- statepkg.ToggleHiddenAction{}
			return true

		case 'r', 'R':
			ih.actionChan <- statepkg.RefreshAction{}
			return true
		}
		return true

	default:
		return true
	}
}
