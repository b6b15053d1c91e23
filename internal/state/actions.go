package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== NAVIGATION ACTIONS =====

type CursorUpAction struct{}
type CursorDownAction struct{}
type PageUpAction struct{}
type PageDownAction struct{}
type CursorHomeAction struct{}
type CursorEndAction struct{}
type EnterEntryAction struct{}
type GoToParentAction struct{}
type RefreshAction struct{}
type ToggleHiddenAction struct{}

// ===== PROMPT ACTIONS =====

type PromptStartAction struct{}
type PromptCharAction struct {
	Char rune
}
type PromptBackspaceAction struct{}
type PromptCancelAction struct{}
type PromptConfirmAction struct{}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

// ===== APPLICATION ACTIONS =====

type QuitAction struct{}
