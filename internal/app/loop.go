package app

import (
	logpkg "github.com/dunefm/dune/internal/log"
	statepkg "github.com/dunefm/dune/internal/state"
	"github.com/gdamore/tcell/v2"
)

// Run drives the session: one goroutine feeds terminal events into a
// channel, the loop below turns them into actions and repaints after every
// state change. Returns when the user quits.
func (app *Application) Run() {
	defer app.screen.Fini()

	app.renderer.Render(app.state)
	renderPending := false

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			eventChan <- app.screen.PollEvent()
		}
	}()

	for !app.shouldQuit {
		if renderPending {
			app.renderer.Render(app.state)
			renderPending = false
		}

		select {
		case ev := <-eventChan:
			if app.handleEvent(ev) {
				renderPending = true
			}
		case action := <-app.actionCh:
			if app.handleAction(action) {
				renderPending = true
			}
		}

		if app.processActions() {
			renderPending = true
		}
	}
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
	case *tcell.EventResize:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
	default:
		return false
	}
	return true
}

// processActions drains whatever the input handler queued without blocking.
func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}

func (app *Application) handleAction(action statepkg.Action) bool {
	if action == nil {
		return false
	}

	switch action.(type) {
	case statepkg.QuitAction:
		app.shouldQuit = true
		return false

	case statepkg.EnterEntryAction:
		// Entering a non-directory means opening it, which needs the
		// screen. Directories stay with the reducer.
		if entry := app.state.CurrentEntry(); entry != nil && !entry.IsDir() {
			return app.openInEditor(entry.FullPath)
		}
	}

	if err := app.reducer.Reduce(app.state, action); err != nil {
		logpkg.Errorf("reduce %T: %v", action, err)
	}
	return true
}
