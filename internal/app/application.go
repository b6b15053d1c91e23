package app

import (
	"os"

	"github.com/dunefm/dune/internal/config"
	logpkg "github.com/dunefm/dune/internal/log"
	statepkg "github.com/dunefm/dune/internal/state"
	inputui "github.com/dunefm/dune/internal/ui/input"
	renderui "github.com/dunefm/dune/internal/ui/render"
	"github.com/gdamore/tcell/v2"
)

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	state      *statepkg.AppState
	reducer    *statepkg.Reducer
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	actionCh   chan statepkg.Action
	shouldQuit bool
	editorCmd  []string
}

// NewApplication initializes the terminal and loads the start directory.
// The screen is torn down again on any error, so the caller's stderr output
// stays readable.
func NewApplication(cfg *config.Config) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	startDir := cfg.StartDir
	if startDir == "" {
		startDir, err = os.Getwd()
		if err != nil {
			screen.Fini()
			return nil, err
		}
	}

	state := &statepkg.AppState{ShowHidden: cfg.ShowHidden}
	w, h := screen.Size()
	state.ScreenWidth = w
	state.ScreenHeight = h

	if err := statepkg.LoadDirectory(state, startDir); err != nil {
		screen.Fini()
		return nil, err
	}

	actionCh := make(chan statepkg.Action, 10)
	inputHandler := inputui.NewInputHandler(actionCh)
	inputHandler.SetState(state)

	editorCmd, _ := detectEditorCommand()

	app := &Application{
		screen:    screen,
		state:     state,
		reducer:   statepkg.NewReducer(&ShellCommandRunner{}),
		renderer:  renderui.NewRenderer(screen),
		input:     inputHandler,
		actionCh:  actionCh,
		editorCmd: editorCmd,
	}

	logpkg.WithField("dir", state.CurrentPath).Debug("session started")
	return app, nil
}

// Close cleans up resources.
func (app *Application) Close() error {
	close(app.actionCh)
	app.screen.Fini()
	return nil
}

// FinalPath returns the directory to hand to the exit handshake.
func (app *Application) FinalPath() string {
	return app.state.CurrentPath
}
