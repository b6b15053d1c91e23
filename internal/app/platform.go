package app

import (
	"os"
	"os/exec"
	"runtime"
	"strings"
	"unicode"

	statepkg "github.com/dunefm/dune/internal/state"
)

func detectEditorCommand() ([]string, bool) {
	return detectEditorCommandInternal(runtime.GOOS, os.Getenv, exec.LookPath)
}

func detectEditorCommandInternal(goos string, getenv func(string) string, lookPath func(string) (string, error)) ([]string, bool) {
	candidates := []string{getenv("VISUAL"), getenv("EDITOR")}

	for _, candidate := range candidates {
		args := splitCommandLine(candidate)
		if len(args) == 0 {
			continue
		}
		if resolved, err := lookPath(args[0]); err == nil && resolved != "" {
			args[0] = resolved
			return args, true
		}
	}

	var defaults []string
	if strings.EqualFold(goos, "windows") {
		defaults = []string{"notepad.exe"}
	} else {
		defaults = []string{"vim", "nano"}
	}

	for _, def := range defaults {
		if resolved, err := lookPath(def); err == nil && resolved != "" {
			return []string{resolved}, true
		}
	}

	return nil, false
}

// splitCommandLine splits an $EDITOR-style value on unquoted whitespace.
func splitCommandLine(value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	var args []string
	var current strings.Builder
	var quote rune

	for _, r := range value {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
		case unicode.IsSpace(r):
			if current.Len() > 0 {
				args = append(args, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		args = append(args, current.String())
	}
	return args
}

// openInEditor suspends the UI, runs the editor attached to the real
// terminal, and resumes. The listing is refreshed afterwards since the
// editor may have written files.
func (app *Application) openInEditor(path string) bool {
	if len(app.editorCmd) == 0 {
		app.state.Status = statepkg.Status{Kind: statepkg.StatusInfo, Text: "no editor found (set $EDITOR)"}
		return true
	}

	if err := app.screen.Suspend(); err != nil {
		app.state.Status = statepkg.Status{Kind: statepkg.StatusError, Text: err.Error()}
		return true
	}

	args := append(append([]string{}, app.editorCmd[1:]...), path)
	cmd := exec.Command(app.editorCmd[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	runErr := cmd.Run()

	if err := app.screen.Resume(); err != nil {
		app.state.Status = statepkg.Status{Kind: statepkg.StatusError, Text: err.Error()}
		return true
	}
	app.screen.Sync()

	if runErr != nil {
		app.state.Status = statepkg.Status{Kind: statepkg.StatusError, Text: "editor: " + runErr.Error()}
	} else {
		_ = app.reducer.Reduce(app.state, statepkg.RefreshAction{})
	}
	return true
}
