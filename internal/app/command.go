package app

import (
	"fmt"
	"os/exec"
	"strings"

	logpkg "github.com/dunefm/dune/internal/log"
)

// ShellCommandRunner executes a prompt line through the system shell in the
// directory it was typed in, and condenses the outcome to a single line for
// the state panel.
type ShellCommandRunner struct{}

func (ShellCommandRunner) Run(line, dir string) (string, error) {
	cmd := shellCommand(line)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()

	logpkg.WithField("dir", dir).Debugf("ran %q: err=%v", line, err)

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			msg := fmt.Sprintf("%s: exit %d", line, exitErr.ExitCode())
			if summary := firstOutputLine(output); summary != "" {
				msg += ": " + summary
			}
			return "", fmt.Errorf("%s", msg)
		}
		return "", fmt.Errorf("%s: %v", line, err)
	}

	if summary := firstOutputLine(output); summary != "" {
		return fmt.Sprintf("%s: %s", line, summary), nil
	}
	return fmt.Sprintf("%s: ok", line), nil
}

func firstOutputLine(output []byte) string {
	text := strings.TrimSpace(string(output))
	if text == "" {
		return ""
	}
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		text = text[:idx]
	}
	return text
}
