// Package handshake implements the exit contract with the shell wrapper:
// on every clean exit the last visited directory is written to a well-known
// file, which the wrapper function reads to cd after the process ends.
package handshake

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvResultFile overrides the result file location when set.
const EnvResultFile = "DUNE_RESULT_FILE"

// DefaultPath returns the well-known result file location shared with the
// shell wrapper.
func DefaultPath() string {
	return filepath.Join(os.TempDir(), "dune-cd.txt")
}

// Resolve picks the result file location. The environment wins over the
// configured path, which wins over the default.
func Resolve(configured string) string {
	if env := os.Getenv(EnvResultFile); env != "" {
		return env
	}
	if configured != "" {
		return configured
	}
	return DefaultPath()
}

// Write records dir as the session's final directory. The path is made
// absolute so the shell wrapper can cd to it from anywhere, and any previous
// session's file is overwritten.
func Write(resultFile, dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("cannot resolve final directory %s: %w", dir, err)
	}
	if err := os.WriteFile(resultFile, []byte(abs+"\n"), 0o600); err != nil {
		return fmt.Errorf("cannot write result file %s: %w", resultFile, err)
	}
	return nil
}
