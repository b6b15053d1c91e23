//go:build windows

package fs

import (
	"strings"
	"syscall"
)

// IsHidden checks the hidden attribute on Windows, falling back to the
// leading-dot convention for names that came from Unix-style tooling.
func IsHidden(path string, name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	if path == "" {
		return false
	}
	p, err := syscall.UTF16PtrFromString(path)
	if err != nil {
		return false
	}
	attrs, err := syscall.GetFileAttributes(p)
	if err != nil {
		return false
	}
	return attrs&syscall.FILE_ATTRIBUTE_HIDDEN != 0
}
