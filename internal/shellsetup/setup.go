// Package shellsetup prints the shell wrapper function that makes the
// final-directory handshake useful: the wrapper runs the binary, then reads
// the result file and cds into whatever it names.
package shellsetup

import (
	"fmt"
	"os"
	"path"
	"runtime"
	"strconv"
	"strings"
)

// PrintSetup writes the wrapper function for the given shell to stdout.
// With an empty override the shell is detected from the environment.
func PrintSetup(shellOverride string) {
	shell := normalizeShellName(shellOverride)
	if shell == "" {
		shell = detectShell()
	}
	shell = canonicalShellName(shell)

	exe, err := os.Executable()
	if err != nil {
		exe = "dune"
	}
	quoted := strconv.Quote(exe)

	switch shell {
	case "fish":
		fmt.Printf(`function dune
    if test (count $argv) -gt 0
        command %s $argv
        return $status
    end

    command %s

    set result_file "$DUNE_RESULT_FILE"
    if test -z "$result_file"
        set tmp "$TMPDIR"
        if test -z "$tmp"
            set tmp /tmp
        end
        set result_file "$tmp/dune-cd.txt"
    end
    if test -f "$result_file" -a ! -L "$result_file"
        set dest (cat "$result_file" 2>/dev/null)
        if test -d "$dest" 2>/dev/null
            builtin cd "$dest"
        end
    end
end
`, quoted, quoted)
	case "pwsh":
		fmt.Printf(`function dune {
    param([Parameter(ValueFromRemainingArguments=$true)][string[]]$Args)
    if ($Args.Count -gt 0) {
        & %s @Args
        return
    }

    & %s

    $resultFile = $env:DUNE_RESULT_FILE
    if ([string]::IsNullOrEmpty($resultFile)) {
        $resultFile = Join-Path ([System.IO.Path]::GetTempPath()) "dune-cd.txt"
    }
    if (Test-Path $resultFile -PathType Leaf) {
        $dest = (Get-Content $resultFile -Raw -ErrorAction SilentlyContinue).Trim()
        if (-not [string]::IsNullOrEmpty($dest) -and (Test-Path $dest -PathType Container)) {
            Set-Location $dest
        }
    }
}
`, quoted, quoted)
	default:
		// bash, zsh, sh, ksh, and anything POSIX-ish
		fmt.Printf(`dune() {
    if [ "$#" -gt 0 ]; then
        command %s "$@"
        return $?
    fi

    command %s

    result_file="${DUNE_RESULT_FILE:-${TMPDIR:-/tmp}/dune-cd.txt}"
    if [ -f "$result_file" ] && [ ! -L "$result_file" ]; then
        dest=$(cat "$result_file" 2>/dev/null)
        if [ -d "$dest" ]; then
            cd "$dest"
        fi
    fi
}
`, quoted, quoted)
	}
}

func detectShell() string {
	return detectShellInternal(runtime.GOOS, os.Getenv)
}

func detectShellInternal(goos string, getenv func(string) string) string {
	if shell := canonicalShellName(normalizeShellName(getenv("SHELL"))); shell != "" {
		return shell
	}

	if strings.EqualFold(goos, "windows") {
		if shell := canonicalShellName(normalizeShellName(getenv("COMSPEC"))); shell == "pwsh" {
			return shell
		}
		return "pwsh"
	}

	return "bash"
}

func canonicalShellName(name string) string {
	switch name {
	case "powershell":
		return "pwsh"
	default:
		return name
	}
}

func normalizeShellName(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	value = extractExecutable(value)
	if value == "" {
		return ""
	}

	value = strings.Trim(value, `"'`)
	value = strings.ReplaceAll(value, "\\", "/")
	base := path.Base(value)
	base = strings.ToLower(base)
	base = strings.TrimSuffix(base, ".exe")
	return strings.TrimSpace(base)
}

func extractExecutable(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	if strings.HasPrefix(value, "\"") {
		value = value[1:]
		if idx := strings.IndexRune(value, '"'); idx >= 0 {
			return value[:idx]
		}
		return value
	}

	if strings.HasPrefix(value, "'") {
		value = value[1:]
		if idx := strings.IndexRune(value, '\''); idx >= 0 {
			return value[:idx]
		}
		return value
	}

	if idx := strings.IndexAny(value, " \t"); idx >= 0 {
		return value[:idx]
	}

	return value
}
