package shellsetup

import (
	"testing"
)

func TestDetectShellInternal(t *testing.T) {
	tests := []struct {
		name          string
		goos          string
		envShell      string
		envComspec    string
		expectedShell string
	}{
		{
			name:          "uses SHELL when set",
			goos:          "linux",
			envShell:      "/bin/zsh",
			expectedShell: "zsh",
		},
		{
			name:          "linux fallback",
			goos:          "linux",
			expectedShell: "bash",
		},
		{
			name:          "powershell canonicalized",
			goos:          "linux",
			envShell:      "/usr/bin/powershell",
			expectedShell: "pwsh",
		},
		{
			name:          "windows fallback",
			goos:          "windows",
			expectedShell: "pwsh",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := func(key string) string {
				switch key {
				case "SHELL":
					return tt.envShell
				case "COMSPEC":
					return tt.envComspec
				default:
					return ""
				}
			}
			got := detectShellInternal(tt.goos, env)
			if got != tt.expectedShell {
				t.Fatalf("detectShellInternal() = %q, want %q", got, tt.expectedShell)
			}
		})
	}
}

func TestNormalizeShellName(t *testing.T) {
	tests := []struct {
		input  string
		expect string
	}{
		{"/bin/bash", "bash"},
		{"/usr/local/bin/fish", "fish"},
		{`C:\Windows\System32\cmd.exe`, "cmd"},
		{`"C:\Program Files\PowerShell\pwsh.exe" -NoLogo`, "pwsh"},
		{"  zsh  ", "zsh"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := normalizeShellName(tt.input); got != tt.expect {
			t.Errorf("normalizeShellName(%q) = %q, want %q", tt.input, got, tt.expect)
		}
	}
}
