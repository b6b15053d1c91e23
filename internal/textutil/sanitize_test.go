package textutil

import "testing"

func TestSanitizeTerminalTextPassesPlainText(t *testing.T) {
	input := "notes-2024.txt"
	if got := SanitizeTerminalText(input); got != input {
		t.Errorf("Expected plain text unchanged, got %q", got)
	}
}

func TestSanitizeTerminalTextReplacesControlBytes(t *testing.T) {
	got := SanitizeTerminalText("evil\x1b[31mname")
	if got != "evil?[31mname" {
		t.Errorf("Expected escape byte replaced, got %q", got)
	}
}

func TestSanitizeTerminalTextFlattensNewlines(t *testing.T) {
	got := SanitizeTerminalText("two\nlines\r")
	if got != "two lines " {
		t.Errorf("Expected newlines flattened to spaces, got %q", got)
	}
}

func TestSanitizeTerminalTextLabelsBidiRunes(t *testing.T) {
	got := SanitizeTerminalText("exe‮txt.bad")
	if got != "exe⟪RLO⟫txt.bad" {
		t.Errorf("Expected RLO labeled, got %q", got)
	}
}

func TestSanitizeTerminalTextKeepsTabs(t *testing.T) {
	input := "a\tb"
	if got := SanitizeTerminalText(input); got != input {
		t.Errorf("Expected tab preserved, got %q", got)
	}
}
