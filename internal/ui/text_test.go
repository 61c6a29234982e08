package ui

import (
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestFormatterWithColor(t *testing.T) {
	// t.Setenv restores the original value; NO_COLOR counts as set even
	// when empty, so it is then removed entirely.
	t.Setenv("NO_COLOR", "")
	os.Unsetenv("NO_COLOR")

	originalNoColor := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = originalNoColor }()

	result := Highlight.Sprint("github")
	if strings.Contains(result, "'") {
		t.Errorf("Highlight should not quote when color is enabled, got: %s", result)
	}
	if !strings.Contains(result, "\x1b[") {
		t.Errorf("Expected ANSI escape codes, got: %q", result)
	}
}

func TestFormatterWithNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name      string
		formatter Formatter
		input     string
		want      string
	}{
		{"Code adds backticks", Code, "lockbox get", "`lockbox get`"},
		{"Path has no decoration", Path, "passwords.json", "passwords.json"},
		{"Secret is verbatim", Secret, "pw 123", "pw 123"},
		{"Highlight adds quotes", Highlight, "email", "'email'"},
		{"Muted adds parentheses", Muted, "2 accounts", "(2 accounts)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.formatter.Sprint(tt.input); got != tt.want {
				t.Errorf("Sprint(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatterSprintf(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	if got, want := Highlight.Sprintf("%s/%s", "email", "bob"), "'email/bob'"; got != want {
		t.Errorf("Sprintf() = %q, want %q", got, want)
	}
}

func TestEnsureNewline(t *testing.T) {
	if got := EnsureNewline("done"); got != "done\n" {
		t.Errorf("Expected trailing newline, got %q", got)
	}
	if got := EnsureNewline("done\n"); got != "done\n" {
		t.Errorf("Expected single newline, got %q", got)
	}
	if got := EnsureNewline(""); got != "\n" {
		t.Errorf("Expected newline for empty string, got %q", got)
	}
}
