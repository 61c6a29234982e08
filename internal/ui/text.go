package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter applies semantic formatting to text.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

// Sprint formats the arguments and returns the resulting string.
func (f Formatter) Sprint(a ...interface{}) string {
	text := fmt.Sprint(a...)
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// Sprintf formats according to a format specifier and returns the resulting string.
func (f Formatter) Sprintf(format string, a ...interface{}) string {
	text := fmt.Sprintf(format, a...)
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// EnsureNewline ensures the string ends with a newline character.
func EnsureNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}

// noColor returns true if color output should be disabled.
func noColor() bool {
	// Check NO_COLOR environment variable (https://no-color.org/).
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	// Also respect fatih/color's detection (terminal capability, TERM=dumb, etc.).
	return color.NoColor
}

// Formatters used across command output. With color disabled each one
// falls back to the plain-text decoration noted beside it.
var (
	Code    = Formatter{color.New(color.FgYellow), "`", "`"} // shell commands
	Path    = Formatter{color.New(color.FgYellow), "", ""}   // store, key and config paths
	Flag    = Formatter{color.New(color.FgYellow), "", ""}   // --key-file and friends
	Success = Formatter{color.New(color.FgGreen), "", ""}
	Error   = Formatter{color.New(color.FgRed), "", ""}
	Warning = Formatter{color.New(color.FgYellow), "", ""}
	Info    = Formatter{color.New(color.FgCyan), "", ""} // → hints

	// Highlight marks service and account names: 'bob' at 'email'.
	Highlight = Formatter{color.New(color.FgCyan), "'", "'"}

	// Secret prints a password. It never adds decoration so the value can be
	// copied as shown.
	Secret = Formatter{color.New(color.FgGreen), "", ""}

	// Muted is for summaries and timestamps, shown in parentheses without color.
	Muted = Formatter{color.New(color.FgHiBlack), "(", ")"}
)
