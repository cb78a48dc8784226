package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// FormatError formats err for terminal display with colors. Non-CLI errors
// are shown as Runtime errors.
func FormatError(err error) string {
	return format(err, true)
}

// FormatErrorPlain formats err without ANSI colors.
func FormatErrorPlain(err error) string {
	return format(err, false)
}

// PrintError writes the formatted error to stderr.
func PrintError(err error) {
	FprintError(os.Stderr, err)
}

// FprintError writes the formatted error to w. Colors are used unless
// color output is disabled globally.
func FprintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprint(w, format(err, !color.NoColor))
}

func format(err error, colored bool) string {
	if err == nil {
		return ""
	}

	cliErr := AsCLIError(err)
	if cliErr == nil {
		cliErr = &CLIError{Category: Runtime, Message: err.Error()}
	}

	title := fmt.Sprintf("✗ %s: ", cliErr.Category)
	heading := "To fix this:"
	usage := "Usage:"
	if colored {
		title = colorize(color.New(color.FgRed, color.Bold), title)
		heading = colorize(color.New(color.FgYellow), heading)
		usage = colorize(color.New(color.Faint), usage)
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString(cliErr.Message)
	b.WriteString("\n")

	if cliErr.Usage != "" {
		fmt.Fprintf(&b, "\n%s %s\n", usage, cliErr.Usage)
	}

	if len(cliErr.Remediation) > 0 {
		fmt.Fprintf(&b, "\n%s\n", heading)
		for _, step := range cliErr.Remediation {
			fmt.Fprintf(&b, "  • %s\n", step)
		}
	}

	return b.String()
}

// colorize forces color on c regardless of the global NoColor setting.
func colorize(c *color.Color, s string) string {
	c.EnableColor()
	return c.Sprint(s)
}
