package sinks

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/patlog/patlog/core"
)

// Color is an ANSI escape sequence.
type Color string

const (
	ColorReset Color = "\033[0m"
	ColorBold  Color = "\033[1m"

	ColorRed     Color = "\033[31m"
	ColorGreen   Color = "\033[32m"
	ColorYellow  Color = "\033[33m"
	ColorBlue    Color = "\033[34m"
	ColorMagenta Color = "\033[35m"
	ColorCyan    Color = "\033[36m"
	ColorWhite   Color = "\033[37m"

	ColorBrightBlack Color = "\033[90m"
	ColorBrightRed   Color = "\033[91m"
)

// Theme maps log levels to console colors.
type Theme struct {
	TraceColor Color
	DebugColor Color
	InfoColor  Color
	WarnColor  Color
	ErrorColor Color
	FatalColor Color
}

// DefaultTheme returns the default console theme: dim trace, blue
// debug, green info, bold yellow warnings, bold red errors, bold
// magenta fatals.
func DefaultTheme() *Theme {
	return &Theme{
		TraceColor: ColorBrightBlack,
		DebugColor: ColorBlue,
		InfoColor:  ColorGreen,
		WarnColor:  ColorBold + ColorYellow,
		ErrorColor: ColorBold + ColorRed,
		FatalColor: ColorBold + ColorMagenta,
	}
}

// NoTheme returns a theme with no colors at all.
func NoTheme() *Theme {
	return &Theme{}
}

// LevelColor returns the color for a level, which may be empty.
func (t *Theme) LevelColor(level core.Level) Color {
	switch level {
	case core.TraceLevel:
		return t.TraceColor
	case core.DebugLevel:
		return t.DebugColor
	case core.InfoLevel:
		return t.InfoColor
	case core.WarnLevel:
		return t.WarnColor
	case core.ErrorLevel:
		return t.ErrorColor
	case core.FatalLevel:
		return t.FatalColor
	default:
		return ""
	}
}

// shouldUseColor reports whether the writer is a terminal that wants
// ANSI color. NO_COLOR and TERM=dumb are honored.
func shouldUseColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
