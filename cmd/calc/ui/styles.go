// Package ui provides the visual styling for the calcnerd CLI.
// Styles are bound to a lipgloss renderer for the destination writer, so
// output piped to a file or another program is left unstyled.
package ui

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"calcnerd/internal/session"
)

// Color palette
var (
	// Light Mode Colors (Default)
	LightForeground = lipgloss.Color("#101F38") // Dark Blue
	LightAccent     = lipgloss.Color("#2E7D32") // Green
	LightMuted      = lipgloss.Color("#5f6b7a")

	// Dark Mode Colors
	DarkForeground = lipgloss.Color("#f2f2f2")
	DarkAccent     = lipgloss.Color("#8BC34A") // Lime Green
	DarkMuted      = lipgloss.Color("#8a97a8")

	// Semantic Colors (same in both modes)
	Destructive = lipgloss.Color("#e53935") // Red
	Info        = lipgloss.Color("#2196F3") // Blue
)

// Theme holds the current color scheme
type Theme struct {
	Name       string
	Foreground lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	IsDark     bool
	Plain      bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{Name: "light", Foreground: LightForeground, Accent: LightAccent, Muted: LightMuted}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{Name: "dark", Foreground: DarkForeground, Accent: DarkAccent, Muted: DarkMuted, IsDark: true}
}

// PlainTheme disables all styling.
func PlainTheme() Theme {
	return Theme{Name: "plain", Plain: true}
}

// DetectTheme auto-detects based on terminal or returns light mode
func DetectTheme() Theme {
	// COLORFGBG is "foreground;background"; background 0-6 or 8 is dark.
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
				if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
					return DarkTheme()
				}
			}
		}
	}

	if os.Getenv("CALC_DARK_MODE") == "1" {
		return DarkTheme()
	}

	return LightTheme()
}

// ThemeByName resolves a configured theme name. Unknown names fall back to
// detection, same as "auto".
func ThemeByName(name string) Theme {
	switch name {
	case "light":
		return LightTheme()
	case "dark":
		return DarkTheme()
	case "plain":
		return PlainTheme()
	default:
		return DetectTheme()
	}
}

// Styles holds one style per kind of session line.
type Styles struct {
	Theme Theme

	Text     lipgloss.Style
	Menu     lipgloss.Style
	Prompt   lipgloss.Style
	Error    lipgloss.Style
	Result   lipgloss.Style
	Farewell lipgloss.Style
}

// NewStyles creates a new Styles instance for output written to w.
func NewStyles(theme Theme, w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	if theme.Plain {
		return Styles{
			Theme:    theme,
			Text:     r.NewStyle(),
			Menu:     r.NewStyle(),
			Prompt:   r.NewStyle(),
			Error:    r.NewStyle(),
			Result:   r.NewStyle(),
			Farewell: r.NewStyle(),
		}
	}

	return Styles{
		Theme: theme,

		Text: r.NewStyle().
			Foreground(theme.Foreground),

		Menu: r.NewStyle().
			Foreground(theme.Foreground),

		Prompt: r.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		Error: r.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Result: r.NewStyle().
			Foreground(Info).
			Bold(true),

		Farewell: r.NewStyle().
			Foreground(theme.Muted).
			Italic(true),
	}
}

// Render implements session.Renderer.
func (s Styles) Render(l session.Line) string {
	if l.Text == "" {
		return ""
	}
	return s.styleFor(l.Kind).Render(l.Text)
}

func (s Styles) styleFor(kind session.LineKind) lipgloss.Style {
	switch kind {
	case session.KindMenu:
		return s.Menu
	case session.KindPrompt:
		return s.Prompt
	case session.KindError:
		return s.Error
	case session.KindResult:
		return s.Result
	case session.KindFarewell:
		return s.Farewell
	default:
		return s.Text
	}
}
