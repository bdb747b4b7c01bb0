package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles styles, symbols and the panel border.
// Styles are bound to the renderer of the writer they print to.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending, Done lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor

	BoxUnchecked, BoxChecked string
	SymDone, SymPending      string
}

// NewTheme returns the named theme; unknown names get classic.
func NewTheme(name string, r *lipgloss.Renderer) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:         "neon",
			Title:        r.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:        r.NewStyle().Foreground(lipgloss.Color("8")),
			Accent:       r.NewStyle().Foreground(lipgloss.Color("14")),
			Success:      r.NewStyle().Foreground(lipgloss.Color("10")),
			Error:        r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:      r.NewStyle().Foreground(lipgloss.Color("11")),
			Done:         r.NewStyle().Faint(true).Strikethrough(true),
			Border:       lipgloss.RoundedBorder(),
			BorderColor:  lipgloss.Color("13"),
			BoxUnchecked: "◻",
			BoxChecked:   "◼",
			SymDone:      "✔",
			SymPending:   "•",
		}
	case "mono":
		plain := r.NewStyle()
		return Theme{
			Name:         "mono",
			Title:        plain,
			Muted:        plain,
			Accent:       plain,
			Success:      plain,
			Error:        plain,
			Pending:      plain,
			Done:         plain,
			Border:       lipgloss.ASCIIBorder(),
			BorderColor:  lipgloss.NoColor{},
			BoxUnchecked: "[ ]",
			BoxChecked:   "[x]",
			SymDone:      "x",
			SymPending:   "-",
		}
	default:
		return Theme{
			Name:         "classic",
			Title:        r.NewStyle().Bold(true),
			Muted:        r.NewStyle().Faint(true),
			Accent:       r.NewStyle().Foreground(lipgloss.Color("12")),
			Success:      r.NewStyle().Foreground(lipgloss.Color("42")),
			Error:        r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:      r.NewStyle().Foreground(lipgloss.Color("214")),
			Done:         r.NewStyle().Faint(true).Strikethrough(true),
			Border:       lipgloss.NormalBorder(),
			BorderColor:  lipgloss.Color("8"),
			BoxUnchecked: "☐",
			BoxChecked:   "☑",
			SymDone:      "✔",
			SymPending:   "•",
		}
	}
}
