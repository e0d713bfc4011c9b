package shell

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Markers prefixed to result messages.
const (
	okMark   = "✅"
	failMark = "❌"
)

type styles struct {
	title lipgloss.Style
	ok    lipgloss.Style
	fail  lipgloss.Style
	dim   lipgloss.Style
}

// newStyles binds styles to w so color is only emitted when w is a terminal.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#00D4AA")),
		ok:    r.NewStyle().Foreground(lipgloss.Color("#00C832")),
		fail:  r.NewStyle().Foreground(lipgloss.Color("#FF5F56")),
		dim:   r.NewStyle().Foreground(lipgloss.Color("#aaaaaa")),
	}
}
