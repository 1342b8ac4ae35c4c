package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - words
	colorGreen = lipgloss.Color("35")  // Green - success
	colorRed   = lipgloss.Color("167") // Soft red - errors
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleWord        = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim         = lipgloss.NewStyle().Foreground(colorDim)
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconArrow   = "→"
)

// prettyChain renders chain as styled words joined by dim arrows.
func prettyChain(chain []string) string {
	parts := make([]string, len(chain))
	for i, w := range chain {
		parts[i] = styleWord.Render(w)
	}
	return strings.Join(parts, " "+styleDim.Render(iconArrow)+" ")
}

// successLine prefixes msg with a green check mark.
func successLine(msg string) string {
	return styleIconSuccess.Render(iconSuccess) + " " + msg
}

// errorLine prefixes msg with a red cross.
func errorLine(msg string) string {
	return styleIconError.Render(iconError) + " " + msg
}

// detailLine indents and dims msg.
func detailLine(msg string) string {
	return "  " + styleDim.Render(msg)
}
