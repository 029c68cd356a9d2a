package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Header represents the top header bar
type Header struct {
	width   int
	example string
	healthy bool
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{healthy: true}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetExample sets the name of the seed the session started from
func (h *Header) SetExample(name string) {
	h.example = name
}

// SetHealthy records whether both editors currently parse
func (h *Header) SetHealthy(healthy bool) {
	h.healthy = healthy
}

// View renders the header
func (h *Header) View() string {
	title := " formplay"
	if h.example != "" {
		title += " · " + h.example
	}

	status := "✓ valid JSON "
	if !h.healthy {
		status = "✕ parse error "
	}

	pad := h.width - ansi.StringWidth(title) - ansi.StringWidth(status)
	if pad < 1 {
		return h.renderGradient(ansi.Truncate(title, h.width, ""), h.width)
	}
	return h.renderGradient(title+strings.Repeat(" ", pad)+status, ansi.StringWidth(title)+pad)
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders the content over a primary-to-background gradient.
// Columns from statusStart on are colored by parse health.
func (h *Header) renderGradient(content string, statusStart int) string {
	if content == "" {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)

	textColor := lipgloss.Color(theme.Text)
	statusColor := lipgloss.Color(theme.Success)
	if !h.healthy {
		statusColor = lipgloss.Color(theme.Error)
	}

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(width)
		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		style := lipgloss.NewStyle().
			Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))).
			Bold(i < 9) // " formplay"

		if i >= statusStart {
			style = style.Foreground(statusColor)
		} else {
			style = style.Foreground(textColor)
		}

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
