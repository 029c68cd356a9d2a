package ui

import "strings"

// Divider is a one-column gutter between two panes. It is the drag handle
// for the adjacent side pane.
type Divider struct {
	height int
	active bool
}

// NewDivider creates a divider
func NewDivider() *Divider {
	return &Divider{}
}

// SetHeight sets the divider height
func (d *Divider) SetHeight(height int) {
	d.height = max(0, height)
}

// SetActive highlights the divider while its side is being dragged
func (d *Divider) SetActive(active bool) {
	d.active = active
}

// IsActive reports whether the divider is highlighted
func (d *Divider) IsActive() bool {
	return d.active
}

// View renders the divider
func (d *Divider) View() string {
	if d.height == 0 {
		return ""
	}
	glyph := DividerStyle.Render(DividerGlyph)
	if d.active {
		glyph = DividerActiveStyle.Render(DividerActiveGlyph)
	}
	return strings.TrimSuffix(strings.Repeat(glyph+"\n", d.height), "\n")
}
