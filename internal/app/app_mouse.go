package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/formplay/internal/layout"
	"github.com/zhubert/formplay/internal/ui"
)

// inBody reports whether row y is between the header and the footer
func (m *Model) inBody(y int) bool {
	ctx := ui.GetViewContext()
	return y >= ctx.HeaderHeight && y < ctx.HeaderHeight+ctx.ContentHeight
}

// regionAt returns the layout region covering column x
func (m *Model) regionAt(x int) (layout.Region, bool) {
	for _, r := range m.layout.Resolve(m.width) {
		if r.Contains(x) {
			return r, true
		}
	}
	return layout.Region{}, false
}

// handleMouseClick starts a drag when a divider is pressed; any other left
// click focuses the pane under the pointer
func (m *Model) handleMouseClick(msg tea.MouseClickMsg) tea.Cmd {
	if msg.Button != tea.MouseLeft || !m.inBody(msg.Y) {
		return nil
	}

	if m.layout.Press(m.layout.HitTest(msg.X, m.width)) {
		// The drag owns this press: no focus change
		m.syncDividers()
		return nil
	}

	r, ok := m.regionAt(msg.X)
	if !ok {
		return nil
	}
	switch r.Kind {
	case layout.RegionLeft:
		m.setFocus(FocusSchema)
	case layout.RegionCenter:
		m.setFocus(FocusPreview)
	case layout.RegionRight:
		m.setFocus(FocusUISchema)
	}
	return nil
}

// handleMouseMotion follows the pointer during a drag. The terminal width is
// read on every move so a resize mid-drag clamps against the new size.
func (m *Model) handleMouseMotion(msg tea.MouseMotionMsg) {
	if !m.layout.Dragging() {
		return
	}
	if m.layout.Move(msg.X, m.width) {
		m.updateSizes()
	}
}

// handleMouseRelease ends a drag and persists the resulting widths
func (m *Model) handleMouseRelease() tea.Cmd {
	if !m.layout.Release() {
		return nil
	}
	m.syncDividers()
	return m.saveWidths()
}

// handleMouseWheel scrolls the preview when the pointer is over it
func (m *Model) handleMouseWheel(msg tea.MouseWheelMsg) tea.Cmd {
	r, ok := m.regionAt(msg.X)
	if !ok || r.Kind != layout.RegionCenter {
		return nil
	}
	return m.preview.Update(msg)
}
