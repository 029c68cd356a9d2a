package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/formplay/internal/layout"
	"github.com/zhubert/formplay/internal/ui"
)

// updateSizes recalculates and applies dimensions to all UI components
func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)

	h := ctx.ContentHeight
	regions := m.layout.Resolve(m.width)
	m.schemaEditor.SetSize(regions[layout.RegionLeft].Width, h)
	m.preview.SetSize(regions[layout.RegionCenter].Width, h)
	m.uiSchemaEditor.SetSize(regions[layout.RegionRight].Width, h)
	m.leftDivider.SetHeight(h)
	m.rightDivider.SetHeight(h)

	m.form.SetWidth(regions[layout.RegionCenter].Width)
	m.refreshPreview()
}

// updateFooterContext tells the footer which bindings apply
func (m *Model) updateFooterContext() {
	focus := ui.FooterFocusEditor
	if m.focus == FocusPreview {
		focus = ui.FooterFocusPreview
	}
	m.footer.SetContext(focus, m.layout.Dragging())
}

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion

	if m.width == 0 || m.height == 0 {
		v.SetContent("Loading...")
		return v
	}

	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	m.updateFooterContext()

	regions := m.layout.Resolve(m.width)
	cell := func(kind layout.RegionKind, view string) ui.Cell {
		r := regions[kind]
		return ui.Cell{X: r.X, Width: r.Width, View: view}
	}

	body := ui.Compose(m.width, ui.GetViewContext().ContentHeight,
		cell(layout.RegionLeft, m.schemaEditor.View()),
		cell(layout.RegionLeftDivider, m.leftDivider.View()),
		cell(layout.RegionCenter, m.preview.View()),
		cell(layout.RegionRightDivider, m.rightDivider.View()),
		cell(layout.RegionRight, m.uiSchemaEditor.View()),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		body,
		m.footer.View(),
	)
}
