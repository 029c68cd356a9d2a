package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/formplay/internal/document"
	"github.com/zhubert/formplay/internal/keys"
	"github.com/zhubert/formplay/internal/logger"
	"github.com/zhubert/formplay/internal/render"
	"github.com/zhubert/formplay/internal/ui"
)

// Update handles messages. This is the core Bubble Tea update function that routes
// all messages to appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.KeyPressMsg:
		if result, cmd, ok := m.ExecuteShortcut(msg.String()); ok {
			return result, cmd
		}
		return m, m.handleKeyPress(msg)

	case tea.PasteMsg:
		return m, m.handleEditorMsg(msg)

	case tea.MouseClickMsg:
		return m, m.handleMouseClick(msg)

	case tea.MouseMotionMsg:
		m.handleMouseMotion(msg)
		return m, nil

	case tea.MouseReleaseMsg:
		return m, m.handleMouseRelease()

	case tea.MouseWheelMsg:
		return m, m.handleMouseWheel(msg)

	case render.ChangeMsg:
		m.handleChange(msg)
		return m, nil

	case ui.FlashTickMsg:
		return m, m.handleFlashTick()
	}

	// Everything else belongs to a pane: cursor blinks for the focused
	// editor, internal field messages for the form. Each ignores what
	// isn't addressed to it.
	editorCmd := m.handleEditorMsg(msg)
	formCmd := m.form.Update(msg)
	m.refreshPreview()
	return m, tea.Batch(editorCmd, formCmd)
}

// handleKeyPress routes a key that is not a global shortcut to the focused pane
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) tea.Cmd {
	if m.focus != FocusPreview {
		return m.handleEditorMsg(msg)
	}

	switch msg.String() {
	case keys.PgUp:
		m.preview.PageUp()
		return nil
	case keys.PgDown:
		m.preview.PageDown()
		return nil
	}

	cmd := m.form.Update(msg)
	m.refreshPreview()
	return cmd
}

// handleEditorMsg feeds msg to the focused editor and, if its text changed,
// reparses it
func (m *Model) handleEditorMsg(msg tea.Msg) tea.Cmd {
	ed, origin, ok := m.focusedEditor()
	if !ok {
		return nil
	}
	cmd, changed := ed.Update(msg)
	if !changed {
		return cmd
	}
	return tea.Batch(cmd, m.applyText(origin, ed.Value()))
}

// applyText hands the full text of one editor to its source. The form only
// rebuilds when the source's document actually changed; a parse failure
// leaves the last good document in effect and shows the diagnostic instead.
func (m *Model) applyText(origin document.Origin, text string) tea.Cmd {
	changed := m.workspace.Apply(origin, text)
	m.syncErrors()
	if !changed {
		return nil
	}

	cmd := m.form.SetDocuments(
		m.workspace.Document(document.OriginSchema),
		m.workspace.Document(document.OriginUISchema),
	)
	m.refreshPreview()
	return cmd
}

// handleChange stores the data carried by a form change. Changes from a form
// build that was reset since are dropped.
func (m *Model) handleChange(msg render.ChangeMsg) {
	if msg.Generation != m.form.Generation() {
		logger.WithComponent("app").Debug("stale form change dropped",
			"generation", msg.Generation,
			"current", m.form.Generation(),
		)
		return
	}
	m.store.OnExternalChange(msg.Payload)
	m.refreshPreview()
}
