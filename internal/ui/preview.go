package ui

import (
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

// PreviewTitle is the title of the center pane
const PreviewTitle = "Live Preview"

// PreviewContent is everything the preview pane shows, top to bottom.
type PreviewContent struct {
	// Form is the rendered form view.
	Form string
	// Notices are parts of the documents that could not be rendered.
	Notices []string
	// Errors are inline validation messages.
	Errors []string
	// Data is the current form data as indented JSON.
	Data string
}

// Preview is the center pane: the rendered form followed by its data.
type Preview struct {
	viewport viewport.Model
	width    int
	height   int
	focused  bool
	content  PreviewContent

	hl highlightCache
}

// NewPreview creates an empty preview
func NewPreview() *Preview {
	vp := viewport.New()
	// Keys belong to the form; the preview scrolls through explicit calls
	// and the mouse wheel.
	vp.KeyMap = viewport.KeyMap{}
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return &Preview{viewport: vp}
}

// SetSize sets the pane dimensions including the title line
func (p *Preview) SetSize(width, height int) {
	p.width = max(0, width)
	p.height = max(0, height)
	p.viewport.SetWidth(p.width)
	p.viewport.SetHeight(max(0, p.height-PaneTitleHeight))
	p.refresh()
}

// SetFocused sets the focus state
func (p *Preview) SetFocused(focused bool) {
	p.focused = focused
}

// IsFocused returns the focus state
func (p *Preview) IsFocused() bool {
	return p.focused
}

// SetContent replaces what the preview shows, keeping the scroll position
func (p *Preview) SetContent(c PreviewContent) {
	p.content = c
	p.refresh()
}

// Content returns what the preview currently shows
func (p *Preview) Content() PreviewContent {
	return p.content
}

// PageUp scrolls up one page
func (p *Preview) PageUp() {
	p.viewport.PageUp()
}

// PageDown scrolls down one page
func (p *Preview) PageDown() {
	p.viewport.PageDown()
}

// Update handles mouse wheel scrolling
func (p *Preview) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

// View renders the preview
func (p *Preview) View() string {
	title := PaneTitleStyle.Render(PreviewTitle)
	if p.focused {
		title = PaneTitleFocusedStyle.Render(PreviewTitle)
	}
	title = ansi.Truncate(title, p.width, "…")
	if p.height <= PaneTitleHeight {
		return title
	}
	return title + "\n" + p.viewport.View()
}

func (p *Preview) refresh() {
	var lines []string
	if p.content.Form != "" {
		lines = append(lines, strings.Split(p.content.Form, "\n")...)
		lines = append(lines, "")
	}
	for _, n := range p.content.Notices {
		lines = append(lines, NoticeStyle.Render("⚠ "+n))
	}
	for _, e := range p.content.Errors {
		lines = append(lines, FieldErrorStyle.Render("✕ "+e))
	}
	if len(p.content.Notices)+len(p.content.Errors) > 0 {
		lines = append(lines, "")
	}

	lines = append(lines, SectionLabelStyle.Render("data"))
	if p.content.Data != "" {
		data := p.hl.get(p.content.Data, CurrentTheme().Syntax)
		lines = append(lines, strings.Split(data, "\n")...)
	}

	for i, l := range lines {
		lines[i] = ansi.Truncate(l, p.width, "")
	}
	p.viewport.SetContentLines(lines)
}
