package ui

import (
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"
)

// Editor is a titled JSON text pane. The focused editor is a live textarea;
// a blurred one shows the same text with syntax highlighting. The current
// parse error, if any, is wrapped under the text.
type Editor struct {
	title   string
	input   textarea.Model
	width   int
	height  int
	focused bool
	errText string

	hl highlightCache
}

// NewEditor creates an editor seeded with text
func NewEditor(title, text string) *Editor {
	ti := textarea.New()
	ti.ShowLineNumbers = false
	ti.Prompt = ""
	ti.CharLimit = 0
	// Documents are free-form; neither dimension caps what can be typed.
	ti.MaxHeight = 0
	ti.MaxWidth = 0
	ti.Placeholder = "{}"
	ti.SetStyles(textarea.DefaultStyles(CurrentTheme().IsDark()))
	ti.SetValue(text)
	ti.MoveToBegin()

	e := &Editor{title: title, input: ti}
	e.SetSize(DefaultWrapWidth/2, 10)
	return e
}

// Title returns the pane title
func (e *Editor) Title() string {
	return e.title
}

// SetSize sets the pane dimensions, title and error surface included
func (e *Editor) SetSize(width, height int) {
	e.width = max(0, width)
	e.height = max(0, height)
	e.resize()
}

// SetFocused sets the focus state
func (e *Editor) SetFocused(focused bool) {
	e.focused = focused
	if focused {
		e.input.Focus()
	} else {
		e.input.Blur()
	}
}

// IsFocused returns the focus state
func (e *Editor) IsFocused() bool {
	return e.focused
}

// Value returns the full text
func (e *Editor) Value() string {
	return e.input.Value()
}

// SetValue replaces the text
func (e *Editor) SetValue(text string) {
	e.input.SetValue(text)
	e.input.MoveToBegin()
}

// SetError sets the error surface; "" hides it
func (e *Editor) SetError(msg string) {
	if msg == e.errText {
		return
	}
	e.errText = msg
	e.resize()
}

// Error returns the error surface text
func (e *Editor) Error() string {
	return e.errText
}

// Update forwards msg to the textarea. changed reports whether the text is
// different afterwards; the caller then hands the full text to the parser.
func (e *Editor) Update(msg tea.Msg) (cmd tea.Cmd, changed bool) {
	before := e.input.Value()
	e.input, cmd = e.input.Update(msg)
	return cmd, e.input.Value() != before
}

// View renders the editor
func (e *Editor) View() string {
	title := PaneTitleStyle.Render(e.title)
	if e.focused {
		title = PaneTitleFocusedStyle.Render(e.title)
	}
	lines := []string{ansi.Truncate(title, e.width, "…")}

	errLines := e.errorLines()
	bodyHeight := e.bodyHeight(len(errLines))
	if bodyHeight > 0 {
		if e.focused {
			lines = append(lines, e.input.View())
		} else {
			lines = append(lines, e.highlighted(bodyHeight)...)
		}
	}

	for _, l := range errLines {
		lines = append(lines, EditorErrorStyle.Render(l))
	}
	return strings.Join(lines, "\n")
}

// highlighted renders exactly height lines of highlighted text starting at
// the textarea's scroll offset.
func (e *Editor) highlighted(height int) []string {
	src := e.input.Value()
	all := strings.Split(e.hl.get(src, CurrentTheme().Syntax), "\n")

	start := min(e.input.ScrollYOffset(), max(0, len(all)-1))
	out := make([]string, 0, height)
	for i := start; i < len(all) && len(out) < height; i++ {
		out = append(out, ansi.Truncate(all[i], e.width, ""))
	}
	for len(out) < height {
		out = append(out, "")
	}
	return out
}

// errorLines wraps the error surface to the pane width.
func (e *Editor) errorLines() []string {
	if e.errText == "" || e.width <= 0 {
		return nil
	}
	wrapped := wordwrap.String("✕ "+e.errText, e.width)
	lines := strings.Split(wrapped, "\n")
	if len(lines) > EditorErrorMaxLines {
		lines = lines[:EditorErrorMaxLines]
		lines[EditorErrorMaxLines-1] = ansi.Truncate(lines[EditorErrorMaxLines-1], max(0, e.width-1), "") + "…"
	}
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, e.width, "")
	}
	return lines
}

func (e *Editor) bodyHeight(errLines int) int {
	return max(0, e.height-PaneTitleHeight-errLines)
}

func (e *Editor) resize() {
	e.input.SetWidth(max(1, e.width))
	e.input.SetHeight(max(1, e.bodyHeight(len(e.errorLines()))))
}
