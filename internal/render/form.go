package render

import (
	"bytes"
	"fmt"
	"reflect"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/formplay/internal/document"
	"github.com/zhubert/formplay/internal/keys"
	"github.com/zhubert/formplay/internal/logger"
)

// DefaultWidth is the form width before the first resize.
const DefaultWidth = 40

// MinWidth is the narrowest pane the fields are drawn in. Below it View
// renders nothing.
const MinWidth = 16

// inputChrome is the room an input needs around its placeholder for the
// prompt, cursor and field padding.
const inputChrome = 8

// Form is the rendered form for one Input.
type Form struct {
	input Input
	props []Property

	huh      *huh.Form
	bindings []*binding

	// base carries data keys that no control is bound to; they pass
	// through edits untouched.
	base map[string]any
	last any
	errs []FieldError

	notices    []string
	generation uint64
	width      int
	minWidth   int
	theme      huh.Theme
}

// NewForm builds a form for in.
func NewForm(in Input) *Form {
	if in.Renderers == nil {
		in.Renderers = DefaultRenderers()
	}
	f := &Form{input: in, width: DefaultWidth, minWidth: MinWidth, last: in.Data}
	f.rebuild(in.Data)
	return f
}

// SetDocuments swaps in new schema and UI schema documents, keeping the
// current data. Identical documents are a no-op. The returned command
// reports a ChangeMsg when the new controls change the data.
func (f *Form) SetDocuments(schema, uiSchema document.Document) tea.Cmd {
	if bytes.Equal(schema.Raw, f.input.Schema.Raw) && bytes.Equal(uiSchema.Raw, f.input.UISchema.Raw) {
		return nil
	}
	f.input.Schema = schema
	f.input.UISchema = uiSchema
	f.rebuild(f.last)
	return f.emit()
}

// Reset rebuilds the form around data, typically after the data store was
// cleared. Change messages from before the reset become stale.
func (f *Form) Reset(data any) {
	f.generation++
	f.input.Data = data
	f.last = data
	f.rebuild(data)
}

// Generation identifies the current reset epoch.
func (f *Form) Generation() uint64 { return f.generation }

// Errors returns the current inline validation errors.
func (f *Form) Errors() []FieldError { return f.errs }

// Notices returns messages about parts of the documents that could not be
// rendered.
func (f *Form) Notices() []string { return f.notices }

// Empty reports whether there are no controls to show.
func (f *Form) Empty() bool { return f.huh == nil }

// SetWidth sets the width of the pane the fields are rendered in. The pane
// may collapse to zero; huh itself never sees less than the widest
// placeholder needs and the preview clips what overflows.
func (f *Form) SetWidth(width int) {
	f.width = max(0, width)
	if f.huh != nil {
		f.huh = f.huh.WithWidth(f.layoutWidth())
	}
}

// Width returns the pane width last set.
func (f *Form) Width() int { return f.width }

func (f *Form) layoutWidth() int {
	return max(f.width, f.minWidth)
}

// SetTheme sets the huh theme used for the fields.
func (f *Form) SetTheme(theme huh.Theme) {
	f.theme = theme
	if f.huh != nil && theme != nil {
		f.huh = f.huh.WithTheme(theme)
	}
}

// Update forwards msg to the fields. The returned command carries a
// ChangeMsg when the data changed.
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	if f.huh == nil {
		return nil
	}

	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case keys.Escape:
			return nil
		case keys.CtrlN:
			msg = tea.KeyPressMsg{Code: tea.KeyTab}
		case keys.CtrlP:
			msg = tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
		}
	}

	m, cmd := f.huh.Update(msg)
	f.huh = m.(*huh.Form)

	if f.huh.State != huh.StateNormal {
		// Submitting the last field ends a huh form; start over at the top
		// with the values entered so far.
		f.rebuild(f.collect())
		cmd = nil
	}
	return tea.Batch(cmd, f.emit())
}

// View renders the fields, or nothing when the pane is narrower than
// MinWidth.
func (f *Form) View() string {
	if f.huh == nil || f.width < MinWidth {
		return ""
	}
	return f.huh.View()
}

// emit compares the current data with what was last reported.
func (f *Form) emit() tea.Cmd {
	data := f.collect()
	if reflect.DeepEqual(data, f.last) {
		return nil
	}
	f.last = data

	event := ChangeEvent{Data: data, Errors: f.errs}
	gen := f.generation
	return func() tea.Msg {
		return ChangeMsg{Payload: event, Generation: gen}
	}
}

// collect builds the data object from the base data and every binding, and
// refreshes the validation errors.
func (f *Form) collect() any {
	out := copyMap(f.base)
	var errs []FieldError
	for _, b := range f.bindings {
		v, present, _ := b.value()
		if present {
			out[b.name] = v
		} else {
			delete(out, b.name)
		}
		for _, msg := range b.errors() {
			errs = append(errs, FieldError{Path: "/" + b.name, Message: msg})
		}
	}
	f.errs = errs
	return out
}

func (f *Form) rebuild(data any) {
	f.huh = nil
	f.bindings = nil
	f.notices = nil
	f.props = nil
	f.minWidth = MinWidth

	f.base, _ = data.(map[string]any)
	if f.base == nil {
		f.base = map[string]any{}
		if data != nil {
			f.notices = append(f.notices, "Data is not an object; starting from {}")
		}
	}

	schema, err := loadSchema(f.input.Schema)
	if err != nil {
		f.notices = append(f.notices, err.Error())
	} else {
		if schema.Type != "" && schema.Type != "object" {
			f.notices = append(f.notices, fmt.Sprintf("Only object schemas have controls (type is %q)", schema.Type))
		}
		f.props = properties(schema)
	}

	root, ok := parseUISchema(f.input.UISchema.Value)
	if !ok {
		root = defaultLayout(f.props)
	}
	sections, notices := flatten(root)
	f.notices = append(f.notices, notices...)

	var groups []*huh.Group
	byName := make(map[string]*binding)
	for _, sec := range sections {
		var fields []huh.Field
		for _, el := range sec.controls {
			if field := f.buildControl(el, byName); field != nil {
				fields = append(fields, field)
			}
		}
		if len(fields) == 0 {
			continue
		}
		group := huh.NewGroup(fields...)
		if sec.title != "" {
			group = group.Title(sec.title)
		}
		groups = append(groups, group)
	}

	if len(groups) > 0 {
		form := huh.NewForm(groups...).
			WithShowHelp(false).
			WithWidth(f.layoutWidth()).
			WithLayout(huh.LayoutStack)
		if f.theme != nil {
			form = form.WithTheme(f.theme)
		}
		form.Init()
		f.huh = form
	}

	f.collect()
	logger.WithComponent("render").Debug("form rebuilt",
		"groups", len(groups),
		"bindings", len(f.bindings),
		"notices", len(f.notices),
		"minWidth", f.minWidth,
		"generation", f.generation,
	)
}

func (f *Form) buildControl(el *Element, byName map[string]*binding) huh.Field {
	name, ok := el.Property()
	if !ok {
		f.notices = append(f.notices, fmt.Sprintf("No applicable renderer found for scope %q", el.Scope))
		return nil
	}
	prop, ok := lookup(f.props, name)
	if !ok {
		f.notices = append(f.notices, fmt.Sprintf("%q is not a property of the schema", name))
		return nil
	}

	ctl := Control{Element: el, Property: prop}
	r, ok := f.input.Renderers.find(ctl)
	if !ok {
		f.notices = append(f.notices, fmt.Sprintf("No applicable renderer found for %q", name))
		return nil
	}

	b, seen := byName[name]
	if !seen || b.kind != r.kind {
		b = newBinding(r.kind, prop, f.base)
		byName[name] = b
		f.bindings = append(f.bindings, b)
	}
	f.minWidth = max(f.minWidth, placeholderWidth(ctl)+inputChrome)
	return r.build(ctl, b)
}

// placeholderWidth is the widest placeholder any renderer may give ctl.
func placeholderWidth(ctl Control) int {
	return max(ansi.StringWidth(ctl.placeholder()), ansi.StringWidth(schemaType(ctl.Property.Schema)))
}

func copyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
