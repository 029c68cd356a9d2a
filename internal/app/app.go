// Package app wires the formplay panes into one Bubble Tea program.
//
// The Model owns every piece of state: the two document sources, the form
// data store, the layout controller and the rendered form. Panes in
// internal/ui only draw what the Model hands them.
package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/formplay/internal/clipboard"
	"github.com/zhubert/formplay/internal/config"
	"github.com/zhubert/formplay/internal/document"
	"github.com/zhubert/formplay/internal/examples"
	"github.com/zhubert/formplay/internal/formdata"
	"github.com/zhubert/formplay/internal/layout"
	"github.com/zhubert/formplay/internal/logger"
	"github.com/zhubert/formplay/internal/render"
	"github.com/zhubert/formplay/internal/ui"
)

// Pane titles
const (
	SchemaTitle   = "Schema"
	UISchemaTitle = "UI Schema"
)

// Focus represents which pane is focused
type Focus int

const (
	FocusSchema Focus = iota
	FocusPreview
	FocusUISchema
)

// focusRing is the tab order, left to right on screen.
var focusRing = []Focus{FocusSchema, FocusPreview, FocusUISchema}

// String returns a human-readable name for the focus
func (f Focus) String() string {
	switch f {
	case FocusSchema:
		return "schema"
	case FocusPreview:
		return "preview"
	case FocusUISchema:
		return "uischema"
	default:
		return "unknown"
	}
}

// Options configure a new Model. Zero values fall back to the config.
type Options struct {
	Version   string
	Example   string           // seed to start from instead of the configured one
	Theme     string           // theme for this run only; not written to config
	Clipboard clipboard.Writer // defaults to the system clipboard
}

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string
	example string

	header         *ui.Header
	footer         *ui.Footer
	schemaEditor   *ui.Editor
	uiSchemaEditor *ui.Editor
	preview        *ui.Preview
	leftDivider    *ui.Divider
	rightDivider   *ui.Divider

	workspace *document.Workspace
	store     *formdata.Store
	form      *render.Form
	layout    *layout.Controller
	clipboard clipboard.Writer

	focus  Focus
	width  int
	height int
}

// New creates the app model seeded with an example.
func New(cfg *config.Config, opts Options) (*Model, error) {
	theme := opts.Theme
	if theme == "" {
		theme = cfg.GetTheme()
	}
	if theme != "" {
		ui.SetThemeByName(theme)
	}

	name := opts.Example
	if name == "" {
		name = cfg.GetExample()
	}
	ex, err := examples.Get(name)
	if err != nil {
		return nil, err
	}

	left, right := cfg.GetWidths()
	m := &Model{
		config:         cfg,
		version:        opts.Version,
		example:        ex.Name,
		header:         ui.NewHeader(),
		footer:         ui.NewFooter(),
		schemaEditor:   ui.NewEditor(SchemaTitle, ex.Schema),
		uiSchemaEditor: ui.NewEditor(UISchemaTitle, ex.UISchema),
		preview:        ui.NewPreview(),
		leftDivider:    ui.NewDivider(),
		rightDivider:   ui.NewDivider(),
		workspace:      document.NewWorkspace(ex.Schema, ex.UISchema),
		store:          formdata.New(),
		layout:         layout.New(left, right, cfg.GetChrome()),
		clipboard:      opts.Clipboard,
	}
	if m.clipboard == nil {
		m.clipboard = clipboard.System
	}

	m.form = render.NewForm(render.Input{
		Schema:    m.workspace.Document(document.OriginSchema),
		UISchema:  m.workspace.Document(document.OriginUISchema),
		Data:      m.store.Value(),
		Renderers: render.DefaultRenderers(),
	})
	m.form.SetTheme(ui.FormTheme())

	m.header.SetExample(ex.Name)
	m.syncErrors()
	m.setFocus(FocusSchema)
	m.refreshPreview()

	logger.WithComponent("app").Info("model created",
		"example", ex.Name,
		"theme", string(ui.CurrentThemeName()),
		"left", left,
		"right", right,
	)
	return m, nil
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Close ends any drag in progress. It is called when the program exits so a
// drag interrupted by quitting does not leave the controller mid-gesture.
func (m *Model) Close() {
	if m.layout.Release() {
		m.syncDividers()
	}
}

// Focus returns the focused pane
func (m *Model) Focus() Focus {
	return m.focus
}

// Example returns the name of the seed the session started from
func (m *Model) Example() string {
	return m.example
}

// setFocus moves focus to f and updates every pane's focus state
func (m *Model) setFocus(f Focus) {
	if m.focus != f {
		logger.WithComponent("app").Debug("focus changed", "from", m.focus.String(), "to", f.String())
	}
	m.focus = f
	m.schemaEditor.SetFocused(f == FocusSchema)
	m.preview.SetFocused(f == FocusPreview)
	m.uiSchemaEditor.SetFocused(f == FocusUISchema)
}

// cycleFocus moves focus by step along the ring, wrapping at either end
func (m *Model) cycleFocus(step int) {
	idx := 0
	for i, f := range focusRing {
		if f == m.focus {
			idx = i
			break
		}
	}
	n := len(focusRing)
	m.setFocus(focusRing[((idx+step)%n+n)%n])
}

// focusedEditor returns the focused editor and its document origin
func (m *Model) focusedEditor() (*ui.Editor, document.Origin, bool) {
	switch m.focus {
	case FocusSchema:
		return m.schemaEditor, document.OriginSchema, true
	case FocusUISchema:
		return m.uiSchemaEditor, document.OriginUISchema, true
	default:
		return nil, 0, false
	}
}

// syncErrors copies each source's diagnostic to its editor and the overall
// parse health to the header
func (m *Model) syncErrors() {
	m.schemaEditor.SetError(m.workspace.Err(document.OriginSchema))
	m.uiSchemaEditor.SetError(m.workspace.Err(document.OriginUISchema))
	m.header.SetHealthy(m.workspace.Healthy())
}

// refreshPreview redraws the preview from the form and the data store
func (m *Model) refreshPreview() {
	data, err := m.store.JSON(true)
	if err != nil {
		logger.WithComponent("app").Warn("failed to encode form data", "error", err)
		data = ""
	}

	var errs []string
	for _, e := range m.form.Errors() {
		errs = append(errs, e.String())
	}

	m.preview.SetContent(ui.PreviewContent{
		Form:    m.form.View(),
		Notices: m.form.Notices(),
		Errors:  errs,
		Data:    data,
	})
}

// syncDividers highlights the divider being dragged
func (m *Model) syncDividers() {
	state := m.layout.State()
	m.leftDivider.SetActive(state == layout.StateDraggingLeft)
	m.rightDivider.SetActive(state == layout.StateDraggingRight)
}

// saveConfigOrFlash saves the config, returning a flash command on failure
func (m *Model) saveConfigOrFlash() tea.Cmd {
	if err := m.config.Save(); err != nil {
		logger.WithComponent("app").Error("failed to save config", "error", err)
		return m.ShowFlashError("Failed to save config: " + err.Error())
	}
	return nil
}

// saveWidths records the current pane widths in the config
func (m *Model) saveWidths() tea.Cmd {
	left, right := m.layout.Widths()
	m.config.SetWidths(left, right)
	return m.saveConfigOrFlash()
}
