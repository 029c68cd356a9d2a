package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"

	"github.com/zhubert/formplay/internal/clipboard"
	"github.com/zhubert/formplay/internal/document"
	perrors "github.com/zhubert/formplay/internal/errors"
	"github.com/zhubert/formplay/internal/keys"
	"github.com/zhubert/formplay/internal/layout"
	"github.com/zhubert/formplay/internal/render"
	"github.com/zhubert/formplay/internal/ui"
)

func TestNew_Defaults(t *testing.T) {
	m := testModel(t, testConfig(t))

	if m.Example() != "person" {
		t.Errorf("Example() = %q, want person", m.Example())
	}
	if m.Focus() != FocusSchema {
		t.Errorf("Focus() = %v, want schema", m.Focus())
	}
	if !m.schemaEditor.IsFocused() || m.preview.IsFocused() || m.uiSchemaEditor.IsFocused() {
		t.Error("only the schema editor should be focused")
	}
	left, right := m.layout.Widths()
	if left != layout.DefaultLeftWidth || right != layout.DefaultRightWidth {
		t.Errorf("Widths() = (%d, %d), want defaults", left, right)
	}
	if diff := cmp.Diff(map[string]any{}, m.store.Value()); diff != "" {
		t.Errorf("store mismatch (-want +got):\n%s", diff)
	}
}

func TestNew_ExampleOverride(t *testing.T) {
	cfg := testConfig(t)
	m, err := New(cfg, Options{Example: "broken", Clipboard: clipboard.NewMemory(nil)})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if m.Example() != "broken" {
		t.Errorf("Example() = %q, want broken", m.Example())
	}
	if m.uiSchemaEditor.Error() == "" {
		t.Error("broken seed should show a ui schema error")
	}
	if m.workspace.Healthy() {
		t.Error("workspace should be unhealthy")
	}
}

func TestNew_UnknownExample(t *testing.T) {
	_, err := New(testConfig(t), Options{Example: "nope"})
	if !perrors.Is(err, perrors.KindNotFound) {
		t.Errorf("New() error = %v, want not found", err)
	}
}

func TestFocusCycle(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want Focus
	}{
		{"tab once", []string{keys.Tab}, FocusPreview},
		{"tab twice", []string{keys.Tab, keys.Tab}, FocusUISchema},
		{"tab wraps", []string{keys.Tab, keys.Tab, keys.Tab}, FocusSchema},
		{"shift+tab wraps backwards", []string{keys.ShiftTab}, FocusUISchema},
		{"tab then shift+tab", []string{keys.Tab, keys.ShiftTab}, FocusSchema},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testModelWithSize(t, 120, 40)
			sendKeys(m, tt.keys...)
			if m.Focus() != tt.want {
				t.Errorf("Focus() = %v, want %v", m.Focus(), tt.want)
			}
		})
	}
}

func TestKeystroke_ParseErrorKeepsLastGoodDocument(t *testing.T) {
	m := testModelWithSize(t, 120, 40)
	before := m.workspace.Document(document.OriginSchema)

	sendKeys(m, "x")

	if !strings.HasPrefix(m.schemaEditor.Value(), "x{") {
		t.Fatalf("editor text = %q, want leading x", m.schemaEditor.Value())
	}
	if m.schemaEditor.Error() == "" {
		t.Error("schema editor should show a parse error")
	}
	if m.workspace.Healthy() {
		t.Error("workspace should be unhealthy")
	}
	if diff := cmp.Diff(before.Value, m.workspace.Document(document.OriginSchema).Value); diff != "" {
		t.Errorf("schema document changed on parse failure (-want +got):\n%s", diff)
	}

	sendKeys(m, keys.Backspace)

	if m.schemaEditor.Error() != "" {
		t.Errorf("error should clear once the text parses, got %q", m.schemaEditor.Error())
	}
	if !m.workspace.Healthy() {
		t.Error("workspace should be healthy again")
	}
}

func TestApplyText_RebuildsForm(t *testing.T) {
	m := testModelWithSize(t, 120, 40)

	m.applyText(document.OriginSchema, `{"type":"object","properties":{"nickname":{"type":"string"}}}`)
	m.applyText(document.OriginUISchema, `{}`)

	if m.schemaEditor.Error() != "" {
		t.Errorf("unexpected schema error %q", m.schemaEditor.Error())
	}
	form := ansi.Strip(m.preview.Content().Form)
	if !strings.Contains(form, "Nickname") {
		t.Errorf("preview form should show the new property, got:\n%s", form)
	}
	if strings.Contains(form, "First Name") {
		t.Errorf("preview form should drop the old properties, got:\n%s", form)
	}
}

func TestApplyText_NonObjectSchema(t *testing.T) {
	m := testModelWithSize(t, 120, 40)

	m.applyText(document.OriginSchema, `{"type":"string"}`)

	if len(m.preview.Content().Notices) == 0 {
		t.Error("a non-object schema should produce a notice")
	}

	m.applyText(document.OriginSchema, `{"type":"object","properties":{"a":{"type":"string"}}}`)
	m.applyText(document.OriginUISchema, `{}`)
	if len(m.preview.Content().Notices) != 0 {
		t.Errorf("notices should clear, got %v", m.preview.Content().Notices)
	}
}

func TestChange_Envelope(t *testing.T) {
	m := testModelWithSize(t, 120, 40)

	m.Update(changeMsg(m, render.ChangeEvent{Data: map[string]any{"age": 5.0}}))

	if diff := cmp.Diff(map[string]any{"age": 5.0}, m.store.Value()); diff != "" {
		t.Errorf("store mismatch (-want +got):\n%s", diff)
	}
	if got := m.preview.Content().Data; got != "{\n  \"age\": 5\n}" {
		t.Errorf("preview data = %q", got)
	}
}

func TestChange_BareValue(t *testing.T) {
	m := testModelWithSize(t, 120, 40)

	m.Update(changeMsg(m, map[string]any{"age": 7.0}))

	if diff := cmp.Diff(map[string]any{"age": 7.0}, m.store.Value()); diff != "" {
		t.Errorf("store mismatch (-want +got):\n%s", diff)
	}
}

func TestChange_StaleGenerationDropped(t *testing.T) {
	m := testModelWithSize(t, 120, 40)
	stale := changeMsg(m, render.ChangeEvent{Data: map[string]any{"age": 1.0}})

	sendKeys(m, keys.CtrlR)
	rev := m.store.Revision()

	m.Update(stale)

	if m.store.Revision() != rev {
		t.Error("stale change should not replace the store value")
	}
	if diff := cmp.Diff(map[string]any{}, m.store.Value()); diff != "" {
		t.Errorf("store mismatch (-want +got):\n%s", diff)
	}
}

func TestResetData(t *testing.T) {
	m := testModelWithSize(t, 120, 40)
	m.Update(changeMsg(m, render.ChangeEvent{Data: map[string]any{"firstName": "Ada"}}))
	gen := m.form.Generation()

	_, cmd := m.Update(keyPress(keys.CtrlR))

	if diff := cmp.Diff(map[string]any{}, m.store.Value()); diff != "" {
		t.Errorf("store mismatch (-want +got):\n%s", diff)
	}
	if m.form.Generation() == gen {
		t.Error("reset should start a new form generation")
	}
	if cmd == nil || !m.footer.HasFlash() {
		t.Error("reset should flash a message")
	}
}

func TestCopyData(t *testing.T) {
	cb := clipboard.NewMemory(nil)
	m, err := New(testConfig(t), Options{Clipboard: cb})
	if err != nil {
		t.Fatal(err)
	}
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m.Update(changeMsg(m, render.ChangeEvent{Data: map[string]any{"lastName": "Lovelace"}}))

	sendKeys(m, keys.CtrlY)

	if got := cb.Text(); got != "{\n  \"lastName\": \"Lovelace\"\n}" {
		t.Errorf("clipboard = %q", got)
	}
	if !m.footer.HasFlash() {
		t.Error("copy should flash a message")
	}
}

func TestCopyData_ClipboardError(t *testing.T) {
	cb := clipboard.NewMemory(perrors.ClipboardUnavailable(os.ErrNotExist))
	m, err := New(testConfig(t), Options{Clipboard: cb})
	if err != nil {
		t.Fatal(err)
	}
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	_, cmd := m.Update(keyPress(keys.CtrlY))

	if cmd == nil || !m.footer.HasFlash() {
		t.Error("failed copy should flash an error")
	}
	if !strings.Contains(ansi.Strip(m.footer.View()), "Copy failed") {
		t.Errorf("footer = %q", ansi.Strip(m.footer.View()))
	}
}

func TestPreviewKeys(t *testing.T) {
	m := testModelWithSize(t, 120, 12)
	sendKeys(m, keys.Tab)
	schema := m.schemaEditor.Value()

	sendKeys(m, keys.PgDown, keys.PgUp, "q")

	if m.schemaEditor.Value() != schema {
		t.Error("keys in the preview must not reach the schema editor")
	}
	if m.Focus() != FocusPreview {
		t.Errorf("Focus() = %v, want preview", m.Focus())
	}
}

func TestFlashTick(t *testing.T) {
	m := testModelWithSize(t, 120, 40)

	m.ShowFlashInfo("hello")
	if _, cmd := m.Update(ui.FlashTickMsg{}); cmd == nil {
		t.Error("tick should continue while the flash is showing")
	}

	m.footer.SetFlashWithDuration("bye", ui.FlashInfo, time.Nanosecond)
	time.Sleep(time.Millisecond)
	if _, cmd := m.Update(ui.FlashTickMsg{}); cmd != nil {
		t.Error("tick should stop once the flash expired")
	}
	if m.footer.HasFlash() {
		t.Error("expired flash should be cleared")
	}
}

func TestSaveConfigOrFlash_Success(t *testing.T) {
	m := testModelWithSize(t, 120, 40)

	if cmd := m.saveConfigOrFlash(); cmd != nil {
		t.Error("expected nil cmd on successful save, got non-nil")
	}
	if _, err := os.Stat(m.config.FilePath()); err != nil {
		t.Errorf("config file not written: %v", err)
	}
}

func TestSaveConfigOrFlash_Error(t *testing.T) {
	m := testModelWithSize(t, 120, 40)

	// A regular file where the config directory should be
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}
	m.config.SetFilePath(filepath.Join(blocker, "config.json"))

	if cmd := m.saveConfigOrFlash(); cmd == nil {
		t.Error("expected non-nil cmd on failed save, got nil")
	}
}

func TestQuit(t *testing.T) {
	m := testModelWithSize(t, 120, 40)
	m.Update(click(33, 5))

	_, cmd := m.Update(keyPress(keys.CtrlC))

	if cmd == nil {
		t.Fatal("ctrl+c should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}
	if m.layout.Dragging() {
		t.Error("quitting should end the drag")
	}
}

func TestView(t *testing.T) {
	m := testModel(t, testConfig(t))
	if got := m.RenderToString(); got != "Loading..." {
		t.Errorf("unsized view = %q, want Loading...", got)
	}

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	v := m.View()
	if !v.AltScreen || v.MouseMode != tea.MouseModeCellMotion {
		t.Error("view should use the alt screen with cell motion mouse mode")
	}

	out := ansi.Strip(m.RenderToString())
	for _, want := range []string{"formplay", SchemaTitle, ui.PreviewTitle, UISchemaTitle, "data"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
	lines := strings.Split(out, "\n")
	if len(lines) != 30 {
		t.Errorf("view has %d lines, want 30", len(lines))
	}
	for i, l := range lines {
		if w := ansi.StringWidth(l); w > 120 {
			t.Errorf("line %d is %d columns wide", i, w)
		}
	}
}

func TestFocus_String(t *testing.T) {
	tests := []struct {
		f    Focus
		want string
	}{
		{FocusSchema, "schema"},
		{FocusPreview, "preview"},
		{FocusUISchema, "uischema"},
		{Focus(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("Focus(%d).String() = %q, want %q", tt.f, got, tt.want)
		}
	}
}
