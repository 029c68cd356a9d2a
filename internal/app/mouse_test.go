package app

import (
	"os"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/formplay/internal/keys"
	"github.com/zhubert/formplay/internal/layout"
)

// At 120x40 with the default widths and chrome the columns are:
// left pane 1-32, left divider 33, preview 34-85, right divider 86,
// right pane 87-118. Row 0 is the header and row 39 the footer.

func TestDrag_Left(t *testing.T) {
	m := testModelWithSize(t, 120, 40)

	m.Update(click(33, 5))
	if m.layout.State() != layout.StateDraggingLeft {
		t.Fatalf("State() = %v, want dragging-left", m.layout.State())
	}
	if !m.leftDivider.IsActive() || m.rightDivider.IsActive() {
		t.Error("only the left divider should be highlighted")
	}
	if m.Focus() != FocusSchema {
		t.Errorf("pressing a divider must not move focus, got %v", m.Focus())
	}

	m.Update(motion(51, 7))
	if left, _ := m.layout.Widths(); left != 50 {
		t.Errorf("left = %d, want 50", left)
	}

	m.Update(release(51, 7))
	if m.layout.Dragging() {
		t.Error("release should end the drag")
	}
	if m.leftDivider.IsActive() {
		t.Error("divider should no longer be highlighted")
	}
	if left, right := m.config.GetWidths(); left != 50 || right != layout.DefaultRightWidth {
		t.Errorf("saved widths = (%d, %d), want (50, %d)", left, right, layout.DefaultRightWidth)
	}
	if _, err := os.Stat(m.config.FilePath()); err != nil {
		t.Errorf("widths not persisted: %v", err)
	}
}

func TestDrag_LeftClamped(t *testing.T) {
	m := testModelWithSize(t, 120, 40)

	m.Update(click(33, 5))
	m.Update(motion(200, 5))

	// avail = 120 - 4 = 116, so left may grow to 116 - 32
	if left, _ := m.layout.Widths(); left != 84 {
		t.Errorf("left = %d, want 84", left)
	}
	if out := m.RenderToString(); out == "" {
		t.Error("collapsed preview should still render")
	}

	m.Update(motion(-10, 5))
	if left, _ := m.layout.Widths(); left != 0 {
		t.Errorf("left = %d, want 0", left)
	}
}

func TestDrag_Right(t *testing.T) {
	m := testModelWithSize(t, 120, 40)

	m.Update(click(86, 5))
	if m.layout.State() != layout.StateDraggingRight {
		t.Fatalf("State() = %v, want dragging-right", m.layout.State())
	}
	if !m.rightDivider.IsActive() {
		t.Error("right divider should be highlighted")
	}

	m.Update(motion(70, 5))
	if _, right := m.layout.Widths(); right != 49 {
		t.Errorf("right = %d, want 49", right)
	}
	m.Update(release(70, 5))
}

func TestDrag_CollapseCenter(t *testing.T) {
	tests := []struct {
		name     string
		dividerX int
		pointerX int
	}{
		{"left divider", 33, 119},
		{"right divider", 86, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testModelWithSize(t, 120, 40)

			m.Update(click(tt.dividerX, 5))
			m.Update(motion(tt.pointerX, 5))

			center := m.layout.Resolve(120)[layout.RegionCenter]
			if center.Width != 0 {
				t.Fatalf("center width = %d, want 0", center.Width)
			}
			if m.form.Width() != 0 {
				t.Errorf("form width = %d, want 0", m.form.Width())
			}

			out := m.RenderToString()
			if got := strings.Count(out, "\n") + 1; got != 40 {
				t.Errorf("rendered %d lines, want 40", got)
			}

			// Keys still reach the collapsed form.
			sendKeys(m, keys.Tab)
			m.Update(keyPress("7"))
			m.Update(release(tt.pointerX, 5))
			_ = m.RenderToString()
		})
	}
}

func TestDrag_UsesCurrentWidth(t *testing.T) {
	m := testModelWithSize(t, 120, 40)

	m.Update(click(86, 5))
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m.Update(motion(80, 5))

	if _, right := m.layout.Widths(); right != 19 {
		t.Errorf("right = %d, want 19 (100 - 80 - 1)", right)
	}
}

func TestRelease_WithoutPress(t *testing.T) {
	m := testModelWithSize(t, 120, 40)

	_, cmd := m.Update(release(50, 5))

	if cmd != nil {
		t.Error("release while idle should do nothing")
	}
	if m.layout.State() != layout.StateIdle {
		t.Errorf("State() = %v, want idle", m.layout.State())
	}
	if _, err := os.Stat(m.config.FilePath()); !os.IsNotExist(err) {
		t.Error("release while idle should not save the config")
	}
}

func TestMotion_WithoutPress(t *testing.T) {
	m := testModelWithSize(t, 120, 40)

	m.Update(motion(60, 5))

	left, right := m.layout.Widths()
	if left != layout.DefaultLeftWidth || right != layout.DefaultRightWidth {
		t.Errorf("Widths() = (%d, %d), want unchanged", left, right)
	}
}

func TestClickFocus(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want Focus
	}{
		{"left pane", 10, 5, FocusSchema},
		{"preview", 60, 5, FocusPreview},
		{"right pane", 110, 5, FocusUISchema},
		{"header row ignored", 110, 0, FocusPreview},
		{"footer row ignored", 10, 39, FocusPreview},
		{"padding column ignored", 0, 5, FocusPreview},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testModelWithSize(t, 120, 40)
			sendKeys(m, keys.Tab) // start on the preview

			m.Update(click(tt.x, tt.y))

			if m.Focus() != tt.want {
				t.Errorf("Focus() = %v, want %v", m.Focus(), tt.want)
			}
		})
	}
}

func TestClick_RightButtonIgnored(t *testing.T) {
	m := testModelWithSize(t, 120, 40)

	m.Update(tea.MouseClickMsg{X: 33, Y: 5, Button: tea.MouseRight})

	if m.layout.Dragging() {
		t.Error("right button should not start a drag")
	}
}

func TestSecondPressIgnoredDuringDrag(t *testing.T) {
	m := testModelWithSize(t, 120, 40)

	m.Update(click(33, 5))
	session, _ := m.layout.Session()
	m.Update(click(86, 5))

	if m.layout.State() != layout.StateDraggingLeft {
		t.Errorf("State() = %v, want dragging-left", m.layout.State())
	}
	if got, _ := m.layout.Session(); got.ID != session.ID {
		t.Error("a second press must not start a new session")
	}
}

func TestNudge(t *testing.T) {
	tests := []struct {
		key         string
		left, right int
	}{
		{keys.AltRight, 33, 32},
		{keys.AltLeft, 31, 32},
		{keys.AltShiftLeft, 32, 33},
		{keys.AltShiftRight, 32, 31},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := testModelWithSize(t, 120, 40)
			sendKeys(m, tt.key)

			left, right := m.layout.Widths()
			if left != tt.left || right != tt.right {
				t.Errorf("Widths() = (%d, %d), want (%d, %d)", left, right, tt.left, tt.right)
			}
			if l, r := m.config.GetWidths(); l != tt.left || r != tt.right {
				t.Errorf("saved widths = (%d, %d)", l, r)
			}
		})
	}
}

func TestNudge_IgnoredWhileDragging(t *testing.T) {
	m := testModelWithSize(t, 120, 40)
	m.Update(click(33, 5))
	schema := m.schemaEditor.Value()

	sendKeys(m, keys.AltRight)

	if left, _ := m.layout.Widths(); left != layout.DefaultLeftWidth {
		t.Errorf("left = %d, want unchanged", left)
	}
	if m.schemaEditor.Value() != schema {
		t.Error("alt+right should not reach the editor either way")
	}
}

func TestResetLayout(t *testing.T) {
	m := testModelWithSize(t, 120, 40)
	m.Update(click(33, 5))
	m.Update(motion(60, 5))
	m.Update(release(60, 5))

	sendKeys(m, keys.CtrlL)

	left, right := m.layout.Widths()
	if left != layout.DefaultLeftWidth || right != layout.DefaultRightWidth {
		t.Errorf("Widths() = (%d, %d), want defaults", left, right)
	}
	if m.config.LeftWidth != 0 || m.config.RightWidth != 0 {
		t.Error("saved widths should be cleared")
	}
	if !m.footer.HasFlash() {
		t.Error("reset should flash a message")
	}
}

func TestSavedWidthsRestored(t *testing.T) {
	cfg := testConfig(t)
	cfg.SetWidths(20, 40)

	m := testModel(t, cfg)

	if left, right := m.layout.Widths(); left != 20 || right != 40 {
		t.Errorf("Widths() = (%d, %d), want (20, 40)", left, right)
	}
}

func TestMouseWheel_OutsidePreview(t *testing.T) {
	m := testModelWithSize(t, 120, 40)

	if _, cmd := m.Update(tea.MouseWheelMsg{X: 10, Y: 5, Button: tea.MouseWheelDown}); cmd != nil {
		t.Error("wheel over an editor should be ignored")
	}
}
