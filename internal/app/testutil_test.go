package app

import (
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/formplay/internal/clipboard"
	"github.com/zhubert/formplay/internal/config"
	"github.com/zhubert/formplay/internal/keys"
	"github.com/zhubert/formplay/internal/render"
)

// testConfig creates a config backed by a file in a temp dir.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadFile(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	return cfg
}

// testModel creates a test Model with the given config and an in-memory clipboard.
func testModel(t *testing.T, cfg *config.Config) *Model {
	t.Helper()
	m, err := New(cfg, Options{Version: "0.0.0-test", Clipboard: clipboard.NewMemory(nil)})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return m
}

// testModelWithSize creates a test Model and sets its size.
func testModelWithSize(t *testing.T, width, height int) *Model {
	t.Helper()
	m := testModel(t, testConfig(t))
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m
}

// keyPress creates a tea.KeyPressMsg for the given key string.
// Examples: "a", "tab", "ctrl+r", "alt+right"
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.ShiftTab:
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case keys.Backspace:
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case keys.PgUp:
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case keys.PgDown:
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case keys.CtrlL:
		return tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl}
	case keys.CtrlR:
		return tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl}
	case keys.CtrlY:
		return tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}
	case keys.AltLeft:
		return tea.KeyPressMsg{Code: tea.KeyLeft, Mod: tea.ModAlt}
	case keys.AltRight:
		return tea.KeyPressMsg{Code: tea.KeyRight, Mod: tea.ModAlt}
	case keys.AltShiftLeft:
		return tea.KeyPressMsg{Code: tea.KeyLeft, Mod: tea.ModAlt | tea.ModShift}
	case keys.AltShiftRight:
		return tea.KeyPressMsg{Code: tea.KeyRight, Mod: tea.ModAlt | tea.ModShift}
	default:
		// Regular character - for single characters, set both Code and Text
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		// Fallback for unknown keys
		return tea.KeyPressMsg{Text: key}
	}
}

// sendKeys sends a sequence of key presses to the model.
func sendKeys(m *Model, ks ...string) {
	for _, k := range ks {
		m.Update(keyPress(k))
	}
}

// click, motion and release build left-button mouse messages.
func click(x, y int) tea.MouseClickMsg {
	return tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft}
}

func motion(x, y int) tea.MouseMotionMsg {
	return tea.MouseMotionMsg{X: x, Y: y, Button: tea.MouseLeft}
}

func release(x, y int) tea.MouseReleaseMsg {
	return tea.MouseReleaseMsg{X: x, Y: y, Button: tea.MouseLeft}
}

// changeMsg builds a form change for the model's current form build.
func changeMsg(m *Model, payload any) render.ChangeMsg {
	return render.ChangeMsg{Payload: payload, Generation: m.form.Generation()}
}
