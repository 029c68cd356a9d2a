package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/formplay/internal/keys"
	"github.com/zhubert/formplay/internal/layout"
	"github.com/zhubert/formplay/internal/logger"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for all global shortcuts.
type Shortcut struct {
	Key         string                              // The key binding (e.g., "ctrl+r")
	Description string                              // Human-readable description
	Category    string                              // Section for listings
	Handler     func(m *Model) (tea.Model, tea.Cmd) // Action to perform
	Condition   func(m *Model) bool                 // Optional extra condition
}

// Categories for organizing shortcuts
const (
	CategoryNavigation = "Navigation"
	CategoryData       = "Form Data"
	CategoryLayout     = "Layout"
	CategoryGeneral    = "General"
)

// nudgeStep is how many columns one keyboard resize moves a divider
const nudgeStep = 1

// ShortcutRegistry is the central registry of global shortcuts. Keys not
// listed here go to the focused pane.
var ShortcutRegistry = []Shortcut{
	// Navigation
	{
		Key:         keys.Tab,
		Description: "Focus next pane",
		Category:    CategoryNavigation,
		Handler:     shortcutFocusNext,
	},
	{
		Key:         keys.ShiftTab,
		Description: "Focus previous pane",
		Category:    CategoryNavigation,
		Handler:     shortcutFocusPrev,
	},

	// Form data
	{
		Key:         keys.CtrlR,
		Description: "Reset form data",
		Category:    CategoryData,
		Handler:     shortcutResetData,
	},
	{
		Key:         keys.CtrlY,
		Description: "Copy form data as JSON",
		Category:    CategoryData,
		Handler:     shortcutCopyData,
	},

	// Layout
	{
		Key:         keys.AltLeft,
		Description: "Shrink schema pane",
		Category:    CategoryLayout,
		Handler:     nudge(layout.SideLeft, -nudgeStep),
		Condition:   notDragging,
	},
	{
		Key:         keys.AltRight,
		Description: "Grow schema pane",
		Category:    CategoryLayout,
		Handler:     nudge(layout.SideLeft, nudgeStep),
		Condition:   notDragging,
	},
	{
		Key:         keys.AltShiftLeft,
		Description: "Grow ui schema pane",
		Category:    CategoryLayout,
		Handler:     nudge(layout.SideRight, nudgeStep),
		Condition:   notDragging,
	},
	{
		Key:         keys.AltShiftRight,
		Description: "Shrink ui schema pane",
		Category:    CategoryLayout,
		Handler:     nudge(layout.SideRight, -nudgeStep),
		Condition:   notDragging,
	},
	{
		Key:         keys.CtrlL,
		Description: "Restore default pane widths",
		Category:    CategoryLayout,
		Handler:     shortcutResetLayout,
		Condition:   notDragging,
	},

	// General
	{
		Key:         keys.CtrlC,
		Description: "Quit",
		Category:    CategoryGeneral,
		Handler:     shortcutQuit,
	},
}

// ExecuteShortcut finds and executes a shortcut by key.
// Returns (model, cmd, true) if the shortcut was found and executed.
// Returns (model, nil, false) if the shortcut was not found or its condition failed.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	for _, s := range ShortcutRegistry {
		if s.Key != key {
			continue
		}
		if s.Condition != nil && !s.Condition(m) {
			logger.WithComponent("app").Debug("shortcut condition failed", "key", key)
			return m, nil, false
		}
		result, cmd := s.Handler(m)
		return result, cmd, true
	}
	return m, nil, false
}

func notDragging(m *Model) bool {
	return !m.layout.Dragging()
}

func shortcutFocusNext(m *Model) (tea.Model, tea.Cmd) {
	m.cycleFocus(1)
	return m, nil
}

func shortcutFocusPrev(m *Model) (tea.Model, tea.Cmd) {
	m.cycleFocus(-1)
	return m, nil
}

func shortcutResetData(m *Model) (tea.Model, tea.Cmd) {
	m.store.Reset()
	m.form.Reset(m.store.Value())
	m.refreshPreview()
	return m, m.ShowFlashInfo("Form data reset")
}

func shortcutCopyData(m *Model) (tea.Model, tea.Cmd) {
	data, err := m.store.JSON(true)
	if err != nil {
		return m, m.ShowFlashError("Failed to encode form data: " + err.Error())
	}
	if err := m.clipboard.WriteText(data); err != nil {
		logger.WithComponent("app").Warn("copy failed", "error", err)
		return m, m.ShowFlashError("Copy failed: " + err.Error())
	}
	return m, m.ShowFlashSuccess("Copied form data to clipboard")
}

// nudge returns a handler that resizes side by delta columns
func nudge(side layout.Side, delta int) func(m *Model) (tea.Model, tea.Cmd) {
	return func(m *Model) (tea.Model, tea.Cmd) {
		if !m.layout.Nudge(side, delta, m.width) {
			return m, nil
		}
		m.updateSizes()
		return m, m.saveWidths()
	}
}

func shortcutResetLayout(m *Model) (tea.Model, tea.Cmd) {
	m.layout.SetWidths(layout.DefaultLeftWidth, layout.DefaultRightWidth)
	m.config.ClearWidths()
	m.updateSizes()
	if cmd := m.saveConfigOrFlash(); cmd != nil {
		return m, cmd
	}
	return m, m.ShowFlashInfo("Pane widths restored")
}

func shortcutQuit(m *Model) (tea.Model, tea.Cmd) {
	m.Close()
	return m, tea.Quit
}
