package ui

import (
	"strings"
	"testing"
)

func TestDivider_View(t *testing.T) {
	d := NewDivider()
	if d.View() != "" {
		t.Error("zero-height divider should render nothing")
	}

	d.SetHeight(4)
	lines := strings.Split(stripANSI(d.View()), "\n")
	if len(lines) != 4 {
		t.Fatalf("View() has %d lines, want 4", len(lines))
	}
	for _, l := range lines {
		if l != DividerGlyph {
			t.Errorf("line = %q, want %q", l, DividerGlyph)
		}
	}
}

func TestDivider_Active(t *testing.T) {
	d := NewDivider()
	d.SetHeight(2)
	d.SetActive(true)

	if !d.IsActive() {
		t.Error("IsActive() = false")
	}
	if !strings.Contains(stripANSI(d.View()), DividerActiveGlyph) {
		t.Error("active divider should use the active glyph")
	}

	d.SetActive(false)
	if strings.Contains(stripANSI(d.View()), DividerActiveGlyph) {
		t.Error("idle divider should not use the active glyph")
	}
}
