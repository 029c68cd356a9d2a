package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette, regenerated from the current theme by SetTheme
var (
	ColorPrimary     color.Color = lipgloss.Color("#7C3AED")
	ColorSecondary   color.Color = lipgloss.Color("#06B6D4")
	ColorMuted       color.Color = lipgloss.Color("#6B7280")
	ColorBorder      color.Color = lipgloss.Color("#374151")
	ColorBorderFocus color.Color = lipgloss.Color("#7C3AED")
	ColorBgSelected  color.Color = lipgloss.Color("#7C3AED")
	ColorBg          color.Color = lipgloss.Color("#1F2937")
	ColorText        color.Color = lipgloss.Color("#F9FAFB")
	ColorTextMuted   color.Color = lipgloss.Color("#B0B8C4")
	ColorTextInverse color.Color = lipgloss.Color("#1F2937")
	ColorWarning     color.Color = lipgloss.Color("#F59E0B")
	ColorInfo        color.Color = lipgloss.Color("#06B6D4")
	ColorError       color.Color = lipgloss.Color("#EF4444")
	ColorSuccess     color.Color = lipgloss.Color("#10B981")
)

// Footer styles
var (
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style
)

// Pane styles
var (
	PaneTitleStyle        lipgloss.Style
	PaneTitleFocusedStyle lipgloss.Style

	// EditorErrorStyle renders the error surface under an editor.
	EditorErrorStyle lipgloss.Style

	NoticeStyle     lipgloss.Style
	FieldErrorStyle lipgloss.Style

	// SectionLabelStyle titles the data block of the preview.
	SectionLabelStyle lipgloss.Style
)

// Divider styles
var (
	DividerStyle       lipgloss.Style
	DividerActiveStyle lipgloss.Style
)

// Status styles
var (
	StatusOKStyle    lipgloss.Style
	StatusErrorStyle lipgloss.Style
)

func init() {
	buildStyles()
}

// buildStyles derives every style from the color variables.
func buildStyles() {
	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	PaneTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorTextMuted)

	PaneTitleFocusedStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorBorderFocus).
		Underline(true)

	EditorErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)

	NoticeStyle = lipgloss.NewStyle().
		Foreground(ColorWarning).
		Italic(true)

	FieldErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)

	SectionLabelStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)

	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorBorder)

	DividerActiveStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorBgSelected)

	StatusOKStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)
}
