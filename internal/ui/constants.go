// Package ui provides constants for layout calculations and configuration.
package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// PaneTitleHeight is the title line on top of every pane
	PaneTitleHeight = 1

	// MinTerminalWidth and MinTerminalHeight bound the layout from below so
	// no pane ends up with a negative size.
	MinTerminalWidth  = 20
	MinTerminalHeight = 6

	// EditorErrorMaxLines caps the wrapped error surface under an editor
	EditorErrorMaxLines = 3

	// DefaultWrapWidth is the default width for text wrapping when the pane width is unknown
	DefaultWrapWidth = 80
)

// Divider glyphs
const (
	DividerGlyph       = "│"
	DividerActiveGlyph = "┃"
)
