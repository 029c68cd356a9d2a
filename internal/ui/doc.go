// Package ui provides the panes and chrome of the formplay TUI.
//
// # Layout
//
//	┌────────────────────────────────────────────────────────────────┐
//	│ Header (1 line)                                                │
//	├──────────────┬─┬────────────────────────────────┬─┬────────────┤
//	│ Schema       │ │ Live Preview                   │ │ UI Schema  │
//	│ editor       │┃│ form, notices, errors, data    │┃│ editor     │
//	│ (fixed)      │ │ (flexible)                     │ │ (fixed)    │
//	├──────────────┴─┴────────────────────────────────┴─┴────────────┤
//	│ Footer (1 line)                                                │
//	└────────────────────────────────────────────────────────────────┘
//
// Column positions come from the layout controller (internal/layout); this
// package only draws. Compose places each pane view at its region and clips
// anything that overflows, so a pane never bleeds into its neighbour.
//
// # Components
//
// Editor: titled textarea for one JSON document. Focused editors take input;
// blurred ones show highlighted JSON. The parse error of the pane, if any, is
// wrapped under the text.
//
// Preview: the rendered form followed by notices, validation errors and the
// current data as highlighted JSON.
//
// Divider: one-column drag handle, highlighted during a drag.
//
// Header: app name, seed name and parse health. Footer: context key bindings,
// replaced by a flash message for a few seconds after an action.
//
// # Styles
//
// Styles are package variables derived from the current Theme. SetTheme
// regenerates them; FormTheme builds the matching huh theme for the preview.
package ui
