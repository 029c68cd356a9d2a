package ui

import (
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// DefaultFlashDuration is how long a flash message stays in the footer
const DefaultFlashDuration = 3 * time.Second

// flashTickInterval is how often an active flash is checked for expiry
const flashTickInterval = 500 * time.Millisecond

// FlashType selects the icon and color of a flash message
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// FlashMessage is a transient message shown in place of the key bindings
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration
func (f *FlashMessage) IsExpired() bool {
	return time.Since(f.CreatedAt) > f.Duration
}

// FlashTickMsg drives flash auto-dismissal
type FlashTickMsg time.Time

// FlashTick returns a command that fires a FlashTickMsg after the tick interval
func FlashTick() tea.Cmd {
	return tea.Tick(flashTickInterval, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FooterFocus tells the footer which pane has the keyboard
type FooterFocus int

const (
	FooterFocusEditor FooterFocus = iota
	FooterFocusPreview
)

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width        int
	focus        FooterFocus
	dragging     bool
	flashMessage *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{}
}

// SetContext updates the state the bindings depend on
func (f *Footer) SetContext(focus FooterFocus, dragging bool) {
	f.focus = focus
	f.dragging = dragging
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetFlash shows text for DefaultFlashDuration
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows text for a custom duration
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, d time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		CreatedAt: time.Now(),
		Duration:  d,
	}
}

// ClearFlash removes any flash message
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash message is showing
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// ClearIfExpired drops an expired flash and reports whether it did
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

// bindings returns the shortcuts for the current context
func (f *Footer) bindings() []KeyBinding {
	if f.dragging {
		return []KeyBinding{
			{Key: "drag", Desc: "resize"},
			{Key: "release", Desc: "done"},
		}
	}

	var bindings []KeyBinding
	if f.focus == FooterFocusPreview {
		bindings = append(bindings,
			KeyBinding{Key: "ctrl+n/p", Desc: "next/prev field"},
			KeyBinding{Key: "pgup/dn", Desc: "scroll"},
		)
	}
	return append(bindings,
		KeyBinding{Key: "tab", Desc: "switch pane"},
		KeyBinding{Key: "alt+←/→", Desc: "resize"},
		KeyBinding{Key: "ctrl+r", Desc: "reset data"},
		KeyBinding{Key: "ctrl+y", Desc: "copy data"},
		KeyBinding{Key: "ctrl+l", Desc: "reset layout"},
		KeyBinding{Key: "ctrl+c", Desc: "quit"},
	)
}

// View renders the footer
func (f *Footer) View() string {
	inner := max(0, f.width-2)

	if f.flashMessage != nil {
		icon, fg := flashDecor(f.flashMessage.Type)
		text := lipgloss.NewStyle().Foreground(fg).Render(icon + " " + f.flashMessage.Text)
		return FooterStyle.Width(f.width).Render(ansi.Truncate(text, inner, "…"))
	}

	var parts []string
	for _, b := range f.bindings() {
		parts = append(parts, FooterKeyStyle.Render(b.Key)+FooterDescStyle.Render(": "+b.Desc))
	}
	sep := "  " + lipgloss.NewStyle().Foreground(ColorBorder).Render("|") + "  "
	content := strings.Join(parts, sep)

	return FooterStyle.Width(f.width).Render(ansi.Truncate(content, inner, "…"))
}

func flashDecor(t FlashType) (string, color.Color) {
	switch t {
	case FlashError:
		return "✕", ColorError
	case FlashWarning:
		return "⚠", ColorWarning
	case FlashSuccess:
		return "✓", ColorSuccess
	default:
		return "ℹ", ColorInfo
	}
}
