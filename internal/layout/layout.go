// Package layout tracks the widths of the two resizable side panes and turns
// divider drags into clamped widths.
//
// The screen is split into five regions: left pane, divider, center pane,
// divider, right pane. The side panes have fixed widths; the center pane
// takes whatever is left and may shrink to zero. Widths are unit-agnostic
// integers (terminal cells in the app).
//
// The controller is a small state machine:
//
//	idle --press(left)--> draggingLeft --release--> idle
//	idle --press(right)-> draggingRight --release--> idle
//
// Pointer moves are ignored while idle. During a drag every move re-reads the
// viewport width, so a terminal resize mid-drag is picked up on the next move.
package layout

import (
	"github.com/google/uuid"

	"github.com/zhubert/formplay/internal/logger"
)

// Side identifies a divider, and with it the pane it resizes.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// String returns a human-readable name for the side
func (s Side) String() string {
	switch s {
	case SideNone:
		return "none"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// State is the controller's drag state.
type State int

const (
	StateIdle State = iota
	StateDraggingLeft
	StateDraggingRight
)

// String returns a human-readable name for the state
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateDraggingLeft:
		return "DraggingLeft"
	case StateDraggingRight:
		return "DraggingRight"
	default:
		return "Unknown"
	}
}

// Side returns the side being dragged, or SideNone while idle.
func (s State) Side() Side {
	switch s {
	case StateDraggingLeft:
		return SideLeft
	case StateDraggingRight:
		return SideRight
	default:
		return SideNone
	}
}

// Chrome is the fixed horizontal overhead that never belongs to a pane.
type Chrome struct {
	LeftPadding  int `json:"left_padding"`
	RightPadding int `json:"right_padding"`
	DividerWidth int `json:"divider_width"`
}

// DefaultChrome is one column of padding on each edge and single-column
// dividers.
var DefaultChrome = Chrome{LeftPadding: 1, RightPadding: 1, DividerWidth: 1}

// Overhead is the total width taken by padding and both dividers.
func (c Chrome) Overhead() int {
	return c.LeftPadding + c.RightPadding + 2*c.DividerWidth
}

// Default pane widths in cells.
const (
	DefaultLeftWidth  = 32
	DefaultRightWidth = 32
)

// DragSession is one resize gesture, from press to release.
type DragSession struct {
	ID   string
	Side Side
}

// Controller owns the pane widths and the drag state.
type Controller struct {
	left    int
	right   int
	state   State
	chrome  Chrome
	session *DragSession
}

// New creates an idle controller. Negative widths are treated as zero.
func New(left, right int, chrome Chrome) *Controller {
	return &Controller{
		left:   max(0, left),
		right:  max(0, right),
		chrome: chrome,
	}
}

// Chrome returns the fixed overhead the controller was built with.
func (c *Controller) Chrome() Chrome { return c.chrome }

// AvailableWidth is the width shared by the three panes for a viewport.
func (c *Controller) AvailableWidth(viewport int) int {
	return max(0, viewport-c.chrome.Overhead())
}

// Widths returns the current left and right pane widths.
func (c *Controller) Widths() (left, right int) {
	return c.left, c.right
}

// State returns the current drag state.
func (c *Controller) State() State { return c.state }

// Dragging reports whether a drag session is active.
func (c *Controller) Dragging() bool { return c.state != StateIdle }

// Session returns the active drag session, if any.
func (c *Controller) Session() (DragSession, bool) {
	if c.session == nil {
		return DragSession{}, false
	}
	return *c.session, true
}

// Press starts a drag on side. It returns true when the gesture was taken by
// the controller, in which case the caller must not run its own handling for
// the press (focus change, text selection). A press while another drag is in
// progress, or on SideNone, is not taken.
func (c *Controller) Press(side Side) bool {
	if c.state != StateIdle {
		return false
	}
	switch side {
	case SideLeft:
		c.state = StateDraggingLeft
	case SideRight:
		c.state = StateDraggingRight
	default:
		return false
	}

	c.session = &DragSession{ID: uuid.New().String(), Side: side}
	logger.WithDrag(c.session.ID).Debug("drag started",
		"side", side.String(),
		"left", c.left,
		"right", c.right,
	)
	return true
}

// Move recomputes the dragged pane's width from the pointer column and the
// viewport width at the time of the move. It returns whether a width
// changed. Moves while idle are ignored.
func (c *Controller) Move(pointerX, viewport int) bool {
	avail := c.AvailableWidth(viewport)

	var changed bool
	switch c.state {
	case StateDraggingLeft:
		changed = c.setLeft(clamp(pointerX-c.chrome.LeftPadding, 0, avail-c.right))
	case StateDraggingRight:
		changed = c.setRight(clamp(viewport-pointerX-c.chrome.RightPadding, 0, avail-c.left))
	default:
		return false
	}

	if changed && c.session != nil {
		logger.WithDrag(c.session.ID).Debug("drag moved",
			"pointerX", pointerX,
			"viewport", viewport,
			"tracks", FormatTracks(c.Tracks()),
		)
	}
	return changed
}

// Release ends any drag session. Releasing while idle is a no-op and returns
// false.
func (c *Controller) Release() bool {
	if c.state == StateIdle {
		return false
	}
	if c.session != nil {
		logger.WithDrag(c.session.ID).Debug("drag ended",
			"left", c.left,
			"right", c.right,
		)
	}
	c.state = StateIdle
	c.session = nil
	return true
}

// Nudge resizes one pane by delta through the same clamp a drag uses. It
// works whether or not a drag is active.
func (c *Controller) Nudge(side Side, delta, viewport int) bool {
	avail := c.AvailableWidth(viewport)
	switch side {
	case SideLeft:
		return c.setLeft(clamp(c.left+delta, 0, avail-c.right))
	case SideRight:
		return c.setRight(clamp(c.right+delta, 0, avail-c.left))
	default:
		return false
	}
}

// SetWidths replaces both widths, e.g. to restore defaults. Negative widths
// are treated as zero; no viewport clamp is applied.
func (c *Controller) SetWidths(left, right int) {
	c.left = max(0, left)
	c.right = max(0, right)
	logger.WithComponent("layout").Debug("widths set", "left", c.left, "right", c.right)
}

func (c *Controller) setLeft(w int) bool {
	if w == c.left {
		return false
	}
	c.left = w
	return true
}

func (c *Controller) setRight(w int) bool {
	if w == c.right {
		return false
	}
	c.right = w
	return true
}

// clamp bounds v to [lo, hi]. When hi < lo the lower bound wins, so a pane
// never goes negative even if the other pane already overflows.
func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
