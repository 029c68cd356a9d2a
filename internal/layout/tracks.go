package layout

import (
	"fmt"
	"strings"
)

// TrackKind distinguishes fixed tracks from the flexible remainder.
type TrackKind int

const (
	TrackFixed TrackKind = iota
	TrackFlex
)

// Track is one column of the five-region grid.
type Track struct {
	Kind TrackKind
	// Size is the width of a fixed track, or the minimum of a flex track.
	Size int
}

// String renders the track in CSS grid syntax.
func (t Track) String() string {
	if t.Kind == TrackFlex {
		if t.Size == 0 {
			return "minmax(0, 1fr)"
		}
		return fmt.Sprintf("minmax(%dpx, 1fr)", t.Size)
	}
	return fmt.Sprintf("%dpx", t.Size)
}

// FormatTracks joins tracks into a grid-template-columns value.
func FormatTracks(tracks []Track) string {
	parts := make([]string, len(tracks))
	for i, t := range tracks {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}

// Tracks derives the five grid tracks from the current widths:
// left, divider, flexible center (minimum 0), divider, right.
func (c *Controller) Tracks() []Track {
	return []Track{
		{Kind: TrackFixed, Size: c.left},
		{Kind: TrackFixed, Size: c.chrome.DividerWidth},
		{Kind: TrackFlex, Size: 0},
		{Kind: TrackFixed, Size: c.chrome.DividerWidth},
		{Kind: TrackFixed, Size: c.right},
	}
}

// RegionKind names one of the five regions.
type RegionKind int

const (
	RegionLeft RegionKind = iota
	RegionLeftDivider
	RegionCenter
	RegionRightDivider
	RegionRight
)

// String returns a human-readable name for the region
func (r RegionKind) String() string {
	switch r {
	case RegionLeft:
		return "left"
	case RegionLeftDivider:
		return "left-divider"
	case RegionCenter:
		return "center"
	case RegionRightDivider:
		return "right-divider"
	case RegionRight:
		return "right"
	default:
		return "unknown"
	}
}

// Region is a resolved track: a concrete column offset and width.
type Region struct {
	Kind  RegionKind
	X     int
	Width int
}

// Contains reports whether column x falls inside the region.
func (r Region) Contains(x int) bool {
	return r.Width > 0 && x >= r.X && x < r.X+r.Width
}

// Resolve lays the tracks out in a viewport. Fixed tracks keep their size;
// the center gets the remainder, never less than zero. Anything that runs
// past the viewport edge is clipped, so a region may end up narrower than
// its track or empty.
func (c *Controller) Resolve(viewport int) []Region {
	tracks := c.Tracks()
	fixed := 0
	for _, t := range tracks {
		if t.Kind == TrackFixed {
			fixed += t.Size
		}
	}
	content := max(0, viewport-c.chrome.LeftPadding-c.chrome.RightPadding)
	flex := max(0, content-fixed)

	regions := make([]Region, len(tracks))
	x := c.chrome.LeftPadding
	for i, t := range tracks {
		w := t.Size
		if t.Kind == TrackFlex {
			w = max(t.Size, flex)
		}
		regions[i] = Region{Kind: RegionKind(i), X: x, Width: clipWidth(x, w, viewport)}
		x += w
	}
	return regions
}

func clipWidth(x, w, viewport int) int {
	if x >= viewport {
		return 0
	}
	return min(w, viewport-x)
}

// HitTest returns the divider covering column x, or SideNone.
func (c *Controller) HitTest(x, viewport int) Side {
	regions := c.Resolve(viewport)
	switch {
	case regions[RegionLeftDivider].Contains(x):
		return SideLeft
	case regions[RegionRightDivider].Contains(x):
		return SideRight
	default:
		return SideNone
	}
}
