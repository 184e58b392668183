// Package preview computes where the hover preview of a deck slot renders so it
// never overflows the viewport.
package preview

import (
	"strconv"

	"github.com/KirkDiggler/rpg-deck/internal/entities/card"
)

// Placement constants
const (
	// Gap is the horizontal distance between the slot and its preview
	Gap = 10.0

	// MaxHeightRatio caps the preview height relative to the viewport
	MaxHeightRatio = 0.8

	// ZIndex keeps the preview above the sheet
	ZIndex = 1000
)

// Side says which horizontal edge of the preview is anchored
type Side string

// Anchor sides
const (
	SideNone  Side = ""
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Placement is a viewport-fixed anchor rectangle for a preview. The anchored
// edge is an offset from the matching viewport edge; the other edge is auto.
type Placement struct {
	Side      Side
	Top       float64
	Offset    float64
	MaxHeight float64
}

// Empty reports whether there is nothing to render
func (p Placement) Empty() bool {
	return p.Side == SideNone
}

// Left returns the left offset, false when the left edge is auto
func (p Placement) Left() (float64, bool) {
	return p.Offset, p.Side == SideLeft
}

// Right returns the right offset, false when the right edge is auto
func (p Placement) Right() (float64, bool) {
	return p.Offset, p.Side == SideRight
}

// Place anchors the preview of a slot with the given bounds. Slots in the right
// half of the viewport grow their preview leftward, all others rightward. A
// nil bounds means the slot was not measured yet and yields an empty placement.
func Place(bounds *card.Rect, vp card.Viewport) Placement {
	if bounds == nil {
		return Placement{}
	}

	p := Placement{
		Top:       bounds.Top,
		MaxHeight: vp.Height * MaxHeightRatio,
	}

	if bounds.Left > vp.Width/2 {
		p.Side = SideRight
		p.Offset = vp.Width - bounds.Left + Gap
	} else {
		p.Side = SideLeft
		p.Offset = bounds.Right + Gap
	}

	return p
}

// CSS renders the placement as inline style properties. An empty placement
// renders no properties.
func (p Placement) CSS() map[string]string {
	if p.Empty() {
		return map[string]string{}
	}

	style := map[string]string{
		"position":   "fixed",
		"top":        px(p.Top),
		"left":       "auto",
		"right":      "auto",
		"max-height": strconv.Itoa(int(MaxHeightRatio*100)) + "vh",
		"overflow-y": "auto",
		"z-index":    strconv.Itoa(ZIndex),
	}
	style[string(p.Side)] = px(p.Offset)

	return style
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
