package anchor

import (
	"math"

	"github.com/atomicstack/aria-primitives/internal/dom"
)

// Position is a resolved floating element origin.
type Position struct {
	X, Y      float64
	Placement Placement
}

// Compute places a floating box of floating's size next to anchor inside
// viewport. With flip set, the opposite side is adopted only when it
// overflows the main axis strictly less than the requested side. Both
// coordinates are then clamped to [0, viewport-floating].
func Compute(anchor, floating dom.Rect, viewport dom.Size, placement Placement, offset float64, flip bool) Position {
	placement = placement.normalized()
	pos := place(anchor, floating, placement, offset)
	if flip {
		if over := overflow(pos, floating, viewport); over > 0 {
			alt := place(anchor, floating, placement.Opposite(), offset)
			if overflow(alt, floating, viewport) < over {
				pos = alt
			}
		}
	}
	pos.X = clamp(pos.X, viewport.Width-floating.Width)
	pos.Y = clamp(pos.Y, viewport.Height-floating.Height)
	return pos
}

func place(a, f dom.Rect, p Placement, offset float64) Position {
	pos := Position{Placement: p}
	switch p.Side {
	case SideTop:
		pos.Y = a.Y - offset - f.Height
	case SideBottom:
		pos.Y = a.Bottom() + offset
	case SideLeft:
		pos.X = a.X - offset - f.Width
	case SideRight:
		pos.X = a.Right() + offset
	}
	if p.Vertical() {
		pos.X = align(a.X, a.Width, f.Width, p.Align)
	} else {
		pos.Y = align(a.Y, a.Height, f.Height, p.Align)
	}
	return pos
}

func align(start, anchorSize, floatingSize float64, a Align) float64 {
	switch a {
	case AlignStart:
		return start
	case AlignEnd:
		return start + anchorSize - floatingSize
	default:
		return start + anchorSize/2 - floatingSize/2
	}
}

// overflow measures how far pos spills out of the viewport along the
// placement's main axis.
func overflow(pos Position, f dom.Rect, vp dom.Size) float64 {
	if pos.Placement.Vertical() {
		return math.Max(0, -pos.Y) + math.Max(0, pos.Y+f.Height-vp.Height)
	}
	return math.Max(0, -pos.X) + math.Max(0, pos.X+f.Width-vp.Width)
}

func clamp(v, limit float64) float64 {
	return math.Min(math.Max(v, 0), math.Max(0, limit))
}
