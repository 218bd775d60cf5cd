package anchor

import (
	"fmt"
	"strings"
)

// Side is the edge of the anchor the floating element sits against.
type Side string

const (
	SideTop    Side = "top"
	SideBottom Side = "bottom"
	SideLeft   Side = "left"
	SideRight  Side = "right"
)

// Align positions the floating element along the anchor's cross axis.
type Align string

const (
	AlignStart  Align = "start"
	AlignCenter Align = "center"
	AlignEnd    Align = "end"
)

// Placement pairs a side with an alignment. The zero value means bottom,
// centred.
type Placement struct {
	Side  Side
	Align Align
}

// ParsePlacement parses "side" or "side-align", for example "top" or
// "bottom-start".
func ParsePlacement(s string) (Placement, error) {
	side, align, _ := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "-")
	p := Placement{Side: Side(side), Align: Align(align)}
	switch p.Side {
	case SideTop, SideBottom, SideLeft, SideRight:
	default:
		return Placement{}, fmt.Errorf("invalid placement %q: unknown side %q", s, side)
	}
	switch p.Align {
	case "":
		p.Align = AlignCenter
	case AlignStart, AlignCenter, AlignEnd:
	default:
		return Placement{}, fmt.Errorf("invalid placement %q: unknown alignment %q", s, align)
	}
	return p, nil
}

func (p Placement) normalized() Placement {
	if p.Side == "" {
		p.Side = SideBottom
	}
	if p.Align == "" {
		p.Align = AlignCenter
	}
	return p
}

// String renders the placement the way ParsePlacement reads it. Centred
// placements omit the alignment.
func (p Placement) String() string {
	p = p.normalized()
	if p.Align == AlignCenter {
		return string(p.Side)
	}
	return string(p.Side) + "-" + string(p.Align)
}

// Opposite returns the placement on the other side with the same alignment.
func (p Placement) Opposite() Placement {
	p = p.normalized()
	switch p.Side {
	case SideTop:
		p.Side = SideBottom
	case SideBottom:
		p.Side = SideTop
	case SideLeft:
		p.Side = SideRight
	case SideRight:
		p.Side = SideLeft
	}
	return p
}

// Vertical reports whether the floating element sits above or below.
func (p Placement) Vertical() bool {
	p = p.normalized()
	return p.Side == SideTop || p.Side == SideBottom
}
