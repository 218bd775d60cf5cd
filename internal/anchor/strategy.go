package anchor

import (
	"fmt"
	"strconv"
)

type computedStrategy struct{}

func (computedStrategy) kind() Strategy { return StrategyComputed }

func (computedStrategy) update(p *Positioner) (Position, bool) {
	f := p.opts.Floating
	pos := Compute(p.opts.Anchor.Rect, f.Rect, f.Document().Viewport(), p.opts.Placement, p.opts.Offset, p.opts.Flip)

	f.Rect.X, f.Rect.Y = pos.X, pos.Y
	p.setStyle(f, "position", "fixed")
	p.setStyle(f, "left", px(pos.X))
	p.setStyle(f, "top", px(pos.Y))
	f.SetAttr("data-placement", pos.Placement.String())

	changed := !p.computed || pos != p.position
	p.computed = true
	return pos, changed
}

func (computedStrategy) release(p *Positioner) {
	p.opts.Floating.RemoveAttr("data-placement")
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

// nativeStrategy hands positioning to a renderer that understands
// anchor-name, position-anchor and anchor() insets.
type nativeStrategy struct {
	name    string
	applied bool
}

func (*nativeStrategy) kind() Strategy { return StrategyNative }

func (s *nativeStrategy) update(p *Positioner) (Position, bool) {
	if s.applied {
		return Position{}, false
	}
	s.applied = true
	a, f := p.opts.Anchor, p.opts.Floating
	pl := p.opts.Placement
	off := px(p.opts.Offset)

	p.setStyle(a, "anchor-name", s.name)
	p.setStyle(f, "position", "fixed")
	p.setStyle(f, "position-anchor", s.name)
	switch pl.Side {
	case SideTop:
		p.setStyle(f, "bottom", fmt.Sprintf("calc(anchor(top) + %s)", off))
	case SideBottom:
		p.setStyle(f, "top", fmt.Sprintf("calc(anchor(bottom) + %s)", off))
	case SideLeft:
		p.setStyle(f, "right", fmt.Sprintf("calc(anchor(left) + %s)", off))
	case SideRight:
		p.setStyle(f, "left", fmt.Sprintf("calc(anchor(right) + %s)", off))
	}
	if pl.Vertical() {
		switch pl.Align {
		case AlignStart:
			p.setStyle(f, "left", "anchor(left)")
		case AlignEnd:
			p.setStyle(f, "right", "anchor(right)")
		default:
			p.setStyle(f, "justify-self", "anchor-center")
		}
	} else {
		switch pl.Align {
		case AlignStart:
			p.setStyle(f, "top", "anchor(top)")
		case AlignEnd:
			p.setStyle(f, "bottom", "anchor(bottom)")
		default:
			p.setStyle(f, "align-self", "anchor-center")
		}
	}
	if p.opts.Flip {
		fallback := "flip-block"
		if !pl.Vertical() {
			fallback = "flip-inline"
		}
		p.setStyle(f, "position-try-fallbacks", fallback)
	}
	f.SetAttr("data-placement", pl.String())
	return Position{}, false
}

func (s *nativeStrategy) release(p *Positioner) {
	p.opts.Floating.RemoveAttr("data-placement")
	s.applied = false
}
