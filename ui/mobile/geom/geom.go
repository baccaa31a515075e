// Package geom lays the drawer out in viewport pixels and resolves taps
// against it. Hosts that paint with real pixels share it.
package geom

import (
	"carddrawer/internal/config"
	"carddrawer/internal/mapper"
	"carddrawer/internal/widget"
)

const (
	// HamburgerSize is the square tap target in the top-left corner.
	HamburgerSize = 64.0
	// RowHeight is the height of one menu row.
	RowHeight = 48.0
)

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// HitKind names what a tap landed on.
type HitKind int

const (
	HitNone HitKind = iota
	HitHamburger
	HitMenuRow
	HitCard
)

func (k HitKind) String() string {
	switch k {
	case HitHamburger:
		return "hamburger"
	case HitMenuRow:
		return "menu"
	case HitCard:
		return "card"
	default:
		return "none"
	}
}

type Hit struct {
	Kind  HitKind
	Index int
}

// Hamburger is the glyph tap target.
func Hamburger() Rect {
	return Rect{W: HamburgerSize, H: HamburgerSize}
}

// Card is the rectangle of one card. Cards are vertically centered and
// shifted by their cascade offset.
func Card(cfg config.Config, c mapper.CardStyle) Rect {
	return Rect{
		X: c.TranslateX,
		Y: (cfg.ViewportHeight-c.Height)/2 + c.TranslateY,
		W: c.Width,
		H: c.Height,
	}
}

// MenuRow is the rectangle of row i out of n, centered in the viewport.
func MenuRow(cfg config.Config, m mapper.MenuStyle, i, n int) Rect {
	top := cfg.ViewportHeight/2 - float64(n)*RowHeight/2
	return Rect{
		X: m.TranslateX,
		Y: top + float64(i)*RowHeight,
		W: m.Width,
		H: RowHeight,
	}
}

// HitTest resolves a tap at (x, y) top-down: glyph, cards by z-index, menu.
func HitTest(cfg config.Config, f widget.Frame, x, y float64) Hit {
	if Hamburger().Contains(x, y) {
		return Hit{Kind: HitHamburger}
	}
	for i := len(f.Cards) - 1; i >= 0; i-- {
		if Card(cfg, f.Cards[i]).Contains(x, y) {
			return Hit{Kind: HitCard, Index: f.Cards[i].Index}
		}
	}
	for i := range f.Entries {
		if MenuRow(cfg, f.Menu, i, len(f.Entries)).Contains(x, y) {
			return Hit{Kind: HitMenuRow, Index: i}
		}
	}
	return Hit{Kind: HitNone}
}

// Tapper is the part of a widget that reacts to taps.
type Tapper interface {
	Toggle()
	Select(i int) bool
	TapCard(i int) bool
}

// Dispatch forwards a resolved hit to the widget.
func Dispatch(t Tapper, h Hit) {
	switch h.Kind {
	case HitHamburger:
		t.Toggle()
	case HitMenuRow:
		t.Select(h.Index)
	case HitCard:
		t.TapCard(h.Index)
	}
}
