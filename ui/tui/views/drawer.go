package views

import (
	"fmt"
	"math"
	"strings"

	"carddrawer/internal/mapper"
	"carddrawer/ui/tui/state"
	"carddrawer/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Hit areas painted into the grid.
const (
	AreaHamburger = "hamburger"
	areaMenuFmt   = "menu_%d"
	areaCardFmt   = "card_%d"
)

func MenuArea(i int) string { return fmt.Sprintf(areaMenuFmt, i) }
func CardArea(i int) string { return fmt.Sprintf(areaCardFmt, i) }

// glyphBox is the hamburger hit box in cells.
const glyphBox = 8

// DrawerView paints the menu panel, the card stack and the hamburger glyph.
type DrawerView struct{}

// scaler maps viewport pixels onto terminal cells.
type scaler struct {
	sx, sy float64
}

func (s scaler) x(px float64) int { return int(math.Round(px * s.sx)) }
func (s scaler) y(px float64) int { return int(math.Round(px * s.sy)) }

func (v DrawerView) Paint(s state.AppState, props ViewProps) *Grid {
	g := NewGrid(props.Width, props.Height)
	cfg := s.Config
	if g.Width() == 0 || g.Height() == 0 || cfg.ViewportWidth <= 0 || cfg.ViewportHeight <= 0 {
		return g
	}
	sc := scaler{
		sx: float64(g.Width()) / cfg.ViewportWidth,
		sy: float64(g.Height()) / cfg.ViewportHeight,
	}

	paintMenu(g, sc, s, props)
	// Cards are already in z-order: card i has z-index i+1.
	for _, c := range s.Frame.Cards {
		paintCard(g, sc, s, c)
	}
	paintGlyph(g, s.Frame.Glyph)
	return g
}

func (v DrawerView) Render(s state.AppState, props ViewProps) string {
	return v.Paint(s, props).Render()
}

func paintMenu(g *Grid, sc scaler, s state.AppState, props ViewProps) {
	m := s.Frame.Menu
	x0 := sc.x(m.TranslateX)
	x1 := x0 + sc.x(m.Width) - 1

	n := len(s.Labels)
	top := g.Height()/2 - n
	for i, label := range s.Labels {
		y := top + i*2
		area := MenuArea(i)
		g.Fill(x0, y, x1, y, ' ', styles.Background, area)

		st := styles.MenuItem
		if i == s.Frame.State.Selected {
			st = styles.MenuSelected
		}

		// Same falloff the cursor spring drives in the list menu.
		dist := math.Abs(float64(i) - props.AnimCursor)
		if s.Frame.State.Open && dist < 0.5 {
			g.Set(x0+1, y, '▸', styles.MenuCursor, area)
		}
		g.Text(x0+3, y, label, st, area)
	}
}

func paintCard(g *Grid, sc scaler, s state.AppState, c mapper.CardStyle) {
	cfg := s.Config
	x0 := sc.x(c.TranslateX)
	x1 := x0 + sc.x(c.Width) - 1
	top := (cfg.ViewportHeight-c.Height)/2 + c.TranslateY
	y0 := sc.y(top)
	y1 := y0 + sc.y(c.Height) - 1
	if x0 >= g.Width() || x1 < x0 || y1 < y0 {
		return
	}

	// Shadow on the leading edge, darker as the card moves away.
	switch {
	case c.ShadowOpacity > 0.12:
		g.Shade(x0-1, y0+1, x0-1, y1, '▒', styles.ShadowDark)
	case c.ShadowOpacity > 0.02:
		g.Shade(x0-1, y0+1, x0-1, y1, '░', styles.ShadowLight)
	}

	area := CardArea(c.Index)
	g.Fill(x0, y0, x1, y1, ' ', styles.CardBody, area)

	b := lipgloss.RoundedBorder()
	edge := func(s string) rune { return []rune(s)[0] }
	g.Fill(x0, y0, x1, y0, edge(b.Top), styles.CardBorder, area)
	g.Fill(x0, y1, x1, y1, edge(b.Bottom), styles.CardBorder, area)
	g.Fill(x0, y0, x0, y1, edge(b.Left), styles.CardBorder, area)
	g.Fill(x1, y0, x1, y1, edge(b.Right), styles.CardBorder, area)
	g.Set(x0, y0, edge(b.TopLeft), styles.CardBorder, area)
	g.Set(x1, y0, edge(b.TopRight), styles.CardBorder, area)
	g.Set(x0, y1, edge(b.BottomLeft), styles.CardBorder, area)
	g.Set(x1, y1, edge(b.BottomRight), styles.CardBorder, area)

	if c.Index >= len(s.Labels) {
		return
	}
	mid := (y0 + y1) / 2
	g.Text(x0+3, mid-2, strings.ToUpper(s.Labels[c.Index]), styles.CardTitle, area)
	g.Text(x0+3, mid, tiles(4), styles.CardTile, area)
	if s.TileHint != "" {
		g.Text(x0+3, mid+2, s.TileHint, styles.CardHint, area)
	}
}

func tiles(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = "▇▇▇▇"
	}
	return strings.Join(parts, " ")
}

// paintGlyph draws the three bars right-aligned in the top-left box. The
// bars tilt once the rotation passes half of the open angle.
func paintGlyph(g *Grid, gs mapper.GlyphStyle) {
	g.Fill(0, 0, glyphBox-1, 2, ' ', styles.Background, AreaHamburger)

	bar := func(row int, b mapper.BarStyle, tilted rune) {
		n := int(math.Round(b.Width / mapper.GlyphMiddleWidth * 6))
		r := '━'
		if math.Abs(b.Rotate) > 17.5 {
			r = tilted
		}
		g.Text(glyphBox-1-n, row, strings.Repeat(string(r), n), styles.Glyph, AreaHamburger)
	}
	bar(0, gs.Top, '╲')
	bar(1, gs.Middle, '━')
	bar(2, gs.Bottom, '╱')
}
