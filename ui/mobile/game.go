// Package mobile hosts the drawer in an ebiten window. The same game is
// registered with ebitenmobile by the top-level mobile package.
package mobile

import (
	"fmt"
	"image/color"
	"math"

	"carddrawer/internal/config"
	"carddrawer/internal/i18n"
	"carddrawer/internal/logging"
	"carddrawer/internal/mapper"
	"carddrawer/internal/widget"
	"carddrawer/ui/mobile/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	backgroundColor = color.RGBA{0x1E, 0x1E, 0x1E, 0xFF}
	cardColor       = color.RGBA{0xF5, 0xF5, 0xF5, 0xFF}
	cardEdgeColor   = color.RGBA{0xD9, 0xDC, 0xCF, 0xFF}
	tileColor       = color.RGBA{0xD9, 0xDC, 0xCF, 0xFF}
	glyphColor      = color.RGBA{0xF2, 0x7B, 0x24, 0xFF}
)

// Game implements ebiten.Game around a mounted widget.
type Game struct {
	cfg    config.Config
	widget *widget.Widget
	log    *logging.Logger
	labels []string
	title  string
}

func NewGame(cfg config.Config, tr *i18n.Translator, log *logging.Logger) *Game {
	if log == nil {
		log = logging.Discard()
	}
	w := widget.New(cfg, log)
	labels := make([]string, len(w.Entries()))
	for i, e := range w.Entries() {
		labels[i] = tr.Label(e.Label)
	}
	return &Game{
		cfg:    cfg,
		widget: w,
		log:    log,
		labels: labels,
		title:  tr.String(i18n.MsgAppTitle),
	}
}

// Close unmounts the widget.
func (g *Game) Close() { g.widget.Unmount() }

func (g *Game) Update() error {
	if x, y, ok := tapPosition(); ok {
		hit := geom.HitTest(g.cfg, g.widget.Frame(), float64(x), float64(y))
		g.log.Debug("tap", "x", x, "y", y, "hit", hit.Kind.String(), "index", hit.Index)
		geom.Dispatch(g.widget, hit)
	}
	g.widget.Step(g.cfg.FrameInterval())
	return nil
}

// tapPosition reports a tap that started this tick, touch first.
func tapPosition() (int, int, bool) {
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return x, y, true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return x, y, true
	}
	return 0, 0, false
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	f := g.widget.Frame()

	g.drawMenu(screen, f)
	for _, c := range f.Cards {
		g.drawCard(screen, c)
	}
	drawGlyph(screen, f.Glyph)
}

func (g *Game) drawMenu(screen *ebiten.Image, f widget.Frame) {
	for i, label := range g.labels {
		r := geom.MenuRow(g.cfg, f.Menu, i, len(g.labels))
		if i == f.State.Selected {
			vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H),
				color.RGBA{0xFF, 0xFF, 0xFF, 0x20}, false)
		}
		ebitenutil.DebugPrintAt(screen, label, int(r.X)+24, int(r.Y+r.H/2)-8)
	}
}

func (g *Game) drawCard(screen *ebiten.Image, c mapper.CardStyle) {
	r := geom.Card(g.cfg, c)
	if r.X >= g.cfg.ViewportWidth {
		return
	}

	if c.ShadowOpacity > 0 {
		a := uint8(math.Round(c.ShadowOpacity * 255))
		vector.DrawFilledRect(screen, float32(r.X-6), float32(r.Y+4), 6, float32(r.H-4),
			color.RGBA{0, 0, 0, a}, false)
	}
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), cardColor, false)
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, cardEdgeColor, false)

	if c.Index < len(g.labels) {
		ebitenutil.DebugPrintAt(screen, g.labels[c.Index], int(r.X)+24, int(r.Y)+24)
	}
	for t := 0; t < 4; t++ {
		x := r.X + 24 + float64(t)*(r.W-48)/4
		vector.DrawFilledRect(screen, float32(x), float32(r.Y+64), float32((r.W-48)/4-8), 64, tileColor, false)
	}
}

// drawGlyph strokes the three bars inside the hamburger box. Outer bars are
// right-aligned and rotate about their centers.
func drawGlyph(screen *ebiten.Image, gs mapper.GlyphStyle) {
	box := geom.Hamburger()
	right := box.X + box.W - 12
	mid := box.Y + box.H/2

	bar := func(y float64, b mapper.BarStyle) {
		cx := right - b.Width/2
		cy := y + b.TranslateY
		rad := b.Rotate * math.Pi / 180
		dx := math.Cos(rad) * b.Width / 2
		dy := math.Sin(rad) * b.Width / 2
		vector.StrokeLine(screen, float32(cx-dx), float32(cy-dy), float32(cx+dx), float32(cy+dy), 3, glyphColor, true)
	}
	bar(mid-6, gs.Top)
	bar(mid, gs.Middle)
	bar(mid+6, gs.Bottom)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.cfg.ViewportWidth), int(g.cfg.ViewportHeight)
}

// Run opens a desktop window and blocks until it is closed.
func Run(cfg config.Config, tr *i18n.Translator, log *logging.Logger) error {
	g := NewGame(cfg, tr, log)
	defer g.Close()

	ebiten.SetWindowSize(int(cfg.ViewportWidth), int(cfg.ViewportHeight))
	ebiten.SetWindowTitle(g.title)
	ebiten.SetTPS(cfg.FramesPerSecond)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

var _ ebiten.Game = (*Game)(nil)
