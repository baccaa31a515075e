// Package widget runs the drawer: it listens to state transitions, retargets
// the animated values and produces the styles for each frame.
package widget

import (
	"time"

	"carddrawer/internal/config"
	"carddrawer/internal/drawer"
	"carddrawer/internal/hamburger"
	"carddrawer/internal/logging"
	"carddrawer/internal/mapper"
	"carddrawer/internal/motion"
)

// Frame is everything a host needs to paint one frame.
type Frame struct {
	State   drawer.State
	Entries []drawer.MenuEntry
	Cards   []mapper.CardStyle
	Menu    mapper.MenuStyle
	Glyph   mapper.GlyphStyle
}

type cardMotion struct {
	x, y *motion.Value
}

// Widget is a mounted drawer. Drive it from one UI loop.
type Widget struct {
	cfg    config.Config
	log    *logging.Logger
	drawer *drawer.Drawer
	cards  []cardMotion
	menu   *motion.Value
	glyph  *hamburger.Glyph

	unsubscribe func()
	frames      uint64
}

// New mounts a widget. Cards start off-screen and the selected card slides in.
func New(cfg config.Config, log *logging.Logger) *Widget {
	if log == nil {
		log = logging.Discard()
	}
	entries := drawer.Entries(cfg.Entries...)
	w := &Widget{
		cfg:    cfg,
		log:    log,
		drawer: drawer.New(cfg, entries),
		menu:   motion.NewValue(cfg.MenuRestingX()),
		glyph:  hamburger.New(cfg.SpringDamping, cfg.GlyphDuration),
	}
	w.cards = make([]cardMotion, len(entries))
	for i := range w.cards {
		w.cards[i] = cardMotion{
			x: motion.NewValue(cfg.ViewportWidth),
			y: motion.NewValue(0),
		}
	}
	w.unsubscribe = w.drawer.Subscribe(w.apply)
	return w
}

// apply retargets every animated value. In-flight animations are replaced.
func (w *Widget) apply(s drawer.Snapshot) {
	for i, t := range s.Cards {
		w.cards[i].x.AnimateTo(t.X, t.XCurve)
		w.cards[i].y.AnimateTo(t.Y, t.YCurve)
	}
	w.menu.AnimateTo(s.Menu.X, s.Menu.XCurve)
	w.glyph.SetOpen(s.State.Open)

	w.log.Debug("drawer transition",
		"phase", s.State.Phase(),
		"selected", s.State.Selected,
		"menu_x", s.Menu.X,
	)
}

// Unmount detaches the widget from its drawer.
func (w *Widget) Unmount() {
	if w.unsubscribe != nil {
		w.unsubscribe()
		w.unsubscribe = nil
	}
}

// Config returns the widget configuration.
func (w *Widget) Config() config.Config { return w.cfg }

// State returns the drawer state.
func (w *Widget) State() drawer.State { return w.drawer.State() }

// Entries returns the menu entries.
func (w *Widget) Entries() []drawer.MenuEntry { return w.drawer.Entries() }

// Targets returns the current animation targets.
func (w *Widget) Targets() drawer.Snapshot { return w.drawer.Snapshot() }

// Toggle handles a hamburger tap.
func (w *Widget) Toggle() {
	w.drawer.Toggle()
	w.log.Info("menu toggled", "open", w.drawer.State().Open)
}

// Select handles a menu row tap.
func (w *Widget) Select(i int) bool {
	ok := w.drawer.SelectEntry(i)
	if !ok {
		w.log.Warn("menu selection out of range", "index", i, "entries", len(w.cards))
	}
	return ok
}

// TapCard handles a touch on card i. Only an open drawer reacts.
func (w *Widget) TapCard(i int) bool {
	if i < 0 || i >= len(w.cards) {
		return false
	}
	closed := w.drawer.DismissOnCardTap()
	if closed {
		w.log.Info("dismissed by card tap", "card", i)
	}
	return closed
}

// Step advances every animated value by dt.
func (w *Widget) Step(dt time.Duration) {
	w.frames++
	for _, c := range w.cards {
		c.x.Step(dt)
		c.y.Step(dt)
	}
	w.menu.Step(dt)
	w.glyph.Step(dt)
}

// Frames counts Step calls since mount.
func (w *Widget) Frames() uint64 { return w.frames }

// Settled reports whether nothing is moving.
func (w *Widget) Settled() bool {
	for _, c := range w.cards {
		if !c.x.Settled() || !c.y.Settled() {
			return false
		}
	}
	return w.menu.Settled() && w.glyph.Settled()
}

// Settle steps at the configured frame rate until nothing moves or
// maxFrames is reached, and returns the number of frames stepped.
func (w *Widget) Settle(maxFrames int) int {
	dt := w.cfg.FrameInterval()
	n := 0
	for ; n < maxFrames && !w.Settled(); n++ {
		w.Step(dt)
	}
	return n
}

// CardOffset returns the live offsets of card i.
func (w *Widget) CardOffset(i int) (x, y float64) {
	return w.cards[i].x.Get(), w.cards[i].y.Get()
}

// MenuOffset returns the live menu panel offset.
func (w *Widget) MenuOffset() float64 { return w.menu.Get() }

// Frame maps the live values to styles.
func (w *Widget) Frame() Frame {
	cards := make([]mapper.CardStyle, len(w.cards))
	for i, c := range w.cards {
		cards[i] = mapper.MapCard(w.cfg, i, c.x.Get(), c.y.Get())
	}
	return Frame{
		State:   w.drawer.State(),
		Entries: w.drawer.Entries(),
		Cards:   cards,
		Menu:    mapper.MapMenu(w.cfg, w.menu.Get()),
		Glyph:   w.glyph.Style(),
	}
}
