// Package hamburger animates the three-bar menu icon into an "X" and back.
package hamburger

import (
	"time"

	"carddrawer/internal/mapper"
	"carddrawer/internal/motion"
)

// Endpoints of the glyph. Angle is in degrees.
const (
	ClosedOffset = 0.0
	ClosedWidth  = 40.0
	ClosedAngle  = 0.0

	OpenOffset = 3.0
	OpenWidth  = 20.0
	OpenAngle  = 35.0
)

// Targets are the glyph endpoints for one menu state.
type Targets struct {
	Offset, Width, Angle float64
}

// TargetsFor returns the endpoints for open or closed.
func TargetsFor(open bool) Targets {
	if open {
		return Targets{Offset: OpenOffset, Width: OpenWidth, Angle: OpenAngle}
	}
	return Targets{Offset: ClosedOffset, Width: ClosedWidth, Angle: ClosedAngle}
}

// Glyph owns the three animated scalars. Only the latest menu state matters;
// the easing between endpoints is left to the motion values.
type Glyph struct {
	open bool

	offset *motion.Value
	width  *motion.Value
	angle  *motion.Value

	damping  float64
	duration time.Duration
}

// New returns a closed glyph at rest.
func New(damping float64, duration time.Duration) *Glyph {
	t := TargetsFor(false)
	return &Glyph{
		offset:   motion.NewValue(t.Offset),
		width:    motion.NewValue(t.Width),
		angle:    motion.NewValue(t.Angle),
		damping:  damping,
		duration: duration,
	}
}

// SetOpen retargets the glyph. Repeating the current state is a no-op.
func (g *Glyph) SetOpen(open bool) {
	if open == g.open {
		return
	}
	g.open = open
	t := TargetsFor(open)
	g.offset.AnimateTo(t.Offset, motion.Spring(g.damping))
	g.width.AnimateTo(t.Width, motion.Timing(g.duration))
	g.angle.AnimateTo(t.Angle, motion.Timing(g.duration))
}

// Open reports the state the glyph is animating toward.
func (g *Glyph) Open() bool { return g.open }

// Step advances all three scalars.
func (g *Glyph) Step(dt time.Duration) {
	g.offset.Step(dt)
	g.width.Step(dt)
	g.angle.Step(dt)
}

// Settled reports whether every scalar reached its endpoint.
func (g *Glyph) Settled() bool {
	return g.offset.Settled() && g.width.Settled() && g.angle.Settled()
}

// Current returns the live scalar values.
func (g *Glyph) Current() Targets {
	return Targets{Offset: g.offset.Get(), Width: g.width.Get(), Angle: g.angle.Get()}
}

// Style maps the live scalars to bar styles.
func (g *Glyph) Style() mapper.GlyphStyle {
	c := g.Current()
	return mapper.MapGlyph(c.Offset, c.Width, c.Angle)
}
