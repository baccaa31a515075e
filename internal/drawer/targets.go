package drawer

import (
	"time"

	"carddrawer/internal/motion"
)

// derive recomputes every card target from the current state. Targets only
// depend on the state, except for the bounce picked when the selected card
// leaves the fully revealed position. That check reads the previous target,
// not the live offset, so opening while a card is still sliding toward 0
// springs as well.
func (d *Drawer) derive() {
	s := d.state.Selected
	w := d.cfg.ViewportWidth
	slide := motion.Timing(d.cfg.CardDuration)

	for i := range d.cards {
		prev := d.cards[i]
		t := Target{XCurve: slide, YCurve: motion.Timing(d.stagger(i))}

		switch {
		case !d.state.Open && i == s:
			t.X = 0
		case !d.state.Open:
			t.X = w
		case i > s:
			t.X = w
		default:
			t.X = d.cfg.CardRestingX(i)
			t.Y = float64(s-i) * d.cfg.CascadeStep
			if i == s && prev.X == 0 {
				t.XCurve = motion.Spring(d.cfg.SpringDamping)
			}
		}
		d.cards[i] = t
	}
}

// stagger makes deeper cards (lower index) settle last.
func (d *Drawer) stagger(i int) time.Duration {
	return d.cfg.StaggerStep * time.Duration(len(d.cards)-i)
}
