// Package drawer holds the open/closed state of the card drawer and derives
// where every card and the menu panel should animate to.
package drawer

import (
	"carddrawer/internal/config"
	"carddrawer/internal/motion"
)

// State is the single mutable piece of the widget.
type State struct {
	Open     bool
	Selected int
}

// Phase names the two drawer states.
func (s State) Phase() string {
	if s.Open {
		return "OPEN"
	}
	return "CLOSED"
}

// Target is where one animated element should go and how.
type Target struct {
	X, Y   float64
	XCurve motion.Curve
	YCurve motion.Curve
}

// Snapshot is published to subscribers after every transition.
type Snapshot struct {
	State State
	Cards []Target
	Menu  Target
}

// Listener receives snapshots on the caller's goroutine.
type Listener func(Snapshot)

// Drawer is the state machine. It is driven from a single UI loop and is
// not safe for concurrent use.
type Drawer struct {
	cfg     config.Config
	entries []MenuEntry
	state   State

	cards []Target
	menu  Target

	listeners map[int]Listener
	nextID    int
}

// New returns a closed drawer with the first entry selected.
func New(cfg config.Config, entries []MenuEntry) *Drawer {
	d := &Drawer{
		cfg:       cfg,
		entries:   entries,
		listeners: make(map[int]Listener),
	}
	d.cards = make([]Target, len(entries))
	for i := range d.cards {
		d.cards[i] = Target{X: cfg.ViewportWidth}
	}
	d.menu = Target{X: cfg.MenuRestingX(), XCurve: motion.Timing(cfg.MenuDuration)}
	d.derive()
	return d
}

// State returns a copy of the current state.
func (d *Drawer) State() State { return d.state }

// Entries returns the menu entries in card order.
func (d *Drawer) Entries() []MenuEntry { return d.entries }

// Snapshot returns the current state and targets.
func (d *Drawer) Snapshot() Snapshot {
	cards := make([]Target, len(d.cards))
	copy(cards, d.cards)
	return Snapshot{State: d.state, Cards: cards, Menu: d.menu}
}

// Subscribe registers l and immediately delivers the current snapshot.
// The returned func removes the listener.
func (d *Drawer) Subscribe(l Listener) (unsubscribe func()) {
	id := d.nextID
	d.nextID++
	d.listeners[id] = l
	l(d.Snapshot())
	return func() { delete(d.listeners, id) }
}

// Toggle opens a closed drawer or closes an open one.
func (d *Drawer) Toggle() {
	d.state.Open = !d.state.Open
	x := d.cfg.MenuRestingX()
	if d.state.Open {
		x = 0
	}
	d.menu = Target{X: x, XCurve: motion.Timing(d.cfg.MenuDuration)}
	d.commit()
}

// SelectEntry marks entry i as selected. It does not close the drawer.
// Indices outside the menu are ignored and reported as false.
func (d *Drawer) SelectEntry(i int) bool {
	if i < 0 || i >= len(d.entries) {
		return false
	}
	if i != d.state.Selected {
		d.state.Selected = i
		d.commit()
	}
	return true
}

// DismissOnCardTap closes the drawer when it is open.
func (d *Drawer) DismissOnCardTap() bool {
	if !d.state.Open {
		return false
	}
	d.Toggle()
	return true
}

func (d *Drawer) commit() {
	d.derive()
	snap := d.Snapshot()
	for _, l := range d.listeners {
		l(snap)
	}
}
