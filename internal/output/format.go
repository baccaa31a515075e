package output

import (
	"fmt"
	"strings"

	"carddrawer/internal/config"
	"carddrawer/internal/drawer"
	"carddrawer/internal/engine"
	"carddrawer/internal/widget"
)

// Section constants to avoid hardcoded strings
const (
	SectionState  = "state"
	SectionCards  = "cards"
	SectionMenu   = "menu"
	SectionGlyph  = "glyph"
	SectionChecks = "checks"
)

// Item statuses.
const (
	StatusShown  = "SHOWN"
	StatusHidden = "HIDDEN"
	StatusMoving = "MOVING"
)

// UI/view-model types (no printing here)
type Item struct {
	Key    string
	Label  string
	Value  float64
	Unit   string
	Status string
	Note   string
}

type Section struct {
	ID    string // state/cards/menu/glyph/checks
	Title string
	Items []Item
}

type Report struct {
	Title    string
	Sections []Section
	Phase    string
	Selected int
	Frames   int
	Health   string // worst check status
}

// BuildReport converts a frame and its targets into UI-ready sections.
// Labels are the display names of the entries, in card order.
func BuildReport(title string, cfg config.Config, f widget.Frame, t drawer.Snapshot, labels []string) Report {
	viewportWidth := cfg.ViewportWidth

	state := Section{ID: SectionState, Title: "State", Items: []Item{
		{Key: "phase", Label: "Phase", Note: f.State.Phase()},
		{Key: "selected", Label: "Selected", Note: labelAt(labels, f.State.Selected)},
	}}

	cards := Section{ID: SectionCards, Title: "Cards"}
	for i, c := range f.Cards {
		var target drawer.Target
		if i < len(t.Cards) {
			target = t.Cards[i]
		}

		status := StatusShown
		switch {
		case c.TranslateX != target.X || c.TranslateY != target.Y:
			status = StatusMoving
		case c.TranslateX >= viewportWidth:
			status = StatusHidden
		}

		name := labelAt(labels, i)
		key := fmt.Sprintf("card_%d", i)
		cards.Items = append(cards.Items,
			Item{Key: key + "_x", Label: name + " X", Value: c.TranslateX, Unit: "px", Status: status,
				Note: target.XCurve.String()},
			Item{Key: key + "_y", Label: name + " Y", Value: c.TranslateY, Unit: "px",
				Note: target.YCurve.String()},
			Item{Key: key + "_height", Label: name + " Height", Value: c.Height, Unit: "px"},
			Item{Key: key + "_shadow", Label: name + " Shadow", Value: c.ShadowOpacity * 100, Unit: "%"},
		)
	}

	menu := Section{ID: SectionMenu, Title: "Menu", Items: []Item{
		{Key: "menu_x", Label: "Offset", Value: f.Menu.TranslateX, Unit: "px", Note: t.Menu.XCurve.String()},
		{Key: "menu_width", Label: "Width", Value: f.Menu.Width, Unit: "px"},
	}}

	glyph := Section{ID: SectionGlyph, Title: "Hamburger", Items: []Item{
		{Key: "glyph_offset", Label: "Bar offset", Value: f.Glyph.Top.TranslateY, Unit: "px"},
		{Key: "glyph_width", Label: "Outer width", Value: f.Glyph.Top.Width, Unit: "px"},
		{Key: "glyph_angle", Label: "Angle", Value: f.Glyph.Top.Rotate, Unit: "°"},
	}}

	results := engine.Evaluate(cfg, f, t)
	checks := Section{ID: SectionChecks, Title: "Checks"}
	for _, r := range results {
		checks.Items = append(checks.Items, Item{
			Key:    strings.ReplaceAll(strings.ToLower(r.Name), " ", "_"),
			Label:  r.Name,
			Value:  r.Value,
			Status: r.Status,
		})
	}

	return Report{
		Title:    title,
		Sections: []Section{state, cards, menu, glyph, checks},
		Phase:    f.State.Phase(),
		Selected: f.State.Selected,
		Health:   engine.Worst(results),
	}
}

func labelAt(labels []string, i int) string {
	if i >= 0 && i < len(labels) {
		return labels[i]
	}
	return fmt.Sprintf("#%d", i)
}

func (r Report) SectionByID(id string) *Section {
	for i := range r.Sections {
		if r.Sections[i].ID == id {
			return &r.Sections[i]
		}
	}
	return nil
}

func (s Section) ItemByKey(key string) *Item {
	for i := range s.Items {
		if s.Items[i].Key == key {
			return &s.Items[i]
		}
	}
	return nil
}
