package styles

import "github.com/charmbracelet/lipgloss"

var (
	Subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	Lighter   = lipgloss.AdaptiveColor{Light: "#F3F3F3", Dark: "#1E1E1E"}
	CardWhite = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#2B2B2B"}
	Ink       = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#F5F5F5"}

	BrandColor = lipgloss.Color("#f27b24")
)

// Key names a cell style so cells can be grouped into runs cheaply.
type Key int

const (
	Background Key = iota
	CardBody
	CardBorder
	CardTitle
	CardTile
	CardHint
	ShadowLight
	ShadowDark
	MenuItem
	MenuSelected
	MenuCursor
	Glyph
)

var table = map[Key]lipgloss.Style{
	Background: lipgloss.NewStyle().Background(Lighter),
	CardBody:   lipgloss.NewStyle().Background(CardWhite),
	CardBorder: lipgloss.NewStyle().Background(CardWhite).Foreground(Subtle),
	CardTitle:  lipgloss.NewStyle().Background(CardWhite).Foreground(Ink).Bold(true),
	CardTile:   lipgloss.NewStyle().Background(CardWhite).Foreground(Subtle),
	CardHint:   lipgloss.NewStyle().Background(CardWhite).Foreground(lipgloss.Color("#888")).Italic(true),

	ShadowLight: lipgloss.NewStyle().Background(Lighter).Foreground(lipgloss.Color("#999")),
	ShadowDark:  lipgloss.NewStyle().Background(Lighter).Foreground(lipgloss.Color("#666")),

	// Unselected rows are dimmer, like the 0.3 vs 0.65 opacity of the menu.
	MenuItem:     lipgloss.NewStyle().Background(Lighter).Foreground(lipgloss.Color("#AAA")).Bold(true),
	MenuSelected: lipgloss.NewStyle().Background(Lighter).Foreground(lipgloss.Color("#555")).Bold(true),
	MenuCursor:   lipgloss.NewStyle().Background(Lighter).Foreground(BrandColor).Bold(true),

	Glyph: lipgloss.NewStyle().Background(Lighter).Foreground(Ink).Bold(true),
}

// Render paints s with the style behind k.
func Render(k Key, s string) string {
	return table[k].Render(s)
}

var (
	TitleStyle = lipgloss.NewStyle().
			MarginLeft(1).
			MarginRight(5).
			Padding(0, 1).
			Italic(true).
			Foreground(lipgloss.Color("#FFF7DB"))

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			PaddingLeft(1).
			Foreground(lipgloss.Color("#666"))
)
