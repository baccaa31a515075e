package mapper

import "carddrawer/internal/config"

// CardStyle is what a host needs to place and paint one card.
type CardStyle struct {
	Index         int
	TranslateX    float64
	TranslateY    float64
	Width         float64
	Height        float64
	ShadowOpacity float64
	ZIndex        int
}

// MenuStyle places the menu panel.
type MenuStyle struct {
	TranslateX float64
	Width      float64
}

// BarStyle is one hamburger bar. Rotate is in degrees.
type BarStyle struct {
	TranslateY float64
	Rotate     float64
	Width      float64
}

// GlyphStyle holds the three hamburger bars, top to bottom.
type GlyphStyle struct {
	Top    BarStyle
	Middle BarStyle
	Bottom BarStyle
}

// GlyphMiddleWidth is the fixed width of the middle hamburger bar.
const GlyphMiddleWidth = 40.0

// MapCard derives the style of card i from its animated offsets.
// Shadow grows as the card leaves the screen edge; height shrinks toward the
// fanned size as the card approaches its resting offset.
func MapCard(cfg config.Config, i int, x, y float64) CardStyle {
	h := cfg.ViewportHeight
	return CardStyle{
		Index:         i,
		TranslateX:    x,
		TranslateY:    y,
		Width:         cfg.ViewportWidth,
		Height:        ClampedLerp(x, 0, cfg.CardRestingX(i), h, h*cfg.CardShrinkRatio),
		ShadowOpacity: ClampedLerp(x, 0, cfg.MenuRestingX(), 0, cfg.MaxShadowOpacity),
		ZIndex:        i + 1,
	}
}

// MapMenu derives the menu panel style from its animated offset.
func MapMenu(cfg config.Config, x float64) MenuStyle {
	return MenuStyle{
		TranslateX: x,
		Width:      cfg.ViewportWidth * (1 - cfg.MenuRestingRatio),
	}
}

// MapGlyph mirrors the top bar onto the bottom bar to form the "X".
func MapGlyph(offset, width, angle float64) GlyphStyle {
	return GlyphStyle{
		Top:    BarStyle{TranslateY: offset, Rotate: angle, Width: width},
		Middle: BarStyle{Width: GlyphMiddleWidth},
		Bottom: BarStyle{TranslateY: -offset, Rotate: -angle, Width: width},
	}
}
