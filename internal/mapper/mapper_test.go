package mapper

import (
	"math"
	"testing"

	"carddrawer/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestClampedLerp(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		d0, d1 float64
		r0, r1 float64
		want   float64
	}{
		{"domain start", 0, 0, 100, 0, 0.2, 0},
		{"domain end", 100, 0, 100, 0, 0.2, 0.2},
		{"midpoint", 50, 0, 100, 0, 0.2, 0.1},
		{"below domain clamps", -40, 0, 100, 0, 0.2, 0},
		{"above domain clamps", 250, 0, 100, 0, 0.2, 0.2},
		{"descending range", 50, 0, 100, 800, 640, 720},
		{"descending range overshoot", -10, 0, 100, 800, 640, 800},
		{"reversed domain", 25, 100, 0, 0, 1, 0.75},
		{"degenerate domain low", 0, 5, 5, 1, 2, 1},
		{"degenerate domain high", 6, 5, 5, 1, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ClampedLerp(tt.x, tt.d0, tt.d1, tt.r0, tt.r1), 1e-9)
		})
	}
}

func TestClampedLerpStaysInRange(t *testing.T) {
	inputs := []float64{-1e9, -500, -1, -1e-9, 0, 0.3, 117, 233.9, 234, 1e9, math.MaxFloat64, -math.MaxFloat64}
	ranges := [][2]float64{{0, 0.2}, {844, 675.2}, {-3, 3}}

	for _, r := range ranges {
		lo, hi := math.Min(r[0], r[1]), math.Max(r[0], r[1])
		for _, x := range inputs {
			got := ClampedLerp(x, 0, 234, r[0], r[1])
			if got < lo || got > hi {
				t.Errorf("ClampedLerp(%v) = %v outside [%v, %v]", x, got, lo, hi)
			}
		}
	}
}

func TestMapCard(t *testing.T) {
	cfg := config.DefaultConfig().WithViewport(100, 1000)

	onScreen := MapCard(cfg, 0, 0, 0)
	assert.Equal(t, 1000.0, onScreen.Height)
	assert.Equal(t, 0.0, onScreen.ShadowOpacity)
	assert.Equal(t, 100.0, onScreen.Width)
	assert.Equal(t, 1, onScreen.ZIndex)

	// Card 2 rests at 52 + 20 = 72.
	fanned := MapCard(cfg, 2, 72, 9.5)
	assert.InDelta(t, 800.0, fanned.Height, 1e-9)
	assert.InDelta(t, 0.2, fanned.ShadowOpacity, 1e-9, "72 is past the menu offset of 60")
	assert.Equal(t, 9.5, fanned.TranslateY)
	assert.Equal(t, 3, fanned.ZIndex)

	half := MapCard(cfg, 0, 30, 0)
	assert.InDelta(t, 0.1, half.ShadowOpacity, 1e-9)

	overshoot := MapCard(cfg, 1, -15, 0)
	assert.Equal(t, 1000.0, overshoot.Height)
	assert.Equal(t, 0.0, overshoot.ShadowOpacity)

	offScreen := MapCard(cfg, 3, 100, 0)
	assert.InDelta(t, 800.0, offScreen.Height, 1e-9)
}

func TestMapMenu(t *testing.T) {
	cfg := config.DefaultConfig().WithViewport(100, 1000)
	m := MapMenu(cfg, 12)
	assert.Equal(t, 12.0, m.TranslateX)
	assert.InDelta(t, 40.0, m.Width, 1e-9)
}

func TestMapGlyphMirrorsBars(t *testing.T) {
	g := MapGlyph(3, 20, 35)
	assert.Equal(t, BarStyle{TranslateY: 3, Rotate: 35, Width: 20}, g.Top)
	assert.Equal(t, BarStyle{TranslateY: -3, Rotate: -35, Width: 20}, g.Bottom)
	assert.Equal(t, GlyphMiddleWidth, g.Middle.Width)
}
