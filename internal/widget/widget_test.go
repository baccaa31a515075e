package widget

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"carddrawer/internal/config"
	"carddrawer/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const maxFrames = 600

func newTestWidget(t *testing.T) *Widget {
	t.Helper()
	cfg := config.DefaultConfig().WithViewport(100, 1000)
	w := New(cfg, nil)
	t.Cleanup(w.Unmount)
	return w
}

func TestMountSlidesFirstCardIn(t *testing.T) {
	w := newTestWidget(t)

	x, _ := w.CardOffset(0)
	assert.Equal(t, 100.0, x, "cards start off-screen")
	assert.False(t, w.Settled())

	require.Less(t, w.Settle(maxFrames), maxFrames)
	x, _ = w.CardOffset(0)
	assert.Equal(t, 0.0, x)
	for i := 1; i < 4; i++ {
		x, _ = w.CardOffset(i)
		assert.Equal(t, 100.0, x, "card %d", i)
	}
	assert.Equal(t, 60.0, w.MenuOffset())
}

func TestOpenFansCards(t *testing.T) {
	w := newTestWidget(t)
	w.Settle(maxFrames)

	w.Toggle()
	w.Select(2)
	require.Less(t, w.Settle(maxFrames), maxFrames)

	f := w.Frame()
	assert.True(t, f.State.Open)
	assert.Equal(t, 0.0, f.Menu.TranslateX)

	assert.InDelta(t, 52.0, f.Cards[0].TranslateX, 1e-9)
	assert.InDelta(t, 19.0, f.Cards[0].TranslateY, 1e-9)
	assert.InDelta(t, 62.0, f.Cards[1].TranslateX, 1e-9)
	assert.InDelta(t, 9.5, f.Cards[1].TranslateY, 1e-9)
	assert.InDelta(t, 72.0, f.Cards[2].TranslateX, 1e-9)
	assert.InDelta(t, 0.0, f.Cards[2].TranslateY, 1e-9)
	assert.Equal(t, 100.0, f.Cards[3].TranslateX)

	assert.InDelta(t, 800.0, f.Cards[2].Height, 1e-9)
	assert.InDelta(t, 0.2, f.Cards[2].ShadowOpacity, 1e-9)

	assert.Equal(t, 20.0, f.Glyph.Top.Width)
	assert.Equal(t, 35.0, f.Glyph.Top.Rotate)
}

func TestStylesStayBoundedDuringBounce(t *testing.T) {
	w := newTestWidget(t)
	w.Settle(maxFrames)
	w.Toggle()

	dt := w.Config().FrameInterval()
	for n := 0; n < maxFrames && !w.Settled(); n++ {
		w.Step(dt)
		for _, c := range w.Frame().Cards {
			assert.GreaterOrEqual(t, c.ShadowOpacity, 0.0)
			assert.LessOrEqual(t, c.ShadowOpacity, 0.2)
			assert.GreaterOrEqual(t, c.Height, 800.0-1e-9)
			assert.LessOrEqual(t, c.Height, 1000.0)
		}
	}
}

func TestTapCardDismissesOnlyWhenOpen(t *testing.T) {
	w := newTestWidget(t)

	assert.False(t, w.TapCard(0))
	assert.False(t, w.State().Open)

	w.Toggle()
	assert.False(t, w.TapCard(9), "unknown card")
	assert.True(t, w.TapCard(0))
	assert.False(t, w.State().Open)
	assert.Equal(t, 60.0, w.Targets().Menu.X, "menu slides back on dismiss")
}

func TestCloseReturnsSelectedCard(t *testing.T) {
	w := newTestWidget(t)
	w.Toggle()
	w.Select(3)
	w.Toggle()
	require.Less(t, w.Settle(maxFrames), maxFrames)

	x, y := w.CardOffset(3)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)
	f := w.Frame()
	assert.Equal(t, 1000.0, f.Cards[3].Height)
	assert.Equal(t, 0.0, f.Cards[3].ShadowOpacity)
	assert.Equal(t, 40.0, f.Glyph.Top.Width)
}

func TestRetargetMidFlight(t *testing.T) {
	w := newTestWidget(t)
	w.Settle(maxFrames)

	w.Toggle()
	for i := 0; i < 3; i++ {
		w.Step(w.Config().FrameInterval())
	}
	w.Toggle()
	require.Less(t, w.Settle(maxFrames), maxFrames)

	x, _ := w.CardOffset(0)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 60.0, w.MenuOffset())
}

func TestSelectOutOfRangeIsLogged(t *testing.T) {
	var buf bytes.Buffer
	level := &slog.LevelVar{}
	level.Set(slog.LevelDebug)
	cfg := config.DefaultConfig()
	w := New(cfg, logging.NewWithWriter(&buf, nil, level))
	defer w.Unmount()

	assert.False(t, w.Select(7))
	assert.True(t, strings.Contains(buf.String(), "menu selection out of range"))
	assert.True(t, strings.Contains(buf.String(), "drawer transition"), "mount snapshot is logged at debug")
}

func TestFramesCounter(t *testing.T) {
	w := newTestWidget(t)
	w.Step(w.Config().FrameInterval())
	w.Step(w.Config().FrameInterval())
	assert.Equal(t, uint64(2), w.Frames())
}
