package tui

import (
	"os"
	"strings"
	"testing"
	"time"

	"carddrawer/internal/config"
	"carddrawer/internal/i18n"
	"carddrawer/ui/tui/views"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	code := m.Run()
	zone.Close()
	os.Exit(code)
}

func newTestModel(t *testing.T, lang string) *MainModel {
	t.Helper()
	tr, err := i18n.New(lang)
	if err != nil {
		t.Fatalf("i18n.New failed: %v", err)
	}
	model := InitialModel(config.DefaultConfig(), tr, nil)
	m := &model
	t.Cleanup(m.widget.Unmount)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(*MainModel)
}

func settle(m *MainModel) *MainModel {
	for i := 0; i < 600 && !m.widget.Settled(); i++ {
		updated, _ := m.Update(AnimateMsg(time.Now()))
		m = updated.(*MainModel)
	}
	return m
}

func press(m *MainModel, k tea.KeyMsg) *MainModel {
	updated, _ := m.Update(k)
	return updated.(*MainModel)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestToggleWithKeyboard(t *testing.T) {
	m := newTestModel(t, "en")

	if m.widget.State().Open {
		t.Fatal("Expected drawer to start closed")
	}

	m = press(m, runes("m"))
	if !m.widget.State().Open {
		t.Errorf("Expected drawer to open after 'm'")
	}

	m = press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.widget.State().Open {
		t.Errorf("Expected drawer to close after space")
	}
}

func TestMenuNavigation(t *testing.T) {
	m := newTestModel(t, "en")
	m = press(m, runes("m"))

	if m.menuCursor != 0 {
		t.Errorf("Expected initial menu cursor 0, got %d", m.menuCursor)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	if m.menuCursor != 2 {
		t.Errorf("Expected menu cursor 2 after two Down keys, got %d", m.menuCursor)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.widget.State().Selected; got != 2 {
		t.Errorf("Expected selected entry 2, got %d", got)
	}
	if !m.widget.State().Open {
		t.Errorf("Expected drawer to stay open after selection")
	}

	for i := 0; i < 10; i++ {
		m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.menuCursor != 3 {
		t.Errorf("Expected menu cursor to stop at 3, got %d", m.menuCursor)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.menuCursor != 2 {
		t.Errorf("Expected menu cursor 2 after Up key, got %d", m.menuCursor)
	}
}

func TestEscDismisses(t *testing.T) {
	m := newTestModel(t, "en")
	m = press(m, runes("m"))
	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.widget.State().Open {
		t.Errorf("Expected esc to close the drawer")
	}
}

func TestCursorAnimationLogic(t *testing.T) {
	m := newTestModel(t, "en")
	m.menuCursor = 1

	if m.animCursor != 0 {
		t.Errorf("Expected initial animCursor 0, got %f", m.animCursor)
	}

	updated, _ := m.Update(AnimateMsg(time.Now()))
	m = updated.(*MainModel)
	if m.animCursor <= 0 || m.animCursor >= 1.0 {
		t.Errorf("Expected animCursor between 0 and 1 after one frame, got %f", m.animCursor)
	}

	prev := m.animCursor
	updated, _ = m.Update(AnimateMsg(time.Now()))
	m = updated.(*MainModel)
	if m.animCursor <= prev {
		t.Errorf("Expected animCursor to keep increasing, got %f (prev %f)", m.animCursor, prev)
	}
}

func TestAnimationSlidesFirstCardIn(t *testing.T) {
	m := newTestModel(t, "en")
	m = settle(m)

	x, _ := m.widget.CardOffset(0)
	if x != 0 {
		t.Errorf("Expected card 0 on screen after mount animation, got x=%v", x)
	}
	if len(m.trace.Cards) == 0 {
		t.Errorf("Expected trace history to be recorded")
	}
}

func TestViewRendersLabels(t *testing.T) {
	m := newTestModel(t, "en")
	m = press(m, runes("m"))
	m = settle(m)

	out := m.View()
	for _, label := range []string{"Work", "About", "Blog", "Contact"} {
		if !strings.Contains(out, label) {
			t.Errorf("Expected menu label %q in view", label)
		}
	}
	if !strings.Contains(out, "WORK") {
		t.Errorf("Expected card title in view")
	}
}

func TestViewLocalized(t *testing.T) {
	m := newTestModel(t, "es")
	m = press(m, runes("m"))
	m = settle(m)

	out := m.View()
	if !strings.Contains(out, "Trabajo") || !strings.Contains(out, "Contacto") {
		t.Errorf("Expected Spanish menu labels in view")
	}
}

func TestTraceToggle(t *testing.T) {
	m := newTestModel(t, "en")
	m = press(m, runes("t"))
	if !m.state.ShowTrace {
		t.Fatalf("Expected trace panel to be shown")
	}
	if !strings.Contains(m.View(), "Motion Trace") {
		t.Errorf("Expected trace title in view")
	}
}

// findZone waits for the zone manager to register area on any row.
func findZone(t *testing.T, area string, rows int) *zone.ZoneInfo {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		for y := 0; y < rows; y++ {
			if z := zone.Get(views.RowZoneID(area, y)); !z.IsZero() {
				return z
			}
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("Expected %s zone to be registered", area)
	return nil
}

func click(m *MainModel, z *zone.ZoneInfo) *MainModel {
	updated, _ := m.Update(tea.MouseMsg{X: z.StartX, Y: z.StartY, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	return updated.(*MainModel)
}

func TestMouseHamburger(t *testing.T) {
	m := newTestModel(t, "en")
	m.View()

	m = click(m, findZone(t, views.AreaHamburger, 3))
	if !m.widget.State().Open {
		t.Errorf("Expected hamburger click to open the drawer")
	}
}

func TestMouseMenuRowAndCard(t *testing.T) {
	m := newTestModel(t, "en")
	m = press(m, runes("m"))
	m = settle(m)
	m.View()

	m = click(m, findZone(t, views.MenuArea(2), 40))
	if got := m.widget.State(); !got.Open || got.Selected != 2 {
		t.Fatalf("Expected open drawer with entry 2 selected, got %+v", got)
	}
	if m.menuCursor != 2 {
		t.Errorf("Expected menu cursor to follow the click, got %d", m.menuCursor)
	}

	m = settle(m)
	m.View()

	m = click(m, findZone(t, views.CardArea(1), 40))
	if got := m.widget.State(); got.Open || got.Selected != 2 {
		t.Errorf("Expected card click to close the drawer and keep entry 2, got %+v", got)
	}
}

func TestMouseIgnoresPress(t *testing.T) {
	m := newTestModel(t, "en")
	m.View()

	z := findZone(t, views.AreaHamburger, 3)
	updated, _ := m.Update(tea.MouseMsg{X: z.StartX, Y: z.StartY, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = updated.(*MainModel)
	if m.widget.State().Open {
		t.Errorf("Expected only a release to toggle the drawer")
	}
}

func TestTraceFollowsWindowHeight(t *testing.T) {
	m := newTestModel(t, "en")

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 12})
	m = updated.(*MainModel)
	if m.trace.Height != 6 {
		t.Fatalf("Expected trace height 6 in a short window, got %d", m.trace.Height)
	}

	updated, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(*MainModel)
	if m.trace.Height != traceHeight {
		t.Errorf("Expected trace height back to %d, got %d", traceHeight, m.trace.Height)
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, "en")
	m = press(m, runes("q"))
	if !m.quitting {
		t.Errorf("Expected quitting after 'q'")
	}
	if m.View() != "Bye!\n" {
		t.Errorf("Expected farewell view, got %q", m.View())
	}
}
