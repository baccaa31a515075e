package tui

import (
	"time"

	"carddrawer/internal/config"
	"carddrawer/internal/i18n"
	"carddrawer/internal/logging"
	"carddrawer/internal/widget"
	"carddrawer/ui/tui/components"
	"carddrawer/ui/tui/state"
	"carddrawer/ui/tui/views"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	zone "github.com/lrstanley/bubblezone"
)

const (
	traceWidth  = 34
	traceHeight = 10
)

// MainModel is the Bubble Tea Model acting as the Controller
type MainModel struct {
	cfg    config.Config
	widget *widget.Widget
	tr     *i18n.Translator
	log    *logging.Logger
	state  state.AppState
	keys   keyMap
	help   help.Model
	trace  *components.TraceWidget

	menuCursor int
	animCursor float64
	velocity   float64 // Physics velocity
	spring     harmonica.Spring

	mouseX   int
	mouseY   int
	quitting bool
	width    int
	height   int
}

// Messages
type AnimateMsg time.Time

func InitialModel(cfg config.Config, tr *i18n.Translator, log *logging.Logger) MainModel {
	if log == nil {
		log = logging.Discard()
	}

	// Cursor highlight spring; critically damped so the marker never overshoots a row.
	spring := harmonica.NewSpring(harmonica.FPS(cfg.FramesPerSecond), 12.0, 1.0)

	w := widget.New(cfg, log)
	labels := make([]string, len(w.Entries()))
	for i, e := range w.Entries() {
		labels[i] = tr.Label(e.Label)
	}

	return MainModel{
		cfg:    cfg,
		widget: w,
		tr:     tr,
		log:    log,
		keys:   defaultKeyMap(),
		help:   help.New(),
		trace:  components.NewTraceWidget(traceWidth-6, traceHeight, tr.String(i18n.MsgTraceTitle)),
		spring: spring,
		state: state.AppState{
			Config:    cfg,
			Frame:     w.Frame(),
			Labels:    labels,
			TileHint:  tr.Plural(i18n.MsgCardTiles, 4),
			Title:     tr.String(i18n.MsgAppTitle),
			ShowTrace: cfg.ShowTrace,
		},
	}
}

func (m *MainModel) Init() tea.Cmd {
	return animateCmd(m.cfg.FrameInterval())
}

// Commands
func animateCmd(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(t time.Time) tea.Msg {
		return AnimateMsg(t)
	})
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case AnimateMsg:
		return m.handleAnimateMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	return m, nil
}

func (m *MainModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		m.widget.Toggle()
		m.menuCursor = m.widget.State().Selected

	case key.Matches(msg, m.keys.Up):
		if m.menuCursor > 0 {
			m.menuCursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.menuCursor < len(m.state.Labels)-1 {
			m.menuCursor++
		}

	case key.Matches(msg, m.keys.Select):
		m.widget.Select(m.menuCursor)

	case key.Matches(msg, m.keys.Dismiss):
		m.widget.TapCard(m.widget.State().Selected)

	case key.Matches(msg, m.keys.Trace):
		m.state.ShowTrace = !m.state.ShowTrace
	}

	m.state.Frame = m.widget.Frame()
	return m, nil
}

func (m *MainModel) handleAnimateMsg(msg AnimateMsg) (tea.Model, tea.Cmd) {
	m.widget.Step(m.cfg.FrameInterval())

	var v float64 = m.velocity
	m.animCursor, v = m.spring.Update(m.animCursor, v, float64(m.menuCursor))
	m.velocity = v

	sel := m.widget.State().Selected
	cardX, _ := m.widget.CardOffset(sel)
	vw := m.cfg.ViewportWidth
	m.trace.Push(cardX/vw*100, m.widget.MenuOffset()/vw*100)

	m.state.Frame = m.widget.Frame()
	m.state.LastUpdate = time.Time(msg)
	return m, animateCmd(m.cfg.FrameInterval())
}

func (m *MainModel) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	if h := msg.Height - 6; h > 4 {
		m.trace.Resize(traceWidth-6, min(h, traceHeight))
	}
	return m, nil
}

func (m *MainModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.mouseX = msg.X
	m.mouseY = msg.Y

	if msg.Action != tea.MouseActionRelease {
		return m, nil
	}

	switch {
	case m.hit(msg, views.AreaHamburger):
		m.widget.Toggle()
		m.menuCursor = m.widget.State().Selected
	default:
		for i := range m.state.Labels {
			if m.hit(msg, views.MenuArea(i)) {
				m.menuCursor = i
				m.widget.Select(i)
				break
			}
			if m.hit(msg, views.CardArea(i)) {
				m.widget.TapCard(i)
				break
			}
		}
	}

	m.state.Frame = m.widget.Frame()
	return m, nil
}

// hit checks the per-row zones of an area on the clicked row.
func (m *MainModel) hit(msg tea.MouseMsg, area string) bool {
	return zone.Get(views.RowZoneID(area, msg.Y)).InBounds(msg)
}

func (m *MainModel) View() string {
	if m.quitting {
		return m.tr.String(i18n.MsgAppBye) + "\n"
	}

	props := views.ViewProps{
		Width:      m.width,
		Height:     m.height,
		MouseX:     m.mouseX,
		MouseY:     m.mouseY,
		MenuCursor: m.menuCursor,
		AnimCursor: m.animCursor,
		HelpView:   m.help.View(m.keys),
	}
	if m.state.ShowTrace {
		props.TraceView = m.trace.View()
	}
	return views.RenderDrawer(m.state, props)
}

func Start(cfg config.Config, tr *i18n.Translator, log *logging.Logger) error {
	zone.NewGlobal()
	defer zone.Close()

	m := InitialModel(cfg, tr, log)
	defer m.widget.Unmount()

	p := tea.NewProgram(
		&m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
