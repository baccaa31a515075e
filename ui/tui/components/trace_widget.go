package components

import (
	"carddrawer/ui/tui/styles"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// traceCapacity is how many frames of history the chart keeps.
const traceCapacity = 31

// TraceWidget charts the selected card and menu offsets, as a share of the
// viewport width, over the last frames.
type TraceWidget struct {
	Chart  linechart.Model
	Cards  []float64
	Menu   []float64
	Title  string
	Width  int
	Height int
}

func NewTraceWidget(width, height int, title string) *TraceWidget {
	// width, height, minX, maxX, minY, maxY
	lc := linechart.New(width, height, 0, traceCapacity-1, 0, 100)
	return &TraceWidget{
		Chart:  lc,
		Cards:  make([]float64, 0, traceCapacity),
		Menu:   make([]float64, 0, traceCapacity),
		Title:  title,
		Width:  width,
		Height: height,
	}
}

func (c *TraceWidget) Init() tea.Cmd {
	return nil
}

// Push records one frame. Values are percentages of the viewport width.
func (c *TraceWidget) Push(card, menu float64) {
	c.Cards = push(c.Cards, clampPercent(card))
	c.Menu = push(c.Menu, clampPercent(menu))
}

func push(history []float64, v float64) []float64 {
	history = append(history, v)
	if len(history) > traceCapacity {
		history = history[1:]
	}
	return history
}

// Springs overshoot; the chart has a fixed Y range.
func clampPercent(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}

func (c *TraceWidget) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return c, nil
}

func (c *TraceWidget) Resize(w, h int) {
	c.Width = w
	c.Height = h
	c.Chart.Resize(w, h)
}

func (c *TraceWidget) View() string {
	c.Chart.Clear()
	for _, series := range [][]float64{c.Cards, c.Menu} {
		for i := 0; i < len(series)-1; i++ {
			c.Chart.DrawBrailleLine(
				canvas.Float64Point{X: float64(i), Y: series[i]},
				canvas.Float64Point{X: float64(i + 1), Y: series[i+1]},
			)
		}
	}
	c.Chart.DrawXYAxisAndLabel()

	return styles.CardStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Render(c.Title),
			c.Chart.View(),
		),
	)
}

var _ Component = (*TraceWidget)(nil)
