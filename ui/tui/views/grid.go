package views

import (
	"fmt"
	"strings"

	"carddrawer/ui/tui/styles"

	zone "github.com/lrstanley/bubblezone"
)

type cell struct {
	r     rune
	style styles.Key
	area  string
}

// Grid is a cell buffer that later layers paint over. Each cell remembers
// the hit area of the topmost layer, so overlapping cards never share a zone.
type Grid struct {
	w, h  int
	cells []cell
}

func NewGrid(w, h int) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	g := &Grid{w: w, h: h, cells: make([]cell, w*h)}
	for i := range g.cells {
		g.cells[i] = cell{r: ' ', style: styles.Background}
	}
	return g
}

func (g *Grid) Width() int  { return g.w }
func (g *Grid) Height() int { return g.h }

// Set paints one cell; points outside the grid are clipped.
func (g *Grid) Set(x, y int, r rune, st styles.Key, area string) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	g.cells[y*g.w+x] = cell{r: r, style: st, area: area}
}

// Text paints s starting at (x, y), one rune per cell.
func (g *Grid) Text(x, y int, s string, st styles.Key, area string) {
	for _, r := range s {
		g.Set(x, y, r, st, area)
		x++
	}
}

// Fill paints the inclusive rectangle (x0, y0)-(x1, y1).
func (g *Grid) Fill(x0, y0, x1, y1 int, r rune, st styles.Key, area string) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			g.Set(x, y, r, st, area)
		}
	}
}

// Shade repaints the inclusive rectangle but keeps each cell's hit area.
func (g *Grid) Shade(x0, y0, x1, y1 int, r rune, st styles.Key) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if x < 0 || y < 0 || x >= g.w || y >= g.h {
				continue
			}
			c := &g.cells[y*g.w+x]
			c.r, c.style = r, st
		}
	}
}

// At returns the rune and area of a cell.
func (g *Grid) At(x, y int) (rune, string) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return 0, ""
	}
	c := g.cells[y*g.w+x]
	return c.r, c.area
}

// RowZoneID is the bubblezone ID of area on one row.
func RowZoneID(area string, row int) string {
	return fmt.Sprintf("%s@%d", area, row)
}

// Render emits the grid row by row, grouping equal cells into styled runs.
// Each contiguous stretch of one hit area is wrapped in a single per-row
// zone marker.
func (g *Grid) Render() string {
	var out strings.Builder
	var seg strings.Builder
	var run strings.Builder

	for y := 0; y < g.h; y++ {
		if y > 0 {
			out.WriteByte('\n')
		}
		row := g.cells[y*g.w : (y+1)*g.w]
		for start := 0; start < len(row); {
			area := row[start].area
			seg.Reset()
			for start < len(row) && row[start].area == area {
				end := start
				run.Reset()
				for end < len(row) && row[end].area == area && row[end].style == row[start].style {
					run.WriteRune(row[end].r)
					end++
				}
				seg.WriteString(styles.Render(row[start].style, run.String()))
				start = end
			}
			if area != "" {
				out.WriteString(zone.Mark(RowZoneID(area, y), seg.String()))
			} else {
				out.WriteString(seg.String())
			}
		}
	}
	return out.String()
}
