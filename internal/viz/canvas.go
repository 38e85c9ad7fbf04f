package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-gl/mathgl/mgl64"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
const brailleBase = 0x2800

var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a Braille raster with one color per character cell.
// Its resolution in dots is (Width*2) x (Height*4).
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]lipgloss.Color
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Colors: make([][]lipgloss.Color, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]lipgloss.Color, w)
	}
	c.Clear()
	return c
}

// Set lights the dot at (x, y) and paints its cell with color.
// An empty color leaves the cell color unchanged.
func (c *Canvas) Set(x, y int, color lipgloss.Color) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= pixelMap[y%4][x%2]
	if color != "" {
		c.Colors[row][col] = color
	}
}

// IsSet reports whether the dot at (x, y) is lit.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return false
	}
	return c.Grid[row][col]&pixelMap[y%4][x%2] != 0
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBase
			c.Colors[i][j] = ""
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, color lipgloss.Color) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0, color)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// String renders the canvas without color.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

// Render renders the canvas with lipgloss colors per cell.
func (c *Canvas) Render() string {
	var b strings.Builder
	for i, row := range c.Grid {
		for j, r := range row {
			if col := c.Colors[i][j]; col != "" && r != brailleBase {
				b.WriteString(lipgloss.NewStyle().Foreground(col).Render(string(r)))
			} else {
				b.WriteRune(r)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Viewport maps world coordinates onto canvas dots with y pointing up.
type Viewport struct {
	Min, Max mgl64.Vec2
	canvas   *Canvas
}

func NewViewport(c *Canvas, min, max mgl64.Vec2) *Viewport {
	return &Viewport{Min: min, Max: max, canvas: c}
}

// Dot converts a world point to dot coordinates.
func (v *Viewport) Dot(p mgl64.Vec2) (int, int) {
	w := float64(v.canvas.Width*2 - 1)
	h := float64(v.canvas.Height*4 - 1)
	span := v.Max.Sub(v.Min)
	if span[0] == 0 {
		span[0] = 1
	}
	if span[1] == 0 {
		span[1] = 1
	}
	x := (p[0] - v.Min[0]) / span[0] * w
	y := h - (p[1]-v.Min[1])/span[1]*h
	return int(math.Round(x)), int(math.Round(y))
}

func (v *Viewport) Line(a, b mgl64.Vec2, color lipgloss.Color) {
	x0, y0 := v.Dot(a)
	x1, y1 := v.Dot(b)
	v.canvas.DrawLine(x0, y0, x1, y1, color)
}

// Arrow draws a shaft from origin to origin+vec with a two-stroke head.
// Zero-length vectors are skipped.
func (v *Viewport) Arrow(origin, vec mgl64.Vec2, color lipgloss.Color) {
	length := vec.Len()
	if length == 0 {
		return
	}
	tip := origin.Add(vec)
	v.Line(origin, tip, color)

	head := math.Min(length*0.25, v.Max.Sub(v.Min).Len()*0.03)
	back := vec.Normalize().Mul(-head)
	for _, a := range []float64{math.Pi / 6, -math.Pi / 6} {
		sin, cos := math.Sincos(a)
		wing := mgl64.Vec2{back[0]*cos - back[1]*sin, back[0]*sin + back[1]*cos}
		v.Line(tip, tip.Add(wing), color)
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
