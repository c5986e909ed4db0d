package viz

import (
	"math"
	"strings"

	"github.com/william42/svg-kleinian/internal/curve"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a monochrome pixel buffer rendered with Braille characters.
// A Width x Height character grid addresses (Width*2) x (Height*4)
// sub-pixels, which is enough resolution to sketch a limit set inline.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800 // Empty braille char
		}
	}
	return c
}

// Set turns on the sub-pixel at (x, y). Coordinates outside the canvas
// are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	subX := x % 2
	subY := y % 4

	c.Grid[row][col] |= rune(pixelMap[subY][subX])
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
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
		c.Set(x0, y0)
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

// DrawPolyline strokes consecutive vertices of a plane polyline,
// mapping the square [-radius, radius] on both axes onto the full
// sub-pixel grid. The y axis is flipped so the upper half plane renders
// upward. Vertices far outside the square are clamped to one canvas
// width beyond the edge, which keeps segment directions intact without
// overflowing the pixel coordinates.
func (c *Canvas) DrawPolyline(pts []curve.Point, radius float64) {
	if len(pts) == 0 || radius <= 0 {
		return
	}
	pw := float64(2*c.Width - 1)
	ph := float64(4*c.Height - 1)
	pixel := func(p curve.Point) (int, int) {
		nx := clampView((p.X + radius) / (2 * radius))
		ny := clampView((p.Y + radius) / (2 * radius))
		return int(nx * pw), int((1 - ny) * ph)
	}

	x0, y0 := pixel(pts[0])
	c.Set(x0, y0)
	for _, p := range pts[1:] {
		x1, y1 := pixel(p)
		c.DrawLine(x0, y0, x1, y1)
		x0, y0 = x1, y1
	}
}

// clampView restricts a normalized coordinate to [-1, 2], one canvas
// width outside the visible [0, 1] range.
func clampView(v float64) float64 {
	if math.IsNaN(v) || v < -1 {
		return -1
	}
	if v > 2 {
		return 2
	}
	return v
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
