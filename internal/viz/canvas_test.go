package viz

import (
	"math"
	"strings"
	"testing"

	"github.com/william42/svg-kleinian/internal/curve"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1)

	c.Set(0, 0)
	if c.Grid[0][0] != rune(0x2801) {
		t.Errorf("expected 0x2801 after Set(0,0), got %#x", c.Grid[0][0])
	}

	c.Set(1, 3)
	if c.Grid[0][0] != rune(0x2881) {
		t.Errorf("expected 0x2881 after Set(1,3), got %#x", c.Grid[0][0])
	}

	c.Set(2, 0)
	if c.Grid[0][1] != rune(0x2801) {
		t.Errorf("expected 0x2801 in second cell, got %#x", c.Grid[0][1])
	}

	// Out-of-range coordinates are ignored.
	c.Set(-1, 0)
	c.Set(0, -2)
	c.Set(4, 0)
	c.Set(0, 4)
	if c.Grid[0][0] != rune(0x2881) || c.Grid[0][1] != rune(0x2801) {
		t.Error("out-of-range Set modified the grid")
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(3, 2)
	c.Set(0, 0)
	c.Set(5, 7)
	c.Clear()
	for i, row := range c.Grid {
		for j, cell := range row {
			if cell != rune(0x2800) {
				t.Errorf("cell (%d,%d) not blank after Clear: %#x", i, j, cell)
			}
		}
	}
}

func TestDrawLine(t *testing.T) {
	c := NewCanvas(3, 1)
	c.DrawLine(0, 0, 5, 0)
	for j := 0; j < 3; j++ {
		if c.Grid[0][j] != rune(0x2809) {
			t.Errorf("horizontal line cell %d: expected 0x2809, got %#x", j, c.Grid[0][j])
		}
	}

	c = NewCanvas(1, 2)
	c.DrawLine(0, 0, 0, 7)
	for i := 0; i < 2; i++ {
		if c.Grid[i][0] != rune(0x2847) {
			t.Errorf("vertical line cell %d: expected 0x2847, got %#x", i, c.Grid[i][0])
		}
	}

	c = NewCanvas(2, 1)
	c.DrawLine(0, 0, 3, 3)
	if c.Grid[0][0] != rune(0x2811) {
		t.Errorf("diagonal first cell: expected 0x2811, got %#x", c.Grid[0][0])
	}
	if c.Grid[0][1] != rune(0x2884) {
		t.Errorf("diagonal second cell: expected 0x2884, got %#x", c.Grid[0][1])
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(2, 2)
	s := c.String()
	if got := strings.Count(s, "\n"); got != 2 {
		t.Errorf("expected 2 rows, got %d", got)
	}

	c.Set(0, 0)
	if !strings.Contains(c.String(), string(rune(0x2801))) {
		t.Error("expected set pixel to appear in String output")
	}
}

func TestDrawPolyline(t *testing.T) {
	c := NewCanvas(4, 2)
	square := []curve.Point{
		{X: -1, Y: -1},
		{X: 1, Y: -1},
		{X: 1, Y: 1},
		{X: -1, Y: 1},
		{X: -1, Y: -1},
	}
	c.DrawPolyline(square, 1)

	// The corners land on the extreme sub-pixels, with y flipped.
	corners := []struct {
		row, col int
		bit      rune
	}{
		{1, 0, 0x40}, // (-1,-1) -> pixel (0,7)
		{1, 3, 0x80}, // (1,-1)  -> pixel (7,7)
		{0, 3, 0x08}, // (1,1)   -> pixel (7,0)
		{0, 0, 0x01}, // (-1,1)  -> pixel (0,0)
	}
	for _, tc := range corners {
		if c.Grid[tc.row][tc.col]&tc.bit == 0 {
			t.Errorf("corner bit %#x missing in cell (%d,%d): got %#x", tc.bit, tc.row, tc.col, c.Grid[tc.row][tc.col])
		}
	}

	// The outline passes through every cell of this small canvas.
	for i, row := range c.Grid {
		for j, cell := range row {
			if cell == rune(0x2800) {
				t.Errorf("cell (%d,%d) untouched by square outline", i, j)
			}
		}
	}
}

func TestDrawPolylineSinglePoint(t *testing.T) {
	c := NewCanvas(4, 2)
	c.DrawPolyline([]curve.Point{{X: 0, Y: 0}}, 1)
	if c.Grid[0][1] != rune(0x2880) {
		t.Errorf("expected center pixel 0x2880, got %#x", c.Grid[0][1])
	}
}

func TestDrawPolylineOutOfRange(t *testing.T) {
	c := NewCanvas(4, 2)

	c.DrawPolyline(nil, 1)
	c.DrawPolyline([]curve.Point{{X: 0, Y: 0}}, 0)
	c.DrawPolyline([]curve.Point{{X: 50, Y: 50}, {X: math.NaN(), Y: 0}}, 1)

	for i, row := range c.Grid {
		for j, cell := range row {
			if cell != rune(0x2800) {
				t.Errorf("cell (%d,%d) set by out-of-range polyline: %#x", i, j, cell)
			}
		}
	}
}
