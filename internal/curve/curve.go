// Package curve collects polyline output from the limit-set traversal.
// The traversal talks to a Builder; implementations turn the move/line
// commands into SVG path data, vertex lists for analysis and preview,
// or both at once.
package curve

import (
	"strconv"
	"strings"
)

// Builder receives a polyline as a move followed by line segments.
type Builder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
}

// Point is a vertex in the drawing plane.
type Point struct {
	X, Y float64
}

// PathData accumulates SVG path data ("M x,y L x,y ..."). The zero
// value is ready to use.
type PathData struct {
	sb       strings.Builder
	commands int
}

// MoveTo starts a subpath at (x, y).
func (p *PathData) MoveTo(x, y float64) {
	p.cmd('M', x, y)
}

// LineTo draws a segment to (x, y).
func (p *PathData) LineTo(x, y float64) {
	p.cmd('L', x, y)
}

// String returns the accumulated path data.
func (p *PathData) String() string {
	return p.sb.String()
}

// Commands returns the number of commands written so far.
func (p *PathData) Commands() int {
	return p.commands
}

func (p *PathData) cmd(op byte, x, y float64) {
	if p.commands > 0 {
		p.sb.WriteByte(' ')
	}
	p.sb.WriteByte(op)
	p.sb.WriteString(formatCoord(x))
	p.sb.WriteByte(',')
	p.sb.WriteString(formatCoord(y))
	p.commands++
}

// Six decimals resolves 1e-6 plane units, three orders finer than the
// default stroke width.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// PointList records every vertex. MoveTo starts a fresh polyline,
// discarding earlier points.
type PointList struct {
	pts []Point
}

// MoveTo resets the list to the single starting vertex.
func (p *PointList) MoveTo(x, y float64) {
	p.pts = p.pts[:0]
	p.pts = append(p.pts, Point{X: x, Y: y})
}

// LineTo appends a vertex.
func (p *PointList) LineTo(x, y float64) {
	p.pts = append(p.pts, Point{X: x, Y: y})
}

// Points returns the recorded vertices. The slice is reused by the next
// MoveTo.
func (p *PointList) Points() []Point {
	return p.pts
}

// Multi fans commands out to several builders so one traversal can feed
// the SVG path and the vertex list together.
func Multi(builders ...Builder) Builder {
	return multi(builders)
}

type multi []Builder

func (m multi) MoveTo(x, y float64) {
	for _, b := range m {
		b.MoveTo(x, y)
	}
}

func (m multi) LineTo(x, y float64) {
	for _, b := range m {
		b.LineTo(x, y)
	}
}
