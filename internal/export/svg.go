package export

import (
	"bufio"
	"fmt"
	"io"
	"os"

	svg "github.com/ajstarks/svgo/float"
)

// Viewport is the SVG viewBox in plane coordinates.
type Viewport struct {
	MinX, MinY    float64
	Width, Height float64
}

// SquareView is the symmetric viewport of half-width radius about the
// origin. The classic render uses radius 1.2: the unit disk plus the
// default margin.
func SquareView(radius float64) Viewport {
	return Viewport{MinX: -radius, MinY: -radius, Width: 2 * radius, Height: 2 * radius}
}

// WriteSVG emits the limit-set document: one path drawn as a thin
// black line, no fill, over a transparent background.
func WriteSVG(w io.Writer, pathData string, view Viewport, strokeWidth float64) {
	canvas := svg.New(w)
	canvas.Startview(view.Width, view.Height, view.MinX, view.MinY, view.Width, view.Height)
	canvas.Path(pathData, fmt.Sprintf(`fill="none" stroke="black" stroke-width="%g"`, strokeWidth))
	canvas.End()
}

// SaveSVG writes the document to path.
func SaveSVG(path, pathData string, view Viewport, strokeWidth float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	WriteSVG(bw, pathData, view, strokeWidth)
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
