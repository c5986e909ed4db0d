package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/william42/svg-kleinian/internal/curve"
)

// WritePointsCSV dumps the traced vertices as index,x,y rows. Twelve
// decimals keep the closure error visible in the dump.
func WritePointsCSV(w io.Writer, pts []curve.Point) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"index", "x", "y"}); err != nil {
		return err
	}
	for i, p := range pts {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(p.X, 'f', 12, 64),
			strconv.FormatFloat(p.Y, 'f', 12, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SavePointsCSV writes the vertex dump to path.
func SavePointsCSV(path string, pts []curve.Point) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePointsCSV(f, pts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// RenderMeta records what a render produced and how long it took.
type RenderMeta struct {
	TraceA    string    `json:"trace_a"`
	TraceB    string    `json:"trace_b"`
	Depth     int       `json:"depth"`
	Epsilon   float64   `json:"epsilon"`
	Output    string    `json:"output"`
	Timestamp time.Time `json:"timestamp"`
	ElapsedMS float64   `json:"elapsed_ms"`
	Vertices  int       `json:"vertices"`
	Segments  int       `json:"segments"`
	Length    float64   `json:"length"`
	MaxRadius float64   `json:"max_radius"`
	Closure   float64   `json:"closure"`
}

// WriteRenderJSON pretty-prints the metadata record.
func WriteRenderJSON(w io.Writer, meta RenderMeta) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

// SaveRenderJSON writes the metadata record to path.
func SaveRenderJSON(path string, meta RenderMeta) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteRenderJSON(f, meta); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
