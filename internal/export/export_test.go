package export

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/william42/svg-kleinian/internal/curve"
)

func TestSquareView(t *testing.T) {
	v := SquareView(1.2)
	if v.MinX != -1.2 || v.MinY != -1.2 || v.Width != 2.4 || v.Height != 2.4 {
		t.Errorf("SquareView(1.2) = %+v", v)
	}
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	WriteSVG(&buf, "M1.000000,0.000000 L-1.000000,0.000000", SquareView(1.2), 0.001)
	out := buf.String()

	for _, want := range []string{
		"<svg",
		"viewBox=",
		"<path",
		`fill="none"`,
		`stroke="black"`,
		`stroke-width="0.001"`,
		"M1.000000,0.000000 L-1.000000,0.000000",
		"</svg>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG output missing %q:\n%s", want, out)
		}
	}
}

func TestSaveSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.svg")
	if err := SaveSVG(path, "M0,0 L1,1", SquareView(1.2), 0.001); err != nil {
		t.Fatalf("save: %v", err)
	}
}

func TestWritePointsCSV(t *testing.T) {
	var buf bytes.Buffer
	pts := []curve.Point{{X: 1, Y: 0}, {X: -0.2, Y: -0.4}}
	if err := WritePointsCSV(&buf, pts); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "index,x,y\n" +
		"0,1.000000000000,0.000000000000\n" +
		"1,-0.200000000000,-0.400000000000\n"
	if got := buf.String(); got != want {
		t.Errorf("csv = %q, want %q", got, want)
	}
}

func TestRenderJSONRoundTrip(t *testing.T) {
	meta := RenderMeta{
		TraceA:    "2",
		TraceB:    "2",
		Depth:     50,
		Epsilon:   1e-3,
		Output:    "limitset.svg",
		Timestamp: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
		ElapsedMS: 41.5,
		Vertices:  130663,
		Segments:  130662,
		Length:    14.2,
		MaxRadius: 1.0,
		Closure:   9e-15,
	}
	var buf bytes.Buffer
	if err := WriteRenderJSON(&buf, meta); err != nil {
		t.Fatalf("write: %v", err)
	}
	var back RenderMeta
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != meta {
		t.Errorf("round trip changed metadata: %+v vs %+v", back, meta)
	}
}
