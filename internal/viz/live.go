package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/william42/svg-kleinian/internal/config"
	"github.com/william42/svg-kleinian/internal/curve"
	"github.com/william42/svg-kleinian/internal/export"
	"github.com/william42/svg-kleinian/internal/kleinian"
)

const (
	canvasWidth  = 60
	canvasHeight = 30
	chartSamples = 120

	// maxExploreVertices caps each retrace so that divergent corners of
	// the parameter space stay responsive under the cursor keys.
	maxExploreVertices = 300000

	traceStep  = 0.01
	minEpsilon = 1e-6
	maxEpsilon = 0.1
)

// paramNames labels the tunable fields in tab order.
var paramNames = [...]string{"re ta", "im ta", "re tb", "im tb", "depth", "epsilon"}

type styleSet struct {
	canvas lipgloss.Style
	stats  lipgloss.Style
	header lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	active lipgloss.Style
	errMsg lipgloss.Style
	graph  lipgloss.Style
	help   lipgloss.Style
}

func newStyles(t Theme) styleSet {
	return styleSet{
		canvas: lipgloss.NewStyle().Padding(1, 2),
		stats:  lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(t.Muted).Padding(1, 2).Width(42),
		header: lipgloss.NewStyle().Foreground(t.Header).Bold(true).MarginBottom(1),
		label:  lipgloss.NewStyle().Foreground(t.Label).Width(12),
		value:  lipgloss.NewStyle().Foreground(t.Value),
		active: lipgloss.NewStyle().Foreground(t.Active).Bold(true),
		errMsg: lipgloss.NewStyle().Foreground(t.Error).Bold(true),
		graph:  lipgloss.NewStyle().Foreground(t.Header).Padding(1, 0),
		help:   lipgloss.NewStyle().Foreground(t.Muted).MarginTop(2),
	}
}

// Explorer is an interactive browser for the trace parameter plane.
// Every parameter change reruns the recipe and retraces the limit set
// onto a Braille canvas.
type Explorer struct {
	ta, tb  complex128
	depth   int
	epsilon float64

	homeTa, homeTb complex128
	homeDepth      int
	homeEps        float64

	output string
	stroke float64
	margin float64

	canvas    *Canvas
	styles    styleSet
	theme     Theme
	selected  int
	presetIdx int

	pts      []curve.Point
	radii    []float64
	summary  curve.Summary
	elapsed  time.Duration
	err      error
	status   string
	showHelp bool
}

// NewExplorer builds an explorer seeded from cfg and traces the first
// view. The config must already be validated. Unknown theme names fall
// back to the default scheme.
func NewExplorer(cfg *config.Config, themeName string) (Explorer, error) {
	ta, tb, err := cfg.Traces()
	if err != nil {
		return Explorer{}, err
	}
	theme := GetTheme(themeName)
	e := Explorer{
		ta:        ta,
		tb:        tb,
		depth:     cfg.Depth,
		epsilon:   cfg.Epsilon,
		homeTa:    ta,
		homeTb:    tb,
		homeDepth: cfg.Depth,
		homeEps:   cfg.Epsilon,
		output:    cfg.Output,
		stroke:    cfg.StrokeWidth,
		margin:    cfg.Margin,
		canvas:    NewCanvas(canvasWidth, canvasHeight),
		theme:     theme,
		styles:    newStyles(theme),
	}
	e.retrace()
	return e, nil
}

func (e Explorer) Init() tea.Cmd {
	return nil
}

// Update handles key events. Parameter edits retrace immediately.
func (e Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return e, tea.Quit
		case "tab":
			e.selected = (e.selected + 1) % len(paramNames)
		case "shift+tab":
			e.selected = (e.selected + len(paramNames) - 1) % len(paramNames)
		case "up", "k":
			e.adjust(1)
		case "down", "j":
			e.adjust(-1)
		case "p":
			e.cyclePreset()
		case "t":
			e.cycleTheme()
		case "r":
			e.reset()
		case "s":
			e.save()
		case "?":
			e.showHelp = !e.showHelp
		}
	}
	return e, nil
}

// adjust nudges the selected parameter. Trace components move by a
// fixed step, depth by one level, epsilon by powers of two.
func (e *Explorer) adjust(dir float64) {
	switch e.selected {
	case 0:
		e.ta += complex(traceStep*dir, 0)
	case 1:
		e.ta += complex(0, traceStep*dir)
	case 2:
		e.tb += complex(traceStep*dir, 0)
	case 3:
		e.tb += complex(0, traceStep*dir)
	case 4:
		e.depth += int(dir)
		if e.depth < 1 {
			e.depth = 1
		}
	case 5:
		if dir > 0 {
			e.epsilon *= 2
		} else {
			e.epsilon /= 2
		}
		if e.epsilon > maxEpsilon {
			e.epsilon = maxEpsilon
		} else if e.epsilon < minEpsilon {
			e.epsilon = minEpsilon
		}
	}
	e.status = ""
	e.retrace()
}

func (e *Explorer) cyclePreset() {
	names := config.PresetNames()
	if len(names) == 0 {
		return
	}
	e.presetIdx = (e.presetIdx + 1) % len(names)
	p := config.GetPreset(names[e.presetIdx])
	ta, tb, err := p.Traces()
	if err != nil {
		e.status = "bad preset: " + err.Error()
		return
	}
	e.ta, e.tb = ta, tb
	e.depth, e.epsilon = p.Depth, p.Epsilon
	e.status = "preset: " + names[e.presetIdx]
	e.retrace()
}

func (e *Explorer) cycleTheme() {
	next := 0
	for i, t := range Themes {
		if t.Name == e.theme.Name {
			next = (i + 1) % len(Themes)
			break
		}
	}
	e.theme = Themes[next]
	e.styles = newStyles(e.theme)
	e.status = "theme: " + e.theme.Name
}

func (e *Explorer) reset() {
	e.ta, e.tb = e.homeTa, e.homeTb
	e.depth, e.epsilon = e.homeDepth, e.homeEps
	e.status = "reset"
	e.retrace()
}

// save writes the current curve as SVG to the configured output path.
func (e *Explorer) save() {
	if len(e.pts) == 0 {
		e.status = "nothing to save"
		return
	}
	var pd curve.PathData
	pd.MoveTo(e.pts[0].X, e.pts[0].Y)
	for _, p := range e.pts[1:] {
		pd.LineTo(p.X, p.Y)
	}
	view := export.SquareView(1 + e.margin)
	if err := export.SaveSVG(e.output, pd.String(), view, e.stroke); err != nil {
		e.status = "save failed: " + err.Error()
		return
	}
	e.status = "wrote " + e.output
}

// retrace reruns the recipe and redraws the canvas. Degenerate trace
// pairs clear the drawing and surface the error instead.
func (e *Explorer) retrace() {
	start := time.Now()
	e.canvas.Clear()
	group, err := kleinian.Grandma(e.ta, e.tb)
	if err != nil {
		e.err = err
		e.pts = nil
		e.radii = nil
		e.summary = curve.Summary{}
		return
	}
	e.err = nil
	var pl curve.PointList
	group.LimitSet(&pl, kleinian.TraceOptions{
		Depth:       e.depth,
		Epsilon:     e.epsilon,
		MaxVertices: maxExploreVertices,
	})
	e.pts = pl.Points()
	e.summary = curve.Summarize(e.pts)
	e.radii = radiusProfile(e.pts, chartSamples)
	e.canvas.DrawPolyline(e.pts, 1+e.margin)
	e.elapsed = time.Since(start)
}

// radiusProfile samples |z| along the curve for the inset chart.
func radiusProfile(pts []curve.Point, samples int) []float64 {
	if len(pts) == 0 || samples <= 0 {
		return nil
	}
	step := (len(pts) + samples - 1) / samples
	out := make([]float64, 0, samples)
	for i := 0; i < len(pts); i += step {
		out = append(out, math.Hypot(pts[i].X, pts[i].Y))
	}
	return out
}

func (e Explorer) View() string {
	canvasView := e.styles.canvas.Render(e.canvas.String())
	var s strings.Builder
	s.WriteString(e.styles.header.Render("KLEINIAN LIMIT SET") + "\n")
	if e.err != nil {
		s.WriteString(e.styles.errMsg.Render("DEGENERATE TRACES") + "\n\n")
	} else {
		s.WriteString(fmt.Sprintf("TRACED %d VERTICES IN %dms\n\n", e.summary.Points, e.elapsed.Milliseconds()))
	}
	if len(e.radii) > 1 {
		chart := asciigraph.Plot(e.radii, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Radius"))
		s.WriteString(e.styles.graph.Render(chart) + "\n\n")
	}
	s.WriteString("PARAMETERS\n")
	params := []string{
		fmt.Sprintf("%.4f", real(e.ta)),
		fmt.Sprintf("%.4f", imag(e.ta)),
		fmt.Sprintf("%.4f", real(e.tb)),
		fmt.Sprintf("%.4f", imag(e.tb)),
		fmt.Sprintf("%d", e.depth),
		fmt.Sprintf("%.1e", e.epsilon),
	}
	for i, val := range params {
		if i == e.selected {
			s.WriteString(e.styles.active.Render("> "+fmt.Sprintf("%-12s%s", paramNames[i], val)) + "\n")
		} else {
			s.WriteString("  " + e.styles.label.Render(paramNames[i]) + e.styles.value.Render(val) + "\n")
		}
	}
	s.WriteString("\n")
	s.WriteString(e.styles.label.Render("Length") + e.styles.value.Render(fmt.Sprintf("%.3f", e.summary.Length)) + "\n")
	s.WriteString(e.styles.label.Render("Max radius") + e.styles.value.Render(fmt.Sprintf("%.4f", e.summary.MaxRadius)) + "\n")
	s.WriteString(e.styles.label.Render("Closure") + e.styles.value.Render(fmt.Sprintf("%.1e", e.summary.Closure)) + "\n")
	if e.summary.Points >= maxExploreVertices {
		s.WriteString(e.styles.errMsg.Render("vertex budget hit, raise epsilon") + "\n")
	}
	if e.status != "" {
		s.WriteString("\n" + e.styles.value.Render(e.status) + "\n")
	}
	s.WriteString(e.styles.help.Render("\n─────────────────────\nTab:Param ↑↓:Tune P:Preset\nT:Theme S:Save R:Reset\nQ:Quit ?:Help"))
	statsView := e.styles.stats.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if e.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Tab      - Cycle parameters         ║
║  Up/K     - Increase parameter       ║
║  Down/J   - Decrease parameter       ║
║  P        - Cycle presets            ║
║  T        - Cycle themes             ║
║  S        - Save SVG snapshot        ║
║  R        - Reset parameters         ║
║  Q        - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}
