package main

import (
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"github.com/william42/svg-kleinian/internal/config"
	"github.com/william42/svg-kleinian/internal/curve"
	"github.com/william42/svg-kleinian/internal/export"
	"github.com/william42/svg-kleinian/internal/kleinian"
	"github.com/william42/svg-kleinian/internal/viz"
)

var (
	traceA      string
	traceB      string
	depth       int
	epsilon     float64
	output      string
	strokeWidth float64
	margin      float64
	// Extra sinks
	csvPath  string
	jsonPath string
	quiet    bool
	// Config file
	configFile string
	// Preset name
	preset string
	// Explorer theme
	themeName string
)

// main registers the CLI commands and flags, launches the interactive
// explorer when no subcommand is given, and executes the root command.
// It exits the process with status 1 if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "kleinian",
		Short: "limit set renderer for two-generator Kleinian groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive explorer when no command given
			return launchExplorer(config.DefaultConfig())
		},
	}

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "trace the limit set and write it as SVG",
		RunE:  renderLimitSet,
	}
	renderCmd.Flags().StringVar(&traceA, "ta", "2", "trace of generator a (complex, e.g. 1.91+0.05i)")
	renderCmd.Flags().StringVar(&traceB, "tb", "2", "trace of generator b")
	renderCmd.Flags().IntVar(&depth, "depth", config.DefaultDepth, "maximum word length")
	renderCmd.Flags().Float64Var(&epsilon, "epsilon", config.DefaultEpsilon, "termination distance")
	renderCmd.Flags().StringVar(&output, "out", config.DefaultOutput, "output SVG path")
	renderCmd.Flags().Float64Var(&strokeWidth, "stroke", config.DefaultStrokeWidth, "SVG stroke width")
	renderCmd.Flags().Float64Var(&margin, "margin", config.DefaultMargin, "viewport margin beyond the unit disk")
	renderCmd.Flags().StringVar(&csvPath, "csv", "", "also write the vertices as CSV")
	renderCmd.Flags().StringVar(&jsonPath, "json", "", "also write render metadata as JSON")
	renderCmd.Flags().BoolVar(&quiet, "quiet", false, "suppress progress output")
	renderCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	renderCmd.Flags().StringVar(&preset, "preset", "", "use preset parameters")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "trace the limit set and report curve statistics",
		RunE:  analyzeLimitSet,
	}
	analyzeCmd.Flags().StringVar(&traceA, "ta", "2", "trace of generator a")
	analyzeCmd.Flags().StringVar(&traceB, "tb", "2", "trace of generator b")
	analyzeCmd.Flags().IntVar(&depth, "depth", config.DefaultDepth, "maximum word length")
	analyzeCmd.Flags().Float64Var(&epsilon, "epsilon", config.DefaultEpsilon, "termination distance")
	analyzeCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	analyzeCmd.Flags().StringVar(&preset, "preset", "", "use preset parameters")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark the traversal across depths and epsilons",
		RunE:  benchTraversal,
	}
	benchCmd.Flags().StringVar(&traceA, "ta", "2", "trace of generator a")
	benchCmd.Flags().StringVar(&traceB, "tb", "2", "trace of generator b")
	benchCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	benchCmd.Flags().StringVar(&preset, "preset", "", "use preset parameters")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "explore the trace parameter plane interactively",
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&traceA, "ta", "2", "trace of generator a")
	liveCmd.Flags().StringVar(&traceB, "tb", "2", "trace of generator b")
	liveCmd.Flags().IntVar(&depth, "depth", config.DefaultDepth, "maximum word length")
	liveCmd.Flags().Float64Var(&epsilon, "epsilon", config.DefaultEpsilon, "termination distance")
	liveCmd.Flags().StringVar(&output, "out", config.DefaultOutput, "SVG path for snapshots")
	liveCmd.Flags().Float64Var(&strokeWidth, "stroke", config.DefaultStrokeWidth, "SVG stroke width")
	liveCmd.Flags().Float64Var(&margin, "margin", config.DefaultMargin, "viewport margin beyond the unit disk")
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset parameters")
	liveCmd.Flags().StringVar(&themeName, "theme", "default",
		"color theme: "+strings.Join(viz.ThemeNames(), ", "))

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list the named parameter sets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTA\tTB\tDEPTH\tEPSILON")
			for _, name := range config.PresetNames() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%g\n", name, p.TraceA, p.TraceB, p.Depth, p.Epsilon)
			}
			return w.Flush()
		},
	}

	configCmd := &cobra.Command{
		Use:   "config [path]",
		Short: "write a starter config file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  writeConfig,
	}
	configCmd.Flags().StringVar(&traceA, "ta", "2", "trace of generator a")
	configCmd.Flags().StringVar(&traceB, "tb", "2", "trace of generator b")
	configCmd.Flags().IntVar(&depth, "depth", config.DefaultDepth, "maximum word length")
	configCmd.Flags().Float64Var(&epsilon, "epsilon", config.DefaultEpsilon, "termination distance")
	configCmd.Flags().StringVar(&output, "out", config.DefaultOutput, "output SVG path")
	configCmd.Flags().Float64Var(&strokeWidth, "stroke", config.DefaultStrokeWidth, "SVG stroke width")
	configCmd.Flags().Float64Var(&margin, "margin", config.DefaultMargin, "viewport margin beyond the unit disk")
	configCmd.Flags().StringVar(&preset, "preset", "", "start from preset parameters")

	rootCmd.AddCommand(renderCmd, analyzeCmd, benchCmd, liveCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveParams merges the parameter sources: preset first, then
// config file, then explicit flags on top.
func resolveParams(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.PresetNames())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	// CLI flags override preset and config file
	if cmd.Flags().Changed("ta") {
		cfg.TraceA = traceA
	}
	if cmd.Flags().Changed("tb") {
		cfg.TraceB = traceB
	}
	if cmd.Flags().Changed("depth") {
		cfg.Depth = depth
	}
	if cmd.Flags().Changed("epsilon") {
		cfg.Epsilon = epsilon
	}
	if cmd.Flags().Changed("out") {
		cfg.Output = output
	}
	if cmd.Flags().Changed("stroke") {
		cfg.StrokeWidth = strokeWidth
	}
	if cmd.Flags().Changed("margin") {
		cfg.Margin = margin
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func buildGroup(cfg *config.Config) (*kleinian.Group, complex128, complex128, error) {
	ta, tb, err := cfg.Traces()
	if err != nil {
		return nil, 0, 0, err
	}
	g, err := kleinian.Grandma(ta, tb)
	if err != nil {
		return nil, 0, 0, err
	}
	return g, ta, tb, nil
}

func renderLimitSet(cmd *cobra.Command, args []string) error {
	cfg, err := resolveParams(cmd)
	if err != nil {
		return err
	}
	g, ta, tb, err := buildGroup(cfg)
	if err != nil {
		return err
	}

	// The path data is always built; vertices are collected alongside
	// only when something will consume them.
	var path curve.PathData
	var points curve.PointList
	sink := curve.Builder(&path)
	if csvPath != "" || jsonPath != "" || !quiet {
		sink = curve.Multi(&path, &points)
	}

	if !quiet {
		fmt.Printf("tracing limit set for ta=%v tb=%v...\n", ta, tb)
	}
	start := time.Now()
	g.LimitSet(sink, kleinian.TraceOptions{Depth: cfg.Depth, Epsilon: cfg.Epsilon})
	elapsed := time.Since(start)

	view := export.SquareView(1 + cfg.Margin)
	if err := export.SaveSVG(cfg.Output, path.String(), view, cfg.StrokeWidth); err != nil {
		return err
	}

	if csvPath != "" {
		if err := export.SavePointsCSV(csvPath, points.Points()); err != nil {
			return err
		}
	}

	s := curve.Summarize(points.Points())

	if jsonPath != "" {
		meta := export.RenderMeta{
			TraceA:    cfg.TraceA,
			TraceB:    cfg.TraceB,
			Depth:     cfg.Depth,
			Epsilon:   cfg.Epsilon,
			Output:    cfg.Output,
			Timestamp: time.Now().UTC(),
			ElapsedMS: float64(elapsed.Microseconds()) / 1000,
			Vertices:  s.Points,
			Segments:  s.Segments,
			Length:    s.Length,
			MaxRadius: s.MaxRadius,
			Closure:   s.Closure,
		}
		if err := export.SaveRenderJSON(jsonPath, meta); err != nil {
			return err
		}
	}

	if !quiet {
		fmt.Printf("traced in %v\n", elapsed)
		fmt.Printf("vertices: %d\n", s.Points)
		fmt.Printf("length: %.4f\n", s.Length)
		fmt.Printf("max radius: %.6f\n", s.MaxRadius)
		fmt.Printf("closure: %.2e\n", s.Closure)
		fmt.Printf("wrote %s\n", cfg.Output)
	}

	return nil
}

func analyzeLimitSet(cmd *cobra.Command, args []string) error {
	cfg, err := resolveParams(cmd)
	if err != nil {
		return err
	}
	g, ta, tb, err := buildGroup(cfg)
	if err != nil {
		return err
	}

	var points curve.PointList
	start := time.Now()
	g.LimitSet(&points, kleinian.TraceOptions{Depth: cfg.Depth, Epsilon: cfg.Epsilon})
	elapsed := time.Since(start)

	pts := points.Points()
	s := curve.Summarize(pts)

	fmt.Printf("limit set analysis: ta=%v tb=%v\n", ta, tb)
	fmt.Printf("depth: %d, epsilon: %g\n\n", cfg.Depth, cfg.Epsilon)
	fmt.Printf("vertices: %d\n", s.Points)
	fmt.Printf("segments: %d\n", s.Segments)
	fmt.Printf("length: %.4f\n", s.Length)
	fmt.Printf("max radius: %.6f\n", s.MaxRadius)
	fmt.Printf("closure: %.2e\n", s.Closure)
	fmt.Printf("traced in %v\n\n", elapsed)

	graph := asciigraph.Plot(downsample(curve.Radii(pts), 400),
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("radius along the curve"),
	)
	fmt.Println(graph)
	fmt.Println()

	if segs := segmentLengths(pts); len(segs) > 1 {
		graph = asciigraph.Plot(downsample(segs, 400),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("segment length along the curve"),
		)
		fmt.Println(graph)
	}

	return nil
}

// downsample keeps the plots readable for six-figure vertex counts.
func downsample(data []float64, max int) []float64 {
	if len(data) <= max {
		return data
	}
	step := (len(data) + max - 1) / max
	out := make([]float64, 0, max)
	for i := 0; i < len(data); i += step {
		out = append(out, data[i])
	}
	return out
}

func segmentLengths(pts []curve.Point) []float64 {
	if len(pts) < 2 {
		return nil
	}
	out := make([]float64, len(pts)-1)
	for i := 1; i < len(pts); i++ {
		out[i-1] = math.Hypot(pts[i].X-pts[i-1].X, pts[i].Y-pts[i-1].Y)
	}
	return out
}

func benchTraversal(cmd *cobra.Command, args []string) error {
	cfg, err := resolveParams(cmd)
	if err != nil {
		return err
	}
	g, ta, tb, err := buildGroup(cfg)
	if err != nil {
		return err
	}

	depths := []int{8, 12, 16, 24, 50}
	epsilons := []float64{4e-3, 1e-3, 2.5e-4}

	fmt.Printf("benchmarking traversal for ta=%v tb=%v\n\n", ta, tb)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DEPTH\tEPSILON\tVERTICES\tLENGTH\tCLOSURE\tTIME")

	for _, d := range depths {
		for _, eps := range epsilons {
			var points curve.PointList
			start := time.Now()
			g.LimitSet(&points, kleinian.TraceOptions{Depth: d, Epsilon: eps})
			elapsed := time.Since(start)

			s := curve.Summarize(points.Points())
			fmt.Fprintf(w, "%d\t%.1e\t%d\t%.4f\t%.2e\t%v\n",
				d, eps, s.Points, s.Length, s.Closure, elapsed)
		}
	}

	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveParams(cmd)
	if err != nil {
		return err
	}
	return launchExplorer(cfg)
}

func launchExplorer(cfg *config.Config) error {
	m, err := viz.NewExplorer(cfg, themeName)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func writeConfig(cmd *cobra.Command, args []string) error {
	path := "kleinian.yaml"
	if len(args) > 0 {
		path = args[0]
	}

	cfg, err := resolveParams(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
