package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/desci-intelligent-universe/physics-tutorial/internal/analysis"
	"github.com/desci-intelligent-universe/physics-tutorial/internal/catalog"
	"github.com/desci-intelligent-universe/physics-tutorial/internal/config"
	"github.com/desci-intelligent-universe/physics-tutorial/internal/experiment"
	"github.com/desci-intelligent-universe/physics-tutorial/internal/export"
	"github.com/desci-intelligent-universe/physics-tutorial/internal/observability"
	"github.com/desci-intelligent-universe/physics-tutorial/internal/quantum"
	"github.com/desci-intelligent-universe/physics-tutorial/internal/server"
	"github.com/desci-intelligent-universe/physics-tutorial/internal/tui"
)

var (
	configFile string
	bind       string
	port       int
	accessLog  string
	noMetrics  bool
	// run/analyze/export parameters
	setParams []string
	preset    string
	asJSON    bool
	plot      bool
	// sweep
	sweepParam string
	sweepFrom  float64
	sweepTo    float64
	sweepSteps int
	// export
	outFile   string
	svgWidth  int
	svgHeight int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "phystutor",
		Short: "quantum physics teaching simulations",
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the simulation catalog over HTTP",
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	serveCmd.Flags().StringVar(&bind, "bind", config.DefaultBind, "bind address")
	serveCmd.Flags().IntVar(&port, "port", config.DefaultPort, "listen port")
	serveCmd.Flags().StringVar(&accessLog, "access-log", "", "access log file")
	serveCmd.Flags().BoolVar(&noMetrics, "no-metrics", false, "disable /metrics")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list simulations",
		RunE:  runList,
	}

	showCmd := &cobra.Command{
		Use:   "show [simulation]",
		Short: "show parameters and theory",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	runCmd := &cobra.Command{
		Use:   "run [simulation]",
		Short: "compute a simulation",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	runCmd.Flags().StringArrayVar(&setParams, "set", nil, "parameter value, name=value (repeatable)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset parameters")
	runCmd.Flags().BoolVar(&asJSON, "json", false, "print the full result envelope")
	runCmd.Flags().BoolVar(&plot, "plot", true, "plot the pattern")

	sweepCmd := &cobra.Command{
		Use:   "sweep [simulation]",
		Short: "sweep one parameter across a range",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringArrayVar(&setParams, "set", nil, "fixed parameter, name=value (repeatable)")
	sweepCmd.Flags().StringVar(&sweepParam, "param", "", "parameter to sweep")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0, "range start")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 0, "range end")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 5, "number of points")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [simulation]",
		Short: "fringe spectrum of a computed pattern",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnalyze,
	}
	analyzeCmd.Flags().StringArrayVar(&setParams, "set", nil, "parameter value, name=value (repeatable)")
	analyzeCmd.Flags().StringVar(&preset, "preset", "", "use preset parameters")

	exportCmd := &cobra.Command{
		Use:   "export-svg [simulation]",
		Short: "export a computed pattern to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  runExportSVG,
	}
	exportCmd.Flags().StringArrayVar(&setParams, "set", nil, "parameter value, name=value (repeatable)")
	exportCmd.Flags().StringVar(&preset, "preset", "", "use preset parameters")
	exportCmd.Flags().StringVar(&outFile, "out", "pattern.svg", "output file")
	exportCmd.Flags().IntVar(&svgWidth, "width", 800, "svg width")
	exportCmd.Flags().IntVar(&svgHeight, "height", 300, "svg height")

	presetsCmd := &cobra.Command{
		Use:   "presets [simulation]",
		Short: "list available presets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for simulation: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	exploreCmd := &cobra.Command{
		Use:   "explore [simulation]",
		Short: "interactive parameter explorer",
		Args:  cobra.ExactArgs(1),
		RunE:  runExplore,
	}
	exploreCmd.Flags().StringArrayVar(&setParams, "set", nil, "initial parameter, name=value (repeatable)")
	exploreCmd.Flags().StringVar(&preset, "preset", "", "start from preset parameters")

	rootCmd.AddCommand(serveCmd, listCmd, showCmd, runCmd, sweepCmd, analyzeCmd, exportCmd, presetsCmd, exploreCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	// CLI flags override config.
	if cmd.Flags().Changed("bind") {
		cfg.Bind = bind
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = port
	}
	if cmd.Flags().Changed("access-log") {
		cfg.AccessLog = accessLog
	}
	if noMetrics {
		cfg.Metrics = false
	}

	var collector *observability.Collector
	if cfg.Metrics {
		var err error
		collector, err = observability.NewCollector(nil)
		if err != nil {
			return err
		}
	}

	srv := server.New(server.Config{
		Bind:      cfg.Bind,
		Port:      cfg.Port,
		AccessLog: cfg.AccessLog,
		Metrics:   collector,
	}, catalog.New())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := srv.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDIFFICULTY\tMINUTES\tTOPICS")
	for _, info := range catalog.New().List() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			info.ID,
			info.Name,
			info.Difficulty,
			info.EstimatedTimeMinutes,
			strings.Join(info.Topics, ", "),
		)
	}
	return w.Flush()
}

func runShow(cmd *cobra.Command, args []string) error {
	details, err := catalog.New().Details(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n%s\n\nparameters:\n", details.Name, details.ID, details.Description)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  NAME\tKIND\tDEFAULT\tRANGE")
	for _, p := range details.Parameters {
		rng := "-"
		if p.Bounded() {
			rng = fmt.Sprintf("[%g, %g]", *p.Min, *p.Max)
		}
		fmt.Fprintf(w, "  %s\t%s\t%g\t%s\n", p.Name, p.Kind, p.Default, rng)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Println(details.Theory)
	return nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	id := args[0]
	raw, err := gatherParams(id)
	if err != nil {
		return err
	}

	result, err := experiment.NewRunner(catalog.New()).Run(id, raw)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Printf("result: %s\ncomputed_at: %s\n", result.ID, result.ComputedAt)
	for name, value := range result.Data {
		if name == "pattern" {
			continue
		}
		fmt.Printf("  %s: %v\n", name, value)
	}

	if plot {
		graph := asciigraph.Plot(result.Pattern(),
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.Caption(id),
		)
		fmt.Println(graph)
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	id := args[0]
	if sweepParam == "" {
		return fmt.Errorf("--param is required")
	}
	base, err := parseParams(setParams)
	if err != nil {
		return err
	}

	results, err := experiment.NewRunner(catalog.New()).RunSweep(id, base, experiment.Sweep{
		Param: sweepParam,
		From:  sweepFrom,
		To:    sweepTo,
		Steps: sweepSteps,
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tPEAK\tCENTER\n", strings.ToUpper(sweepParam))
	for _, r := range results {
		pattern := r.Pattern()
		peak := 0.0
		for _, v := range pattern {
			if v > peak {
				peak = v
			}
		}
		fmt.Fprintf(w, "%v\t%.4f\t%.4f\n", r.Data[sweepParam], peak, pattern[len(pattern)/2])
	}
	return w.Flush()
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	id := args[0]
	raw, err := gatherParams(id)
	if err != nil {
		return err
	}

	result, err := experiment.NewRunner(catalog.New()).Run(id, raw)
	if err != nil {
		return err
	}

	// Screen samples are 1mm apart for every kernel.
	spec := analysis.FringeSpectrum(result.Pattern(), 0.001)

	graph := asciigraph.Plot(spec.Power,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("spatial power spectrum"),
	)
	fmt.Println(graph)
	fmt.Println()

	if spec.DominantIndex == 0 {
		fmt.Println("no dominant spatial frequency (flat or single-lobe pattern)")
		return nil
	}
	fmt.Printf("fringe spacing: %.2f mm\n", spec.FringeSpacing*1000)

	if id == "double-slit" {
		wavelength, _ := result.Data["wavelength"].(float64)
		separation, _ := result.Data["slit_separation"].(float64)
		predicted := analysis.PredictedFringeSpacing(wavelength, separation, 1.0)
		fmt.Printf("predicted (lambda*L/d): %.2f mm\n", predicted*1000)
	}
	return nil
}

func runExportSVG(cmd *cobra.Command, args []string) error {
	id := args[0]
	raw, err := gatherParams(id)
	if err != nil {
		return err
	}

	result, err := experiment.NewRunner(catalog.New()).Run(id, raw)
	if err != nil {
		return err
	}

	svg := export.ProfileToSVG(result.Pattern(), svgWidth, svgHeight, "#00ff88")
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d samples)\n", outFile, quantum.PatternSize)
	return nil
}

func runExplore(cmd *cobra.Command, args []string) error {
	id := args[0]
	raw, err := gatherParams(id)
	if err != nil {
		return err
	}

	reg := catalog.New()
	sim, err := reg.Lookup(id)
	if err != nil {
		return err
	}
	values, err := experiment.NewRunner(reg).Resolve(id, raw)
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(sim, values))
	_, err = p.Run()
	return err
}

// gatherParams merges a preset (if named) with --set overrides.
func gatherParams(id string) (map[string]any, error) {
	raw := make(map[string]any)
	if preset != "" {
		params := config.GetPreset(id, preset)
		if params == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(id))
		}
		for k, v := range params {
			raw[k] = v
		}
	}
	overrides, err := parseParams(setParams)
	if err != nil {
		return nil, err
	}
	for k, v := range overrides {
		raw[k] = v
	}
	return raw, nil
}

// parseParams turns name=value pairs into a raw parameter map; booleans for
// toggles, floats for sliders.
func parseParams(pairs []string) (map[string]any, error) {
	raw := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid parameter %q, want name=value", pair)
		}
		switch value {
		case "true":
			raw[name] = true
		case "false":
			raw[name] = false
		default:
			f, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid value for %s: %q", name, value)
			}
			raw[name] = f
		}
	}
	return raw, nil
}
