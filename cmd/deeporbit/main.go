package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/deeporbit/internal/analysis"
	"github.com/san-kum/deeporbit/internal/config"
	"github.com/san-kum/deeporbit/internal/metrics"
	"github.com/san-kum/deeporbit/internal/nearearth"
	"github.com/san-kum/deeporbit/internal/store"
	"github.com/san-kum/deeporbit/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	epochStr   string
	ecc        float64
	incl       float64
	raan       float64
	argp       float64
	meanAnom   float64
	meanMotion float64
	startMin   float64
	stopMin    float64
	stepMin    float64
	field      string
	benchIters int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "deeporbit",
		Short: "deep-space orbital element propagation",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".deeporbit", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [name]",
		Short: "propagate a satellite and store the run",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPropagation,
	}
	addSatelliteFlags(runCmd)

	classifyCmd := &cobra.Command{
		Use:   "classify [name]",
		Short: "report resonance regime and derived quantities",
		Args:  cobra.MaximumNArgs(1),
		RunE:  classifySatellite,
	}
	addSatelliteFlags(classifyCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored element series",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&field, "field", "mean_motion", "element column to plot")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "summarize a stored run and detect periodicities",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored run as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	watchCmd := &cobra.Command{
		Use:   "watch [name]",
		Short: "propagate with a live element view",
		Args:  cobra.MaximumNArgs(1),
		RunE:  watchSatellite,
	}
	addSatelliteFlags(watchCmd)

	benchCmd := &cobra.Command{
		Use:   "bench [name]",
		Short: "time repeated propagation of one satellite",
		Args:  cobra.MaximumNArgs(1),
		RunE:  benchSatellite,
	}
	addSatelliteFlags(benchCmd)
	benchCmd.Flags().IntVar(&benchIters, "iters", 10000, "propagation calls to time")

	rootCmd.AddCommand(runCmd, classifyCmd, listCmd, plotCmd, analyzeCmd, exportCmd, watchCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addSatelliteFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "preset satellite (geostationary, molniya, gps, tundra)")
	cmd.Flags().StringVar(&epochStr, "epoch", "", "epoch timestamp (RFC 3339)")
	cmd.Flags().Float64Var(&ecc, "ecc", 0.001, "eccentricity")
	cmd.Flags().Float64Var(&incl, "incl", 0.573, "inclination (deg)")
	cmd.Flags().Float64Var(&raan, "raan", 80.0, "right ascension of ascending node (deg)")
	cmd.Flags().Float64Var(&argp, "argp", 45.0, "argument of perigee (deg)")
	cmd.Flags().Float64Var(&meanAnom, "ma", 120.0, "mean anomaly (deg)")
	cmd.Flags().Float64Var(&meanMotion, "mm", 1.00273896, "mean motion (rev/day)")
	cmd.Flags().Float64Var(&startMin, "start", 0, "series start (min since epoch)")
	cmd.Flags().Float64Var(&stopMin, "stop", config.DefaultSpanMin, "series stop (min since epoch)")
	cmd.Flags().Float64Var(&stepMin, "step", config.DefaultStepMin, "series step (min)")
}

// resolveConfig layers preset, config file and explicit flags, most
// specific last.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p, ok := config.Presets[preset]
		if !ok {
			return nil, fmt.Errorf("unknown preset %q", preset)
		}
		cp := *p
		cfg = &cp
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if len(args) > 0 {
		cfg.Name = args[0]
	}
	if cmd.Flags().Changed("epoch") {
		t, err := time.Parse(time.RFC3339, epochStr)
		if err != nil {
			return nil, fmt.Errorf("bad epoch: %w", err)
		}
		cfg.Epoch = t
	}
	if cmd.Flags().Changed("ecc") {
		cfg.Elements.Eccentricity = ecc
	}
	if cmd.Flags().Changed("incl") {
		cfg.Elements.Inclination = incl
	}
	if cmd.Flags().Changed("raan") {
		cfg.Elements.RAAN = raan
	}
	if cmd.Flags().Changed("argp") {
		cfg.Elements.ArgPerigee = argp
	}
	if cmd.Flags().Changed("ma") {
		cfg.Elements.MeanAnomaly = meanAnom
	}
	if cmd.Flags().Changed("mm") {
		cfg.Elements.MeanMotion = meanMotion
	}
	if cmd.Flags().Changed("start") {
		cfg.Span.Start = startMin
	}
	if cmd.Flags().Changed("stop") {
		cfg.Span.Stop = stopMin
	}
	if cmd.Flags().Changed("step") {
		cfg.Span.Step = stepMin
	}

	return cfg, cfg.Validate()
}

func buildDriver(cfg *config.Config) (*nearearth.Driver, error) {
	return nearearth.New(cfg.ToElements(), cfg.Epoch)
}

func runPropagation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	driver, err := buildDriver(cfg)
	if err != nil {
		return err
	}

	samples, err := driver.Series(context.Background(), cfg.Span.Start, cfg.Span.Stop, cfg.Span.Step)
	if err != nil {
		return err
	}

	ms := []metrics.Metric{
		metrics.NewValidity(),
		metrics.NewMeanMotionDrift(),
		metrics.NewEccentricityDrift(),
		metrics.NewInclinationDrift(),
	}
	values := metrics.Run(ms, samples)
	values["integrator_steps"] = float64(driver.DeepSpace().IntegratorSteps())

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(store.RunMetadata{
		Name:    cfg.Name,
		Epoch:   cfg.Epoch,
		Regime:  driver.DeepSpace().Regime().String(),
		Start:   cfg.Span.Start,
		Stop:    cfg.Span.Stop,
		Step:    cfg.Span.Step,
		Metrics: values,
	}, samples)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "run\t%s\n", runID)
	fmt.Fprintf(w, "regime\t%s\n", driver.DeepSpace().Regime())
	fmt.Fprintf(w, "samples\t%d\n", len(samples))
	for name, v := range values {
		fmt.Fprintf(w, "%s\t%g\n", name, v)
	}
	return w.Flush()
}

func classifySatellite(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	driver, err := buildDriver(cfg)
	if err != nil {
		return err
	}

	d := driver.Derived()
	el := cfg.ToElements()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "satellite\t%s\n", cfg.Name)
	fmt.Fprintf(w, "epoch\t%s\n", cfg.Epoch.Format(time.RFC3339))
	fmt.Fprintf(w, "period\t%.2f min\n", el.Period())
	fmt.Fprintf(w, "mean motion (kozai)\t%.10f rad/min\n", el.MeanMotion)
	fmt.Fprintf(w, "mean motion (brouwer)\t%.10f rad/min\n", d.MeanMotion)
	fmt.Fprintf(w, "semi-major axis\t%.6f earth radii\n", d.SemiMajor)
	fmt.Fprintf(w, "regime\t%s\n", driver.DeepSpace().Regime())
	sse, ssi, ssl, ssg, ssh := driver.DeepSpace().SecularRates()
	fmt.Fprintf(w, "de/dt\t%g\n", sse)
	fmt.Fprintf(w, "di/dt\t%g rad/min\n", ssi)
	fmt.Fprintf(w, "dM/dt\t%g rad/min\n", ssl)
	fmt.Fprintf(w, "dω/dt\t%g rad/min\n", ssg)
	fmt.Fprintf(w, "dΩ/dt\t%g rad/min\n", ssh)
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tREGIME\tSPAN (min)\tWHEN")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.0f–%.0f\t%s\n",
			r.ID, r.Name, r.Regime, r.Start, r.Stop, r.Timestamp.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	times, cols, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	values, ok := cols[field]
	if !ok {
		return fmt.Errorf("unknown field %q; have %s", field, columnNames(cols))
	}

	fmt.Println(viz.Plot(field, times, values, 70, 15))
	return nil
}

func columnNames(cols map[string][]float64) string {
	names := ""
	for name := range cols {
		if names != "" {
			names += ", "
		}
		names += name
	}
	return names
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	_, cols, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	names := make([]string, 0, len(cols))
	for name := range cols {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "run\t%s (%s, step %.0f min)\n", meta.ID, meta.Regime, meta.Step)
	fmt.Fprintln(w, "FIELD\tMEAN\tPEAK-TO-PEAK\tDOMINANT PERIOD (min)")
	for _, name := range names {
		s, err := analysis.Summarize(cols[name], meta.Step)
		if err != nil {
			return fmt.Errorf("column %s: %w", name, err)
		}
		fmt.Fprintf(w, "%s\t%.9g\t%.3g\t%.0f\n", name, s.Mean, s.PeakToPeak, s.DominantPeriod)
	}
	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	times, cols, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Meta   *store.RunMetadata   `json:"meta"`
		Times  []float64            `json:"times"`
		Series map[string][]float64 `json:"series"`
	}{meta, times, cols})
}

func watchSatellite(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	driver, err := buildDriver(cfg)
	if err != nil {
		return err
	}

	model := viz.NewModel(driver, cfg.Name, cfg.Span.Step, cfg.Span.Stop)
	_, err = tea.NewProgram(model).Run()
	return err
}

func benchSatellite(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	driver, err := buildDriver(cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	t := cfg.Span.Start
	for i := 0; i < benchIters; i++ {
		if _, err := driver.PropagateTo(t); err != nil {
			return err
		}
		t += cfg.Span.Step
	}
	elapsed := time.Since(start)

	fmt.Printf("%d propagations in %s (%.2f µs/call, %d integrator steps)\n",
		benchIters, elapsed, float64(elapsed.Microseconds())/float64(benchIters),
		driver.DeepSpace().IntegratorSteps())
	return nil
}
