package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Bunch-of-cells/oganesson/internal/config"
	"github.com/Bunch-of-cells/oganesson/internal/metrics"
	"github.com/Bunch-of-cells/oganesson/internal/quantity"
	"github.com/Bunch-of-cells/oganesson/internal/storage"
	"github.com/Bunch-of-cells/oganesson/internal/universe"
	"github.com/Bunch-of-cells/oganesson/internal/viz"
)

var (
	dataDir    string
	dt         float64
	duration   float64
	workers    int
	configFile string
	frameRate  int
	outFile    string
	bodyIndex  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "oganesson",
		Short: "n-dimensional physics simulation with dimension-checked units",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".oganesson", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "run a scene and store the trajectory",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScene,
	}
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep in seconds")
	runCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "simulated duration in seconds")
	runCmd.Flags().IntVar(&workers, "workers", 1, "worker goroutines for force and integration passes")
	runCmd.Flags().StringVar(&configFile, "config", "", "scene file path (yaml)")

	liveCmd := &cobra.Command{
		Use:   "live [preset]",
		Short: "run a scene with live visualization",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep in seconds")
	liveCmd.Flags().IntVar(&workers, "workers", 1, "worker goroutines for force and integration passes")
	liveCmd.Flags().StringVar(&configFile, "config", "", "scene file path (yaml)")
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot stored state columns against time",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	trajectoryCmd := &cobra.Command{
		Use:   "trajectory [run_id]",
		Short: "scatter plot of one body's path in the first two axes",
		Args:  cobra.ExactArgs(1),
		RunE:  trajectoryPlot,
	}
	trajectoryCmd.Flags().IntVar(&bodyIndex, "body", 0, "body index")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "print run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "write run states as CSV to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "write the full run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVar(&outFile, "out", "", "output path (default stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenes",
		RunE:  listPresets,
	}

	benchCmd := &cobra.Command{
		Use:   "bench [preset]",
		Short: "benchmark stepping a scene",
		Args:  cobra.MaximumNArgs(1),
		RunE:  benchScene,
	}
	benchCmd.Flags().StringVar(&configFile, "config", "", "scene file path (yaml)")

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, trajectoryCmd,
		exportCmd, exportCSVCmd, exportJSONCmd, presetsCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadScene resolves the scene for a command: preset argument, then config
// file, then flag overrides on top.
func loadScene(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if len(args) > 0 {
		p := config.GetPreset(args[0])
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets())
		}
		// Copy so flag overrides cannot leak into the preset table.
		c := *p
		cfg = &c
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load scene: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = workers
	}

	return cfg, nil
}

func sceneLabel(cfg *config.Config) string {
	if cfg.Name == "" {
		return "scene"
	}
	return cfg.Name
}

func runScene(cmd *cobra.Command, args []string) error {
	cfg, err := loadScene(cmd, args)
	if err != nil {
		return err
	}

	uni, err := cfg.Build()
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	observers := []universe.Observer{
		metrics.NewKineticEnergy(),
		metrics.NewEnergyDrift(),
		metrics.NewMomentumDrift(),
	}

	fmt.Printf("running %s...\n", sceneLabel(cfg))
	start := time.Now()

	result, err := uni.Run(context.Background(), quantity.Seconds(cfg.Dt), cfg.Steps(), observers...)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(sceneLabel(cfg), cfg.Dt, cfg.Duration, cfg.Dimension, len(cfg.Bodies), result)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "run id\t%s\n", runID)
	fmt.Fprintf(w, "bodies\t%d\n", len(cfg.Bodies))
	fmt.Fprintf(w, "steps\t%d\n", cfg.Steps())
	fmt.Fprintf(w, "simulated\t%.4gs\n", uni.Time().Value)
	fmt.Fprintf(w, "elapsed\t%v\n", elapsed)
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6g\n", name, val)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadScene(cmd, args)
	if err != nil {
		return err
	}

	m, err := viz.NewModel(cfg, frameRate)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENE\tTIME\tDURATION\tDT\tDIM\tBODIES")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4gs\t%d\t%d\n",
			run.ID,
			run.Scene,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Dimension,
			run.Bodies,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	if len(states) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scene: %s\n", meta.Scene)
	fmt.Printf("samples: %d\n\n", len(states))

	header := storage.StateHeader(meta.Dimension, meta.Bodies)

	numVars := len(states[0])
	maxPlots := 6
	if numVars > maxPlots {
		numVars = maxPlots
	}

	for col := 0; col < numVars; col++ {
		caption := fmt.Sprintf("x%d vs time", col)
		if col+1 < len(header) {
			caption = header[col+1] + " vs time"
		}

		fmt.Println(viz.RenderSeries(viz.Series(states, col), caption, 80, 10))
		fmt.Println()
	}

	return nil
}

func trajectoryPlot(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	if len(states) == 0 {
		return fmt.Errorf("no data to plot")
	}
	if meta.Dimension < 2 {
		return fmt.Errorf("trajectory needs at least 2 dimensions, run has %d", meta.Dimension)
	}
	if bodyIndex < 0 || bodyIndex >= meta.Bodies {
		return fmt.Errorf("body index %d out of range, run has %d bodies", bodyIndex, meta.Bodies)
	}

	xCol := bodyIndex * 2 * meta.Dimension
	yCol := xCol + 1
	if yCol >= len(states[0]) {
		return fmt.Errorf("stored states too narrow for body %d", bodyIndex)
	}

	fmt.Printf("trajectory: %s\n", meta.ID)
	fmt.Printf("scene: %s, body: %d\n\n", meta.Scene, bodyIndex)

	xData := make([]float64, len(states))
	yData := make([]float64, len(states))
	for i := range states {
		xData[i] = states[i][xCol]
		yData[i] = states[i][yCol]
	}

	xMin, xMax := xData[0], xData[0]
	yMin, yMax := yData[0], yData[0]
	for i := range xData {
		if xData[i] < xMin {
			xMin = xData[i]
		}
		if xData[i] > xMax {
			xMax = xData[i]
		}
		if yData[i] < yMin {
			yMin = yData[i]
		}
		if yData[i] > yMax {
			yMax = yData[i]
		}
	}

	xRange := xMax - xMin
	yRange := yMax - yMin
	if xRange == 0 {
		xRange = 1
	}
	if yRange == 0 {
		yRange = 1
	}

	width, height := 70, 20
	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for i := range xData {
		px := int(float64(width-1) * (xData[i] - xMin) / xRange)
		py := int(float64(height-1) * (yData[i] - yMin) / yRange)
		py = height - 1 - py
		if px < 0 || px >= width || py < 0 || py >= height {
			continue
		}
		switch {
		case i < len(xData)/3:
			canvas[py][px] = '.'
		case i < 2*len(xData)/3:
			canvas[py][px] = 'o'
		default:
			canvas[py][px] = '●'
		}
	}

	fmt.Printf("  %.3g ┌%s┐\n", yMax, strings.Repeat("─", width))
	for i := range canvas {
		if i == height/2 {
			fmt.Printf("  %.3g │%s│\n", (yMax+yMin)/2, string(canvas[i]))
		} else {
			fmt.Printf("       │%s│\n", string(canvas[i]))
		}
	}
	fmt.Printf("  %.3g └%s┘\n", yMin, strings.Repeat("─", width))
	fmt.Printf("       %.3g%s%.3g\n", xMin, strings.Repeat(" ", width-16), xMax)
	fmt.Printf("\nlegend: . = early, o = middle, ● = late\n")

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, times, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	if len(states) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write(storage.StateHeader(meta.Dimension, meta.Bodies)); err != nil {
		return err
	}

	for i := range states {
		row := []string{strconv.FormatFloat(times[i], 'g', -1, 64)}
		for _, val := range states[i] {
			row = append(row, strconv.FormatFloat(val, 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, times, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	if outFile != "" {
		return storage.ExportJSON(outFile, meta, times, states)
	}
	return storage.ExportJSONStdout(meta, times, states)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDIM\tBODIES\tDT\tDURATION")

	for _, name := range config.ListPresets() {
		cfg := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%d\t%.4gs\t%.4gs\n",
			name, cfg.Dimension, len(cfg.Bodies), cfg.Dt, cfg.Duration)
	}

	return w.Flush()
}

func benchScene(cmd *cobra.Command, args []string) error {
	cfg, err := loadScene(cmd, args)
	if err != nil {
		return err
	}

	durations := []float64{1.0, 5.0, 10.0}
	dts := []float64{0.001, 0.01, 0.1}

	fmt.Printf("benchmarking %s\n\n", sceneLabel(cfg))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DURATION\tDT\tSTEPS\tTIME\tSTEPS/SEC")

	for _, dur := range durations {
		for _, d := range dts {
			c := *cfg
			c.Dt = d
			c.Duration = dur

			uni, err := c.Build()
			if err != nil {
				return err
			}

			start := time.Now()
			result, err := uni.Run(context.Background(), quantity.Seconds(d), c.Steps())
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			steps := len(result.Times) - 1
			stepsPerSec := float64(steps) / elapsed.Seconds()

			fmt.Fprintf(w, "%.1fs\t%.4gs\t%d\t%v\t%.0f\n",
				dur, d, steps, elapsed, stepsPerSec)
		}
	}

	return w.Flush()
}
