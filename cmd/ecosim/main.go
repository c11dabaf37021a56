package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/san-kum/ecosim/internal/automation"
	"github.com/san-kum/ecosim/internal/config"
	"github.com/san-kum/ecosim/internal/export"
	"github.com/san-kum/ecosim/internal/metrics"
	"github.com/san-kum/ecosim/internal/population"
	"github.com/san-kum/ecosim/internal/report"
	"github.com/san-kum/ecosim/internal/sim"
	"github.com/san-kum/ecosim/internal/viz"
	"github.com/san-kum/ecosim/internal/war"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	noColor  bool
	logger   *log.Logger
	// run
	showMetrics bool
	// plot
	plotWidth  int
	plotHeight int
	// export
	format  string
	outPath string
	// sweep
	sweepMin   float64
	sweepMax   float64
	sweepSteps int
	// live
	interval time.Duration
	theme    string
	// war
	matches int
	seed    int64
	verbose bool
)

// main registers the ecosim commands and flags and executes the root
// command, exiting with status 1 if it returns an error.
func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:           "ecosim",
		Short:         "rabbit/wolf population model and war card game",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger()
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", settings.LogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable styled output")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "simulate and print the year table",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	addModelFlags(runCmd)
	runCmd.Flags().BoolVar(&showMetrics, "metrics", false, "print run metrics after the table")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot both populations",
		Args:  cobra.NoArgs,
		RunE:  plotRun,
	}
	addModelFlags(plotCmd)
	plotCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")
	plotCmd.Flags().IntVar(&plotHeight, "height", 15, "plot height")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "export a run as csv, json, svg or phase (svg)",
		Args:  cobra.NoArgs,
		RunE:  exportRun,
	}
	addModelFlags(exportCmd)
	exportCmd.Flags().StringVar(&format, "format", "csv", "csv, json, svg or phase")
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	sweepCmd := &cobra.Command{
		Use:   "sweep [param]",
		Short: "run the model across a range of one parameter",
		Long:  "Parameters: " + strings.Join(population.ParamNames(), ", "),
		Args:  cobra.ExactArgs(1),
		RunE:  sweepParam,
	}
	addModelFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 0, "first value")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 0.1, "last value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 11, "number of values")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run every step of a yaml scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tYEARS\tRABBITS\tWOLVES\tINTRO\tPREDATION")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\ty%d x%d\t%.3f\n",
					name, p.Years, p.InitState.Rabbits, p.InitState.Wolves,
					p.Introduction.Year, p.Introduction.Count, p.Rates.Predation)
			}
			return w.Flush()
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "play a run back year by year",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	addModelFlags(liveCmd)
	liveCmd.Flags().DurationVar(&interval, "interval", 250*time.Millisecond, "time per simulated year")
	liveCmd.Flags().StringVar(&theme, "theme", "meadow", "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	warCmd := &cobra.Command{
		Use:   "war",
		Short: "play the war card game",
		Args:  cobra.NoArgs,
		RunE:  playWar,
	}
	warCmd.Flags().IntVar(&matches, "matches", war.DefaultMatches, "matches to play")
	warCmd.Flags().Int64Var(&seed, "seed", settings.Seed, "shuffle seed (0 = random)")
	warCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print every round")

	rootCmd.AddCommand(runCmd, plotCmd, exportCmd, sweepCmd, scenarioCmd, presetsCmd, liveCmd, warCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		if logger == nil {
			logger = log.New(os.Stderr)
		}
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}

func setupLogger() error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		Prefix:          "ecosim",
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
	return nil
}

func styles() report.Styles {
	if noColor {
		return report.Plain()
	}
	return report.Colored()
}

func simulate(cmd *cobra.Command) (*sim.Result, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger.Debug("resolved config", "config", fmt.Sprintf("%+v", cfg))

	s := sim.New()
	for _, m := range metrics.Defaults() {
		s.AddMetric(m)
	}
	return s.Run(cmd.Context(), cfg)
}

func runSimulation(cmd *cobra.Command, args []string) error {
	start := time.Now()
	result, err := simulate(cmd)
	if err != nil {
		return err
	}
	logger.Debug("simulation finished", "years", result.Config.Years, "elapsed", time.Since(start))

	st := styles()
	if err := report.WriteTable(os.Stdout, result.Result, st); err != nil {
		return err
	}
	if showMetrics {
		fmt.Println("\nmetrics:")
		return report.WriteMetrics(os.Stdout, result.Metrics, st)
	}
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	result, err := simulate(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("years: %d\n\n", result.Config.Years)
	fmt.Println(report.Plot(result.Result, plotWidth, plotHeight))
	fmt.Println()
	fmt.Println(report.PlotSpecies(result.Result, population.Wolves, plotWidth, plotHeight/2))
	return nil
}

// exporters maps each --format value to its writer.
var exporters = map[string]func(io.Writer, *sim.Result) error{
	"csv": func(w io.Writer, r *sim.Result) error {
		return export.WriteCSV(w, r.Result)
	},
	"json": export.WriteJSON,
	"svg": func(w io.Writer, r *sim.Result) error {
		_, err := fmt.Fprintln(w, export.TimelineSVG(r.Result, 800, 400))
		return err
	},
	"phase": func(w io.Writer, r *sim.Result) error {
		_, err := fmt.Fprintln(w, export.PhaseSVG(r.Result, 600, 600, "#00ff88"))
		return err
	},
}

func exportRun(cmd *cobra.Command, args []string) error {
	write, ok := exporters[format]
	if !ok {
		return fmt.Errorf("unknown format: %s", format)
	}

	result, err := simulate(cmd)
	if err != nil {
		return err
	}

	if outPath == "" {
		return write(os.Stdout, result)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := write(f, result); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", outPath, err)
	}

	logger.Info("exported run", "format", format, "path", outPath)
	return nil
}

func sweepParam(cmd *cobra.Command, args []string) error {
	base, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	sweep := &automation.ParameterSweep{
		Base:      base,
		ParamName: args[0],
		ParamMin:  sweepMin,
		ParamMax:  sweepMax,
		NumSteps:  sweepSteps,
	}

	start := time.Now()
	results, err := automation.RunSweep(cmd.Context(), logger, sweep, metrics.Defaults)
	if err != nil {
		return err
	}
	logger.Info("sweep complete", "runs", len(results), "elapsed", time.Since(start))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tRABBITS\tWOLVES\tPEAK_RABBITS\tPEAK_WOLVES\tWOLVES_EXTINCT\n", strings.ToUpper(args[0]))
	for _, r := range results {
		fmt.Fprintf(w, "%.4f\t%d\t%d\t%.0f\t%.0f\t%s\n",
			r.ParamValue,
			r.Final.Rabbits,
			r.Final.Wolves,
			r.Metrics["peak_rabbits"],
			r.Metrics["peak_wolves"],
			extinctYear(r.Metrics["extinct_wolves"]),
		)
	}
	return w.Flush()
}

func extinctYear(v float64) string {
	if v < 0 {
		return "-"
	}
	return fmt.Sprintf("y%.0f", v)
}

func runScenario(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	if scenario.Name != "" {
		fmt.Printf("scenario: %s\n", scenario.Name)
	}
	if scenario.Description != "" {
		fmt.Printf("%s\n", scenario.Description)
	}
	fmt.Println()

	results, err := automation.RunScenario(cmd.Context(), logger, scenario, metrics.Defaults)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tYEARS\tRABBITS\tWOLVES\tPEAK_RABBITS\tRATIO")
	for _, r := range results {
		final := r.Result.Final()
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%.0f\t%.4f\n",
			r.Name, final.Year, final.Rabbits, final.Wolves,
			r.Result.Metrics["peak_rabbits"], r.Result.Metrics["predator_prey_ratio"])
	}
	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	title := "rabbits & wolves"
	if preset != "" {
		title += " (" + preset + ")"
	}
	m, err := viz.NewModel(title, cfg, interval)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m.WithTheme(theme), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func playWar(cmd *cobra.Command, args []string) error {
	game := war.NewGame(seed)
	stats, err := game.Play(matches)
	if err != nil {
		return err
	}
	logger.Debug("war finished", "matches", matches, "seed", seed)
	return report.WriteWar(os.Stdout, stats, verbose, styles())
}
