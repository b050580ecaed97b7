package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/san-kum/threebody/internal/analysis"
	"github.com/san-kum/threebody/internal/config"
	"github.com/san-kum/threebody/internal/experiment"
	"github.com/san-kum/threebody/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	integrator string
	quiet      bool
	frameRate  int
	fade       float64
	frames     int
	frameDt    float64
	plot       bool

	duration     float64
	dt           float64
	perturbation float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "threebody",
		Short:        "gravitational star simulation",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runLive,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&integrator, "integrator", "", "integrator (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress the energy diagnostic stream")
	rootCmd.Flags().IntVar(&frameRate, "fps", viz.DefaultFPS, "frame rate")
	rootCmd.Flags().Float64Var(&fade, "fade", -1, "trail fade rate per second (default from config)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run simulation with live visualization",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&frameRate, "fps", viz.DefaultFPS, "frame rate")
	liveCmd.Flags().Float64Var(&fade, "fade", -1, "trail fade rate per second (default from config)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run simulation headless",
		Args:  cobra.NoArgs,
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&frames, "frames", 600, "number of frames")
	runCmd.Flags().Float64Var(&frameDt, "frame-dt", 1.0/60, "simulated seconds per frame")
	runCmd.Flags().BoolVar(&plot, "plot", false, "plot energy after the run")

	compareCmd := &cobra.Command{
		Use:   "compare [integrator1] [integrator2] ...",
		Short: "compare integrators on the same configuration",
		RunE:  compareIntegrators,
	}
	compareCmd.Flags().IntVar(&frames, "frames", 600, "number of frames")
	compareCmd.Flags().Float64Var(&frameDt, "frame-dt", 1.0/60, "simulated seconds per frame")

	chaosCmd := &cobra.Command{
		Use:   "chaos",
		Short: "estimate the largest Lyapunov exponent",
		Args:  cobra.NoArgs,
		RunE:  estimateChaos,
	}
	chaosCmd.Flags().Float64Var(&duration, "time", 10.0, "simulated duration")
	chaosCmd.Flags().Float64Var(&dt, "dt", 0.001, "integration step")
	chaosCmd.Flags().Float64Var(&perturbation, "perturbation", 1e-8, "initial separation")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
		},
	}

	configCmd := &cobra.Command{
		Use:   "config [path]",
		Short: "write the active configuration as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				return config.Write(os.Stdout, cfg)
			}
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(liveCmd, runCmd, compareCmd, chaosCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves --preset and --config. A config file is overlaid on
// the preset when both are given.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if preset != "" {
		p, err := config.GetPreset(preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	return cfg, nil
}

// diagnostics picks the energy line destination. The live view owns the
// terminal, so the stream only goes to stderr when it is redirected.
func diagnostics(live bool) io.Writer {
	if quiet {
		return nil
	}
	if live && isatty.IsTerminal(os.Stderr.Fd()) {
		return nil
	}
	return os.Stderr
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if fade >= 0 {
		cfg.Fade = fade
	}

	s, err := experiment.Build(experiment.NewRegistry(), cfg, integrator, diagnostics(true))
	if err != nil {
		return err
	}

	m := viz.NewModel(s, viz.Options{Half: cfg.Half, FPS: frameRate, Fade: cfg.Fade})
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(viz.Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s, err := experiment.Build(experiment.NewRegistry(), cfg, integrator, diagnostics(false))
	if err != nil {
		return err
	}

	start := time.Now()
	result, err := s.Run(cmd.Context(), frames, frameDt)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	fmt.Printf("simulated %d frames (t=%.3f) in %v\n\n", result.Frames, s.Time(), elapsed.Round(time.Millisecond))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STAR\tX\tY\tVX\tVY")
	for i, b := range s.Bodies() {
		fmt.Fprintf(w, "%d\t%.6f\t%.6f\t%.6f\t%.6f\n", i, b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y)
	}
	w.Flush()

	fmt.Println("\nmetrics:")
	fmt.Printf("  energy_drift: %.3e\n", result.EnergyDrift)
	if g := s.Gravity(); g != nil {
		bodies := s.Bodies()
		p := g.Momentum(bodies)
		fmt.Printf("  momentum: (%.6f, %.6f)\n", p.X, p.Y)
		fmt.Printf("  angular_momentum: %.6f\n", g.AngularMomentum(bodies))
	}
	for name, v := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, v)
	}

	if plot {
		if graph := viz.EnergyPlot(result.Energies, 70, 12); graph != "" {
			fmt.Println()
			fmt.Println(graph)
		}
	}
	return nil
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	names := args
	if len(names) == 0 {
		names = registry.ListSteppers()
	}

	fmt.Printf("comparing integrators (frames=%d, frame-dt=%.4f, substeps=%d)\n\n", frames, frameDt, cfg.Substeps)
	fmt.Printf("%-12s  %-12s  %-12s  %-12s\n", "integrator", "final_energy", "energy_drift", "time_ms")
	fmt.Println(strings.Repeat("-", 54))

	for _, name := range names {
		s, err := experiment.Build(registry, cfg, name, nil)
		if err != nil {
			fmt.Printf("%-12s  error: %v\n", name, err)
			continue
		}

		start := time.Now()
		result, err := s.Run(context.Background(), frames, frameDt)
		elapsed := time.Since(start)
		if err != nil {
			fmt.Printf("%-12s  error: %v\n", name, err)
			continue
		}

		fmt.Printf("%-12s  %12.6f  %12.2e  %12.2f\n", name, s.Energy(), result.EnergyDrift, float64(elapsed.Microseconds())/1000)
	}
	return nil
}

func estimateChaos(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	name := integrator
	if name == "" {
		name = cfg.Integrator
	}
	stepper, err := experiment.NewRegistry().GetStepper(name, cfg.Box())
	if err != nil {
		return err
	}

	lambda, err := analysis.LyapunovExponent(cfg.Gravity(), stepper, cfg.BodySet(), dt, duration, perturbation)
	if err != nil {
		return err
	}

	fmt.Printf("lyapunov exponent: %.4f (t=%.1f, dt=%g)\n", lambda, duration, dt)
	if lambda > 0 {
		fmt.Printf("separation e-folding time: %.3f\n", 1/lambda)
	}
	return nil
}
