package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/tsouverin/simulation-numerique-25-26/internal/config"
	"github.com/tsouverin/simulation-numerique-25-26/internal/dynamo"
	"github.com/tsouverin/simulation-numerique-25-26/internal/export"
	"github.com/tsouverin/simulation-numerique-25-26/internal/integrators"
	"github.com/tsouverin/simulation-numerique-25-26/internal/physics"
	"github.com/tsouverin/simulation-numerique-25-26/internal/sim"
	"github.com/tsouverin/simulation-numerique-25-26/internal/stellar"
	"github.com/tsouverin/simulation-numerique-25-26/internal/storage"
	"github.com/tsouverin/simulation-numerique-25-26/internal/view"
	"github.com/tsouverin/simulation-numerique-25-26/internal/viz"
)

var (
	dataDir     string
	configFile  string
	dt          float64
	zoom        float64
	frames      int
	integrator  string
	themeName   string
	frameRate   int
	noHZ        bool
	noInfluence bool
	outFile     string
	svgWidth    int
	svgHeight   int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "orbits",
		Short: "N-body star system simulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLive(cmd, []string{"inner"})
		},
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".orbits", "data directory")

	liveCmd := &cobra.Command{
		Use:   "live [preset]",
		Short: "interactive simulation in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&configFile, "config", "", "system config file (yaml)")
	liveCmd.Flags().Float64Var(&dt, "dt", 0, "initial time step in seconds")
	liveCmd.Flags().Float64Var(&zoom, "zoom", 0, "initial zoom target")
	liveCmd.Flags().StringVar(&integrator, "integrator", "", "integrator (rk45, rk4, leapfrog)")
	liveCmd.Flags().StringVar(&themeName, "theme", "night", "ui theme")
	liveCmd.Flags().IntVar(&frameRate, "fps", 60, "frame rate")
	liveCmd.Flags().BoolVar(&noHZ, "no-hz", false, "disable the habitable zone overlay")
	liveCmd.Flags().BoolVar(&noInfluence, "no-influence", false, "disable influence radii")

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "headless simulation, stored for later analysis",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHeadless,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "system config file (yaml)")
	runCmd.Flags().Float64Var(&dt, "dt", 0, "time step in seconds")
	runCmd.Flags().IntVar(&frames, "frames", config.DefaultFrames, "number of frames")
	runCmd.Flags().StringVar(&integrator, "integrator", "", "integrator (rk45, rk4, leapfrog)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list system presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Printf("%-10s %d planets around %s\n", name, len(cfg.Planets), cfg.Star.Name)
			}
		},
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot orbital distances of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored run's trajectories as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&outFile, "out", "orbits.svg", "output file")
	exportCmd.Flags().IntVar(&svgWidth, "width", 800, "svg width")
	exportCmd.Flags().IntVar(&svgHeight, "height", 800, "svg height")

	rootCmd.AddCommand(liveCmd, runCmd, listCmd, presetsCmd, plotCmd, exportCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig resolves the system configuration from --config, a preset
// argument, or the default, then applies flag overrides.
func loadConfig(args []string) (*config.Config, string, error) {
	name := "inner"
	var cfg *config.Config
	var err error

	switch {
	case configFile != "":
		name = configFile
		cfg, err = config.Load(configFile)
		if err != nil {
			return nil, "", err
		}
	case len(args) == 1:
		name = args[0]
		cfg = config.GetPreset(name)
		if cfg == nil {
			return nil, "", fmt.Errorf("unknown preset %q (see `orbits presets`)", name)
		}
	default:
		cfg = config.Default()
	}

	if dt > 0 {
		cfg.Dt = dt
	}
	if zoom > 0 {
		cfg.Zoom = zoom
	}
	if integrator != "" {
		cfg.Integrator = integrator
	}
	return cfg, name, nil
}

func pickIntegrator(name string) (dynamo.AdaptiveIntegrator, error) {
	switch name {
	case "", "rk45":
		return integrators.NewRK45(), nil
	case "rk4":
		return integrators.NewRK4(), nil
	case "leapfrog":
		return integrators.NewLeapfrog(), nil
	default:
		return nil, fmt.Errorf("unknown integrator %q", name)
	}
}

// buildDriver assembles the full simulation from a configuration:
// bodies, circular-orbit velocities, cached influence radii, and the
// frame driver.
func buildDriver(cfg *config.Config) (*sim.Driver, error) {
	sys, err := cfg.BuildSystem()
	if err != nil {
		return nil, err
	}
	if err := physics.InitOrbits(sys); err != nil {
		return nil, err
	}
	if !noInfluence {
		if err := stellar.CacheInfluence(sys, stellar.HillRadius); err != nil {
			return nil, err
		}
	}
	integ, err := pickIntegrator(cfg.Integrator)
	if err != nil {
		return nil, err
	}
	return sim.NewDriver(sys, integ), nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig(args)
	if err != nil {
		return err
	}
	driver, err := buildDriver(cfg)
	if err != nil {
		return err
	}

	cam := view.NewCamera(0, 0, cfg.Dt) // viewport sized by the view layer
	cam.SetZoomTarget(cfg.Zoom)

	var hz stellar.HabitableZoneFunc
	if !noHZ {
		hz = stellar.HabitableZone
	}

	theme := viz.GetTheme(themeName)
	if cfg.Theme != "" && themeName == "night" {
		theme = viz.GetTheme(cfg.Theme)
	}

	return viz.RunLive(driver, cam, hz, theme, frameRate)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, name, err := loadConfig(args)
	if err != nil {
		return err
	}
	driver, err := buildDriver(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := driver.Run(ctx, frames, cfg.Dt)
	if err != nil {
		return err
	}

	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}
	runID, err := store.Save(name, cfg.Dt, cfg.Integrator, res)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "run\t%s\n", runID)
	fmt.Fprintf(w, "frames\t%d\n", len(res.Times)-1)
	fmt.Fprintf(w, "sim time\t%.1f days\n", driver.Time()/86400)
	fmt.Fprintf(w, "energy drift\t%.3e\n", res.MaxDrift)
	fmt.Fprintf(w, "skipped frames\t%d\n", len(res.Errors))
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tFRAMES\tDT\tDRIFT")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.0fs\t%.2e\n", r.ID, r.Preset, r.Frames, r.Dt, r.MaxDrift)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	meta, err := store.LoadMeta(args[0])
	if err != nil {
		return err
	}
	_, states, err := store.LoadStates(args[0])
	if err != nil {
		return err
	}

	for i, name := range meta.Planets {
		dist := make([]float64, len(states))
		for k, s := range states {
			dist[k] = math.Hypot(s[i*4], s[i*4+1]) / 1.496e11 // AU
		}
		fmt.Println(asciigraph.Plot(dist,
			asciigraph.Height(8),
			asciigraph.Width(70),
			asciigraph.Caption(fmt.Sprintf("%s, distance to star (AU)", name)),
		))
		fmt.Println()
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	meta, err := store.LoadMeta(args[0])
	if err != nil {
		return err
	}
	_, states, err := store.LoadStates(args[0])
	if err != nil {
		return err
	}

	cfg := config.GetPreset(meta.Preset)
	paths := make([]export.Path, len(meta.Planets))
	for i, name := range meta.Planets {
		p := export.Path{Name: name}
		if cfg != nil && i < len(cfg.Planets) {
			p.Color = cfg.Planets[i].Color
		}
		for _, s := range states {
			p.X = append(p.X, s[i*4])
			p.Y = append(p.Y, s[i*4+1])
		}
		paths[i] = p
	}

	svg := export.SystemToSVG(paths, svgWidth, svgHeight)
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}
