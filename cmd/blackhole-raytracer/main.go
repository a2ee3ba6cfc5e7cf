package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/wilckeluiztiago-dotcom/blackhole-raytracer/internal/bhconst"
	"github.com/wilckeluiztiago-dotcom/blackhole-raytracer/internal/bhlog"
	"github.com/wilckeluiztiago-dotcom/blackhole-raytracer/internal/config"
	"github.com/wilckeluiztiago-dotcom/blackhole-raytracer/internal/disk"
	"github.com/wilckeluiztiago-dotcom/blackhole-raytracer/internal/metric"
	"github.com/wilckeluiztiago-dotcom/blackhole-raytracer/internal/raytracer"
	"github.com/wilckeluiztiago-dotcom/blackhole-raytracer/internal/sink"
)

var log = bhlog.New("cli")

var (
	configFile string
	presetName string
	outPrefix  string

	solarMass         float64
	eddingtonFraction float64
	width             int
	height            int
	observerRadius    float64
	inclination       float64
	fov               float64
	threads           int
	includeDisk       bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "blackhole-raytracer",
		Short: "relativistic black hole ray tracer",
	}

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "trace a Schwarzschild black hole and write PPM/CSV/metadata output",
		RunE:  runRender,
	}
	renderCmd.Flags().StringVar(&configFile, "config", "", "YAML run configuration (overrides defaults and flags; ignored when --preset is set)")
	renderCmd.Flags().StringVar(&presetName, "preset", "", "named black hole preset (overrides defaults)")
	renderCmd.Flags().StringVar(&outPrefix, "out", "render", "output file prefix")
	renderCmd.Flags().Float64Var(&solarMass, "solar-mass", config.DefaultSolarMass, "black hole mass in solar masses")
	renderCmd.Flags().Float64Var(&eddingtonFraction, "eddington-fraction", config.DefaultEddingtonFraction, "accretion rate as a fraction of Eddington luminosity")
	renderCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "image width in pixels")
	renderCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "image height in pixels")
	renderCmd.Flags().Float64Var(&observerRadius, "observer-radius", config.DefaultObserverRadius, "observer radius in units of r_s")
	renderCmd.Flags().Float64Var(&inclination, "inclination", config.DefaultInclination, "camera inclination in degrees")
	renderCmd.Flags().Float64Var(&fov, "fov", config.DefaultFov, "horizontal field of view in degrees")
	renderCmd.Flags().IntVar(&threads, "threads", config.DefaultThreads, "number of render worker goroutines")
	renderCmd.Flags().BoolVar(&includeDisk, "disk", true, "render the accretion disk")

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "validate a YAML run configuration without rendering",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidate,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available black hole presets",
		RunE:  runPresets,
	}

	rootCmd.AddCommand(renderCmd, validateCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func resolveConfig(cmd *cobra.Command) (*config.RunConfig, error) {
	if presetName != "" {
		cfg := config.GetPreset(presetName)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", presetName, config.ListPresets())
		}
		return cfg, nil
	}
	if configFile != "" {
		return config.Load(configFile)
	}

	cfg := config.DefaultConfig()
	if cmd.Flags().Changed("solar-mass") {
		cfg.SolarMass = solarMass
	}
	if cmd.Flags().Changed("eddington-fraction") {
		cfg.EddingtonFraction = eddingtonFraction
	}
	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}
	if cmd.Flags().Changed("observer-radius") {
		cfg.ObserverRadius = observerRadius
	}
	if cmd.Flags().Changed("inclination") {
		cfg.Inclination = inclination
	}
	if cmd.Flags().Changed("fov") {
		cfg.Fov = fov
	}
	if cmd.Flags().Changed("threads") {
		cfg.Threads = threads
	}
	if cmd.Flags().Changed("disk") {
		cfg.IncludeDisk = includeDisk
	}
	return cfg, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	bh := bhconst.NewBlackHole(cfg.SolarMass)
	m := metric.New(bh)
	d := disk.NewDisk(bh.MassKg, bh.SchwarzschildRadius, cfg.EddingtonFraction)
	cam := raytracer.NewCamera(bh.SchwarzschildRadius, cfg.ObserverRadius, cfg.Inclination, cfg.Fov, cfg.Width, cfg.Height)
	tracer := raytracer.NewTracer(m, d, cfg.IncludeDisk, cam)

	log.Infof("tracing %s (r_s=%.3e m) at %dx%d with %d threads", cmd.Name(), bh.SchwarzschildRadius, cfg.Width, cfg.Height, cfg.Threads)

	start := time.Now()
	img := raytracer.Render(tracer, cfg.Threads, nil)
	elapsed := time.Since(start)

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return err
	}

	ppmPath := filepath.Join(cfg.OutputDir, outPrefix+".ppm")
	if err := sink.WritePPM(ppmPath, img); err != nil {
		return fmt.Errorf("writing PPM: %w", err)
	}

	csvPath := filepath.Join(cfg.OutputDir, outPrefix+".csv")
	if err := sink.WriteCSV(csvPath, img); err != nil {
		return fmt.Errorf("writing CSV: %w", err)
	}

	metaPath := filepath.Join(cfg.OutputDir, outPrefix+".json")
	meta := sink.RunMetadata{
		Timestamp:           time.Now(),
		SolarMasses:         cfg.SolarMass,
		SchwarzschildRadius: bh.SchwarzschildRadius,
		Width:               cfg.Width,
		Height:              cfg.Height,
		Threads:             cfg.Threads,
		ElapsedSeconds:      elapsed.Seconds(),
	}
	if err := sink.WriteMetadata(metaPath, meta); err != nil {
		return fmt.Errorf("writing metadata: %w", err)
	}

	fmt.Printf("rendered %dx%d in %v -> %s, %s, %s\n", cfg.Width, cfg.Height, elapsed, ppmPath, csvPath, metaPath)
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(args[0])
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	fmt.Printf("%s is valid\n", args[0])
	return nil
}

func runPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSOLAR MASSES\tINCLINATION")
	for _, name := range config.ListPresets() {
		cfg := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%.3e\t%.1f\n", name, cfg.SolarMass, cfg.Inclination)
	}
	return w.Flush()
}
