package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/forcelab/internal/config"
	"github.com/san-kum/forcelab/internal/export"
	"github.com/san-kum/forcelab/internal/scenario"
	"github.com/san-kum/forcelab/internal/viz"
)

var (
	configFile string
	preset     string
	jsonOut    bool
	svgPath    string
	noPlot     bool
	scale      float64
	mass       float64
	forces     []string
	angle      float64
	muS        float64
	muK        float64
	applied    float64
	// sweep range
	from  float64
	to    float64
	steps int
)

// main is the entry point for the forcelab CLI. With no subcommand it opens the interactive form.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Registering the flags resets every
// flag variable to its default.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "forcelab",
		Short: "newton's second law calculator",
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.RunInteractive()
		},
		SilenceUsage: true,
	}

	forcesCmd := &cobra.Command{
		Use:   "forces",
		Short: "net force, resultant and acceleration of several forces",
		Args:  cobra.NoArgs,
		RunE:  solveCommand("forces"),
	}
	forcesCmd.Flags().StringArrayVarP(&forces, "force", "f", nil, "force as magnitude@angle, e.g. 10@30 (repeatable)")

	inclineCmd := &cobra.Command{
		Use:   "incline",
		Short: "block on an inclined plane",
		Args:  cobra.NoArgs,
		RunE:  solveCommand("incline"),
	}
	inclineCmd.Flags().Float64Var(&angle, "angle", config.DefaultInclineAngle, "incline angle (degrees)")
	inclineCmd.Flags().Float64Var(&muS, "mu-s", config.DefaultInclineMuS, "static friction coefficient")
	inclineCmd.Flags().Float64Var(&muK, "mu-k", config.DefaultInclineMuK, "kinetic friction coefficient")

	frictionCmd := &cobra.Command{
		Use:   "friction",
		Short: "applied force against friction on level ground",
		Args:  cobra.NoArgs,
		RunE:  solveCommand("friction"),
	}
	frictionCmd.Flags().Float64Var(&applied, "force", config.DefaultApplied, "applied force (N)")
	frictionCmd.Flags().Float64Var(&angle, "angle", 0, "applied force angle above horizontal (degrees)")
	frictionCmd.Flags().Float64Var(&muS, "mu-s", config.DefaultAppliedMuS, "static friction coefficient")
	frictionCmd.Flags().Float64Var(&muK, "mu-k", config.DefaultAppliedMuK, "kinetic friction coefficient")

	for _, c := range []*cobra.Command{forcesCmd, inclineCmd, frictionCmd} {
		c.Flags().Float64Var(&mass, "mass", config.DefaultMass, "mass (kg)")
		c.Flags().Float64Var(&scale, "scale", config.DefaultScale, "vector scale")
		c.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
		c.Flags().StringVar(&preset, "preset", "", "use preset configuration")
		c.Flags().BoolVar(&jsonOut, "json", false, "print the report as JSON")
		c.Flags().StringVar(&svgPath, "svg", "", "write the free-body diagram to an SVG file")
		c.Flags().BoolVar(&noPlot, "no-plot", false, "hide the diagram")
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [problem] [param]",
		Short: "plot acceleration and friction across a parameter range",
		Args:  cobra.ExactArgs(2),
		RunE:  runSweep,
	}
	sweepCmd.Flags().Float64Var(&from, "from", 0, "first value")
	sweepCmd.Flags().Float64Var(&to, "to", 90, "last value")
	sweepCmd.Flags().IntVar(&steps, "steps", 91, "number of snapshots")
	sweepCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	sweepCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	sweepCmd.Flags().BoolVar(&jsonOut, "json", false, "print the points as JSON")

	presetsCmd := &cobra.Command{
		Use:   "presets [problem]",
		Short: "list available presets for a problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for problem: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	theoryCmd := &cobra.Command{
		Use:   "theory",
		Short: "newton's laws, equilibrium and friction notes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Print(viz.Theory(72))
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive problem form",
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.RunInteractive()
		},
	}

	rootCmd.AddCommand(forcesCmd, inclineCmd, frictionCmd, sweepCmd, presetsCmd, theoryCmd, tuiCmd)
	return rootCmd
}

// loadConfig resolves preset, then config file, then explicitly set flags.
func loadConfig(cmd *cobra.Command, problem string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(problem, preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(problem))
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if loaded.Problem != "" && loaded.Problem != problem {
			return nil, fmt.Errorf("config %s describes a %s problem, not %s", configFile, loaded.Problem, problem)
		}
		cfg = loaded
	}
	cfg.Problem = problem

	flags := cmd.Flags()
	changed := func(name string) bool {
		return flags.Lookup(name) != nil && flags.Changed(name)
	}
	if changed("mass") {
		cfg.Mass = mass
	}
	if changed("scale") {
		cfg.Plot.Scale = scale
	}
	if changed("no-plot") {
		cfg.Plot.Show = !noPlot
	}

	switch problem {
	case "forces":
		if changed("force") {
			parsed, err := parseForces(forces)
			if err != nil {
				return nil, err
			}
			cfg.Forces = parsed
		}
	case "incline":
		if changed("angle") {
			cfg.Incline.Angle = angle
		}
		if changed("mu-s") {
			cfg.Incline.MuStatic = muS
		}
		if changed("mu-k") {
			cfg.Incline.MuKinetic = muK
		}
	case "friction":
		if changed("force") {
			cfg.Applied.Magnitude = applied
		}
		if changed("angle") {
			cfg.Applied.Angle = angle
		}
		if changed("mu-s") {
			cfg.Applied.MuStatic = muS
		}
		if changed("mu-k") {
			cfg.Applied.MuKinetic = muK
		}
	}
	return cfg, nil
}

// parseForces reads "magnitude@angle" pairs; a bare magnitude points along +x.
func parseForces(specs []string) ([]config.ForceConfig, error) {
	out := make([]config.ForceConfig, 0, len(specs))
	for _, s := range specs {
		magStr, angStr, hasAngle := strings.Cut(s, "@")
		m, err := strconv.ParseFloat(strings.TrimSpace(magStr), 64)
		if err != nil {
			return nil, fmt.Errorf("bad force %q: %w", s, err)
		}
		a := 0.0
		if hasAngle {
			a, err = strconv.ParseFloat(strings.TrimSpace(angStr), 64)
			if err != nil {
				return nil, fmt.Errorf("bad force angle %q: %w", s, err)
			}
		}
		out = append(out, config.ForceConfig{Magnitude: m, Angle: a})
	}
	return out, nil
}

func solveCommand(problem string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, problem)
		if err != nil {
			return err
		}

		rep, err := scenario.NewRegistry().Solve(cfg)
		if err != nil {
			return err
		}

		if svgPath != "" {
			if err := export.WriteSVGFile(svgPath, export.ReportToSVG(rep, cfg.Plot, 800, 600)); err != nil {
				return fmt.Errorf("failed to write svg: %w", err)
			}
		}

		if jsonOut {
			return export.WriteJSON(os.Stdout, rep)
		}

		fmt.Println(viz.RenderReport(rep))
		if cfg.Plot.Show {
			fmt.Print(viz.Diagram(rep, cfg.Plot, 60, 20).Render())
			fmt.Print(viz.Legend(rep, cfg.Plot))
		}
		if svgPath != "" {
			fmt.Printf("diagram written to %s\n", svgPath)
		}
		return nil
	}
}

func runSweep(cmd *cobra.Command, args []string) error {
	problem, param := args[0], args[1]

	cfg, err := loadConfig(cmd, problem)
	if err != nil {
		return err
	}

	points, err := scenario.NewRegistry().Sweep(cfg, param, from, to, steps)
	if err != nil {
		return err
	}

	if jsonOut {
		return export.WriteJSON(os.Stdout, export.SweepData{Problem: problem, Param: param, Points: points})
	}

	accel := make([]float64, len(points))
	friction := make([]float64, len(points))
	for i, p := range points {
		accel[i] = p.Acceleration
		friction[i] = p.Friction
	}

	fmt.Printf("problem: %s\n", problem)
	fmt.Printf("sweep: %s from %g to %g (%d snapshots)\n\n", param, from, to, len(points))

	fmt.Println(asciigraph.Plot(accel,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("acceleration (m/s²) vs "+param),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(friction,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("friction (N) vs "+param),
	))

	for _, line := range motionChanges(param, points) {
		fmt.Printf("\n%s\n", line)
	}
	return nil
}

// motionChanges describes every pair of neighbouring snapshots where the body
// switches between resting and moving.
func motionChanges(param string, points []scenario.SweepPoint) []string {
	var out []string
	for i := 1; i < len(points); i++ {
		if points[i].State.Moving() != points[i-1].State.Moving() {
			out = append(out, fmt.Sprintf("motion changes between %s=%.3f (%s) and %s=%.3f (%s)",
				param, points[i-1].X, points[i-1].State, param, points[i].X, points[i].State))
		}
	}
	return out
}
