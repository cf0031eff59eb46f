package main

import (
	"fmt"
	"os"
	"time"

	farseer "github.com/EIGHTFINITE-Vendor/farseer-physics"
	"github.com/EIGHTFINITE-Vendor/farseer-physics/internal/config"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

var (
	dt                 float64
	duration           float64
	velocityIterations int
	positionIterations int
	warmStarting       bool
	seed               int64
	configFile         string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "farseer",
		Short: "rigid body constraint simulation",
	}

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "run a scenario and plot the result",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScenario,
	}
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	runCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	runCmd.Flags().IntVar(&velocityIterations, "velocity-iterations", config.DefaultVelocityIterations, "velocity solver iterations")
	runCmd.Flags().IntVar(&positionIterations, "position-iterations", config.DefaultPositionIterations, "position solver iterations")
	runCmd.Flags().BoolVar(&warmStarting, "warm-starting", true, "warm start the velocity solver")
	runCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list scenarios",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range scenarioNames() {
				fmt.Println(name)
			}
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a default config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Save(args[0], config.DefaultConfig())
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if len(args) == 1 {
		cfg.Scenario = args[0]
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("velocity-iterations") {
		cfg.VelocityIterations = velocityIterations
	}
	if cmd.Flags().Changed("position-iterations") {
		cfg.PositionIterations = positionIterations
	}
	if cmd.Flags().Changed("warm-starting") {
		cfg.WarmStarting = warmStarting
	}
	if cmd.Flags().Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}

	build, ok := scenarios[cfg.Scenario]
	if !ok {
		return fmt.Errorf("unknown scenario %q (try: farseer list)", cfg.Scenario)
	}

	world := farseer.NewWorld(farseer.MakeVec2(cfg.Gravity.X, cfg.Gravity.Y))
	world.SetWarmStarting(cfg.WarmStarting)

	removed := 0
	world.SetJointRemovedListener(func(joint *farseer.Joint) {
		removed++
	})

	tracked := build(world, cfg)
	if tracked == nil {
		return fmt.Errorf("scenario %q produced no body to track", cfg.Scenario)
	}

	steps := int(cfg.Duration / cfg.Dt)
	heights := make([]float64, 0, steps)

	start := time.Now()
	for i := 0; i < steps; i++ {
		world.Step(cfg.Dt, cfg.VelocityIterations, cfg.PositionIterations)
		heights = append(heights, tracked.GetPosition().Y)
	}
	elapsed := time.Since(start)

	graph := asciigraph.Plot(heights,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s: tracked body height (m)", cfg.Scenario)),
	)
	fmt.Println(graph)
	fmt.Println()

	fmt.Printf("steps: %d  dt: %.4fs  wall: %s\n", steps, cfg.Dt, elapsed.Round(time.Millisecond))
	fmt.Printf("bodies: %d  joints: %d  joints removed: %d\n",
		world.GetBodyCount(), world.GetJointCount(), removed)

	return nil
}
