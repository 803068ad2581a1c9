package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/point-sim/point-sim/process/scenario"
)

var (
	// CLI flags; scenario-file values win unless overridden on the line.
	configPath string  // Path to the YAML scenario
	seed       int64   // Master seed for random streams
	runs       int     // Number of independent replications
	workers    int     // Replication worker goroutines
	horizon    float64 // Simulation horizon tmax
	outputPath string  // Optional CSV destination for the first run's events
	logLevel   string  // Log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "point-sim",
	Short: "Temporal point process simulator (Poisson and Hawkes)",
}

// runCmd executes the scenario from the config file, with flag overrides
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a simulation scenario",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		s, err := scenario.Load(configPath)
		if err != nil {
			logrus.Fatalf("Unable to load scenario: %v", err)
		}
		if cmd.Flags().Changed("seed") {
			s.Seed = seed
		}
		if cmd.Flags().Changed("runs") {
			s.Runs = runs
		}
		if cmd.Flags().Changed("workers") {
			s.Workers = workers
		}
		if cmd.Flags().Changed("horizon") {
			s.Horizon = horizon
		}

		logrus.Infof("Starting %s scenario: seed=%d runs=%d horizon=%g",
			s.Process, s.Seed, s.Runs, s.Horizon)

		results, err := (&scenario.Runner{Scenario: s}).Run()
		if err != nil {
			logrus.Fatalf("Scenario failed: %v", err)
		}
		scenario.Summarize(results).Log()

		if outputPath != "" {
			if err := scenario.WriteEventsCSV(outputPath, results[0].Events); err != nil {
				logrus.Fatalf("Unable to write events: %v", err)
			}
			logrus.Infof("Wrote first run's %d events to %s", len(results[0].Events), outputPath)
		}
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&configPath, "config", "", "Path to the YAML scenario file")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Master seed for random streams")
	runCmd.Flags().IntVar(&runs, "runs", 1, "Number of independent replications")
	runCmd.Flags().IntVar(&workers, "workers", 1, "Worker goroutines across replications")
	runCmd.Flags().Float64Var(&horizon, "horizon", 10.0, "Simulation horizon tmax")
	runCmd.Flags().StringVar(&outputPath, "output", "", "CSV file for the first run's events")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	if err := runCmd.MarkFlagRequired("config"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(runCmd)
}
