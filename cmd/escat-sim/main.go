// Command escat-sim runs one FEBID electron-scattering batch
// (trajectory.Simulate) from a TOML configuration file and writes the
// resulting trajectories to disk. Grounded on the teacher's root
// main.go: flag.String for the config path, toml decode via
// internal/config, a timing line bracketing the run, and a CSV export
// pass at the end.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/nvershinin/escat/internal/config"
	"github.com/nvershinin/escat/internal/grid"
	"github.com/nvershinin/escat/internal/gridio"
	"github.com/nvershinin/escat/internal/resultio"
	"github.com/nvershinin/escat/internal/scenario"
	"github.com/nvershinin/escat/internal/statutil"
	"github.com/nvershinin/escat/internal/trajectory"
)

func main() {
	configFileNamePointer := flag.String("input", "run", "run configuration in toml format")
	seedOverride := flag.Int64("seed", 0, "override the configured seed (0 = use config value)")
	flag.Parse()

	configFileName := strings.TrimSuffix(*configFileNamePointer, ".toml")

	startTime := time.Now()
	fmt.Printf("Current time: %s\n", startTime.UTC().Format(time.UnixDate))

	cfg, err := config.LoadConfig(configFileName + ".toml")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *seedOverride != 0 {
		cfg.Seed = *seedOverride
	}

	if len(cfg.Beam) == 0 {
		fmt.Fprintln(os.Stderr, "no beam entries configured")
		os.Exit(1)
	}

	var snap grid.Snapshot
	switch {
	case cfg.Scenario != "":
		snap, err = scenario.Build(cfg.Scenario, cfg.CellDim)
	case cfg.GridPath != "":
		snap, err = gridio.Load(cfg.GridPath, cfg.GridFormat)
	default:
		err = fmt.Errorf("no grid source configured: set Scenario or GridPath")
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	y0, x0 := cfg.Y0X0()
	input := trajectory.Input{
		E0:        cfg.E0,
		EMin:      cfg.EMin,
		Y0:        y0,
		X0:        x0,
		Grid:      snap,
		Materials: cfg.MaterialTable(),
		Seed:      cfg.Seed,
		Workers:   cfg.Workers,
	}

	if cfg.Verbose {
		fmt.Printf("tracing %d electrons across %d workers (seed=%d)\n", len(input.Y0), input.Workers, input.Seed)
	}

	results, err := trajectory.Simulate(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	report := statutil.Summarize(results)
	fmt.Printf("traced %d electrons: mean length %.2f, mean final energy %.4f keV\n",
		report.Count, report.MeanLength, report.MeanFinalEnergy)

	outputDir := cfg.OutputDir
	if outputDir == "" {
		outputDir = "."
	}
	names, err := resultio.WriteCSV(outputDir, results)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if cfg.Verbose {
		for _, name := range names {
			fmt.Println(name, "saved")
		}
	}

	fmt.Printf("Elapsed time: %v\n", time.Since(startTime))
}
