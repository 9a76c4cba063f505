// gravoids is an inspection toolbox for binary galaxy files: decode
// planets, export them, and trace shot ballistics against their walls.
//
// Usage:
//
//	gravoids info <galaxy>    - Summarize a decoded planet
//	gravoids dump <galaxy>    - Export a decoded planet (yaml/json/msgpack)
//	gravoids trace <galaxy>   - Trace a shot's impacts and bounces
//
// Global flags:
//
//	--config <path>  - Tool config YAML (galaxy location, defaults)
//	--planet <n>     - Planet number to decode (default: 1)
//	--log-level <l>  - Diagnostic verbosity (debug, info, warn, error)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravoids/internal/config"
	"github.com/vovakirdan/gravoids/internal/planet"
)

var (
	// Global flags
	flagConfig   string
	flagPlanet   int
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gravoids",
	Short: "Gravoids - inspect galaxy files and trace shot ballistics",
	Long: `Gravoids decodes the binary galaxy format into planet snapshots and
answers ballistic queries against their wall geometry.

Available commands:
  info     - Summarize a decoded planet
  dump     - Export a decoded planet as yaml, json or msgpack
  trace    - Trace a shot through impacts and bounces

Examples:
  gravoids info galaxy.bin --planet 3
  gravoids dump galaxy.bin --planet 3 --format msgpack -o planet3.bin
  gravoids trace galaxy.bin --planet 1 --x 120 --y 80 --h 16 --v -4`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to tool config YAML")
	rootCmd.PersistentFlags().IntVar(&flagPlanet, "planet", 1, "Planet number to decode")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(traceCmd)
}

// newLogger builds the diagnostic logger, flag level winning over config.
func newLogger(cfg config.Config) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "gravoids",
	})
	level := cfg.Log.Level
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	if parsed, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(parsed)
	}
	return logger
}

// loadPlanet reads the galaxy named on the command line (or in config)
// and decodes the planet selected by --planet.
func loadPlanet(args []string) (*planet.Planet, config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, cfg, err
	}

	path := cfg.Galaxy.File
	if len(args) > 0 {
		path = args[0]
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, cfg, fmt.Errorf("failed to read galaxy %s: %w", path, err)
	}

	indexes := cfg.Galaxy.Planets
	if len(indexes) == 0 {
		indexes = planet.IdentityIndexes(planet.Slots(data))
	}

	p, err := planet.Decode(data, indexes, flagPlanet)
	if err != nil {
		return nil, cfg, err
	}
	return p, cfg, nil
}
