// life is a toroidal Game of Life for the terminal.
//
// Usage:
//
//	life play               - Interactive board in the terminal
//	life run                - Headless run (or batch of runs) with a report
//	life patterns [id]      - List built-in patterns or print one
//	life runs               - Show recorded runs
//	life serve              - Start SSH server for remote boards
//	life config             - Print or install the default config
//
// Global flags:
//
//	--config <path>    - Config file (default search: ~/.life/configs, ./configs)
//	--fps <rate>       - Generations per second
//	--seed <value>     - RNG seed for reproducible soups
//	--db <path>        - Run database (default: ~/.life/runs.db)
//	--log-level <lvl>  - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/logging"
	"github.com/vovakirdan/tui-life/internal/storage"

	// Import patterns to register them
	_ "github.com/vovakirdan/tui-life/internal/patterns"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "life",
	Short: "Conway's Game of Life on a torus, in your terminal",
	Long: `life runs Conway's Game of Life on a grid whose edges wrap around.

Available commands:
  play      - Interactive board
  run       - Headless runs with a report
  patterns  - Built-in pattern catalog
  runs      - Recorded run statistics
  serve     - SSH server, one board per session
  config    - Default configuration

Examples:
  life play
  life play --pattern acorn
  life run --pattern r-pentomino --generations 2000
  life run --trials 16 --save
  life runs --tui
  life serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Generations per second (default from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the config file and applies command line overrides.
func loadConfig(cmd *cobra.Command) (config.LifeConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Universe.Seed = flagSeed
	}
	if cmd.Flags().Changed("fps") {
		cfg.Simulation.TickRate = flagFPS
	}
	cfg.Validate()
	return cfg, nil
}

// newLogger builds the process logger from --log-level.
func newLogger() (*log.Logger, error) {
	return logging.New("life", flagLogLevel)
}
