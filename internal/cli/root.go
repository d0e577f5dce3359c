// Package cli wires the simulation engine, store, and formatters into the
// lifesim command tree.
package cli

import (
	"os"
	"path/filepath"

	"github.com/lifesim/scenario-engine/internal/calculation"
	"github.com/lifesim/scenario-engine/internal/config"
	"github.com/lifesim/scenario-engine/internal/output"
	"github.com/lifesim/scenario-engine/internal/store"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagConfig  string
	flagDataDir string
	flagFormat  string
	flagHorizon int
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "lifesim",
	Short: "Life-scenario financial simulator",
	Long:  "Project month-by-month cash flow for life changes (relocating, buying a home, early retirement, ...) against a do-nothing baseline.",
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	homeDir, _ := os.UserHomeDir()
	defaultDataDir := filepath.Join(homeDir, ".lifesim")

	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "lifesim.yaml", "Profile configuration file")
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", defaultDataDir, "Directory holding the scenario store")
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "console", "Output format (console, json)")
	rootCmd.PersistentFlags().IntVarP(&flagHorizon, "horizon", "H", 0, "Projection horizon in months (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stderr)
	if flagVerbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}
	return logger
}

// newService loads the configuration and builds the engine plus the
// file-backed scenario service.
func newService() (*store.Service, *config.Config, error) {
	cfg, err := config.NewInputParser().LoadFromFile(flagConfig)
	if err != nil {
		return nil, nil, err
	}

	logger := newLogger()
	engine := calculation.NewSimulationEngine()
	engine.SetLogger(calculation.NewLogrusLogger(logger, "engine"))
	engine.Policy = *cfg.Recommendation

	repo := store.NewFileStore(filepath.Join(flagDataDir, "scenarios.json"))
	svc := store.NewService(repo, engine, calculation.NewLogrusLogger(logger, "store"))
	return svc, cfg, nil
}

func horizonMonths(cfg *config.Config) int {
	if flagHorizon > 0 {
		return flagHorizon
	}
	return cfg.HorizonMonths
}

func newFormatter() (output.Formatter, error) {
	return output.NewFormatter(flagFormat)
}
