package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ehrlich-b/twisty/internal/config"
	"github.com/ehrlich-b/twisty/internal/obs"
)

var rootCmd = &cobra.Command{
	Use:     "twisty",
	Short:   "A two-phase Rubik's Cube solver",
	Long:    `twisty solves the 3x3x3 Rubik's Cube with Kociemba's two-phase algorithm, streaming strictly-improving solutions as it finds them.`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("tables", "", "Table cache directory (default: TWISTY_TABLE_DIR or ~/.cache/twisty)")
	rootCmd.PersistentFlags().Int("workers", 0, "Search worker budget (default: TWISTY_WORKERS or 4)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (default: TWISTY_LOG_LEVEL or info)")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(twistCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig assembles a Config from the environment with any
// persistent flags the user passed taking precedence.
func loadConfig(cmd *cobra.Command) config.Config {
	tableDir, _ := cmd.Flags().GetString("tables")
	workers, _ := cmd.Flags().GetInt("workers")
	logLevel, _ := cmd.Flags().GetString("log-level")

	cfg := config.Default().WithTableDir(tableDir).WithWorkers(workers)
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	return cfg
}

func logger(cfg config.Config) zerolog.Logger {
	return obs.New(cfg.LogLevel)
}
