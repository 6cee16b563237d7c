// Package cli implements the ecotrack command tree.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// logger is the package-level logger for CLI operations. Setup replaces it
// once the configuration is known.
var logger = zerolog.Nop()

// NewRootCmd creates the root cobra command for the ecotrack CLI.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ecotrack",
		Short: "Personal carbon footprint tracker",
		Long: "ecotrack records transportation, energy, food and purchase activities,\n" +
			"estimates their CO2e impact and reports how your footprint compares to average.",
		Version:      ver,
		Example:      rootCmdExample,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default ~/.ecotrack/config.yaml)")
	cmd.PersistentFlags().String("user", "", "user to track (default from config)")
	cmd.PersistentFlags().String("data-dir", "", "data directory for the file backend (default from config)")

	cmd.AddCommand(
		newTrackCmd(),
		newSummaryCmd(),
		newTipsCmd(),
		newProductsCmd(),
		newReportCmd(),
		newPrefsCmd(),
		newConfigCmd(),
	)

	return cmd
}

const rootCmdExample = `  # Track a 15.5 km car trip
  ecotrack track transport --mode car --distance 15.5

  # Track 120 kWh of electricity
  ecotrack track energy --type electricity --amount 120

  # Track a meal
  ecotrack track food --item "type=vegetables,amount=1.2,local=true,organic=true"

  # Track a purchase
  ecotrack track purchase --category electronics --description Smartphone --price 800

  # Show this month's footprint
  ecotrack summary --period month

  # Generate the full impact report
  ecotrack report --period month`
