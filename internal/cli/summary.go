package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newSummaryCmd() *cobra.Command {
	var (
		period string
		output string
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the aggregated footprint for a time period",
		Example: `  ecotrack summary
  ecotrack summary --period year --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			summary, err := a.tracker.Summary(period)
			if err != nil {
				return err
			}

			switch output {
			case "json":
				data, err := json.MarshalIndent(summary, "", "  ")
				if err != nil {
					return err
				}
				cmd.Println(string(data))
			case "table":
				cmd.Print(renderSummary(summary))
			default:
				return fmt.Errorf("unknown output format %q, use table or json", output)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&period, "period", "month", "time period (week, month, year)")
	cmd.Flags().StringVar(&output, "output", "table", "output format (table, json)")

	return cmd
}
