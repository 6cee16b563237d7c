package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newReportCmd() *cobra.Command {
	var (
		period string
		output string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate the full environmental impact report",
		Example: `  ecotrack report
  ecotrack report --period year
  ecotrack report --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			rep, err := a.reporter.Generate(period)
			if err != nil {
				return err
			}

			switch output {
			case "json":
				data, err := json.MarshalIndent(rep, "", "  ")
				if err != nil {
					return err
				}
				cmd.Println(string(data))
			case "text":
				cmd.Print(rep.Text())
				cmd.Println(dimStyle.Render("report " + rep.ID))
			case "table":
				cmd.Print(renderSummary(rep.Footprint))
				cmd.Println()
				cmd.Print(renderComparison(rep))
				cmd.Println()
				cmd.Println(titleStyle.Render("Improvement tips"))
				for i, tip := range rep.ImprovementTips {
					cmd.Printf("%d. %s\n", i+1, tip)
				}
			default:
				return fmt.Errorf("unknown output format %q, use text, table or json", output)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&period, "period", "month", "time period (week, month, year)")
	cmd.Flags().StringVar(&output, "output", "text", "output format (text, table, json)")

	return cmd
}
