package cli

import (
	"github.com/spf13/cobra"
)

func newTipsCmd() *cobra.Command {
	var (
		category string
		count    int
	)

	cmd := &cobra.Command{
		Use:   "tips",
		Short: "Get personalized improvement tips",
		Long: `Selects tips weighted toward the categories where your footprint over
the last month is highest. Asking for more tips than exist returns fewer.`,
		Example: `  ecotrack tips
  ecotrack tips --category food --count 5`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			monthly, err := a.tracker.Summary("month")
			if err != nil {
				return err
			}

			tips, err := a.advisor.Tips(monthly.ByCategory(), category, count)
			if err != nil {
				return err
			}

			for i, tip := range tips {
				cmd.Printf("%d. %s\n", i+1, tip)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "restrict tips to one category")
	cmd.Flags().IntVar(&count, "count", 3, "number of tips")

	return cmd
}
