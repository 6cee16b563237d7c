package cli

import (
	"github.com/spf13/cobra"
)

func newProductsCmd() *cobra.Command {
	var (
		category string
		count    int
	)

	cmd := &cobra.Command{
		Use:   "products",
		Short: "Recommend sustainable products",
		Example: `  ecotrack products
  ecotrack products --category kitchen --count 2`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			products, err := a.advisor.Products(category, count)
			if err != nil {
				return err
			}

			for i, p := range products {
				cmd.Printf("%d. %s - %s\n", i+1, p.Name, p.Description)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "restrict to one catalog bucket (home, kitchen, personal)")
	cmd.Flags().IntVar(&count, "count", 3, "number of recommendations")

	return cmd
}
