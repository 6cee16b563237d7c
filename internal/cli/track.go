package cli

import (
	"github.com/spf13/cobra"

	"github.com/rgreen/ecotrack/internal/tracker"
)

func newTrackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "track",
		Short: "Record an activity and its carbon impact",
	}

	cmd.AddCommand(
		newTrackTransportCmd(),
		newTrackEnergyCmd(),
		newTrackFoodCmd(),
		newTrackPurchaseCmd(),
	)

	return cmd
}

// printTrackResult echoes the confirmation and warns when the write-through
// did not reach storage.
func printTrackResult(cmd *cobra.Command, res tracker.TrackResult) {
	cmd.Println(res.Message)
	if !res.Persisted {
		cmd.PrintErrln("Warning: the entry could not be saved and will be lost when this command exits.")
	}
}

func newTrackTransportCmd() *cobra.Command {
	var (
		mode       string
		distance   float64
		passengers int
	)

	cmd := &cobra.Command{
		Use:   "transport",
		Short: "Record a trip",
		Example: `  ecotrack track transport --mode car --distance 15.5
  ecotrack track transport --mode car --distance 40 --passengers 3
  ecotrack track transport --mode train --distance 210`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := a.tracker.TrackTransportation(cmd.Context(), mode, distance, passengers)
			if err != nil {
				return err
			}

			printTrackResult(cmd, res)
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", "transportation mode (car, bus, train, bicycle, walk, plane)")
	cmd.Flags().Float64Var(&distance, "distance", 0, "distance in km")
	cmd.Flags().IntVar(&passengers, "passengers", 1, "number of passengers (car pooling)")
	_ = cmd.MarkFlagRequired("mode")
	_ = cmd.MarkFlagRequired("distance")

	return cmd
}

func newTrackEnergyCmd() *cobra.Command {
	var (
		energyType string
		amount     float64
		unit       string
	)

	cmd := &cobra.Command{
		Use:   "energy",
		Short: "Record home energy consumption",
		Example: `  ecotrack track energy --type electricity --amount 120
  ecotrack track energy --type natural_gas --amount 10 --unit therms`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := a.tracker.TrackEnergy(cmd.Context(), energyType, amount, unit)
			if err != nil {
				return err
			}

			printTrackResult(cmd, res)
			return nil
		},
	}

	cmd.Flags().StringVar(&energyType, "type", "", "energy type (electricity, natural_gas, heating_oil, propane, renewable)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "amount consumed")
	cmd.Flags().StringVar(&unit, "unit", "kWh", "unit (kWh, or therms for natural_gas)")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newTrackFoodCmd() *cobra.Command {
	var items []string

	cmd := &cobra.Command{
		Use:   "food",
		Short: "Record a batch of food items",
		Long: `Records one or more food items as a single entry. Each --item takes
comma-separated key=value pairs: type (required), amount in kg (required),
local and organic (optional booleans).`,
		Example: `  ecotrack track food --item "type=vegetables,amount=1.2,local=true,organic=true"
  ecotrack track food \
    --item "type=vegetables,amount=1.2" \
    --item "type=chicken,amount=0.5"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := parseFoodItems(items)
			if err != nil {
				return err
			}

			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := a.tracker.TrackFood(cmd.Context(), parsed)
			if err != nil {
				return err
			}

			printTrackResult(cmd, res)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&items, "item", nil, "food item as key=value pairs (repeatable)")
	_ = cmd.MarkFlagRequired("item")

	return cmd
}

func newTrackPurchaseCmd() *cobra.Command {
	var (
		category    string
		description string
		price       float64
		ecoFriendly bool
	)

	cmd := &cobra.Command{
		Use:   "purchase",
		Short: "Record a purchase",
		Example: `  ecotrack track purchase --category electronics --description Smartphone --price 800
  ecotrack track purchase --category clothing --description "Wool sweater" --price 90 --eco-friendly`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := a.tracker.TrackPurchase(cmd.Context(), category, description, price, ecoFriendly)
			if err != nil {
				return err
			}

			printTrackResult(cmd, res)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "purchase category (clothing, electronics, furniture, household, hobby)")
	cmd.Flags().StringVar(&description, "description", "", "what was bought")
	cmd.Flags().Float64Var(&price, "price", 0, "price paid")
	cmd.Flags().BoolVar(&ecoFriendly, "eco-friendly", false, "product is eco-friendly")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}
