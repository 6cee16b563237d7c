package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newPrefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or update user preferences",
	}

	cmd.AddCommand(newPrefsShowCmd(), newPrefsSetCmd())
	return cmd
}

func newPrefsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current preferences",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			prefs := a.tracker.Preferences()
			cmd.Printf("diet_type: %s\n", prefs.DietType)
			cmd.Printf("home_type: %s\n", prefs.HomeType)
			cmd.Printf("transportation_primary: %s\n", prefs.TransportationPrimary)
			cmd.Printf("interests: %s\n", strings.Join(prefs.Interests, ", "))
			return nil
		},
	}
}

func newPrefsSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set key=value [key=value ...]",
		Short: "Update preferences",
		Long: `Updates recognized preference keys: diet_type, home_type,
transportation_primary and interests (comma-separated list). Unrecognized
keys are ignored.`,
		Example: `  ecotrack prefs set diet_type=vegetarian
  ecotrack prefs set interests=cycling,gardening home_type=house`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			updates := make(map[string]any, len(args))
			for _, arg := range args {
				key, value, found := strings.Cut(arg, "=")
				if !found {
					return fmt.Errorf("expected key=value, got %q", arg)
				}
				if key == "interests" {
					updates[key] = splitInterests(value)
					continue
				}
				updates[key] = value
			}

			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if !a.tracker.SetPreferences(cmd.Context(), updates) {
				cmd.PrintErrln("Warning: preferences updated in memory but could not be saved.")
				return nil
			}

			cmd.Println("User preferences updated successfully")
			return nil
		},
	}

	return cmd
}

// splitInterests turns a comma-separated list into a clean string slice.
func splitInterests(value string) []string {
	parts := []string{}
	for part := range strings.SplitSeq(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}
