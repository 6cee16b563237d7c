package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rgreen/ecotrack/internal/carbon"
)

// parseFoodItems converts repeated --item flag values into calculator
// inputs. Each spec is comma-separated key=value pairs, e.g.
// "type=vegetables,amount=1.2,local=true".
func parseFoodItems(specs []string) ([]carbon.FoodItem, error) {
	items := make([]carbon.FoodItem, 0, len(specs))

	for _, spec := range specs {
		item, err := parseFoodItem(spec)
		if err != nil {
			return nil, fmt.Errorf("invalid --item %q: %w", spec, err)
		}
		items = append(items, item)
	}

	return items, nil
}

func parseFoodItem(spec string) (carbon.FoodItem, error) {
	var item carbon.FoodItem
	haveAmount := false

	for pair := range strings.SplitSeq(spec, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		key, value, found := strings.Cut(pair, "=")
		if !found {
			return item, fmt.Errorf("expected key=value, got %q", pair)
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)

		switch key {
		case "type":
			item.Type = value
		case "amount":
			amount, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return item, fmt.Errorf("amount %q is not a number", value)
			}
			item.Amount = amount
			haveAmount = true
		case "local":
			local, err := strconv.ParseBool(value)
			if err != nil {
				return item, fmt.Errorf("local %q is not a boolean", value)
			}
			item.Local = local
		case "organic":
			organic, err := strconv.ParseBool(value)
			if err != nil {
				return item, fmt.Errorf("organic %q is not a boolean", value)
			}
			item.Organic = organic
		default:
			return item, fmt.Errorf("unknown key %q", key)
		}
	}

	if item.Type == "" {
		return item, fmt.Errorf("type is required")
	}
	if !haveAmount {
		return item, fmt.Errorf("amount is required")
	}

	return item, nil
}
