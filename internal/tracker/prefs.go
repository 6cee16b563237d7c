package tracker

// Preferences holds the user's profile settings. The JSON layout matches the
// original preferences.json document.
type Preferences struct {
	DietType              string   `json:"diet_type"`
	HomeType              string   `json:"home_type"`
	TransportationPrimary string   `json:"transportation_primary"`
	Interests             []string `json:"interests"`
}

// defaultPreferences returns the preferences assumed for a new user.
func defaultPreferences() Preferences {
	return Preferences{
		DietType:              "omnivore",
		HomeType:              "apartment",
		TransportationPrimary: "car",
		Interests:             []string{},
	}
}

// merge applies recognized keys from updates onto p. Unrecognized keys and
// values of the wrong shape are ignored, never errors.
func (p *Preferences) merge(updates map[string]any) {
	for key, value := range updates {
		switch key {
		case "diet_type":
			if s, ok := value.(string); ok {
				p.DietType = s
			}
		case "home_type":
			if s, ok := value.(string); ok {
				p.HomeType = s
			}
		case "transportation_primary":
			if s, ok := value.(string); ok {
				p.TransportationPrimary = s
			}
		case "interests":
			switch v := value.(type) {
			case []string:
				p.Interests = v
			case []any:
				interests := make([]string, 0, len(v))
				for _, item := range v {
					if s, ok := item.(string); ok {
						interests = append(interests, s)
					}
				}
				p.Interests = interests
			}
		}
	}
}
