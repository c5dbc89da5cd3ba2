package models

// MealType represents the kind of meal a session delivers
type MealType string

const (
	// MealTypeBreakfast is the morning meal run
	MealTypeBreakfast MealType = "BREAKFAST"

	// MealTypeLunch is the midday meal run
	MealTypeLunch MealType = "LUNCH"

	// MealTypeSupper is the evening meal run
	MealTypeSupper MealType = "SUPPER"

	// MealTypeBeverages is a beverage-only run
	MealTypeBeverages MealType = "BEVERAGES"
)

// IsValid reports whether the meal type is one of the known values
func (m MealType) IsValid() bool {
	switch m {
	case MealTypeBreakfast, MealTypeLunch, MealTypeSupper, MealTypeBeverages:
		return true
	default:
		return false
	}
}

// DisplayName returns the human-readable name of the meal type
func (m MealType) DisplayName() string {
	switch m {
	case MealTypeBreakfast:
		return "Breakfast"
	case MealTypeLunch:
		return "Lunch"
	case MealTypeSupper:
		return "Supper"
	case MealTypeBeverages:
		return "Beverages"
	default:
		return string(m)
	}
}

// Icon returns the emoji used for the meal type on dashboards
func (m MealType) Icon() string {
	switch m {
	case MealTypeBreakfast:
		return "🌅"
	case MealTypeLunch:
		return "☀️"
	case MealTypeSupper:
		return "🌙"
	case MealTypeBeverages:
		return "☕"
	default:
		return ""
	}
}

// TimeRange returns the serving window for the meal type
func (m MealType) TimeRange() string {
	switch m {
	case MealTypeBreakfast:
		return "06:00 - 09:00"
	case MealTypeLunch:
		return "11:30 - 14:00"
	case MealTypeSupper:
		return "17:00 - 19:30"
	case MealTypeBeverages:
		return "All Day"
	default:
		return ""
	}
}

// DisplayNameWithIcon returns the icon and display name together
func (m MealType) DisplayNameWithIcon() string {
	return m.Icon() + " " + m.DisplayName()
}
