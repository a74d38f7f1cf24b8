// Package prompt resolves an analysis category and a user profile into
// AI-assistant-ready text. The taxonomy is closed: eight categories, each
// with its own section template and field set. Field values resolve
// per-field as profile value, then athlete record, then a visible
// placeholder instruction string.
package prompt

// Category is one of the eight analysis focuses. It is a closed set;
// dispatch on it is an exhaustive switch, and only genuinely external
// input is defaulted (see ParseCategory).
type Category string

const (
	CategoryGeneral          Category = "general"
	CategoryPerformance      Category = "performance"
	CategoryNutrition        Category = "nutrition"
	CategoryRacePrep         Category = "race_prep"
	CategoryInjuryPrevention Category = "injury_prevention"
	CategoryWeightManagement Category = "weight_management"
	CategoryEndurance        Category = "endurance"
	CategoryStrength         Category = "strength"
)

// Categories lists the taxonomy in presentation order.
var Categories = []Category{
	CategoryGeneral,
	CategoryPerformance,
	CategoryNutrition,
	CategoryRacePrep,
	CategoryInjuryPrevention,
	CategoryWeightManagement,
	CategoryEndurance,
	CategoryStrength,
}

// ParseCategory maps external input to a Category. Unrecognized values
// fall back to the general analysis, a defined default rather than an
// error.
func ParseCategory(s string) Category {
	switch Category(s) {
	case CategoryPerformance, CategoryNutrition, CategoryRacePrep,
		CategoryInjuryPrevention, CategoryWeightManagement,
		CategoryEndurance, CategoryStrength:
		return Category(s)
	default:
		return CategoryGeneral
	}
}

// Title returns the category's display title.
func (c Category) Title() string {
	switch c {
	case CategoryPerformance:
		return "Performance Optimization"
	case CategoryNutrition:
		return "Nutrition & Fueling"
	case CategoryRacePrep:
		return "Race Preparation"
	case CategoryInjuryPrevention:
		return "Injury Prevention"
	case CategoryWeightManagement:
		return "Weight Management"
	case CategoryEndurance:
		return "Endurance Building"
	case CategoryStrength:
		return "Strength & Power"
	default:
		return "General Analysis"
	}
}

// Description returns the one-line description shown next to the title.
func (c Category) Description() string {
	switch c {
	case CategoryPerformance:
		return "Analyze trends, identify improvements, and optimize training efficiency"
	case CategoryNutrition:
		return "Dietary recommendations based on your training load and goals"
	case CategoryRacePrep:
		return "Training plans and strategies for upcoming races or events"
	case CategoryInjuryPrevention:
		return "Identify risk factors and get recovery/prevention strategies"
	case CategoryWeightManagement:
		return "Exercise and lifestyle recommendations for weight goals"
	case CategoryEndurance:
		return "Strategies to improve cardiovascular fitness and stamina"
	case CategoryStrength:
		return "Build strength, power, and complement your cardio training"
	default:
		return "Comprehensive overview of your training patterns and overall fitness"
	}
}
