package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/stravalyze/stravalyze/internal/model"
)

// Placeholder instruction strings substituted for missing profile fields.
// They are deliberately loud so the AI assistant asks the reader for the
// value instead of guessing.
const (
	PlaceholderDateOfBirth = "[PLEASE FILL IN YOUR DATE OF BIRTH]"
	PlaceholderWeight      = "[PLEASE FILL IN YOUR WEIGHT IN KG]"
	PlaceholderExperience  = "[PLEASE DESCRIBE YOUR TRAINING EXPERIENCE LEVEL]"
)

const closing = `

Please consider my age, experience level, and stated goals in your analysis. Provide specific, actionable recommendations that I can implement in my training routine.`

// Generate builds the full prompt for one category: common preamble,
// category section with its own field set, workout-data header with the
// literal activity count, and the fixed closing. The activities themselves
// are never embedded; the prompt tells the reader to attach the exported
// file.
func Generate(category Category, athlete model.Athlete, profile model.PromptProfile, activityCount int) string {
	return preamble(category, athlete, profile) +
		section(category, profile, activityCount) +
		closing
}

func preamble(category Category, athlete model.Athlete, profile model.PromptProfile) string {
	weight := profile.Weight
	if weight == "" && athlete.Weight != nil {
		weight = strconv.FormatFloat(*athlete.Weight, 'f', -1, 64)
	}

	return fmt.Sprintf(`I am an athlete seeking specialized analysis of my workout data. Please analyze my training data and provide insights focused on %s.

## Athlete Profile
- Name: %s
- Location: %s
- Gender: %s
- Date of Birth: %s
- Weight: %s
- Strava Member Since: %s
- Premium Member: %t
- Training Experience: %s`,
		strings.ToLower(category.Title()),
		athlete.Name(),
		athlete.Location(),
		genderLabel(athlete.Sex),
		orElse(profile.DateOfBirth, PlaceholderDateOfBirth),
		orElse(weight, PlaceholderWeight),
		memberSince(athlete.CreatedAt),
		athlete.Premium,
		orElse(profile.Experience, PlaceholderExperience),
	)
}

// genderLabel maps the Strava sex code to a label; anything other than
// "M"/"F" passes through as-is.
func genderLabel(sex string) string {
	switch sex {
	case "M":
		return "Male"
	case "F":
		return "Female"
	default:
		return sex
	}
}

// memberSince trims the account-creation timestamp to its date part.
func memberSince(createdAt string) string {
	if i := strings.IndexByte(createdAt, 'T'); i > 0 {
		return createdAt[:i]
	}
	return createdAt
}

// orElse resolves one field: the provided value, or the placeholder. Each
// field is resolved independently; there is no global profile-complete
// gate.
func orElse(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}

// workoutData is the fixed section pointing the assistant at the exported
// file rather than inlining activities, keeping the prompt short.
func workoutData(activityCount int) string {
	return fmt.Sprintf(`## Workout Data (%d activities)
[PLEASE ATTACH YOUR EXPORTED WORKOUT FILE HERE]`, activityCount)
}
