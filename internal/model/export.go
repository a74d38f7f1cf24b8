package model

// ExportBatch is the unit of work handed to an encoder: the athlete, the
// selected activities in caller-supplied order, and the export timestamp.
// It is built fresh per export action and never persisted.
type ExportBatch struct {
	Athlete         Athlete    `json:"athlete"`
	Activities      []Activity `json:"activities"`
	ExportDate      string     `json:"exportDate"` // ISO-8601
	TotalActivities int        `json:"totalActivities"`
}

// NewExportBatch snapshots a selection for export. The activity order is
// preserved as given; it is the user's selection order, not re-sorted.
func NewExportBatch(athlete Athlete, activities []Activity, exportDate string) ExportBatch {
	return ExportBatch{
		Athlete:         athlete,
		Activities:      activities,
		ExportDate:      exportDate,
		TotalActivities: len(activities),
	}
}

// PromptProfile carries the user-entered profile fields for prompt
// generation. Blank fields are substituted with placeholder instruction
// strings by the prompt engine, never with empty text or numeric defaults.
type PromptProfile struct {
	DateOfBirth         string `json:"dateOfBirth,omitempty"`
	Weight              string `json:"weight,omitempty"` // kg, free text
	Goals               string `json:"goals,omitempty"`
	InjuryHistory       string `json:"injuryHistory,omitempty"`
	Experience          string `json:"experience,omitempty"`
	RaceGoal            string `json:"raceGoal,omitempty"`
	CurrentWeight       string `json:"currentWeight,omitempty"`
	TargetWeight        string `json:"targetWeight,omitempty"`
	DietaryRestrictions string `json:"dietaryRestrictions,omitempty"`
}
