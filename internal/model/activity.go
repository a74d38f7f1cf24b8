package model

// Map is the nested map sub-record carried by every activity.
type Map struct {
	ID              string `json:"id,omitempty"`
	SummaryPolyline string `json:"summary_polyline,omitempty"`
	ResourceState   int    `json:"resource_state,omitempty"`
}

// Activity is one recorded workout as returned by
// GET /athlete/activities. Optional performance metrics are pointers:
// a missing heart rate is absent, never 0 bpm.
type Activity struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	Distance           float64 `json:"distance"`    // meters
	MovingTime         int64   `json:"moving_time"` // sec
	ElapsedTime        int64   `json:"elapsed_time"`
	TotalElevationGain float64 `json:"total_elevation_gain"` // meters
	Type               string  `json:"type"`                 // "Run", "Ride", "Swim", ...
	SportType          string  `json:"sport_type,omitempty"`
	StartDate          string  `json:"start_date"` // ISO-8601 UTC
	StartDateLocal     string  `json:"start_date_local,omitempty"`
	Timezone           string  `json:"timezone,omitempty"`
	UTCOffset          float64 `json:"utc_offset,omitempty"`
	LocationCity       *string `json:"location_city,omitempty"`
	LocationState      *string `json:"location_state,omitempty"`
	LocationCountry    *string `json:"location_country,omitempty"`
	AchievementCount   int     `json:"achievement_count,omitempty"`
	KudosCount         int     `json:"kudos_count,omitempty"`
	CommentCount       int     `json:"comment_count,omitempty"`
	AthleteCount       int     `json:"athlete_count,omitempty"`
	PhotoCount         int     `json:"photo_count,omitempty"`
	Map                Map     `json:"map"`
	Trainer            bool    `json:"trainer"`
	Commute            bool    `json:"commute"`
	Manual             bool    `json:"manual"`
	Private            bool    `json:"private"`
	Flagged            bool    `json:"flagged"`
	GearID             *string `json:"gear_id,omitempty"`

	AverageSpeed         *float64 `json:"average_speed,omitempty"` // m/s
	MaxSpeed             *float64 `json:"max_speed,omitempty"`     // m/s
	AverageCadence       *float64 `json:"average_cadence,omitempty"`
	AverageWatts         *float64 `json:"average_watts,omitempty"` // cycling only
	WeightedAverageWatts *float64 `json:"weighted_average_watts,omitempty"`
	Kilojoules           *float64 `json:"kilojoules,omitempty"`
	DeviceWatts          *bool    `json:"device_watts,omitempty"`
	HasHeartrate         *bool    `json:"has_heartrate,omitempty"`
	AverageHeartrate     *float64 `json:"average_heartrate,omitempty"` // bpm
	MaxHeartrate         *float64 `json:"max_heartrate,omitempty"`     // bpm
	Calories             *float64 `json:"calories,omitempty"`
	WorkoutType          *int     `json:"workout_type,omitempty"` // 0-4
	SufferScore          *int     `json:"suffer_score,omitempty"`
	Description          *string  `json:"description,omitempty"`
}
