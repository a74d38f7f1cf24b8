// Package model holds the canonical Strava record shapes shared by the
// API client, the export encoders and the prompt engine.
package model

// Athlete is the authenticated user's profile as returned by
// GET /athlete. It is fetched once per session and never mutated.
type Athlete struct {
	ID            int64    `json:"id"`
	Username      string   `json:"username,omitempty"`
	Firstname     string   `json:"firstname"`
	Lastname      string   `json:"lastname"`
	City          string   `json:"city,omitempty"`
	State         string   `json:"state,omitempty"`
	Country       string   `json:"country,omitempty"`
	Sex           string   `json:"sex,omitempty"` // "M", "F" or empty
	Premium       bool     `json:"premium"`
	CreatedAt     string   `json:"created_at"` // ISO-8601
	UpdatedAt     string   `json:"updated_at,omitempty"`
	BadgeTypeID   int      `json:"badge_type_id,omitempty"`
	ProfileMedium string   `json:"profile_medium,omitempty"`
	Profile       string   `json:"profile,omitempty"`
	Weight        *float64 `json:"weight,omitempty"` // kg
	FTP           *int     `json:"ftp,omitempty"`    // functional threshold power, watts
}

// Name returns the athlete's display name.
func (a Athlete) Name() string {
	if a.Firstname == "" {
		return a.Lastname
	}
	if a.Lastname == "" {
		return a.Firstname
	}
	return a.Firstname + " " + a.Lastname
}

// Location joins the present parts of city/state/country with commas.
func (a Athlete) Location() string {
	loc := ""
	for _, part := range []string{a.City, a.State, a.Country} {
		if part == "" {
			continue
		}
		if loc != "" {
			loc += ", "
		}
		loc += part
	}
	return loc
}
