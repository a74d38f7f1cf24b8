package export

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stravalyze/stravalyze/internal/model"
)

func ptr[T any](v T) *T { return &v }

// testBatch is the shared fixture: one athlete, one run without heart
// rate data.
func testBatch() model.ExportBatch {
	athlete := model.Athlete{
		ID:        42,
		Firstname: "Ana",
		Lastname:  "Ruiz",
		City:      "Austin",
		State:     "TX",
		Country:   "US",
		Sex:       "F",
		Premium:   true,
		CreatedAt: "2020-05-01T00:00:00Z",
	}
	activities := []model.Activity{
		{
			ID:         1,
			Name:       "Morning Run",
			Type:       "Run",
			Distance:   5000,
			MovingTime: 1800,
			StartDate:  "2024-01-01T08:00:00Z",
		},
	}
	return model.ExportBatch{
		Athlete:         athlete,
		Activities:      activities,
		ExportDate:      "2024-01-02T00:00:00Z",
		TotalActivities: 1,
	}
}

func TestRunFilenamesAndMIMETypes(t *testing.T) {
	tests := []struct {
		format   Format
		filename string
		mime     string
	}{
		{FormatJSON, "strava_workouts_2024-01-02.json", "application/json"},
		{FormatTCX, "strava_workouts_2024-01-02.tcx", "application/vnd.garmin.tcx+xml"},
		{FormatGPX, "strava_workouts_2024-01-02.gpx", "application/gpx+xml"},
	}

	for _, tt := range tests {
		doc, err := Run(testBatch(), tt.format)
		require.NoError(t, err)
		require.Equal(t, tt.filename, doc.Filename)
		require.Equal(t, tt.mime, doc.MIMEType)
		require.NotEmpty(t, doc.Text)
	}
}

func TestRunEmptySelection(t *testing.T) {
	batch := testBatch()
	batch.Activities = nil
	batch.TotalActivities = 0

	_, err := Run(batch, FormatJSON)
	require.ErrorIs(t, err, ErrEmptySelection)
}

func TestRunInvalidBatch(t *testing.T) {
	batch := testBatch()
	batch.Activities = append(batch.Activities, model.Activity{Name: "no id"})

	for _, f := range []Format{FormatJSON, FormatTCX, FormatGPX} {
		_, err := Run(batch, f)
		require.ErrorIs(t, err, ErrInvalidBatch, "format %s", f)
	}

	batch = testBatch()
	batch.Activities[0].StartDate = ""
	_, err := Run(batch, FormatTCX)
	require.ErrorIs(t, err, ErrInvalidBatch)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"json", FormatJSON},
		{"tcx", FormatTCX},
		{"gpx", FormatGPX},
		{"TCX", FormatTCX},
		{"", FormatJSON},
		{"csv", FormatJSON}, // unknown falls back to raw data
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, ParseFormat(tt.in), "input %q", tt.in)
	}
}

func TestFilenameDatePart(t *testing.T) {
	require.Equal(t, "strava_workouts_2024-06-30.gpx", Filename(FormatGPX, "2024-06-30T23:59:59Z"))
	// unparseable timestamp keeps its date prefix
	require.Equal(t, "strava_workouts_2024-06-30.json", Filename(FormatJSON, "2024-06-30Tbroken"))
}
