package export

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stravalyze/stravalyze/internal/model"
)

func TestEncodeJSONRoundTrip(t *testing.T) {
	batch := testBatch()
	batch.Activities[0].AverageSpeed = ptr(2.78)
	batch.Activities[0].AverageHeartrate = ptr(150.0)
	batch.Activities[0].HasHeartrate = ptr(true)
	batch.Activities[0].Description = ptr("easy effort")

	text, err := EncodeJSON(batch)
	require.NoError(t, err)

	decoded, err := DecodeJSON(text)
	require.NoError(t, err)
	require.Equal(t, batch, decoded)
}

func TestEncodeJSONOmitsAbsentFields(t *testing.T) {
	text, err := EncodeJSON(testBatch())
	require.NoError(t, err)

	var doc struct {
		Activities []map[string]any `json:"activities"`
	}
	require.NoError(t, json.Unmarshal([]byte(text), &doc))
	require.Len(t, doc.Activities, 1)

	// absent metrics are omitted keys, not nulls or zeroes
	for _, key := range []string{"average_heartrate", "max_heartrate", "has_heartrate", "calories", "average_watts"} {
		require.NotContains(t, doc.Activities[0], key)
	}
	require.Equal(t, "Morning Run", doc.Activities[0]["name"])
}

func TestEncodeJSONStableTopLevelShape(t *testing.T) {
	text, err := EncodeJSON(testBatch())
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(text), &doc))
	for _, key := range []string{"athlete", "activities", "exportDate", "totalActivities"} {
		require.Contains(t, doc, key)
	}
}

func TestEncodeJSONEmptyBatch(t *testing.T) {
	batch := model.ExportBatch{
		Athlete:    model.Athlete{ID: 1, Firstname: "Solo"},
		ExportDate: "2024-01-02T00:00:00Z",
	}
	text, err := EncodeJSON(batch)
	require.NoError(t, err)

	decoded, err := DecodeJSON(text)
	require.NoError(t, err)
	require.Equal(t, batch, decoded)
}
