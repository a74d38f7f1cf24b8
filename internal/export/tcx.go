package export

import (
	"encoding/xml"
	"fmt"

	"github.com/stravalyze/stravalyze/internal/model"
)

// Known limitation: the activity <Id> is the start timestamp, preserving
// what the source data carries. Two activities starting at the same
// instant produce colliding ids; no synthetic id scheme papers over that.

const tcxNamespace = "http://www.garmin.com/xmlschemas/TrainingCenterDatabase/v2"

type tcxDatabase struct {
	XMLName    xml.Name      `xml:"TrainingCenterDatabase"`
	Namespace  string        `xml:"xmlns,attr"`
	Activities tcxActivities `xml:"Activities"`
	Author     tcxAuthor     `xml:"Author"`
}

// tcxActivities keeps the <Activities> wrapper present even for an empty
// batch.
type tcxActivities struct {
	Activity []tcxActivity `xml:"Activity"`
}

type tcxActivity struct {
	Sport string `xml:"Sport,attr"`
	ID    string `xml:"Id"`
	Lap   tcxLap `xml:"Lap"`
	Notes string `xml:"Notes"`
}

type tcxLap struct {
	StartTime        string       `xml:"StartTime,attr"`
	TotalTimeSeconds int64        `xml:"TotalTimeSeconds"`
	DistanceMeters   float64      `xml:"DistanceMeters"`
	Calories         float64      `xml:"Calories"` // 0 when absent, by format convention
	AverageHeartRate *tcxHeartBpm `xml:"AverageHeartRateBpm,omitempty"`
	MaximumHeartRate *tcxHeartBpm `xml:"MaximumHeartRateBpm,omitempty"`
	Intensity        string       `xml:"Intensity"`
	TriggerMethod    string       `xml:"TriggerMethod"`
}

type tcxHeartBpm struct {
	Value float64 `xml:"Value"`
}

type tcxAuthor struct {
	Name string `xml:"Name"`
}

// EncodeTCX renders the batch as a Training Center XML document, one
// <Activity> per selected activity. Heart-rate elements are emitted only
// when the metric is present; an activity without heart-rate data gets no
// AverageHeartRateBpm/MaximumHeartRateBpm element at all.
func EncodeTCX(batch model.ExportBatch) (string, error) {
	if err := validate(batch); err != nil {
		return "", err
	}

	doc := tcxDatabase{
		Namespace: tcxNamespace,
		Author:    tcxAuthor{Name: toolName},
	}

	for _, a := range batch.Activities {
		lap := tcxLap{
			StartTime:        a.StartDate,
			TotalTimeSeconds: a.MovingTime,
			DistanceMeters:   a.Distance,
			Intensity:        "Active",
			TriggerMethod:    "Manual",
		}
		if a.Calories != nil {
			lap.Calories = *a.Calories
		}
		if a.AverageHeartrate != nil {
			lap.AverageHeartRate = &tcxHeartBpm{Value: *a.AverageHeartrate}
		}
		if a.MaxHeartrate != nil {
			lap.MaximumHeartRate = &tcxHeartBpm{Value: *a.MaxHeartrate}
		}

		doc.Activities.Activity = append(doc.Activities.Activity, tcxActivity{
			Sport: a.Type,
			ID:    a.StartDate,
			Lap:   lap,
			Notes: a.Name,
		})
	}

	b, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode tcx: %w", err)
	}
	return xml.Header + string(b) + "\n", nil
}
