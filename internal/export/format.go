// Package export turns an ExportBatch into one of the three interchange
// formats and names the resulting file. Every encoder is a pure function:
// it must produce some usable output for any well-formed batch, including
// an empty one, degrading per format rules instead of failing.
package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/stravalyze/stravalyze/internal/model"
)

// Format selects one of the three output encodings.
type Format string

const (
	FormatJSON Format = "json" // raw structured data
	FormatTCX  Format = "tcx"  // Training Center XML
	FormatGPX  Format = "gpx"  // GPS track XML
)

// toolName is the generating tool named in the TCX author block and the
// GPX creator attribute.
const toolName = "Strava Workout Analyzer"

var (
	// ErrInvalidBatch means the caller handed an encoder a malformed
	// record. This is a contract violation, not a degradable condition.
	ErrInvalidBatch = errors.New("invalid export batch")

	// ErrEmptySelection means export was invoked with zero selected
	// activities.
	ErrEmptySelection = errors.New("no activities selected")
)

// ParseFormat maps a format name to a Format. Unrecognized input falls
// back to JSON, mirroring the selector's default.
func ParseFormat(s string) Format {
	switch Format(strings.ToLower(s)) {
	case FormatTCX:
		return FormatTCX
	case FormatGPX:
		return FormatGPX
	default:
		return FormatJSON
	}
}

// MIMEType returns the content type used when delivering the document.
func (f Format) MIMEType() string {
	switch f {
	case FormatTCX:
		return "application/vnd.garmin.tcx+xml"
	case FormatGPX:
		return "application/gpx+xml"
	default:
		return "application/json"
	}
}

// Ext returns the filename extension for the format.
func (f Format) Ext() string {
	switch f {
	case FormatTCX:
		return "tcx"
	case FormatGPX:
		return "gpx"
	default:
		return "json"
	}
}

// validate checks the caller-contract invariants every encoder relies on:
// a nonzero activity id and a start timestamp. Anything else degrades per
// the per-format defaulting rules instead.
func validate(batch model.ExportBatch) error {
	for i, a := range batch.Activities {
		if a.ID == 0 {
			return fmt.Errorf("%w: activity %d has no id", ErrInvalidBatch, i)
		}
		if a.StartDate == "" {
			return fmt.Errorf("%w: activity %d (%d) has no start date", ErrInvalidBatch, i, a.ID)
		}
	}
	return nil
}
