package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/stravalyze/stravalyze/internal/model"
)

// Document is an encoded export ready for delivery: the text itself plus
// the filename and content type that drive the browser's save dialog.
type Document struct {
	Text     string
	Filename string
	MIMEType string
}

// Run encodes the batch in the requested format. It performs no business
// logic beyond dispatch and filename construction. A selection of zero
// activities is rejected with ErrEmptySelection; the encoders themselves
// accept an empty batch.
func Run(batch model.ExportBatch, format Format) (Document, error) {
	if len(batch.Activities) == 0 {
		return Document{}, ErrEmptySelection
	}

	var (
		text string
		err  error
	)
	switch format {
	case FormatTCX:
		text, err = EncodeTCX(batch)
	case FormatGPX:
		text, err = EncodeGPX(batch)
	default:
		text, err = EncodeJSON(batch)
	}
	if err != nil {
		return Document{}, err
	}

	return Document{
		Text:     text,
		Filename: Filename(format, batch.ExportDate),
		MIMEType: format.MIMEType(),
	}, nil
}

// Filename builds the suggested download name,
// strava_workouts_<ISO-date>.<ext>. The date part comes from the export
// timestamp; a timestamp that fails to parse falls back to its date
// prefix as given.
func Filename(format Format, exportDate string) string {
	date := exportDate
	if t, err := time.Parse(time.RFC3339, exportDate); err == nil {
		date = t.UTC().Format("2006-01-02")
	} else if i := strings.IndexByte(date, 'T'); i > 0 {
		date = date[:i]
	}
	return fmt.Sprintf("strava_workouts_%s.%s", date, format.Ext())
}
