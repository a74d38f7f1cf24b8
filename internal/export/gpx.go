package export

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/stravalyze/stravalyze/internal/model"
)

// EncodeGPX renders the batch as a GPX document with one <trk> per
// activity. The source activity model carries no per-point coordinates, so
// every track gets a single empty <trkseg> with a comment saying so; the
// degradation is deliberate and never a reason to drop an activity.
func EncodeGPX(batch model.ExportBatch) (string, error) {
	if err := validate(batch); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(xml.Header)
	fmt.Fprintf(&sb, "<gpx version=\"1.1\" creator=\"%s\">\n", toolName)
	sb.WriteString("  <metadata>\n")
	sb.WriteString("    <name>Workout Export</name>\n")
	fmt.Fprintf(&sb, "    <time>%s</time>\n", xmlEscape(batch.ExportDate))
	sb.WriteString("  </metadata>\n")

	for _, a := range batch.Activities {
		sb.WriteString("  <trk>\n")
		fmt.Fprintf(&sb, "    <name>%s</name>\n", xmlEscape(a.Name))
		fmt.Fprintf(&sb, "    <type>%s</type>\n", xmlEscape(a.Type))
		sb.WriteString("    <trkseg>\n")
		sb.WriteString("      <!-- Track points would be here if GPS data was available -->\n")
		sb.WriteString("    </trkseg>\n")
		sb.WriteString("  </trk>\n")
	}

	sb.WriteString("</gpx>\n")
	return sb.String(), nil
}

// xmlEscape escapes text content; activity names routinely carry '&', '<'
// and quotes.
func xmlEscape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
