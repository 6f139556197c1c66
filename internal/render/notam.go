// Package render turns decoded bulletins into line-oriented plain text.
// Rendering never fails: absent fields are skipped or shown as "N/A".
package render

import (
	"strings"

	"github.com/couchcryptid/aero-bulletin-etl/internal/domain"
)

const (
	// DateTimeLayout is how NOTAM validity timestamps are displayed.
	DateTimeLayout = "02.01.2006 15:04 UTC"

	notAvailable = "N/A"
	rule         = "----------------------------------------------"
)

var severityBanner = map[domain.Severity]string{
	domain.SeverityCritical: "CRITICAL - requires immediate attention",
	domain.SeverityWarning:  "WARNING - requires attention",
	domain.SeverityInfo:     "INFORMATION",
}

// Notam renders a NOTAM. airport may be nil when no metadata is known.
func Notam(rec domain.NotamRecord, airport *domain.Airport) string {
	return strings.Join(NotamLines(rec, airport), "\n")
}

// NotamLines renders a NOTAM as header, location, classification, validity,
// schedule, limits, description and severity banner.
func NotamLines(rec domain.NotamRecord, airport *domain.Airport) []string {
	lines := []string{
		"NOTAM " + rec.ID + " (" + rec.Kind.Text() + ")",
		"",
		locationLine(rec.Location, airport),
	}

	if rec.Category != "" {
		lines = append(lines, "Type: "+rec.Category)
	}

	if rec.Permanent {
		lines = append(lines, "Valid: permanent")
	} else {
		lines = append(lines, "Valid: from "+formatNotamTime(rec.ValidFrom)+" to "+formatNotamTime(rec.ValidTo))
	}

	if rec.Schedule != "" {
		lines = append(lines, "Schedule: "+rec.Schedule)
	}

	if rec.LowerLimit != "" || rec.UpperLimit != "" {
		lines = append(lines, "Limits: "+orNA(rec.LowerLimit)+" - "+orNA(rec.UpperLimit))
	}

	lines = append(lines, "", rule, "DESCRIPTION:", rule, "")
	switch {
	case rec.DescriptionDecoded != "":
		lines = append(lines, rec.DescriptionDecoded)
	case rec.DescriptionRaw != "":
		lines = append(lines, rec.DescriptionRaw)
	}

	if banner, ok := severityBanner[rec.Severity]; ok {
		lines = append(lines, "", rule, banner)
	}
	return lines
}

func locationLine(location string, airport *domain.Airport) string {
	if location == "" {
		return "Location: unknown"
	}
	if airport != nil && airport.Name != "" {
		return "Aerodrome: " + location + " - " + airport.Name
	}
	return "Location: " + location
}

func formatNotamTime(t *domain.NotamTime) string {
	if t == nil {
		return notAvailable
	}
	if t.Estimated() {
		return "to be confirmed"
	}
	at, _ := t.Time()
	return at.UTC().Format(DateTimeLayout)
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
