package render

import (
	"fmt"
	"strings"

	"github.com/couchcryptid/aero-bulletin-etl/internal/domain"
)

// TAF renders a TAF as header, baseline forecast and changes.
func TAF(rec domain.TafRecord) string {
	return strings.Join(TAFLines(rec), "\n")
}

// TAFLines renders a TAF line by line. Change groups keep source order.
func TAFLines(rec domain.TafRecord) []string {
	var lines []string

	if rec.Station != "" {
		header := "Aerodrome: " + rec.Station
		if rec.Amendment != "" {
			header += " (" + amendmentText(rec.Amendment) + ")"
		}
		lines = append(lines, header)
	}
	if rec.IssueTime != nil {
		lines = append(lines, "Issued: "+rec.IssueTime.String())
	}
	if rec.ValidPeriod != nil {
		lines = append(lines, "Valid: "+rec.ValidPeriod.String())
	}

	lines = append(lines, "", rule, "BASELINE FORECAST", rule, "")
	lines = append(lines, groupLines(rec.Baseline, "", true)...)

	if len(rec.Changes) > 0 {
		lines = append(lines, "", rule, "EXPECTED CHANGES", rule)
		for _, c := range rec.Changes {
			heading := c.Indicator.Text()
			if c.Period != nil {
				heading += " " + c.Period.String()
			}
			lines = append(lines, "", "> "+heading+":")
			lines = append(lines, groupLines(c.ForecastGroup, "  ", false)...)
		}
	}
	return lines
}

func amendmentText(code string) string {
	switch code {
	case "AMD":
		return "amended"
	case "COR":
		return "corrected"
	default:
		return code
	}
}

// groupLines renders wind, visibility, weather, clouds and temperature.
// The baseline also notes the absence of significant cloud when visibility
// is 10 km or more and no layer is forecast.
func groupLines(g domain.ForecastGroup, indent string, baseline bool) []string {
	var lines []string
	add := func(s string) { lines = append(lines, indent+s) }

	if g.Wind != nil {
		add(WindText(*g.Wind))
	}
	if g.Visibility != nil {
		add(VisibilityText(*g.Visibility))
	}
	for _, wx := range g.Weather {
		add("weather: " + wx.Description)
	}
	for _, c := range g.Clouds {
		add(CloudText(c))
	}
	if baseline && len(g.Clouds) == 0 && g.Visibility != nil && g.Visibility.Meters >= 10000 {
		add("no significant cloud")
	}
	if g.Temperature != nil {
		add(TemperatureText(*g.Temperature))
	}
	return lines
}

// WindText describes a wind group in metres per second.
func WindText(w domain.Wind) string {
	var s string
	switch {
	case w.Calm:
		return "wind: calm"
	case w.Variable:
		s = fmt.Sprintf("wind: variable %d m/s", w.SpeedMps)
	case w.DirectionDegrees != nil:
		s = fmt.Sprintf("wind: %s (%d°) %d m/s", w.Compass, *w.DirectionDegrees, w.SpeedMps)
	default:
		s = fmt.Sprintf("wind: %d m/s", w.SpeedMps)
	}
	if w.GustsMps != nil {
		s += fmt.Sprintf(", gusts %d m/s", *w.GustsMps)
	}
	return s
}

// VisibilityText prefers the group's note and otherwise shows the distance
// with its quality tier.
func VisibilityText(v domain.Visibility) string {
	if v.Note != "" {
		return v.Note
	}
	if v.Meters >= 1000 {
		return fmt.Sprintf("visibility %.1f km (%s)", float64(v.Meters)/1000, v.Quality)
	}
	return fmt.Sprintf("visibility %d m (%s)", v.Meters, v.Quality)
}

// CloudText describes one cloud layer.
func CloudText(c domain.CloudLayer) string {
	cover := c.CoverText
	if cover == "" {
		cover = c.Cover
	}
	s := fmt.Sprintf("clouds: %s at %d m (%d ft)", cover, c.HeightMeters, c.HeightFeet)
	if c.Type != "" {
		typ := c.TypeText
		if typ == "" {
			typ = c.Type
		}
		s += ", " + typ
	}
	return s
}

// TemperatureText describes a forecast temperature extreme.
func TemperatureText(t domain.TemperatureExtreme) string {
	kind := "maximum"
	if t.Kind == domain.TemperatureMin {
		kind = "minimum"
	}
	return fmt.Sprintf("%s temperature %+d°C on day %02d at %02d:00 UTC", kind, t.Celsius, t.Day, t.Hour)
}
