package render_test

import (
	"testing"
	"time"

	"github.com/couchcryptid/aero-bulletin-etl/internal/domain"
	"github.com/couchcryptid/aero-bulletin-etl/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotamLines(t *testing.T) {
	rec := domain.NotamRecord{
		ID:                 "A1234/24",
		Kind:               domain.NotamNew,
		Category:           "runway closed",
		Severity:           domain.SeverityCritical,
		Location:           "UAAA",
		ValidFrom:          domain.NotamTimeAt(time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)),
		ValidTo:            domain.NotamTimeEstimated(),
		Schedule:           "DAILY 0600-1800",
		LowerLimit:         "SFC",
		DescriptionRaw:     "RWY CLSD",
		DescriptionDecoded: "runway closed",
	}
	airport := &domain.Airport{ICAO: "UAAA", Name: "Almaty International"}

	assert.Equal(t, []string{
		"NOTAM A1234/24 (new)",
		"",
		"Aerodrome: UAAA - Almaty International",
		"Type: runway closed",
		"Valid: from 01.03.2024 12:30 UTC to to be confirmed",
		"Schedule: DAILY 0600-1800",
		"Limits: SFC - N/A",
		"",
		"----------------------------------------------",
		"DESCRIPTION:",
		"----------------------------------------------",
		"",
		"runway closed",
		"",
		"----------------------------------------------",
		"CRITICAL - requires immediate attention",
	}, render.NotamLines(rec, airport))
}

func TestNotamLines_Minimal(t *testing.T) {
	lines := render.NotamLines(domain.NotamRecord{ID: "C0001/24", Kind: domain.NotamCancel}, nil)

	assert.Equal(t, "NOTAM C0001/24 (cancellation)", lines[0])
	assert.Contains(t, lines, "Location: unknown")
	assert.Contains(t, lines, "Valid: from N/A to N/A")
	assert.NotContains(t, lines, "INFORMATION")
}

func TestNotamLines_InfoBanner(t *testing.T) {
	rec := domain.NotamRecord{ID: "A0002/24", Kind: domain.NotamNew, Location: "UTTT", Severity: domain.SeverityInfo}
	lines := render.NotamLines(rec, nil)

	assert.Equal(t, "INFORMATION", lines[len(lines)-1])
}

func TestNotamLines_Permanent(t *testing.T) {
	rec := domain.NotamRecord{ID: "A0001/24", Kind: domain.NotamReplace, Location: "UACC", Permanent: true, DescriptionRaw: "NEW OBST"}
	lines := render.NotamLines(rec, nil)

	assert.Equal(t, "NOTAM A0001/24 (replacement)", lines[0])
	assert.Contains(t, lines, "Location: UACC")
	assert.Contains(t, lines, "Valid: permanent")
	assert.Contains(t, lines, "NEW OBST")
}

func TestTAFLines(t *testing.T) {
	rec, err := domain.ParseTAF("TAF UAAA 101100Z 1012/1112 32015G25KT 9999 FEW040 BKN100 TEMPO 1014/1018 4000 TSRA BKN020CB")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Aerodrome: UAAA",
		"Issued: day 10, 11:00 UTC",
		"Valid: from day 10 12:00 to day 11 12:00 UTC",
		"",
		"----------------------------------------------",
		"BASELINE FORECAST",
		"----------------------------------------------",
		"",
		"wind: NW (320°) 7 m/s, gusts 12 m/s",
		"visibility 10 km or more",
		"clouds: few (1-2 oktas) at 1219 m (4000 ft)",
		"clouds: broken (5-7 oktas) at 3048 m (10000 ft)",
		"",
		"----------------------------------------------",
		"EXPECTED CHANGES",
		"----------------------------------------------",
		"",
		"> Temporarily from day 10 14:00 to day 10 18:00 UTC:",
		"  visibility 4.0 km (moderate)",
		"  weather: thunderstorm rain",
		"  clouds: broken (5-7 oktas) at 609 m (2000 ft), cumulonimbus",
	}, render.TAFLines(rec))
}

func TestTAFLines_NoSignificantCloud(t *testing.T) {
	rec, err := domain.ParseTAF("TAF COR UACC 101100Z 1012/1112 VRB02KT CAVOK TXM05/1012Z")
	require.NoError(t, err)
	lines := render.TAFLines(rec)

	assert.Equal(t, "Aerodrome: UACC (corrected)", lines[0])
	assert.Contains(t, lines, "wind: variable 1 m/s")
	assert.Contains(t, lines, "no significant cloud")
	assert.Contains(t, lines, "maximum temperature -5°C on day 10 at 12:00 UTC")
	assert.NotContains(t, lines, "EXPECTED CHANGES")
}

func TestTAF_EmptyRecord(t *testing.T) {
	assert.NotPanics(t, func() {
		out := render.TAF(domain.TafRecord{})
		assert.Contains(t, out, "BASELINE FORECAST")
	})
}

func TestWindText(t *testing.T) {
	assert.Equal(t, "wind: calm", render.WindText(domain.Wind{Calm: true}))
	gust := 15
	assert.Equal(t, "wind: variable 5 m/s, gusts 15 m/s", render.WindText(domain.Wind{SpeedMps: 5, Variable: true, GustsMps: &gust}))
}

func TestVisibilityText(t *testing.T) {
	assert.Equal(t, "visibility 800 m (poor)", render.VisibilityText(domain.Visibility{Meters: 800, Quality: domain.VisibilityPoor}))
	assert.Equal(t, "visibility 1.5 km (limited)", render.VisibilityText(domain.Visibility{Meters: 1500, Quality: domain.VisibilityLimited}))
}
