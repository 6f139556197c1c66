package domain

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	cavokNote        = "visibility 10 km or more, no cloud below 1500 m, no thunderstorms (CAVOK)"
	unlimitedVisNote = "visibility 10 km or more"
	unlimitedVisM    = 10000
)

var (
	// calmWindRe matches a calm wind anywhere in the segment.
	calmWindRe = regexp.MustCompile(`00000(?:KT|MPS)`)

	// variableWindRe matches "VRB05KT" or "VRB12G25MPS".
	variableWindRe = regexp.MustCompile(`VRB(\d{2,3})(G(\d{2,3}))?(KT|MPS)`)

	// windRe matches a fixed-direction wind, e.g. "32015G25KT" -> 320, 15, gusts 25.
	windRe = regexp.MustCompile(`(\d{3})(\d{2,3})(G(\d{2,3}))?(KT|MPS)`)

	visibilityRe = regexp.MustCompile(`^\d{4}$`)

	// cloudRe matches "FEW015", "BKN040CB", "VV002".
	cloudRe = regexp.MustCompile(`(FEW|SCT|BKN|OVC|VV)(\d{3})(CB|TCU)?`)

	// temperatureRe matches "TX15/1012Z" and "TNM03/1104Z".
	temperatureRe = regexp.MustCompile(`T([XN])(M)?(\d{2})/(\d{2})(\d{2})Z`)
)

// parseForecastGroup runs every field parser over the same segment. No
// parser consumes text, so each sees the whole segment.
func parseForecastGroup(segment string, skip map[string]bool) ForecastGroup {
	return ForecastGroup{
		Wind:        parseWind(segment),
		Visibility:  parseVisibility(segment),
		Weather:     parseWeather(segment, skip),
		Clouds:      parseClouds(segment),
		Temperature: parseTemperature(segment),
	}
}

func parseWind(segment string) *Wind {
	if calmWindRe.MatchString(segment) {
		return &Wind{Calm: true}
	}

	if m := variableWindRe.FindStringSubmatch(segment); m != nil {
		speed, _ := strconv.Atoi(m[1])
		unit := m[4]
		w := &Wind{
			SpeedMps: toMps(speed, unit),
			Variable: true,
		}
		if m[3] != "" {
			gusts, _ := strconv.Atoi(m[3])
			g := toMps(gusts, unit)
			w.GustsMps = &g
		}
		return w
	}

	if m := windRe.FindStringSubmatch(segment); m != nil {
		direction, _ := strconv.Atoi(m[1])
		speed, _ := strconv.Atoi(m[2])
		unit := m[5]
		w := &Wind{
			SpeedMps:         toMps(speed, unit),
			DirectionDegrees: &direction,
			Compass:          CompassPoint(direction),
		}
		if m[4] != "" {
			gusts, _ := strconv.Atoi(m[4])
			g := toMps(gusts, unit)
			w.GustsMps = &g
		}
		return w
	}
	return nil
}

// toMps converts a speed to metres per second. Knots are multiplied by 0.514
// and truncated.
func toMps(speed int, unit string) int {
	if unit == "KT" {
		return speed * 514 / 1000
	}
	return speed
}

// CompassPoint names the 45-degree sector a bearing falls in.
func CompassPoint(degrees int) string {
	idx := int((float64(degrees)+22.5)/45) % 8
	if idx < 0 {
		idx += 8
	}
	return compassPoints[idx]
}

func parseVisibility(segment string) *Visibility {
	tokens := strings.Fields(segment)
	for _, tok := range tokens {
		if tok == "CAVOK" {
			return &Visibility{Meters: unlimitedVisM, Quality: VisibilityGood, Note: cavokNote}
		}
	}
	for _, tok := range tokens {
		if tok == "9999" {
			return &Visibility{Meters: unlimitedVisM, Quality: VisibilityGood, Note: unlimitedVisNote}
		}
	}
	for _, tok := range tokens {
		if visibilityRe.MatchString(tok) {
			meters, _ := strconv.Atoi(tok)
			return &Visibility{Meters: meters, Quality: visibilityQuality(meters)}
		}
	}
	return nil
}

func visibilityQuality(meters int) VisibilityQuality {
	switch {
	case meters >= 5000:
		return VisibilityGood
	case meters >= 3000:
		return VisibilityModerate
	case meters >= 1000:
		return VisibilityLimited
	default:
		return VisibilityPoor
	}
}

func parseClouds(segment string) []CloudLayer {
	out := []CloudLayer{}
	for _, m := range cloudRe.FindAllStringSubmatch(segment, -1) {
		hundreds, _ := strconv.Atoi(m[2])
		feet := hundreds * 100
		layer := CloudLayer{
			Cover:        m[1],
			CoverText:    cloudCover[m[1]],
			HeightFeet:   feet,
			HeightMeters: feet * 3048 / 10000,
			Type:         m[3],
		}
		if layer.Type != "" {
			layer.TypeText = cloudTypes[layer.Type]
		}
		out = append(out, layer)
	}
	return out
}

func parseTemperature(segment string) *TemperatureExtreme {
	m := temperatureRe.FindStringSubmatch(segment)
	if m == nil {
		return nil
	}
	celsius, _ := strconv.Atoi(m[3])
	if m[2] == "M" {
		celsius = -celsius
	}
	day, _ := strconv.Atoi(m[4])
	hour, _ := strconv.Atoi(m[5])
	kind := TemperatureMax
	if m[1] == "N" {
		kind = TemperatureMin
	}
	return &TemperatureExtreme{Kind: kind, Celsius: celsius, Day: day, Hour: hour}
}
