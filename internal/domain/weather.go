package domain

import (
	"regexp"
	"strings"
)

// weatherTokenRe matches a candidate weather group: an optional intensity or
// proximity marker followed by 2-6 letters, e.g. "-RA", "+TSRA", "VCSH", "BR".
var weatherTokenRe = regexp.MustCompile(`^([-+]|VC)?([A-Z]{2,6})$`)

// cloudGroupPrefixes start tokens that belong to the cloud parser.
var cloudGroupPrefixes = []string{"FEW", "SCT", "BKN", "OVC", "VV"}

// DecodeWeather decodes one weather group. A single leading marker is
// stripped, then the rest is read two letters at a time; pairs that are not
// in the phenomenon table are skipped one letter at a time. It reports false
// when no phenomenon was recognised.
func DecodeWeather(token string) (WeatherPhenomenon, bool) {
	code := token
	var intensity string
	for _, marker := range []string{"-", "+", "VC"} {
		if strings.HasPrefix(code, marker) {
			intensity = intensityMarkers[marker]
			code = code[len(marker):]
			break
		}
	}

	var parts []string
	for i := 0; i < len(code); {
		if i+2 <= len(code) {
			if desc, ok := weatherPhenomena[code[i:i+2]]; ok {
				parts = append(parts, desc)
				i += 2
				continue
			}
		}
		i++
	}
	if len(parts) == 0 {
		return WeatherPhenomenon{}, false
	}

	description := strings.Join(parts, " ")
	if intensity != "" {
		description = intensity + " " + description
	}
	return WeatherPhenomenon{
		Code:        token,
		Intensity:   intensity,
		Description: description,
	}, true
}

// parseWeather decodes every weather group in segment in source order.
// Cloud groups, CAVOK-style codes and the words in skip are ignored.
func parseWeather(segment string, skip map[string]bool) []WeatherPhenomenon {
	out := []WeatherPhenomenon{}
	for _, tok := range strings.Fields(segment) {
		m := weatherTokenRe.FindStringSubmatch(tok)
		if m == nil {
			continue
		}
		code := m[2]
		if nonWeatherCodes[code] || skip[tok] || isCloudGroup(code) {
			continue
		}
		if wx, ok := DecodeWeather(tok); ok {
			out = append(out, wx)
		}
	}
	return out
}

func isCloudGroup(code string) bool {
	for _, p := range cloudGroupPrefixes {
		if strings.HasPrefix(code, p) {
			return true
		}
	}
	return false
}
