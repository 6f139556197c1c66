package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	// stationRe matches the header keyword, optional amendment marker and
	// aerodrome, e.g. "TAF AMD UAAA" -> amendment=AMD, station=UAAA.
	stationRe = regexp.MustCompile(`TAF\s+(?:(AMD|COR)\s+)?([A-Z]{4})\b`)

	// bareStationRe is the fallback when the TAF keyword is missing.
	bareStationRe = regexp.MustCompile(`^([A-Z]{4})\b`)

	issueTimeRe   = regexp.MustCompile(`\b([0-3]\d)([0-2]\d)([0-5]\d)Z\b`)
	validPeriodRe = regexp.MustCompile(`\b([0-3]\d)([0-2]\d)/([0-3]\d)([0-2]\d)\b`)

	// baselineEndRe finds where the first change group begins. FM needs its
	// timestamp so that aerodromes such as FMEE are not read as indicators.
	baselineEndRe = regexp.MustCompile(`\s+(?:FM\d{6}|TEMPO|BECMG|PROB\d{2})`)

	// changeRe splits the message into change groups. PROBnn TEMPO is listed
	// before PROBnn so the combined form wins.
	changeRe = regexp.MustCompile(`\s+(FM\d{6}|TEMPO|BECMG|PROB\d{2}\s+TEMPO|PROB\d{2})`)

	// changePeriodRe is the window that opens a TEMPO/BECMG/PROB body.
	changePeriodRe = regexp.MustCompile(`^([0-3]\d)([0-2]\d)/([0-3]\d)([0-2]\d)\b`)
)

// ParseTAF decodes a TAF. Only empty and non-UTF-8 input fail; every field
// that cannot be found is left nil.
func ParseTAF(text string) (TafRecord, error) {
	if strings.TrimSpace(text) == "" {
		return TafRecord{}, ErrEmptyInput
	}
	if !utf8.ValidString(text) {
		return TafRecord{}, fmt.Errorf("parse taf: %w", ErrInvalidInput)
	}

	norm := normalizeTAF(text)
	rec := TafRecord{Raw: text}

	baseline := norm
	if loc := baselineEndRe.FindStringIndex(norm); loc != nil {
		baseline = norm[:loc[0]]
	}

	parseTAFHeader(baseline, &rec)

	skip := map[string]bool{"TAF": true, "AMD": true, "COR": true}
	if rec.Station != "" {
		skip[rec.Station] = true
	}

	rec.Baseline = parseForecastGroup(baseline, skip)
	rec.Changes = parseChangeGroups(norm, skip)
	return rec, nil
}

// normalizeTAF collapses whitespace and drops trailing "=" terminators.
func normalizeTAF(text string) string {
	s := strings.Join(strings.Fields(text), " ")
	return strings.TrimSpace(strings.TrimRight(s, "= "))
}

func parseTAFHeader(header string, rec *TafRecord) {
	if m := stationRe.FindStringSubmatch(header); m != nil {
		rec.Amendment = m[1]
		rec.Station = m[2]
	} else if m := bareStationRe.FindStringSubmatch(header); m != nil && m[1] != "TAF" {
		rec.Station = m[1]
	}

	if m := issueTimeRe.FindStringSubmatch(header); m != nil {
		rec.IssueTime = &DayTime{Day: mustAtoi(m[1]), Hour: mustAtoi(m[2]), Minute: mustAtoi(m[3])}
	}
	if m := validPeriodRe.FindStringSubmatch(header); m != nil {
		rec.ValidPeriod = periodFromMatch(m)
	}
}

func parseChangeGroups(norm string, skip map[string]bool) []ChangeGroup {
	matches := changeRe.FindAllStringSubmatchIndex(norm, -1)
	out := make([]ChangeGroup, 0, len(matches))
	for i, m := range matches {
		indicator := norm[m[2]:m[3]]
		end := len(norm)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		body := strings.TrimSpace(norm[m[1]:end])

		cg := ChangeGroup{
			Indicator:     parseChangeIndicator(indicator),
			ForecastGroup: parseForecastGroup(body, skip),
		}
		if pm := changePeriodRe.FindStringSubmatch(body); pm != nil {
			cg.Period = periodFromMatch(pm)
		}
		out = append(out, cg)
	}
	return out
}

// parseChangeIndicator decodes "FM101800", "TEMPO", "BECMG", "PROB30" and
// "PROB30 TEMPO".
func parseChangeIndicator(s string) ChangeIndicator {
	switch {
	case strings.HasPrefix(s, "FM"):
		d := s[2:]
		return ChangeIndicator{
			Kind: ChangeFrom,
			From: &DayTime{Day: mustAtoi(d[0:2]), Hour: mustAtoi(d[2:4]), Minute: mustAtoi(d[4:6])},
		}
	case strings.HasPrefix(s, "PROB"):
		pct := mustAtoi(s[4:6])
		if strings.HasSuffix(s, "TEMPO") {
			return ChangeIndicator{Kind: ChangeProbTempo, Probability: pct}
		}
		return ChangeIndicator{Kind: ChangeProb, Probability: pct}
	case s == "BECMG":
		return ChangeIndicator{Kind: ChangeBecoming}
	default:
		return ChangeIndicator{Kind: ChangeTempo}
	}
}

func periodFromMatch(m []string) *ValidPeriod {
	return &ValidPeriod{
		FromDay:  mustAtoi(m[1]),
		FromHour: mustAtoi(m[2]),
		ToDay:    mustAtoi(m[3]),
		ToHour:   mustAtoi(m[4]),
	}
}

// mustAtoi is for regexp captures already constrained to digits.
func mustAtoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
