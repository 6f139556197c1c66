package domain

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// notamIDRe matches the series identifier and kind letter,
	// e.g. "A1234/24 NOTAMN" -> id=A1234/24, kind=N.
	notamIDRe = regexp.MustCompile(`([A-Z]\d{4}/\d{2})\s+NOTAM([NRC])`)

	// notamBlockStartRe marks where each NOTAM begins in a page of concatenated bulletins.
	notamBlockStartRe = regexp.MustCompile(`[A-Z]\d{4}/\d{2}\s+NOTAM[NRC]`)

	// notamMarkerRes are the cheap checks used by LooksLikeNotam.
	notamMarkerRes = []*regexp.Regexp{
		regexp.MustCompile(`[A-Z]\d{4}/\d{2}\s+NOTAM`),
		regexp.MustCompile(`Q\)\s*[A-Z]{4}/Q[A-Z]{4}`),
		regexp.MustCompile(`A\)\s*[A-Z]{4}\b`),
	}

	// fieldAnchorRe finds lettered item anchors ("Q)", "A)" ... "G)") that start
	// the text or follow whitespace or an opening parenthesis.
	fieldAnchorRe = regexp.MustCompile(`(?:^|[\s(])([QA-G])\)`)

	qFIRRe      = regexp.MustCompile(`^[A-Z]{4}$`)
	qCodeRe     = regexp.MustCompile(`^Q[A-Z]{4}$`)
	qTrafficRe  = regexp.MustCompile(`^[IV]{1,2}$`)
	qPurposeRe  = regexp.MustCompile(`^[A-Z]+$`)
	qScopeRe    = regexp.MustCompile(`^[AEW]+$`)
	qLevelRe    = regexp.MustCompile(`^\d{3}$`)
	qPositionRe = regexp.MustCompile(`^(\d{4}[NS]\d{5}[EW])(\d{3})?$`)

	locationRe  = regexp.MustCompile(`^\s*([A-Z]{4})\b`)
	startTimeRe = regexp.MustCompile(`^\s*(\d{10,12})`)
	endTimeRe   = regexp.MustCompile(`^\s*(\d{10,12}|PERM|EST)`)
)

// fieldSpan locates one lettered item: the anchor start and the value start.
type fieldSpan struct {
	anchor int
	value  int
}

// LooksLikeNotam reports whether text carries any NOTAM marker: a series
// identifier, a Q-line, or an A) location.
func LooksLikeNotam(text string) bool {
	for _, re := range notamMarkerRes {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// SplitNotamBlocks cuts a page of concatenated NOTAMs at each series
// identifier. Text before the first identifier is dropped.
func SplitNotamBlocks(page string) []string {
	locs := notamBlockStartRe.FindAllStringIndex(page, -1)
	blocks := make([]string, 0, len(locs))
	for i, loc := range locs {
		end := len(page)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		block := strings.TrimSpace(page[loc[0]:end])
		block = strings.TrimSpace(strings.TrimSuffix(block, "("))
		if block != "" {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

// DecodeNotam extracts a NOTAM and refines it: the Q-code is classified and
// the E) description is expanded. Empty and non-UTF-8 input are rejected;
// text without a series identifier yields ErrNotNotam.
func DecodeNotam(text string) (NotamRecord, error) {
	if strings.TrimSpace(text) == "" {
		return NotamRecord{}, ErrEmptyInput
	}
	if !utf8.ValidString(text) {
		return NotamRecord{}, fmt.Errorf("decode notam: %w", ErrInvalidInput)
	}

	rec, ok := ExtractNotam(text)
	if !ok {
		return NotamRecord{}, ErrNotNotam
	}
	if rec.QCode != "" {
		rec.Category, rec.Severity = ClassifyQCode(rec.QCode)
	}
	if rec.DescriptionRaw != "" {
		rec.DescriptionDecoded = TranslateAbbreviations(rec.DescriptionRaw)
	}
	return rec, nil
}

// ExtractNotam pulls the raw fields out of one NOTAM block. It returns false
// when the text has no series identifier. Every other field is optional; a
// field whose anchor is present but whose value fails validation is left
// unset and noted in Anomalies.
func ExtractNotam(text string) (NotamRecord, bool) {
	m := notamIDRe.FindStringSubmatch(text)
	if m == nil {
		return NotamRecord{}, false
	}

	rec := NotamRecord{
		ID:   m[1],
		Kind: notamKindFromLetter(m[2]),
		Raw:  text,
	}

	spans := findFieldSpans(text)

	if v, ok := lineValue(text, spans, 'Q'); ok {
		rec.QLine = parseQLine(v, &rec.Anomalies)
		if rec.QLine != nil {
			rec.QCode = rec.QLine.Code
		}
	}

	if s, ok := spans['A']; ok {
		if lm := locationRe.FindStringSubmatch(text[s.value:]); lm != nil {
			rec.Location = lm[1]
		} else {
			rec.Anomalies = append(rec.Anomalies, "item A: no ICAO location")
		}
	}
	if rec.Location == "" && rec.QLine != nil {
		rec.Location = rec.QLine.FIR
	}

	now := clock.Now()

	if s, ok := spans['B']; ok {
		if bm := startTimeRe.FindStringSubmatch(text[s.value:]); bm != nil {
			if t, ok := parseNotamDateTime(bm[1], now); ok {
				rec.ValidFrom = NotamTimeAt(t)
			} else {
				rec.Anomalies = append(rec.Anomalies, fmt.Sprintf("item B: invalid datetime %q", bm[1]))
			}
		} else {
			rec.Anomalies = append(rec.Anomalies, "item B: no datetime")
		}
	}

	if s, ok := spans['C']; ok {
		if cm := endTimeRe.FindStringSubmatch(text[s.value:]); cm != nil {
			switch cm[1] {
			case "PERM":
				rec.Permanent = true
			case estimatedSentinel:
				rec.ValidTo = NotamTimeEstimated()
			default:
				if t, ok := parseNotamDateTime(cm[1], now); ok {
					rec.ValidTo = NotamTimeAt(t)
				} else {
					rec.Anomalies = append(rec.Anomalies, fmt.Sprintf("item C: invalid datetime %q", cm[1]))
				}
			}
		} else {
			rec.Anomalies = append(rec.Anomalies, "item C: no datetime")
		}
	}

	if v, ok := lineValue(text, spans, 'D'); ok {
		rec.Schedule = v
	}
	if v, ok := descriptionValue(text, spans); ok {
		rec.DescriptionRaw = v
	}
	if v, ok := lineValue(text, spans, 'F'); ok {
		rec.LowerLimit = v
	}
	if v, ok := lineValue(text, spans, 'G'); ok {
		rec.UpperLimit = v
	}

	return rec, true
}

func notamKindFromLetter(letter string) NotamKind {
	switch letter {
	case "R":
		return NotamReplace
	case "C":
		return NotamCancel
	default:
		return NotamNew
	}
}

// findFieldSpans records the first occurrence of each lettered anchor.
func findFieldSpans(text string) map[byte]fieldSpan {
	spans := make(map[byte]fieldSpan)
	for _, loc := range fieldAnchorRe.FindAllStringSubmatchIndex(text, -1) {
		letter := text[loc[2]]
		if _, seen := spans[letter]; seen {
			continue
		}
		spans[letter] = fieldSpan{anchor: loc[2], value: loc[1]}
	}
	return spans
}

// nextAnchor returns the position of the first anchor after pos whose letter
// is accepted by want, or len(text).
func nextAnchor(text string, spans map[byte]fieldSpan, pos int, want func(byte) bool) int {
	end := len(text)
	for letter, s := range spans {
		if s.anchor >= pos && s.anchor < end && want(letter) {
			end = s.anchor
		}
	}
	return end
}

// lineValue returns an item's value up to the end of its line or the next
// lettered anchor, whichever comes first. Blank values report false.
func lineValue(text string, spans map[byte]fieldSpan, letter byte) (string, bool) {
	s, ok := spans[letter]
	if !ok {
		return "", false
	}
	end := nextAnchor(text, spans, s.value, func(byte) bool { return true })
	if nl := strings.IndexByte(text[s.value:end], '\n'); nl >= 0 {
		end = s.value + nl
	}
	v := trimClosingParen(text, end, strings.TrimSpace(text[s.value:end]))
	return v, v != ""
}

// descriptionValue returns item E, which may span lines and runs until an F)
// or G) anchor or the end of the text.
func descriptionValue(text string, spans map[byte]fieldSpan) (string, bool) {
	s, ok := spans['E']
	if !ok {
		return "", false
	}
	end := nextAnchor(text, spans, s.value, func(l byte) bool { return l == 'F' || l == 'G' })
	v := trimClosingParen(text, end, strings.TrimSpace(text[s.value:end]))
	return v, v != ""
}

// trimClosingParen drops the ")" that closes a parenthesised NOTAM from the
// value that ends the text. Balanced parentheses inside the value are kept.
func trimClosingParen(text string, end int, v string) string {
	if strings.TrimSpace(text[end:]) != "" || !strings.HasSuffix(v, ")") {
		return v
	}
	if strings.Count(v, ")") <= strings.Count(v, "(") {
		return v
	}
	return strings.TrimSpace(strings.TrimSuffix(v, ")"))
}

// parseQLine splits the Q) qualifiers on "/" and validates each position on
// its own. It returns nil when no position validates.
func parseQLine(value string, anomalies *[]string) *QLine {
	parts := strings.Split(value, "/")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	part := func(i int) string {
		if i < len(parts) {
			return parts[i]
		}
		return ""
	}

	var q QLine
	valid := false
	check := func(name string, v string, re *regexp.Regexp, dst *string) {
		if v == "" {
			return
		}
		if re.MatchString(v) {
			*dst = v
			valid = true
			return
		}
		*anomalies = append(*anomalies, fmt.Sprintf("q-line %s: invalid value %q", name, v))
	}

	check("fir", part(0), qFIRRe, &q.FIR)
	check("code", part(1), qCodeRe, &q.Code)
	check("traffic", part(2), qTrafficRe, &q.Traffic)
	check("purpose", part(3), qPurposeRe, &q.Purpose)
	check("scope", part(4), qScopeRe, &q.Scope)
	check("lower", part(5), qLevelRe, &q.Lower)
	check("upper", part(6), qLevelRe, &q.Upper)

	if pos := part(7); pos != "" {
		if pm := qPositionRe.FindStringSubmatch(pos); pm != nil {
			q.Coordinates = pm[1]
			q.Radius = pm[2]
			valid = true
		} else {
			*anomalies = append(*anomalies, fmt.Sprintf("q-line position: invalid value %q", pos))
		}
	}

	if !valid {
		return nil
	}
	return &q
}
