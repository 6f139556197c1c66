package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// ParseRawEvent deserializes a RawEvent's value into a RawBulletin. A missing
// kind is taken from the bulletin_kind header, then detected from the text.
func ParseRawEvent(raw RawEvent) (RawBulletin, error) {
	var b RawBulletin
	if err := json.Unmarshal(raw.Value, &b); err != nil {
		return RawBulletin{}, fmt.Errorf("parse raw event: %w", err)
	}
	if b.Kind == "" {
		b.Kind = BulletinKind(strings.ToLower(raw.Headers["bulletin_kind"]))
	}
	if b.Kind == "" {
		b.Kind = DetectKind(b.Raw)
	}
	return b, nil
}

// DetectKind treats text with a NOTAM series identifier as a NOTAM and
// anything else as a TAF.
func DetectKind(text string) BulletinKind {
	if notamIDRe.MatchString(text) {
		return BulletinNotam
	}
	return BulletinTAF
}

// DecodeBulletin decodes a raw bulletin according to its kind and stamps it
// with a deterministic ID and the processing time.
func DecodeBulletin(b RawBulletin) (DecodedBulletin, error) {
	out := DecodedBulletin{
		Kind:   b.Kind,
		Raw:    b.Raw,
		Source: b.Source,
	}

	switch b.Kind {
	case BulletinNotam:
		rec, err := DecodeNotam(b.Raw)
		if err != nil {
			return DecodedBulletin{}, fmt.Errorf("decode bulletin: %w", err)
		}
		out.Notam = &rec
		out.Location = rec.Location
		out.Severity = rec.Severity
		out.ID = generateID(b.Kind, rec.ID, rec.Location, string(rec.Kind))
	case BulletinTAF:
		rec, err := ParseTAF(b.Raw)
		if err != nil {
			return DecodedBulletin{}, fmt.Errorf("decode bulletin: %w", err)
		}
		out.Taf = &rec
		out.Location = rec.Station
		out.ID = generateID(b.Kind, rec.Station, normalizeTAF(rec.Raw))
	default:
		return DecodedBulletin{}, fmt.Errorf("decode bulletin %q: %w", b.Kind, ErrUnknownKind)
	}

	if out.Location == "" {
		out.Location = strings.ToUpper(strings.TrimSpace(b.ICAO))
	}
	out.ProcessedAt = clock.Now()
	return out, nil
}

// generateID produces a deterministic ID from the bulletin's key fields, so
// that replaying the same message yields the same sink key.
func generateID(kind BulletinKind, fields ...string) string {
	hash := sha256.Sum256([]byte(strings.Join(fields, "|")))
	return string(kind) + "-" + hex.EncodeToString(hash[:8])
}
