package domain

import (
	"context"
	"time"
)

// BulletinKind names the message family of a raw bulletin.
type BulletinKind string

const (
	BulletinNotam BulletinKind = "notam"
	BulletinTAF   BulletinKind = "taf"
)

// RawEvent represents an unprocessed message from the source topic.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// RawBulletin is the JSON envelope published by the collectors. Kind may be
// empty, in which case it is detected from the text. ICAO is the aerodrome
// the collector queried, used when the text itself names none.
type RawBulletin struct {
	Kind   BulletinKind `json:"kind,omitempty"`
	Raw    string       `json:"raw"`
	Source string       `json:"source,omitempty"`
	ICAO   string       `json:"icao,omitempty"`
}

// DecodedBulletin is the record published to the sink topic. Exactly one of
// Notam and Taf is set, matching Kind.
type DecodedBulletin struct {
	ID       string       `json:"id"`
	Kind     BulletinKind `json:"kind"`
	Location string       `json:"location,omitempty"`
	Airport  *Airport     `json:"airport,omitempty"`
	Severity Severity     `json:"severity,omitempty"`

	Notam *NotamRecord `json:"notam,omitempty"`
	Taf   *TafRecord   `json:"taf,omitempty"`

	// HumanReadable is the rendered plain-text form.
	HumanReadable string `json:"human_readable,omitempty"`

	Raw         string    `json:"raw"`
	Source      string    `json:"source,omitempty"`
	ProcessedAt time.Time `json:"processed_at"`
}

// Anomalies returns the malformed sub-field notes of the decoded record.
func (b DecodedBulletin) Anomalies() []string {
	if b.Notam != nil {
		return b.Notam.Anomalies
	}
	return nil
}
