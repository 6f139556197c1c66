package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// NotamKind is the NOTAM series type taken from the NOTAMN/R/C suffix.
type NotamKind string

const (
	NotamNew     NotamKind = "new"
	NotamReplace NotamKind = "replace"
	NotamCancel  NotamKind = "cancel"
)

// Text returns a human description of the kind.
func (k NotamKind) Text() string {
	if s, ok := notamKindText[k]; ok {
		return s
	}
	return string(k)
}

// Severity ranks how urgently a NOTAM should be read. It is derived from the
// Q-code and empty when there is none.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// estimatedSentinel is how the C) field marks an end time that is not yet known.
const estimatedSentinel = "EST"

// NotamTime is a B)/C) field value: either a UTC timestamp or the EST sentinel.
// An absent field is represented by a nil *NotamTime.
type NotamTime struct {
	at        time.Time
	estimated bool
}

// NotamTimeAt wraps a timestamp.
func NotamTimeAt(t time.Time) *NotamTime {
	return &NotamTime{at: t.UTC()}
}

// NotamTimeEstimated returns the EST sentinel.
func NotamTimeEstimated() *NotamTime {
	return &NotamTime{estimated: true}
}

// Time returns the timestamp and false when the value is the EST sentinel.
func (t NotamTime) Time() (time.Time, bool) {
	return t.at, !t.estimated
}

// Estimated reports whether the value is the EST sentinel.
func (t NotamTime) Estimated() bool { return t.estimated }

// Equal reports whether both values are the sentinel or the same instant.
func (t NotamTime) Equal(o NotamTime) bool {
	if t.estimated || o.estimated {
		return t.estimated == o.estimated
	}
	return t.at.Equal(o.at)
}

// MarshalJSON encodes the sentinel as "EST" and timestamps as RFC 3339.
func (t NotamTime) MarshalJSON() ([]byte, error) {
	if t.estimated {
		return json.Marshal(estimatedSentinel)
	}
	return json.Marshal(t.at.Format(time.RFC3339))
}

// UnmarshalJSON accepts the encodings produced by MarshalJSON.
func (t *NotamTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("notam time: %w", err)
	}
	if s == estimatedSentinel {
		*t = NotamTime{estimated: true}
		return nil
	}
	at, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("notam time: %w", err)
	}
	*t = NotamTime{at: at.UTC()}
	return nil
}

// QLine holds the slash-separated Q) qualifiers. Each sub-field is validated on
// its own; one that fails its pattern is left empty.
type QLine struct {
	FIR         string `json:"fir,omitempty"`
	Code        string `json:"code,omitempty"`
	Traffic     string `json:"traffic,omitempty"`
	Purpose     string `json:"purpose,omitempty"`
	Scope       string `json:"scope,omitempty"`
	Lower       string `json:"lower,omitempty"`
	Upper       string `json:"upper,omitempty"`
	Coordinates string `json:"coordinates,omitempty"`
	Radius      string `json:"radius,omitempty"`
}

// NotamRecord is one decoded NOTAM.
type NotamRecord struct {
	ID       string    `json:"id"`
	Kind     NotamKind `json:"kind"`
	QCode    string    `json:"q_code,omitempty"`
	Category string    `json:"category,omitempty"`
	Severity Severity  `json:"severity,omitempty"`
	QLine    *QLine    `json:"q_line,omitempty"`
	Location string    `json:"location,omitempty"`

	ValidFrom *NotamTime `json:"valid_from,omitempty"`
	ValidTo   *NotamTime `json:"valid_to,omitempty"`
	Permanent bool       `json:"is_permanent"`

	Schedule   string `json:"schedule,omitempty"`
	LowerLimit string `json:"lower_limit,omitempty"`
	UpperLimit string `json:"upper_limit,omitempty"`

	DescriptionRaw     string `json:"description_raw,omitempty"`
	DescriptionDecoded string `json:"description_decoded,omitempty"`

	// Anomalies notes sub-fields that matched their anchor but failed validation.
	Anomalies []string `json:"anomalies,omitempty"`

	Raw string `json:"raw"`
}
