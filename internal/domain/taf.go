package domain

import "fmt"

// TafRecord is one decoded TAF. Changes keep their order of appearance in the
// source text.
type TafRecord struct {
	Station     string        `json:"station,omitempty"`
	Amendment   string        `json:"amendment,omitempty"`
	IssueTime   *DayTime      `json:"issue_time,omitempty"`
	ValidPeriod *ValidPeriod  `json:"valid_period,omitempty"`
	Baseline    ForecastGroup `json:"baseline"`
	Changes     []ChangeGroup `json:"changes"`
	Raw         string        `json:"raw"`
}

// DayTime is a day-of-month and UTC time of day. TAFs carry no month or year.
type DayTime struct {
	Day    int `json:"day"`
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

func (d DayTime) String() string {
	return fmt.Sprintf("day %02d, %02d:%02d UTC", d.Day, d.Hour, d.Minute)
}

// ValidPeriod is a DDHH/DDHH window.
type ValidPeriod struct {
	FromDay  int `json:"from_day"`
	FromHour int `json:"from_hour"`
	ToDay    int `json:"to_day"`
	ToHour   int `json:"to_hour"`
}

func (p ValidPeriod) String() string {
	return fmt.Sprintf("from day %02d %02d:00 to day %02d %02d:00 UTC", p.FromDay, p.FromHour, p.ToDay, p.ToHour)
}

// ForecastGroup is the set of conditions shared by the baseline and every
// change group. Weather and Clouds are never nil so they encode as arrays.
type ForecastGroup struct {
	Wind        *Wind               `json:"wind,omitempty"`
	Visibility  *Visibility         `json:"visibility,omitempty"`
	Weather     []WeatherPhenomenon `json:"weather"`
	Clouds      []CloudLayer        `json:"clouds"`
	Temperature *TemperatureExtreme `json:"temperature,omitempty"`
}

// ChangeKind tags a change-group indicator.
type ChangeKind string

const (
	ChangeFrom      ChangeKind = "from"
	ChangeTempo     ChangeKind = "tempo"
	ChangeBecoming  ChangeKind = "becmg"
	ChangeProb      ChangeKind = "prob"
	ChangeProbTempo ChangeKind = "prob_tempo"
)

// ChangeIndicator is the tagged FM/TEMPO/BECMG/PROB variant. From is set only
// for ChangeFrom; Probability only for the PROB kinds.
type ChangeIndicator struct {
	Kind        ChangeKind `json:"kind"`
	From        *DayTime   `json:"from,omitempty"`
	Probability int        `json:"probability,omitempty"`
}

// Text describes the indicator in plain words.
func (c ChangeIndicator) Text() string {
	switch c.Kind {
	case ChangeFrom:
		if c.From == nil {
			return "From"
		}
		return fmt.Sprintf("From day %02d %02d:%02d UTC", c.From.Day, c.From.Hour, c.From.Minute)
	case ChangeTempo:
		return "Temporarily"
	case ChangeBecoming:
		return "Becoming"
	case ChangeProb:
		return fmt.Sprintf("Probability %d%%", c.Probability)
	case ChangeProbTempo:
		return fmt.Sprintf("Probability %d%%, temporarily", c.Probability)
	default:
		return string(c.Kind)
	}
}

// ChangeGroup is a forecast deviation from the baseline. Period is the
// DDHH/DDHH window that follows TEMPO, BECMG and PROB indicators.
type ChangeGroup struct {
	Indicator ChangeIndicator `json:"indicator"`
	Period    *ValidPeriod    `json:"period,omitempty"`
	ForecastGroup
}

// Wind speeds are in metres per second. Exactly one of DirectionDegrees,
// Variable and Calm describes the direction.
type Wind struct {
	SpeedMps         int    `json:"speed_mps"`
	DirectionDegrees *int   `json:"direction_degrees,omitempty"`
	Variable         bool   `json:"variable,omitempty"`
	Calm             bool   `json:"calm,omitempty"`
	Compass          string `json:"compass,omitempty"`
	GustsMps         *int   `json:"gusts_mps,omitempty"`
}

// VisibilityQuality tiers a visibility distance.
type VisibilityQuality string

const (
	VisibilityGood     VisibilityQuality = "good"
	VisibilityModerate VisibilityQuality = "moderate"
	VisibilityLimited  VisibilityQuality = "limited"
	VisibilityPoor     VisibilityQuality = "poor"
)

// Visibility is the prevailing visibility in metres.
type Visibility struct {
	Meters  int               `json:"meters"`
	Quality VisibilityQuality `json:"quality"`
	Note    string            `json:"note,omitempty"`
}

// WeatherPhenomenon is one decoded weather group such as "-SHRA".
type WeatherPhenomenon struct {
	Code        string `json:"code"`
	Intensity   string `json:"intensity,omitempty"`
	Description string `json:"description"`
}

// CloudLayer is one FEW/SCT/BKN/OVC/VV group.
type CloudLayer struct {
	Cover        string `json:"cover"`
	CoverText    string `json:"cover_text"`
	HeightFeet   int    `json:"height_feet"`
	HeightMeters int    `json:"height_meters"`
	Type         string `json:"type,omitempty"`
	TypeText     string `json:"type_text,omitempty"`
}

// TemperatureKind distinguishes TX and TN groups.
type TemperatureKind string

const (
	TemperatureMax TemperatureKind = "max"
	TemperatureMin TemperatureKind = "min"
)

// TemperatureExtreme is a forecast maximum or minimum and when it occurs.
type TemperatureExtreme struct {
	Kind    TemperatureKind `json:"kind"`
	Celsius int             `json:"celsius"`
	Day     int             `json:"day"`
	Hour    int             `json:"hour"`
}
