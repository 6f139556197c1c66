package domain

import "errors"

var (
	// ErrEmptyInput is returned when a decode call receives no text at all.
	ErrEmptyInput = errors.New("empty bulletin text")

	// ErrInvalidInput is returned for text that is not valid UTF-8.
	ErrInvalidInput = errors.New("bulletin text is not valid UTF-8")

	// ErrNotNotam is returned when a text block carries no NOTAM identifier.
	ErrNotNotam = errors.New("text is not a NOTAM")

	// ErrUnknownKind is returned for raw bulletins that are neither NOTAM nor TAF.
	ErrUnknownKind = errors.New("unknown bulletin kind")

	// ErrAirportNotFound is returned by an AirportDirectory for unknown ICAO codes.
	ErrAirportNotFound = errors.New("airport not found")
)
