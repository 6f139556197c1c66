package domain

import "context"

// Airport is aerodrome metadata keyed by ICAO code.
type Airport struct {
	ICAO    string `json:"icao"`
	IATA    string `json:"iata,omitempty"`
	Name    string `json:"name"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}

// AirportDirectory resolves ICAO codes to airport metadata.
type AirportDirectory interface {
	// LookupAirport returns ErrAirportNotFound when the code is unknown.
	LookupAirport(ctx context.Context, icao string) (Airport, error)
}
