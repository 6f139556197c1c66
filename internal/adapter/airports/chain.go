package airports

import (
	"context"
	"errors"

	"github.com/couchcryptid/aero-bulletin-etl/internal/domain"
)

// Chain queries directories in order and returns the first hit. When every
// directory misses it returns ErrAirportNotFound; when none hit and at least
// one failed it returns the last failure.
type Chain []domain.AirportDirectory

func (c Chain) LookupAirport(ctx context.Context, icao string) (domain.Airport, error) {
	err := domain.ErrAirportNotFound
	for _, d := range c {
		a, lookupErr := d.LookupAirport(ctx, icao)
		if lookupErr == nil {
			return a, nil
		}
		if !errors.Is(lookupErr, domain.ErrAirportNotFound) {
			err = lookupErr
		}
	}
	return domain.Airport{}, err
}
