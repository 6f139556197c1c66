package domain

import (
	"context"
	"errors"
	"log/slog"
)

// EnrichWithAirport attaches airport metadata for the bulletin's location.
// If directory is nil or the lookup fails, the bulletin is returned without
// an airport (graceful degradation).
func EnrichWithAirport(ctx context.Context, b DecodedBulletin, directory AirportDirectory, logger *slog.Logger) DecodedBulletin {
	if directory == nil || b.Location == "" {
		return b
	}

	airport, err := directory.LookupAirport(ctx, b.Location)
	if err != nil {
		if errors.Is(err, ErrAirportNotFound) {
			logger.Debug("airport not in directory", "bulletin_id", b.ID, "icao", b.Location)
			return b
		}
		logger.Warn("airport lookup failed",
			"bulletin_id", b.ID,
			"icao", b.Location,
			"error", err,
		)
		return b
	}

	b.Airport = &airport
	return b
}
