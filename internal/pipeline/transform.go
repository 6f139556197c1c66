package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/aero-bulletin-etl/internal/domain"
	"github.com/couchcryptid/aero-bulletin-etl/internal/observability"
	"github.com/couchcryptid/aero-bulletin-etl/internal/render"
)

// BulletinTransformer implements Transformer by decoding the bulletin,
// attaching airport metadata and rendering the human-readable text.
type BulletinTransformer struct {
	directory domain.AirportDirectory
	metrics   *observability.Metrics
	logger    *slog.Logger
}

// NewTransformer creates a BulletinTransformer. A nil directory disables
// airport enrichment and a nil metrics disables decode counters.
func NewTransformer(directory domain.AirportDirectory, metrics *observability.Metrics, logger *slog.Logger) *BulletinTransformer {
	return &BulletinTransformer{
		directory: directory,
		metrics:   metrics,
		logger:    logger,
	}
}

func (t *BulletinTransformer) Transform(ctx context.Context, raw domain.RawEvent) (domain.DecodedBulletin, error) {
	b, err := domain.ParseRawEvent(raw)
	if err != nil {
		return domain.DecodedBulletin{}, err
	}
	return t.Decode(ctx, b)
}

// Decode turns an already unwrapped bulletin into its decoded form. The HTTP
// and CLI entrypoints call it directly.
func (t *BulletinTransformer) Decode(ctx context.Context, b domain.RawBulletin) (domain.DecodedBulletin, error) {
	out, err := domain.DecodeBulletin(b)
	if err != nil {
		return domain.DecodedBulletin{}, err
	}

	out = domain.EnrichWithAirport(ctx, out, t.directory, t.logger)

	switch {
	case out.Notam != nil:
		out.HumanReadable = render.Notam(*out.Notam, out.Airport)
	case out.Taf != nil:
		out.HumanReadable = render.TAF(*out.Taf)
	}

	if t.metrics != nil {
		kind := string(out.Kind)
		t.metrics.BulletinsDecoded.WithLabelValues(kind).Inc()
		if n := len(out.Anomalies()); n > 0 {
			t.metrics.DecodeAnomalies.WithLabelValues(kind).Add(float64(n))
		}
	}
	if n := len(out.Anomalies()); n > 0 {
		t.logger.Debug("bulletin decoded with anomalies", "bulletin_id", out.ID, "anomalies", out.Anomalies())
	}
	return out, nil
}
