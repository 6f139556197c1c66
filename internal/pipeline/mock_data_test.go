package pipeline_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/couchcryptid/aero-bulletin-etl/internal/adapter/airports"
	"github.com/couchcryptid/aero-bulletin-etl/internal/domain"
	"github.com/couchcryptid/aero-bulletin-etl/internal/observability"
	"github.com/couchcryptid/aero-bulletin-etl/internal/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBulletinTransformer_WithMockData(t *testing.T) {
	freezeClock(t, time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC))

	transformer := pipeline.NewTransformer(airports.NewStaticDirectory(), observability.NewMetricsForTesting(), discardLogger())
	bulletins := readMockBulletins(t)
	require.Len(t, bulletins, 5)

	cases := []struct {
		kind     domain.BulletinKind
		location string
		severity domain.Severity
		airport  string
		contains string
	}{
		{domain.BulletinNotam, "UAAA", domain.SeverityCritical, "Almaty International", "CRITICAL"},
		{domain.BulletinNotam, "UACC", domain.SeverityWarning, "Nursultan Nazarbayev International", "Valid: permanent"},
		{domain.BulletinNotam, "UTTT", domain.SeverityInfo, "Tashkent International", "INFORMATION"},
		{domain.BulletinTAF, "UAAA", "", "Almaty International", "EXPECTED CHANGES"},
		{domain.BulletinTAF, "UTTT", "", "Tashkent International", "Aerodrome: UTTT (amended)"},
	}

	for i, tc := range cases {
		t.Run(string(tc.kind)+"-"+tc.location, func(t *testing.T) {
			raw := rawEventFromBulletin(t, bulletins[i])

			out, err := transformer.Transform(context.Background(), raw)
			require.NoError(t, err)

			assert.Equal(t, tc.kind, out.Kind)
			assert.Equal(t, tc.location, out.Location)
			assert.Equal(t, tc.severity, out.Severity)
			require.NotNil(t, out.Airport)
			assert.Equal(t, tc.airport, out.Airport.Name)
			assert.Contains(t, out.HumanReadable, tc.contains)
			assert.Equal(t, bulletins[i].Raw, out.Raw)
			assert.Equal(t, bulletins[i].Source, out.Source)
			assert.NotEmpty(t, out.ID)
		})
	}
}

func readMockBulletins(t *testing.T) []domain.RawBulletin {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", "bulletins.json"))
	require.NoError(t, err)

	var bulletins []domain.RawBulletin
	require.NoError(t, json.Unmarshal(data, &bulletins))
	return bulletins
}

func rawEventFromBulletin(t *testing.T, b domain.RawBulletin) domain.RawEvent {
	t.Helper()
	payload, err := json.Marshal(b)
	require.NoError(t, err)

	return domain.RawEvent{
		Key:   []byte(b.ICAO),
		Value: payload,
		Topic: "raw-aviation-bulletins",
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
