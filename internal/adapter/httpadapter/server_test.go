package httpadapter_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/couchcryptid/aero-bulletin-etl/internal/adapter/airports"
	"github.com/couchcryptid/aero-bulletin-etl/internal/adapter/httpadapter"
	"github.com/couchcryptid/aero-bulletin-etl/internal/domain"
	"github.com/couchcryptid/aero-bulletin-etl/internal/pipeline"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockReadiness struct {
	err error
}

func (m *mockReadiness) CheckReadiness(_ context.Context) error { return m.err }

type failingDecoder struct{}

func (failingDecoder) Decode(context.Context, domain.RawBulletin) (domain.DecodedBulletin, error) {
	return domain.DecodedBulletin{}, errors.New("boom")
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(t *testing.T, readyErr error) *httpadapter.Server {
	t.Helper()
	domain.SetClock(clockwork.NewFakeClockAt(time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)))
	t.Cleanup(func() { domain.SetClock(nil) })

	decoder := pipeline.NewTransformer(airports.NewStaticDirectory(), nil, discardLogger())
	return httpadapter.NewServer(":0", &mockReadiness{err: readyErr}, decoder, discardLogger())
}

func post(t *testing.T, srv http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	srv.ServeHTTP(rec, req)
	return rec
}

func TestHealthzReturns200(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadyz(t *testing.T) {
	ready := newTestServer(t, nil)
	rec := httptest.NewRecorder()
	ready.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	notReady := newTestServer(t, errors.New("pipeline has not processed any messages yet"))
	rec = httptest.NewRecorder()
	notReady.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestDecodeNotam(t *testing.T) {
	srv := newTestServer(t, nil)
	body := `{"raw":"A1234/24 NOTAMN\nQ) UAAA/QMRLC/IV/NBO/A/000/999/4315N07700E005\nA) UAAA B) 2403011230 C) 2403311800\nE) RWY 05L/23R CLSD"}`

	rec := post(t, srv, "/api/v1/decode/notam", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out domain.DecodedBulletin
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, domain.BulletinNotam, out.Kind)
	assert.Equal(t, "UAAA", out.Location)
	assert.Equal(t, domain.SeverityCritical, out.Severity)
	require.NotNil(t, out.Notam)
	assert.Equal(t, "A1234/24", out.Notam.ID)
	require.NotNil(t, out.Airport)
	assert.Equal(t, "ALA", out.Airport.IATA)
}

func TestDecodeTAF_Text(t *testing.T) {
	srv := newTestServer(t, nil)
	body := `{"raw":"TAF UAAA 101100Z 1012/1112 32015G25KT 9999 FEW040 BKN100 TEMPO 1014/1018 4000 TSRA BKN020CB"}`

	rec := post(t, srv, "/api/v1/decode/taf?format=text", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, rec.Body.String(), "Aerodrome: UAAA")
	assert.Contains(t, rec.Body.String(), "EXPECTED CHANGES")
}

func TestDecode_BadRequests(t *testing.T) {
	srv := newTestServer(t, nil)

	tests := []struct {
		name string
		path string
		body string
		code int
	}{
		{"malformed json", "/api/v1/decode/taf", `{"raw":`, http.StatusBadRequest},
		{"missing raw", "/api/v1/decode/taf", `{}`, http.StatusBadRequest},
		{"bad icao", "/api/v1/decode/taf", `{"raw":"TAF UAAA","icao":"UA1"}`, http.StatusBadRequest},
		{"not a notam", "/api/v1/decode/notam", `{"raw":"RWY 05 CLSD"}`, http.StatusUnprocessableEntity},
		{"blank taf", "/api/v1/decode/taf", `{"raw":"   "}`, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, srv, tt.path, tt.body)
			assert.Equal(t, tt.code, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestDecode_InternalError(t *testing.T) {
	srv := httpadapter.NewServer(":0", &mockReadiness{}, failingDecoder{}, discardLogger())

	rec := post(t, srv, "/api/v1/decode/taf", `{"raw":"TAF UAAA"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestDecode_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/decode/taf", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
