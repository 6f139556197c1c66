package airports

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/couchcryptid/aero-bulletin-etl/internal/domain"
	"github.com/couchcryptid/aero-bulletin-etl/internal/observability"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

var icaoRe = regexp.MustCompile(`^[A-Z]{4}$`)

// Client implements domain.AirportDirectory using the aviationweather.gov
// airport API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates an airport API client limited to rps requests per second.
func NewClient(baseURL string, timeout time.Duration, rps float64, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		breaker:    newBreaker(),
		metrics:    metrics,
		logger:     logger,
	}
}

func newBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "airport-api",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
	})
}

// LookupAirport fetches metadata for a single ICAO code.
func (c *Client) LookupAirport(ctx context.Context, icao string) (domain.Airport, error) {
	icao = strings.ToUpper(strings.TrimSpace(icao))
	if !icaoRe.MatchString(icao) {
		return domain.Airport{}, domain.ErrAirportNotFound
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return domain.Airport{}, fmt.Errorf("airport lookup rate limit: %w", err)
	}

	params := url.Values{
		"ids":    {icao},
		"format": {"json"},
	}

	start := time.Now()
	// A missing airport is a successful call as far as the breaker is concerned.
	res, err := c.breaker.Execute(func() (interface{}, error) {
		return c.doRequest(ctx, c.baseURL+"?"+params.Encode())
	})
	c.metrics.AirportAPIDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		c.metrics.AirportLookups.WithLabelValues("error").Inc()
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.logger.Debug("airport api circuit open", "icao", icao)
		}
		return domain.Airport{}, err
	}

	found, _ := res.(*airportRecord)
	if found == nil {
		c.metrics.AirportLookups.WithLabelValues("not_found").Inc()
		return domain.Airport{}, domain.ErrAirportNotFound
	}

	c.metrics.AirportLookups.WithLabelValues("success").Inc()
	return found.toAirport(icao), nil
}

func (c *Client) doRequest(ctx context.Context, fullURL string) (*airportRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("airport request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("airport API error: status %d: %s", resp.StatusCode, body)
	}

	var records []airportRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

// aviationweather.gov airport API response types.

type airportRecord struct {
	ICAO    string `json:"icaoId"`
	IATA    string `json:"iataId"`
	Name    string `json:"name"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// toAirport splits names of the form "CITY/AIRPORT NAME".
func (r airportRecord) toAirport(icao string) domain.Airport {
	a := domain.Airport{
		ICAO:    icao,
		IATA:    strings.TrimSpace(r.IATA),
		Name:    strings.TrimSpace(r.Name),
		Country: strings.TrimSpace(r.Country),
	}
	if city, name, ok := strings.Cut(a.Name, "/"); ok {
		a.City = strings.TrimSpace(city)
		a.Name = strings.TrimSpace(name)
	}
	return a
}
