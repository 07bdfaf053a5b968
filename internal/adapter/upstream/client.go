// Package upstream is the HTTP client for the flight search service. Calls
// share a rate limiter and retry transient failures (429, 5xx, transport
// errors) with exponential backoff.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/celesia/flight-insights/internal/domain"
	"github.com/celesia/flight-insights/internal/infrastructure/retry"
)

const (
	searchPath = "/api/v1/flights/search"
	trendsPath = "/api/v1/flights/routes/%s/%s/trends"

	// maxBodyBytes caps how much of a response is read.
	maxBodyBytes = 8 << 20

	// maxErrorBody caps the response text quoted in an error.
	maxErrorBody = 200

	userAgent = "flight-insights/1.0"
)

// Config holds the client settings.
type Config struct {
	BaseURL     string
	Timeout     time.Duration
	RatePerSec  float64
	Burst       int
	MaxAttempts int
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger for retries.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithRetryConfig overrides the backoff settings.
func WithRetryConfig(cfg retry.Config) Option {
	return func(c *Client) { c.retry = cfg }
}

// Client implements domain.FlightSearchService over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	retry      retry.Config
	log        zerolog.Logger
}

// NewClient creates a Client. A non-positive rate disables limiting.
func NewClient(cfg Config, opts ...Option) *Client {
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	limit := rate.Inf
	if cfg.RatePerSec > 0 {
		limit = rate.Limit(cfg.RatePerSec)
	}

	rc := retry.UpstreamConfig
	if cfg.MaxAttempts > 0 {
		rc.MaxAttempts = cfg.MaxAttempts
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(limit, burst),
		retry:      rc,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Records are kept raw so one malformed entry does not reject the batch.
type searchResponse struct {
	Flights []json.RawMessage `json:"flights"`
}

type trendsResponse struct {
	HistoricalData []json.RawMessage `json:"historical_data"`
}

// SearchFlights posts the canonical request and returns the offers.
func (c *Client) SearchFlights(ctx context.Context, req domain.SearchRequest) ([]domain.FlightOffer, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, domain.NewUpstreamError("search_flights", 0, fmt.Errorf("encoding request: %w", err))
	}

	var out searchResponse
	if err := c.do(ctx, "search_flights", http.MethodPost, c.baseURL+searchPath, body, &out); err != nil {
		return nil, err
	}
	return decodeRecords[domain.FlightOffer](c.log, "search_flights", out.Flights), nil
}

// GetPriceTrends fetches the price history of a route. A response without
// historical_data is an empty series.
func (c *Client) GetPriceTrends(ctx context.Context, origin, destination string, daysBack int) ([]domain.PricePoint, error) {
	params := url.Values{}
	params.Set("days_back", strconv.Itoa(daysBack))
	endpoint := c.baseURL + fmt.Sprintf(trendsPath, url.PathEscape(origin), url.PathEscape(destination)) +
		"?" + params.Encode()

	var out trendsResponse
	if err := c.do(ctx, "price_trends", http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return decodeRecords[domain.PricePoint](c.log, "price_trends", out.HistoricalData), nil
}

// decodeRecords decodes each record on its own. Records that are null or
// cannot be decoded are skipped and logged; the rest are returned in order.
func decodeRecords[T any](log zerolog.Logger, op string, raws []json.RawMessage) []T {
	out := make([]T, 0, len(raws))
	for i, raw := range raws {
		if trimmed := bytes.TrimSpace(raw); len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
			log.Warn().Str("operation", op).Int("index", i).Msg("skipping null upstream record")
			continue
		}
		var rec T
		if err := json.Unmarshal(raw, &rec); err != nil {
			log.Warn().
				Err(err).
				Str("operation", op).
				Int("index", i).
				Msg("skipping malformed upstream record")
			continue
		}
		out = append(out, rec)
	}
	return out
}

// do runs one logical call with rate limiting and retries. Every returned
// error is a *domain.UpstreamError.
func (c *Client) do(ctx context.Context, op, method, endpoint string, body []byte, out any) error {
	cfg := c.retry.WithOnRetry(func(attempt int, err error, wait time.Duration) {
		c.log.Debug().
			Err(err).
			Str("operation", op).
			Int("attempt", attempt).
			Dur("backoff", wait).
			Msg("retrying upstream call")
	})

	err := retry.Do(ctx, func() error {
		err := c.attempt(ctx, op, method, endpoint, body, out)
		if err != nil && !domain.IsRetryable(err) {
			return retry.NewPermanent(err)
		}
		return err
	}, cfg)
	if err == nil {
		return nil
	}

	var ue *domain.UpstreamError
	if errors.As(err, &ue) {
		return err
	}
	// context ended between attempts
	return domain.NewUpstreamError(op, 0, err)
}

func (c *Client) attempt(ctx context.Context, op, method, endpoint string, body []byte, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return domain.NewUpstreamError(op, 0, fmt.Errorf("rate limiter: %w", err))
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return domain.NewUpstreamError(op, 0, fmt.Errorf("building request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return domain.NewUpstreamError(op, 0, ctx.Err())
		}
		return domain.NewRetryableUpstreamError(op, 0, fmt.Errorf("http: %w", err))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return domain.NewRetryableUpstreamError(op, resp.StatusCode, fmt.Errorf("reading body: %w", err))
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return domain.NewRetryableUpstreamError(op, resp.StatusCode, statusError(data))
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return domain.NewUpstreamError(op, resp.StatusCode, statusError(data))
	}

	if err := json.Unmarshal(data, out); err != nil {
		return domain.NewUpstreamError(op, resp.StatusCode, fmt.Errorf("decoding response: %w", err))
	}
	return nil
}

// statusError extracts the service's error detail when it sent one.
func statusError(body []byte) error {
	var apiErr struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Detail != "" {
		return errors.New(apiErr.Detail)
	}
	msg := truncate(strings.TrimSpace(string(body)), maxErrorBody)
	if msg == "" {
		msg = "empty response"
	}
	return errors.New(msg)
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// Ensure Client implements domain.FlightSearchService at compile time.
var _ domain.FlightSearchService = (*Client)(nil)
