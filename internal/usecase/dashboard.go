package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/celesia/flight-insights/internal/analytics"
	"github.com/celesia/flight-insights/internal/domain"
	"github.com/celesia/flight-insights/internal/infrastructure/timeutil"
)

// Default timeout values.
const (
	DefaultSearchTimeout = 5 * time.Second
	DefaultTrendsTimeout = 3 * time.Second
)

// NoFlightsNotice is shown when a search produced no offers, including when
// the offer query failed.
const NoFlightsNotice = "No flights found for your search criteria."

// Upstream operation names used in logs.
const (
	opSearchFlights = "search_flights"
	opPriceTrends   = "price_trends"
)

// DashboardUseCase defines the dashboard operations.
type DashboardUseCase interface {
	// Search normalizes criteria, then fetches offers and price history
	// concurrently. Upstream failures degrade the response; only invalid
	// criteria or a cancelled caller context produce an error.
	Search(ctx context.Context, criteria domain.SearchCriteria, opts SearchOptions) (*domain.SearchResponse, error)

	// PriceTrends fetches and analyzes the price history of one route.
	// daysBack 0 selects the configured default.
	PriceTrends(ctx context.Context, origin, destination string, daysBack int) (*domain.TrendReport, error)

	// Summarize analyzes a caller-supplied price series.
	Summarize(points []domain.PricePoint) domain.PriceAnalysis

	// CompareSources compares caller-supplied offers by booking source.
	CompareSources(offers []domain.FlightOffer) domain.SourceComparison
}

// Config contains configuration options for the use case.
type Config struct {
	SearchTimeout time.Duration
	TrendsTimeout time.Duration

	// TrendsDaysBack is the history window used by Search and as the
	// PriceTrends default
	TrendsDaysBack int

	// SampleFallback substitutes the sample series when no history is available
	SampleFallback bool

	// Location is the display time zone for offer timestamps
	Location *time.Location
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		SearchTimeout:  DefaultSearchTimeout,
		TrendsTimeout:  DefaultTrendsTimeout,
		TrendsDaysBack: domain.DefaultDaysBack,
		SampleFallback: true,
		Location:       time.UTC,
	}
}

// Option customizes a dashboard use case.
type Option func(*dashboardUseCase)

// WithLogger sets the logger used for degraded upstream calls.
func WithLogger(log zerolog.Logger) Option {
	return func(uc *dashboardUseCase) { uc.log = log }
}

// WithClock sets the clock used for timings and timestamps.
func WithClock(c timeutil.Clock) Option {
	return func(uc *dashboardUseCase) { uc.clock = c }
}

type dashboardUseCase struct {
	service domain.FlightSearchService
	cfg     Config
	log     zerolog.Logger
	clock   timeutil.Clock
}

// NewDashboardUseCase creates a DashboardUseCase backed by service.
// If config is nil, defaults are used. Zero timeouts, window and location
// keep their default; SampleFallback is taken as given.
func NewDashboardUseCase(service domain.FlightSearchService, config *Config, opts ...Option) DashboardUseCase {
	cfg := DefaultConfig()
	if config != nil {
		if config.SearchTimeout > 0 {
			cfg.SearchTimeout = config.SearchTimeout
		}
		if config.TrendsTimeout > 0 {
			cfg.TrendsTimeout = config.TrendsTimeout
		}
		if config.TrendsDaysBack > 0 {
			cfg.TrendsDaysBack = config.TrendsDaysBack
		}
		if config.Location != nil {
			cfg.Location = config.Location
		}
		cfg.SampleFallback = config.SampleFallback
	}

	uc := &dashboardUseCase{
		service: service,
		cfg:     cfg,
		log:     zerolog.Nop(),
		clock:   timeutil.NewRealClock(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

type offersResult struct {
	Offers []domain.FlightOffer
	Error  error
}

type trendsResult struct {
	Points []domain.PricePoint
	Error  error
}

// Search implements DashboardUseCase.Search.
func (uc *dashboardUseCase) Search(ctx context.Context, criteria domain.SearchCriteria, opts SearchOptions) (*domain.SearchResponse, error) {
	start := uc.clock.Now()

	req, err := domain.Normalize(criteria)
	if err != nil {
		return nil, err
	}
	if err := opts.Filters.Validate(); err != nil {
		return nil, err
	}

	// Buffered so a late goroutine never blocks
	offersChan := make(chan offersResult, 1)
	trendsChan := make(chan trendsResult, 1)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		uc.fetchOffers(ctx, req, offersChan)
	}()
	go func() {
		defer wg.Done()
		uc.fetchTrends(ctx, req.Origin, req.Destination, uc.cfg.TrendsDaysBack, trendsChan)
	}()
	wg.Wait()

	offers := <-offersChan
	trends := <-trendsChan

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("search cancelled: %w", err)
	}

	resp := &domain.SearchResponse{
		Request: req,
		Offers:  []domain.OfferView{},
	}

	var selected []domain.FlightOffer
	if offers.Error != nil {
		uc.logUpstreamFailure(opSearchFlights, req.Origin, req.Destination, offers.Error)
		resp.Metadata.OffersFailed = true
	} else {
		selected = ApplyFilters(offers.Offers, opts.Filters)
		selected = SortOffers(selected, opts.SortBy, uc.cfg.Location)
		resp.Offers = analytics.BuildOfferViews(selected, uc.cfg.Location)
	}
	resp.Sources = analytics.CompareSources(selected, uc.cfg.Location)
	if len(resp.Offers) == 0 {
		resp.Notice = NoFlightsNotice
	}

	if trends.Error != nil {
		uc.logUpstreamFailure(opPriceTrends, req.Origin, req.Destination, trends.Error)
		resp.Metadata.TrendsFailed = true
	}
	resp.Prices = analytics.AnalyzePrices(trends.Points, uc.cfg.SampleFallback)

	resp.Metadata.TotalResults = len(resp.Offers)
	resp.Metadata.TrendsFallback = resp.Prices.Stats != nil && resp.Prices.Stats.FromSample
	resp.Metadata.WarningCount = analytics.CountWarnings(resp.Offers)
	resp.Metadata.GeneratedAt = uc.clock.Now()
	resp.Metadata.SearchTimeMs = resp.Metadata.GeneratedAt.Sub(start).Milliseconds()

	return resp, nil
}

// PriceTrends implements DashboardUseCase.PriceTrends.
func (uc *dashboardUseCase) PriceTrends(ctx context.Context, origin, destination string, daysBack int) (*domain.TrendReport, error) {
	if daysBack == 0 {
		daysBack = uc.cfg.TrendsDaysBack
	}
	q, err := domain.NormalizeRoute(origin, destination, daysBack)
	if err != nil {
		return nil, err
	}

	results := make(chan trendsResult, 1)
	uc.fetchTrends(ctx, q.Origin, q.Destination, q.DaysBack, results)
	trends := <-results

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("price trends cancelled: %w", err)
	}
	if trends.Error != nil {
		uc.logUpstreamFailure(opPriceTrends, q.Origin, q.Destination, trends.Error)
	}

	return &domain.TrendReport{
		Route:       q.Route(),
		DaysBack:    q.DaysBack,
		Failed:      trends.Error != nil,
		Analysis:    analytics.AnalyzePrices(trends.Points, uc.cfg.SampleFallback),
		GeneratedAt: uc.clock.Now(),
	}, nil
}

// Summarize implements DashboardUseCase.Summarize.
func (uc *dashboardUseCase) Summarize(points []domain.PricePoint) domain.PriceAnalysis {
	return analytics.AnalyzePrices(points, uc.cfg.SampleFallback)
}

// CompareSources implements DashboardUseCase.CompareSources.
func (uc *dashboardUseCase) CompareSources(offers []domain.FlightOffer) domain.SourceComparison {
	return analytics.CompareSources(offers, uc.cfg.Location)
}

// fetchOffers queries offers under its own timeout with panic recovery.
func (uc *dashboardUseCase) fetchOffers(ctx context.Context, req domain.SearchRequest, results chan<- offersResult) {
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.SearchTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			results <- offersResult{Error: panicError(opSearchFlights, r)}
		}
	}()

	offers, err := uc.service.SearchFlights(ctx, req)
	results <- offersResult{Offers: offers, Error: asUpstreamError(opSearchFlights, err)}
}

// fetchTrends queries price history under its own timeout with panic recovery.
func (uc *dashboardUseCase) fetchTrends(ctx context.Context, origin, destination string, daysBack int, results chan<- trendsResult) {
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.TrendsTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			results <- trendsResult{Error: panicError(opPriceTrends, r)}
		}
	}()

	points, err := uc.service.GetPriceTrends(ctx, origin, destination, daysBack)
	results <- trendsResult{Points: points, Error: asUpstreamError(opPriceTrends, err)}
}

func (uc *dashboardUseCase) logUpstreamFailure(op, origin, destination string, err error) {
	uc.log.Warn().
		Err(err).
		Str("operation", op).
		Str("route", origin+"-"+destination).
		Bool("timeout", errors.Is(err, context.DeadlineExceeded)).
		Msg("upstream call failed, serving degraded result")
}

// asUpstreamError makes every service failure match domain.ErrUpstreamFailure.
func asUpstreamError(op string, err error) error {
	if err == nil || errors.Is(err, domain.ErrUpstreamFailure) {
		return err
	}
	return domain.NewUpstreamError(op, 0, err)
}

func panicError(op string, r any) error {
	return domain.NewUpstreamError(op, 0, fmt.Errorf("panic: %v", r))
}

// Ensure dashboardUseCase implements DashboardUseCase at compile time.
var _ DashboardUseCase = (*dashboardUseCase)(nil)
