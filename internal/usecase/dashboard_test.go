package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/celesia/flight-insights/internal/domain"
	"github.com/celesia/flight-insights/internal/infrastructure/timeutil"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func validCriteria() domain.SearchCriteria {
	return domain.SearchCriteria{
		Origin:        "gru",
		Destination:   "pty",
		DepartureDate: "2024-03-15",
		Passengers:    "2",
	}
}

func testOffer(flight string, price float64) domain.FlightOffer {
	return domain.FlightOffer{
		Airline:         "Copa Airlines",
		FlightNumber:    flight,
		Origin:          "GRU",
		Destination:     "PTY",
		DepartureTime:   domain.Some("2024-03-15T08:30:00"),
		DurationMinutes: domain.Some(375),
		Price:           domain.Some(price),
		Currency:        domain.CurrencyBRL,
	}
}

func newTestUseCase(t *testing.T, cfg *Config) (DashboardUseCase, *domain.MockFlightSearchService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := domain.NewMockFlightSearchService(ctrl)
	uc := NewDashboardUseCase(svc, cfg, WithClock(timeutil.NewMockClock(fixedNow)))
	return uc, svc
}

func defaultConfig() *Config {
	cfg := DefaultConfig()
	return &cfg
}

// =====================================================
// Search Tests
// =====================================================

func TestSearch_Success(t *testing.T) {
	uc, svc := newTestUseCase(t, defaultConfig())

	expectedReq := domain.SearchRequest{
		Origin: "GRU", Destination: "PTY", DepartureDate: "2024-03-15", Passengers: 2,
	}
	svc.EXPECT().SearchFlights(gomock.Any(), expectedReq).
		Return([]domain.FlightOffer{testOffer("CM 702", 1250.5)}, nil)
	svc.EXPECT().GetPriceTrends(gomock.Any(), "GRU", "PTY", domain.DefaultDaysBack).
		Return([]domain.PricePoint{
			{Date: "2024-02-01", Price: domain.Some(1200.0)},
			{Date: "2024-02-02", Price: domain.Some(1300.0)},
		}, nil)

	resp, err := uc.Search(context.Background(), validCriteria(), DefaultSearchOptions())

	require.NoError(t, err)
	assert.Equal(t, expectedReq, resp.Request)
	require.Len(t, resp.Offers, 1)
	assert.Equal(t, "R$ 1250.50", resp.Offers[0].Price)
	assert.Empty(t, resp.Notice)
	require.NotNil(t, resp.Prices.Stats)
	assert.False(t, resp.Prices.Stats.FromSample)
	assert.Equal(t, 1250.0, resp.Prices.Stats.Average)
	assert.Equal(t, 1, resp.Metadata.TotalResults)
	assert.False(t, resp.Metadata.OffersFailed)
	assert.False(t, resp.Metadata.TrendsFailed)
	assert.False(t, resp.Metadata.TrendsFallback)
	assert.Equal(t, fixedNow, resp.Metadata.GeneratedAt)

	assert.False(t, resp.Sources.Empty)
	assert.Equal(t, domain.UnknownSource, resp.Sources.BestPriceSource)
	assert.Equal(t, 1, resp.Sources.TotalFlightsFound)
}

func TestSearch_InvalidCriteriaSkipsService(t *testing.T) {
	uc, _ := newTestUseCase(t, defaultConfig())

	criteria := validCriteria()
	criteria.Origin = ""

	resp, err := uc.Search(context.Background(), criteria, DefaultSearchOptions())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrMissingField)
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestSearch_InvalidFilters(t *testing.T) {
	uc, _ := newTestUseCase(t, defaultConfig())
	negative := -1.0

	_, err := uc.Search(context.Background(), validCriteria(), SearchOptions{
		Filters: &domain.FilterOptions{MaxPrice: &negative},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestSearch_OffersFailureDegrades(t *testing.T) {
	uc, svc := newTestUseCase(t, defaultConfig())

	svc.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))
	svc.EXPECT().GetPriceTrends(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.PricePoint{{Date: "2024-02-01", Price: domain.Some(900.0)}}, nil)

	resp, err := uc.Search(context.Background(), validCriteria(), DefaultSearchOptions())

	require.NoError(t, err)
	assert.Empty(t, resp.Offers)
	assert.NotNil(t, resp.Offers)
	assert.Equal(t, NoFlightsNotice, resp.Notice)
	assert.True(t, resp.Metadata.OffersFailed)
	assert.True(t, resp.Sources.Empty)
	require.NotNil(t, resp.Prices.Stats)
	assert.Equal(t, 900.0, resp.Prices.Stats.Average)
}

func TestSearch_NoOffersShowsNotice(t *testing.T) {
	uc, svc := newTestUseCase(t, defaultConfig())

	svc.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).Return([]domain.FlightOffer{}, nil)
	svc.EXPECT().GetPriceTrends(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	resp, err := uc.Search(context.Background(), validCriteria(), DefaultSearchOptions())

	require.NoError(t, err)
	assert.Equal(t, NoFlightsNotice, resp.Notice)
	assert.False(t, resp.Metadata.OffersFailed)
}

func TestSearch_TrendsFailureUsesSample(t *testing.T) {
	uc, svc := newTestUseCase(t, defaultConfig())

	svc.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).
		Return([]domain.FlightOffer{testOffer("CM 702", 1000)}, nil)
	svc.EXPECT().GetPriceTrends(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, domain.NewRetryableUpstreamError("price_trends", 503, errors.New("unavailable")))

	resp, err := uc.Search(context.Background(), validCriteria(), DefaultSearchOptions())

	require.NoError(t, err)
	assert.Len(t, resp.Offers, 1)
	assert.True(t, resp.Metadata.TrendsFailed)
	assert.True(t, resp.Metadata.TrendsFallback)
	require.NotNil(t, resp.Prices.Stats)
	assert.True(t, resp.Prices.Stats.FromSample)
	assert.Len(t, resp.Prices.Series, 7)
}

func TestSearch_EmptyTrendsWithoutFallback(t *testing.T) {
	cfg := defaultConfig()
	cfg.SampleFallback = false
	uc, svc := newTestUseCase(t, cfg)

	svc.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).Return(nil, nil)
	svc.EXPECT().GetPriceTrends(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.PricePoint{}, nil)

	resp, err := uc.Search(context.Background(), validCriteria(), DefaultSearchOptions())

	require.NoError(t, err)
	assert.True(t, resp.Prices.Empty)
	assert.Nil(t, resp.Prices.Stats)
	assert.False(t, resp.Metadata.TrendsFailed)
	assert.False(t, resp.Metadata.TrendsFallback)
}

func TestSearch_IndependentTimeouts(t *testing.T) {
	cfg := defaultConfig()
	cfg.SearchTimeout = 50 * time.Millisecond
	cfg.TrendsTimeout = time.Second
	uc, svc := newTestUseCase(t, cfg)

	svc.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ domain.SearchRequest) ([]domain.FlightOffer, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})
	svc.EXPECT().GetPriceTrends(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _, _ string, _ int) ([]domain.PricePoint, error) {
			select {
			case <-time.After(100 * time.Millisecond):
				return []domain.PricePoint{{Date: "2024-02-01", Price: domain.Some(500.0)}}, nil
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		})

	resp, err := uc.Search(context.Background(), validCriteria(), DefaultSearchOptions())

	require.NoError(t, err)
	assert.True(t, resp.Metadata.OffersFailed)
	assert.False(t, resp.Metadata.TrendsFailed, "offer timeout must not cancel the trends call")
	require.NotNil(t, resp.Prices.Stats)
	assert.Equal(t, 500.0, resp.Prices.Stats.Average)
}

func TestSearch_CallerCancelled(t *testing.T) {
	uc, svc := newTestUseCase(t, defaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ domain.SearchRequest) ([]domain.FlightOffer, error) {
			return nil, ctx.Err()
		})
	svc.EXPECT().GetPriceTrends(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _, _ string, _ int) ([]domain.PricePoint, error) {
			return nil, ctx.Err()
		})

	resp, err := uc.Search(ctx, validCriteria(), DefaultSearchOptions())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearch_PanicRecovered(t *testing.T) {
	uc, svc := newTestUseCase(t, defaultConfig())

	svc.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, domain.SearchRequest) ([]domain.FlightOffer, error) {
			panic("boom")
		})
	svc.EXPECT().GetPriceTrends(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	resp, err := uc.Search(context.Background(), validCriteria(), DefaultSearchOptions())

	require.NoError(t, err)
	assert.True(t, resp.Metadata.OffersFailed)
}

func TestSearch_SortAndFilter(t *testing.T) {
	uc, svc := newTestUseCase(t, defaultConfig())

	svc.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).Return([]domain.FlightOffer{
		testOffer("A", 900),
		testOffer("B", 300),
		testOffer("C", 600),
	}, nil)
	svc.EXPECT().GetPriceTrends(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	maxPrice := 700.0
	resp, err := uc.Search(context.Background(), validCriteria(), SearchOptions{
		Filters: &domain.FilterOptions{MaxPrice: &maxPrice},
		SortBy:  domain.SortByPrice,
	})

	require.NoError(t, err)
	require.Len(t, resp.Offers, 2)
	assert.Equal(t, "B", resp.Offers[0].FlightNumber)
	assert.Equal(t, "C", resp.Offers[1].FlightNumber)
}

func TestSearch_CountsWarnings(t *testing.T) {
	uc, svc := newTestUseCase(t, defaultConfig())

	bad := testOffer("X", 100)
	bad.AIScore = domain.Some(250.0)
	svc.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).Return([]domain.FlightOffer{bad}, nil)
	svc.EXPECT().GetPriceTrends(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	resp, err := uc.Search(context.Background(), validCriteria(), DefaultSearchOptions())

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Metadata.WarningCount)
}

// =====================================================
// PriceTrends Tests
// =====================================================

func TestPriceTrends_DefaultWindow(t *testing.T) {
	uc, svc := newTestUseCase(t, defaultConfig())

	svc.EXPECT().GetPriceTrends(gomock.Any(), "GRU", "PTY", 30).
		Return([]domain.PricePoint{{Date: "2024-02-01", Price: domain.Some(450.0)}}, nil)

	report, err := uc.PriceTrends(context.Background(), "gru", "pty", 0)

	require.NoError(t, err)
	assert.Equal(t, "GRU-PTY", report.Route)
	assert.Equal(t, 30, report.DaysBack)
	assert.False(t, report.Failed)
	require.NotNil(t, report.Analysis.Stats)
	assert.Equal(t, 450.0, report.Analysis.Stats.Max)
	assert.Equal(t, fixedNow, report.GeneratedAt)
}

func TestPriceTrends_InvalidRoute(t *testing.T) {
	uc, _ := newTestUseCase(t, defaultConfig())

	_, err := uc.PriceTrends(context.Background(), "GRU", "GRU", 30)
	assert.ErrorIs(t, err, domain.ErrInvalidAirportCode)

	_, err = uc.PriceTrends(context.Background(), "GRU", "PTY", 400)
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestPriceTrends_FailureFallsBack(t *testing.T) {
	uc, svc := newTestUseCase(t, defaultConfig())

	svc.EXPECT().GetPriceTrends(gomock.Any(), "GRU", "LIS", 90).
		Return(nil, errors.New("timeout"))

	report, err := uc.PriceTrends(context.Background(), "GRU", "LIS", 90)

	require.NoError(t, err)
	assert.True(t, report.Failed)
	require.NotNil(t, report.Analysis.Stats)
	assert.True(t, report.Analysis.Stats.FromSample)
}

// =====================================================
// Summarize Tests
// =====================================================

func TestSummarize(t *testing.T) {
	uc, _ := newTestUseCase(t, defaultConfig())

	got := uc.Summarize(nil)
	require.NotNil(t, got.Stats)
	assert.True(t, got.Stats.FromSample)

	got = uc.Summarize([]domain.PricePoint{{Date: "2024-01-01", Price: domain.Some(100.0)}})
	require.NotNil(t, got.Stats)
	assert.False(t, got.Stats.FromSample)
}

// =====================================================
// CompareSources Tests
// =====================================================

func TestCompareSources(t *testing.T) {
	uc, _ := newTestUseCase(t, defaultConfig())

	copa := testOffer("CM 702", 1250)
	copa.Source = domain.Some("copaair.com")
	latam := testOffer("LA 8084", 980)
	latam.Source = domain.Some("latam.com")

	got := uc.CompareSources([]domain.FlightOffer{copa, latam})

	require.Len(t, got.Sources, 2)
	assert.Equal(t, "latam.com", got.BestPriceSource)
	assert.InDelta(t, 270, got.PriceSpread, 1e-9)
	require.NotNil(t, got.BestDeal)
	assert.Equal(t, "R$ 980.00", got.BestDeal.Price)

	assert.True(t, uc.CompareSources(nil).Empty)
}

func TestSearch_SourcesFollowFilters(t *testing.T) {
	uc, svc := newTestUseCase(t, defaultConfig())

	cheap := testOffer("LA 8084", 400)
	cheap.Source = domain.Some("latam.com")
	pricey := testOffer("CM 702", 1250)
	pricey.Source = domain.Some("copaair.com")
	maxPrice := 1000.0

	svc.EXPECT().SearchFlights(gomock.Any(), gomock.Any()).Return([]domain.FlightOffer{pricey, cheap}, nil)
	svc.EXPECT().GetPriceTrends(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	resp, err := uc.Search(context.Background(), validCriteria(), SearchOptions{
		Filters: &domain.FilterOptions{MaxPrice: &maxPrice},
	})

	require.NoError(t, err)
	require.Len(t, resp.Sources.Sources, 1)
	assert.Equal(t, "latam.com", resp.Sources.Sources[0].Source)
}

func TestNewDashboardUseCase_NilConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := NewDashboardUseCase(domain.NewMockFlightSearchService(ctrl), nil)

	got := uc.Summarize(nil)
	assert.False(t, got.Empty, "default config enables the sample fallback")
}
