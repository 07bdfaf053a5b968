// Package mock provides test doubles for the flight search service.
// Unlike the gomock double in domain, these carry state: configurable
// delays, failures and call counts for integration scenarios.
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/celesia/flight-insights/internal/domain"
)

// Service is a configurable fake domain.FlightSearchService.
type Service struct {
	mu sync.Mutex

	offers      []domain.FlightOffer
	offersErr   error
	offersDelay time.Duration

	history      []domain.PricePoint
	historyErr   error
	historyDelay time.Duration

	searchCalls int
	trendsCalls int
	lastRequest domain.SearchRequest
	lastDays    int
}

// NewService creates a fake that returns no offers and no history.
func NewService() *Service {
	return &Service{}
}

// WithOffers configures the offers returned by SearchFlights.
func (s *Service) WithOffers(offers []domain.FlightOffer) *Service {
	s.offers = offers
	return s
}

// WithOffersError makes SearchFlights fail with err.
func (s *Service) WithOffersError(err error) *Service {
	s.offersErr = err
	return s
}

// WithOffersDelay makes SearchFlights wait d before answering.
func (s *Service) WithOffersDelay(d time.Duration) *Service {
	s.offersDelay = d
	return s
}

// WithHistory configures the points returned by GetPriceTrends.
func (s *Service) WithHistory(points []domain.PricePoint) *Service {
	s.history = points
	return s
}

// WithHistoryError makes GetPriceTrends fail with err.
func (s *Service) WithHistoryError(err error) *Service {
	s.historyErr = err
	return s
}

// WithHistoryDelay makes GetPriceTrends wait d before answering.
func (s *Service) WithHistoryDelay(d time.Duration) *Service {
	s.historyDelay = d
	return s
}

// SearchFlights implements domain.FlightSearchService.
func (s *Service) SearchFlights(ctx context.Context, req domain.SearchRequest) ([]domain.FlightOffer, error) {
	s.mu.Lock()
	s.searchCalls++
	s.lastRequest = req
	offers, err, delay := s.offers, s.offersErr, s.offersDelay
	s.mu.Unlock()

	if err := wait(ctx, delay); err != nil {
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	out := make([]domain.FlightOffer, len(offers))
	copy(out, offers)
	return out, nil
}

// GetPriceTrends implements domain.FlightSearchService.
func (s *Service) GetPriceTrends(ctx context.Context, origin, destination string, daysBack int) ([]domain.PricePoint, error) {
	s.mu.Lock()
	s.trendsCalls++
	s.lastDays = daysBack
	points, err, delay := s.history, s.historyErr, s.historyDelay
	s.mu.Unlock()

	if err := wait(ctx, delay); err != nil {
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	out := make([]domain.PricePoint, len(points))
	copy(out, points)
	return out, nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(d):
		}
	}
	return ctx.Err()
}

// SearchCalls returns how many times SearchFlights ran.
func (s *Service) SearchCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchCalls
}

// TrendsCalls returns how many times GetPriceTrends ran.
func (s *Service) TrendsCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trendsCalls
}

// LastRequest returns the most recent canonical search request.
func (s *Service) LastRequest() domain.SearchRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRequest
}

// LastDaysBack returns the most recent history window.
func (s *Service) LastDaysBack() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastDays
}

var _ domain.FlightSearchService = (*Service)(nil)

var sampleAirlines = []string{"Copa Airlines", "LATAM", "Azul", "Avianca"}

// SampleOffers returns count fully populated BRL offers on GRU-PTY with
// increasing prices and decreasing scores, departing two hours apart.
func SampleOffers(count int) []domain.FlightOffer {
	base := time.Date(2025, 12, 15, 6, 0, 0, 0, time.UTC)
	offers := make([]domain.FlightOffer, count)
	for i := range offers {
		dep := base.Add(time.Duration(i*2) * time.Hour)
		duration := 360 + i*30
		offers[i] = domain.FlightOffer{
			Airline:         sampleAirlines[i%len(sampleAirlines)],
			FlightNumber:    fmt.Sprintf("XX %d", 100+i),
			Origin:          "GRU",
			Destination:     "PTY",
			DepartureTime:   domain.Some(dep.Format("2006-01-02T15:04:05")),
			ArrivalTime:     domain.Some(dep.Add(time.Duration(duration) * time.Minute).Format("2006-01-02T15:04:05")),
			Stops:           domain.Some(i % 2),
			DurationMinutes: domain.Some(duration),
			Price:           domain.Some(1000 + float64(i)*150),
			Currency:        domain.CurrencyBRL,
			AIScore:         domain.Some(95 - float64(i)*5),
		}
	}
	return offers
}

// SampleHistory returns a daily series starting 2025-11-01 with the given
// prices.
func SampleHistory(prices ...float64) []domain.PricePoint {
	start := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	points := make([]domain.PricePoint, len(prices))
	for i, p := range prices {
		points[i] = domain.PricePoint{
			Date:  start.AddDate(0, 0, i).Format("2006-01-02"),
			Price: domain.Some(p),
		}
	}
	return points
}
