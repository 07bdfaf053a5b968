package analytics

import (
	"sort"
	"time"

	"github.com/celesia/flight-insights/internal/domain"
)

// Trend detection parameters.
const (
	// TrendWindow is how many points at each end of the series are compared.
	TrendWindow = 7

	// TrendBand is the relative change beyond which prices count as moving.
	TrendBand = 0.10
)

// Volatility thresholds on the coefficient of variation.
const (
	HighVolatility   = 0.3
	MediumVolatility = 0.15
)

// Booking actions.
const (
	ActionWait           = "wait"
	ActionBookSoon       = "book_soon"
	ActionMonitorClosely = "monitor_closely"
	ActionFlexible       = "flexible"
)

// DetectTrend compares the average of the latest TrendWindow prices with the
// earliest TrendWindow prices. Points are ordered by date on a copy; points
// whose date cannot be parsed sort first. Absent and non-positive prices are
// ignored.
func DetectTrend(points []domain.PricePoint) domain.TrendAnalysis {
	prices := chronologicalPrices(points)
	n := len(prices)
	if n < 2 {
		return domain.TrendAnalysis{Direction: domain.TrendInsufficientData, DataPoints: n}
	}

	w := min(TrendWindow, n)
	recent := meanF(prices[n-w:])
	older := meanF(prices[:w])

	t := domain.TrendAnalysis{
		Direction:         domain.TrendStable,
		RecentAverage:     recent,
		HistoricalAverage: older,
		DataPoints:        n,
	}
	switch {
	case recent > older*(1+TrendBand):
		t.Direction = domain.TrendIncreasing
		t.Strength = (recent - older) / older
	case recent < older*(1-TrendBand):
		t.Direction = domain.TrendDecreasing
		t.Strength = (older - recent) / older
	}
	return t
}

type datedPrice struct {
	at    time.Time
	price float64
}

func chronologicalPrices(points []domain.PricePoint) []float64 {
	dated := make([]datedPrice, 0, len(points))
	for _, p := range points {
		v, ok := p.Price.Get()
		if !ok || v <= 0 {
			continue
		}
		at, _ := ParseTimestamp(p.Date, time.UTC)
		dated = append(dated, datedPrice{at: at, price: v})
	}
	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].at.Before(dated[j].at)
	})

	out := make([]float64, len(dated))
	for i, d := range dated {
		out[i] = d.price
	}
	return out
}

// Recommend turns a trend and the series volatility into a booking action.
// A moving trend takes precedence over volatility.
func Recommend(stats domain.PriceStats, trend domain.TrendAnalysis) domain.BookingRecommendation {
	cv := stats.CoefficientOfVariation
	rec := domain.BookingRecommendation{VolatilityLevel: volatilityLevel(cv)}

	switch {
	case trend.Direction == domain.TrendDecreasing:
		rec.Action = ActionWait
		rec.Reason = "Prices are trending downward. Consider waiting a few days."
		rec.Confidence = "medium"
	case trend.Direction == domain.TrendIncreasing:
		rec.Action = ActionBookSoon
		rec.Reason = "Prices are trending upward. Book soon to avoid higher prices."
		rec.Confidence = "medium"
	case cv > HighVolatility:
		rec.Action = ActionMonitorClosely
		rec.Reason = "High price volatility detected. Monitor daily and book when you see a dip."
		rec.Confidence = "low"
	default:
		rec.Action = ActionFlexible
		rec.Reason = "Stable pricing. Book when convenient within your travel dates."
		rec.Confidence = "high"
	}
	return rec
}

func volatilityLevel(cv float64) string {
	switch {
	case cv > HighVolatility:
		return "high"
	case cv > MediumVolatility:
		return "medium"
	default:
		return "low"
	}
}
