package analytics

import "github.com/celesia/flight-insights/internal/domain"

// AnalyzePrices runs the full price pipeline over one series: statistics,
// advisories, trend and booking recommendation.
//
// When the series is empty and fallback is true the sample series is
// analyzed instead and Stats.FromSample is set. With fallback false an empty
// series yields an Empty analysis that carries only the booking tip.
func AnalyzePrices(points []domain.PricePoint, fallback bool) domain.PriceAnalysis {
	series, fromSample := points, false
	if fallback {
		series, fromSample = WithSampleFallback(points)
	}

	stats, ok := ComputeStats(series)
	if !ok {
		return domain.PriceAnalysis{
			Empty:    true,
			Insights: []domain.Insight{BookingTip},
			Trend:    domain.TrendAnalysis{Direction: domain.TrendInsufficientData},
			Series:   []domain.PricePoint{},
		}
	}
	stats.FromSample = fromSample

	trend := DetectTrend(series)
	rec := Recommend(stats, trend)

	return domain.PriceAnalysis{
		Stats:          &stats,
		Insights:       AdviseOnPrice(stats.Average, stats.Min),
		Trend:          trend,
		Recommendation: &rec,
		Series:         series,
	}
}
