package analytics

import "github.com/celesia/flight-insights/internal/domain"

// sampleSeries is the demo price history shown when a route has no data.
var sampleSeries = []domain.PricePoint{
	{Date: "2024-01-01", Price: domain.Some(450.0), Airline: domain.Some("Copa")},
	{Date: "2024-01-05", Price: domain.Some(420.0), Airline: domain.Some("LATAM")},
	{Date: "2024-01-10", Price: domain.Some(480.0), Airline: domain.Some("Copa")},
	{Date: "2024-01-15", Price: domain.Some(410.0), Airline: domain.Some("Azul")},
	{Date: "2024-01-20", Price: domain.Some(440.0), Airline: domain.Some("Copa")},
	{Date: "2024-01-25", Price: domain.Some(390.0), Airline: domain.Some("LATAM")},
	{Date: "2024-01-30", Price: domain.Some(465.0), Airline: domain.Some("Copa")},
}

// SampleSeries returns a copy of the demo price history.
func SampleSeries() []domain.PricePoint {
	out := make([]domain.PricePoint, len(sampleSeries))
	copy(out, sampleSeries)
	return out
}

// WithSampleFallback returns points unchanged when non-empty, otherwise the
// sample series and true. This is the only place sample data enters the
// pipeline; production deployments disable it via ANALYTICS_SAMPLE_FALLBACK.
func WithSampleFallback(points []domain.PricePoint) ([]domain.PricePoint, bool) {
	if len(points) > 0 {
		return points, false
	}
	return SampleSeries(), true
}
