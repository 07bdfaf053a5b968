package analytics

import (
	"math"
	"sort"

	"github.com/celesia/flight-insights/internal/domain"
)

// ComputeStats summarizes a price series. Points without a usable price count
// as 0 and stay in the denominator. The result does not depend on the order
// of points. It returns false for an empty series.
func ComputeStats(points []domain.PricePoint) (domain.PriceStats, bool) {
	if len(points) == 0 {
		return domain.PriceStats{}, false
	}

	vals := make([]float64, len(points))
	for i, p := range points {
		vals[i] = p.Amount()
	}
	sort.Float64s(vals)

	s := domain.PriceStats{Count: len(vals)}
	s.Min = vals[0]
	s.Max = vals[len(vals)-1]
	s.Range = s.Max - s.Min
	s.Average = sumF(vals) / float64(len(vals))
	s.AverageRounded = int64(math.Round(s.Average))
	s.Median = median(vals)
	s.StdDev = stddevF(vals, s.Average)
	if s.Average > 0 {
		s.CoefficientOfVariation = s.StdDev / s.Average
	}
	return s, true
}

// Summarize computes statistics, substituting the sample series for an empty
// input. PriceStats.FromSample marks the substitution.
func Summarize(points []domain.PricePoint) domain.PriceStats {
	series, fromSample := WithSampleFallback(points)
	s, _ := ComputeStats(series)
	s.FromSample = fromSample
	return s
}

// sumF adds values in the given order; callers pass sorted input so the
// result is independent of the original ordering.
func sumF(vals []float64) float64 {
	var s float64
	for _, v := range vals {
		s += v
	}
	return s
}

func meanF(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	return sumF(vals) / float64(len(vals))
}

// stddevF is the sample standard deviation; 0 for fewer than two values.
func stddevF(vals []float64, m float64) float64 {
	if len(vals) < 2 {
		return 0
	}
	var sq float64
	for _, v := range vals {
		d := v - m
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(vals)-1))
}

// median expects sorted input.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
