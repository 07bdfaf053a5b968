package usecase

import (
	"math"
	"sort"
	"time"

	"github.com/celesia/flight-insights/internal/analytics"
	"github.com/celesia/flight-insights/internal/domain"
)

// Best-value weights. They sum to 1.0.
const (
	weightPrice    = 0.5
	weightDuration = 0.3
	weightStops    = 0.2
)

// metric is an offer attribute that may be unusable.
type metric struct {
	value float64
	ok    bool
}

func priceMetric(o domain.FlightOffer) metric {
	v, ok := o.Price.Get()
	return metric{v, ok && v >= 0}
}

func durationMetric(o domain.FlightOffer) metric {
	v, ok := o.DurationMinutes.Get()
	return metric{float64(v), ok && v >= 0}
}

func stopsMetric(o domain.FlightOffer) metric {
	if o.Stops.IsAbsent() {
		return metric{0, true}
	}
	v, ok := o.Stops.Get()
	return metric{float64(v), ok && v >= 0}
}

func scoreMetric(o domain.FlightOffer) metric {
	v, ok := o.AIScore.Get()
	return metric{v, ok && !math.IsNaN(v)}
}

// CalculateRankingScores returns a best-value score per offer, index-aligned
// with the input:
//
//	Score = (0.5 × NormalizedPrice) + (0.3 × NormalizedDuration) + (0.2 × NormalizedStops)
//
// Normalized values are in [0, 1] where 0 is best. An unusable attribute
// counts as the worst value. Lower score = better value.
//
// Prices are compared as raw amounts. No currency conversion happens, so a
// result set mixing currencies is ranked by the numbers alone.
func CalculateRankingScores(offers []domain.FlightOffer) []float64 {
	scores := make([]float64, len(offers))
	if len(offers) == 0 {
		return scores
	}

	prices := normalizeAll(collect(offers, priceMetric))
	durations := normalizeAll(collect(offers, durationMetric))
	stops := normalizeAll(collect(offers, stopsMetric))

	for i := range offers {
		scores[i] = weightPrice*prices[i] + weightDuration*durations[i] + weightStops*stops[i]
	}
	return scores
}

func collect(offers []domain.FlightOffer, fn func(domain.FlightOffer) metric) []metric {
	out := make([]metric, len(offers))
	for i, o := range offers {
		out[i] = fn(o)
	}
	return out
}

// normalizeAll maps each usable value into [0, 1] over the usable range.
// All values are 0 when the usable values are equal; unusable ones are 1.
func normalizeAll(ms []metric) []float64 {
	lo, hi := math.MaxFloat64, -math.MaxFloat64
	for _, m := range ms {
		if m.ok {
			lo = math.Min(lo, m.value)
			hi = math.Max(hi, m.value)
		}
	}

	out := make([]float64, len(ms))
	for i, m := range ms {
		switch {
		case !m.ok:
			out[i] = 1
		case hi > lo:
			out[i] = (m.value - lo) / (hi - lo)
		}
	}
	return out
}

// SortOffers orders offers by the given option using a stable sort. Offers
// whose sort attribute is unusable go last. SortByRelevance, empty or
// unknown options keep the received order. The input is not mutated.
// Price sorts use the raw amount and ignore the offer's currency.
func SortOffers(offers []domain.FlightOffer, sortBy domain.SortOption, loc *time.Location) []domain.FlightOffer {
	result := make([]domain.FlightOffer, len(offers))
	copy(result, offers)
	if len(result) <= 1 {
		return result
	}

	switch sortBy {
	case domain.SortByBestValue:
		scores := CalculateRankingScores(result)
		idx := make([]int, len(result))
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(a, b int) bool { return scores[idx[a]] < scores[idx[b]] })
		ranked := make([]domain.FlightOffer, len(result))
		for i, j := range idx {
			ranked[i] = result[j]
		}
		return ranked
	case domain.SortByPrice:
		sortByMetric(result, priceMetric, false)
	case domain.SortByDuration:
		sortByMetric(result, durationMetric, false)
	case domain.SortByScore:
		sortByMetric(result, scoreMetric, true)
	case domain.SortByDeparture:
		sortByMetric(result, func(o domain.FlightOffer) metric {
			s, ok := o.DepartureTime.Get()
			if !ok {
				return metric{}
			}
			t, ok := analytics.ParseTimestamp(s, loc)
			return metric{float64(t.Unix()), ok}
		}, false)
	}
	return result
}

func sortByMetric(offers []domain.FlightOffer, fn func(domain.FlightOffer) metric, desc bool) {
	sort.SliceStable(offers, func(i, j int) bool {
		a, b := fn(offers[i]), fn(offers[j])
		switch {
		case a.ok != b.ok:
			return a.ok
		case !a.ok:
			return false
		case desc:
			return a.value > b.value
		default:
			return a.value < b.value
		}
	})
}
