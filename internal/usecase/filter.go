package usecase

import "github.com/celesia/flight-insights/internal/domain"

// ApplyFilters returns the offers matching every filter, in their original
// order. A nil filter returns the input unchanged. The input is not mutated.
func ApplyFilters(offers []domain.FlightOffer, opts *domain.FilterOptions) []domain.FlightOffer {
	if opts == nil {
		return offers
	}

	result := make([]domain.FlightOffer, 0, len(offers))
	for _, o := range offers {
		if opts.MatchesOffer(o) {
			result = append(result, o)
		}
	}
	return result
}
