// Package usecase contains the dashboard logic: it normalizes search
// criteria, queries the flight search service for offers and price history
// concurrently, and turns the results into display-ready analytics.
package usecase

import "github.com/celesia/flight-insights/internal/domain"

// SearchOptions contains optional parameters for a dashboard search.
type SearchOptions struct {
	// Filters contains optional filtering criteria to apply to offers
	Filters *domain.FilterOptions

	// SortBy specifies how to order the offers (default: as received)
	SortBy domain.SortOption
}

// DefaultSearchOptions returns SearchOptions with sensible defaults.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		Filters: nil,
		SortBy:  domain.SortByRelevance,
	}
}
