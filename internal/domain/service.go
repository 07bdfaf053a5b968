package domain

import "context"

//go:generate mockgen -source=service.go -destination=mock_service.go -package=domain

// FlightSearchService is the external collaborator that returns offers and
// price history. Implementations must be safe for concurrent use.
type FlightSearchService interface {
	// SearchFlights returns the offers matching a canonical request.
	SearchFlights(ctx context.Context, req SearchRequest) ([]FlightOffer, error)

	// GetPriceTrends returns the price history of a route for the last
	// daysBack days. An empty slice is a valid result.
	GetPriceTrends(ctx context.Context, origin, destination string, daysBack int) ([]PricePoint, error)
}
