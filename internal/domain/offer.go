// Package domain contains the data model of the flight search pipeline: raw
// search criteria, the canonical request, upstream offers and price history,
// and the display views derived from them.
package domain

// FlightOffer is one flight option returned by the flight search service.
// Fields the service may omit or send in the wrong shape are Optional so the
// analytics engine can tell absent from malformed.
type FlightOffer struct {
	Airline      string `json:"airline"`
	FlightNumber string `json:"flight_number"`
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`

	// DepartureTime and ArrivalTime are timestamps in whatever format the
	// service produced; they are parsed only for display.
	DepartureTime Optional[string] `json:"departure_time,omitzero"`
	ArrivalTime   Optional[string] `json:"arrival_time,omitzero"`

	// Stops is the number of stops; absent means a direct flight.
	Stops Optional[int] `json:"stops,omitzero"`

	DurationMinutes Optional[int] `json:"duration_minutes,omitzero"`

	Price    Optional[float64] `json:"price,omitzero"`
	Currency Currency          `json:"currency"`

	// AIScore is an externally computed relevance score in [0,100].
	AIScore Optional[float64] `json:"ai_score,omitzero"`

	Recommendations []string `json:"recommendations,omitempty"`

	// Source names the airline site or aggregator the offer came from.
	Source       Optional[string] `json:"source,omitzero"`
	AircraftType Optional[string] `json:"aircraft_type,omitzero"`
	BookingURL   Optional[string] `json:"booking_url,omitzero"`
}

// PricePoint is one observation in a route's price history.
type PricePoint struct {
	Date    string            `json:"date"`
	Price   Optional[float64] `json:"price,omitzero"`
	Airline Optional[string]  `json:"airline,omitzero"`
}

// Amount returns the price with missing or malformed values coerced to 0.
func (p PricePoint) Amount() float64 {
	return p.Price.OrElse(0)
}
