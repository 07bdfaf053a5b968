// Package http exposes the dashboard over a JSON API: request decoding,
// the handlers, and the mapping from errors to status codes.
package http

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/celesia/flight-insights/internal/domain"
)

// SearchFlightsRequest is the body of POST /api/v1/flights/search. Field
// names follow the dashboard's search form.
type SearchFlightsRequest struct {
	// Origin is the departure airport, any case (e.g. "gru")
	Origin string `json:"origin" example:"GRU"`

	// Destination is the arrival airport, any case (e.g. "pty")
	Destination string `json:"destination" example:"PTY"`

	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate" example:"2025-12-15"`

	// ReturnDate is the optional inbound date; empty or missing means one-way
	ReturnDate string `json:"returnDate,omitempty" example:"2025-12-22"`

	// Passengers accepts a number or numeric text; missing defaults to 1
	Passengers PassengerCount `json:"passengers,omitempty" swaggertype:"string" example:"2"`

	// Filters contains optional filtering criteria
	Filters *FilterDTO `json:"filters,omitempty"`

	// SortBy is one of relevance, best, price, score, duration, departure
	SortBy string `json:"sortBy,omitempty" example:"price"`
}

// PassengerCount keeps the passenger field as the text the form would have
// produced, whatever JSON type the client used. Coercion and range checks
// happen in domain.Normalize.
type PassengerCount string

// UnmarshalJSON implements json.Unmarshaler. Strings are unquoted, numbers
// keep their literal text, null is empty, and anything else is kept as raw
// JSON so normalization rejects it with a field error.
func (p *PassengerCount) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0, bytes.Equal(trimmed, []byte("null")):
		*p = ""
	case trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*p = PassengerCount(s)
	default:
		*p = PassengerCount(trimmed)
	}
	return nil
}

// FilterDTO represents optional filters for the offer list.
type FilterDTO struct {
	// MaxPrice drops offers priced above this amount
	MaxPrice *float64 `json:"maxPrice,omitempty" example:"1500"`

	// MaxStops drops offers with more stops (0 = direct only)
	MaxStops *int `json:"maxStops,omitempty" example:"1"`

	// Airlines keeps only offers from these airlines (name, any case)
	Airlines []string `json:"airlines,omitempty" example:"Copa Airlines,LATAM"`

	// DurationRange filters offers by total duration in minutes
	DurationRange *DurationRangeDTO `json:"durationRange,omitempty"`
}

// DurationRangeDTO represents a duration range filter in minutes.
type DurationRangeDTO struct {
	MinMinutes *int `json:"minMinutes,omitempty" example:"60"`
	MaxMinutes *int `json:"maxMinutes,omitempty" example:"480"`
}

// Validate checks the fields normalization does not cover. Search criteria
// themselves are validated by the use case.
func (r *SearchFlightsRequest) Validate() error {
	errs := &domain.ValidationErrors{}

	if r.SortBy != "" && !domain.SortOption(strings.ToLower(r.SortBy)).IsValid() {
		errs.Add(domain.NewFieldError("sortBy", domain.ErrInvalidRequest,
			"sortBy must be one of: relevance, best, price, score, duration, departure"))
	}

	if r.Filters != nil {
		for i, name := range r.Filters.Airlines {
			if strings.TrimSpace(name) == "" {
				errs.Add(domain.NewFieldError("filters.airlines", domain.ErrInvalidRequest,
					"airlines[%d] must not be empty", i))
				break
			}
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// PriceSummaryRequest is the body of POST /api/v1/analysis/price-summary.
type PriceSummaryRequest struct {
	HistoricalData []domain.PricePoint `json:"historical_data"`
}

// CompareSourcesRequest is the body of POST /api/v1/analysis/compare-sources.
type CompareSourcesRequest struct {
	Flights []domain.FlightOffer `json:"flights"`
}
