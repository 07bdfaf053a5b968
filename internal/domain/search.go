package domain

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the ISO date format used for departure and return dates.
const DateLayout = "2006-01-02"

// Passenger bounds accepted by the flight search service.
const (
	MinPassengers     = 1
	MaxPassengers     = 9
	DefaultPassengers = 1
)

// SearchCriteria is the raw search form as the user entered it.
type SearchCriteria struct {
	// Origin is the departure airport, any case (e.g. "gru")
	Origin string `json:"origin"`

	// Destination is the arrival airport, any case (e.g. "pty")
	Destination string `json:"destination"`

	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the optional inbound date; empty means one-way
	ReturnDate string `json:"returnDate,omitempty"`

	// Passengers is the raw passenger count; empty defaults to 1
	Passengers string `json:"passengers,omitempty"`
}

// SearchRequest is the canonical, validated request sent to the flight
// search service.
type SearchRequest struct {
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DepartureDate string  `json:"departure_date"`
	ReturnDate    *string `json:"return_date,omitempty"`
	Passengers    int     `json:"passengers"`
}

// IsRoundTrip reports whether the request has a return leg.
func (r SearchRequest) IsRoundTrip() bool {
	return r.ReturnDate != nil
}

// Criteria converts the request back into raw criteria. Normalizing the
// result yields the same request.
func (r SearchRequest) Criteria() SearchCriteria {
	c := SearchCriteria{
		Origin:        r.Origin,
		Destination:   r.Destination,
		DepartureDate: r.DepartureDate,
		Passengers:    strconv.Itoa(r.Passengers),
	}
	if r.ReturnDate != nil {
		c.ReturnDate = *r.ReturnDate
	}
	return c
}

// airportCodeRegex matches canonical IATA airport codes.
// Matched before upper-casing so non-ASCII letters that fold to A-Z are rejected.
var airportCodeRegex = regexp.MustCompile(`^[A-Za-z]{3}$`)

// Normalize validates raw criteria and builds the canonical request.
// Every violation is reported in a *ValidationErrors; no request is built
// unless all criteria are valid.
func Normalize(c SearchCriteria) (SearchRequest, error) {
	errs := &ValidationErrors{}

	origin := normalizeAirport("origin", c.Origin, errs)
	destination := normalizeAirport("destination", c.Destination, errs)
	if origin != "" && origin == destination {
		errs.Add(NewFieldError("destination", ErrInvalidAirportCode,
			"origin and destination must be different"))
	}

	departure, depOK := parseDate("departureDate", c.DepartureDate, true, errs)

	var returnDate *string
	if c.ReturnDate != "" {
		ret, retOK := parseDate("returnDate", c.ReturnDate, false, errs)
		if retOK {
			if depOK && ret.Before(departure) {
				errs.Add(NewFieldError("returnDate", ErrInvalidDate,
					"returnDate must not precede departureDate"))
			} else {
				rd := c.ReturnDate
				returnDate = &rd
			}
		}
	}

	passengers := normalizePassengers(c.Passengers, errs)

	if errs.HasErrors() {
		return SearchRequest{}, errs
	}

	return SearchRequest{
		Origin:        origin,
		Destination:   destination,
		DepartureDate: c.DepartureDate,
		ReturnDate:    returnDate,
		Passengers:    passengers,
	}, nil
}

// NormalizeAirportCode upper-cases and validates a single airport code.
func NormalizeAirportCode(field, code string) (string, error) {
	errs := &ValidationErrors{}
	canonical := normalizeAirport(field, code, errs)
	if errs.HasErrors() {
		return "", errs
	}
	return canonical, nil
}

func normalizeAirport(field, raw string, errs *ValidationErrors) string {
	if raw == "" {
		errs.Add(NewFieldError(field, ErrMissingField, "%s is required", field))
		return ""
	}
	if !airportCodeRegex.MatchString(raw) {
		errs.Add(NewFieldError(field, ErrInvalidAirportCode,
			"%s must be a 3-letter IATA airport code, got %q", field, raw))
		return ""
	}
	return strings.ToUpper(raw)
}

func parseDate(field, raw string, required bool, errs *ValidationErrors) (time.Time, bool) {
	if raw == "" {
		if required {
			errs.Add(NewFieldError(field, ErrMissingField, "%s is required", field))
		}
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		errs.Add(NewFieldError(field, ErrInvalidDate,
			"%s must be a valid date in YYYY-MM-DD format, got %q", field, raw))
		return time.Time{}, false
	}
	return t, true
}

// normalizePassengers coerces the raw count the way the search form does:
// integers pass through, decimals are truncated, anything else is rejected.
func normalizePassengers(raw string, errs *ValidationErrors) int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return DefaultPassengers
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || math.IsNaN(f) {
			errs.Add(NewFieldError("passengers", ErrInvalidPassengerCount,
				"passengers must be a number, got %q", raw))
			return 0
		}
		if f < MinPassengers || f >= MaxPassengers+1 {
			n = MinPassengers - 1
		} else {
			n = int(f)
		}
	}

	if n < MinPassengers || n > MaxPassengers {
		errs.Add(NewFieldError("passengers", ErrInvalidPassengerCount,
			"passengers must be between %d and %d", MinPassengers, MaxPassengers))
		return 0
	}
	return n
}

// Price history window bounds, in days.
const (
	MinDaysBack     = 1
	MaxDaysBack     = 365
	DefaultDaysBack = 30
)

// RouteQuery is a validated price-history lookup.
type RouteQuery struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	DaysBack    int    `json:"days_back"`
}

// Route returns the route label, e.g. "GRU-PTY".
func (q RouteQuery) Route() string {
	return q.Origin + "-" + q.Destination
}

// NormalizeRoute validates a price-history lookup with the same airport
// rules as Normalize. daysBack must already have its default applied.
func NormalizeRoute(origin, destination string, daysBack int) (RouteQuery, error) {
	errs := &ValidationErrors{}

	o := normalizeAirport("origin", origin, errs)
	d := normalizeAirport("destination", destination, errs)
	if o != "" && o == d {
		errs.Add(NewFieldError("destination", ErrInvalidAirportCode,
			"origin and destination must be different"))
	}
	if daysBack < MinDaysBack || daysBack > MaxDaysBack {
		errs.Add(NewFieldError("days_back", ErrInvalidRequest,
			"days_back must be between %d and %d", MinDaysBack, MaxDaysBack))
	}

	if errs.HasErrors() {
		return RouteQuery{}, errs
	}
	return RouteQuery{Origin: o, Destination: d, DaysBack: daysBack}, nil
}
