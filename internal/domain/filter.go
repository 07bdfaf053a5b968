package domain

import "strings"

// SortOption defines the available orderings for offer results.
type SortOption string

// Available sort options.
const (
	// SortByRelevance keeps the order the flight search service returned (default)
	SortByRelevance SortOption = "relevance"

	// SortByBestValue sorts by a weighted price/duration/stops ranking
	SortByBestValue SortOption = "best"

	// SortByPrice sorts by price ascending (cheapest first)
	SortByPrice SortOption = "price"

	// SortByScore sorts by AI score descending (highest first)
	SortByScore SortOption = "score"

	// SortByDuration sorts by flight duration ascending (shortest first)
	SortByDuration SortOption = "duration"

	// SortByDeparture sorts by departure time ascending (earliest first)
	SortByDeparture SortOption = "departure"
)

// IsValid checks if the sort option is a valid value.
func (s SortOption) IsValid() bool {
	switch s {
	case SortByRelevance, SortByBestValue, SortByPrice, SortByScore, SortByDuration, SortByDeparture:
		return true
	default:
		return false
	}
}

// ParseSortOption converts a string to a SortOption.
// Returns SortByRelevance if the string is empty or invalid.
func ParseSortOption(s string) SortOption {
	option := SortOption(strings.ToLower(s))
	if option.IsValid() {
		return option
	}
	return SortByRelevance
}

// FilterOptions defines optional filters applied to offers before display.
type FilterOptions struct {
	// MaxPrice drops offers priced above this amount. The amount is compared
	// with each offer's price as sent, whatever the offer's currency.
	MaxPrice *float64 `json:"maxPrice,omitempty"`

	// MaxStops drops offers with more stops; 0 = direct only
	MaxStops *int `json:"maxStops,omitempty"`

	// Airlines keeps only offers from these airlines (case-insensitive name match)
	Airlines []string `json:"airlines,omitempty"`

	// DurationRange filters offers by total duration in minutes
	DurationRange *DurationRange `json:"durationRange,omitempty"`
}

// DurationRange represents a duration range filter for offers.
type DurationRange struct {
	// MinMinutes is the minimum acceptable duration in minutes (inclusive)
	MinMinutes *int `json:"minMinutes,omitempty"`

	// MaxMinutes is the maximum acceptable duration in minutes (inclusive)
	MaxMinutes *int `json:"maxMinutes,omitempty"`
}

// IsValid checks if the duration range is valid.
// Returns false if min > max, or if any values are negative.
func (dr *DurationRange) IsValid() bool {
	if dr == nil {
		return true
	}
	if dr.MinMinutes != nil && *dr.MinMinutes < 0 {
		return false
	}
	if dr.MaxMinutes != nil && *dr.MaxMinutes < 0 {
		return false
	}
	if dr.MinMinutes != nil && dr.MaxMinutes != nil && *dr.MinMinutes > *dr.MaxMinutes {
		return false
	}
	return true
}

// Contains checks if a given duration (in minutes) falls within the range.
func (dr *DurationRange) Contains(durationMinutes int) bool {
	if dr == nil {
		return true
	}
	if dr.MinMinutes != nil && durationMinutes < *dr.MinMinutes {
		return false
	}
	if dr.MaxMinutes != nil && durationMinutes > *dr.MaxMinutes {
		return false
	}
	return true
}

// Validate checks the filter bounds.
func (f *FilterOptions) Validate() error {
	if f == nil {
		return nil
	}
	errs := &ValidationErrors{}
	if f.MaxPrice != nil && *f.MaxPrice < 0 {
		errs.Add(NewFieldError("maxPrice", ErrInvalidRequest, "maxPrice must not be negative"))
	}
	if f.MaxStops != nil && *f.MaxStops < 0 {
		errs.Add(NewFieldError("maxStops", ErrInvalidRequest, "maxStops must not be negative"))
	}
	if !f.DurationRange.IsValid() {
		errs.Add(NewFieldError("durationRange", ErrInvalidRequest,
			"durationRange must be non-negative with min <= max"))
	}
	if errs.HasErrors() {
		return errs
	}
	return nil
}

// MatchesOffer checks if an offer matches all the filter criteria. A filter
// only excludes an offer when the offer's field is usable; offers with
// missing or malformed values are kept.
func (f *FilterOptions) MatchesOffer(o FlightOffer) bool {
	if f == nil {
		return true
	}

	if price, ok := o.Price.Get(); ok && f.MaxPrice != nil && price > *f.MaxPrice {
		return false
	}

	if f.MaxStops != nil && !o.Stops.IsMalformed() && o.Stops.OrElse(0) > *f.MaxStops {
		return false
	}

	if len(f.Airlines) > 0 {
		found := false
		for _, name := range f.Airlines {
			if strings.EqualFold(name, o.Airline) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if d, ok := o.DurationMinutes.Get(); ok && !f.DurationRange.Contains(d) {
		return false
	}

	return true
}
