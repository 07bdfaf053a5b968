package http

import (
	"strconv"
	"strings"

	"github.com/celesia/flight-insights/internal/domain"
	"github.com/celesia/flight-insights/internal/usecase"
)

// ToDomainCriteria converts the request body to raw search criteria. Values
// are passed through untouched; normalization is the use case's job.
func ToDomainCriteria(req *SearchFlightsRequest) domain.SearchCriteria {
	return domain.SearchCriteria{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		Passengers:    string(req.Passengers),
	}
}

// ToDomainFilters converts a FilterDTO to domain.FilterOptions.
func ToDomainFilters(dto *FilterDTO) *domain.FilterOptions {
	if dto == nil {
		return nil
	}

	opts := &domain.FilterOptions{
		MaxPrice: dto.MaxPrice,
		MaxStops: dto.MaxStops,
	}
	for _, name := range dto.Airlines {
		opts.Airlines = append(opts.Airlines, strings.TrimSpace(name))
	}
	if dto.DurationRange != nil && (dto.DurationRange.MinMinutes != nil || dto.DurationRange.MaxMinutes != nil) {
		opts.DurationRange = &domain.DurationRange{
			MinMinutes: dto.DurationRange.MinMinutes,
			MaxMinutes: dto.DurationRange.MaxMinutes,
		}
	}
	return opts
}

// ToSearchOptions converts request fields to usecase.SearchOptions.
func ToSearchOptions(req *SearchFlightsRequest) usecase.SearchOptions {
	return usecase.SearchOptions{
		Filters: ToDomainFilters(req.Filters),
		SortBy:  domain.ParseSortOption(req.SortBy),
	}
}

// parseDaysBack reads the days_back query value. Empty selects the
// configured default (0).
func parseDaysBack(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		errs := &domain.ValidationErrors{}
		errs.Add(domain.NewFieldError("days_back", domain.ErrInvalidRequest,
			"days_back must be an integer between %d and %d, got %q",
			domain.MinDaysBack, domain.MaxDaysBack, raw))
		return 0, errs
	}
	if n == 0 {
		// an explicit 0 is out of range, not a request for the default
		errs := &domain.ValidationErrors{}
		errs.Add(domain.NewFieldError("days_back", domain.ErrInvalidRequest,
			"days_back must be between %d and %d", domain.MinDaysBack, domain.MaxDaysBack))
		return 0, errs
	}
	return n, nil
}
