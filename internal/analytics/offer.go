package analytics

import (
	"fmt"
	"time"

	"github.com/celesia/flight-insights/internal/domain"
)

// BuildOfferView renders one offer for display. Fields that cannot be shown
// as sent fall back to a neutral rendering and add a DataQualityWarning; the
// offer itself is never modified.
func BuildOfferView(o domain.FlightOffer, loc *time.Location) domain.OfferView {
	v := domain.OfferView{
		Airline:      o.Airline,
		FlightNumber: o.FlightNumber,
		Origin:       o.Origin,
		Destination:  o.Destination,
		Source:       o.Source.OrElse(""),
		Aircraft:     o.AircraftType.OrElse(""),
		BookingURL:   o.BookingURL.OrElse(""),
	}
	if len(o.Recommendations) > 0 {
		v.Recommendations = append([]string(nil), o.Recommendations...)
	}

	var degraded bool
	v.Departure, degraded = formatTime(o.DepartureTime, loc)
	if degraded {
		v.Warnings = append(v.Warnings, timestampWarning("departure_time", v.Departure))
	}
	v.Arrival, degraded = formatTime(o.ArrivalTime, loc)
	if degraded {
		v.Warnings = append(v.Warnings, timestampWarning("arrival_time", v.Arrival))
	}

	if stops, ok := offerStops(o.Stops); ok {
		v.Stops = FormatStops(stops)
	} else {
		v.Warnings = append(v.Warnings, domain.DataQualityWarning{
			Field:   "stops",
			Code:    domain.WarnStopsInvalid,
			Message: fmt.Sprintf("stops %s is not a usable count", rawOf(o.Stops)),
		})
	}

	if d, ok := FormatDuration(o.DurationMinutes); ok {
		v.Duration = d
	} else if !o.DurationMinutes.IsAbsent() {
		v.Warnings = append(v.Warnings, domain.DataQualityWarning{
			Field:   "duration_minutes",
			Code:    domain.WarnDurationInvalid,
			Message: fmt.Sprintf("duration_minutes %s is not a usable duration", rawOf(o.DurationMinutes)),
		})
	}

	currency := o.Currency
	if currency == "" {
		currency = domain.CurrencyUSD
	}
	v.Currency = string(currency)
	if p, ok := o.Price.Get(); ok && p >= 0 {
		v.Amount = p
	} else {
		v.Warnings = append(v.Warnings, domain.DataQualityWarning{
			Field:   "price",
			Code:    domain.WarnPriceInvalid,
			Message: fmt.Sprintf("price %s is missing or invalid, shown as 0", rawOf(o.Price)),
		})
	}
	v.Price = FormatPrice(v.Amount, currency)

	score, ok, warn := FormatScore(o.AIScore)
	if ok {
		v.Score = score
	}
	if warn != nil {
		v.Warnings = append(v.Warnings, *warn)
	}

	return v
}

// BuildOfferViews renders offers in the order received.
func BuildOfferViews(offers []domain.FlightOffer, loc *time.Location) []domain.OfferView {
	views := make([]domain.OfferView, 0, len(offers))
	for _, o := range offers {
		views = append(views, BuildOfferView(o, loc))
	}
	return views
}

// CountWarnings totals the data-quality warnings across views.
func CountWarnings(views []domain.OfferView) int {
	n := 0
	for _, v := range views {
		n += len(v.Warnings)
	}
	return n
}

// offerStops treats an absent count as a direct flight.
func offerStops(s domain.Optional[int]) (int, bool) {
	switch s.State {
	case domain.FieldAbsent:
		return 0, true
	case domain.FieldMalformed:
		return 0, false
	}
	return s.Value, s.Value >= 0
}

func timestampWarning(field, raw string) domain.DataQualityWarning {
	return domain.DataQualityWarning{
		Field:   field,
		Code:    domain.WarnTimestampUnparsable,
		Message: fmt.Sprintf("%s %q could not be parsed, shown as received", field, raw),
	}
}

func rawOf[T any](o domain.Optional[T]) string {
	switch o.State {
	case domain.FieldMalformed:
		return o.Raw
	case domain.FieldAbsent:
		return "<absent>"
	}
	return fmt.Sprint(o.Value)
}
