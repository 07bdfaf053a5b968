// Package analytics turns upstream offers and price history into display
// strings, statistics and advisories. Every function is pure and total: bad
// input degrades to a documented fallback instead of an error or panic.
package analytics

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"time"

	"github.com/celesia/flight-insights/internal/domain"
)

// NotAvailable is rendered for timestamps the service did not send.
const NotAvailable = "N/A"

// currencyFormat describes how one currency is displayed.
type currencyFormat struct {
	prefix   string
	decimals int
}

// currencyFormats maps each known currency to its display format.
var currencyFormats = map[domain.Currency]currencyFormat{
	domain.CurrencyUSD: {prefix: "$ ", decimals: 2},
	domain.CurrencyBRL: {prefix: "R$ ", decimals: 2},
	domain.CurrencyEUR: {prefix: "€ ", decimals: 2},
}

// defaultCurrencyFormat applies to any currency missing from currencyFormats.
var defaultCurrencyFormat = currencyFormats[domain.CurrencyUSD]

func lookupCurrencyFormat(c domain.Currency) currencyFormat {
	if !c.IsKnown() {
		return defaultCurrencyFormat
	}
	return currencyFormats[c]
}

// FormatPrice renders an amount with its currency prefix and two decimals.
// Unrecognized currencies use the USD format.
func FormatPrice(amount float64, currency domain.Currency) string {
	f := lookupCurrencyFormat(currency)
	return f.prefix + formatDecimal(amount, f.decimals)
}

// formatDecimal rounds half away from zero on the shortest decimal
// representation of v, so 97.35 renders as "97.4" at one place.
func formatDecimal(v float64, places int) string {
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(v, 'f', -1, 64))
	if !ok {
		return strconv.FormatFloat(v, 'f', places, 64)
	}
	return r.FloatString(places)
}

// zonedLayouts carry an explicit offset; localLayouts are read in the
// display location.
var zonedLayouts = []string{
	time.RFC3339Nano,
}

var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimestamp parses a service timestamp. Zone-less values are read in loc.
func ParseTimestamp(s string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatTime renders a timestamp as 24-hour HH:MM in loc.
//
// Absent or empty input renders NotAvailable. Input that is present but
// cannot be parsed is returned unchanged (raw JSON text when the value was
// not a string).
func FormatTime(ts domain.Optional[string], loc *time.Location) string {
	s, _ := formatTime(ts, loc)
	return s
}

// formatTime also reports whether the raw value had to be echoed back.
func formatTime(ts domain.Optional[string], loc *time.Location) (string, bool) {
	switch ts.State {
	case domain.FieldMalformed:
		return ts.Raw, true
	case domain.FieldAbsent:
		return NotAvailable, false
	}
	if ts.Value == "" {
		return NotAvailable, false
	}
	if loc == nil {
		loc = time.UTC
	}
	t, ok := ParseTimestamp(ts.Value, loc)
	if !ok {
		return ts.Value, true
	}
	return t.In(loc).Format("15:04"), false
}

// FormatDuration renders minutes as "{h}h {m}m". The second result is false
// when the duration is absent or unusable and should not be displayed.
func FormatDuration(minutes domain.Optional[int]) (string, bool) {
	m, ok := minutes.Get()
	if !ok || m < 0 {
		return "", false
	}
	return fmt.Sprintf("%dh %dm", m/60, m%60), true
}

// FormatStops renders a stop count: 0 is "Direct", 1 is singular and
// anything above is plural. Negative counts render as "Direct".
func FormatStops(stops int) string {
	switch {
	case stops <= 0:
		return "Direct"
	case stops == 1:
		return "1 stop"
	default:
		return fmt.Sprintf("%d stops", stops)
	}
}

// Score bounds.
const (
	MinScore = 0.0
	MaxScore = 100.0
)

// FormatScore renders an AI score with one decimal. The second result is
// false when the score is absent or malformed and the indicator must be
// omitted. Out-of-range scores are clipped to [0,100] and reported.
func FormatScore(score domain.Optional[float64]) (string, bool, *domain.DataQualityWarning) {
	switch score.State {
	case domain.FieldAbsent:
		return "", false, nil
	case domain.FieldMalformed:
		return "", false, &domain.DataQualityWarning{
			Field:   "ai_score",
			Code:    domain.WarnScoreMalformed,
			Message: fmt.Sprintf("ai_score %s is not a number", score.Raw),
		}
	}

	v := score.Value
	var warn *domain.DataQualityWarning
	if v < MinScore || v > MaxScore || math.IsNaN(v) {
		clipped := clip(v, MinScore, MaxScore)
		warn = &domain.DataQualityWarning{
			Field:   "ai_score",
			Code:    domain.WarnScoreOutOfRange,
			Message: fmt.Sprintf("ai_score %v outside [0,100], clipped to %v", v, clipped),
		}
		v = clipped
	}
	return formatDecimal(v, 1), true, warn
}

func clip(v, lo, hi float64) float64 {
	switch {
	case math.IsNaN(v), v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}
