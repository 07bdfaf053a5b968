package analytics

import "github.com/celesia/flight-insights/internal/domain"

// PriceThresholdFactor is how far the average may sit above the minimum
// before the advice switches to waiting. Kept exactly as the dashboard has
// always used it.
const PriceThresholdFactor = 1.1

// Advisory texts.
const (
	WaitText    = "Prices are above average. Consider waiting for a better deal."
	BookNowText = "Good time to book! Prices are near historical lows."
	TipText     = "AI recommends booking 2-3 weeks in advance for best prices."
)

// BookingTip is the static advisory appended to every price analysis.
var BookingTip = domain.Insight{Kind: domain.AdvisoryTip, Text: TipText}

// AdviseOnPrice returns the derived advisory followed by the static booking
// tip. The comparison is strict: an average of exactly min*1.1 means book now.
func AdviseOnPrice(average, minimum float64) []domain.Insight {
	derived := domain.Insight{Kind: domain.AdvisoryBookNow, Text: BookNowText}
	if average > minimum*PriceThresholdFactor {
		derived = domain.Insight{Kind: domain.AdvisoryWait, Text: WaitText}
	}
	return []domain.Insight{derived, BookingTip}
}
