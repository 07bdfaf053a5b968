package domain

import "time"

// OfferView is a display-ready rendering of a FlightOffer.
type OfferView struct {
	Airline      string `json:"airline"`
	FlightNumber string `json:"flight_number"`
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`

	// Departure and Arrival are HH:MM, "N/A", or the raw unparseable value
	Departure string `json:"departure"`
	Arrival   string `json:"arrival"`

	// Stops is "Direct", "1 stop" or "n stops"; empty when the count is unusable
	Stops string `json:"stops,omitempty"`

	// Duration is "{h}h {m}m"; omitted when the offer has no duration
	Duration string `json:"duration,omitempty"`

	// Price is the formatted amount (e.g. "R$ 1250.00")
	Price    string  `json:"price"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`

	// Score is the AI score with one decimal; omitted when not scored
	Score string `json:"score,omitempty"`

	Recommendations []string `json:"recommendations,omitempty"`

	Source     string `json:"source,omitempty"`
	Aircraft   string `json:"aircraft,omitempty"`
	BookingURL string `json:"booking_url,omitempty"`

	Warnings []DataQualityWarning `json:"warnings,omitempty"`
}

// PriceStats summarizes a price series.
type PriceStats struct {
	// Count is the number of points, including those without a price
	Count int `json:"count"`

	Average float64 `json:"average"`

	// AverageRounded is Average rounded to a whole currency unit
	AverageRounded int64 `json:"average_rounded"`

	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Range  float64 `json:"range"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`

	// CoefficientOfVariation is StdDev / Average, 0 when Average is 0
	CoefficientOfVariation float64 `json:"coefficient_of_variation"`

	// FromSample is true when the bundled sample series replaced an empty input
	FromSample bool `json:"from_sample"`
}

// Advisory identifies the kind of price insight.
type Advisory string

const (
	AdvisoryWait    Advisory = "wait"
	AdvisoryBookNow Advisory = "book_now"
	AdvisoryTip     Advisory = "tip"
)

// Insight is a natural-language advisory derived from (or attached to)
// price statistics.
type Insight struct {
	Kind Advisory `json:"kind"`
	Text string   `json:"text"`
}

// TrendDirection describes the movement of prices over time.
type TrendDirection string

const (
	TrendIncreasing       TrendDirection = "increasing"
	TrendDecreasing       TrendDirection = "decreasing"
	TrendStable           TrendDirection = "stable"
	TrendInsufficientData TrendDirection = "insufficient_data"
)

// TrendAnalysis compares the most recent prices against the earliest ones.
type TrendAnalysis struct {
	Direction         TrendDirection `json:"direction"`
	Strength          float64        `json:"strength"`
	RecentAverage     float64        `json:"recent_average,omitempty"`
	HistoricalAverage float64        `json:"historical_average,omitempty"`
	DataPoints        int            `json:"data_points"`
}

// BookingRecommendation is the action suggested by trend and volatility.
type BookingRecommendation struct {
	Action          string `json:"action"`
	Reason          string `json:"reason"`
	Confidence      string `json:"confidence"`
	VolatilityLevel string `json:"volatility_level"`
}

// PriceAnalysis bundles everything derived from one price series.
type PriceAnalysis struct {
	// Empty is true when there was no data and no sample fallback
	Empty bool `json:"empty"`

	Stats          *PriceStats            `json:"stats,omitempty"`
	Insights       []Insight              `json:"insights"`
	Trend          TrendAnalysis          `json:"trend"`
	Recommendation *BookingRecommendation `json:"recommendation,omitempty"`

	// Series is the data the analysis ran on, in received order
	Series []PricePoint `json:"series"`
}

// UnknownSource labels offers that do not name their booking source.
const UnknownSource = "unknown"

// SourceStats summarizes the offers of one booking source. Only offers with a
// positive price enter the price figures.
type SourceStats struct {
	Source string `json:"source"`

	// FlightCount is the number of offers with a positive price
	FlightCount int `json:"flight_count"`
	TotalOffers int `json:"total_offers"`

	AveragePrice float64 `json:"avg_price"`
	MinPrice     float64 `json:"min_price"`
	MaxPrice     float64 `json:"max_price"`
	PriceRange   float64 `json:"price_range"`

	// DataQuality is FlightCount / TotalOffers, in [0, 1]
	DataQuality float64 `json:"data_quality"`
}

// SourceComparison compares offer prices across booking sources.
type SourceComparison struct {
	// Empty is true when no source had a priced offer
	Empty bool `json:"empty"`

	// Sources is ordered by average price, cheapest first
	Sources []SourceStats `json:"sources"`

	// BestDeal is the cheapest priced offer across all sources
	BestDeal *OfferView `json:"best_deal,omitempty"`

	BestPriceSource  string  `json:"best_price_source,omitempty"`
	BestAveragePrice float64 `json:"best_avg_price,omitempty"`

	// PriceSpread is the gap between the highest and lowest source average
	PriceSpread float64 `json:"price_spread"`

	TotalFlightsFound int    `json:"total_flights_found"`
	Recommendation    string `json:"recommendation"`
}

// SearchMetadata describes how a dashboard search was served.
type SearchMetadata struct {
	TotalResults   int   `json:"total_results"`
	SearchTimeMs   int64 `json:"search_time_ms"`
	OffersFailed   bool  `json:"offers_failed"`
	TrendsFailed   bool  `json:"trends_failed"`
	TrendsFallback bool  `json:"trends_fallback"`
	WarningCount   int   `json:"warning_count"`

	GeneratedAt time.Time `json:"generated_at"`
}

// SearchResponse is the dashboard payload for one search.
type SearchResponse struct {
	Request  SearchRequest    `json:"request"`
	Offers   []OfferView      `json:"offers"`
	Notice   string           `json:"notice,omitempty"`
	Prices   PriceAnalysis    `json:"prices"`
	Sources  SourceComparison `json:"sources"`
	Metadata SearchMetadata   `json:"metadata"`
}

// TrendReport is the payload of a standalone price-trend lookup.
type TrendReport struct {
	Route       string        `json:"route"`
	DaysBack    int           `json:"days_back"`
	Failed      bool          `json:"failed"`
	Analysis    PriceAnalysis `json:"analysis"`
	GeneratedAt time.Time     `json:"generated_at"`
}
