package http

import "time"

// The Swagger* types document response shapes for swag. Domain types carry
// generic optional fields swag cannot describe, so these mirror their JSON.

// SwaggerSearchResponse mirrors domain.SearchResponse.
// @Description Dashboard search result
type SwaggerSearchResponse struct {
	Request  SwaggerSearchRequest    `json:"request"`
	Offers   []SwaggerOfferView      `json:"offers"`
	Notice   string                  `json:"notice,omitempty" example:"No flights found for your search criteria."`
	Prices   SwaggerPriceAnalysis    `json:"prices"`
	Sources  SwaggerSourceComparison `json:"sources"`
	Metadata SwaggerSearchMetadata   `json:"metadata"`
}

// SwaggerSearchRequest mirrors domain.SearchRequest.
// @Description Canonical request sent to the flight search service
type SwaggerSearchRequest struct {
	Origin        string `json:"origin" example:"GRU"`
	Destination   string `json:"destination" example:"PTY"`
	DepartureDate string `json:"departure_date" example:"2025-12-15"`
	ReturnDate    string `json:"return_date,omitempty" example:"2025-12-22"`
	Passengers    int    `json:"passengers" example:"2"`
}

// SwaggerOfferView mirrors domain.OfferView.
// @Description Display-ready flight offer
type SwaggerOfferView struct {
	Airline         string               `json:"airline" example:"Copa Airlines"`
	FlightNumber    string               `json:"flight_number" example:"CM 702"`
	Origin          string               `json:"origin" example:"GRU"`
	Destination     string               `json:"destination" example:"PTY"`
	Departure       string               `json:"departure" example:"08:30"`
	Arrival         string               `json:"arrival" example:"14:45"`
	Stops           string               `json:"stops,omitempty" example:"Direct"`
	Duration        string               `json:"duration,omitempty" example:"6h 15m"`
	Price           string               `json:"price" example:"R$ 1250.00"`
	Amount          float64              `json:"amount" example:"1250"`
	Currency        string               `json:"currency" example:"BRL"`
	Score           string               `json:"score,omitempty" example:"97.4"`
	Recommendations []string             `json:"recommendations,omitempty"`
	Source          string               `json:"source,omitempty" example:"copaair.com"`
	Aircraft        string               `json:"aircraft,omitempty" example:"Boeing 737-800"`
	BookingURL      string               `json:"booking_url,omitempty"`
	Warnings        []SwaggerDataWarning `json:"warnings,omitempty"`
}

// SwaggerDataWarning mirrors domain.DataQualityWarning.
// @Description Non-fatal note about a field rendered with a fallback
type SwaggerDataWarning struct {
	Field   string `json:"field" example:"ai_score"`
	Code    string `json:"code" example:"score_out_of_range"`
	Message string `json:"message" example:"ai_score 104 outside [0,100], clipped to 100"`
}

// SwaggerPricePoint mirrors domain.PricePoint.
// @Description One observation of a route's price history
type SwaggerPricePoint struct {
	Date    string  `json:"date" example:"2024-01-01"`
	Price   float64 `json:"price" example:"450"`
	Airline string  `json:"airline,omitempty" example:"Copa"`
}

// SwaggerPriceSummaryRequest documents PriceSummaryRequest.
// @Description Price history to analyze
type SwaggerPriceSummaryRequest struct {
	HistoricalData []SwaggerPricePoint `json:"historical_data"`
}

// SwaggerPriceStats mirrors domain.PriceStats.
// @Description Statistics of a price series
type SwaggerPriceStats struct {
	Count                  int     `json:"count" example:"7"`
	Average                float64 `json:"average" example:"436.43"`
	AverageRounded         int64   `json:"average_rounded" example:"436"`
	Min                    float64 `json:"min" example:"390"`
	Max                    float64 `json:"max" example:"480"`
	Range                  float64 `json:"range" example:"90"`
	Median                 float64 `json:"median" example:"440"`
	StdDev                 float64 `json:"std_dev" example:"31.7"`
	CoefficientOfVariation float64 `json:"coefficient_of_variation" example:"0.07"`
	FromSample             bool    `json:"from_sample" example:"false"`
}

// SwaggerInsight mirrors domain.Insight.
// @Description Price advisory
type SwaggerInsight struct {
	Kind string `json:"kind" example:"book_now"`
	Text string `json:"text" example:"Good time to book! Prices are near historical lows."`
}

// SwaggerTrend mirrors domain.TrendAnalysis.
// @Description Price movement over the history window
type SwaggerTrend struct {
	Direction         string  `json:"direction" example:"stable"`
	Strength          float64 `json:"strength" example:"0.02"`
	RecentAverage     float64 `json:"recent_average,omitempty" example:"436.4"`
	HistoricalAverage float64 `json:"historical_average,omitempty" example:"436.4"`
	DataPoints        int     `json:"data_points" example:"7"`
}

// SwaggerRecommendation mirrors domain.BookingRecommendation.
// @Description Suggested booking action
type SwaggerRecommendation struct {
	Action          string `json:"action" example:"flexible"`
	Reason          string `json:"reason" example:"Stable pricing. Book when convenient within your travel dates."`
	Confidence      string `json:"confidence" example:"high"`
	VolatilityLevel string `json:"volatility_level" example:"low"`
}

// SwaggerPriceAnalysis mirrors domain.PriceAnalysis.
// @Description Everything derived from one price series
type SwaggerPriceAnalysis struct {
	Empty          bool                   `json:"empty" example:"false"`
	Stats          *SwaggerPriceStats     `json:"stats,omitempty"`
	Insights       []SwaggerInsight       `json:"insights"`
	Trend          SwaggerTrend           `json:"trend"`
	Recommendation *SwaggerRecommendation `json:"recommendation,omitempty"`
	Series         []SwaggerPricePoint    `json:"series"`
}

// SwaggerSearchMetadata mirrors domain.SearchMetadata.
// @Description How a search was served
type SwaggerSearchMetadata struct {
	TotalResults   int       `json:"total_results" example:"12"`
	SearchTimeMs   int64     `json:"search_time_ms" example:"840"`
	OffersFailed   bool      `json:"offers_failed" example:"false"`
	TrendsFailed   bool      `json:"trends_failed" example:"false"`
	TrendsFallback bool      `json:"trends_fallback" example:"false"`
	WarningCount   int       `json:"warning_count" example:"0"`
	GeneratedAt    time.Time `json:"generated_at" example:"2025-12-01T12:00:00Z"`
}

// SwaggerTrendReport mirrors domain.TrendReport.
// @Description Standalone price-trend lookup
type SwaggerTrendReport struct {
	Route       string               `json:"route" example:"GRU-PTY"`
	DaysBack    int                  `json:"days_back" example:"30"`
	Failed      bool                 `json:"failed" example:"false"`
	Analysis    SwaggerPriceAnalysis `json:"analysis"`
	GeneratedAt time.Time            `json:"generated_at" example:"2025-12-01T12:00:00Z"`
}

// SwaggerFlightOffer mirrors domain.FlightOffer as the service sends it.
// @Description Flight offer from the flight search service
type SwaggerFlightOffer struct {
	Airline         string   `json:"airline" example:"Copa Airlines"`
	FlightNumber    string   `json:"flight_number" example:"CM 702"`
	Origin          string   `json:"origin" example:"GRU"`
	Destination     string   `json:"destination" example:"PTY"`
	DepartureTime   string   `json:"departure_time,omitempty" example:"2025-12-15T08:30:00"`
	ArrivalTime     string   `json:"arrival_time,omitempty" example:"2025-12-15T14:45:00"`
	Stops           int      `json:"stops,omitempty" example:"0"`
	DurationMinutes int      `json:"duration_minutes,omitempty" example:"375"`
	Price           float64  `json:"price,omitempty" example:"1250"`
	Currency        string   `json:"currency" example:"BRL"`
	AIScore         float64  `json:"ai_score,omitempty" example:"97.35"`
	Recommendations []string `json:"recommendations,omitempty"`
	Source          string   `json:"source,omitempty" example:"copaair.com"`
	AircraftType    string   `json:"aircraft_type,omitempty" example:"Boeing 737-800"`
	BookingURL      string   `json:"booking_url,omitempty"`
}

// SwaggerCompareSourcesRequest documents CompareSourcesRequest.
// @Description Offers to compare by booking source
type SwaggerCompareSourcesRequest struct {
	Flights []SwaggerFlightOffer `json:"flights"`
}

// SwaggerSourceStats mirrors domain.SourceStats.
// @Description Price figures of one booking source
type SwaggerSourceStats struct {
	Source       string  `json:"source" example:"copaair.com"`
	FlightCount  int     `json:"flight_count" example:"4"`
	TotalOffers  int     `json:"total_offers" example:"5"`
	AveragePrice float64 `json:"avg_price" example:"1180.5"`
	MinPrice     float64 `json:"min_price" example:"980"`
	MaxPrice     float64 `json:"max_price" example:"1420"`
	PriceRange   float64 `json:"price_range" example:"440"`
	DataQuality  float64 `json:"data_quality" example:"0.8"`
}

// SwaggerSourceComparison mirrors domain.SourceComparison.
// @Description Price comparison across booking sources
type SwaggerSourceComparison struct {
	Empty             bool                 `json:"empty" example:"false"`
	Sources           []SwaggerSourceStats `json:"sources"`
	BestDeal          *SwaggerOfferView    `json:"best_deal,omitempty"`
	BestPriceSource   string               `json:"best_price_source,omitempty" example:"copaair.com"`
	BestAveragePrice  float64              `json:"best_avg_price,omitempty" example:"1180.5"`
	PriceSpread       float64              `json:"price_spread" example:"215.25"`
	TotalFlightsFound int                  `json:"total_flights_found" example:"9"`
	Recommendation    string               `json:"recommendation" example:"Consider copaair.com for best average prices"`
}
