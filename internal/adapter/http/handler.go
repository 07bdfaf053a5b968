package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/celesia/flight-insights/internal/adapter/http/response"
	"github.com/celesia/flight-insights/internal/domain"
	"github.com/celesia/flight-insights/internal/usecase"
)

// DashboardHandler serves the dashboard endpoints.
type DashboardHandler struct {
	useCase usecase.DashboardUseCase
}

// NewDashboardHandler creates a DashboardHandler backed by uc.
func NewDashboardHandler(uc usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{useCase: uc}
}

// SearchFlights handles POST /api/v1/flights/search
//
// @Summary Search flights with price insights
// @Description Normalizes the search form, fetches offers and the route's price history concurrently, and returns display-ready offers plus price statistics. Upstream failures degrade the response instead of failing it.
// @Tags flights
// @Accept json
// @Produce json
// @Param request body SearchFlightsRequest true "Search criteria"
// @Success 200 {object} SwaggerSearchResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /flights/search [post]
func (h *DashboardHandler) SearchFlights(c echo.Context) error {
	var req SearchFlightsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleError(c, err)
	}

	result, err := h.useCase.Search(c.Request().Context(), ToDomainCriteria(&req), ToSearchOptions(&req))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, result)
}

// PriceTrends handles GET /api/v1/flights/routes/:origin/:destination/trends
//
// @Summary Price history analysis for a route
// @Description Fetches the route's price history and returns statistics, insights, trend and booking recommendation.
// @Tags flights
// @Produce json
// @Param origin path string true "Origin airport code" example(GRU)
// @Param destination path string true "Destination airport code" example(PTY)
// @Param days_back query int false "History window in days (1-365)" default(30)
// @Success 200 {object} SwaggerTrendReport
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /flights/routes/{origin}/{destination}/trends [get]
func (h *DashboardHandler) PriceTrends(c echo.Context) error {
	daysBack, err := parseDaysBack(c.QueryParam("days_back"))
	if err != nil {
		return h.handleError(c, err)
	}

	report, err := h.useCase.PriceTrends(c.Request().Context(), c.Param("origin"), c.Param("destination"), daysBack)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, report)
}

// PriceSummary handles POST /api/v1/analysis/price-summary
//
// @Summary Analyze a supplied price series
// @Description Computes statistics, insights, trend and recommendation for the posted series. An empty series uses the sample data when the fallback is enabled.
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body SwaggerPriceSummaryRequest true "Price history"
// @Success 200 {object} SwaggerPriceAnalysis
// @Failure 400 {object} response.ErrorDetail "Invalid body"
// @Router /analysis/price-summary [post]
func (h *DashboardHandler) PriceSummary(c echo.Context) error {
	var req PriceSummaryRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	return response.OK(c, h.useCase.Summarize(req.HistoricalData))
}

// CompareSources handles POST /api/v1/analysis/compare-sources
//
// @Summary Compare prices across booking sources
// @Description Groups the posted offers by source and reports per-source price figures, the cheapest source, the spread between source averages and the best deal. Offers without a positive price only lower their source's data quality.
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body SwaggerCompareSourcesRequest true "Offers to compare"
// @Success 200 {object} SwaggerSourceComparison
// @Failure 400 {object} response.ErrorDetail "Invalid body"
// @Router /analysis/compare-sources [post]
func (h *DashboardHandler) CompareSources(c echo.Context) error {
	var req CompareSourcesRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	return response.OK(c, h.useCase.CompareSources(req.Flights))
}

// Health handles GET /health. It sits outside the versioned API and is not
// part of the Swagger document.
func (h *DashboardHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleError maps use case errors to HTTP responses.
func (h *DashboardHandler) handleError(c echo.Context, err error) error {
	var validationErrs *domain.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		return response.ValidationError(c, validationErrs.ToMap())
	case errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)
	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)
	}

	zerolog.Ctx(c.Request().Context()).Error().Err(err).Msg("unhandled request error")
	return response.InternalServerError(c)
}
