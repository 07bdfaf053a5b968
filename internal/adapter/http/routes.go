package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes attaches the dashboard endpoints to e. Extra middleware
// applies to the versioned API group only.
func RegisterRoutes(e *echo.Echo, h *DashboardHandler, middleware ...echo.MiddlewareFunc) {
	e.GET("/health", h.Health)

	api := e.Group("/api/v1", middleware...)

	flights := api.Group("/flights")
	flights.POST("/search", h.SearchFlights)
	flights.GET("/routes/:origin/:destination/trends", h.PriceTrends)

	analysis := api.Group("/analysis")
	analysis.POST("/price-summary", h.PriceSummary)
	analysis.POST("/compare-sources", h.CompareSources)
}
