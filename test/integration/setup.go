// Package integration wires the HTTP API, the dashboard use case and the
// upstream client together and drives them over HTTP.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	dashhttp "github.com/celesia/flight-insights/internal/adapter/http"
	"github.com/celesia/flight-insights/internal/adapter/http/middleware"
	"github.com/celesia/flight-insights/internal/adapter/http/response"
	"github.com/celesia/flight-insights/internal/adapter/upstream"
	"github.com/celesia/flight-insights/internal/domain"
	"github.com/celesia/flight-insights/internal/infrastructure/retry"
	"github.com/celesia/flight-insights/internal/usecase"
)

// TestServer wraps an Echo instance with the production middleware and routes.
type TestServer struct {
	Echo *echo.Echo
}

// NewTestServer creates a test server serving uc.
func NewTestServer(uc usecase.DashboardUseCase) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	middleware.Setup(e, zerolog.Nop())
	dashhttp.RegisterRoutes(e, dashhttp.NewDashboardHandler(uc))

	return &TestServer{Echo: e}
}

// NewUpstreamClient builds the real HTTP client against baseURL with fast
// retries so failure scenarios finish quickly.
func NewUpstreamClient(baseURL string) *upstream.Client {
	return upstream.NewClient(upstream.Config{
		BaseURL: baseURL,
		Timeout: 2 * time.Second,
	}, upstream.WithRetryConfig(retry.UpstreamConfig.
		WithInitialDelay(time.Millisecond).
		WithMaxDelay(5*time.Millisecond)))
}

// CreateUseCase builds a dashboard use case over service with UTC display
// and the given sample fallback setting.
func CreateUseCase(service domain.FlightSearchService, sampleFallback bool) usecase.DashboardUseCase {
	return usecase.NewDashboardUseCase(service, &usecase.Config{
		SampleFallback: sampleFallback,
		Location:       time.UTC,
	})
}

// CreateUseCaseWithConfig builds a dashboard use case with custom settings.
func CreateUseCaseWithConfig(service domain.FlightSearchService, cfg *usecase.Config) usecase.DashboardUseCase {
	return usecase.NewDashboardUseCase(service, cfg)
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method string
	Path   string
	Body   any
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var body []byte
	switch b := req.Body.(type) {
	case nil:
	case string:
		body = []byte(b)
	default:
		body, _ = json.Marshal(b)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bytes.NewReader(body))
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// Search posts body to the search endpoint.
func (ts *TestServer) Search(body any) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: "/api/v1/flights/search", Body: body})
}

// Trends fetches a route's price trends; query may be empty.
func (ts *TestServer) Trends(origin, destination, query string) Response {
	path := "/api/v1/flights/routes/" + origin + "/" + destination + "/trends"
	if query != "" {
		path += "?" + query
	}
	return ts.Do(Request{Method: http.MethodGet, Path: path})
}

// PriceSummary posts body to the price summary endpoint.
func (ts *TestServer) PriceSummary(body any) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: "/api/v1/analysis/price-summary", Body: body})
}

// CompareSources posts body to the source comparison endpoint.
func (ts *TestServer) CompareSources(body any) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: "/api/v1/analysis/compare-sources", Body: body})
}

// Health makes a health check request.
func (ts *TestServer) Health() Response {
	return ts.Do(Request{Method: http.MethodGet, Path: "/health"})
}

// Decode unmarshals the response body into v.
func (r Response) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}

// ParseSearchResponse parses the body as a SearchResponse.
func (r Response) ParseSearchResponse() (*domain.SearchResponse, error) {
	var resp domain.SearchResponse
	if err := r.Decode(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the body as an error response.
func (r Response) ParseError() (*response.ErrorDetail, error) {
	var detail response.ErrorDetail
	if err := r.Decode(&detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// SearchBody is a search request body as the dashboard form sends it.
type SearchBody struct {
	Origin        string         `json:"origin"`
	Destination   string         `json:"destination"`
	DepartureDate string         `json:"departureDate"`
	ReturnDate    string         `json:"returnDate,omitempty"`
	Passengers    any            `json:"passengers,omitempty"`
	Filters       map[string]any `json:"filters,omitempty"`
	SortBy        string         `json:"sortBy,omitempty"`
}

// DefaultSearchBody returns a valid one-way GRU-PTY search.
func DefaultSearchBody() SearchBody {
	return SearchBody{
		Origin:        "gru",
		Destination:   "pty",
		DepartureDate: "2025-12-15",
		Passengers:    1,
	}
}
