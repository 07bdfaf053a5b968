// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"testing"
	"time"
)

// LoadTestJSON loads a JSON file from the test/testdata directory.
func LoadTestJSON(t *testing.T, filename string) []byte {
	t.Helper()

	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// testutil lives in test/testutil
	projectRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")
	testDataPath := filepath.Join(projectRoot, "test", "testdata", filename)

	data, err := os.ReadFile(testDataPath)
	if err != nil {
		t.Fatalf("Failed to load test file %s: %v", filename, err)
	}
	return data
}

// Upstream is a fake flight search service served over HTTP.
type Upstream struct {
	Server *httptest.Server

	searchCalls atomic.Int32
	trendsCalls atomic.Int32
}

// UpstreamResponse is a canned reply. A zero Status means 200.
type UpstreamResponse struct {
	Status int
	Body   []byte
}

// NewUpstream starts a fake service answering the search and trends
// endpoints with the given replies. The server is closed on test cleanup.
func NewUpstream(t *testing.T, search, trends UpstreamResponse) *Upstream {
	t.Helper()

	u := &Upstream{}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/flights/search", func(w http.ResponseWriter, r *http.Request) {
		u.searchCalls.Add(1)
		write(w, search)
	})
	mux.HandleFunc("GET /api/v1/flights/routes/{origin}/{destination}/trends", func(w http.ResponseWriter, r *http.Request) {
		u.trendsCalls.Add(1)
		write(w, trends)
	})

	u.Server = httptest.NewServer(mux)
	t.Cleanup(u.Server.Close)
	return u
}

func write(w http.ResponseWriter, resp UpstreamResponse) {
	w.Header().Set("Content-Type", "application/json")
	status := resp.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	_, _ = w.Write(resp.Body)
}

// URL returns the base URL of the fake service.
func (u *Upstream) URL() string {
	return u.Server.URL
}

// SearchCalls returns the number of search requests received.
func (u *Upstream) SearchCalls() int {
	return int(u.searchCalls.Load())
}

// TrendsCalls returns the number of trends requests received.
func (u *Upstream) TrendsCalls() int {
	return int(u.trendsCalls.Load())
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// FutureDate returns a date n days from now in YYYY-MM-DD format.
func FutureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}
