package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTestJSON(t *testing.T) {
	tests := []struct {
		file string
		key  string
	}{
		{file: "search_response.json", key: "flights"},
		{file: "trends_response.json", key: "historical_data"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			var doc map[string]json.RawMessage
			require.NoError(t, json.Unmarshal(LoadTestJSON(t, tt.file), &doc))
			assert.Contains(t, doc, tt.key)
		})
	}
}

func TestUpstream(t *testing.T) {
	u := NewUpstream(t,
		UpstreamResponse{Body: []byte(`{"flights":[]}`)},
		UpstreamResponse{Status: http.StatusBadGateway, Body: []byte(`{"detail":"down"}`)},
	)

	resp, err := http.Post(u.URL()+"/api/v1/flights/search", "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"flights":[]}`, string(body))

	resp, err = http.Get(u.URL() + "/api/v1/flights/routes/GRU/PTY/trends?days_back=30")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	assert.Equal(t, 1, u.SearchCalls())
	assert.Equal(t, 1, u.TrendsCalls())
}

func TestMustParseDate(t *testing.T) {
	tests := []struct {
		name      string
		dateStr   string
		wantYear  int
		wantMonth time.Month
		wantDay   int
	}{
		{name: "valid date", dateStr: "2025-12-15", wantYear: 2025, wantMonth: time.December, wantDay: 15},
		{name: "leap year date", dateStr: "2024-02-29", wantYear: 2024, wantMonth: time.February, wantDay: 29},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MustParseDate(t, tt.dateStr)
			assert.Equal(t, tt.wantYear, result.Year())
			assert.Equal(t, tt.wantMonth, result.Month())
			assert.Equal(t, tt.wantDay, result.Day())
		})
	}
}

func TestFutureDate(t *testing.T) {
	d := MustParseDate(t, FutureDate(30))
	assert.True(t, d.After(time.Now()))
}

func TestPtr(t *testing.T) {
	p := Ptr(42)
	require.NotNil(t, p)
	assert.Equal(t, 42, *p)

	s := Ptr("GRU")
	assert.Equal(t, "GRU", *s)
}
