package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNormalize(t *testing.T) {
	validCriteria := func() SearchCriteria {
		return SearchCriteria{
			Origin:        "gru",
			Destination:   "pty",
			DepartureDate: "2024-03-15",
			ReturnDate:    "2024-03-22",
			Passengers:    "2",
		}
	}

	tests := []struct {
		name     string
		modify   func(*SearchCriteria)
		want     SearchRequest
		wantKind error
		field    string
	}{
		{
			name:   "valid round trip is uppercased",
			modify: func(c *SearchCriteria) {},
			want: SearchRequest{
				Origin: "GRU", Destination: "PTY", DepartureDate: "2024-03-15",
				ReturnDate: strPtr("2024-03-22"), Passengers: 2,
			},
		},
		{
			name:   "empty return date means one way",
			modify: func(c *SearchCriteria) { c.ReturnDate = "" },
			want: SearchRequest{
				Origin: "GRU", Destination: "PTY", DepartureDate: "2024-03-15", Passengers: 2,
			},
		},
		{
			name:   "return on departure day is allowed",
			modify: func(c *SearchCriteria) { c.ReturnDate = "2024-03-15" },
			want: SearchRequest{
				Origin: "GRU", Destination: "PTY", DepartureDate: "2024-03-15",
				ReturnDate: strPtr("2024-03-15"), Passengers: 2,
			},
		},
		{
			name:   "empty passengers defaults to one",
			modify: func(c *SearchCriteria) { c.Passengers = ""; c.ReturnDate = "" },
			want: SearchRequest{
				Origin: "GRU", Destination: "PTY", DepartureDate: "2024-03-15", Passengers: 1,
			},
		},
		{
			name:   "decimal passengers truncated",
			modify: func(c *SearchCriteria) { c.Passengers = "3.7"; c.ReturnDate = "" },
			want: SearchRequest{
				Origin: "GRU", Destination: "PTY", DepartureDate: "2024-03-15", Passengers: 3,
			},
		},
		{
			name:   "mixed case airport codes",
			modify: func(c *SearchCriteria) { c.Origin = "gRu"; c.Destination = "Pty"; c.ReturnDate = "" },
			want: SearchRequest{
				Origin: "GRU", Destination: "PTY", DepartureDate: "2024-03-15", Passengers: 2,
			},
		},
		{
			name:     "missing origin",
			modify:   func(c *SearchCriteria) { c.Origin = "" },
			wantKind: ErrMissingField,
			field:    "origin",
		},
		{
			name:     "missing destination",
			modify:   func(c *SearchCriteria) { c.Destination = "" },
			wantKind: ErrMissingField,
			field:    "destination",
		},
		{
			name:     "missing departure date",
			modify:   func(c *SearchCriteria) { c.DepartureDate = "" },
			wantKind: ErrMissingField,
			field:    "departureDate",
		},
		{
			name:     "long code is not truncated",
			modify:   func(c *SearchCriteria) { c.Origin = "guarulhos" },
			wantKind: ErrInvalidAirportCode,
			field:    "origin",
		},
		{
			name:     "code with whitespace rejected",
			modify:   func(c *SearchCriteria) { c.Origin = " gru" },
			wantKind: ErrInvalidAirportCode,
			field:    "origin",
		},
		{
			name:     "code with digits rejected",
			modify:   func(c *SearchCriteria) { c.Destination = "PT1" },
			wantKind: ErrInvalidAirportCode,
			field:    "destination",
		},
		{
			name:     "dotless i does not fold into a code",
			modify:   func(c *SearchCriteria) { c.Origin = "ıst" },
			wantKind: ErrInvalidAirportCode,
			field:    "origin",
		},
		{
			name:     "long s does not fold into a code",
			modify:   func(c *SearchCriteria) { c.Destination = "ſſſ" },
			wantKind: ErrInvalidAirportCode,
			field:    "destination",
		},
		{
			name:     "same origin and destination",
			modify:   func(c *SearchCriteria) { c.Destination = "GRU" },
			wantKind: ErrInvalidAirportCode,
			field:    "destination",
		},
		{
			name:     "bad departure date",
			modify:   func(c *SearchCriteria) { c.DepartureDate = "15/03/2024" },
			wantKind: ErrInvalidDate,
			field:    "departureDate",
		},
		{
			name:     "impossible calendar date",
			modify:   func(c *SearchCriteria) { c.DepartureDate = "2024-02-30" },
			wantKind: ErrInvalidDate,
			field:    "departureDate",
		},
		{
			name:     "bad return date",
			modify:   func(c *SearchCriteria) { c.ReturnDate = "next week" },
			wantKind: ErrInvalidDate,
			field:    "returnDate",
		},
		{
			name:     "return before departure",
			modify:   func(c *SearchCriteria) { c.ReturnDate = "2024-03-14" },
			wantKind: ErrInvalidDate,
			field:    "returnDate",
		},
		{
			name:     "non numeric passengers",
			modify:   func(c *SearchCriteria) { c.Passengers = "two" },
			wantKind: ErrInvalidPassengerCount,
			field:    "passengers",
		},
		{
			name:     "zero passengers",
			modify:   func(c *SearchCriteria) { c.Passengers = "0" },
			wantKind: ErrInvalidPassengerCount,
			field:    "passengers",
		},
		{
			name:     "too many passengers",
			modify:   func(c *SearchCriteria) { c.Passengers = "10" },
			wantKind: ErrInvalidPassengerCount,
			field:    "passengers",
		},
		{
			name:     "decimal below one",
			modify:   func(c *SearchCriteria) { c.Passengers = "0.5" },
			wantKind: ErrInvalidPassengerCount,
			field:    "passengers",
		},
		{
			name:     "NaN passengers",
			modify:   func(c *SearchCriteria) { c.Passengers = "NaN" },
			wantKind: ErrInvalidPassengerCount,
			field:    "passengers",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCriteria()
			tt.modify(&c)

			got, err := Normalize(c)

			if tt.wantKind == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantKind), "expected %v, got %v", tt.wantKind, err)
			assert.True(t, errors.Is(err, ErrInvalidRequest))
			assert.Equal(t, SearchRequest{}, got)

			var verrs *ValidationErrors
			require.True(t, errors.As(err, &verrs))
			assert.Contains(t, verrs.ToMap(), tt.field)
		})
	}
}

func TestNormalize_CollectsAllViolations(t *testing.T) {
	_, err := Normalize(SearchCriteria{Origin: "x", Passengers: "abc"})

	var verrs *ValidationErrors
	require.True(t, errors.As(err, &verrs))

	fields := make([]string, 0, len(verrs.Errors))
	for _, e := range verrs.Errors {
		fields = append(fields, e.Field)
	}
	assert.Equal(t, []string{"origin", "destination", "departureDate", "passengers"}, fields)
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []SearchCriteria{
		{Origin: "gru", Destination: "pty", DepartureDate: "2024-03-15"},
		{Origin: "GIG", Destination: "lis", DepartureDate: "2024-06-01", ReturnDate: "2024-06-20", Passengers: "4.9"},
		{Origin: "bsb", Destination: "MIA", DepartureDate: "2024-12-24", Passengers: "9"},
	}

	for _, in := range inputs {
		first, err := Normalize(in)
		require.NoError(t, err)

		second, err := Normalize(first.Criteria())
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestSearchRequest_IsRoundTrip(t *testing.T) {
	assert.False(t, SearchRequest{}.IsRoundTrip())
	assert.True(t, SearchRequest{ReturnDate: strPtr("2024-03-22")}.IsRoundTrip())
}

func TestNormalizeAirportCode(t *testing.T) {
	code, err := NormalizeAirportCode("origin", "gru")
	require.NoError(t, err)
	assert.Equal(t, "GRU", code)

	_, err = NormalizeAirportCode("origin", "")
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = NormalizeAirportCode("destination", "GRUX")
	assert.ErrorIs(t, err, ErrInvalidAirportCode)

	for _, raw := range []string{"ıst", "ſſſ", "GRÜ", "ＧＲＵ"} {
		_, err = NormalizeAirportCode("origin", raw)
		assert.ErrorIs(t, err, ErrInvalidAirportCode, raw)
	}
}

func TestNormalizeRoute(t *testing.T) {
	q, err := NormalizeRoute("gru", "pty", 30)
	require.NoError(t, err)
	assert.Equal(t, RouteQuery{Origin: "GRU", Destination: "PTY", DaysBack: 30}, q)
	assert.Equal(t, "GRU-PTY", q.Route())

	tests := []struct {
		name        string
		origin      string
		destination string
		daysBack    int
		field       string
	}{
		{"missing origin", "", "PTY", 30, "origin"},
		{"bad destination", "GRU", "PANAMA", 30, "destination"},
		{"same airport", "gru", "GRU", 30, "destination"},
		{"zero days", "GRU", "PTY", 0, "days_back"},
		{"over a year", "GRU", "PTY", 366, "days_back"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeRoute(tt.origin, tt.destination, tt.daysBack)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidRequest)
			var verrs *ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), tt.field)
		})
	}
}
