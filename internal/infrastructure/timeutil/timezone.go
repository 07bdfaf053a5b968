// Package timeutil provides the clock abstraction and display time zone
// helpers used by the dashboard.
package timeutil

import (
	"fmt"
	"strings"
	"sync"
	"time"

	// Embedded zone database so display zones resolve on minimal images.
	_ "time/tzdata"
)

// locationCache stores loaded time zones by name.
var locationCache sync.Map

// Time zones the dashboard is commonly configured with.
const (
	UTC = "UTC"

	// SaoPaulo is Brasília Time, the default display zone.
	SaoPaulo = "America/Sao_Paulo"

	// Panama is the Copa Airlines hub zone.
	Panama = "America/Panama"

	// Lisbon is Western European Time.
	Lisbon = "Europe/Lisbon"
)

// GetLocation returns a cached time zone location.
func GetLocation(name string) (*time.Location, error) {
	if loc, ok := locationCache.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	locationCache.Store(name, loc)
	return loc, nil
}

// MustGetLocation returns a cached time zone location or panics on error.
// Use this for the constants above.
func MustGetLocation(name string) *time.Location {
	loc, err := GetLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// DisplayLocation resolves the configured display zone. An empty name or
// "Local" selects the host zone.
func DisplayLocation(name string) (*time.Location, error) {
	switch strings.TrimSpace(name) {
	case "", "Local":
		return time.Local, nil
	}
	return GetLocation(strings.TrimSpace(name))
}

// FormatDate formats a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// DaysAgo returns the calendar date n days before t, as YYYY-MM-DD.
func DaysAgo(t time.Time, n int) string {
	return FormatDate(t.AddDate(0, 0, -n))
}

// ClearLocationCache clears the cached locations. Used by tests.
func ClearLocationCache() {
	locationCache.Range(func(key, _ any) bool {
		locationCache.Delete(key)
		return true
	})
}
