package analytics

import (
	"testing"

	"github.com/celesia/flight-insights/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzePrices_EmptyWithoutFallback(t *testing.T) {
	got := AnalyzePrices(nil, false)

	assert.True(t, got.Empty)
	assert.Nil(t, got.Stats)
	assert.Nil(t, got.Recommendation)
	assert.Equal(t, []domain.Insight{BookingTip}, got.Insights)
	assert.Equal(t, domain.TrendInsufficientData, got.Trend.Direction)
	assert.Empty(t, got.Series)
}

func TestAnalyzePrices_EmptyWithFallback(t *testing.T) {
	got := AnalyzePrices(nil, true)

	assert.False(t, got.Empty)
	require.NotNil(t, got.Stats)
	assert.True(t, got.Stats.FromSample)
	assert.Len(t, got.Series, 7)
	require.Len(t, got.Insights, 2)
	assert.Equal(t, domain.AdvisoryWait, got.Insights[0].Kind)
	require.NotNil(t, got.Recommendation)
	assert.Equal(t, ActionFlexible, got.Recommendation.Action)
}

func TestAnalyzePrices_RealSeries(t *testing.T) {
	points := series(100, 102, 104, 106)

	got := AnalyzePrices(points, true)

	require.NotNil(t, got.Stats)
	assert.False(t, got.Stats.FromSample)
	assert.Equal(t, points, got.Series)
	assert.Equal(t, domain.AdvisoryBookNow, got.Insights[0].Kind)
	assert.Equal(t, domain.TrendStable, got.Trend.Direction)
}
