package analytics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/celesia/flight-insights/internal/domain"
)

// NoSourceDataRecommendation is the comparison advice when no source had a
// priced offer.
const NoSourceDataRecommendation = "No data available for comparison"

// CompareSources groups offers by booking source and compares their prices.
// Offers without a usable source are grouped under domain.UnknownSource.
// Only positive prices count toward the figures; a source with no priced
// offer is left out. Amounts are compared as sent, whatever their currency.
//
// Sources are ordered by average price with ties broken by name, so the
// result does not depend on the order of offers except for which of two
// equally cheap offers becomes the best deal.
func CompareSources(offers []domain.FlightOffer, loc *time.Location) domain.SourceComparison {
	type group struct {
		total  int
		prices []float64
	}

	groups := make(map[string]*group)
	best := -1
	var bestPrice float64
	for i, o := range offers {
		name := sourceName(o)
		g, ok := groups[name]
		if !ok {
			g = &group{}
			groups[name] = g
		}
		g.total++

		p, ok := o.Price.Get()
		if !ok || p <= 0 {
			continue
		}
		g.prices = append(g.prices, p)
		if best < 0 || p < bestPrice {
			best, bestPrice = i, p
		}
	}

	cmp := domain.SourceComparison{Sources: []domain.SourceStats{}}
	for name, g := range groups {
		if len(g.prices) == 0 {
			continue
		}
		sort.Float64s(g.prices)
		minP, maxP := g.prices[0], g.prices[len(g.prices)-1]
		cmp.Sources = append(cmp.Sources, domain.SourceStats{
			Source:       name,
			FlightCount:  len(g.prices),
			TotalOffers:  g.total,
			AveragePrice: meanF(g.prices),
			MinPrice:     minP,
			MaxPrice:     maxP,
			PriceRange:   maxP - minP,
			DataQuality:  float64(len(g.prices)) / float64(g.total),
		})
		cmp.TotalFlightsFound += len(g.prices)
	}

	if len(cmp.Sources) == 0 {
		cmp.Empty = true
		cmp.Recommendation = NoSourceDataRecommendation
		return cmp
	}

	sort.Slice(cmp.Sources, func(i, j int) bool {
		a, b := cmp.Sources[i], cmp.Sources[j]
		if a.AveragePrice != b.AveragePrice {
			return a.AveragePrice < b.AveragePrice
		}
		return a.Source < b.Source
	})

	cheapest := cmp.Sources[0]
	cmp.BestPriceSource = cheapest.Source
	cmp.BestAveragePrice = cheapest.AveragePrice
	cmp.PriceSpread = cmp.Sources[len(cmp.Sources)-1].AveragePrice - cheapest.AveragePrice
	cmp.Recommendation = fmt.Sprintf("Consider %s for best average prices", cheapest.Source)

	view := BuildOfferView(offers[best], loc)
	cmp.BestDeal = &view
	return cmp
}

func sourceName(o domain.FlightOffer) string {
	if name := strings.TrimSpace(o.Source.OrElse("")); name != "" {
		return name
	}
	return domain.UnknownSource
}
