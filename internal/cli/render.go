package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/celesia/flight-insights/internal/domain"
)

func newTable(w io.Writer, header []string) *tablewriter.Table {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(header)
	tw.SetBorder(true)
	tw.SetRowLine(false)
	tw.SetAutoFormatHeaders(false)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAutoWrapText(false)
	return tw
}

// renderSearch prints the offers table, then the route's price analysis.
func renderSearch(w io.Writer, resp *domain.SearchResponse) error {
	req := resp.Request
	trip := "one-way"
	if req.IsRoundTrip() {
		trip = "return " + *req.ReturnDate
	}
	fmt.Fprintf(w, "%s → %s on %s (%s), %d passenger(s)\n",
		req.Origin, req.Destination, req.DepartureDate, trip, req.Passengers)

	if resp.Metadata.OffersFailed {
		fmt.Fprintln(w, "Flight search service unavailable; showing price history only.")
	}
	if resp.Notice != "" {
		fmt.Fprintln(w, resp.Notice)
	} else {
		renderOffers(w, resp.Offers)
	}
	if resp.Metadata.WarningCount > 0 {
		fmt.Fprintf(w, "%d field(s) rendered with fallbacks; use --json for details.\n", resp.Metadata.WarningCount)
	}
	if len(resp.Sources.Sources) > 1 {
		fmt.Fprintln(w)
		renderSources(w, resp.Sources)
	}

	fmt.Fprintln(w)
	if resp.Metadata.TrendsFailed {
		fmt.Fprintln(w, "Price history unavailable from the flight search service.")
	}
	return renderAnalysis(w, resp.Prices)
}

func renderOffers(w io.Writer, offers []domain.OfferView) {
	tw := newTable(w, []string{"AIRLINE", "FLIGHT", "DEPART", "ARRIVE", "STOPS", "DURATION", "PRICE", "AI SCORE"})
	tw.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})
	for _, o := range offers {
		tw.Append([]string{
			o.Airline,
			o.FlightNumber,
			o.Departure,
			o.Arrival,
			dash(o.Stops),
			dash(o.Duration),
			o.Price,
			dash(o.Score),
		})
	}
	tw.Render()

	for _, o := range offers {
		if len(o.Recommendations) > 0 {
			fmt.Fprintf(w, "  %s %s: %s\n", o.Airline, o.FlightNumber, strings.Join(o.Recommendations, "; "))
		}
	}
}

// renderSources prints one row per booking source, cheapest average first,
// then the best deal and the advice.
func renderSources(w io.Writer, cmp domain.SourceComparison) {
	if cmp.Empty {
		fmt.Fprintln(w, cmp.Recommendation)
		return
	}

	tw := newTable(w, []string{"SOURCE", "FLIGHTS", "AVERAGE", "MIN", "MAX", "QUALITY"})
	tw.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})
	for _, s := range cmp.Sources {
		tw.Append([]string{
			s.Source,
			fmt.Sprintf("%d/%d", s.FlightCount, s.TotalOffers),
			fmtAmount(s.AveragePrice),
			fmtAmount(s.MinPrice),
			fmtAmount(s.MaxPrice),
			fmt.Sprintf("%.0f%%", s.DataQuality*100),
		})
	}
	tw.Render()

	if d := cmp.BestDeal; d != nil {
		fmt.Fprintf(w, "Best deal: %s %s at %s\n", d.Airline, d.FlightNumber, d.Price)
	}
	if len(cmp.Sources) > 1 {
		fmt.Fprintf(w, "Spread between source averages: %s\n", fmtAmount(cmp.PriceSpread))
	}
	fmt.Fprintln(w, cmp.Recommendation)
}

// renderAnalysis prints price statistics as a key/value table followed by
// the insights.
func renderAnalysis(w io.Writer, a domain.PriceAnalysis) error {
	if a.Empty || a.Stats == nil {
		fmt.Fprintln(w, "No price history available.")
		printInsights(w, a.Insights)
		return nil
	}

	s := a.Stats
	rows := [][]string{
		{"data points", fmt.Sprintf("%d", s.Count)},
		{"average", fmt.Sprintf("%d", s.AverageRounded)},
		{"min", fmtAmount(s.Min)},
		{"max", fmtAmount(s.Max)},
		{"median", fmtAmount(s.Median)},
		{"std dev", fmtAmount(s.StdDev)},
		{"volatility (cv)", fmt.Sprintf("%.3f", s.CoefficientOfVariation)},
		{"trend", trendLabel(a.Trend)},
	}
	if a.Recommendation != nil {
		rows = append(rows, []string{"recommendation",
			fmt.Sprintf("%s (%s confidence)", a.Recommendation.Action, a.Recommendation.Confidence)})
	}
	if s.FromSample {
		rows = append(rows, []string{"source", "sample data"})
	}

	tw := newTable(w, []string{"PRICE STAT", "VALUE"})
	tw.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	tw.AppendBulk(rows)
	tw.Render()

	if a.Recommendation != nil {
		fmt.Fprintln(w, a.Recommendation.Reason)
	}
	printInsights(w, a.Insights)
	return nil
}

func printInsights(w io.Writer, insights []domain.Insight) {
	for _, in := range insights {
		fmt.Fprintf(w, "• %s\n", in.Text)
	}
}

func trendLabel(t domain.TrendAnalysis) string {
	switch t.Direction {
	case domain.TrendIncreasing, domain.TrendDecreasing:
		return fmt.Sprintf("%s (%.1f%%)", t.Direction, t.Strength*100)
	case domain.TrendInsufficientData:
		return "insufficient data"
	default:
		return string(t.Direction)
	}
}

func fmtAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
