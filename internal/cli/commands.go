package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/celesia/flight-insights/internal/domain"
	"github.com/celesia/flight-insights/internal/infrastructure/timeutil"
	"github.com/celesia/flight-insights/internal/usecase"
)

func newSearchCommand(a *app) *cobra.Command {
	var (
		returnDate string
		passengers string
		sortBy     string
		maxPrice   float64
		maxStops   int
		airlines   []string
	)

	cmd := &cobra.Command{
		Use:   "search ORIGIN DESTINATION DATE",
		Short: "Search flights and summarize the route's price history",
		Example: `  dashctl search gru pty 2025-12-15
  dashctl search GRU PTY 2025-12-15 --return 2025-12-22 --passengers 2 --sort price`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.buildDeps(cmd)
			if err != nil {
				return err
			}

			opts := usecase.SearchOptions{SortBy: domain.ParseSortOption(sortBy)}
			if cmd.Flags().Changed("max-price") || cmd.Flags().Changed("max-stops") || len(airlines) > 0 {
				opts.Filters = &domain.FilterOptions{Airlines: airlines}
				if cmd.Flags().Changed("max-price") {
					opts.Filters.MaxPrice = &maxPrice
				}
				if cmd.Flags().Changed("max-stops") {
					opts.Filters.MaxStops = &maxStops
				}
			}

			resp, err := d.useCase.Search(cmd.Context(), domain.SearchCriteria{
				Origin:        args[0],
				Destination:   args[1],
				DepartureDate: args[2],
				ReturnDate:    returnDate,
				Passengers:    passengers,
			}, opts)
			if err != nil {
				return describeError(err)
			}

			w := cmd.OutOrStdout()
			if a.flags.JSON {
				return writeJSON(w, resp)
			}
			return renderSearch(w, resp)
		},
	}

	f := cmd.Flags()
	f.StringVar(&returnDate, "return", "", "return date (YYYY-MM-DD); omit for one-way")
	f.StringVar(&passengers, "passengers", "", "passenger count 1-9 (default 1)")
	f.StringVar(&sortBy, "sort", "", "relevance|best|price|score|duration|departure")
	f.Float64Var(&maxPrice, "max-price", 0, "drop offers priced above this amount")
	f.IntVar(&maxStops, "max-stops", 0, "drop offers with more stops (0 = direct only)")
	f.StringSliceVar(&airlines, "airline", nil, "keep only these airlines (repeatable)")
	return cmd
}

func newTrendsCommand(a *app) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:     "trends ORIGIN DESTINATION",
		Short:   "Analyze the price history of a route",
		Example: `  dashctl trends GRU PTY --days 60`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.buildDeps(cmd)
			if err != nil {
				return err
			}

			report, err := d.useCase.PriceTrends(cmd.Context(), args[0], args[1], days)
			if err != nil {
				return describeError(err)
			}

			w := cmd.OutOrStdout()
			if a.flags.JSON {
				return writeJSON(w, report)
			}
			since := timeutil.DaysAgo(d.clock.Now().In(d.loc), report.DaysBack)
			fmt.Fprintf(w, "Route %s, history since %s\n", report.Route, since)
			if report.Failed {
				fmt.Fprintln(w, "Price history unavailable from the flight search service.")
			}
			return renderAnalysis(w, report.Analysis)
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "history window in days, 1-365 (default TRENDS_DAYS_BACK)")
	return cmd
}

func newSummarizeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summarize FILE",
		Short: "Analyze a saved price history offline",
		Long: `summarize reads {"historical_data": [...]} JSON, as returned by the flight
search service, from FILE or from stdin when FILE is "-".`,
		Example: `  dashctl summarize history.json
  curl -s $UPSTREAM/api/v1/flights/routes/GRU/PTY/trends | dashctl summarize -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.buildDeps(cmd)
			if err != nil {
				return err
			}

			points, err := readHistory(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			analysis := d.useCase.Summarize(points)
			w := cmd.OutOrStdout()
			if a.flags.JSON {
				return writeJSON(w, analysis)
			}
			return renderAnalysis(w, analysis)
		},
	}
}

func newCompareCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare FILE",
		Short: "Compare saved offers by booking source",
		Long: `compare reads {"flights": [...]} JSON, as returned by the flight search
service, from FILE or from stdin when FILE is "-", and compares prices per
booking source.`,
		Example: `  dashctl compare offers.json
  dashctl compare - < offers.json --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.buildDeps(cmd)
			if err != nil {
				return err
			}

			var doc struct {
				Flights []domain.FlightOffer `json:"flights"`
			}
			if err := readInput(cmd.InOrStdin(), args[0], "offers", &doc); err != nil {
				return err
			}

			cmp := d.useCase.CompareSources(doc.Flights)
			w := cmd.OutOrStdout()
			if a.flags.JSON {
				return writeJSON(w, cmp)
			}
			renderSources(w, cmp)
			return nil
		},
	}
}

// readHistory decodes a price history document from path, or from stdin
// when path is "-".
func readHistory(stdin io.Reader, path string) ([]domain.PricePoint, error) {
	var doc struct {
		HistoricalData []domain.PricePoint `json:"historical_data"`
	}
	if err := readInput(stdin, path, "history", &doc); err != nil {
		return nil, err
	}
	return doc.HistoricalData, nil
}

// readInput decodes the JSON document at path, or on stdin when path is "-",
// into v. what names the document in errors.
func readInput(stdin io.Reader, path, what string, v any) error {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening %s: %w", what, err)
		}
		defer f.Close()
		r = f
	}

	if err := json.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("decoding %s: %w", what, err)
	}
	return nil
}

// describeError flattens validation errors into one line per field.
func describeError(err error) error {
	var verrs *domain.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msg := "invalid search:"
	for _, fe := range verrs.Errors {
		msg += fmt.Sprintf("\n  %s: %s", fe.Field, fe.Message)
	}
	return errors.New(msg)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
