package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/beetlebot/flyguide/internal/core"
	"github.com/beetlebot/flyguide/internal/links"
	"github.com/spf13/cobra"
)

func FlightsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flights",
		Short: "Search nonstop round-trip fares",
	}
	cmd.AddCommand(flightsSearchCmd())
	return cmd
}

type flightsResult struct {
	*core.FlightResponse
	Links     []links.FlightLinks `json:"links"`
	HistoryID string              `json:"historyId,omitempty"`
}

type flightFlags struct {
	from, to, month   string
	minDays, maxDays  int
	luggage           bool
	outbound, inbound string
	cabin, airline    string
	fromHistory       string
}

func flightsSearchCmd() *cobra.Command {
	var f flightFlags

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search for the cheapest nonstop round trips",
		Example: `  flyguide flights search --from TPE --to osaka --month 2026-05 --min-days 4 --max-days 6
  flyguide flights search --from KHH --to ICN --cabin mixed --airline KE --luggage
  flyguide flights search --from-history 3f6c2a8e-...`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e := setup(cmd)
			store, err := e.historyStore()
			if err != nil {
				e.logger.WithError(err).Warn("search history unavailable")
			}

			var params core.SearchParams
			if f.fromHistory != "" {
				if store == nil {
					return fail(err)
				}
				item, err := store.Get(f.fromHistory)
				if err != nil {
					return fail(core.NewValidationError("from-history", err.Error()))
				}
				params = item.Params
			} else {
				if f.to == "" {
					return cmd.Help()
				}
				params, err = f.params()
				if err != nil {
					return fail(err)
				}
			}
			params.Normalize()
			if err := params.Validate(); err != nil {
				return fail(err)
			}

			pipeline, err := e.pipeline()
			if err != nil {
				return fail(err)
			}
			resp, err := pipeline.SearchFlights(cmd.Context(), params)
			if err != nil {
				return fail(err)
			}

			result := flightsResult{
				FlightResponse: resp,
				Links:          links.Annotate(params.Departure, params.Destination, resp),
			}
			if store != nil {
				if item, err := store.Add(params); err != nil {
					e.logger.WithError(err).Warn("could not record search history")
				} else {
					result.HistoryID = item.ID
				}
			}
			return emit(cmd, result)
		},
	}

	cmd.Flags().StringVar(&f.from, "from", "TPE", "Origin airport: TPE, TSA, RMQ, KHH")
	cmd.Flags().StringVar(&f.to, "to", "", "Destination city or airport code, e.g. osaka, HND, CJU (required)")
	cmd.Flags().StringVar(&f.month, "month", time.Now().AddDate(0, 1, 0).Format("2006-01"), "First month of the three-month search window, YYYY-MM")
	cmd.Flags().IntVar(&f.minDays, "min-days", 3, "Shortest trip length in days")
	cmd.Flags().IntVar(&f.maxDays, "max-days", 5, "Longest trip length in days")
	cmd.Flags().BoolVar(&f.luggage, "luggage", false, "Quote fares with one 20kg checked bag")
	cmd.Flags().StringVar(&f.outbound, "outbound", "6-12", "Outbound departure window in hours, START-END")
	cmd.Flags().StringVar(&f.inbound, "return", "16-23", "Return departure window in hours, START-END")
	cmd.Flags().StringVar(&f.cabin, "cabin", "economy", "Cabin: economy, business, mixed")
	cmd.Flags().StringVar(&f.airline, "airline", "any", "Airline code (CI, BR, JX, IT, ...) or any")
	cmd.Flags().StringVar(&f.fromHistory, "from-history", "", "Re-run a saved search by history ID")

	return cmd
}

func (f flightFlags) params() (core.SearchParams, error) {
	var (
		p   core.SearchParams
		err error
	)
	if p.Departure, err = core.ParseDeparture(f.from); err != nil {
		return p, core.NewValidationError("from", err.Error())
	}
	if p.Destination, err = core.ParseDestination(f.to); err != nil {
		return p, core.NewValidationError("to", err.Error())
	}
	if p.OutboundTime, err = parseWindow(f.outbound); err != nil {
		return p, core.NewValidationError("outbound", err.Error())
	}
	if p.ReturnTime, err = parseWindow(f.inbound); err != nil {
		return p, core.NewValidationError("return", err.Error())
	}
	if p.CabinClass, err = core.ParseCabinClass(f.cabin); err != nil {
		return p, core.NewValidationError("cabin", err.Error())
	}
	if p.Airline, err = core.ParseAirline(f.airline); err != nil {
		return p, core.NewValidationError("airline", err.Error())
	}
	p.StartMonth = f.month
	p.MinDays = f.minDays
	p.MaxDays = f.maxDays
	p.HasLuggage = f.luggage
	return p, nil
}

// parseWindow reads "6-12" as departures between 06:00 and 12:00.
func parseWindow(s string) (core.TimeRange, error) {
	start, end, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return core.TimeRange{}, fmt.Errorf("window %q must look like START-END", s)
	}
	from, err := strconv.Atoi(strings.TrimSpace(start))
	if err != nil {
		return core.TimeRange{}, fmt.Errorf("window %q: %w", s, err)
	}
	to, err := strconv.Atoi(strings.TrimSpace(end))
	if err != nil {
		return core.TimeRange{}, fmt.Errorf("window %q: %w", s, err)
	}
	return core.TimeRange{Start: from, End: to}, nil
}
