package commands

import (
	"fmt"

	"github.com/beetlebot/flyguide/internal/core"
	"github.com/beetlebot/flyguide/internal/links"
	"github.com/spf13/cobra"
)

func LinksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "links",
		Short: "Build booking and map links",
	}
	cmd.AddCommand(linksBookingCmd())
	cmd.AddCommand(linksMapCmd())
	return cmd
}

func linksBookingCmd() *cobra.Command {
	var from, to, outbound, inbound string

	cmd := &cobra.Command{
		Use:     "booking",
		Short:   "Skyscanner link for a route and optional dates",
		Example: `  flyguide links booking --from TPE --to osaka --outbound 2026-05-12 --return 2026-05-16`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if to == "" {
				return fmt.Errorf("--to is required")
			}
			dep, err := core.ParseDeparture(from)
			if err != nil {
				return fail(core.NewValidationError("from", err.Error()))
			}
			dest, err := core.ParseDestination(to)
			if err != nil {
				return fail(core.NewValidationError("to", err.Error()))
			}
			flight := core.FlightOption{OutboundDate: outbound, ReturnDate: inbound}
			return emit(cmd, map[string]string{"bookingUrl": links.BookingURL(dep, dest, flight)})
		},
	}

	cmd.Flags().StringVar(&from, "from", "TPE", "Origin airport")
	cmd.Flags().StringVar(&to, "to", "", "Destination city or airport code")
	cmd.Flags().StringVar(&outbound, "outbound", "", "Outbound date YYYY-MM-DD")
	cmd.Flags().StringVar(&inbound, "return", "", "Return date YYYY-MM-DD")
	return cmd
}

func linksMapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "map <location>",
		Short: "Google Maps search and embed links for a location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, map[string]string{
				"mapUrl":      links.MapSearchURL(args[0]),
				"mapEmbedUrl": links.MapEmbedURL(args[0]),
			})
		},
	}
}
