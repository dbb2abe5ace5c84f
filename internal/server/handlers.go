package server

import (
	"net/http"

	"github.com/beetlebot/flyguide/internal/core"
	"github.com/beetlebot/flyguide/internal/links"
	"github.com/beetlebot/flyguide/internal/output"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type flightSearchResponse struct {
	*core.FlightResponse
	Links     []links.FlightLinks `json:"links"`
	HistoryID string              `json:"historyId,omitempty"`
}

type guideSearchResponse struct {
	*core.TravelResponse
	MapEmbedURL string `json:"mapEmbedUrl"`
}

func (s *Server) health(c echo.Context) error {
	report := s.router.Doctor()
	return c.JSON(http.StatusOK, map[string]any{
		"status":  "ok",
		"mode":    report.Mode,
		"healthy": report.Healthy,
	})
}

func (s *Server) searchFlights(c echo.Context) error {
	var params core.SearchParams
	if err := c.Bind(&params); err != nil {
		return s.fail(c, core.NewValidationError("body", err.Error()))
	}
	params.Normalize()
	if err := params.Validate(); err != nil {
		return s.fail(c, err)
	}

	provider, err := s.router.Active()
	if err != nil {
		return s.fail(c, err)
	}
	resp, err := core.NewPipeline(provider, s.logger).SearchFlights(c.Request().Context(), params)
	if err != nil {
		return s.fail(c, err)
	}

	out := flightSearchResponse{
		FlightResponse: resp,
		Links:          links.Annotate(params.Departure, params.Destination, resp),
	}
	if s.history != nil {
		item, err := s.history.Add(params)
		if err != nil {
			s.logger.WithError(err).Warn("could not record search history")
		} else {
			out.HistoryID = item.ID
		}
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) searchGuide(c echo.Context) error {
	var params core.TravelParams
	if err := c.Bind(&params); err != nil {
		return s.fail(c, core.NewValidationError("body", err.Error()))
	}
	params.Normalize()
	if err := params.Validate(); err != nil {
		return s.fail(c, err)
	}

	provider, err := s.router.Active()
	if err != nil {
		return s.fail(c, err)
	}
	resp, err := core.NewPipeline(provider, s.logger).SearchGuide(c.Request().Context(), params)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, guideSearchResponse{
		TravelResponse: resp,
		MapEmbedURL:    links.MapEmbedURL(resp.MapCenter),
	})
}

func (s *Server) listHistory(c echo.Context) error {
	if s.history == nil {
		return c.JSON(http.StatusOK, []any{})
	}
	items, err := s.history.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, output.ErrorResponse{Error: "could not read history", Details: err.Error()})
	}
	return c.JSON(http.StatusOK, items)
}

func (s *Server) fail(c echo.Context, err error) error {
	resp := output.NewErrorResponse(err)
	status := statusFor(resp.Kind)
	s.logger.WithFields(logrus.Fields{
		"request_id": requestIDFrom(c),
		"kind":       resp.Kind,
		"status":     status,
	}).Warn(resp.Details)
	return c.JSON(status, resp)
}

func statusFor(kind core.ErrorKind) int {
	switch kind {
	case core.KindValidation:
		return http.StatusBadRequest
	case core.KindRateLimited:
		return http.StatusTooManyRequests
	case core.KindMissingCredential:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}
