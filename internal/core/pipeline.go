package core

import (
	"context"
	"errors"
	"io"

	"github.com/sirupsen/logrus"
)

// Pipeline runs compile -> generate -> extract -> parse for one query at a
// time. It holds no per-run state, so concurrent runs are independent.
type Pipeline struct {
	gen    Generator
	logger *logrus.Logger
}

func NewPipeline(gen Generator, logger *logrus.Logger) *Pipeline {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	return &Pipeline{gen: gen, logger: logger}
}

// SearchFlights runs the flight pipeline. Params are expected to be validated
// by the caller.
func (p *Pipeline) SearchFlights(ctx context.Context, params SearchParams) (*FlightResponse, error) {
	q := CompileFlightQuery(params)
	log := p.logger.WithFields(logrus.Fields{
		"pipeline":    "flights",
		"departure":   params.Departure,
		"destination": params.Destination,
	})

	raw, err := p.generate(ctx, log, q)
	if err != nil {
		return nil, err
	}

	block, err := ExtractBlock(raw)
	if err != nil {
		return nil, p.unreadable(log, raw, err)
	}
	resp, err := ParseFlights(block)
	if err != nil {
		return nil, p.unreadable(log, raw, err)
	}

	log.WithField("flights", len(resp.Flights)).Info("flight search completed")
	return resp, nil
}

// SearchGuide runs the guide pipeline for any of the three modes.
func (p *Pipeline) SearchGuide(ctx context.Context, params TravelParams) (*TravelResponse, error) {
	q := CompileGuideQuery(params)
	log := p.logger.WithFields(logrus.Fields{
		"pipeline":    "guide",
		"mode":        params.Mode,
		"destination": params.Destination,
	})

	raw, err := p.generate(ctx, log, q)
	if err != nil {
		return nil, err
	}

	block, err := ExtractBlock(raw)
	if err != nil {
		return nil, p.unreadable(log, raw, err)
	}
	resp, err := ParseGuide(block, params.Destination)
	if err != nil {
		return nil, p.unreadable(log, raw, err)
	}

	log.WithField("recommendations", len(resp.Recommendations)).Info("guide search completed")
	return resp, nil
}

func (p *Pipeline) generate(ctx context.Context, log *logrus.Entry, q Query) (string, error) {
	prompt := q.Prompt()
	log.WithField("prompt_bytes", len(prompt)).Debug("compiled query")

	raw, err := p.gen.Generate(ctx, prompt)
	if err != nil {
		var ce *Error
		if !errors.As(err, &ce) {
			ce = NewProviderError(err)
		}
		log.WithFields(logrus.Fields{
			"kind":  ce.Kind,
			"error": err,
		}).Warn("provider call failed")
		return "", ce
	}
	log.WithField("response_bytes", len(raw)).Debug("provider responded")
	return raw, nil
}

func (p *Pipeline) unreadable(log *logrus.Entry, raw string, cause error) error {
	log.WithFields(logrus.Fields{
		"raw_bytes": len(raw),
		"error":     cause,
	}).Warn("provider response could not be read")
	return NewUnreadableError(raw, cause)
}
