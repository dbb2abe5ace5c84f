package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/beetlebot/flyguide/internal/config"
	"github.com/beetlebot/flyguide/internal/core"
	"github.com/beetlebot/flyguide/internal/output"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const contextKeyRequestID = "request_id"

// RequestID injects an identifier for traceability if the caller did not provide one.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Request().Header.Get(echo.HeaderXRequestID)
			if rid == "" {
				rid = uuid.NewString()
			}

			c.Set(contextKeyRequestID, rid)
			c.Response().Header().Set(echo.HeaderXRequestID, rid)

			return next(c)
		}
	}
}

func requestIDFrom(c echo.Context) string {
	rid, _ := c.Get(contextKeyRequestID).(string)
	return rid
}

// Logging writes one structured entry per request.
func Logging(logger *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			logger.WithFields(logrus.Fields{
				"request_id": requestIDFrom(c),
				"method":     c.Request().Method,
				"path":       c.Request().URL.Path,
				"status":     c.Response().Status,
				"latency":    time.Since(start).String(),
			}).Info("request")

			return err
		}
	}
}

// clientLimiter hands out one token bucket per client IP.
type clientLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	rps      float64
	burst    int
}

func newClientLimiter(cfg config.RateLimitConfig) *clientLimiter {
	return &clientLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      cfg.RequestsPerSecond,
		burst:    cfg.Burst,
	}
}

func (l *clientLimiter) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters[ip]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(l.rps), l.burst)
		l.limiters[ip] = limiter
	}
	return limiter
}

// RateLimit rejects search requests once a client exhausts its bucket. A
// non-positive rate disables limiting.
func RateLimit(cfg config.RateLimitConfig) echo.MiddlewareFunc {
	if cfg.RequestsPerSecond <= 0 || cfg.Burst <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	limiters := newClientLimiter(cfg)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiters.get(c.RealIP()).Allow() {
				return c.JSON(http.StatusTooManyRequests, output.ErrorResponse{
					Error: "too many requests",
					Kind:  core.KindRateLimited,
				})
			}
			return next(c)
		}
	}
}
