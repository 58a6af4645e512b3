package middleware

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/deppfellow/recipebox/internal/config"
	"github.com/deppfellow/recipebox/internal/errs"
	"github.com/deppfellow/recipebox/internal/server"
)

const (
	rateLimitKeyPrefix    = "recipebox:ratelimit:"
	rateLimitRedisTimeout = 500 * time.Millisecond
	memoryStoreExpiresIn  = 3 * time.Minute
)

// RedisRateLimiterStore is a fixed-window counter shared by every API
// instance. It implements echo's middleware.RateLimiterStore.
type RedisRateLimiterStore struct {
	client redis.Cmdable
	limit  int64
	window time.Duration
	logger *zerolog.Logger
}

func NewRedisRateLimiterStore(client redis.Cmdable, limit int, window time.Duration, logger *zerolog.Logger) *RedisRateLimiterStore {
	return &RedisRateLimiterStore{
		client: client,
		limit:  int64(limit),
		window: window,
		logger: logger,
	}
}

// fixedWindowScript increments the counter and gives it a TTL in one atomic
// step. A key found without a TTL gets one too, so a counter can never
// outlive its window.
var fixedWindowScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 or redis.call("PTTL", KEYS[1]) < 0 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return count
`)

// Allow counts one request for identifier in the current window. Redis
// errors let the request through.
func (s *RedisRateLimiterStore) Allow(identifier string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), rateLimitRedisTimeout)
	defer cancel()

	key := rateLimitKeyPrefix + identifier

	count, err := fixedWindowScript.Run(ctx, s.client, []string{key}, s.window.Milliseconds()).Int64()
	if err != nil {
		s.logger.Warn().Err(err).Msg("rate limit store unavailable, allowing request")
		return true, nil
	}

	return count <= s.limit, nil
}

// RateLimitMiddleware enforces rate_limit.requests per rate_limit.window per
// client IP.
type RateLimitMiddleware struct {
	server  *server.Server
	metrics *MetricsMiddleware
	store   middleware.RateLimiterStore
}

func NewRateLimitMiddleware(s *server.Server, metrics *MetricsMiddleware) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server:  s,
		metrics: metrics,
		store:   newRateLimiterStore(s),
	}
}

func newRateLimiterStore(s *server.Server) middleware.RateLimiterStore {
	cfg := s.Config.RateLimit
	if s.Redis != nil {
		return NewRedisRateLimiterStore(s.Redis, cfg.Requests, cfg.Window, s.Logger)
	}

	return newMemoryRateLimiterStore(cfg)
}

// newMemoryRateLimiterStore spreads the window budget as a token bucket
// with a burst of the full budget.
func newMemoryRateLimiterStore(cfg config.RateLimitConfig) middleware.RateLimiterStore {
	return middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(float64(cfg.Requests) / cfg.Window.Seconds()),
		Burst:     cfg.Requests,
		ExpiresIn: memoryStoreExpiresIn,
	})
}

// Limit returns the limiter, or a pass-through when rate limiting is off.
func (r *RateLimitMiddleware) Limit() echo.MiddlewareFunc {
	cfg := r.server.Config.RateLimit
	if !cfg.Enabled || cfg.Requests <= 0 || cfg.Window <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: r.store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return errs.NewInternalServerError()
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			r.metrics.rateLimitRejects.Inc()
			r.RecordRateLimitHit(c.Path())

			GetLogger(c).Warn().
				Str("identifier", identifier).
				Str("route", c.Path()).
				Msg("rate limit exceeded")

			return errs.NewTooManyRequestsError()
		},
	})
}

// RecordRateLimitHit sends a RateLimitHit custom event to New Relic.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	if app := r.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("RateLimitHit", map[string]any{
			"endpoint": endpoint,
		})
	}
}
