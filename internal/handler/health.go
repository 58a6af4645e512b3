package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/deppfellow/recipebox/internal/middleware"
	"github.com/deppfellow/recipebox/internal/server"
)

const (
	checkDatabase = "database"
	checkRedis    = "redis"

	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
	statusDisabled  = "disabled"
)

var errDependencyMissing = errors.New("dependency not configured")

type databasePinger interface {
	Ping(ctx context.Context) error
}

type redisPinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

type HealthCheck struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time,omitempty"`
}

// HealthResponse is the body of GET /status.
type HealthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]HealthCheck `json:"checks"`
}

type HealthHandler struct {
	Handler
	db    databasePinger
	redis redisPinger
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	h := &HealthHandler{Handler: NewHandler(s)}
	if s.DB != nil {
		h.db = s.DB.Pool
	}
	if s.Redis != nil {
		h.redis = s.Redis
	}
	return h
}

// CheckHealth probes the configured dependencies. A database failure makes
// the service unhealthy (503); a Redis failure is reported but tolerated.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	obs := h.server.Config.Observability

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := HealthResponse{
		Status:      statusHealthy,
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      make(map[string]HealthCheck),
	}

	if obs.HealthCheckEnabled(checkDatabase) {
		check, err := h.probe(c.Request().Context(), obs.HealthChecks.Timeout, func(ctx context.Context) error {
			if h.db == nil {
				return errDependencyMissing
			}
			return h.db.Ping(ctx)
		})
		response.Checks[checkDatabase] = check

		if err != nil {
			response.Status = statusUnhealthy
			logger.Error().Err(err).Str("response_time", check.ResponseTime).Msg("database health check failed")
			h.recordFailure(checkDatabase, err)
		}
	}

	if obs.HealthCheckEnabled(checkRedis) {
		if h.redis == nil {
			response.Checks[checkRedis] = HealthCheck{Status: statusDisabled}
		} else {
			check, err := h.probe(c.Request().Context(), obs.HealthChecks.Timeout, func(ctx context.Context) error {
				return h.redis.Ping(ctx).Err()
			})
			response.Checks[checkRedis] = check

			if err != nil {
				logger.Warn().Err(err).Str("response_time", check.ResponseTime).Msg("redis health check failed")
				h.recordFailure(checkRedis, err)
			}
		}
	}

	if response.Status != statusHealthy {
		logger.Warn().Dur("total_duration", time.Since(start)).Msg("health check failed")
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().Dur("total_duration", time.Since(start)).Msg("health check passed")
	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) probe(parent context.Context, timeout time.Duration, ping func(ctx context.Context) error) (HealthCheck, error) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	start := time.Now()
	err := ping(ctx)

	check := HealthCheck{
		Status:       statusHealthy,
		ResponseTime: time.Since(start).String(),
	}
	if err != nil {
		check.Status = statusUnhealthy
	}
	return check, err
}

func (h *HealthHandler) recordFailure(checkType string, err error) {
	if app := h.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("HealthCheckError", map[string]any{
			"check_type":    checkType,
			"operation":     "health_check",
			"error_type":    checkType + "_unhealthy",
			"error_message": err.Error(),
		})
	}
}
