package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/recipebox/internal/handler"
	"github.com/deppfellow/recipebox/internal/middleware"
	"github.com/deppfellow/recipebox/static"
)

// registerSystemRoutes adds the operational routes. They are not rate
// limited so probes and scrapers are never rejected.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers, mw *middleware.Middlewares) {
	r.GET("/status", h.Health.CheckHealth)

	r.GET("/metrics", echo.WrapHandler(mw.Metrics.Handler()))

	r.StaticFS("/static", static.Files)

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
