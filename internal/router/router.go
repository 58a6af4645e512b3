// Package router wires handlers and middleware into the echo router.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/recipebox/internal/handler"
	"github.com/deppfellow/recipebox/internal/middleware"
	"github.com/deppfellow/recipebox/internal/server"
)

// NewRouter builds the echo instance. Global middleware order matters:
// request IDs and the New Relic transaction must exist before the context
// logger is built, and the logger must exist before anything logs.
func NewRouter(s *server.Server, h *handler.Handlers, mw *middleware.Middlewares) *echo.Echo {
	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	router.Use(
		mw.Global.CORS(),
		mw.Global.Secure(),
		middleware.RequestID(),
		mw.Tracing.NewRelicMiddleware(),
		mw.Tracing.EnhanceTracing(),
		mw.ContextEnhancer.EnhanceContext(),
		mw.Metrics.Middleware(),
		mw.Global.RequestLogger(),
		mw.Global.Recover(),
		mw.Global.BodyLimit(),
	)

	registerSystemRoutes(router, h, mw)
	registerAPIRoutes(router, h, mw.RateLimit.Limit())

	return router
}

func registerAPIRoutes(r *echo.Echo, h *handler.Handlers, limit echo.MiddlewareFunc) {
	r.GET("/", h.Root.Root, limit)

	r.POST("/upload/profile-picture", h.Upload.UploadProfilePicture, limit)

	r.POST("/register", h.User.Register, limit)
	r.POST("/login", h.User.Login, limit)

	r.POST("/recipes", h.Recipe.CreateRecipe, limit)
	r.GET("/recipes", h.Recipe.ListRecipes, limit)
	r.GET("/my-recipes/:user_id", h.Recipe.ListMyRecipes, limit)

	r.POST("/favorites", h.Favorite.AddFavorite, limit)
	r.GET("/favorites/:user_id", h.Favorite.ListFavorites, limit)
}
