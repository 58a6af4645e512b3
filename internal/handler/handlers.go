package handler

import (
	"github.com/deppfellow/recipebox/internal/server"
	"github.com/deppfellow/recipebox/internal/service"
)

// Handlers groups every route handler the router registers.
type Handlers struct {
	Root     *RootHandler
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
	User     *UserHandler
	Recipe   *RecipeHandler
	Favorite *FavoriteHandler
	Upload   *UploadHandler
}

// NewHandlers builds the handlers on top of the service layer.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Root:     NewRootHandler(s),
		Health:   NewHealthHandler(s),
		OpenAPI:  NewOpenAPIHandler(s),
		User:     NewUserHandler(s, services.User),
		Recipe:   NewRecipeHandler(s, services.Recipe),
		Favorite: NewFavoriteHandler(s, services.Favorite),
		Upload:   NewUploadHandler(s, services.Upload),
	}
}
