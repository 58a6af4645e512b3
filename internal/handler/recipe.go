package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/recipebox/internal/model"
	"github.com/deppfellow/recipebox/internal/server"
	"github.com/deppfellow/recipebox/internal/service"
)

type RecipeHandler struct {
	Handler
	recipeService *service.RecipeService
}

func NewRecipeHandler(s *server.Server, recipeService *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{
		Handler:       NewHandler(s),
		recipeService: recipeService,
	}
}

func (h *RecipeHandler) CreateRecipe(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, payload *model.CreateRecipePayload) (*model.CreatedResponse, error) {
		return h.recipeService.Create(c.Request().Context(), payload)
	}, http.StatusCreated, &model.CreateRecipePayload{})(c)
}

func (h *RecipeHandler) ListRecipes(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, _ *model.EmptyPayload) ([]model.RecipeWithAuthor, error) {
		return h.recipeService.List(c.Request().Context())
	}, http.StatusOK, &model.EmptyPayload{})(c)
}

func (h *RecipeHandler) ListMyRecipes(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, payload *model.UserIDPathPayload) ([]model.UserRecipe, error) {
		return h.recipeService.ListByUser(c.Request().Context(), payload.UserID)
	}, http.StatusOK, &model.UserIDPathPayload{})(c)
}
