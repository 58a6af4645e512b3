package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/recipebox/internal/model"
	"github.com/deppfellow/recipebox/internal/server"
	"github.com/deppfellow/recipebox/internal/service"
)

type FavoriteHandler struct {
	Handler
	favoriteService *service.FavoriteService
}

func NewFavoriteHandler(s *server.Server, favoriteService *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		Handler:         NewHandler(s),
		favoriteService: favoriteService,
	}
}

func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, payload *model.AddFavoritePayload) (*model.MessageResponse, error) {
		return h.favoriteService.Add(c.Request().Context(), payload)
	}, http.StatusCreated, &model.AddFavoritePayload{})(c)
}

func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, payload *model.UserIDPathPayload) ([]model.FavoriteRecipe, error) {
		return h.favoriteService.ListByUser(c.Request().Context(), payload.UserID)
	}, http.StatusOK, &model.UserIDPathPayload{})(c)
}
