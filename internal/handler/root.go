package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/recipebox/internal/model"
	"github.com/deppfellow/recipebox/internal/server"
)

const msgAPIRunning = "RecipeBox API is running"

type RootHandler struct {
	Handler
}

func NewRootHandler(s *server.Server) *RootHandler {
	return &RootHandler{Handler: NewHandler(s)}
}

func (h *RootHandler) Root(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, _ *model.EmptyPayload) (*model.MessageResponse, error) {
		return &model.MessageResponse{Message: msgAPIRunning}, nil
	}, http.StatusOK, &model.EmptyPayload{})(c)
}
