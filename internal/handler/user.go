package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/recipebox/internal/model"
	"github.com/deppfellow/recipebox/internal/server"
	"github.com/deppfellow/recipebox/internal/service"
)

// UserHandler serves registration and login.
type UserHandler struct {
	Handler
	userService *service.UserService
}

func NewUserHandler(s *server.Server, userService *service.UserService) *UserHandler {
	return &UserHandler{
		Handler:     NewHandler(s),
		userService: userService,
	}
}

func (h *UserHandler) Register(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, payload *model.RegisterUserPayload) (*model.CreatedResponse, error) {
		return h.userService.Register(c.Request().Context(), payload)
	}, http.StatusCreated, &model.RegisterUserPayload{})(c)
}

func (h *UserHandler) Login(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, payload *model.LoginPayload) (*model.User, error) {
		return h.userService.Login(c.Request().Context(), payload)
	}, http.StatusOK, &model.LoginPayload{})(c)
}
