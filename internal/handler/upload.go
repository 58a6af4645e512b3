package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/recipebox/internal/errs"
	"github.com/deppfellow/recipebox/internal/middleware"
	"github.com/deppfellow/recipebox/internal/server"
	"github.com/deppfellow/recipebox/internal/service"
)

const (
	profilePictureField = "file"
	msgNoFileProvided   = "No file provided"
)

// UploadHandler serves profile picture uploads.
type UploadHandler struct {
	Handler
	uploadService *service.UploadService
}

func NewUploadHandler(s *server.Server, uploadService *service.UploadService) *UploadHandler {
	return &UploadHandler{
		Handler:       NewHandler(s),
		uploadService: uploadService,
	}
}

// UploadProfilePicture reads the multipart "file" field and stores it in
// the blob store. It does not go through Handle because the body is not
// bound into a payload struct.
func (h *UploadHandler) UploadProfilePicture(c echo.Context) error {
	logger := middleware.GetLogger(c).With().
		Str("operation", "upload_profile_picture").
		Logger()

	fileHeader, err := c.FormFile(profilePictureField)
	if err != nil {
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) && echoErr.Code == http.StatusRequestEntityTooLarge {
			return err
		}

		logger.Warn().Err(err).Msg("profile picture missing from request")
		return errs.NewBadRequestError(msgNoFileProvided, true, nil, []errs.FieldError{
			{Field: profilePictureField, Error: "is required"},
		}, nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("failed to open uploaded file")
		return errs.NewInternalServerError()
	}
	defer file.Close()

	resp, err := h.uploadService.UploadProfilePicture(c.Request().Context(), fileHeader.Filename, fileHeader.Size, file)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}
