package service

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/deppfellow/recipebox/internal/errs"
	"github.com/deppfellow/recipebox/internal/lib/storage"
	"github.com/deppfellow/recipebox/internal/model"
)

const msgUploadFailed = "Failed to upload file"

// UploadService stores profile pictures in the blob store.
type UploadService struct {
	store ObjectStore
}

func NewUploadService(store ObjectStore) *UploadService {
	return &UploadService{store: store}
}

// UploadProfilePicture stores body under a fresh random key that keeps the
// extension of filename. size may be -1 when unknown.
func (s *UploadService) UploadProfilePicture(ctx context.Context, filename string, size int64, body io.Reader) (*model.UploadResponse, error) {
	obj := storage.Object{
		Key:         storage.NewKey(filename),
		ContentType: storage.ContentTypeFor(filename),
		Size:        size,
		Body:        body,
	}

	logger := zerolog.Ctx(ctx).With().
		Str("operation", "upload_profile_picture").
		Str("provider", s.store.Provider()).
		Str("key", obj.Key).
		Str("content_type", obj.ContentType).
		Logger()

	url, err := s.store.Upload(ctx, obj)
	if err != nil {
		logger.Error().Err(err).Str("filename", filename).Msg("failed to upload profile picture")
		return nil, errs.NewInternalServerError().WithMessage(msgUploadFailed)
	}

	logger.Info().Int64("size", size).Msg("profile picture uploaded")

	return &model.UploadResponse{URL: url}, nil
}
