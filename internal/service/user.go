package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/deppfellow/recipebox/internal/errs"
	"github.com/deppfellow/recipebox/internal/lib/password"
	"github.com/deppfellow/recipebox/internal/model"
	"github.com/deppfellow/recipebox/internal/sqlerr"
)

const (
	msgUserRegistered     = "User registered"
	msgInvalidCredentials = "Invalid credentials"
)

// UserService registers and authenticates users.
type UserService struct {
	repo                   UserRepository
	notifier               WelcomeNotifier
	defaultProfileImageURL string
	hashParams             password.Params

	// dummyHash is verified against when the username is unknown so a
	// failed login costs the same either way.
	dummyHash string
}

func NewUserService(repo UserRepository, notifier WelcomeNotifier, defaultProfileImageURL string) (*UserService, error) {
	dummyHash, err := password.Hash("recipebox-timing-equalizer")
	if err != nil {
		return nil, fmt.Errorf("failed to prepare login hash: %w", err)
	}

	return &UserService{
		repo:                   repo,
		notifier:               notifier,
		defaultProfileImageURL: defaultProfileImageURL,
		hashParams:             password.DefaultParams,
		dummyHash:              dummyHash,
	}, nil
}

// Register stores a new user with a hashed password and schedules the
// welcome email. Username or email reuse is a 409.
func (s *UserService) Register(ctx context.Context, payload *model.RegisterUserPayload) (*model.CreatedResponse, error) {
	logger := zerolog.Ctx(ctx).With().Str("operation", "register_user").Logger()

	hash, err := password.HashWithParams(payload.Password, s.hashParams)
	if err != nil {
		logger.Error().Err(err).Msg("failed to hash password")
		return nil, errs.NewInternalServerError()
	}

	profileImageURL := s.defaultProfileImageURL
	if payload.ProfileImageURL != nil && *payload.ProfileImageURL != "" {
		profileImageURL = *payload.ProfileImageURL
	}

	id, err := s.repo.Create(ctx, model.NewUser{
		Username:        payload.Username,
		Email:           payload.Email,
		PasswordHash:    hash,
		ProfileImageURL: profileImageURL,
	})
	if err != nil {
		if sqlerr.IsUniqueViolation(err) {
			logger.Info().Str("username", payload.Username).Msg("registration conflict")
			return nil, sqlerr.HandleError(err)
		}
		logger.Error().Err(err).Msg("failed to create user")
		return nil, errs.NewInternalServerError()
	}

	if err := s.notifier.EnqueueWelcomeEmail(ctx, payload.Email, payload.Username); err != nil {
		logger.Warn().Err(err).Int64("user_id", id).Msg("failed to enqueue welcome email")
	}

	logger.Info().Int64("user_id", id).Msg("user registered")

	return &model.CreatedResponse{Message: msgUserRegistered, ID: id}, nil
}

// Login returns the user whose username and password match. Unknown
// usernames and wrong passwords produce the same 401.
func (s *UserService) Login(ctx context.Context, payload *model.LoginPayload) (*model.User, error) {
	logger := zerolog.Ctx(ctx).With().Str("operation", "login").Logger()

	user, err := s.repo.GetByUsername(ctx, payload.Username)
	if err != nil {
		if !sqlerr.IsNotFound(err) {
			logger.Error().Err(err).Msg("failed to look up user")
			return nil, errs.NewInternalServerError()
		}
		_, _ = password.Verify(payload.Password, s.dummyHash)
		return nil, errs.NewUnauthorizedError(msgInvalidCredentials, true)
	}

	ok, err := password.Verify(payload.Password, user.PasswordHash)
	if err != nil {
		logger.Error().Err(err).Int64("user_id", user.ID).Msg("stored password hash is unreadable")
		return nil, errs.NewUnauthorizedError(msgInvalidCredentials, true)
	}
	if !ok {
		return nil, errs.NewUnauthorizedError(msgInvalidCredentials, true)
	}

	return user, nil
}

type noopNotifier struct{}

func (noopNotifier) EnqueueWelcomeEmail(context.Context, string, string) error {
	return nil
}
