// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives validated
// payloads, runs one repository or storage operation and decides which
// application error a failure becomes. Internal error details are logged
// here and never returned to clients.
package service

import (
	"fmt"

	"github.com/deppfellow/recipebox/internal/lib/job"
	"github.com/deppfellow/recipebox/internal/repository"
	"github.com/deppfellow/recipebox/internal/server"
)

// Services groups the business services used by the handlers.
type Services struct {
	User     *UserService
	Recipe   *RecipeService
	Favorite *FavoriteService
	Upload   *UploadService
	Job      *job.JobService
}

// NewServices wires services to the repositories. Without a job service
// the welcome email is skipped.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	var notifier WelcomeNotifier = noopNotifier{}
	if s.Job != nil {
		notifier = s.Job
	}

	userService, err := NewUserService(repos.User, notifier, s.Config.Storage.DefaultProfileImageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	return &Services{
		User:     userService,
		Recipe:   NewRecipeService(repos.Recipe),
		Favorite: NewFavoriteService(repos.Favorite),
		Upload:   NewUploadService(s.Storage),
		Job:      s.Job,
	}, nil
}
