package service

import (
	"context"

	"github.com/deppfellow/recipebox/internal/lib/storage"
	"github.com/deppfellow/recipebox/internal/model"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

// UserRepository is the user storage used by UserService.
type UserRepository interface {
	Create(ctx context.Context, user model.NewUser) (int64, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}

type RecipeRepository interface {
	Create(ctx context.Context, recipe model.NewRecipe) (int64, error)
	ListWithAuthors(ctx context.Context) ([]model.RecipeWithAuthor, error)
	ListByUser(ctx context.Context, userID int64) ([]model.UserRecipe, error)
}

type FavoriteRepository interface {
	Add(ctx context.Context, userID, recipeID int64) error
	ListByUser(ctx context.Context, userID int64) ([]model.FavoriteRecipe, error)
}

// WelcomeNotifier schedules the welcome email for a new user.
type WelcomeNotifier interface {
	EnqueueWelcomeEmail(ctx context.Context, to, username string) error
}

// ObjectStore is the blob store profile pictures are written to.
type ObjectStore interface {
	Upload(ctx context.Context, obj storage.Object) (string, error)
	Provider() string
}
