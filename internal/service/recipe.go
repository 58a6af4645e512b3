package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/deppfellow/recipebox/internal/errs"
	"github.com/deppfellow/recipebox/internal/model"
)

const msgRecipeCreated = "Recipe created"

// RecipeService creates and lists recipes.
type RecipeService struct {
	repo RecipeRepository
}

func NewRecipeService(repo RecipeRepository) *RecipeService {
	return &RecipeService{repo: repo}
}

// Create stores a recipe. Any store failure, including an unknown author,
// is a generic 500.
func (s *RecipeService) Create(ctx context.Context, payload *model.CreateRecipePayload) (*model.CreatedResponse, error) {
	id, err := s.repo.Create(ctx, model.NewRecipe{
		UserID:       payload.CreatedBy,
		Title:        payload.Title,
		Description:  payload.Description,
		Ingredients:  payload.Ingredients,
		Instructions: payload.Steps,
	})
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Int64("user_id", payload.CreatedBy).Msg("failed to create recipe")
		return nil, errs.NewInternalServerError()
	}

	return &model.CreatedResponse{Message: msgRecipeCreated, ID: id}, nil
}

// List returns every recipe with its author, newest first.
func (s *RecipeService) List(ctx context.Context) ([]model.RecipeWithAuthor, error) {
	recipes, err := s.repo.ListWithAuthors(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to list recipes")
		return nil, errs.NewInternalServerError()
	}
	return recipes, nil
}

// ListByUser returns the recipes owned by userID, newest first.
func (s *RecipeService) ListByUser(ctx context.Context, userID int64) ([]model.UserRecipe, error) {
	recipes, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Int64("user_id", userID).Msg("failed to list user recipes")
		return nil, errs.NewInternalServerError()
	}
	return recipes, nil
}
