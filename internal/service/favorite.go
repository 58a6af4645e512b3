package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/deppfellow/recipebox/internal/errs"
	"github.com/deppfellow/recipebox/internal/model"
	"github.com/deppfellow/recipebox/internal/sqlerr"
)

const msgFavoriteAdded = "Recipe added to favorites"

// FavoriteService manages the user to recipe favorites relation.
type FavoriteService struct {
	repo FavoriteRepository
}

func NewFavoriteService(repo FavoriteRepository) *FavoriteService {
	return &FavoriteService{repo: repo}
}

// Add saves a recipe to a user's favorites: 409 when already saved, 400
// when the user or recipe does not exist. Both come from sqlerr, which names
// the offending entity in the message and code.
func (s *FavoriteService) Add(ctx context.Context, payload *model.AddFavoritePayload) (*model.MessageResponse, error) {
	err := s.repo.Add(ctx, payload.UserID, payload.RecipeID)
	switch {
	case err == nil:
		return &model.MessageResponse{Message: msgFavoriteAdded}, nil
	case sqlerr.IsUniqueViolation(err), sqlerr.IsForeignKeyViolation(err):
		return nil, sqlerr.HandleError(err)
	default:
		zerolog.Ctx(ctx).Error().Err(err).
			Int64("user_id", payload.UserID).
			Int64("recipe_id", payload.RecipeID).
			Msg("failed to add favorite")
		return nil, errs.NewInternalServerError()
	}
}

// ListByUser returns the recipes userID saved, newest first.
func (s *FavoriteService) ListByUser(ctx context.Context, userID int64) ([]model.FavoriteRecipe, error) {
	favorites, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Int64("user_id", userID).Msg("failed to list favorites")
		return nil, errs.NewInternalServerError()
	}
	return favorites, nil
}
