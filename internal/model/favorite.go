package model

import (
	"time"

	"github.com/deppfellow/recipebox/internal/validation"
)

// FavoriteRecipe is one entry of a user's favorites listing.
type FavoriteRecipe struct {
	ID           int64     `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	Ingredients  string    `json:"ingredients" db:"ingredients"`
	Instructions string    `json:"instructions" db:"instructions"`
	Author       string    `json:"author" db:"author"`
	SavedAt      time.Time `json:"saved_at" db:"saved_at"`
}

// AddFavoritePayload is the body of POST /favorites.
type AddFavoritePayload struct {
	UserID   int64 `json:"user_id" validate:"required,gt=0"`
	RecipeID int64 `json:"recipe_id" validate:"required,gt=0"`
}

func (p *AddFavoritePayload) Validate() error {
	return validation.Struct(p)
}
