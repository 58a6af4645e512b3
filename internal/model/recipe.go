package model

import (
	"time"

	"github.com/deppfellow/recipebox/internal/validation"
)

// NewRecipe is the row inserted by POST /recipes.
type NewRecipe struct {
	UserID       int64
	Title        string
	Description  string
	Ingredients  string
	Instructions string
}

// RecipeWithAuthor is one entry of the public recipe listing.
type RecipeWithAuthor struct {
	ID           int64     `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	Ingredients  string    `json:"ingredients" db:"ingredients"`
	Instructions string    `json:"instructions" db:"instructions"`
	Author       string    `json:"author" db:"author"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// UserRecipe is one entry of a user's own recipe listing. The field names
// differ from RecipeWithAuthor on purpose: clients read "steps" and "createdAt".
type UserRecipe struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Ingredients string    `json:"ingredients" db:"ingredients"`
	Steps       string    `json:"steps" db:"instructions"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// CreateRecipePayload is the body of POST /recipes.
type CreateRecipePayload struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
	Ingredients string `json:"ingredients" validate:"required"`
	Steps       string `json:"steps" validate:"required"`
	CreatedBy   int64  `json:"created_by" validate:"required,gt=0"`
}

func (p *CreateRecipePayload) Validate() error {
	return validation.Struct(p)
}
