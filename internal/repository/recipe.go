package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/deppfellow/recipebox/internal/model"
)

// RecipeRepository reads and writes the recipes table.
type RecipeRepository struct {
	db DBTX
}

func NewRecipeRepository(db DBTX) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// Create inserts a recipe owned by recipe.UserID. A missing owner is a
// foreign key violation.
func (r *RecipeRepository) Create(ctx context.Context, recipe model.NewRecipe) (int64, error) {
	const stmt = `
		INSERT INTO recipes (user_id, title, description, ingredients, instructions)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, stmt,
		recipe.UserID,
		recipe.Title,
		recipe.Description,
		recipe.Ingredients,
		recipe.Instructions,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert recipe for user %d: %w", recipe.UserID, err)
	}

	return id, nil
}

// ListWithAuthors returns every recipe, newest first.
func (r *RecipeRepository) ListWithAuthors(ctx context.Context) ([]model.RecipeWithAuthor, error) {
	const stmt = `
		SELECT r.id, r.title, r.description, r.ingredients, r.instructions,
		       u.username AS author, r.created_at
		FROM recipes r
		JOIN users u ON u.id = r.user_id
		ORDER BY r.created_at DESC, r.id DESC`

	rows, err := r.db.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipes: %w", err)
	}

	recipes, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.RecipeWithAuthor])
	if err != nil {
		return nil, fmt.Errorf("failed to collect recipes: %w", err)
	}

	return recipes, nil
}

// ListByUser returns the recipes created by userID, newest first. An unknown
// user simply has no recipes.
func (r *RecipeRepository) ListByUser(ctx context.Context, userID int64) ([]model.UserRecipe, error) {
	const stmt = `
		SELECT id, title, description, ingredients, instructions, created_at
		FROM recipes
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, stmt, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipes for user %d: %w", userID, err)
	}

	recipes, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.UserRecipe])
	if err != nil {
		return nil, fmt.Errorf("failed to collect recipes for user %d: %w", userID, err)
	}

	return recipes, nil
}
