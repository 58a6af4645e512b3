package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/deppfellow/recipebox/internal/model"
)

// FavoriteRepository reads and writes favorite_recipes.
type FavoriteRepository struct {
	db DBTX
}

func NewFavoriteRepository(db DBTX) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Add records that userID saved recipeID. Saving the same pair twice is a
// unique violation on the primary key.
func (r *FavoriteRepository) Add(ctx context.Context, userID, recipeID int64) error {
	const stmt = `
		INSERT INTO favorite_recipes (user_id, recipe_id)
		VALUES ($1, $2)`

	if _, err := r.db.Exec(ctx, stmt, userID, recipeID); err != nil {
		return fmt.Errorf("failed to add recipe %d to favorites of user %d: %w", recipeID, userID, err)
	}

	return nil
}

// ListByUser returns the recipes userID saved, most recently saved first.
func (r *FavoriteRepository) ListByUser(ctx context.Context, userID int64) ([]model.FavoriteRecipe, error) {
	const stmt = `
		SELECT r.id, r.title, r.description, r.ingredients, r.instructions,
		       u.username AS author, f.saved_at
		FROM favorite_recipes f
		JOIN recipes r ON r.id = f.recipe_id
		JOIN users u ON u.id = r.user_id
		WHERE f.user_id = $1
		ORDER BY f.saved_at DESC, r.id DESC`

	rows, err := r.db.Query(ctx, stmt, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites for user %d: %w", userID, err)
	}

	favorites, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.FavoriteRecipe])
	if err != nil {
		return nil, fmt.Errorf("failed to collect favorites for user %d: %w", userID, err)
	}

	return favorites, nil
}
