package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/deppfellow/recipebox/internal/model"
)

// UserRepository stores accounts in the users table.
type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a user and returns its id. Duplicate username or email
// surfaces as a unique violation from the driver.
func (r *UserRepository) Create(ctx context.Context, user model.NewUser) (int64, error) {
	const stmt = `
		INSERT INTO users (username, email, password_hash, profile_image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, stmt,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.ProfileImageURL,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert user %s: %w", user.Username, err)
	}

	return id, nil
}

// GetByUsername returns pgx.ErrNoRows (wrapped) when no user matches.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	const stmt = `
		SELECT id, username, email, password_hash, profile_image_url, registered_at
		FROM users
		WHERE username = $1`

	rows, err := r.db.Query(ctx, stmt, username)
	if err != nil {
		return nil, fmt.Errorf("failed to query user %s: %w", username, err)
	}

	user, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[model.User])
	if err != nil {
		return nil, fmt.Errorf("failed to collect user %s: %w", username, err)
	}

	return user, nil
}
