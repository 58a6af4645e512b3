// Package repository handles all interactions with the database.
//
// Each method runs exactly one parameterized SQL statement against the
// shared pool and returns raw driver errors; services decide how those
// errors are presented to clients.
package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/deppfellow/recipebox/internal/server"
)

// DBTX is the subset of *pgxpool.Pool the repositories use.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories groups every repository built on the shared pool.
type Repositories struct {
	User     *UserRepository
	Recipe   *RecipeRepository
	Favorite *FavoriteRepository
}

// NewRepositories builds every repository over the server's pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		User:     NewUserRepository(s.DB.Pool),
		Recipe:   NewRecipeRepository(s.DB.Pool),
		Favorite: NewFavoriteRepository(s.DB.Pool),
	}
}
