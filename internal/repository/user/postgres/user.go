package postgres

import (
	"context"
	"fmt"

	"github.com/go-openapi/strfmt"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository answers owner lookups from the users table.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) UserExists(ctx context.Context, id strfmt.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id.String(),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("user exists id=%s: %w", id, err)
	}
	return exists, nil
}
