package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"
)

// Repository reads user profiles from the users table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new user repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// GetName returns the display name of a user, or "" if the user is unknown.
func (r *Repository) GetName(ctx context.Context, userID string) (string, error) {
	query := `
		SELECT name
		FROM users
		WHERE id = $1;
    `

	var name string
	err := r.db.Master.QueryRowContext(ctx, query, userID).Scan(&name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}

		return "", fmt.Errorf("failed to get user name: %w", err)
	}

	return name, nil
}
