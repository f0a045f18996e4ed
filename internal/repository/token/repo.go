package token

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"
)

// Repository reads push tokens from the user_tokens table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new token repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// GetToken returns the FCM token of a user, or "" if the user has none.
func (r *Repository) GetToken(ctx context.Context, userID string) (string, error) {
	query := `
		SELECT fcm_token
		FROM user_tokens
		WHERE user_id = $1;
    `

	var token string
	err := r.db.Master.QueryRowContext(ctx, query, userID).Scan(&token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}

		return "", fmt.Errorf("failed to get token: %w", err)
	}

	return token, nil
}
