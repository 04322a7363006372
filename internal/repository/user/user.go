package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/service/composer"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetProfile(ctx context.Context, userID int64) (*entities.UserProfile, error) {
	query := `
		SELECT id, name, postal_code, street, neighborhood, number, complement,
			city, state, latitude, longitude
		FROM users
		WHERE id = $1
	`

	var userDB UserDB
	err := r.querier.QueryRow(ctx, query, userID).Scan(
		&userDB.ID,
		&userDB.Name,
		&userDB.PostalCode,
		&userDB.Street,
		&userDB.Neighborhood,
		&userDB.Number,
		&userDB.Complement,
		&userDB.City,
		&userDB.State,
		&userDB.Latitude,
		&userDB.Longitude,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, composer.ErrRequesterNotFound
		}
		return nil, fmt.Errorf("unexpected user repository get profile error: %w", err)
	}

	return ToDomain(&userDB), nil
}
