package offer

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/offer"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const offerReturning = "RETURNING id, order_id, deliveryman_id, delivery_value, created_at, updated_at, deleted_at"

type rowScanner interface {
	Scan(dest ...any) error
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) CreateOffer(ctx context.Context, newOffer entities.NewPickupOffer) (*entities.PickupOffer, error) {
	query := `
		INSERT INTO pickup_offers (order_id, deliveryman_id, delivery_value)
		VALUES ($1, $2, $3)
	` + offerReturning

	offerDB, err := scanOffer(r.querier.QueryRow(
		ctx,
		query,
		newOffer.OrderID,
		newOffer.DeliverymanID,
		newOffer.DeliveryValue,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, offer.ErrDuplicateOffer
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, offer.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected offer repository create error: %w", err)
	}

	return ToDomain(offerDB), nil
}

// GetOffer возвращает ставку, в том числе удаленную.
func (r *Repository) GetOffer(ctx context.Context, offerID int64) (*entities.PickupOffer, error) {
	query := `
		SELECT id, order_id, deliveryman_id, delivery_value, created_at, updated_at, deleted_at
		FROM pickup_offers
		WHERE id = $1
	`

	offerDB, err := scanOffer(r.querier.QueryRow(ctx, query, offerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, offer.ErrOfferNotFound
		}
		return nil, fmt.Errorf("unexpected offer repository get error: %w", err)
	}

	return ToDomain(offerDB), nil
}

func (r *Repository) HasActiveOffer(ctx context.Context, orderID string, deliverymanID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM pickup_offers
			WHERE order_id = $1 AND deliveryman_id = $2 AND deleted_at IS NULL
		)
	`

	var exists bool
	err := r.querier.QueryRow(ctx, query, orderID, deliverymanID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected offer repository has active error: %w", err)
	}
	return exists, nil
}

func (r *Repository) UpdateOfferValue(ctx context.Context, offerID int64, deliveryValue int64) (*entities.PickupOffer, error) {
	query, args, err := qb.
		Update("pickup_offers").
		Set("delivery_value", deliveryValue).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": offerID, "deleted_at": nil}).
		Suffix(offerReturning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected offer repository update error: %w", err)
	}

	offerDB, err := scanOffer(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, offer.ErrOfferNotFound
		}
		return nil, fmt.Errorf("unexpected offer repository update error: %w", err)
	}

	return ToDomain(offerDB), nil
}

func (r *Repository) SoftDeleteOffer(ctx context.Context, offerID int64) error {
	query := `
		UPDATE pickup_offers SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.querier.Exec(ctx, query, offerID)
	if err != nil {
		return fmt.Errorf("unexpected offer repository delete error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return offer.ErrOfferNotFound
	}
	return nil
}

// ListActiveOffers - активные ставки по заказу, при deliverymanID != nil
// только ставки этого курьера.
func (r *Repository) ListActiveOffers(ctx context.Context, orderID string, deliverymanID *int64) ([]entities.PickupOffer, error) {
	builder := qb.
		Select("id", "order_id", "deliveryman_id", "delivery_value", "created_at", "updated_at", "deleted_at").
		From("pickup_offers").
		Where(sq.Eq{"order_id": orderID, "deleted_at": nil})

	if deliverymanID != nil {
		builder = builder.Where(sq.Eq{"deliveryman_id": *deliverymanID})
	}

	query, args, err := builder.OrderBy("delivery_value", "id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected offer repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected offer repository list error: %w", err)
	}
	defer rows.Close()

	offers := make([]entities.PickupOffer, 0)
	for rows.Next() {
		offerDB, err := scanOffer(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected offer repository list scan error: %w", err)
		}
		offers = append(offers, *ToDomain(offerDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected offer repository list rows error: %w", err)
	}

	return offers, nil
}

func scanOffer(row rowScanner) (*PickupOfferDB, error) {
	var o PickupOfferDB
	err := row.Scan(
		&o.ID,
		&o.OrderID,
		&o.DeliverymanID,
		&o.DeliveryValue,
		&o.CreatedAt,
		&o.UpdatedAt,
		&o.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
