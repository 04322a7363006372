package order

import (
	"context"
	"errors"
	"fmt"
	"sort"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/composer"
	service_order "marketplace/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var orderColumns = []string{
	"id", "requester_id", "status", "deliveryman_id", "trip_id",
	"pickup_date", "pickup_establishment",
	"pickup_postal_code", "pickup_street", "pickup_neighborhood", "pickup_number",
	"pickup_complement", "pickup_city", "pickup_state", "pickup_latitude", "pickup_longitude",
	"delivery_postal_code", "delivery_street", "delivery_neighborhood", "delivery_number",
	"delivery_complement", "delivery_city", "delivery_state", "delivery_latitude", "delivery_longitude",
	"created_at", "updated_at",
}

var itemColumns = []string{
	"id", "order_id", "position", "name", "description", "quantity",
	"weight", "width", "height", "depth", "packing",
	"category_id", "weight_unit_id", "dimension_unit_id",
}

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

// CreateOrder вставляет заказ и его позиции. Атомарность обеспечивает
// вызывающий через транзакцию в контексте.
func (r *Repository) CreateOrder(ctx context.Context, newOrder entities.NewOrder) (*entities.CreatedOrder, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository generate id error: %w", err)
	}
	orderDB := FromNewOrder(id.String(), &newOrder)

	query, args, err := qb.
		Insert("orders").
		Columns(orderColumns[:25]...).
		Values(
			orderDB.ID, orderDB.RequesterID, orderDB.Status, orderDB.DeliverymanID, orderDB.TripID,
			orderDB.PickupDate, orderDB.PickupEstablishment,
			orderDB.Pickup.PostalCode, orderDB.Pickup.Street, orderDB.Pickup.Neighborhood, orderDB.Pickup.Number,
			orderDB.Pickup.Complement, orderDB.Pickup.City, orderDB.Pickup.State, orderDB.Pickup.Latitude, orderDB.Pickup.Longitude,
			orderDB.Delivery.PostalCode, orderDB.Delivery.Street, orderDB.Delivery.Neighborhood, orderDB.Delivery.Number,
			orderDB.Delivery.Complement, orderDB.Delivery.City, orderDB.Delivery.State, orderDB.Delivery.Latitude, orderDB.Delivery.Longitude,
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	_, err = r.querier.Exec(ctx, query, args...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, fmt.Errorf("create order: %w", composer.ErrUnknownParticipant)
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	itemIDs, err := r.insertItems(ctx, orderDB.ID, newOrder.Items)
	if err != nil {
		return nil, err
	}

	return &entities.CreatedOrder{
		ID:      orderDB.ID,
		Status:  newOrder.Status,
		ItemIDs: itemIDs,
	}, nil
}

// insertItems возвращает идентификаторы позиций в порядке items.
func (r *Repository) insertItems(ctx context.Context, orderID string, items []entities.OrderItem) ([]int64, error) {
	if len(items) == 0 {
		return []int64{}, nil
	}

	builder := qb.
		Insert("order_items").
		Columns(itemColumns[1:]...).
		Suffix("RETURNING id, position")
	for position, item := range items {
		builder = builder.Values(
			orderID, position, item.Name, item.Description, item.Quantity,
			item.Weight, item.Width, item.Height, item.Depth, item.Packing,
			item.CategoryID, item.WeightUnitID, item.DimensionUnitID,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create items error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create items error: %w", err)
	}
	defer rows.Close()

	itemIDs := make([]int64, len(items))
	for rows.Next() {
		var id int64
		var position int
		if err := rows.Scan(&id, &position); err != nil {
			return nil, fmt.Errorf("unexpected order repository create items scan error: %w", err)
		}
		itemIDs[position] = id
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository create items rows error: %w", err)
	}

	return itemIDs, nil
}

func (r *Repository) UploadInvoice(ctx context.Context, orderID string, fileRef string) error {
	if !isOrderID(orderID) {
		return service_order.ErrOrderNotFound
	}

	query := `
		INSERT INTO order_attachments (order_id, kind, file_ref)
		VALUES ($1, 'invoice', $2)
		ON CONFLICT (order_id) WHERE kind = 'invoice'
		DO UPDATE SET file_ref = EXCLUDED.file_ref, created_at = NOW()
	`

	_, err := r.querier.Exec(ctx, query, orderID, fileRef)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return service_order.ErrOrderNotFound
		}
		return fmt.Errorf("unexpected order repository upload invoice error: %w", err)
	}
	return nil
}

func (r *Repository) UploadItemImage(ctx context.Context, orderID string, itemID int64, fileRef string) error {
	if !isOrderID(orderID) {
		return service_order.ErrOrderNotFound
	}

	query := `
		INSERT INTO order_attachments (order_id, item_id, kind, file_ref)
		SELECT order_id, id, 'item_image', $3
		FROM order_items
		WHERE order_id = $1 AND id = $2
		ON CONFLICT (item_id) WHERE kind = 'item_image'
		DO UPDATE SET file_ref = EXCLUDED.file_ref, created_at = NOW()
	`

	result, err := r.querier.Exec(ctx, query, orderID, itemID, fileRef)
	if err != nil {
		return fmt.Errorf("unexpected order repository upload item image error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: item %d", service_order.ErrOrderNotFound, itemID)
	}
	return nil
}

func (r *Repository) GetOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	if !isOrderID(orderID) {
		return nil, service_order.ErrOrderNotFound
	}

	query, args, err := qb.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service_order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	items, err := r.listItems(ctx, []string{orderID})
	if err != nil {
		return nil, err
	}

	return ToDomain(orderDB, items[orderID]), nil
}

// LockOrder берет строку заказа под FOR UPDATE. Позиции не загружаются.
func (r *Repository) LockOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	if !isOrderID(orderID) {
		return nil, service_order.ErrOrderNotFound
	}

	query, args, err := qb.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository lock error: %w", err)
	}

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service_order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository lock error: %w", err)
	}

	return ToDomain(orderDB, nil), nil
}

func (r *Repository) ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	builder := qb.
		Select(orderColumns...).
		From("orders")

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}
	if filter.RequesterID != nil {
		builder = builder.Where(sq.Eq{"requester_id": *filter.RequesterID})
	}
	if filter.DeliverymanID != nil {
		builder = builder.Where(sq.Eq{"deliveryman_id": *filter.DeliverymanID})
	}

	builder = builder.OrderBy("created_at DESC", "id")
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		builder = builder.Offset(filter.Offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	var ordersDB []*OrderDB
	for rows.Next() {
		orderDB, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list scan error: %w", err)
		}
		ordersDB = append(ordersDB, orderDB)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list rows error: %w", err)
	}

	ids := make([]string, 0, len(ordersDB))
	for _, o := range ordersDB {
		ids = append(ids, o.ID)
	}
	items, err := r.listItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	orders := make([]entities.Order, 0, len(ordersDB))
	for _, o := range ordersDB {
		orders = append(orders, *ToDomain(o, items[o.ID]))
	}
	return orders, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus) error {
	if !isOrderID(orderID) {
		return service_order.ErrOrderNotFound
	}

	query := `
		UPDATE orders SET status = $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, orderID, status.String())
	if err != nil {
		return fmt.Errorf("unexpected order repository update status error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return service_order.ErrOrderNotFound
	}
	return nil
}

func (r *Repository) AssignDeliveryman(ctx context.Context, orderID string, deliverymanID int64, status entities.OrderStatus) error {
	if !isOrderID(orderID) {
		return service_order.ErrOrderNotFound
	}

	query := `
		UPDATE orders SET deliveryman_id = $2, status = $3, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, orderID, deliverymanID, status.String())
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return fmt.Errorf("%w: unknown deliveryman", service_order.ErrValidation)
		}
		return fmt.Errorf("unexpected order repository assign deliveryman error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return service_order.ErrOrderNotFound
	}
	return nil
}

func (r *Repository) UnassignDeliveryman(ctx context.Context, orderID string) error {
	if !isOrderID(orderID) {
		return service_order.ErrOrderNotFound
	}

	query := `
		UPDATE orders SET deliveryman_id = NULL, trip_id = NULL, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, orderID)
	if err != nil {
		return fmt.Errorf("unexpected order repository unassign deliveryman error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return service_order.ErrOrderNotFound
	}
	return nil
}

func (r *Repository) listItems(ctx context.Context, orderIDs []string) (map[string][]OrderItemDB, error) {
	result := make(map[string][]OrderItemDB, len(orderIDs))
	if len(orderIDs) == 0 {
		return result, nil
	}

	query, args, err := qb.
		Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": orderIDs}).
		OrderBy("order_id", "position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list items error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list items error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemDB
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.Position,
			&item.Name,
			&item.Description,
			&item.Quantity,
			&item.Weight,
			&item.Width,
			&item.Height,
			&item.Depth,
			&item.Packing,
			&item.CategoryID,
			&item.WeightUnitID,
			&item.DimensionUnitID,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list items scan error: %w", err)
		}
		result[item.OrderID] = append(result[item.OrderID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list items rows error: %w", err)
	}

	for _, items := range result {
		sort.Slice(items, func(i, j int) bool { return items[i].Position < items[j].Position })
	}
	return result, nil
}

func scanOrder(row rowScanner) (*OrderDB, error) {
	var o OrderDB
	err := row.Scan(
		&o.ID,
		&o.RequesterID,
		&o.Status,
		&o.DeliverymanID,
		&o.TripID,
		&o.PickupDate,
		&o.PickupEstablishment,
		&o.Pickup.PostalCode,
		&o.Pickup.Street,
		&o.Pickup.Neighborhood,
		&o.Pickup.Number,
		&o.Pickup.Complement,
		&o.Pickup.City,
		&o.Pickup.State,
		&o.Pickup.Latitude,
		&o.Pickup.Longitude,
		&o.Delivery.PostalCode,
		&o.Delivery.Street,
		&o.Delivery.Neighborhood,
		&o.Delivery.Number,
		&o.Delivery.Complement,
		&o.Delivery.City,
		&o.Delivery.State,
		&o.Delivery.Latitude,
		&o.Delivery.Longitude,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// isOrderID: идентификатор не в формате UUID не может существовать в
// таблице, и запрос с ним завершился бы ошибкой приведения типа.
func isOrderID(orderID string) bool {
	_, err := uuid.Parse(orderID)
	return err == nil
}
