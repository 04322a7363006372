package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/entities"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type Scope string

const (
	// ScopeOpen - открытые заказы, которые курьеры просматривают для ставок.
	ScopeOpen Scope = "open"
	// ScopeRequested - заказы, созданные вызывающим.
	ScopeRequested Scope = "requested"
	// ScopeAssigned - заказы, назначенные вызывающему курьеру.
	ScopeAssigned Scope = "assigned"
)

type ListQuery struct {
	Scope  Scope
	Status *entities.OrderStatus
	Limit  uint64
	Offset uint64
}

type Service struct {
	repository    Repository
	txManager     TxManager
	statusFactory HandlerFactory
}

func New(repository Repository, txManager TxManager, statusFactory HandlerFactory) *Service {
	return &Service{
		repository:    repository,
		txManager:     txManager,
		statusFactory: statusFactory,
	}
}

// GetOrder: заказ видят его автор и назначенный курьер; открытые заказы
// видны всем курьерам.
func (s *Service) GetOrder(ctx context.Context, callerID int64, orderID string) (*entities.Order, error) {
	if callerID <= 0 {
		return nil, ErrInvalidCaller
	}
	if strings.TrimSpace(orderID) == "" {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.GetOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	assigned := order.DeliverymanID != nil && *order.DeliverymanID == callerID
	if order.RequesterID != callerID && !assigned && order.Status != entities.OrderOpen {
		return nil, ErrForbidden
	}
	return order, nil
}

func (s *Service) ListOrders(ctx context.Context, callerID int64, query ListQuery) ([]entities.Order, error) {
	if callerID <= 0 {
		return nil, ErrInvalidCaller
	}
	if query.Status != nil && !query.Status.IsValid() {
		return nil, ErrInvalidStatus
	}

	filter := entities.OrderFilter{
		Status: query.Status,
		Limit:  query.Limit,
		Offset: query.Offset,
	}
	switch query.Scope {
	case ScopeOpen, "":
		open := entities.OrderOpen
		filter.Status = &open
	case ScopeRequested:
		filter.RequesterID = &callerID
	case ScopeAssigned:
		filter.DeliverymanID = &callerID
	default:
		return nil, ErrInvalidScope
	}

	if filter.Limit == 0 {
		filter.Limit = defaultListLimit
	}
	filter.Limit = min(filter.Limit, maxListLimit)

	orders, err := s.repository.ListOrders(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// DeleteOrder снимает открытый заказ с публикации (open -> removed).
func (s *Service) DeleteOrder(ctx context.Context, requesterID int64, orderID string) error {
	return s.requesterTransition(ctx, requesterID, orderID, entities.OrderRemoved)
}

// CancelOrder отменяет открытый заказ (open -> canceled).
func (s *Service) CancelOrder(ctx context.Context, requesterID int64, orderID string) error {
	return s.requesterTransition(ctx, requesterID, orderID, entities.OrderCanceled)
}

func (s *Service) requesterTransition(ctx context.Context, requesterID int64, orderID string, target entities.OrderStatus) error {
	if requesterID <= 0 {
		return ErrInvalidCaller
	}
	if strings.TrimSpace(orderID) == "" {
		return ErrInvalidOrderID
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repository.LockOrder(ctx, orderID)
		if err != nil {
			return fmt.Errorf("lock order: %w", err)
		}
		if order.RequesterID != requesterID {
			return ErrForbidden
		}

		next, err := order.Status.Transition(target)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidOrderState, err)
		}

		err = s.repository.UpdateStatus(ctx, orderID, next)
		if err != nil {
			return fmt.Errorf("update status: %w", err)
		}
		return nil
	})
}

// ApplyStatusEvent применяет внешнее событие жизненного цикла заказа.
// Обработчик для статуса выбирает фабрика; статусы без обработчика
// возвращают ErrUndefinedStatus.
func (s *Service) ApplyStatusEvent(ctx context.Context, orderID string, status entities.OrderStatus) (*entities.Order, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, ErrInvalidOrderID
	}

	executeFn, err := s.statusFactory.GetHandler(status)
	if err != nil {
		if errors.Is(err, ErrUndefinedStatus) {
			return nil, err
		}
		return nil, fmt.Errorf("get status handler: %w", err)
	}

	var order *entities.Order
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := executeFn(ctx, orderID); err != nil {
			return err
		}

		var err error
		order, err = s.repository.GetOrder(ctx, orderID)
		if err != nil {
			return fmt.Errorf("reload order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}
