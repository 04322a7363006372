package order_handle

import (
	"context"
	"fmt"

	"marketplace/internal/entities"
	"marketplace/internal/service/order"
)

type StatusHandlerFactory struct {
	repository order.Repository
}

func NewStatusHandlerFactory(repository order.Repository) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		repository: repository,
	}
}

// GetHandler возвращает обработчик внешнего события. open, removed и
// pending_trip_approval наружу не публикуются и обработчиков не имеют.
func (f *StatusHandlerFactory) GetHandler(status entities.OrderStatus) (order.ExecuteFn, error) {
	switch status {
	case entities.OrderApproved,
		entities.OrderDelivered,
		entities.OrderCanceled:
		return f.transitionHandler(status, nil), nil
	case entities.OrderInProgress:
		return f.transitionHandler(status, requireApprovedWithDeliveryman), nil
	case entities.OrderRefused:
		return f.refusedHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", order.ErrUndefinedStatus, status)
	}
}

// precondition - дополнительная проверка заказа перед переходом.
type precondition func(current *entities.Order) error

// requireApprovedWithDeliveryman: извне в работу можно перевести только
// одобренный заказ поездки с назначенным курьером. Открытый заказ уходит в
// работу только через выбор курьера заказчиком.
func requireApprovedWithDeliveryman(current *entities.Order) error {
	if current.Status != entities.OrderApproved {
		return fmt.Errorf("%w: %s -> %s requires approved order",
			order.ErrStatusMismatch, current.Status, entities.OrderInProgress)
	}
	if current.DeliverymanID == nil {
		return fmt.Errorf("%w: approved order has no deliveryman", order.ErrStatusMismatch)
	}
	return nil
}

// transitionHandler переводит заказ в target через таблицу переходов.
// Повторное событие с тем же статусом ничего не делает.
func (f *StatusHandlerFactory) transitionHandler(target entities.OrderStatus, check precondition) order.ExecuteFn {
	return func(ctx context.Context, orderID string) error {
		current, err := f.repository.LockOrder(ctx, orderID)
		if err != nil {
			return fmt.Errorf("lock order %s: %w", orderID, err)
		}
		if current.Status == target {
			return nil
		}
		if check != nil {
			if err := check(current); err != nil {
				return err
			}
		}

		next, err := current.Status.Transition(target)
		if err != nil {
			return fmt.Errorf("%w: %w", order.ErrStatusMismatch, err)
		}

		err = f.repository.UpdateStatus(ctx, orderID, next)
		if err != nil {
			return fmt.Errorf("update order %s status: %w", orderID, err)
		}
		return nil
	}
}

// refusedHandler - курьер отклонил заказ по своей поездке: заказ
// закрывается и курьер с него снимается.
func (f *StatusHandlerFactory) refusedHandler(ctx context.Context, orderID string) error {
	err := f.transitionHandler(entities.OrderRefused, nil)(ctx, orderID)
	if err != nil {
		return err
	}

	err = f.repository.UnassignDeliveryman(ctx, orderID)
	if err != nil {
		return fmt.Errorf("unassign deliveryman for refused order %s: %w", orderID, err)
	}
	return nil
}
