package offer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/entities"
)

type Service struct {
	offers    Repository
	orders    OrderRepository
	outbox    Outbox
	txManager TxManager
	chatTopic string
}

func New(offers Repository, orders OrderRepository, outbox Outbox, txManager TxManager, chatTopic string) *Service {
	return &Service{
		offers:    offers,
		orders:    orders,
		outbox:    outbox,
		txManager: txManager,
		chatTopic: chatTopic,
	}
}

func (s *Service) CreateOffer(ctx context.Context, deliverymanID int64, orderID string, value int64) (*entities.PickupOffer, error) {
	if deliverymanID <= 0 {
		return nil, ErrInvalidCaller
	}
	if strings.TrimSpace(orderID) == "" {
		return nil, ErrInvalidOrderID
	}
	if value <= 0 {
		return nil, ErrInvalidOfferValue
	}

	var created *entities.PickupOffer
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.orders.LockOrder(ctx, orderID)
		if err != nil {
			return fmt.Errorf("lock order: %w", err)
		}

		if order.RequesterID == deliverymanID {
			return fmt.Errorf("%w: requester cannot bid on own order", ErrForbidden)
		}
		if !order.Status.AcceptsOffers() {
			return fmt.Errorf("%w: status %s", ErrInvalidOrderState, order.Status)
		}

		exists, err := s.offers.HasActiveOffer(ctx, orderID, deliverymanID)
		if err != nil {
			return fmt.Errorf("check existing offer: %w", err)
		}
		if exists {
			return ErrDuplicateOffer
		}

		created, err = s.offers.CreateOffer(ctx, entities.NewPickupOffer{
			OrderID:       orderID,
			DeliverymanID: deliverymanID,
			DeliveryValue: value,
		})
		if err != nil {
			return fmt.Errorf("create offer: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}

	return created, nil
}

// UpdateOffer меняет цену ставки. Последняя запись выигрывает.
func (s *Service) UpdateOffer(ctx context.Context, deliverymanID int64, offerID int64, value int64) (*entities.PickupOffer, error) {
	if deliverymanID <= 0 {
		return nil, ErrInvalidCaller
	}
	if offerID <= 0 {
		return nil, ErrInvalidOfferID
	}
	if value <= 0 {
		return nil, ErrInvalidOfferValue
	}

	var updated *entities.PickupOffer
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		offer, err := s.authoredOffer(ctx, deliverymanID, offerID)
		if err != nil {
			return err
		}
		if offer.IsDeleted() {
			return ErrOfferNotFound
		}
		if err := s.requireOpenOrder(ctx, offer.OrderID); err != nil {
			return err
		}

		updated, err = s.offers.UpdateOfferValue(ctx, offerID, value)
		if err != nil {
			return fmt.Errorf("update offer: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}

	return updated, nil
}

// DeleteOffer идемпотентен: повторное удаление уже удаленной ставки не
// ошибка. Несуществующая ставка - ErrOfferNotFound.
func (s *Service) DeleteOffer(ctx context.Context, deliverymanID int64, offerID int64) error {
	if deliverymanID <= 0 {
		return ErrInvalidCaller
	}
	if offerID <= 0 {
		return ErrInvalidOfferID
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		offer, err := s.authoredOffer(ctx, deliverymanID, offerID)
		if err != nil {
			return err
		}
		if offer.IsDeleted() {
			return nil
		}
		if err := s.requireOpenOrder(ctx, offer.OrderID); err != nil {
			return err
		}

		err = s.offers.SoftDeleteOffer(ctx, offerID)
		if err != nil {
			return fmt.Errorf("delete offer: %w", err)
		}
		return nil
	})
	return classify(err)
}

// authoredOffer - ставку может менять только ее автор. Проверка автора
// идет раньше проверки статуса заказа.
func (s *Service) authoredOffer(ctx context.Context, deliverymanID int64, offerID int64) (*entities.PickupOffer, error) {
	offer, err := s.offers.GetOffer(ctx, offerID)
	if err != nil {
		return nil, fmt.Errorf("get offer: %w", err)
	}
	if offer.DeliverymanID != deliverymanID {
		return nil, ErrForbidden
	}
	return offer, nil
}

// requireOpenOrder берет блокировку строки заказа: после SelectDeliveryman
// статус уже не open и любые изменения ставок отклоняются.
func (s *Service) requireOpenOrder(ctx context.Context, orderID string) error {
	order, err := s.orders.LockOrder(ctx, orderID)
	if err != nil {
		return fmt.Errorf("lock order: %w", err)
	}
	if !order.Status.AcceptsOffers() {
		return fmt.Errorf("%w: status %s", ErrInvalidOrderState, order.Status)
	}
	return nil
}

// SelectDeliveryman фиксирует выбор заказчика: заказ переходит в
// in_progress, курьер назначается, а в outbox в той же транзакции
// пишется запрос на канал связи. После этого ставки по заказу заморожены.
func (s *Service) SelectDeliveryman(ctx context.Context, requesterID int64, orderID string, deliverymanID int64) (*entities.DeliverymanSelection, error) {
	if requesterID <= 0 {
		return nil, ErrInvalidCaller
	}
	if strings.TrimSpace(orderID) == "" {
		return nil, ErrInvalidOrderID
	}
	if deliverymanID <= 0 {
		return nil, ErrInvalidDeliverymanID
	}

	var selection *entities.DeliverymanSelection
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.orders.LockOrder(ctx, orderID)
		if err != nil {
			return fmt.Errorf("lock order: %w", err)
		}
		if order.RequesterID != requesterID {
			return ErrForbidden
		}

		next, err := order.Status.Transition(entities.OrderInProgress)
		if err != nil || !order.Status.AcceptsOffers() {
			return fmt.Errorf("%w: status %s", ErrInvalidOrderState, order.Status)
		}

		exists, err := s.offers.HasActiveOffer(ctx, orderID, deliverymanID)
		if err != nil {
			return fmt.Errorf("check offer: %w", err)
		}
		if !exists {
			return ErrNoOfferFromDeliveryman
		}

		err = s.orders.AssignDeliveryman(ctx, orderID, deliverymanID, next)
		if err != nil {
			return fmt.Errorf("assign deliveryman: %w", err)
		}

		selection = &entities.DeliverymanSelection{
			OrderID:       orderID,
			RequesterID:   requesterID,
			DeliverymanID: deliverymanID,
			Status:        next,
			SelectedAt:    time.Now().UTC(),
		}

		task, err := newChatChannelTask(s.chatTopic, *selection)
		if err != nil {
			return err
		}
		err = s.outbox.Enqueue(ctx, task)
		if err != nil {
			return fmt.Errorf("enqueue chat channel request to outbox: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}

	return selection, nil
}

// ListOffers: заказчик видит все активные ставки по своему заказу, курьер
// только свою.
func (s *Service) ListOffers(ctx context.Context, callerID int64, orderID string) ([]entities.PickupOffer, error) {
	if callerID <= 0 {
		return nil, ErrInvalidCaller
	}
	if strings.TrimSpace(orderID) == "" {
		return nil, ErrInvalidOrderID
	}

	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, classify(fmt.Errorf("get order: %w", err))
	}

	var onlyFrom *int64
	if order.RequesterID != callerID {
		onlyFrom = &callerID
	}

	offers, err := s.offers.ListActiveOffers(ctx, orderID, onlyFrom)
	if err != nil {
		return nil, classify(fmt.Errorf("list offers: %w", err))
	}
	return offers, nil
}
