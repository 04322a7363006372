package composer

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"
	"marketplace/internal/entities"
	"marketplace/internal/service/address"
	"marketplace/pkg/logger"
)

const defaultUploadParallelism = 4

type Composer struct {
	log               handlerLogger
	store             DraftStore
	resolver          AddressResolver
	orders            OrderAPI
	users             UserRepository
	trips             TripGateway
	txManager         TxManager
	uploadParallelism int
}

func New(
	log handlerLogger,
	store DraftStore,
	resolver AddressResolver,
	orders OrderAPI,
	users UserRepository,
	trips TripGateway,
	txManager TxManager,
	uploadParallelism int,
) *Composer {
	if uploadParallelism <= 0 {
		uploadParallelism = defaultUploadParallelism
	}

	return &Composer{
		log:               log.With(logger.NewField("component", "composer")),
		store:             store,
		resolver:          resolver,
		orders:            orders,
		users:             users,
		trips:             trips,
		txManager:         txManager,
		uploadParallelism: uploadParallelism,
	}
}

// Reconcile вливает позицию в список черновика: существующая запись с тем
// же local id заменяется на месте, новая добавляется в конец.
func (c *Composer) Reconcile(draft *entities.OrderDraft, item entities.DraftItem) {
	for i := range draft.Items {
		if draft.Items[i].LocalID == item.LocalID {
			draft.Items[i] = item
			return
		}
	}
	draft.Items = append(draft.Items, item)
}

// ReconcileFromStore вызывается при возврате из редактора позиции.
func (c *Composer) ReconcileFromStore(ctx context.Context, draft *entities.OrderDraft, localID string) error {
	item, err := c.store.Load(ctx, draft.Namespace(), localID)
	if err != nil {
		return fmt.Errorf("load staged item %s: %w", localID, err)
	}

	c.Reconcile(draft, *item)
	return nil
}

// Rebuild пересобирает список позиций из хранилища: порядок уже известных
// позиций сохраняется, новые идут в конец, удаленные из хранилища
// пропадают из списка.
func (c *Composer) Rebuild(ctx context.Context, draft *entities.OrderDraft) error {
	staged, err := c.store.List(ctx, draft.Namespace())
	if err != nil {
		return fmt.Errorf("list staged items: %w", err)
	}

	// draft.Items может делить массив с копией черновика у вызывающего
	draft.Items = slices.Clone(draft.Items)

	present := make(map[string]struct{}, len(staged))
	for _, item := range staged {
		present[item.LocalID] = struct{}{}
		c.Reconcile(draft, item)
	}

	kept := make([]entities.DraftItem, 0, len(draft.Items))
	for _, item := range draft.Items {
		if _, ok := present[item.LocalID]; ok {
			kept = append(kept, item)
		}
	}
	draft.Items = kept
	return nil
}

func (c *Composer) ResolvePickup(ctx context.Context, draft *entities.OrderDraft, postalCode string) error {
	resolved, err := c.resolve(ctx, draft.Pickup.Address, postalCode)
	if err != nil {
		return fmt.Errorf("resolve pickup address: %w", err)
	}

	draft.Pickup.Address = resolved
	return nil
}

func (c *Composer) ResolveDelivery(ctx context.Context, draft *entities.OrderDraft, postalCode string) error {
	mode, ok := draft.Delivery.(entities.AlternateAddress)
	if !ok {
		return ErrNotAlternateDelivery
	}

	resolved, err := c.resolve(ctx, mode.Address, postalCode)
	if err != nil {
		return fmt.Errorf("resolve delivery address: %w", err)
	}

	draft.Delivery = entities.AlternateAddress{Address: resolved}
	return nil
}

// resolve заполняет адрес по CEP, оставляя введенные пользователем номер
// дома и дополнение.
func (c *Composer) resolve(ctx context.Context, current entities.AddressComponents, postalCode string) (entities.AddressComponents, error) {
	structured, err := c.resolver.ResolveByPostalCode(ctx, postalCode)
	if err != nil {
		return current, err
	}

	return entities.AddressComponents{
		PostalCode:         structured.PostalCode,
		Street:             structured.Street,
		Neighborhood:       structured.Neighborhood,
		Number:             current.Number,
		Complement:         current.Complement,
		City:               structured.City,
		State:              structured.State,
		ResolvedPostalCode: structured.PostalCode,
	}, nil
}

// SubmitStaged отправляет черновик, пришедший целиком от клиента: позиции
// пересобираются из хранилища, а адреса заново резолвятся по CEP, признаку
// резолва от клиента не доверяем. Все, что проверяется локально, отсекается
// до первого удаленного вызова. Некорректный CEP оставляет адрес
// нерезолвленным, и Validate сообщит об этом вместе с остальными полями.
func (c *Composer) SubmitStaged(ctx context.Context, requesterID int64, draft entities.OrderDraft) (*Submission, error) {
	draft.RequesterID = requesterID
	draft.Pickup.Address.ResolvedPostalCode = ""
	if mode, ok := draft.Delivery.(entities.AlternateAddress); ok {
		mode.Address.ResolvedPostalCode = ""
		draft.Delivery = mode
	}

	if requesterID <= 0 {
		return c.Submit(ctx, requesterID, draft)
	}

	if err := c.Rebuild(ctx, &draft); err != nil {
		return nil, err
	}
	if err := precheck(draft); err != nil {
		return nil, err
	}

	if code := draft.Pickup.Address.PostalCode; !blank(code) {
		err := c.ResolvePickup(ctx, &draft, code)
		if err != nil && !errors.Is(err, address.ErrValidation) {
			return nil, err
		}
	}

	if mode, ok := draft.Delivery.(entities.AlternateAddress); ok && !blank(mode.Address.PostalCode) {
		err := c.ResolveDelivery(ctx, &draft, mode.Address.PostalCode)
		if err != nil && !errors.Is(err, address.ErrValidation) {
			return nil, err
		}
	}

	return c.Submit(ctx, requesterID, draft)
}

// Submit проверяет черновик и выполняет отправку по шагам: геокодирование
// забора, адрес доставки, создание заказа, накладная, изображения позиций.
// Ошибка до создания заказа возвращается как *SubmissionError и черновик не
// меняется. Ошибки загрузки вложений после создания заказа не прерывают
// отправку и попадают в Submission.Warnings; в этом случае позиции
// черновика в хранилище остаются.
func (c *Composer) Submit(ctx context.Context, requesterID int64, draft entities.OrderDraft) (*Submission, error) {
	draft.RequesterID = requesterID
	if requesterID <= 0 {
		verr := &ValidationError{}
		verr.field("requester_id", "required")
		return nil, verr
	}
	if err := Validate(draft); err != nil {
		return nil, err
	}

	log := c.log.With(
		logger.NewField("requester_id", requesterID),
		logger.NewField("draft_id", draft.ID),
	)

	if draft.TripBinding != nil {
		err := c.checkTrip(ctx, *draft.TripBinding)
		observeStep(StepTrip, err)
		if err != nil {
			return nil, &SubmissionError{Step: StepTrip, Err: err}
		}
	}

	pickup, err := c.resolver.Geocode(ctx, address.FormatAddress(draft.Pickup.Address))
	observeStep(StepGeocodePickup, err)
	if err != nil {
		return nil, &SubmissionError{Step: StepGeocodePickup, Err: err}
	}

	delivery, err := c.deliveryLocation(ctx, requesterID, draft.Delivery)
	observeStep(StepDeliveryAddress, err)
	if err != nil {
		return nil, &SubmissionError{Step: StepDeliveryAddress, Err: err}
	}

	newOrder := buildNewOrder(draft, entities.Location{Address: draft.Pickup.Address, Coordinates: *pickup}, *delivery)

	var created *entities.CreatedOrder
	err = c.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		created, err = c.orders.CreateOrder(ctx, newOrder)
		return err
	})
	observeStep(StepCreateOrder, err)
	if err != nil {
		if !errors.Is(err, ErrUnknownParticipant) {
			err = fmt.Errorf("%w: %w", ErrRemoteFailure, err)
		}
		return nil, &SubmissionError{Step: StepCreateOrder, Err: err}
	}
	if len(created.ItemIDs) != len(draft.Items) {
		return nil, &SubmissionError{
			Step:         StepCreateOrder,
			OrderCreated: true,
			OrderID:      created.ID,
			Err: fmt.Errorf("%w: got %d item ids for %d items",
				ErrRemoteFailure, len(created.ItemIDs), len(draft.Items)),
		}
	}

	log = log.With(logger.NewField("order_id", created.ID))
	log.Info("order created")

	submission := &Submission{
		OrderID: created.ID,
		ItemIDs: created.ItemIDs,
		Status:  created.Status,
	}

	err = c.orders.UploadInvoice(ctx, created.ID, draft.InvoiceFile)
	observeStep(StepUploadInvoice, err)
	if err != nil {
		submission.Warnings = append(submission.Warnings, Warning{
			Step: StepUploadInvoice,
			Err:  fmt.Errorf("%w: %w", ErrRemoteFailure, err),
		})
	}

	submission.Warnings = append(submission.Warnings, c.uploadImages(ctx, created.ID, draft.Items, created.ItemIDs)...)

	if len(submission.Warnings) > 0 {
		for _, w := range submission.Warnings {
			log.Warn("attachment upload failed", logger.NewField("error", w))
		}
		return submission, nil
	}

	submission.ItemsCleared = c.cleanup(ctx, log, draft)
	return submission, nil
}

func (c *Composer) checkTrip(ctx context.Context, binding entities.TripBinding) error {
	trip, err := c.trips.GetTrip(ctx, binding.TripID)
	if err != nil {
		if errors.Is(err, ErrTripNotFound) {
			return err
		}
		return fmt.Errorf("%w: get trip: %w", ErrRemoteFailure, err)
	}

	if trip.DeliverymanID != binding.DeliverymanID {
		return ErrTripMismatch
	}
	if !trip.AcceptsOrders() {
		return fmt.Errorf("%w: status %s", ErrTripUnavailable, trip.Status)
	}
	return nil
}

func (c *Composer) deliveryLocation(ctx context.Context, requesterID int64, mode entities.DeliveryMode) (*entities.Location, error) {
	switch mode := mode.(type) {
	case entities.SelfAddress:
		profile, err := c.users.GetProfile(ctx, requesterID)
		if errors.Is(err, ErrRequesterNotFound) {
			return nil, fmt.Errorf("get requester profile: %w", err)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: get requester profile: %w", ErrRemoteFailure, err)
		}
		if blank(profile.Address.Address.PostalCode) {
			return nil, ErrProfileAddressMissing
		}
		return &profile.Address, nil

	case entities.AlternateAddress:
		coordinates, err := c.resolver.Geocode(ctx, address.FormatAddress(mode.Address))
		if err != nil {
			return nil, err
		}
		return &entities.Location{Address: mode.Address, Coordinates: *coordinates}, nil

	default:
		return nil, fmt.Errorf("%w: unknown delivery mode %T", ErrValidation, mode)
	}
}

// uploadImages загружает изображения позиций параллельно. Позиции
// сопоставляются с идентификаторами по порядку передачи в CreateOrder.
// Каждая неудача - отдельное предупреждение.
func (c *Composer) uploadImages(ctx context.Context, orderID string, items []entities.DraftItem, itemIDs []int64) []Warning {
	failures := make([]*Warning, len(items))

	var g errgroup.Group
	g.SetLimit(c.uploadParallelism)

	for i, item := range items {
		if !item.HasImage() {
			continue
		}

		g.Go(func() error {
			err := c.orders.UploadItemImage(ctx, orderID, itemIDs[i], *item.ImageURI)
			observeStep(StepUploadImage, err)
			if err != nil {
				failures[i] = &Warning{
					Step:        StepUploadImage,
					ItemLocalID: item.LocalID,
					ItemID:      itemIDs[i],
					Err:         fmt.Errorf("%w: %w", ErrRemoteFailure, err),
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	var warnings []Warning
	for _, f := range failures {
		if f != nil {
			warnings = append(warnings, *f)
		}
	}
	return warnings
}

// cleanup удаляет отправленные позиции из хранилища. Заказ к этому моменту
// создан полностью, поэтому ошибки только логируются.
func (c *Composer) cleanup(ctx context.Context, log logger.Logger, draft entities.OrderDraft) bool {
	cleared := true
	for _, item := range draft.Items {
		err := c.store.Delete(ctx, draft.Namespace(), item.LocalID)
		if err != nil {
			cleared = false
			log.Warn("clear staged item",
				logger.NewField("local_id", item.LocalID),
				logger.NewField("error", err),
			)
		}
	}

	var err error
	if !cleared {
		err = errors.New("staged items left behind")
	}
	observeStep(StepCleanup, err)
	return cleared
}

func buildNewOrder(draft entities.OrderDraft, pickup, delivery entities.Location) entities.NewOrder {
	order := entities.NewOrder{
		RequesterID:         draft.RequesterID,
		Status:              entities.OrderOpen,
		PickupDate:          draft.Pickup.Date,
		PickupEstablishment: draft.Pickup.Establishment,
		Pickup:              pickup,
		Delivery:            delivery,
		Items:               make([]entities.OrderItem, 0, len(draft.Items)),
	}

	if binding := draft.TripBinding; binding != nil {
		deliverymanID := binding.DeliverymanID
		tripID := binding.TripID
		order.Status = entities.OrderPendingTripApproval
		order.DeliverymanID = &deliverymanID
		order.TripID = &tripID
	}

	for _, item := range draft.Items {
		order.Items = append(order.Items, entities.OrderItem{
			Name:            item.Name,
			Description:     item.Description,
			Quantity:        item.Quantity,
			Weight:          item.Weight,
			Width:           item.Width,
			Height:          item.Height,
			Depth:           item.Depth,
			Packing:         item.Packing,
			CategoryID:      item.CategoryID,
			WeightUnitID:    item.WeightUnitID,
			DimensionUnitID: item.DimensionUnitID,
		})
	}
	return order
}
