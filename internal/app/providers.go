package app

import (
	"context"
	"fmt"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"
	tripGateway "marketplace/internal/gateway/grpc/trip"
	"marketplace/internal/gateway/http/geocoding"
	"marketplace/internal/gateway/http/postal_code"
	address_get "marketplace/internal/handlers/rest/address_get"
	deliveryman_post "marketplace/internal/handlers/rest/deliveryman_post"
	draft_item_delete "marketplace/internal/handlers/rest/draft_item_delete"
	draft_item_get "marketplace/internal/handlers/rest/draft_item_get"
	draft_item_post "marketplace/internal/handlers/rest/draft_item_post"
	draft_item_put "marketplace/internal/handlers/rest/draft_item_put"
	draft_items_delete "marketplace/internal/handlers/rest/draft_items_delete"
	draft_items_get "marketplace/internal/handlers/rest/draft_items_get"
	draft_submit_post "marketplace/internal/handlers/rest/draft_submit_post"
	geocode_get "marketplace/internal/handlers/rest/geocode_get"
	offer_delete "marketplace/internal/handlers/rest/offer_delete"
	offer_post "marketplace/internal/handlers/rest/offer_post"
	offer_put "marketplace/internal/handlers/rest/offer_put"
	offers_get "marketplace/internal/handlers/rest/offers_get"
	order_cancel_post "marketplace/internal/handlers/rest/order_cancel_post"
	order_delete "marketplace/internal/handlers/rest/order_delete"
	order_get "marketplace/internal/handlers/rest/order_get"
	orders_get "marketplace/internal/handlers/rest/orders_get"
	"marketplace/internal/handlers/tasks/outbox_relay"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/factory/order_handle"
	"marketplace/internal/repository/draftkv"
	offerRepo "marketplace/internal/repository/offer"
	orderRepo "marketplace/internal/repository/order"
	outboxRepo "marketplace/internal/repository/outbox"
	userRepo "marketplace/internal/repository/user"
	addressService "marketplace/internal/service/address"
	composerService "marketplace/internal/service/composer"
	draftItemService "marketplace/internal/service/draftitem"
	offerService "marketplace/internal/service/offer"
	orderService "marketplace/internal/service/order"
	"marketplace/pkg/background"
	"marketplace/pkg/filekv"
	"marketplace/pkg/logger"
	"marketplace/pkg/querier"
	"marketplace/pkg/tx"
)

type Application struct {
	ServiceDraftItems ServiceDraftItems
	ServiceAddresses  ServiceAddresses
	ServiceComposer   ServiceComposer
	ServiceOrders     ServiceOrders
	ServiceOffers     ServiceOffers
	BackgroundWorkers *background.Worker
}

type ServiceDraftItems interface {
	draft_item_put.Service
	draft_item_post.Service
	draft_item_get.Service
	draft_items_get.Service
	draft_item_delete.Service
	draft_items_delete.Service
}

type ServiceAddresses interface {
	address_get.Service
	geocode_get.Service
}

type ServiceComposer interface {
	draft_submit_post.Service
}

type ServiceOrders interface {
	orders_get.Service
	order_get.Service
	order_delete.Service
	order_cancel_post.Service
}

type ServiceOffers interface {
	offers_get.Service
	offer_post.Service
	offer_put.Service
	offer_delete.Service
	deliveryman_post.Service
}

type KafkaWorkerApp struct {
	OrderService *orderService.Service
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

// provideDraftStorage выбирает бэкенд черновиков: таблица в Postgres или
// локальный JSON-файл.
func provideDraftStorage(cfg *config.Config, querier *querier.Querier) (draftItemService.KVStorage, error) {
	switch cfg.DraftStore.Backend {
	case config.DraftStoreBackendFile:
		store, err := filekv.New(cfg.DraftStore.FilePath)
		if err != nil {
			return nil, fmt.Errorf("draft file store: %w", err)
		}
		return draftkv.NewFile(store), nil
	default:
		return draftkv.New(querier), nil
	}
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideOfferRepository(querier *querier.Querier) *offerRepo.Repository {
	return offerRepo.New(querier)
}

func provideOutboxRepository(querier *querier.Querier) *outboxRepo.Repository {
	return outboxRepo.New(querier)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func providePostalCodeGateway(cfg *config.Config) *postal_code.PostalCodeGateway {
	return postal_code.New(cfg.PostalCode.BaseURL, cfg.PostalCode.Timeout)
}

func provideGeocodingGateway(cfg *config.Config) *geocoding.GeocodingGateway {
	return geocoding.New(cfg.Geocoding.BaseURL, cfg.Geocoding.Timeout, cfg.Geocoding.UserAgent)
}

func provideTripGateway(conn *grpc.ClientConn) *tripGateway.TripGateway {
	return tripGateway.New(conn)
}

func provideServiceDraftItems(storage draftItemService.KVStorage) *draftItemService.Store {
	return draftItemService.New(storage)
}

func provideServiceAddresses(
	postalCodes *postal_code.PostalCodeGateway,
	geocoder *geocoding.GeocodingGateway,
) *addressService.Resolver {
	return addressService.New(postalCodes, geocoder)
}

func provideServiceComposer(
	log logger.Logger,
	store composerService.DraftStore,
	resolver composerService.AddressResolver,
	orders composerService.OrderAPI,
	users composerService.UserRepository,
	trips composerService.TripGateway,
	txManager composerService.TxManager,
	cfg *config.Config,
) *composerService.Composer {
	return composerService.New(log, store, resolver, orders, users, trips, txManager, cfg.Composer.ImageUploadParallelism)
}

func provideStatusHandlerFactory(repository orderService.Repository) *order_handle.StatusHandlerFactory {
	return order_handle.NewStatusHandlerFactory(repository)
}

func provideServiceOrders(
	repository orderService.Repository,
	txManager orderService.TxManager,
	statusFactory orderService.HandlerFactory,
) *orderService.Service {
	return orderService.New(repository, txManager, statusFactory)
}

func provideServiceOffers(
	offers offerService.Repository,
	orders offerService.OrderRepository,
	outbox offerService.Outbox,
	txManager offerService.TxManager,
	cfg *config.Config,
) *offerService.Service {
	return offerService.New(offers, orders, outbox, txManager, cfg.Kafka.Topics.ChatChannelRequested)
}

func provideOutboxRelayTask(
	log logger.Logger,
	outbox outbox_relay.Outbox,
	publisher outbox_relay.Publisher,
	txManager outbox_relay.TxManager,
	cfg *config.Config,
) *outbox_relay.OutboxRelay {
	return outbox_relay.NewOutboxRelay(
		log,
		outbox,
		publisher,
		txManager,
		cfg.Tasks.OutboxRelayInterval,
		cfg.Tasks.OutboxBatchSize,
		cfg.Tasks.OutboxMaxAttempts,
	)
}

func provideTaskList(outboxRelayTask *outbox_relay.OutboxRelay) []background.Task {
	return []background.Task{
		outboxRelayTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
