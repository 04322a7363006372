//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"
	tripGateway "marketplace/internal/gateway/grpc/trip"
	"marketplace/internal/handlers/tasks/outbox_relay"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/factory/order_handle"
	"marketplace/internal/pkg/kafka"
	offerRepo "marketplace/internal/repository/offer"
	orderRepo "marketplace/internal/repository/order"
	outboxRepo "marketplace/internal/repository/outbox"
	userRepo "marketplace/internal/repository/user"
	addressService "marketplace/internal/service/address"
	composerService "marketplace/internal/service/composer"
	draftItemService "marketplace/internal/service/draftitem"
	offerService "marketplace/internal/service/offer"
	orderService "marketplace/internal/service/order"
	"marketplace/pkg/logger"
	"marketplace/pkg/tx"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	conn *grpc.ClientConn,
	producer *kafka.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideDraftStorage,

		provideOrderRepository,
		provideOfferRepository,
		provideOutboxRepository,
		provideUserRepository,

		providePostalCodeGateway,
		provideGeocodingGateway,
		provideTripGateway,

		provideServiceDraftItems,
		provideServiceAddresses,
		provideServiceComposer,
		provideStatusHandlerFactory,
		provideServiceOrders,
		provideServiceOffers,

		provideOutboxRelayTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceDraftItems), new(*draftItemService.Store)),
		wire.Bind(new(ServiceAddresses), new(*addressService.Resolver)),
		wire.Bind(new(ServiceComposer), new(*composerService.Composer)),
		wire.Bind(new(ServiceOrders), new(*orderService.Service)),
		wire.Bind(new(ServiceOffers), new(*offerService.Service)),

		wire.Bind(new(composerService.DraftStore), new(*draftItemService.Store)),
		wire.Bind(new(composerService.AddressResolver), new(*addressService.Resolver)),
		wire.Bind(new(composerService.OrderAPI), new(*orderRepo.Repository)),
		wire.Bind(new(composerService.UserRepository), new(*userRepo.Repository)),
		wire.Bind(new(composerService.TripGateway), new(*tripGateway.TripGateway)),
		wire.Bind(new(composerService.TxManager), new(*tx.Manager)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderService.HandlerFactory), new(*order_handle.StatusHandlerFactory)),

		wire.Bind(new(offerService.Repository), new(*offerRepo.Repository)),
		wire.Bind(new(offerService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(offerService.Outbox), new(*outboxRepo.Repository)),
		wire.Bind(new(offerService.TxManager), new(*tx.Manager)),

		wire.Bind(new(outbox_relay.Outbox), new(*outboxRepo.Repository)),
		wire.Bind(new(outbox_relay.Publisher), new(*kafka.Producer)),
		wire.Bind(new(outbox_relay.TxManager), new(*tx.Manager)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,
		provideStatusHandlerFactory,
		provideServiceOrders,

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderService.HandlerFactory), new(*order_handle.StatusHandlerFactory)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
