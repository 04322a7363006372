package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "marketplace/internal/app"
	"marketplace/internal/handlers/rest/address_get"
	"marketplace/internal/handlers/rest/deliveryman_post"
	"marketplace/internal/handlers/rest/draft_item_delete"
	"marketplace/internal/handlers/rest/draft_item_get"
	"marketplace/internal/handlers/rest/draft_item_post"
	"marketplace/internal/handlers/rest/draft_item_put"
	"marketplace/internal/handlers/rest/draft_items_delete"
	"marketplace/internal/handlers/rest/draft_items_get"
	"marketplace/internal/handlers/rest/draft_submit_post"
	"marketplace/internal/handlers/rest/geocode_get"
	"marketplace/internal/handlers/rest/healthcheck_head"
	"marketplace/internal/handlers/rest/offer_delete"
	"marketplace/internal/handlers/rest/offer_post"
	"marketplace/internal/handlers/rest/offer_put"
	"marketplace/internal/handlers/rest/offers_get"
	"marketplace/internal/handlers/rest/order_cancel_post"
	"marketplace/internal/handlers/rest/order_delete"
	"marketplace/internal/handlers/rest/order_get"
	"marketplace/internal/handlers/rest/orders_get"
	"marketplace/internal/handlers/rest/ping_get"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/dotenv"
	"marketplace/internal/pkg/grpcclient"
	"marketplace/internal/pkg/kafka"
	metrics_system "marketplace/internal/pkg/metrics"
	"marketplace/internal/pkg/middlewares/graceful_shutdown"
	"marketplace/internal/pkg/middlewares/identity"
	"marketplace/internal/pkg/middlewares/metrics"
	"marketplace/internal/pkg/middlewares/rate_limiter"
	"marketplace/internal/pkg/middlewares/timeout"
	"marketplace/internal/pkg/postgres"
	"marketplace/pkg/logger"
	"marketplace/pkg/logger/zap_adapter"
	"marketplace/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting marketplace application")

	loaded, err := dotenv.Load()
	if err != nil {
		mainLog.Error("failed to load .env file", logger.NewField("error", err))
		return
	}
	if !loaded {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second

		systemMetricsInterval = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		err = postgres.Migrate(ctx, log, pool)
		if err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
	}

	conn, err := grpcclient.NewConnClient(ctx, log, &cfg.TripService)
	if err != nil {
		return fmt.Errorf("gRPC client: %w", err)
	}
	defer func() {
		err := conn.Close()
		if err != nil {
			runLog.Error("failed to close gRPC connection",
				logger.NewField("error", err),
			)
		}
	}()

	producer, err := kafka.NewProducer(ctx, log, &cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		err := producer.Close()
		if err != nil {
			runLog.Error("failed to close kafka producer",
				logger.NewField("error", err),
			)
		}
	}()

	// фоновые задачи живут до отмены workersCtx, а не до SIGTERM: outbox
	// дописывает начатую пачку, пока сервер дренирует запросы
	workersCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	businessApp, err := application.InitializeApplication(workersCtx, log, pool, pgxv5.DefaultCtxGetter, conn, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	pingers := map[string]healthcheck_head.Pinger{
		"postgres": pool,
		"kafka":    producer,
	}

	metrics_system.StartSystemMetricsCollector(workersCtx, systemMetricsInterval)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, pingers, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      max(15*time.Second, cfg.Server.SubmitTimeout+time.Second),
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(log, &isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	stopWorkers()
	businessApp.BackgroundWorkers.Wait()
	runLog.Info("background workers stopped")

	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

const submitRoute = "/drafts/{draft_id}/submit"

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	pingers map[string]healthcheck_head.Pinger,
	app *application.Application,
	cfg config.HTTPServer,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout, map[string]time.Duration{
		submitRoute: cfg.SubmitTimeout,
	}))
	router.Use(metrics.Middleware(log))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(log, isShuttingDown, pingers)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	// все остальное только с X-User-ID; лимит считается на вызывающего
	api := router.PathPrefix("/").Subrouter()
	api.Use(identity.Middleware())
	api.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewKeyed(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))

	api.Handle("/drafts/{draft_id}/items", draft_items_get.New(log, app.ServiceDraftItems)).Methods("GET")
	api.Handle("/drafts/{draft_id}/items", draft_item_post.New(log, app.ServiceDraftItems)).Methods("POST")
	api.Handle("/drafts/{draft_id}/items", draft_items_delete.New(log, app.ServiceDraftItems)).Methods("DELETE")
	api.Handle("/drafts/{draft_id}/items/{local_id}", draft_item_get.New(log, app.ServiceDraftItems)).Methods("GET")
	api.Handle("/drafts/{draft_id}/items/{local_id}", draft_item_put.New(log, app.ServiceDraftItems)).Methods("PUT")
	api.Handle("/drafts/{draft_id}/items/{local_id}", draft_item_delete.New(log, app.ServiceDraftItems)).Methods("DELETE")
	api.Handle(submitRoute, draft_submit_post.New(log, app.ServiceComposer)).Methods("POST")

	api.Handle("/addresses/{postal_code}", address_get.New(log, app.ServiceAddresses)).Methods("GET")
	api.Handle("/geocode", geocode_get.New(log, app.ServiceAddresses)).Methods("GET")

	api.Handle("/orders", orders_get.New(log, app.ServiceOrders)).Methods("GET")
	api.Handle("/orders/{order_id}", order_get.New(log, app.ServiceOrders)).Methods("GET")
	api.Handle("/orders/{order_id}", order_delete.New(log, app.ServiceOrders)).Methods("DELETE")
	api.Handle("/orders/{order_id}/cancel", order_cancel_post.New(log, app.ServiceOrders)).Methods("POST")

	api.Handle("/orders/{order_id}/offers", offers_get.New(log, app.ServiceOffers)).Methods("GET")
	api.Handle("/orders/{order_id}/offers", offer_post.New(log, app.ServiceOffers)).Methods("POST")
	api.Handle("/orders/{order_id}/deliveryman", deliveryman_post.New(log, app.ServiceOffers)).Methods("POST")
	api.Handle("/offers/{offer_id}", offer_put.New(log, app.ServiceOffers)).Methods("PUT")
	api.Handle("/offers/{offer_id}", offer_delete.New(log, app.ServiceOffers)).Methods("DELETE")

	return router
}

func initPprofRouter(log logger.Logger, isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(log, isShuttingDown, nil)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
