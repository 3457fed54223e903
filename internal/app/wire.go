//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	identityGateway "fulfillment/internal/gateway/identity"
	"fulfillment/internal/handlers/rest/order_get"
	"fulfillment/internal/handlers/rest/restaurant_order_get"
	"fulfillment/internal/handlers/rest/restaurant_order_status_post"
	"fulfillment/internal/handlers/rest/restaurant_orders_get"
	"fulfillment/internal/handlers/tasks/status_metrics"
	"fulfillment/internal/pkg/config"
	"fulfillment/internal/pkg/factory/overall_status"
	"fulfillment/internal/pkg/middlewares/auth"

	orderRepo "fulfillment/internal/repository/order"
	fulfillmentService "fulfillment/internal/service/fulfillment"
	intakeService "fulfillment/internal/service/intake"

	"fulfillment/pkg/background"
	"fulfillment/pkg/logger"
	"fulfillment/pkg/querier"
	"fulfillment/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	StatusMetricsInterval time.Duration
)

type Application struct {
	ServiceFulfillment ServiceFulfillment
	IdentityResolver   auth.Resolver
	BackgroundWorkers  *background.Worker
}

type ServiceFulfillment interface {
	restaurant_orders_get.Service
	restaurant_order_get.Service
	restaurant_order_status_post.Service
	order_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideStatusMetricsInterval,

		provideOrderRepository,

		provideServiceFulfillment,
		overall_status.New,

		provideIdentityGateway,

		provideStatusMetricsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceFulfillment), new(*fulfillmentService.Service)),

		wire.Bind(new(fulfillmentService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(fulfillmentService.StatusAggregator), new(*overall_status.OverallStatusFactory)),
		wire.Bind(new(fulfillmentService.TxManager), new(*tx.Manager)),

		wire.Bind(new(auth.Resolver), new(*identityGateway.Gateway)),

		wire.Bind(new(status_metrics.Service), new(*fulfillmentService.Service)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	IntakeService *intakeService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-created)
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

		overall_status.New,
		provideServiceIntake,

		wire.Bind(new(intakeService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(intakeService.StatusAggregator), new(*overall_status.OverallStatusFactory)),
		wire.Bind(new(intakeService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideServiceFulfillment(
	repository fulfillmentService.Repository,
	aggregator fulfillmentService.StatusAggregator,
	txManager fulfillmentService.TxManager,
) *fulfillmentService.Service {
	return fulfillmentService.New(repository, aggregator, txManager)
}

func provideServiceIntake(
	repository intakeService.Repository,
	aggregator intakeService.StatusAggregator,
	txManager intakeService.TxManager,
) *intakeService.Service {
	return intakeService.New(repository, aggregator, txManager)
}

func provideIdentityGateway(cfg *config.Config) *identityGateway.Gateway {
	return identityGateway.New([]byte(cfg.Auth.JWTSecret))
}

func provideStatusMetricsInterval(cfg *config.Config) StatusMetricsInterval {
	return StatusMetricsInterval(cfg.Tasks.StatusMetricsInterval)
}

func provideStatusMetricsTask(
	log logger.Logger,
	fulfillmentService status_metrics.Service,
	interval StatusMetricsInterval,
) *status_metrics.StatusMetrics {
	return status_metrics.NewStatusMetrics(log, fulfillmentService, time.Duration(interval))
}

func provideTaskList(
	statusMetricsTask *status_metrics.StatusMetrics,
) []background.Task {
	return []background.Task{
		statusMetricsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
