package di

import (
	"context"
	"fmt"

	"github.com/JuanSebastianGarcia23/calzado/application/ports"
	"github.com/JuanSebastianGarcia23/calzado/application/services"
	"github.com/JuanSebastianGarcia23/calzado/infrastructure/config"
	"github.com/JuanSebastianGarcia23/calzado/infrastructure/messaging/eventbridge"
	"github.com/JuanSebastianGarcia23/calzado/infrastructure/persistence/dynamodb"
	"github.com/JuanSebastianGarcia23/calzado/infrastructure/persistence/memory"
	"github.com/JuanSebastianGarcia23/calzado/interfaces/http/rest"
	"github.com/JuanSebastianGarcia23/calzado/interfaces/invocation"
	"github.com/JuanSebastianGarcia23/calzado/pkg/errors"
	"github.com/JuanSebastianGarcia23/calzado/pkg/observability"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-xray-sdk-go/instrumentation/awsv2"
	"github.com/google/wire"
	"go.uber.org/zap"
)

const serviceName = "calzado"

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	Logger       *zap.Logger
	Repository   ports.FootwearRepository
	Publisher    ports.EventPublisher
	Metrics      *observability.Metrics
	Tracer       *observability.Tracer
	ErrorHandler *errors.ErrorHandler
	Service      *services.FootwearService
	Handler      *invocation.Handler
	Router       *rest.Router
}

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideAWSConfig,
	ProvideDynamoDBClient,
	ProvideEventBridgeClient,
	ProvideCloudWatchClient,
	ProvideFootwearRepository,
	ProvideEventPublisher,
	ProvideMetrics,
	ProvideTracer,
	ProvideErrorHandler,
	ProvideFootwearService,
	ProvideHandler,
	ProvideRouter,
	wire.Struct(new(Container), "*"),
)

// ProvideLogger creates a new logger instance at the configured level
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	zapCfg := zap.NewDevelopmentConfig()
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	zapCfg.Level = level

	logger, err := zapCfg.Build(zap.Fields(
		zap.String("service", serviceName),
		zap.String("environment", cfg.Environment),
	))
	if err != nil {
		return nil, err
	}

	return logger, nil
}

// ProvideAWSConfig creates AWS configuration. With tracing enabled every SDK
// call is recorded as an X-Ray subsegment.
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return aws.Config{}, err
	}

	if cfg.EnableTracing {
		awsv2.AWSV2Instrumentor(&awsCfg.APIOptions)
	}

	return awsCfg, nil
}

// ProvideDynamoDBClient creates a DynamoDB client, honouring a local endpoint
// override such as DynamoDB Local
func ProvideDynamoDBClient(awsCfg aws.Config, cfg *config.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg, func(o *awsdynamodb.Options) {
		if cfg.DynamoDBEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
		}
	})
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideCloudWatchClient creates a CloudWatch client
func ProvideCloudWatchClient(awsCfg aws.Config) *awscloudwatch.Client {
	return awscloudwatch.NewFromConfig(awsCfg)
}

// ProvideFootwearRepository selects the storage backend
func ProvideFootwearRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.FootwearRepository {
	if cfg.UsesMemoryStorage() {
		logger.Warn("Using in-memory storage, items live only as long as the process")
		return memory.NewFootwearRepository()
	}

	return dynamodb.NewFootwearRepository(client, cfg.DynamoDBTable, logger)
}

// ProvideEventPublisher creates the change event publisher. Without a bus
// name events are dropped.
func ProvideEventPublisher(client *awseventbridge.Client, cfg *config.Config, logger *zap.Logger) ports.EventPublisher {
	if cfg.EventBusName == "" {
		return eventbridge.NopPublisher{}
	}

	return eventbridge.NewEventBridgePublisher(client, cfg.EventBusName, logger)
}

// ProvideMetrics creates metrics instance. Disabled metrics yield nil, which
// records nothing.
func ProvideMetrics(client *awscloudwatch.Client, cfg *config.Config, logger *zap.Logger) *observability.Metrics {
	if !cfg.EnableMetrics {
		return nil
	}

	return observability.NewMetrics(cfg.MetricsNamespace, client, logger)
}

// ProvideTracer creates the tracer, nil when tracing is disabled
func ProvideTracer(cfg *config.Config) *observability.Tracer {
	if !cfg.EnableTracing {
		return nil
	}

	return observability.NewTracer(serviceName)
}

// ProvideErrorHandler creates the error handler
func ProvideErrorHandler(logger *zap.Logger) *errors.ErrorHandler {
	return errors.NewErrorHandler(logger)
}

// ProvideFootwearService creates the footwear service
func ProvideFootwearService(
	repo ports.FootwearRepository,
	publisher ports.EventPublisher,
	tracer *observability.Tracer,
	logger *zap.Logger,
) *services.FootwearService {
	return services.NewFootwearService(repo, publisher, tracer, logger)
}

// ProvideHandler creates the invocation handler
func ProvideHandler(
	service *services.FootwearService,
	errorHandler *errors.ErrorHandler,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *invocation.Handler {
	return invocation.NewHandler(service, errorHandler, metrics, logger)
}

// ProvideRouter creates the local HTTP router
func ProvideRouter(handler *invocation.Handler, cfg *config.Config, logger *zap.Logger) *rest.Router {
	return rest.NewRouter(handler, cfg.AllowedOrigins, logger)
}
