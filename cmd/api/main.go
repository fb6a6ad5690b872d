package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"policy_request_service/internal/adapter/http/handlers"
	"policy_request_service/internal/adapter/http/routes"
	"policy_request_service/internal/adapter/messaging"
	"policy_request_service/internal/adapter/persistence/repository"
	"policy_request_service/internal/config"
	"policy_request_service/internal/domain/services"
	"policy_request_service/internal/infrastructure/database"
	"policy_request_service/internal/infrastructure/fraud"
	"policy_request_service/internal/infrastructure/lock"
	"policy_request_service/internal/infrastructure/logger"
	infraMessaging "policy_request_service/internal/infrastructure/messaging"
	"policy_request_service/internal/infrastructure/worker"
	"policy_request_service/internal/usecase"
	"policy_request_service/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// @title           Policy Request Service API
// @version         1.0
// @description     Insurance policy request lifecycle: intake, fraud analysis, validation and status tracking.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "policy-request-service: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = log.Sync() }()
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, err := newRepository(ctx, cfg, log)
	if err != nil {
		return err
	}

	publisher, producerClose, err := newPublisher(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer producerClose()

	var processingLock interfaces.IProcessingLock = lock.NewLocalLock()
	if cfg.LockEnabled() {
		redisClient, err := lock.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer func() { _ = redisClient.Close() }()
		processingLock = lock.NewRedisLock(redisClient, log)
		log.Info("[policy][main] redis processing lock enabled", zap.String("addr", cfg.Redis.Addr))
	}

	lifecycleUseCase := usecase.NewPolicyRequestLifecycleUseCase(repo, publisher, log)
	processUseCase := usecase.NewProcessPolicyRequestUseCase(
		repo,
		newClassifier(cfg, log),
		services.NewPolicyValidationService(log),
		publisher,
		lifecycleUseCase,
		log,
		usecase.WithProcessingLock(processingLock, cfg.Processing.LockTTL),
	)
	dispatcher := worker.NewDispatcher(ctx, processUseCase.Process, cfg.Dispatcher.Workers, cfg.Dispatcher.QueueSize, log)
	policyRequestUseCase := usecase.NewPolicyRequestUseCase(repo, publisher, dispatcher, log)

	var consumer *messaging.LifecycleConsumer
	if cfg.Kafka.Enabled {
		consumer, err = newLifecycleConsumer(ctx, cfg, lifecycleUseCase, log)
		if err != nil {
			return err
		}
		defer consumer.Close()
	}

	router := routes.NewRouter(handlers.NewPolicyRequestHandler(policyRequestUseCase, lifecycleUseCase), log)
	server := routes.NewServer(cfg.HTTP.Port, router)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("[policy][main] http server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	if consumer != nil {
		g.Go(func() error { return consumer.Run(gctx) })
	}

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		log.Info("[policy][main] shutting down")
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("[policy][main] http shutdown failed", zap.Error(err))
		}
		if err := dispatcher.Shutdown(shutdownCtx); err != nil {
			log.Error("[policy][main] dispatcher shutdown failed", zap.Error(err))
		}
		return nil
	})

	return g.Wait()
}

func newRepository(ctx context.Context, cfg *config.Config, log *zap.Logger) (interfaces.IPolicyRequestRepository, error) {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		log.Warn("[policy][main] using in-memory storage, data is lost on restart")
		return repository.NewPolicyRequestMemoryRepository(), nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS, cfg.DynamoDB)
	if err != nil {
		return nil, err
	}
	// local endpoints (dynamodb-local, localstack) start empty
	if cfg.DynamoDB.Endpoint != "" {
		if err := database.EnsurePolicyRequestsTable(ctx, ddb, cfg.DynamoDB.Table); err != nil {
			return nil, err
		}
	}
	return repository.NewPolicyRequestDynamoRepository(ddb, cfg.DynamoDB.Table, log), nil
}

func newPublisher(ctx context.Context, cfg *config.Config, log *zap.Logger) (interfaces.IEventPublisher, func(), error) {
	if !cfg.Kafka.Enabled {
		log.Warn("[policy][main] kafka disabled, lifecycle events are only logged")
		return messaging.NewLogEventPublisher(log), func() {}, nil
	}

	client, err := infraMessaging.NewProducerClient(ctx, cfg.Kafka)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := client.Flush(flushCtx); err != nil {
			log.Error("[policy][main] failed to flush pending events", zap.Error(err))
		}
		client.Close()
	}
	return messaging.NewKafkaEventPublisher(client, cfg.Kafka.TopicPolicyEvents, log), closeFn, nil
}

func newClassifier(cfg *config.Config, log *zap.Logger) interfaces.IFraudClassifier {
	if cfg.Fraud.AnalysisMock {
		log.Warn("[policy][main] using mock fraud classifier")
		return fraud.NewMockClassifier(time.Now().UnixNano(), log)
	}
	return fraud.NewHTTPClassifier(cfg.Fraud.APIURL, cfg.Fraud.APITimeout, log)
}

func newLifecycleConsumer(
	ctx context.Context,
	cfg *config.Config,
	lifecycle usecase.IPolicyRequestLifecycleUseCase,
	log *zap.Logger,
) (*messaging.LifecycleConsumer, error) {
	client, err := infraMessaging.NewConsumerClient(ctx, cfg.Kafka)
	if err != nil {
		return nil, err
	}

	router := messaging.NewRouter(log, nil)
	router.Register(cfg.Kafka.TopicPayments, messaging.NewPaymentEventsHandler(lifecycle, log))
	router.Register(cfg.Kafka.TopicUnderwriting, messaging.NewUnderwritingEventsHandler(lifecycle, log))
	return messaging.NewLifecycleConsumer(client, router, log), nil
}
