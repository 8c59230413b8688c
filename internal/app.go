package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	logger_adapter "cost-engine-service/internal/adapters/logger"
	postgres_adapter "cost-engine-service/internal/adapters/postgres"
	rabbitmq_adapter "cost-engine-service/internal/adapters/rabbitmq"
	"cost-engine-service/internal/adapters/rest"
	"cost-engine-service/internal/configs"
	"cost-engine-service/internal/constants"
	"cost-engine-service/internal/core/port"
	"cost-engine-service/internal/core/usecase"
	fluentlogger "cost-engine-service/pkg/fluent_logger"
	"cost-engine-service/pkg/postgres"
	"cost-engine-service/pkg/rabbitmq/rabbitmq_common"
	"cost-engine-service/pkg/rabbitmq/rabbitmq_consumer"
	"cost-engine-service/pkg/rabbitmq/rabbitmq_producer"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	config    *configs.AppConfig
	dbPool    *pgxpool.Pool
	apiServer *rest.Server

	assessmentEventsListener port.EventListenerPort
	eventProducer            *rabbitmq_producer.Publisher
	logger                   port.LoggerPort
	fluentClient             *fluent.Fluent // kept for orderly close
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// Loggers
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// PostgreSQL
	dbPool, err := postgres.NewClient(context.Background(), postgres.Config{DatabaseURL: appConfig.Database.URL})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	appLogger.Info("Successfully connected to PostgreSQL pool.", nil)

	estimateRepository, err := postgres_adapter.NewPostgresEstimateRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create postgres estimate repository: %w", err)
	}

	// RabbitMQ
	connManagerLogger := baseLogger.WithFields(port.Fields{"component": "rabbitmq_conn_manager"})
	connManager, err := rabbitmq_common.GetManager(appConfig.RabbitMQ.URL, rabbitmq_adapter.NewPkgLoggerBridge(connManagerLogger))
	if err != nil {
		dbPool.Close()
		appLogger.Error("Failed to create connection manager", err, nil)
		return nil, fmt.Errorf("failed to create connection manager: %w", err)
	}
	appLogger.Info("RabbitMQ Connection Manager initialized.", nil)

	producerLogger := baseLogger.WithFields(port.Fields{"component": "rabbitmq_producer"})
	producerCfg := rabbitmq_producer.PublisherConfig{
		Config:                   rabbitmq_common.Config{URL: appConfig.RabbitMQ.URL},
		ExchangeName:             constants.ExchangeRenovation,
		ExchangeType:             "direct",
		DurableExchange:          true,
		DeclareExchangeIfMissing: true,
		Logger:                   rabbitmq_adapter.NewPkgLoggerBridge(producerLogger),
	}
	eventProducer, err := rabbitmq_producer.NewPublisher(producerCfg, connManager)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create event producer: %w", err)
	}
	appLogger.Info("RabbitMQ Event Producer initialized.", nil)

	estimatePublisher, err := rabbitmq_adapter.NewEstimatePublisherAdapter(eventProducer, constants.RoutingKeyPropertyEstimate)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create estimate publisher adapter: %w", err)
	}

	// Use cases
	estimatePropertyUseCase := usecase.NewEstimatePropertyUseCase(estimateRepository, estimatePublisher)
	getEstimateUseCase := usecase.NewGetEstimateUseCase(estimateRepository)
	appLogger.Info("All use cases initialized.", nil)

	// Incoming adapters
	assessmentConsumerCfg := rabbitmq_consumer.ConsumerConfig{
		Config:              rabbitmq_common.Config{URL: appConfig.RabbitMQ.URL},
		QueueName:           constants.QueueRoomAssessments,
		DurableQueue:        true,
		ExchangeNameForBind: constants.ExchangeRenovation,
		RoutingKeyForBind:   constants.RoutingKeyRoomAssessments,
		PrefetchCount:       1,
		ConsumerTag:         "cost-engine-assessments",
		DeclareQueue:        true,

		EnableRetryMechanism: true,

		RetryExchange: constants.QueueRoomAssessments + "_retry_ex",
		RetryQueue:    constants.QueueRoomAssessments + "_retry_wait_10s",
		RetryTTL:      10000,

		FinalDLXExchange:   constants.FinalDLXExchange,
		FinalDLQ:           constants.FinalDLQ,
		FinalDLQRoutingKey: constants.FinalDLQRoutingKey,

		MaxRetries: 3,
	}
	consumerLogger := baseLogger.WithFields(port.Fields{"component": "rabbitmq_consumer"})
	assessmentListener, err := rabbitmq_adapter.NewAssessmentConsumerAdapter(assessmentConsumerCfg, estimatePropertyUseCase, consumerLogger, connManager)
	if err != nil {
		dbPool.Close()
		return nil, err
	}
	appLogger.Info("Room Assessment Events Listener initialized.", nil)

	// REST API server
	apiHandlers := rest.NewEstimateHandlers(estimatePropertyUseCase, getEstimateUseCase)
	apiServer := rest.NewServer(appConfig.Rest.PORT, appConfig.Rest.CORSAllowedOrigin, apiHandlers, baseLogger)

	application := &App{
		config:                   appConfig,
		dbPool:                   dbPool,
		apiServer:                apiServer,
		assessmentEventsListener: assessmentListener,
		eventProducer:            eventProducer,
		logger:                   appLogger,
		fluentClient:             fluentClient,
	}

	return application, nil
}

// Run starts all components and manages their lifecycle.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())

	var wg sync.WaitGroup

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		a.logger.Info("Waiting for background processes to finish...", nil)
		wg.Wait()

		if a.assessmentEventsListener != nil {
			if err := a.assessmentEventsListener.Close(); err != nil {
				a.logger.Error("Error closing assessment events listener", err, nil)
			}
		}

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.eventProducer != nil {
			if err := a.eventProducer.Close(); err != nil {
				a.logger.Error("Error closing event producer", err, nil)
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// Log to stdout, fluent itself may already be gone.
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	componentErrors := make(chan error, 1)

	wg.Add(1)
	go func() {
		defer wg.Done()
		a.logger.Info("Starting Room Assessment Events Listener...", nil)
		if err := a.assessmentEventsListener.Start(appCtx); err != nil {
			a.logger.Error("Assessment listener stopped with an unexpected error", err, nil)
			componentErrors <- fmt.Errorf("assessment listener error: %w", err)
		}
	}()

	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			componentErrors <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or component error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-componentErrors:
		a.logger.Error("A critical component failed, shutting down", err, nil)
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	}

	cancelApp()

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
