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
	"syscall"

	logger_adapter "listing-service/internal/adapters/logger"
	rabbitmq_adapter "listing-service/internal/adapters/rabbitmq"
	"listing-service/internal/adapters/rest"
	"listing-service/internal/adapters/sanity"
	"listing-service/internal/configs"
	"listing-service/internal/constants"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/core/usecase"

	fluentlogger "listing-service/pkg/fluent_logger"
	"listing-service/pkg/rabbitmq/rabbitmq_common"
	"listing-service/pkg/rabbitmq/rabbitmq_producer"

	"github.com/fluent/fluent-logger-golang/fluent"
)

// App – структура приложения
type App struct {
	config       *configs.AppConfig
	apiServer    *rest.Server
	fluentClient *fluent.Fluent
	logger       port.LoggerPort

	inquiryEventsProducer *rabbitmq_producer.Publisher
}

// noopInquiryNotifier используется, когда RabbitMQ выключен конфигурацией:
// заявки сохраняются, событие просто не публикуется.
type noopInquiryNotifier struct {
	logger port.LoggerPort
}

func (n *noopInquiryNotifier) NotifyInquiryCreated(ctx context.Context, inquiryID string, inquiry domain.Inquiry) error {
	n.logger.Debug("RabbitMQ disabled, skipping inquiry-created event", port.Fields{"inquiry_id": inquiryID})
	return nil
}

// NewApp создает новый экземпляр приложения.
// Это "Composition Root", где все зависимости создаются и связываются.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false, // текстовый формат
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	// Добавляем Fluent Bit логгер, если он включен в конфигурации
	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName, // Используем имя приложения как префикс
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

	// Создаем наш композитный логгер
	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	// --- 2. СОЗДАЕМ БАЗОВЫЙ ЛОГГЕР ПРИЛОЖЕНИЯ С КОНТЕКСТОМ ---
	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 3. ИНИЦИАЛИЗАЦИЯ ИСХОДЯЩИХ АДАПТЕРОВ ---
	// Клиент контент-хранилища создается один раз и дальше только читается.
	contentClient, err := sanity.NewClient(sanity.Config{
		ProjectID:  appConfig.ContentStore.ProjectID,
		Dataset:    appConfig.ContentStore.Dataset,
		APIVersion: appConfig.ContentStore.APIVersion,
		Token:      appConfig.ContentStore.Token,
		UseCDN:     appConfig.ContentStore.UseCDN,
	})
	if err != nil {
		appLogger.Error("Failed to create content store client", err, nil)
		return nil, fmt.Errorf("failed to create content store client: %w", err)
	}
	appLogger.Info("Content store client initialized.", port.Fields{
		"dataset": appConfig.ContentStore.Dataset, "use_cdn": appConfig.ContentStore.UseCDN,
	})

	listingStoreAdapter := sanity.NewListingStoreAdapter(contentClient)
	inquiryStoreAdapter := sanity.NewInquiryStoreAdapter(contentClient)
	imageURLBuilder := sanity.NewImageURLBuilder(contentClient)

	// RabbitMQ опционален: без него путь записи работает, но событие
	// для пайплайна уведомлений не уходит.
	var inquiryNotifier port.InquiryNotifierPort = &noopInquiryNotifier{logger: baseLogger}
	var eventProducer *rabbitmq_producer.Publisher
	if appConfig.RabbitMQ.Enabled {
		connManagerLogger := baseLogger.WithFields(port.Fields{"component": "rabbitmq_conn_manager"})
		connManagerBridge := rabbitmq_adapter.NewPkgLoggerBridge(connManagerLogger)
		connManager, err := rabbitmq_common.GetManager(appConfig.RabbitMQ.URL, connManagerBridge)
		if err != nil {
			appLogger.Error("Failed to create connection manager", err, nil)
			return nil, fmt.Errorf("failed to create connection manager: %w", err)
		}
		appLogger.Info("RabbitMQ Connection Manager initialized.", nil)

		producerLogger := baseLogger.WithFields(port.Fields{"component": "rabbitmq_producer"})
		producerCfg := rabbitmq_producer.PublisherConfig{
			Config:                   rabbitmq_common.Config{URL: appConfig.RabbitMQ.URL},
			ExchangeName:             constants.InquiryExchange,
			ExchangeType:             constants.InquiryExchangeType,
			DurableExchange:          true,
			DeclareExchangeIfMissing: true,

			Logger: rabbitmq_adapter.NewPkgLoggerBridge(producerLogger),
		}
		eventProducer, err = rabbitmq_producer.NewPublisher(producerCfg, connManager)
		if err != nil {
			appLogger.Error("Failed to create event producer", err, nil)
			return nil, fmt.Errorf("failed to create event producer: %w", err)
		}
		appLogger.Info("RabbitMQ Event Producer initialized.", nil)

		notifierAdapter, err := rabbitmq_adapter.NewInquiryNotifierAdapter(eventProducer, constants.RoutingKeyInquiryCreated)
		if err != nil {
			appLogger.Error("Failed to create inquiry notifier adapter", err, nil)
			return nil, err
		}
		inquiryNotifier = notifierAdapter
	}
	appLogger.Info("All outgoing adapters initialized.", nil)

	// --- 4. ИНИЦИАЛИЗАЦИЯ USE CASES (ядра бизнес-логики) ---
	browseListingsUseCase := usecase.NewBrowseListingsUseCase(listingStoreAdapter)
	getListingDetailsUseCase := usecase.NewGetListingDetailsUseCase(listingStoreAdapter)
	getFeaturedListingsUseCase := usecase.NewGetFeaturedListingsUseCase(listingStoreAdapter)
	getListingCountsUseCase := usecase.NewGetListingCountsUseCase(listingStoreAdapter)
	submitInquiryUseCase := usecase.NewSubmitInquiryUseCase(inquiryStoreAdapter, inquiryNotifier)

	appLogger.Info("All use cases initialized.", nil)

	// --- 5. REST API Server ---
	listingsHandlers := rest.NewListingsHandler(
		browseListingsUseCase,
		getListingDetailsUseCase,
		getFeaturedListingsUseCase,
		getListingCountsUseCase,
		imageURLBuilder,
	)
	inquiryHandlers := rest.NewInquiryHandler(submitInquiryUseCase)

	apiServer := rest.NewServer(appConfig.Rest.PORT, listingsHandlers, inquiryHandlers, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	application := &App{
		config:                appConfig,
		apiServer:             apiServer,
		inquiryEventsProducer: eventProducer,

		fluentClient: fluentClient,
		logger:       appLogger,
	}

	return application, nil
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.inquiryEventsProducer != nil {
			if err := a.inquiryEventsProducer.Close(); err != nil {
				a.logger.Error("Error closing event producer", err, nil)
			}
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// Логируем в stdout, так как fluent может быть уже недоступен
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 1)

	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	// Ожидание сигнала на завершение или ошибки от одного из компонентов
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-errorsCh:
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
		// Возвращаем безопасное значение по умолчанию и логируем предупреждение
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
