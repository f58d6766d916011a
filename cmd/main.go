package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	acknowledgeDraftHandler "github.com/m04kA/HSM-BookingGateway/internal/api/handlers/acknowledge_draft"
	confirmDraftHandler "github.com/m04kA/HSM-BookingGateway/internal/api/handlers/confirm_draft"
	createDraftHandler "github.com/m04kA/HSM-BookingGateway/internal/api/handlers/create_draft"
	discardDraftHandler "github.com/m04kA/HSM-BookingGateway/internal/api/handlers/discard_draft"
	getCalendarHandler "github.com/m04kA/HSM-BookingGateway/internal/api/handlers/get_calendar"
	getDraftHandler "github.com/m04kA/HSM-BookingGateway/internal/api/handlers/get_draft"
	getTimeSlotsHandler "github.com/m04kA/HSM-BookingGateway/internal/api/handlers/get_time_slots"
	listBookingsHandler "github.com/m04kA/HSM-BookingGateway/internal/api/handlers/list_bookings"
	locateDraftHandler "github.com/m04kA/HSM-BookingGateway/internal/api/handlers/locate_draft"
	reopenDraftHandler "github.com/m04kA/HSM-BookingGateway/internal/api/handlers/reopen_draft"
	searchAddressHandler "github.com/m04kA/HSM-BookingGateway/internal/api/handlers/search_address"
	submitDraftHandler "github.com/m04kA/HSM-BookingGateway/internal/api/handlers/submit_draft"
	updateDraftHandler "github.com/m04kA/HSM-BookingGateway/internal/api/handlers/update_draft"
	"github.com/m04kA/HSM-BookingGateway/internal/api/middleware"
	"github.com/m04kA/HSM-BookingGateway/internal/config"
	draftRepo "github.com/m04kA/HSM-BookingGateway/internal/infra/storage/draft"
	bookingAPIClient "github.com/m04kA/HSM-BookingGateway/internal/integrations/bookingapi"
	geocoderClient "github.com/m04kA/HSM-BookingGateway/internal/integrations/geocoder"
	draftsService "github.com/m04kA/HSM-BookingGateway/internal/service/drafts"
	"github.com/m04kA/HSM-BookingGateway/internal/service/reaper"
	getTimeSlotsUC "github.com/m04kA/HSM-BookingGateway/internal/usecase/get_time_slots"
	locateDraftUC "github.com/m04kA/HSM-BookingGateway/internal/usecase/locate_draft"
	searchAddressUC "github.com/m04kA/HSM-BookingGateway/internal/usecase/search_address"
	submitBookingUC "github.com/m04kA/HSM-BookingGateway/internal/usecase/submit_booking"
	"github.com/m04kA/HSM-BookingGateway/pkg/dbmetrics"
	"github.com/m04kA/HSM-BookingGateway/pkg/logger"
	"github.com/m04kA/HSM-BookingGateway/pkg/metrics"
	"github.com/m04kA/HSM-BookingGateway/pkg/simpletxmanager"
	"github.com/m04kA/HSM-BookingGateway/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting HSM-BookingGateway...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем интеграционных клиентов
	apiClient := bookingAPIClient.NewClient(
		cfg.BookingAPI.URL,
		time.Duration(cfg.BookingAPI.Timeout)*time.Second,
		log,
	)
	geoClient := geocoderClient.NewClient(
		cfg.Geocoder.URL,
		time.Duration(cfg.Geocoder.Timeout)*time.Second,
		cfg.Geocoder.UserAgent,
		log,
	)
	log.Info("Integration clients initialized (BookingAPI=%s timeout=%ds, Geocoder=%s timeout=%ds)",
		cfg.BookingAPI.URL, cfg.BookingAPI.Timeout, cfg.Geocoder.URL, cfg.Geocoder.Timeout)

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var draftRepository *draftRepo.Repository

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		draftRepository = draftRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		draftRepository = draftRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	draftSvc := draftsService.NewService(
		draftRepository,
		apiClient,
		log,
	)

	// Инициализируем use cases
	submitBookingUseCase := submitBookingUC.NewUseCase(
		draftRepository,
		apiClient,
		txMgr,
		log,
	)
	locateDraftUseCase := locateDraftUC.NewUseCase(draftRepository, geoClient, log)
	searchAddressUseCase := searchAddressUC.NewUseCase(draftRepository, geoClient, log)
	getTimeSlotsUseCase := getTimeSlotsUC.NewUseCase(draftRepository, log)

	// Инициализируем handlers
	getCalendar := getCalendarHandler.NewHandler(log)
	createDraft := createDraftHandler.NewHandler(draftSvc, log)
	getDraft := getDraftHandler.NewHandler(draftSvc, log)
	discardDraft := discardDraftHandler.NewHandler(draftSvc, log)
	updateDraft := updateDraftHandler.NewHandler(draftSvc, log)
	confirmDraft := confirmDraftHandler.NewHandler(draftSvc, log)
	reopenDraft := reopenDraftHandler.NewHandler(draftSvc, log)
	acknowledgeDraft := acknowledgeDraftHandler.NewHandler(draftSvc, log)
	getTimeSlots := getTimeSlotsHandler.NewHandler(getTimeSlotsUseCase, log)
	locateDraft := locateDraftHandler.NewHandler(locateDraftUseCase, log)
	searchAddress := searchAddressHandler.NewHandler(searchAddressUseCase, log)
	submitDraft := submitDraftHandler.NewHandler(submitBookingUseCase, log)
	listBookings := listBookingsHandler.NewHandler(apiClient, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix; bearer-токен (если есть) кладется в контекст для всех роутов
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.WithCredential)

	// Календарная сетка месяца
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// Жизненный цикл черновика бронирования
	api.HandleFunc("/services/{serviceId}/drafts", createDraft.Handle).Methods(http.MethodPost)
	api.HandleFunc("/drafts/{draftId}", getDraft.Handle).Methods(http.MethodGet)
	api.HandleFunc("/drafts/{draftId}", updateDraft.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/drafts/{draftId}", discardDraft.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/drafts/{draftId}/time-slots", getTimeSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/drafts/{draftId}/locate", locateDraft.Handle).Methods(http.MethodPost)
	api.HandleFunc("/drafts/{draftId}/address/search", searchAddress.Handle).Methods(http.MethodPost)
	api.HandleFunc("/drafts/{draftId}/confirm", confirmDraft.Handle).Methods(http.MethodPost)
	api.HandleFunc("/drafts/{draftId}/reopen", reopenDraft.Handle).Methods(http.MethodPost)
	api.HandleFunc("/drafts/{draftId}/submit", submitDraft.Handle).Methods(http.MethodPost)
	api.HandleFunc("/drafts/{draftId}/acknowledge", acknowledgeDraft.Handle).Methods(http.MethodPost)

	// Список бронирований пользователя (прокси бэкенда)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Запускаем сборщик заброшенных черновиков
	reaperCtx, stopReaper := context.WithCancel(context.Background())
	draftReaper := reaper.New(
		draftRepository,
		time.Duration(cfg.Drafts.TTLMinutes)*time.Minute,
		time.Duration(cfg.Drafts.ReapIntervalMinutes)*time.Minute,
		log,
	)
	go draftReaper.Run(reaperCtx)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сборщик черновиков
	stopReaper()

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
