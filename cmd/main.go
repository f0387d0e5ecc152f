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

	applicationActionHandler "github.com/Rxdxy/grooming-booking/internal/api/handlers/application_action"
	availabilityEventsHandler "github.com/Rxdxy/grooming-booking/internal/api/handlers/availability_events"
	availabilitySlotsHandler "github.com/Rxdxy/grooming-booking/internal/api/handlers/availability_slots"
	bookingActionHandler "github.com/Rxdxy/grooming-booking/internal/api/handlers/booking_action"
	calendarEventsHandler "github.com/Rxdxy/grooming-booking/internal/api/handlers/calendar_events"
	clientActionHandler "github.com/Rxdxy/grooming-booking/internal/api/handlers/client_action"
	createApplicationHandler "github.com/Rxdxy/grooming-booking/internal/api/handlers/create_application"
	createBookingHandler "github.com/Rxdxy/grooming-booking/internal/api/handlers/create_booking"
	getBookingHandler "github.com/Rxdxy/grooming-booking/internal/api/handlers/get_booking"
	listApplicationsHandler "github.com/Rxdxy/grooming-booking/internal/api/handlers/list_applications"
	listBookingsHandler "github.com/Rxdxy/grooming-booking/internal/api/handlers/list_bookings"
	listClientsHandler "github.com/Rxdxy/grooming-booking/internal/api/handlers/list_clients"
	listServicesHandler "github.com/Rxdxy/grooming-booking/internal/api/handlers/list_services"
	scheduleBookingHandler "github.com/Rxdxy/grooming-booking/internal/api/handlers/schedule_booking"
	"github.com/Rxdxy/grooming-booking/internal/api/middleware"
	"github.com/Rxdxy/grooming-booking/internal/config"
	applicationRepo "github.com/Rxdxy/grooming-booking/internal/infra/storage/application"
	bookingRepo "github.com/Rxdxy/grooming-booking/internal/infra/storage/booking"
	clientRepo "github.com/Rxdxy/grooming-booking/internal/infra/storage/client"
	servicesRepo "github.com/Rxdxy/grooming-booking/internal/infra/storage/services"
	applicationsService "github.com/Rxdxy/grooming-booking/internal/service/applications"
	bookingsService "github.com/Rxdxy/grooming-booking/internal/service/bookings"
	clientsService "github.com/Rxdxy/grooming-booking/internal/service/clients"
	createBookingUC "github.com/Rxdxy/grooming-booking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/Rxdxy/grooming-booking/internal/usecase/get_available_slots"
	scheduleBookingUC "github.com/Rxdxy/grooming-booking/internal/usecase/schedule_booking"
	"github.com/Rxdxy/grooming-booking/pkg/dbmetrics"
	"github.com/Rxdxy/grooming-booking/pkg/logger"
	"github.com/Rxdxy/grooming-booking/pkg/metrics"
	"github.com/Rxdxy/grooming-booking/pkg/simpletxmanager"
	"github.com/Rxdxy/grooming-booking/pkg/txmanager"
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

	log.Info("Starting grooming-booking service...")
	log.Info("Configuration loaded from config.toml")

	// Расписание бизнеса: таймзона, рабочие часы, размер слота
	schedule, err := cfg.Schedule.ToDomain()
	if err != nil {
		log.Fatal("Failed to load business schedule: %v", err)
	}
	log.Info("Business schedule: %s, %02d:00-%02d:00, slot=%dm",
		cfg.Schedule.Timezone, schedule.OpenHour, schedule.CloseHour, schedule.SlotDurationMinutes)

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

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository     *bookingRepo.Repository
		clientRepository      *clientRepo.Repository
		applicationRepository *applicationRepo.Repository
		servicesRepository    *servicesRepo.Repository
	)

	// Интерфейс transaction manager: Do для решений по заявкам,
	// DoSerializable для конфликтных путей бронирований
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		clientRepository = clientRepo.NewRepository(wrappedDB)
		applicationRepository = applicationRepo.NewRepository(wrappedDB)
		servicesRepository = servicesRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		clientRepository = clientRepo.NewRepository(db)
		applicationRepository = applicationRepo.NewRepository(db)
		servicesRepository = servicesRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, schedule.Location, log)
	clientSvc := clientsService.NewService(clientRepository, log)
	applicationSvc := applicationsService.NewService(
		applicationRepository,
		clientRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		clientRepository,
		servicesRepository,
		txMgr,
		log,
	)
	scheduleBookingUseCase := scheduleBookingUC.NewUseCase(
		bookingRepository,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		schedule,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, schedule.Location, log)
	scheduleBooking := scheduleBookingHandler.NewHandler(scheduleBookingUseCase, schedule.Location, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	bookingAction := bookingActionHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, schedule.Location, log)
	availabilitySlots := availabilitySlotsHandler.NewHandler(getAvailableSlotsUseCase, schedule.Location, log)
	availabilityEvents := availabilityEventsHandler.NewHandler(bookingSvc, schedule.Location, log)
	calendarEvents := calendarEventsHandler.NewHandler(bookingSvc, schedule.Location, log)
	createApplication := createApplicationHandler.NewHandler(applicationSvc, log)
	applicationAction := applicationActionHandler.NewHandler(applicationSvc, log)
	listApplications := listApplicationsHandler.NewHandler(applicationSvc, log)
	listClients := listClientsHandler.NewHandler(clientSvc, log)
	clientAction := clientActionHandler.NewHandler(clientSvc, log)
	listServices := listServicesHandler.NewHandler(servicesRepository, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Свободные слоты для публичного виджета календаря
	api.HandleFunc("/availability/slots", availabilitySlots.Handle).Methods(http.MethodGet)

	// Анонимная лента занятых окон
	api.HandleFunc("/availability/events", availabilityEvents.Handle).Methods(http.MethodGet)

	// Каталог услуг груминга
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// Публичная форма заявки нового клиента
	api.HandleFunc("/applications", createApplication.Handle).Methods(http.MethodPost)

	// Публичная форма записи
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Staff-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/schedule", scheduleBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/{action}", bookingAction.Handle).Methods(http.MethodPatch)

	// --- Календарь персонала ---
	protected.HandleFunc("/calendar/events", calendarEvents.Handle).Methods(http.MethodGet)

	// --- Заявки новых клиентов ---
	protected.HandleFunc("/applications", listApplications.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/applications/{applicationId}/{action}", applicationAction.Handle).Methods(http.MethodPatch)

	// --- Клиенты ---
	protected.HandleFunc("/clients", listClients.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{clientId}/active", clientAction.Handle).Methods(http.MethodPatch)

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
