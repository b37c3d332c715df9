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

	cancelBookingHandler "github.com/m04kA/TMS-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/TMS-BookingService/internal/api/handlers/create_booking"
	createScheduleHandler "github.com/m04kA/TMS-BookingService/internal/api/handlers/create_schedule"
	createTourHandler "github.com/m04kA/TMS-BookingService/internal/api/handlers/create_tour"
	deleteScheduleHandler "github.com/m04kA/TMS-BookingService/internal/api/handlers/delete_schedule"
	deleteTourHandler "github.com/m04kA/TMS-BookingService/internal/api/handlers/delete_tour"
	getBookingHandler "github.com/m04kA/TMS-BookingService/internal/api/handlers/get_booking"
	getScheduleHandler "github.com/m04kA/TMS-BookingService/internal/api/handlers/get_schedule"
	getTourHandler "github.com/m04kA/TMS-BookingService/internal/api/handlers/get_tour"
	listBookingsHandler "github.com/m04kA/TMS-BookingService/internal/api/handlers/list_bookings"
	listSchedulesHandler "github.com/m04kA/TMS-BookingService/internal/api/handlers/list_schedules"
	listToursHandler "github.com/m04kA/TMS-BookingService/internal/api/handlers/list_tours"
	updateBookingStatusHandler "github.com/m04kA/TMS-BookingService/internal/api/handlers/update_booking_status"
	updateScheduleHandler "github.com/m04kA/TMS-BookingService/internal/api/handlers/update_schedule"
	updateTourHandler "github.com/m04kA/TMS-BookingService/internal/api/handlers/update_tour"
	"github.com/m04kA/TMS-BookingService/internal/api/middleware"
	"github.com/m04kA/TMS-BookingService/internal/config"
	bookingRepo "github.com/m04kA/TMS-BookingService/internal/infra/storage/booking"
	scheduleRepo "github.com/m04kA/TMS-BookingService/internal/infra/storage/schedule"
	tourRepo "github.com/m04kA/TMS-BookingService/internal/infra/storage/tour"
	userServiceClient "github.com/m04kA/TMS-BookingService/internal/integrations/userservice"
	bookingsService "github.com/m04kA/TMS-BookingService/internal/service/bookings"
	schedulesService "github.com/m04kA/TMS-BookingService/internal/service/schedules"
	toursService "github.com/m04kA/TMS-BookingService/internal/service/tours"
	changeBookingStatusUC "github.com/m04kA/TMS-BookingService/internal/usecase/change_booking_status"
	createBookingUC "github.com/m04kA/TMS-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/TMS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/TMS-BookingService/pkg/logger"
	"github.com/m04kA/TMS-BookingService/pkg/metrics"
	"github.com/m04kA/TMS-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/TMS-BookingService/pkg/txmanager"
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

	log.Info("Starting TMS-BookingService...")
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

	// Инициализируем клиент сервиса пользователей
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (UserService=%s timeout=%ds)",
		cfg.UserService.URL, cfg.UserService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		scheduleRepository *scheduleRepo.Repository
		tourRepository     *tourRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		tourRepository = tourRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		tourRepository = tourRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	scheduleSvc := schedulesService.NewService(scheduleRepository, tourRepository, bookingRepository, log)
	tourSvc := toursService.NewService(tourRepository, scheduleRepository, bookingRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		tourRepository,
		userClient,
		txMgr,
		log,
	)
	changeBookingStatusUseCase := changeBookingStatusUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(changeBookingStatusUseCase, bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(changeBookingStatusUseCase, log)

	listTours := listToursHandler.NewHandler(tourSvc, log)
	getTour := getTourHandler.NewHandler(tourSvc, log)
	createTour := createTourHandler.NewHandler(tourSvc, log)
	updateTour := updateTourHandler.NewHandler(tourSvc, log)
	deleteTour := deleteTourHandler.NewHandler(tourSvc, log)

	listSchedules := listSchedulesHandler.NewHandler(scheduleSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	createSchedule := createScheduleHandler.NewHandler(scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(scheduleSvc, log)
	deleteSchedule := deleteScheduleHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог туров с фильтрацией и предстоящими выездами
	api.HandleFunc("/tours", listTours.Handle).Methods(http.MethodGet)
	api.HandleFunc("/tours/{tourId}", getTour.Handle).Methods(http.MethodGet)

	// Выезды с производным числом свободных мест
	api.HandleFunc("/schedules", listSchedules.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedules/{scheduleId}", getSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание брони
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Брони текущего пользователя
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Получение брони по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена собственной брони
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// ============================================================
	// ADMIN ROUTES (требуют роль admin)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.Auth, middleware.AdminOnly)

	// Переводы статусов броней (в т.ч. подтверждение с проверкой мест)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Управление каталогом туров
	admin.HandleFunc("/tours", createTour.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/tours/{tourId}", updateTour.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/tours/{tourId}", deleteTour.Handle).Methods(http.MethodDelete)

	// Управление выездами
	admin.HandleFunc("/schedules", createSchedule.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/schedules/{scheduleId}", updateSchedule.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/schedules/{scheduleId}", deleteSchedule.Handle).Methods(http.MethodDelete)

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
