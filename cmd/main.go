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

	createCourtHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/create_court"
	createReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/create_reservation"
	deleteCourtHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/delete_court"
	deleteReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/delete_reservation"
	getCourtHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_court"
	getReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_reservation"
	listByCourtHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/list_by_court"
	listByPhoneHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/list_by_phone"
	listCourtsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/list_courts"
	listReservationsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/list_reservations"
	updateCourtHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/update_court"
	updateReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/update_reservation"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/config"
	"github.com/m04kA/SMC-ReservationService/internal/infra/seed"
	courtRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/court"
	customerRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/customer"
	gameTypeRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/gametype"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	surfaceRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/surface"
	courtsService "github.com/m04kA/SMC-ReservationService/internal/service/courts"
	reservationsService "github.com/m04kA/SMC-ReservationService/internal/service/reservations"
	createReservationUC "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
	updateReservationUC "github.com/m04kA/SMC-ReservationService/internal/usecase/update_reservation"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
	"github.com/m04kA/SMC-ReservationService/pkg/metrics"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
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

	log.Info("Starting SMC-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Выбираем executor: с обёрткой метрик или без
	var executor txmanager.DB = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	// Инициализируем репозитории
	surfaceRepository := surfaceRepo.NewRepository(executor)
	courtRepository := courtRepo.NewRepository(executor)
	gameTypeRepository := gameTypeRepo.NewRepository(executor)
	customerRepository := customerRepo.NewRepository(executor)
	reservationRepository := reservationRepo.NewRepository(executor)

	txMgr := txmanager.NewTransactionManager(executor)

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		courtRepository,
		customerRepository,
		log,
	)
	courtSvc := courtsService.NewService(
		courtRepository,
		surfaceRepository,
		reservationRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		courtRepository,
		gameTypeRepository,
		customerRepository,
		txMgr,
		log,
	)
	updateReservationUseCase := updateReservationUC.NewUseCase(
		reservationRepository,
		courtRepository,
		gameTypeRepository,
		customerRepository,
		txMgr,
		log,
	)

	// Заполняем базу демонстрационными данными (если включено)
	if cfg.App.SeedData {
		seeder := seed.NewSeeder(
			surfaceRepository,
			gameTypeRepository,
			customerRepository,
			courtSvc,
			createReservationUseCase,
			log,
		)
		seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
		if err := seeder.Run(seedCtx); err != nil {
			cancelSeed()
			log.Fatal("Failed to seed demo data: %v", err)
		}
		cancelSeed()
	}

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	updateReservation := updateReservationHandler.NewHandler(updateReservationUseCase, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	listByCourt := listByCourtHandler.NewHandler(reservationSvc, log)
	listByPhone := listByPhoneHandler.NewHandler(reservationSvc, log)
	createCourt := createCourtHandler.NewHandler(courtSvc, log)
	updateCourt := updateCourtHandler.NewHandler(courtSvc, log)
	deleteCourt := deleteCourtHandler.NewHandler(courtSvc, log)
	getCourt := getCourtHandler.NewHandler(courtSvc, log)
	listCourts := listCourtsHandler.NewHandler(courtSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Бронирования ---
	reservation := api.PathPrefix("/reservation").Subrouter()
	reservation.HandleFunc("/", listReservations.Handle).Methods(http.MethodGet)
	reservation.HandleFunc("/get", getReservation.Handle).Methods(http.MethodGet)
	reservation.HandleFunc("/by-court", listByCourt.Handle).Methods(http.MethodPost)
	reservation.HandleFunc("/by-phone", listByPhone.Handle).Methods(http.MethodPost)
	reservation.HandleFunc("/create", createReservation.Handle).Methods(http.MethodPost)
	reservation.HandleFunc("/update", updateReservation.Handle).Methods(http.MethodPut)
	reservation.HandleFunc("/delete", deleteReservation.Handle).Methods(http.MethodDelete)

	// --- Корты ---
	court := api.PathPrefix("/court").Subrouter()
	court.HandleFunc("/", listCourts.Handle).Methods(http.MethodGet)
	court.HandleFunc("/get", getCourt.Handle).Methods(http.MethodGet)
	court.HandleFunc("/create", createCourt.Handle).Methods(http.MethodPost)
	court.HandleFunc("/update", updateCourt.Handle).Methods(http.MethodPut)
	court.HandleFunc("/delete", deleteCourt.Handle).Methods(http.MethodDelete)

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
