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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	buildScheduleGridHandler "github.com/m04kA/SMC-ApplicationRounds/internal/api/handlers/build_schedule_grid"
	checkCollisionsHandler "github.com/m04kA/SMC-ApplicationRounds/internal/api/handlers/check_collisions"
	checkMinDurationHandler "github.com/m04kA/SMC-ApplicationRounds/internal/api/handlers/check_min_duration"
	getAllocationCapacityHandler "github.com/m04kA/SMC-ApplicationRounds/internal/api/handlers/get_allocation_capacity"
	saveScheduleGridHandler "github.com/m04kA/SMC-ApplicationRounds/internal/api/handlers/save_schedule_grid"
	"github.com/m04kA/SMC-ApplicationRounds/internal/api/middleware"
	"github.com/m04kA/SMC-ApplicationRounds/internal/config"
	openingHoursCache "github.com/m04kA/SMC-ApplicationRounds/internal/infra/cache/openinghours"
	allocationRepo "github.com/m04kA/SMC-ApplicationRounds/internal/infra/storage/allocation"
	applicationRepo "github.com/m04kA/SMC-ApplicationRounds/internal/infra/storage/application"
	reservationRepo "github.com/m04kA/SMC-ApplicationRounds/internal/infra/storage/reservation"
	reservationUnitRepo "github.com/m04kA/SMC-ApplicationRounds/internal/infra/storage/reservationunit"
	buildScheduleGridUC "github.com/m04kA/SMC-ApplicationRounds/internal/usecase/build_schedule_grid"
	checkCollisionsUC "github.com/m04kA/SMC-ApplicationRounds/internal/usecase/check_collisions"
	checkMinDurationUC "github.com/m04kA/SMC-ApplicationRounds/internal/usecase/check_min_duration"
	getAllocationCapacityUC "github.com/m04kA/SMC-ApplicationRounds/internal/usecase/get_allocation_capacity"
	saveScheduleGridUC "github.com/m04kA/SMC-ApplicationRounds/internal/usecase/save_schedule_grid"
	"github.com/m04kA/SMC-ApplicationRounds/pkg/dbmetrics"
	"github.com/m04kA/SMC-ApplicationRounds/pkg/logger"
	"github.com/m04kA/SMC-ApplicationRounds/pkg/metrics"
	"github.com/m04kA/SMC-ApplicationRounds/pkg/txmanager"
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

	log.Info("Starting SMC-ApplicationRounds...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены).
	// Выключенные метрики = nil: методы Record* безопасны для nil
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, prometheus.DefaultRegisterer)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Часовой пояс, в котором недельные интервалы разворачиваются в даты
	location, err := time.LoadLocation(cfg.Schedule.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Schedule.Timezone, err)
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

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Инициализируем репозитории
	applicationRepository := applicationRepo.NewRepository(wrappedDB)
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	reservationUnitRepository := reservationUnitRepo.NewRepository(wrappedDB)
	allocationRepository := allocationRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Часы работы: через redis, если он включён, иначе напрямую из базы
	var openingHours buildScheduleGridUC.OpeningHoursProvider = reservationUnitRepository
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			// кэш не обязателен: при ошибках redis запросы идут в базу
			log.Warn("Redis is unavailable (addr=%s): %v", cfg.Redis.Addr, err)
		}
		cancel()

		openingHours = openingHoursCache.NewCache(
			rdb,
			reservationUnitRepository,
			time.Duration(cfg.Redis.TTL)*time.Second,
			log,
		)
		log.Info("Opening hours cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
	}

	// Инициализируем use cases
	buildScheduleGridUseCase := buildScheduleGridUC.NewUseCase(
		applicationRepository,
		openingHours,
		cfg.Schedule.Window(),
		metricsCollector,
		log,
	)

	saveScheduleGridUseCase := saveScheduleGridUC.NewUseCase(
		applicationRepository,
		txMgr,
		cfg.Schedule.Window(),
		cfg.Schedule.Policy(),
		metricsCollector,
		log,
	)

	checkMinDurationUseCase := checkMinDurationUC.NewUseCase(
		applicationRepository,
		cfg.Schedule.Window(),
		cfg.Schedule.Policy(),
		metricsCollector,
		log,
	)

	checkCollisionsUseCase := checkCollisionsUC.NewUseCase(
		reservationUnitRepository,
		reservationRepository,
		location,
		metricsCollector,
		log,
	)

	getAllocationCapacityUseCase := getAllocationCapacityUC.NewUseCase(allocationRepository, log)

	// Инициализируем handlers
	buildScheduleGrid := buildScheduleGridHandler.NewHandler(buildScheduleGridUseCase, log)
	saveScheduleGrid := saveScheduleGridHandler.NewHandler(saveScheduleGridUseCase, log)
	checkMinDuration := checkMinDurationHandler.NewHandler(checkMinDurationUseCase, log)
	checkCollisions := checkCollisionsHandler.NewHandler(checkCollisionsUseCase, log)
	getAllocationCapacity := getAllocationCapacityHandler.NewHandler(getAllocationCapacityUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Сетка выбранных часов секции (с часами работы помещения, если указано)
	api.HandleFunc("/application-sections/{sectionId}/grid",
		buildScheduleGrid.Handle).Methods(http.MethodGet)

	// Проверка минимальной длительности по секциям заявки
	api.HandleFunc("/applications/{applicationId}/duration-check",
		checkMinDuration.Handle).Methods(http.MethodGet)

	// Проверка пересечений с существующими бронированиями помещения
	api.HandleFunc("/reservation-units/{unitId}/collisions",
		checkCollisions.Handle).Methods(http.MethodPost)

	// Ёмкость распределения раунда
	api.HandleFunc("/application-rounds/{roundId}/capacity",
		getAllocationCapacity.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Сохранение сетки секции
	protected.HandleFunc("/application-sections/{sectionId}/grid",
		saveScheduleGrid.Handle).Methods(http.MethodPut)

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
	close(stopMetricsCh)

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
