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
	goredis "github.com/redis/go-redis/v9"

	cancelAppointmentHandler "github.com/danielnamimi665/barber-shop-web/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/danielnamimi665/barber-shop-web/internal/api/handlers/create_appointment"
	eventsHandler "github.com/danielnamimi665/barber-shop-web/internal/api/handlers/events"
	getAppointmentHandler "github.com/danielnamimi665/barber-shop-web/internal/api/handlers/get_appointment"
	getAppointmentsHandler "github.com/danielnamimi665/barber-shop-web/internal/api/handlers/get_appointments"
	getAvailableSlotsHandler "github.com/danielnamimi665/barber-shop-web/internal/api/handlers/get_available_slots"
	getScheduleConfigHandler "github.com/danielnamimi665/barber-shop-web/internal/api/handlers/get_schedule_config"
	getUserAppointmentsHandler "github.com/danielnamimi665/barber-shop-web/internal/api/handlers/get_user_appointments"
	purgeCancelledHandler "github.com/danielnamimi665/barber-shop-web/internal/api/handlers/purge_cancelled"
	saveAllHandler "github.com/danielnamimi665/barber-shop-web/internal/api/handlers/save_all"
	updateStatusHandler "github.com/danielnamimi665/barber-shop-web/internal/api/handlers/update_status"
	"github.com/danielnamimi665/barber-shop-web/internal/api/middleware"
	"github.com/danielnamimi665/barber-shop-web/internal/clock"
	"github.com/danielnamimi665/barber-shop-web/internal/config"
	"github.com/danielnamimi665/barber-shop-web/internal/infra/storage"
	apptRepo "github.com/danielnamimi665/barber-shop-web/internal/infra/storage/appointment"
	identityClient "github.com/danielnamimi665/barber-shop-web/internal/integrations/identity"
	"github.com/danielnamimi665/barber-shop-web/internal/notify"
	appointmentsService "github.com/danielnamimi665/barber-shop-web/internal/service/appointments"
	scheduleService "github.com/danielnamimi665/barber-shop-web/internal/service/schedule"
	createAppointmentUC "github.com/danielnamimi665/barber-shop-web/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/danielnamimi665/barber-shop-web/internal/usecase/get_available_slots"
	cleanupWorker "github.com/danielnamimi665/barber-shop-web/internal/worker/cleanup"
	"github.com/danielnamimi665/barber-shop-web/pkg/logger"
	"github.com/danielnamimi665/barber-shop-web/pkg/metrics"
	"github.com/danielnamimi665/barber-shop-web/pkg/txmanager"
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

	log.Info("Starting barber-shop-web...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Расписание барбершопа фиксировано на уровне деплоя
	schedule, err := cfg.DomainSchedule()
	if err != nil {
		log.Fatal("Failed to build schedule config: %v", err)
	}

	// Часы в бизнес-поясе барбершопа
	businessClock, err := clock.New(schedule.Timezone)
	if err != nil {
		log.Fatal("Failed to initialize clock for timezone %s: %v", schedule.Timezone, err)
	}
	log.Info("Business clock initialized (timezone=%s)", schedule.Timezone)

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

	// Применяем миграции схемы
	if err := storage.RunMigrations(db, cfg.Database.MigrationsPath); err != nil {
		log.Fatal("Failed to run migrations: %v", err)
	}
	log.Info("Migrations applied (path=%s)", cfg.Database.MigrationsPath)

	// Интерфейсные обёртки метрик: typed-nil в интерфейсе ломает проверки на nil
	var (
		notifierMetrics notify.Metrics
		cleanupMetrics  cleanupWorker.Metrics
	)
	if metricsCollector != nil {
		notifierMetrics = metricsCollector
		cleanupMetrics = metricsCollector
	}

	// Инициализируем фан-аут событий между сессиями
	var (
		notifier   notify.Notifier = notify.Noop{}
		subscriber notify.Subscriber
	)
	if cfg.Redis.Enabled {
		redisClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
		}

		redisNotifier := notify.NewRedisNotifier(redisClient, cfg.Redis.Channel, log, notifierMetrics)
		notifier = redisNotifier
		subscriber = redisNotifier
		log.Info("Redis notifier initialized (addr=%s, channel=%s)", cfg.Redis.Addr, cfg.Redis.Channel)
	} else {
		log.Info("Redis notifier disabled, clients rely on polling")
	}

	// Инициализируем репозиторий и transaction manager
	appointmentRepository := apptRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем auth middleware.
	// Без настроенного auth-провайдера личность берётся из заголовков.
	var resolver middleware.IdentityResolver
	if cfg.IdentityService.URL != "" {
		resolver = identityClient.NewClient(
			cfg.IdentityService.URL,
			time.Duration(cfg.IdentityService.Timeout)*time.Second,
			log,
		)
		log.Info("Identity provider client initialized (url=%s, timeout=%ds)",
			cfg.IdentityService.URL, cfg.IdentityService.Timeout)
	} else {
		log.Info("Identity provider not configured, trusting X-User-ID header")
	}
	auth := middleware.NewAuth(resolver, log)

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(
		appointmentRepository,
		txMgr,
		businessClock,
		notifier,
		log,
	)
	scheduleSvc := scheduleService.NewService(schedule, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		txMgr,
		schedule,
		businessClock,
		notifier,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		schedule,
		businessClock,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAppointments := getAppointmentsHandler.NewHandler(appointmentSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	getUserAppointments := getUserAppointmentsHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	updateStatus := updateStatusHandler.NewHandler(appointmentSvc, log)
	saveAll := saveAllHandler.NewHandler(appointmentSvc, log)
	purgeCancelled := purgeCancelledHandler.NewHandler(appointmentSvc, log)
	getScheduleConfig := getScheduleConfigHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Сетка слотов на дату
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Расписание работы и параметры сетки
	api.HandleFunc("/schedule-config", getScheduleConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют аутентификации)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(auth.Middleware)

	// Подтверждение брони
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Самостоятельная отмена записи
	protected.HandleFunc("/appointments/cancel", cancelAppointment.Handle).Methods(http.MethodPost)

	// Поток событий изменения хранилища (если включён Redis)
	if subscriber != nil {
		events := eventsHandler.NewHandler(subscriber, log)
		protected.HandleFunc("/appointments/events", events.Handle).Methods(http.MethodGet)
		log.Info("Appointment events stream exposed at /api/v1/appointments/events")
	}

	// Одна запись по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Записи пользователя
	protected.HandleFunc("/users/{userId}/appointments", getUserAppointments.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (только администратор)
	// ============================================================

	admin := protected.PathPrefix("").Subrouter()
	admin.Use(auth.AdminOnly)

	// Всё хранилище, сгруппированное по датам
	admin.HandleFunc("/appointments", getAppointments.Handle).Methods(http.MethodGet)

	// Смена статуса одной записи
	admin.HandleFunc("/appointments/status", updateStatus.Handle).Methods(http.MethodPut)

	// Пакетный коммит отложенных правок
	admin.HandleFunc("/appointments/save-all", saveAll.Handle).Methods(http.MethodPost)

	// Чистка отменённых записей
	admin.HandleFunc("/appointments", purgeCancelled.Handle).Methods(http.MethodDelete)

	// Фоновая чистка просроченных записей
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	cleanupJob := cleanupWorker.NewJob(
		appointmentRepository,
		businessClock,
		cleanupMetrics,
		log,
		time.Duration(cfg.Cleanup.IntervalSeconds)*time.Second,
	)
	go cleanupJob.Run(workerCtx)

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
	stopWorker()

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
