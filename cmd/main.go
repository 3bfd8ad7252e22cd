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

	cancelReservationHandler "github.com/m04kA/Restaurant-BookingService/internal/api/handlers/cancel_reservation"
	createOrderHandler "github.com/m04kA/Restaurant-BookingService/internal/api/handlers/create_order"
	createReservationHandler "github.com/m04kA/Restaurant-BookingService/internal/api/handlers/create_reservation"
	getAvailableSlotsHandler "github.com/m04kA/Restaurant-BookingService/internal/api/handlers/get_available_slots"
	getMenuHandler "github.com/m04kA/Restaurant-BookingService/internal/api/handlers/get_menu"
	getOrderHandler "github.com/m04kA/Restaurant-BookingService/internal/api/handlers/get_order"
	getPickupTimesHandler "github.com/m04kA/Restaurant-BookingService/internal/api/handlers/get_pickup_times"
	getReservationHandler "github.com/m04kA/Restaurant-BookingService/internal/api/handlers/get_reservation"
	getSettingsHandler "github.com/m04kA/Restaurant-BookingService/internal/api/handlers/get_settings"
	getUserReservationsHandler "github.com/m04kA/Restaurant-BookingService/internal/api/handlers/get_user_reservations"
	listReservationsHandler "github.com/m04kA/Restaurant-BookingService/internal/api/handlers/list_reservations"
	restoreReservationHandler "github.com/m04kA/Restaurant-BookingService/internal/api/handlers/restore_reservation"
	updateReservationStatusHandler "github.com/m04kA/Restaurant-BookingService/internal/api/handlers/update_reservation_status"
	updateSettingsHandler "github.com/m04kA/Restaurant-BookingService/internal/api/handlers/update_settings"
	"github.com/m04kA/Restaurant-BookingService/internal/api/middleware"
	"github.com/m04kA/Restaurant-BookingService/internal/config"
	menuRepo "github.com/m04kA/Restaurant-BookingService/internal/infra/storage/menu"
	orderRepo "github.com/m04kA/Restaurant-BookingService/internal/infra/storage/order"
	reservationRepo "github.com/m04kA/Restaurant-BookingService/internal/infra/storage/reservation"
	settingsRepo "github.com/m04kA/Restaurant-BookingService/internal/infra/storage/settings"
	"github.com/m04kA/Restaurant-BookingService/internal/integrations/mailservice"
	menuService "github.com/m04kA/Restaurant-BookingService/internal/service/menu"
	ordersService "github.com/m04kA/Restaurant-BookingService/internal/service/orders"
	reservationsService "github.com/m04kA/Restaurant-BookingService/internal/service/reservations"
	settingsService "github.com/m04kA/Restaurant-BookingService/internal/service/settings"
	createOrderUC "github.com/m04kA/Restaurant-BookingService/internal/usecase/create_order"
	createReservationUC "github.com/m04kA/Restaurant-BookingService/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/m04kA/Restaurant-BookingService/internal/usecase/get_available_slots"
	getPickupTimesUC "github.com/m04kA/Restaurant-BookingService/internal/usecase/get_pickup_times"
	"github.com/m04kA/Restaurant-BookingService/pkg/logger"
	"github.com/m04kA/Restaurant-BookingService/pkg/metrics"
	"github.com/m04kA/Restaurant-BookingService/pkg/ratelimit"
	"github.com/m04kA/Restaurant-BookingService/pkg/txmanager"
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

	log.Info("Starting Restaurant-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Инициализируем почтовый клиент
	mailClient := mailservice.NewClient(
		cfg.MailService.URL,
		cfg.MailService.APIKey,
		cfg.MailService.From,
		time.Duration(cfg.MailService.Timeout)*time.Second,
		log,
	)
	log.Info("Mail client initialized (url=%s, timeout=%ds)", cfg.MailService.URL, cfg.MailService.Timeout)

	// Инициализируем репозитории
	reservationRepository := reservationRepo.NewRepository(db)
	menuRepository := menuRepo.NewRepository(db)
	orderRepository := orderRepo.NewRepository(db)
	settingsRepository := settingsRepo.NewRepository(db)

	// Менеджер транзакций и rate limiter
	txMgr := txmanager.NewTransactionManager(db)
	rateLimiter := ratelimit.NewMemoryStore()
	rateLimitWindow := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
	log.Info("Rate limiter initialized (max=%d requests per %s)", cfg.RateLimit.MaxRequests, rateLimitWindow)

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(reservationRepository, log)
	menuSvc := menuService.NewService(menuRepository, log)
	settingsSvc := settingsService.NewService(settingsRepository, log)
	ordersSvc := ordersService.NewService(orderRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		reservationRepository,
		settingsRepository,
		log,
	)

	getPickupTimesUseCase := getPickupTimesUC.NewUseCase(settingsRepository, log)

	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		settingsRepository,
		mailClient,
		rateLimiter,
		txMgr,
		cfg.RateLimit.MaxRequests,
		rateLimitWindow,
		log,
	)

	createOrderUseCase := createOrderUC.NewUseCase(
		orderRepository,
		menuRepository,
		settingsRepository,
		mailClient,
		rateLimiter,
		cfg.Pricing.TaxRate,
		cfg.RateLimit.MaxRequests,
		rateLimitWindow,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getPickupTimes := getPickupTimesHandler.NewHandler(getPickupTimesUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	createOrder := createOrderHandler.NewHandler(createOrderUseCase, log)
	getMenu := getMenuHandler.NewHandler(menuSvc, log)
	getOrder := getOrderHandler.NewHandler(ordersSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationSvc, log)
	restoreReservation := restoreReservationHandler.NewHandler(reservationSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)

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

	// Доступные слоты бронирования на дату
	api.HandleFunc("/availability", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Меню ресторана
	api.HandleFunc("/menu", getMenu.Handle).Methods(http.MethodGet)

	// Времена самовывоза на дату
	api.HandleFunc("/orders/pickup-times", getPickupTimes.Handle).Methods(http.MethodGet)

	// Создание заказа
	api.HandleFunc("/orders", createOrder.Handle).Methods(http.MethodPost)

	// Заказ по публичному номеру (номер не перебираем, аутентификация не требуется)
	api.HandleFunc("/orders/{orderNumber:ORD_[0-9]{8}_[A-Z0-9]{8}}", getOrder.Handle).Methods(http.MethodGet)

	// Создание бронирования (гостевое разрешено)
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Получение бронирования по ID
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/reservations", getUserReservations.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Server.AdminToken))

	// Список бронирований с фильтрацией
	admin.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)

	// Обновление статуса бронирования
	admin.HandleFunc("/reservations/{reservationId}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)

	// Восстановление терминального бронирования
	admin.HandleFunc("/reservations/{reservationId}/restore", restoreReservation.Handle).Methods(http.MethodPost)

	// Настройки бронирования
	admin.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

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
