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

	addFavoriteHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/add_favorite"
	cancelBookingHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/create_booking"
	createReviewHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/create_review"
	getBookingHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/get_booking"
	getCheckoutHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/get_checkout"
	getPricingPolicyHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/get_pricing_policy"
	getPropertyBookingsHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/get_property_bookings"
	getPropertyReviewsHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/get_property_reviews"
	getUserBookingsHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/get_user_bookings"
	getUserFavoritesHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/get_user_favorites"
	removeFavoriteHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/remove_favorite"
	updateBookingStatusHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/update_booking_status"
	updatePricingPolicyHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/update_pricing_policy"
	validateCheckoutHandler "github.com/m04kA/SMC-StayService/internal/api/handlers/validate_checkout"
	"github.com/m04kA/SMC-StayService/internal/api/middleware"
	"github.com/m04kA/SMC-StayService/internal/config"
	bookingRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/booking"
	favoriteRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/favorite"
	policyRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/pricingpolicy"
	reviewRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/review"
	propertyServiceClient "github.com/m04kA/SMC-StayService/internal/integrations/propertyservice"
	bookingsService "github.com/m04kA/SMC-StayService/internal/service/bookings"
	favoritesService "github.com/m04kA/SMC-StayService/internal/service/favorites"
	pricingPolicyService "github.com/m04kA/SMC-StayService/internal/service/pricingpolicy"
	reviewsService "github.com/m04kA/SMC-StayService/internal/service/reviews"
	checkAvailabilityUC "github.com/m04kA/SMC-StayService/internal/usecase/check_availability"
	createBookingUC "github.com/m04kA/SMC-StayService/internal/usecase/create_booking"
	getCheckoutUC "github.com/m04kA/SMC-StayService/internal/usecase/get_checkout"
	"github.com/m04kA/SMC-StayService/pkg/dbmetrics"
	"github.com/m04kA/SMC-StayService/pkg/logger"
	"github.com/m04kA/SMC-StayService/pkg/metrics"
	"github.com/m04kA/SMC-StayService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-StayService/pkg/txmanager"
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

	log.Info("Starting SMC-StayService...")
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

	// Инициализируем клиент PropertyService
	propertyClient := propertyServiceClient.NewClient(
		cfg.PropertyService.URL,
		time.Duration(cfg.PropertyService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (PropertyService=%s timeout=%ds)",
		cfg.PropertyService.URL, cfg.PropertyService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		reviewRepository   *reviewRepo.Repository
		favoriteRepository *favoriteRepo.Repository
		policyRepository   *policyRepo.Repository
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
		reviewRepository = reviewRepo.NewRepository(wrappedDB)
		favoriteRepository = favoriteRepo.NewRepository(wrappedDB)
		policyRepository = policyRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		reviewRepository = reviewRepo.NewRepository(db)
		favoriteRepository = favoriteRepo.NewRepository(db)
		policyRepository = policyRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		propertyClient,
		log,
	)
	reviewSvc := reviewsService.NewService(
		reviewRepository,
		bookingRepository,
		propertyClient,
		log,
	)
	favoriteSvc := favoritesService.NewService(
		favoriteRepository,
		propertyClient,
		log,
	)
	policySvc := pricingPolicyService.NewService(
		policyRepository,
		propertyClient,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		propertyClient,
		txMgr,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		bookingRepository,
		log,
	)
	getCheckoutUseCase := getCheckoutUC.NewUseCase(
		propertyClient,
		policyRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getCheckout := getCheckoutHandler.NewHandler(getCheckoutUseCase, log)
	validateCheckout := validateCheckoutHandler.NewHandler(log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getPropertyBookings := getPropertyBookingsHandler.NewHandler(bookingSvc, log)
	createReview := createReviewHandler.NewHandler(reviewSvc, log)
	getPropertyReviews := getPropertyReviewsHandler.NewHandler(reviewSvc, log)
	addFavorite := addFavoriteHandler.NewHandler(favoriteSvc, log)
	removeFavorite := removeFavoriteHandler.NewHandler(favoriteSvc, log)
	getUserFavorites := getUserFavoritesHandler.NewHandler(favoriteSvc, log)
	getPricingPolicy := getPricingPolicyHandler.NewHandler(policySvc, log)
	updatePricingPolicy := updatePricingPolicyHandler.NewHandler(policySvc, log)

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

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Проверка доступности дат объекта
	api.HandleFunc("/properties/{propertyId}/availability",
		checkAvailability.Handle).Methods(http.MethodGet)

	// Checkout-сводка с расчетом цены
	api.HandleFunc("/properties/{propertyId}/checkout",
		getCheckout.Handle).Methods(http.MethodGet)

	// Валидация контактных данных с формы checkout
	api.HandleFunc("/checkout/validate",
		validateCheckout.Handle).Methods(http.MethodPost)

	// Отзывы объекта
	api.HandleFunc("/properties/{propertyId}/reviews",
		getPropertyReviews.Handle).Methods(http.MethodGet)

	// Ценовая политика объекта
	api.HandleFunc("/properties/{propertyId}/pricing-policy",
		getPricingPolicy.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Смена статуса бронирования (для хостов)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Управление объектом (для хостов) ---
	// Список бронирований объекта
	protected.HandleFunc("/properties/{propertyId}/bookings", getPropertyBookings.Handle).Methods(http.MethodGet)

	// Обновление ценовой политики объекта
	protected.HandleFunc("/properties/{propertyId}/pricing-policy", updatePricingPolicy.Handle).Methods(http.MethodPut)

	// --- Отзывы и избранное ---
	// Создание отзыва
	protected.HandleFunc("/properties/{propertyId}/reviews", createReview.Handle).Methods(http.MethodPost)

	// Избранное
	protected.HandleFunc("/properties/{propertyId}/favorite", addFavorite.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/properties/{propertyId}/favorite", removeFavorite.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/favorites", getUserFavorites.Handle).Methods(http.MethodGet)

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
