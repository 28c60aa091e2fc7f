package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	applyFlowEventHandler "github.com/shidenryu/booking-service/internal/api/handlers/apply_flow_event"
	createBookingHandler "github.com/shidenryu/booking-service/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/shidenryu/booking-service/internal/api/handlers/get_availability"
	getBookingFlowHandler "github.com/shidenryu/booking-service/internal/api/handlers/get_booking_flow"
	getBookingRequestHandler "github.com/shidenryu/booking-service/internal/api/handlers/get_booking_request"
	listBookingRequestsHandler "github.com/shidenryu/booking-service/internal/api/handlers/list_booking_requests"
	listServicesHandler "github.com/shidenryu/booking-service/internal/api/handlers/list_services"
	submitBookingFlowHandler "github.com/shidenryu/booking-service/internal/api/handlers/submit_booking_flow"
	"github.com/shidenryu/booking-service/internal/api/middleware"
	"github.com/shidenryu/booking-service/internal/config"
	"github.com/shidenryu/booking-service/internal/infra/draftstore"
	requestRepo "github.com/shidenryu/booking-service/internal/infra/storage/bookingrequest"
	"github.com/shidenryu/booking-service/internal/integrations/mailer"
	"github.com/shidenryu/booking-service/internal/integrations/sheetsapi"
	bookingRequestsService "github.com/shidenryu/booking-service/internal/service/bookingrequests"
	"github.com/shidenryu/booking-service/internal/service/wizard"
	getMonthAvailabilityUC "github.com/shidenryu/booking-service/internal/usecase/get_month_availability"
	listServicesUC "github.com/shidenryu/booking-service/internal/usecase/list_services"
	submitBookingUC "github.com/shidenryu/booking-service/internal/usecase/submit_booking"
	"github.com/shidenryu/booking-service/pkg/dbmetrics"
	"github.com/shidenryu/booking-service/pkg/logger"
	"github.com/shidenryu/booking-service/pkg/metrics"
)

// submissionSink связывает машину состояний мастера с usecase отправки:
// черновик уходит как заявка, ошибки usecase сворачиваются в бизнес-результат
// с кодом исхода
type submissionSink struct {
	useCase *submitBookingUC.UseCase
}

func (s *submissionSink) Submit(ctx context.Context, req *wizard.SubmissionRequest) (*wizard.SubmissionResult, error) {
	resp, err := s.useCase.Execute(ctx, &submitBookingUC.Request{
		Date:            req.Date,
		TimeSlot:        req.TimeSlot,
		Activities:      req.Activities,
		Nickname:        req.Nickname,
		Email:           req.Email,
		NumberOfGuests:  req.NumberOfGuests,
		GuestSizes:      req.GuestSizes,
		RoomNumber:      req.RoomNumber,
		SpecialRequests: req.SpecialRequests,
		AgreedToTerms:   req.AgreedToTerms,
	})
	if err != nil {
		// Сетевые сбои и таймауты отдаём как ошибку транспорта, остальное —
		// как бизнес-отказ с кодом
		if errors.Is(err, submitBookingUC.ErrRelayUnreachable) ||
			errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, err
		}
		return &wizard.SubmissionResult{
			Success:   false,
			ErrorCode: submitBookingUC.ErrorCode(err),
			Message:   "",
		}, nil
	}

	return &wizard.SubmissionResult{
		Success:   true,
		BookingID: resp.BookingID,
		Message:   resp.Message,
	}, nil
}

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

	log.Info("Starting booking-service...")
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

	// Репозиторий архива заявок (с метриками или без)
	var requestRepository *requestRepo.Repository
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
		requestRepository = requestRepo.NewRepository(wrappedDB)
	} else {
		requestRepository = requestRepo.NewRepository(db)
	}

	// Хранилище черновиков мастера: Redis либо in-memory fallback
	var draftStore wizard.DraftStore
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		draftStore = draftstore.NewRedisStore(redisClient, time.Duration(cfg.Redis.DraftTTL)*time.Second)
		log.Info("Draft store: redis at %s (ttl=%ds)", cfg.Redis.Addr, cfg.Redis.DraftTTL)
	} else {
		draftStore = draftstore.NewMemoryStore()
		log.Warn("Draft store: redis is not configured, drafts are kept in memory only")
	}

	// Клиент веб-приложения таблицы бронирований
	sheetsClient := sheetsapi.NewClient(
		cfg.Sheets.WebAppURL,
		cfg.Sheets.APIKey,
		time.Duration(cfg.Sheets.Timeout)*time.Second,
		log,
	)
	if cfg.Sheets.WebAppURL == "" {
		log.Warn("Sheets web app is not configured, bookings are accepted locally")
	}

	// Почтовые уведомления (опционально)
	var notifier submitBookingUC.Notifier
	if cfg.Mail.Host != "" {
		notifier = mailer.New(
			cfg.Mail.Host,
			cfg.Mail.Port,
			cfg.Mail.Username,
			cfg.Mail.Password,
			cfg.Mail.From,
			cfg.Mail.AdminEmail,
			log,
		)
		log.Info("Mail notifications enabled (host=%s, admin=%s)", cfg.Mail.Host, cfg.Mail.AdminEmail)
	} else {
		log.Warn("Mail is not configured, notifications are disabled")
	}

	// Инициализируем use cases
	getMonthAvailabilityUseCase := getMonthAvailabilityUC.NewUseCase(sheetsClient, log)
	listServicesUseCase := listServicesUC.NewUseCase(sheetsClient, log)
	submitBookingUseCase := submitBookingUC.NewUseCase(
		sheetsClient,
		requestRepository,
		notifier,
		metricsCollector,
		log,
	)

	// Инициализируем сервисы
	wizardService := wizard.NewService(draftStore, &submissionSink{useCase: submitBookingUseCase}, log)
	requestsService := bookingRequestsService.NewService(requestRepository, log)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getMonthAvailabilityUseCase, log)
	listServices := listServicesHandler.NewHandler(listServicesUseCase, log)
	createBooking := createBookingHandler.NewHandler(submitBookingUseCase, log)
	getBookingFlow := getBookingFlowHandler.NewHandler(wizardService, log)
	applyFlowEvent := applyFlowEventHandler.NewHandler(wizardService, getMonthAvailabilityUseCase, log)
	submitBookingFlow := submitBookingFlowHandler.NewHandler(wizardService, log)
	listBookingRequests := listBookingRequestsHandler.NewHandler(requestsService, log)
	getBookingRequest := getBookingRequestHandler.NewHandler(requestsService, log)

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

	// Занятость слотов за месяц
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Каталог активностей
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// Прямая отправка заявки
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// --- Мастер бронирования ---
	// Восстановление состояния (с переопределениями из query)
	api.HandleFunc("/booking-flow/{sessionKey}", getBookingFlow.Handle).Methods(http.MethodGet)

	// Применение события мастера
	api.HandleFunc("/booking-flow/{sessionKey}/events", applyFlowEvent.Handle).Methods(http.MethodPost)

	// Отправка собранной заявки
	api.HandleFunc("/booking-flow/{sessionKey}/submit", submitBookingFlow.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token))

	// Архив переданных заявок
	admin.HandleFunc("/booking-requests", listBookingRequests.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/booking-requests/{requestId}", getBookingRequest.Handle).Methods(http.MethodGet)

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
