package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createProfessionalHandler "github.com/sattis-studio/booking-web/internal/api/handlers/create_professional"
	createServiceHandler "github.com/sattis-studio/booking-web/internal/api/handlers/create_service"
	deleteProfessionalHandler "github.com/sattis-studio/booking-web/internal/api/handlers/delete_professional"
	deleteServiceHandler "github.com/sattis-studio/booking-web/internal/api/handlers/delete_service"
	getCatalogHandler "github.com/sattis-studio/booking-web/internal/api/handlers/get_catalog"
	getWizardHandler "github.com/sattis-studio/booking-web/internal/api/handlers/get_wizard"
	getWizardTimesHandler "github.com/sattis-studio/booking-web/internal/api/handlers/get_wizard_times"
	listAppointmentsHandler "github.com/sattis-studio/booking-web/internal/api/handlers/list_appointments"
	listHistoryHandler "github.com/sattis-studio/booking-web/internal/api/handlers/list_history"
	loginHandler "github.com/sattis-studio/booking-web/internal/api/handlers/login"
	registerHandler "github.com/sattis-studio/booking-web/internal/api/handlers/register"
	resetMissedHandler "github.com/sattis-studio/booking-web/internal/api/handlers/reset_missed"
	selectDateTimeHandler "github.com/sattis-studio/booking-web/internal/api/handlers/select_datetime"
	selectProfessionalHandler "github.com/sattis-studio/booking-web/internal/api/handlers/select_professional"
	selectServiceHandler "github.com/sattis-studio/booking-web/internal/api/handlers/select_service"
	startWizardHandler "github.com/sattis-studio/booking-web/internal/api/handlers/start_wizard"
	submitAppointmentHandler "github.com/sattis-studio/booking-web/internal/api/handlers/submit_appointment"
	toggleMissedHandler "github.com/sattis-studio/booking-web/internal/api/handlers/toggle_missed"
	updateStatusHandler "github.com/sattis-studio/booking-web/internal/api/handlers/update_appointment_status"
	updateProfessionalHandler "github.com/sattis-studio/booking-web/internal/api/handlers/update_professional"
	updateServiceHandler "github.com/sattis-studio/booking-web/internal/api/handlers/update_service"
	wizardBackHandler "github.com/sattis-studio/booking-web/internal/api/handlers/wizard_back"
	"github.com/sattis-studio/booking-web/internal/api/middleware"
	"github.com/sattis-studio/booking-web/internal/config"
	"github.com/sattis-studio/booking-web/internal/infra/sessions"
	salonClient "github.com/sattis-studio/booking-web/internal/integrations/salonapi"
	"github.com/sattis-studio/booking-web/internal/refresher"
	appointmentsService "github.com/sattis-studio/booking-web/internal/service/appointments"
	authService "github.com/sattis-studio/booking-web/internal/service/auth"
	catalogService "github.com/sattis-studio/booking-web/internal/service/catalog"
	wizardService "github.com/sattis-studio/booking-web/internal/service/wizard"
	"github.com/sattis-studio/booking-web/internal/store"
	createAppointmentUC "github.com/sattis-studio/booking-web/internal/usecase/create_appointment"
	getAvailableTimesUC "github.com/sattis-studio/booking-web/internal/usecase/get_available_times"
	"github.com/sattis-studio/booking-web/pkg/logger"
	"github.com/sattis-studio/booking-web/pkg/metrics"
)

const sessionCleanupInterval = time.Minute

func main() {
	// Секреты сервисного аккаунта подхватываются из .env при его наличии
	_ = godotenv.Load()

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

	log.Info("Starting booking-web...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var backendMetrics salonClient.MetricsRecorder
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		backendMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем клиент backend API
	backend := salonClient.NewClient(
		cfg.Backend.URL,
		time.Duration(cfg.Backend.Timeout)*time.Second,
		log,
		backendMetrics,
	)
	log.Info("Backend client initialized (url=%s, timeout=%ds)", cfg.Backend.URL, cfg.Backend.Timeout)

	// Разделяемое хранилище каталога и записей
	sharedStore := store.New(backend, log)

	// Репозиторий сессий мастера записи
	sessionTTL := time.Duration(cfg.Wizard.SessionTTLMinutes) * time.Minute
	sessionRepo := sessions.NewRepository(sessionTTL)

	stopCleanupCh := make(chan struct{})
	go sessionRepo.CleanupLoop(sessionCleanupInterval, stopCleanupCh)

	// Инициализируем сервисы
	authSvc := authService.NewService(backend, log)
	appointmentsSvc := appointmentsService.NewService(sharedStore, backend, log)
	catalogSvc := catalogService.NewService(sharedStore, backend, log)

	// Инициализируем use cases
	getAvailableTimesUseCase := getAvailableTimesUC.NewUseCase(backend, sharedStore, log)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(sessionRepo, backend, log)

	wizardSvc := wizardService.NewService(sessionRepo, sharedStore, getAvailableTimesUseCase, log)

	// Фоновое обновление хранилища под сервисным аккаунтом
	var storeRefresher *refresher.Refresher
	if cfg.Refresh.Enabled {
		account := salonClient.NewServiceAccount(backend, cfg.Backend.ServiceEmail, cfg.Backend.ServicePassword, log)
		storeRefresher = refresher.New(account, sharedStore, log)
		if err := storeRefresher.Start(cfg.Refresh.Schedule); err != nil {
			log.Fatal("Failed to start store refresher: %v", err)
		}
	}

	// Инициализируем handlers
	login := loginHandler.NewHandler(authSvc, log)
	register := registerHandler.NewHandler(authSvc, log)
	startWizard := startWizardHandler.NewHandler(wizardSvc, log)
	getWizard := getWizardHandler.NewHandler(wizardSvc, log)
	selectService := selectServiceHandler.NewHandler(wizardSvc, log)
	selectProfessional := selectProfessionalHandler.NewHandler(wizardSvc, log)
	getWizardTimes := getWizardTimesHandler.NewHandler(wizardSvc, log)
	selectDateTime := selectDateTimeHandler.NewHandler(wizardSvc, log)
	submitAppointment := submitAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	wizardBack := wizardBackHandler.NewHandler(wizardSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	listHistory := listHistoryHandler.NewHandler(appointmentsSvc, log)
	updateStatus := updateStatusHandler.NewHandler(appointmentsSvc, log)
	toggleMissed := toggleMissedHandler.NewHandler(appointmentsSvc, log)
	resetMissed := resetMissedHandler.NewHandler(appointmentsSvc, log)
	getCatalog := getCatalogHandler.NewHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)
	createProfessional := createProfessionalHandler.NewHandler(catalogSvc, log)
	updateProfessional := updateProfessionalHandler.NewHandler(catalogSvc, log)
	deleteProfessional := deleteProfessionalHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Аутентификация администраторов
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)

	// Мастер публичной записи
	api.HandleFunc("/wizard", startWizard.Handle).Methods(http.MethodPost)
	api.HandleFunc("/wizard/{sessionId}", getWizard.Handle).Methods(http.MethodGet)
	api.HandleFunc("/wizard/{sessionId}/service", selectService.Handle).Methods(http.MethodPost)
	api.HandleFunc("/wizard/{sessionId}/professional", selectProfessional.Handle).Methods(http.MethodPost)
	api.HandleFunc("/wizard/{sessionId}/times", getWizardTimes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/wizard/{sessionId}/datetime", selectDateTime.Handle).Methods(http.MethodPost)
	api.HandleFunc("/wizard/{sessionId}/submit", submitAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/wizard/{sessionId}/back", wizardBack.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен backend)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Дашборд записей ---
	protected.HandleFunc("/dashboard/appointments", listAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/dashboard/history", listHistory.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/status", updateStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/missed", toggleMissed.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/customers/{email}/reset-missed", resetMissed.Handle).Methods(http.MethodPatch)

	// --- Каталог ---
	protected.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/services/{serviceId}", updateService.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/services/{serviceId}", deleteService.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/professionals", createProfessional.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/professionals/{professionalId}", updateProfessional.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/professionals/{professionalId}", deleteProfessional.Handle).Methods(http.MethodDelete)

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

	if storeRefresher != nil {
		storeRefresher.Stop()
	}
	close(stopCleanupCh)

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
