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

	cancelBookingHandler "github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers/create_booking"
	getAllReservationsHandler "github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers/get_all_reservations"
	getAvailabilityHandler "github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers/get_availability"
	getBookingHandler "github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers/get_booking"
	getDashboardHandler "github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers/get_dashboard"
	getHallHandler "github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers/get_hall"
	getLoyaltyHandler "github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers/get_loyalty"
	getMyBookingsHandler "github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers/get_my_bookings"
	getMySubscriptionsHandler "github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers/get_my_subscriptions"
	getProfileHandler "github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers/get_profile"
	getSectionHandler "github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers/get_section"
	listHallsHandler "github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers/list_halls"
	listNotificationsHandler "github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers/list_notifications"
	listSectionsHandler "github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers/list_sections"
	listSubscriptionsHandler "github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers/list_subscriptions"
	listTrainersHandler "github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers/list_trainers"
	loginHandler "github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers/login"
	logoutHandler "github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers/logout"
	manageHallsHandler "github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers/manage_halls"
	manageSectionsHandler "github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers/manage_sections"
	markNotificationReadHandler "github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers/mark_notification_read"
	purchaseSubscriptionHandler "github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers/purchase_subscription"
	redeemPointsHandler "github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers/redeem_points"
	registerHandler "github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers/register"
	updateProfileHandler "github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers/update_profile"
	updateReservationStatusHandler "github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/handlers/update_reservation_status"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/api/middleware"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/config"
	sessionRepo "github.com/SolomiaSydoryk/sportcenter-gateway/internal/infra/storage/session"
	"github.com/SolomiaSydoryk/sportcenter-gateway/internal/integrations/sportapi"
	adminService "github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/admin"
	bookingsService "github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/bookings"
	catalogService "github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/catalog"
	loyaltyService "github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/loyalty"
	notificationsService "github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/notifications"
	sessionService "github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/session"
	subscriptionsService "github.com/SolomiaSydoryk/sportcenter-gateway/internal/service/subscriptions"
	createBookingUC "github.com/SolomiaSydoryk/sportcenter-gateway/internal/usecase/create_booking"
	getAvailabilityUC "github.com/SolomiaSydoryk/sportcenter-gateway/internal/usecase/get_availability"
	"github.com/SolomiaSydoryk/sportcenter-gateway/pkg/logger"
	"github.com/SolomiaSydoryk/sportcenter-gateway/pkg/metrics"
)

const sessionCleanupInterval = 10 * time.Minute

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting sportcenter-gateway...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Сховище сесій
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Клієнт основного API спорткомплексу
	coreTimeout := time.Duration(cfg.CoreAPI.Timeout) * time.Second
	var coreClient *sportapi.Client
	if cfg.Metrics.Enabled {
		coreClient = sportapi.NewClientWithTransport(
			cfg.CoreAPI.URL,
			coreTimeout,
			metrics.NewTransport(metricsCollector, http.DefaultTransport),
			log,
		)
	} else {
		coreClient = sportapi.NewClient(cfg.CoreAPI.URL, coreTimeout, log)
	}
	log.Info("Core API client initialized (url=%s timeout=%ds)", cfg.CoreAPI.URL, cfg.CoreAPI.Timeout)

	// Репозиторії та сервіси
	sessionRepository := sessionRepo.NewRepository(db)

	sessionTTL := time.Duration(cfg.Session.TTLHours) * time.Hour
	sessionSvc := sessionService.NewService(sessionRepository, coreClient, sessionTTL, log)
	catalogSvc := catalogService.NewService(coreClient, log)
	bookingSvc := bookingsService.NewService(coreClient, log)
	notificationSvc := notificationsService.NewService(coreClient, log)
	subscriptionSvc := subscriptionsService.NewService(coreClient, log)
	loyaltySvc := loyaltyService.NewService(coreClient, log)
	adminSvc := adminService.NewService(coreClient, log)

	// Use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(bookingSvc, log)
	createBookingUseCase := createBookingUC.NewUseCase(bookingSvc, log)

	// Handlers
	login := loginHandler.NewHandler(sessionSvc, log)
	register := registerHandler.NewHandler(sessionSvc, log)
	logout := logoutHandler.NewHandler(sessionSvc, log)
	getProfile := getProfileHandler.NewHandler(sessionSvc, log)
	updateProfile := updateProfileHandler.NewHandler(sessionSvc, log)

	listHalls := listHallsHandler.NewHandler(catalogSvc, log)
	getHall := getHallHandler.NewHandler(catalogSvc, log)
	listSections := listSectionsHandler.NewHandler(catalogSvc, log)
	getSection := getSectionHandler.NewHandler(catalogSvc, log)
	listTrainers := listTrainersHandler.NewHandler(catalogSvc, log)

	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getMyBookings := getMyBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)

	listNotifications := listNotificationsHandler.NewHandler(notificationSvc, log)
	markNotificationRead := markNotificationReadHandler.NewHandler(notificationSvc, log)

	listSubscriptions := listSubscriptionsHandler.NewHandler(subscriptionSvc, log)
	purchaseSubscription := purchaseSubscriptionHandler.NewHandler(subscriptionSvc, log)
	getMySubscriptions := getMySubscriptionsHandler.NewHandler(subscriptionSvc, log)

	getLoyalty := getLoyaltyHandler.NewHandler(loyaltySvc, log)
	redeemPoints := redeemPointsHandler.NewHandler(loyaltySvc, log)

	getAllReservations := getAllReservationsHandler.NewHandler(adminSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(adminSvc, log)
	getDashboard := getDashboardHandler.NewHandler(adminSvc, log)
	manageHalls := manageHallsHandler.NewHandler(adminSvc, log)
	manageSections := manageSectionsHandler.NewHandler(adminSvc, log)

	auth := middleware.NewAuth(sessionSvc, log)

	// Роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Публічні маршрути
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)

	api.HandleFunc("/halls", listHalls.Handle).Methods(http.MethodGet)
	api.HandleFunc("/halls/{id}", getHall.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sections", listSections.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sections/{id}", getSection.Handle).Methods(http.MethodGet)
	api.HandleFunc("/trainers", listTrainers.Handle).Methods(http.MethodGet)
	api.HandleFunc("/available-timeslots", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/subscriptions", listSubscriptions.Handle).Methods(http.MethodGet)

	// Захищені маршрути (потрібна дійсна сесія)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(auth.RequireSession)

	protected.HandleFunc("/auth/logout", logout.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/auth/profile", getProfile.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/auth/profile", updateProfile.Handle).Methods(http.MethodPut)

	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/my", getMyBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	protected.HandleFunc("/notifications", listNotifications.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/read-all", markNotificationRead.HandleAll).Methods(http.MethodPatch)
	protected.HandleFunc("/notifications/{id}/read", markNotificationRead.HandleOne).Methods(http.MethodPatch)

	protected.HandleFunc("/subscriptions/my", getMySubscriptions.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/subscriptions/{id}/purchase", purchaseSubscription.Handle).Methods(http.MethodPost)

	protected.HandleFunc("/loyalty/me", getLoyalty.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/loyalty/redeem", redeemPoints.Handle).Methods(http.MethodPost)

	// Адмін-маршрути (лише staff)
	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(auth.RequireStaff)

	admin.HandleFunc("/reservations", getAllReservations.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{id}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)

	admin.HandleFunc("/halls", manageHalls.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/halls/{id}", manageHalls.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/halls/{id}", manageHalls.HandleDelete).Methods(http.MethodDelete)

	admin.HandleFunc("/sections", manageSections.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/sections/{id}", manageSections.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/sections/{id}", manageSections.HandleDelete).Methods(http.MethodDelete)
	admin.HandleFunc("/sections/{id}/schedule", manageSections.HandleAddSlot).Methods(http.MethodPost)
	admin.HandleFunc("/schedule/{id}", manageSections.HandleRemoveSlot).Methods(http.MethodDelete)

	// Фонова чистка прострочених сесій
	cleanupCtx, cancelCleanup := context.WithCancel(context.Background())
	defer cancelCleanup()
	go runSessionCleanup(cleanupCtx, sessionSvc, metricsCollector, log)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	cancelCleanup()

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

// runSessionCleanup періодично видаляє прострочені сесії
// та оновлює gauge активних сесій
func runSessionCleanup(ctx context.Context, sessions *sessionService.Service, m *metrics.Metrics, log *logger.Logger) {
	ticker := time.NewTicker(sessionCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sessions.CleanupExpired(ctx)

			if m != nil {
				active, err := sessions.CountActive(ctx)
				if err != nil {
					log.Error("session cleanup: count active: %v", err)
					continue
				}
				m.ActiveSessions.Set(float64(active))
			}
		}
	}
}
