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

	cancelReservationHandler "github.com/saudesim/agenda-service/internal/api/handlers/cancel_reservation"
	checkReservationHandler "github.com/saudesim/agenda-service/internal/api/handlers/check_reservation"
	createEventHandler "github.com/saudesim/agenda-service/internal/api/handlers/create_event"
	getAvailabilityHandler "github.com/saudesim/agenda-service/internal/api/handlers/get_availability"
	pingHandler "github.com/saudesim/agenda-service/internal/api/handlers/ping"
	rescheduleHandler "github.com/saudesim/agenda-service/internal/api/handlers/reschedule_reservation"
	"github.com/saudesim/agenda-service/internal/api/middleware"
	"github.com/saudesim/agenda-service/internal/config"
	resindexRepo "github.com/saudesim/agenda-service/internal/infra/storage/resindex"
	"github.com/saudesim/agenda-service/internal/integrations/googlecalendar"
	"github.com/saudesim/agenda-service/internal/pricing"
	"github.com/saudesim/agenda-service/internal/schedule"
	reservationsService "github.com/saudesim/agenda-service/internal/service/reservations"
	createReservationUC "github.com/saudesim/agenda-service/internal/usecase/create_reservation"
	getAvailabilityUC "github.com/saudesim/agenda-service/internal/usecase/get_availability"
	rescheduleReservationUC "github.com/saudesim/agenda-service/internal/usecase/reschedule_reservation"
	"github.com/saudesim/agenda-service/pkg/logger"
	"github.com/saudesim/agenda-service/pkg/metrics"
	"github.com/saudesim/agenda-service/pkg/slotlock"
)

func main() {
	// Load configuration; missing startup config is the only fatal condition
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting agenda-service...")
	log.Info("Configuration loaded from config.toml")

	// Metrics collectors are always registered; the endpoint and the HTTP
	// middleware are only exposed when enabled
	metricsCollector := metrics.New(cfg.Metrics.ServiceName)

	// Schedule normalizer: every date/time string in the system goes
	// through this single component
	normalizer, err := schedule.NewNormalizer(cfg.Calendar.Timezone)
	if err != nil {
		log.Fatal("Failed to initialize schedule normalizer: %v", err)
	}
	log.Info("Schedule normalizer initialized (timezone=%s)", cfg.Calendar.Timezone)

	// Calendar Gateway
	gateway, err := googlecalendar.NewClient(context.Background(), cfg.Calendar, log)
	if err != nil {
		log.Fatal("Failed to initialize calendar gateway: %v", err)
	}
	log.Info("Calendar gateway initialized (calendar=%s, timeout=%ds)",
		cfg.Calendar.CalendarID, cfg.Calendar.TimeoutSeconds)

	// Optional Postgres reservation index. The calendar remains the source
	// of truth; without the index every lookup falls back to the marker scan.
	var (
		svcIndex     reservationsService.ReservationIndex
		createIndex  createReservationUC.ReservationIndex
		reschedIndex rescheduleReservationUC.ReservationIndex
	)

	if cfg.Database.Enabled {
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
		log.Info("Reservation index enabled (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		repo := resindexRepo.NewRepository(db)
		svcIndex = repo
		createIndex = repo
		reschedIndex = repo
	} else {
		log.Info("Reservation index disabled, lookups use the marker scan only")
	}

	// Core components
	pricingPolicy := pricing.NewPolicy(cfg.Pricing.BasePrice, cfg.Pricing.EveningPrice, cfg.Pricing.EveningHour)
	locker := slotlock.New()

	// Services
	reservationSvc := reservationsService.NewService(gateway, svcIndex, metricsCollector, log)

	// Use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		gateway,
		createIndex,
		normalizer,
		pricingPolicy,
		locker,
		metricsCollector,
		cfg.Agenda.LocationInPerson,
		cfg.Agenda.LocationOnline,
		log,
	)

	rescheduleReservationUseCase := rescheduleReservationUC.NewUseCase(
		reservationSvc,
		gateway,
		reschedIndex,
		normalizer,
		pricingPolicy,
		locker,
		metricsCollector,
		cfg.Agenda.LocationInPerson,
		cfg.Agenda.LocationOnline,
		log,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		gateway,
		normalizer,
		cfg.Agenda.FirstHour,
		cfg.Agenda.LastHour,
		log,
	)

	// Handlers
	createEvent := createEventHandler.NewHandler(createReservationUseCase, log)
	rescheduleReservation := rescheduleHandler.NewHandler(rescheduleReservationUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	checkReservation := checkReservationHandler.NewHandler(reservationSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	ping := pingHandler.NewHandler()

	// Router
	r := mux.NewRouter()

	// The bot platform expects unmatched routes to answer 200 with an
	// empty body instead of 404
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Liveness probe, no authentication
	r.HandleFunc("/ping", ping.Handle).Methods(http.MethodGet)

	// Webhook routes, authenticated by the shared-secret header
	protected := r.PathPrefix("").Subrouter()
	protected.Use(middleware.WebhookAuth(cfg.Webhook.Token, log))

	protected.HandleFunc("/create-event", createEvent.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reschedule-by-reservation", rescheduleReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/cancel", cancelReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/check-by-reservation", checkReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodPost)

	// HTTP server
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
