package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"resto-be/internal/api"
	"resto-be/internal/config"
	"resto-be/internal/db"
	"resto-be/internal/events"
	"resto-be/internal/logger"
	"resto-be/internal/menu"
	"resto-be/internal/middleware"
	"resto-be/internal/order"
	"resto-be/internal/reservation"
	"resto-be/internal/rpc"
	"resto-be/internal/telemetry"
	"resto-be/internal/testimonial"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var (
	initDBFunc      = db.InitDB
	startServerFunc = func(srv *http.Server) error { return srv.ListenAndServe() }
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()
	log := logger.L()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracerProvider(ctx, cfg.OTLPEndpoint)
	if err != nil {
		return fmt.Errorf("init tracer provider: %w", err)
	}
	metricsHandler, shutdownMeter, err := telemetry.InitMeterProvider()
	if err != nil {
		return fmt.Errorf("init meter provider: %w", err)
	}

	database := initDBFunc(cfg)
	defer database.Close()

	publisher := newPublisher(cfg)
	defer publisher.Close()

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           newServer(cfg, database, publisher, metricsHandler),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.String("addr", srv.Addr), zap.Bool("staff_auth", cfg.StaffAuthEnabled()))
		errCh <- startServerFunc(srv)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
	}
	if err := shutdownMeter(shutdownCtx); err != nil {
		log.Warn("meter provider shutdown failed", zap.Error(err))
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		log.Warn("tracer provider shutdown failed", zap.Error(err))
	}
	return nil
}

func newPublisher(cfg *config.Config) events.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		return events.Nop{}
	}
	return events.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
}

// newServer wires repositories, services and the procedure router into the
// full middleware stack.
func newServer(cfg *config.Config, database *sql.DB, publisher events.Publisher, metrics http.Handler) http.Handler {
	resolver := &api.Resolver{
		MenuSvc:        menu.NewService(menu.NewRepository(database)),
		OrderSvc:       order.NewService(order.NewRepository(database), publisher),
		ReservationSvc: reservation.NewService(reservation.NewRepository(database), publisher),
		TestimonialSvc: testimonial.NewService(testimonial.NewRepository(database)),
		StaffAuth:      cfg.StaffAuthEnabled(),
	}

	procedures := rpc.NewRouter()
	resolver.Register(procedures)

	limiter := middleware.NewRateLimiter(cfg.InternalKey)

	h := middleware.Chain(setupRouter(procedures, metrics),
		middleware.CORS(cfg.CORSOrigin),
		logger.RequestIDMiddleware,
		logger.LoggingMiddleware,
		middleware.Auth(cfg.JWTSecret),
		limiter.Middleware,
	)
	return otelhttp.NewHandler(h, telemetry.ServiceName)
}

func setupRouter(procedures *rpc.Router, metrics http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("GET /health", telemetry.WithHTTPRoute(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})))
	if metrics != nil {
		mux.Handle("GET /metrics", metrics)
	}
	mux.Handle(procedures.Prefix(), telemetry.WithHTTPRoute(procedures))

	return mux
}
