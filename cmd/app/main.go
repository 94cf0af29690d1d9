package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/flightreservation/config"
	"github.com/Domenick1991/flightreservation/internal/bootstrap"
	"github.com/Domenick1991/flightreservation/internal/cache"
	"github.com/Domenick1991/flightreservation/internal/kafka"
	"github.com/Domenick1991/flightreservation/internal/payment"
	"github.com/Domenick1991/flightreservation/internal/repository"
	"github.com/Domenick1991/flightreservation/internal/service/flights"
	"github.com/Domenick1991/flightreservation/internal/service/reservation"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		logger.Error("connect postgres", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	searchCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Reservation.SearchCacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	authorizer, err := newAuthorizer(cfg.Payment)
	if err != nil {
		logger.Error("init payment gateway", "error", err)
		os.Exit(1)
	}

	flightRepo := repository.NewFlightRepository(pool)
	reservationRepo := repository.NewReservationRepository(pool)
	flightService := flights.NewFlightService(flightRepo, searchCache)
	reservationService := reservation.NewReservationService(
		reservationRepo,
		flightRepo,
		authorizer,
		producer,
		cfg.Kafka.ReservationTopic,
		reservation.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	if err := bootstrap.Run(ctx, cfg, flightService, reservationService); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func newAuthorizer(cfg config.PaymentConfig) (payment.Authorizer, error) {
	if cfg.Provider == "omise" {
		return payment.NewOmiseGateway(cfg.OmisePublicKey, cfg.OmiseSecretKey, cfg.Currency)
	}
	return payment.NewStub(), nil
}
