package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mtereshin/skyfare/config"
	"github.com/mtereshin/skyfare/internal/bootstrap"
	"github.com/mtereshin/skyfare/internal/cache"
	"github.com/mtereshin/skyfare/internal/clock"
	"github.com/mtereshin/skyfare/internal/farehistory"
	"github.com/mtereshin/skyfare/internal/kafka"
	"github.com/mtereshin/skyfare/internal/payment"
	"github.com/mtereshin/skyfare/internal/repository"
	"github.com/mtereshin/skyfare/internal/service/booking"
	"github.com/mtereshin/skyfare/internal/service/flights"
	"github.com/mtereshin/skyfare/migrations"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	if err := migrations.Apply(ctx, pool); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	quotesTTL := time.Duration(cfg.Quotes.CacheTTLSeconds) * time.Second
	redisCache := cache.NewRedisCache(cfg.Redis, quotesTTL)

	var recorder farehistory.Recorder = farehistory.NopRecorder{}
	if len(cfg.Kafka.Brokers) > 0 && cfg.Kafka.FareHistoryTopic != "" {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		recorder = farehistory.NewKafkaRecorder(producer, cfg.Kafka.FareHistoryTopic)
	}

	clk := clock.NewSystem()
	flightRepo := repository.NewFlightRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	gate := payment.NewRateGate(cfg.Payment.DeclineRate)

	flightService := flights.NewFlightService(flightRepo, redisCache, recorder, clk)
	bookingService := booking.NewBookingService(bookingRepo, gate, clk)

	if err := bootstrap.Run(ctx, cfg, flightService, bookingService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
