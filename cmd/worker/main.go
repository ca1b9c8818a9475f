// The worker drains the fare-quote topic into the append-only fare_history
// table. Quote requests publish fire-and-forget; this is the only writer of
// fare_history, so a broker or worker outage costs analytics rows, never a
// user request.
package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mtereshin/skyfare/config"
	"github.com/mtereshin/skyfare/internal/domain"
	"github.com/mtereshin/skyfare/internal/kafka"
	"github.com/mtereshin/skyfare/internal/repository"
	"github.com/mtereshin/skyfare/migrations"
	kafkaGo "github.com/segmentio/kafka-go"
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

	fareRepo := repository.NewFareHistoryRepository(pool)

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.FareHistoryTopic)
	defer consumer.Close()

	var written atomic.Int64

	go func() {
		err := consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
			var quote domain.FareQuote
			if err := json.Unmarshal(msg.Value, &quote); err != nil {
				log.Printf("decode fare quote: %v", err)
				return nil
			}
			if err := fareRepo.Append(ctx, quote); err != nil {
				// Analytics rows are droppable; keep consuming.
				log.Printf("append fare history for flight %d: %v", quote.FlightID, err)
				return nil
			}
			written.Add(1)
			return nil
		})
		if err != nil && ctx.Err() == nil {
			log.Printf("consumer stopped: %v", err)
			stop()
		}
	}()

	statsTicker := time.NewTicker(time.Minute)
	defer statsTicker.Stop()

	for {
		select {
		case <-statsTicker.C:
			if n := written.Swap(0); n > 0 {
				log.Printf("wrote %d fare history rows", n)
			}
		case <-ctx.Done():
			log.Printf("shutting down")
			return
		}
	}
}
