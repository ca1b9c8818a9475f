// Package farehistory is the fire-and-forget analytics sink for computed
// fares. Recording never blocks a quote request and never surfaces an error
// to it; failures are logged and dropped.
package farehistory

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/mtereshin/skyfare/internal/domain"
)

type Recorder interface {
	Record(quote domain.FareQuote)
}

type Publisher interface {
	Publish(ctx context.Context, topic, key string, payload interface{}) error
}

// KafkaRecorder publishes fare quotes asynchronously; a worker consumes the
// topic and appends rows to fare_history.
type KafkaRecorder struct {
	producer Publisher
	topic    string
	timeout  time.Duration
}

func NewKafkaRecorder(producer Publisher, topic string) *KafkaRecorder {
	return &KafkaRecorder{producer: producer, topic: topic, timeout: 5 * time.Second}
}

func (r *KafkaRecorder) Record(quote domain.FareQuote) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()
		key := strconv.FormatInt(quote.FlightID, 10)
		if err := r.producer.Publish(ctx, r.topic, key, quote); err != nil {
			log.Printf("farehistory: record flight %d: %v", quote.FlightID, err)
		}
	}()
}

// NopRecorder drops every quote; used when no broker is configured.
type NopRecorder struct{}

func (NopRecorder) Record(domain.FareQuote) {}

var (
	_ Recorder = (*KafkaRecorder)(nil)
	_ Recorder = NopRecorder{}
)
