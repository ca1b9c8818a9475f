package kafka

import (
	"testing"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

func TestNewConsumer_ReaderConfig(t *testing.T) {
	c := NewConsumer([]string{"localhost:9092"}, "fare-history-worker", "fare-quotes")
	defer c.Close()

	cfg := c.reader.Config()
	assert.Equal(t, []string{"localhost:9092"}, cfg.Brokers)
	assert.Equal(t, "fare-history-worker", cfg.GroupID)
	assert.Equal(t, "fare-quotes", cfg.Topic)
	// A fresh group must start from the oldest retained quote.
	assert.Equal(t, kafkaGo.FirstOffset, cfg.StartOffset)
}

func TestConsumer_CloseNil(t *testing.T) {
	var c *Consumer
	assert.NoError(t, c.Close())
	assert.NoError(t, (&Consumer{}).Close())
}
