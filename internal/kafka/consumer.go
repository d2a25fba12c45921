package kafka

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/akarimov/ordercache/internal/config"
	"github.com/akarimov/ordercache/internal/observability"
	"github.com/akarimov/ordercache/internal/pkg/pool"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/segmentio/kafka-go"
)

type Handle func(context.Context, kafka.Message) error

type Consumer struct {
	reader  *kafka.Reader
	parts   map[int]*pool.Pool
	workers int
	handle  Handle
	seen    *lru.Cache[string, struct{}]
	logger  *zap.Logger
	metrics observability.Metrics
}

// NewConsumer reads order-placement messages and fans them out to one
// worker pool per partition. Delivery is at-least-once; an LRU of recently
// processed message keys absorbs redeliveries so an order is not placed
// twice for the same key.
func NewConsumer(cfg config.Kafka, handle Handle, metrics observability.Metrics, logger *zap.Logger) (*Consumer, error) {
	seen, err := lru.New[string, struct{}](cfg.DedupeSize)
	if err != nil {
		return nil, err
	}
	reader := kafka.NewReader(
		kafka.ReaderConfig{
			Brokers:     cfg.Brokers,
			Topic:       cfg.Topic,
			GroupID:     cfg.Group,
			StartOffset: kafka.LastOffset,
			MaxWait:     500 * time.Millisecond,
		},
	)
	return &Consumer{
		reader:  reader,
		parts:   make(map[int]*pool.Pool),
		workers: cfg.Workers,
		handle:  handle,
		seen:    seen,
		logger:  logger,
		metrics: metrics,
	}, nil
}

func (c *Consumer) ensure(p int) {
	if _, ok := c.parts[p]; !ok {
		if c.workers < 1 {
			c.workers = 1
		}
		c.parts[p] = pool.New(c.workers)
	}
}

func (c *Consumer) Run(ctx context.Context) error {
	defer func() {
		for _, p := range c.parts {
			p.Close()
			p.Wait()
		}
		_ = c.reader.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			m, err := c.reader.ReadMessage(ctx)
			if err != nil {
				return err
			}

			if len(m.Key) > 0 {
				if _, dup := c.seen.Get(string(m.Key)); dup {
					c.logger.Info("duplicate message skipped",
						zap.ByteString("key", m.Key),
						zap.Int("partition", m.Partition),
						zap.Int64("offset", m.Offset),
					)
					if err := c.reader.CommitMessages(ctx, m); err != nil {
						c.logger.Error("kafka commit error", zap.Error(err))
					}
					continue
				}
			}

			c.ensure(m.Partition)
			msg := m

			c.parts[m.Partition].Submit(func() {
				t0 := time.Now()
				if err := c.handle(ctx, msg); err != nil {
					c.metrics.ObserveConsume(sinceMs(t0), false)
					c.logger.Error("kafka handler error",
						zap.Int("partition", msg.Partition),
						zap.Int64("offset", msg.Offset),
						zap.Error(err),
					)
					return
				}
				c.metrics.ObserveConsume(sinceMs(t0), true)

				if len(msg.Key) > 0 {
					c.seen.Add(string(msg.Key), struct{}{})
				}
				if err := c.reader.CommitMessages(ctx, msg); err != nil {
					c.logger.Error("kafka commit error",
						zap.Int("partition", msg.Partition),
						zap.Int64("offset", msg.Offset),
						zap.Error(err),
					)
				}
			})
		}
	}
}

func sinceMs(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000.0
}
