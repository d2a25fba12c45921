package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/akarimov/ordercache/internal/config"
	"github.com/akarimov/ordercache/internal/domain"
	"github.com/akarimov/ordercache/internal/pkg/retry"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

//go:generate mockgen -source internal/kafka/handler.go -destination=internal/kafka/handler_mock_test.go -package=kafka

var (
	ErrBadMessage  = errors.New("bad order message")
	ErrPlace       = errors.New("place order failed")
	ErrCircuitOpen = errors.New("circuit breaker open")
)

type OrderPlacer interface {
	PlaceOrder(ctx context.Context, userID int64, items []domain.ItemRequest) (int64, error)
}

type brk interface {
	Allow() error
	Success()
	Failure()
}

type Handler struct {
	service     OrderPlacer
	breaker     brk
	logger      *zap.Logger
	retryPolicy config.Retry
}

func NewHandler(service OrderPlacer, breaker brk, retryPolicy config.Retry, logger *zap.Logger) *Handler {
	return &Handler{
		service:     service,
		breaker:     breaker,
		logger:      logger,
		retryPolicy: retryPolicy,
	}
}

// Handle processes a single order-placement message. The consumer commits
// the offset itself after Handle returns nil; a permanently invalid
// payload also returns an error so the poison message is surfaced in logs
// rather than silently dropped.
func (h *Handler) Handle(ctx context.Context, message kafkago.Message) error {
	if err := h.breaker.Allow(); err != nil {
		h.logger.Warn("circuit breaker is open",
			zap.Error(err),
			zap.Int("partition", message.Partition),
			zap.Int64("offset", message.Offset),
		)
		return fmt.Errorf("%w: %v", ErrCircuitOpen, err)
	}

	var req domain.PlaceOrderRequest
	if err := json.Unmarshal(message.Value, &req); err != nil {
		h.logger.Error("bad json format",
			zap.Error(err),
			zap.Int("partition", message.Partition),
			zap.Int64("offset", message.Offset),
		)
		h.breaker.Failure()
		return ErrBadMessage
	}

	_, err := h.service.PlaceOrder(ctx, req.UserID, req.Items)
	if err != nil && domain.IsInvalid(err) {
		// Validation errors never succeed on retry.
		h.logger.Error("invalid order message",
			zap.Error(err),
			zap.Int("partition", message.Partition),
			zap.Int64("offset", message.Offset),
		)
		h.breaker.Failure()
		return fmt.Errorf("%w: %v", ErrBadMessage, err)
	}
	if err != nil {
		err = retry.Do(ctx, h.retryPolicy, func() error {
			_, e := h.service.PlaceOrder(ctx, req.UserID, req.Items)
			return e
		})
	}
	if err != nil {
		h.logger.Error("place order failed after retries",
			zap.Int64("user_id", req.UserID),
			zap.Error(err),
			zap.Int("partition", message.Partition),
			zap.Int64("offset", message.Offset),
		)
		h.breaker.Failure()
		return fmt.Errorf("%w: %v", ErrPlace, err)
	}

	h.breaker.Success()
	return nil
}
