package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/TemirB/foodcart/internal/config"
	"github.com/TemirB/foodcart/internal/domain"
	"github.com/TemirB/foodcart/internal/kafka"
	"github.com/TemirB/foodcart/internal/pkg/retry"
)

//go:generate mockgen -source internal/application/handler/handler.go -destination=internal/application/handler/handler_mock_test.go -package=handler

var (
	ErrBadJSON      = errors.New("bad json")
	ErrInvalidOrder = errors.New("invalid order")
	ErrUpsert       = errors.New("upsert failed")
	ErrCircuitOpen  = errors.New("circuit breaker open")
)

type Service interface {
	SubmitOrder(ctx context.Context, order *domain.Order) error
}

type brk interface {
	Allow() error
	Success()
	Failure()
}

// Handler turns order-intake messages into stored orders. Messages that can
// never succeed are reported with kafka.ErrSkip so the consumer commits past
// them.
type Handler struct {
	service     Service
	breaker     brk
	logger      *zap.Logger
	retryPolicy config.Retry
}

func NewHandler(service Service, brk brk, retryPolicy config.Retry, logger *zap.Logger) *Handler {
	return &Handler{
		service:     service,
		breaker:     brk,
		logger:      logger,
		retryPolicy: retryPolicy,
	}
}

// Handle is called by the consumer for a single message. The consumer
// commits the offset itself after a nil return.
func (h *Handler) Handle(ctx context.Context, message kafkago.Message) error {
	var order domain.Order
	if err := json.Unmarshal(message.Value, &order); err != nil {
		h.logger.Error("bad json format",
			zap.Error(err),
			zap.Int("partition", message.Partition),
			zap.Int64("offset", message.Offset),
		)
		return fmt.Errorf("%w: %w", ErrBadJSON, kafka.ErrSkip)
	}
	if err := domain.ValidateOrder(&order); err != nil {
		h.logger.Error("order rejected",
			zap.String("order_uid", order.OrderUID),
			zap.Error(err),
			zap.Int("partition", message.Partition),
			zap.Int64("offset", message.Offset),
		)
		return fmt.Errorf("%w: %v: %w", ErrInvalidOrder, err, kafka.ErrSkip)
	}

	if err := h.breaker.Allow(); err != nil {
		h.logger.Warn("circuit breaker is open",
			zap.Error(err),
			zap.Int("partition", message.Partition),
			zap.Int64("offset", message.Offset),
		)
		return fmt.Errorf("%w: %v", ErrCircuitOpen, err)
	}

	if err := retry.Do(ctx, h.retryPolicy, func() error {
		err := h.service.SubmitOrder(ctx, &order)
		if errors.Is(err, domain.ErrInvalidOrder) {
			return retry.Stop(err)
		}
		return err
	}); err != nil {
		h.logger.Error("upsert failed after retries",
			zap.String("order_uid", order.OrderUID),
			zap.Error(err),
			zap.Int("partition", message.Partition),
			zap.Int64("offset", message.Offset),
		)
		h.breaker.Failure()
		return fmt.Errorf("%w: %v", ErrUpsert, err)
	}

	h.breaker.Success()
	h.logger.Info("successfully processed order",
		zap.String("order_uid", order.OrderUID),
		zap.Int("partition", message.Partition),
		zap.Int64("offset", message.Offset),
		zap.Int("key_bytes", len(message.Key)),
		zap.Int("value_bytes", len(message.Value)),
	)
	return nil
}
