package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/TemirB/foodcart/internal/config"
	"github.com/TemirB/foodcart/internal/domain"
)

type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
}

func NewWriter(cfg config.Kafka) *kafkago.Writer {
	return &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafkago.Hash{},
		BatchTimeout: 10 * time.Millisecond,
		BatchSize:    100,
	}
}

type FeedOptions struct {
	Rate      int
	Count     int
	Addresses []string
	// product IDs are drawn from 1..MaxProduct
	MaxProduct int64
	MaxItems   int
}

var defaultAddresses = []string{
	"Moscow, Tverskaya 7",
	"Moscow, Arbat 10",
	"Moscow, Leninsky prospekt 32",
	"Moscow, Pyatnitskaya 25",
	"Moscow, Myasnitskaya 13",
}

// Feeder publishes synthetic orders to the intake topic.
type Feeder struct {
	writer Writer
	logger *zap.Logger
	rnd    *rand.Rand
	now    func() time.Time
	sent   atomic.Int64
}

func NewFeeder(w Writer, logger *zap.Logger) *Feeder {
	return &Feeder{
		writer: w,
		logger: logger,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		now:    time.Now,
	}
}

func (f *Feeder) Sent() int64 { return f.sent.Load() }

// Run sends opts.Count orders at opts.Rate per second and returns how many
// were written. It stops early when ctx is done.
func (f *Feeder) Run(ctx context.Context, opts FeedOptions) (int64, error) {
	if opts.Rate <= 0 {
		opts.Rate = 10
	}
	if len(opts.Addresses) == 0 {
		opts.Addresses = defaultAddresses
	}
	if opts.MaxProduct <= 0 {
		opts.MaxProduct = 10
	}
	if opts.MaxItems <= 0 {
		opts.MaxItems = 3
	}
	f.sent.Store(0)

	ticker := time.NewTicker(time.Second / time.Duration(opts.Rate))
	defer ticker.Stop()

	for i := 0; opts.Count <= 0 || i < opts.Count; i++ {
		select {
		case <-ctx.Done():
			f.logger.Info("feed stopped", zap.Int64("total_sent", f.sent.Load()))
			return f.sent.Load(), ctx.Err()
		case <-ticker.C:
		}

		order := f.FakeOrder(opts)
		value, err := json.Marshal(order)
		if err != nil {
			return f.sent.Load(), fmt.Errorf("marshal order: %w", err)
		}
		err = f.writer.WriteMessages(ctx, kafkago.Message{
			Key:   []byte(order.OrderUID),
			Value: value,
			Time:  f.now(),
		})
		if err != nil {
			f.logger.Warn("send order failed", zap.String("order_uid", order.OrderUID), zap.Error(err))
			continue
		}
		f.sent.Add(1)
	}

	f.logger.Info("feed completed", zap.Int64("total_sent", f.sent.Load()))
	return f.sent.Load(), nil
}

func (f *Feeder) FakeOrder(opts FeedOptions) domain.Order {
	n := 1 + f.rnd.Intn(opts.MaxItems)
	items := make([]domain.LineItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, domain.LineItem{
			ProductID: 1 + f.rnd.Int63n(opts.MaxProduct),
			Quantity:  1 + f.rnd.Intn(3),
		})
	}
	return domain.Order{
		OrderUID:    uuid.NewString(),
		Firstname:   "Test",
		Lastname:    fmt.Sprintf("Customer%d", f.rnd.Intn(1000)),
		Phonenumber: fmt.Sprintf("+7%d", 9000000000+f.rnd.Int63n(1000000000)),
		Address:     opts.Addresses[f.rnd.Intn(len(opts.Addresses))],
		Status:      domain.StatusUnprocessed,
		Items:       items,
		CreatedAt:   f.now().UTC(),
	}
}
