package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/akarimov/ordercache/internal/domain"
	"github.com/akarimov/ordercache/internal/observability"
	"go.uber.org/zap"
)

//go:generate mockgen -source internal/application/service/service.go -destination=internal/application/service/service_mock_test.go -package=service

type Storage interface {
	CreateOrder(ctx context.Context, order *domain.Order) (int64, error)
	DeleteOrder(ctx context.Context, id int64) (int64, error)
	ProductPrices(ctx context.Context, ids []int64) (map[int64]float64, error)
	RecentOrders(ctx context.Context, limit int) ([]domain.Order, error)
}

type Projection interface {
	AddOrder(ctx context.Context, order *domain.Order) error
	RemoveOrder(ctx context.Context, id int64) error
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	RecentOrders(ctx context.Context, limit int) ([]domain.Order, error)
	BulkLoad(ctx context.Context, orders []domain.Order) error
	OrderCount(ctx context.Context) (int, error)
	SpendTotals(ctx context.Context) (map[int64]float64, error)
	SoldQuantities(ctx context.Context) (map[int64]int64, error)
}

// Service coordinates the two stores: Postgres is authoritative, the Redis
// projection is derived and best-effort. A projection write that fails
// after a successful commit is logged and counted, never surfaced; the
// sync path is the mechanism that repairs drift.
type Service struct {
	storage    Storage
	projection Projection
	logger     *zap.Logger
	metrics    observability.Metrics
	syncLimit  int
}

func NewService(storage Storage, projection Projection, logger *zap.Logger, metrics observability.Metrics, syncLimit int) *Service {
	if syncLimit <= 0 {
		syncLimit = 1
	}
	return &Service{
		storage:    storage,
		projection: projection,
		logger:     logger,
		metrics:    metrics,
		syncLimit:  syncLimit,
	}
}

func (s *Service) PlaceOrder(ctx context.Context, userID int64, items []domain.ItemRequest) (int64, error) {
	id, _, err := s.PlaceOrderWithStats(ctx, userID, items)
	return id, err
}

// PlaceOrderWithStats validates the request, persists the order
// transactionally and projects it into the cache. Validation happens
// strictly before any store mutation; the projection write happens
// strictly after the commit.
func (s *Service) PlaceOrderWithStats(ctx context.Context, userID int64, items []domain.ItemRequest) (int64, PlaceStats, error) {
	var st PlaceStats

	if userID == 0 || len(items) == 0 {
		return 0, st, domain.ErrInvalidInput
	}

	productIDs := make([]int64, 0, len(items))
	for _, it := range items {
		pid, err := strconv.ParseInt(strings.TrimSpace(string(it.ProductID)), 10, 64)
		if err != nil {
			return 0, st, fmt.Errorf("%w: %q", domain.ErrInvalidProductID, it.ProductID)
		}
		productIDs = append(productIDs, pid)
	}

	quantities := make([]float64, 0, len(items))
	for _, it := range items {
		qty, err := strconv.ParseFloat(strings.TrimSpace(string(it.Quantity)), 64)
		if err != nil || qty <= 0 {
			return 0, st, fmt.Errorf("%w: %q", domain.ErrInvalidQuantity, it.Quantity)
		}
		quantities = append(quantities, qty)
	}

	// One batched catalog query; prices are captured at this instant and
	// snapshotted into the order items.
	prices, err := s.storage.ProductPrices(ctx, productIDs)
	if err != nil {
		return 0, st, err
	}

	order := &domain.Order{UserID: userID, Items: make([]domain.OrderItem, 0, len(items))}
	for i, pid := range productIDs {
		price, ok := prices[pid]
		if !ok {
			return 0, st, fmt.Errorf("%w: %d", domain.ErrUnknownProduct, pid)
		}
		order.TotalAmount += price * quantities[i]
		order.Items = append(order.Items, domain.OrderItem{
			ProductID: pid,
			Quantity:  quantities[i],
			UnitPrice: price,
		})
	}

	t0 := time.Now()
	id, err := s.storage.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Error("order insert failed",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return 0, st, err
	}
	st.DBWriteMs = sinceMs(t0)

	tCache := time.Now()
	st.CacheOK = true
	if err := s.projection.AddOrder(ctx, order); err != nil {
		// The ledger commit already succeeded and is the authoritative
		// outcome; the missing projection is repaired by a later sync.
		st.CacheOK = false
		s.metrics.IncCacheWriteFailure()
		s.logger.Warn("cache projection write failed, order kept in ledger only",
			zap.Int64("order_id", id),
			zap.Error(err),
		)
	}
	st.CacheWriteMs = sinceMs(tCache)

	s.metrics.ObservePlace(st.DBWriteMs, st.CacheWriteMs)
	s.logger.Info("order placed",
		zap.Int64("order_id", id),
		zap.Int64("user_id", userID),
		zap.Float64("total_amount", order.TotalAmount),
		zap.Float64("db_write_ms", st.DBWriteMs),
		zap.Bool("cache_ok", st.CacheOK),
	)
	return id, st, nil
}

// DeleteOrder removes an order from the ledger and, if a row was actually
// deleted, drops its cache projection. A missing id returns 0 rather than
// an error. Sold-quantity counters keep their value.
func (s *Service) DeleteOrder(ctx context.Context, id int64) (int64, error) {
	t0 := time.Now()
	deleted, err := s.storage.DeleteOrder(ctx, id)
	if err != nil {
		s.logger.Error("order delete failed",
			zap.Int64("order_id", id),
			zap.Error(err),
		)
		return 0, err
	}
	s.metrics.ObserveDelete(sinceMs(t0))

	if deleted == 0 {
		return 0, nil
	}

	if err := s.projection.RemoveOrder(ctx, id); err != nil {
		s.metrics.IncCacheWriteFailure()
		s.logger.Warn("cache projection removal failed",
			zap.Int64("order_id", id),
			zap.Error(err),
		)
	}

	s.logger.Info("order deleted", zap.Int64("order_id", id))
	return deleted, nil
}

// SyncCache rebuilds the projection from the ledger when the cache holds
// no orders; a non-empty cache is assumed synchronized and left alone.
// Returns the number of orders present in the cache afterwards.
func (s *Service) SyncCache(ctx context.Context) (int, error) {
	t0 := time.Now()

	existing, err := s.projection.OrderCount(ctx)
	if err != nil {
		return 0, err
	}
	if existing > 0 {
		s.logger.Info("cache already contains orders, skipping sync",
			zap.Int("orders", existing),
		)
		return existing, nil
	}

	orders, err := s.storage.RecentOrders(ctx, s.syncLimit)
	if err != nil {
		return 0, err
	}
	if len(orders) > 0 {
		if err := s.projection.BulkLoad(ctx, orders); err != nil {
			return 0, err
		}
	}

	s.metrics.ObserveSync(len(orders), sinceMs(t0))
	s.logger.Info("cache synchronized from ledger",
		zap.Int("orders", len(orders)),
	)
	return existing + len(orders), nil
}

func (s *Service) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	o, _, err := s.GetOrderWithStats(ctx, id)
	return o, err
}

// GetOrderWithStats serves the point lookup from the projection only.
func (s *Service) GetOrderWithStats(ctx context.Context, id int64) (*domain.Order, LookupStats, error) {
	var st LookupStats

	t0 := time.Now()
	o, err := s.projection.GetOrder(ctx, id)
	st.CacheMs = sinceMs(t0)
	st.Hit = err == nil
	s.metrics.ObserveLookup(st.CacheMs, st.Hit)

	if err != nil {
		return nil, st, err
	}
	return o, st, nil
}

// RecentOrders lists up to limit orders from the projection, newest first.
func (s *Service) RecentOrders(ctx context.Context, limit int) ([]domain.Order, error) {
	if limit <= 0 {
		return []domain.Order{}, nil
	}
	return s.projection.RecentOrders(ctx, limit)
}

func sinceMs(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000.0
}
