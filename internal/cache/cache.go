// Package cache maintains the denormalized order projection in Redis:
// one hash per order, a global sorted index scored by order id, and a
// monotonic sold-quantity counter per product. Everything here is derived
// from Postgres and rebuildable via the sync path, except the counters,
// which keep cumulative history and are never decremented.
package cache

import (
	"context"
	"fmt"

	"github.com/akarimov/ordercache/internal/domain"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	indexKey       = "orders:index"
	orderKeyPrefix = "order:"
	soldQtyPattern = "product:*:sold_qty"
	scanBatch      = 500
)

func orderKey(id int64) string { return fmt.Sprintf("%s%d", orderKeyPrefix, id) }

func soldQtyKey(productID int64) string {
	return fmt.Sprintf("product:%d:sold_qty", productID)
}

type Cache struct {
	rdb    *redis.Client
	logger *zap.Logger
}

var _ domain.Projection = (*Cache)(nil)

func New(rdb *redis.Client, logger *zap.Logger) *Cache {
	return &Cache{rdb: rdb, logger: logger}
}

// AddOrder writes the full projection for a freshly committed order: the
// hash, the index entry and the per-product counters, in one pipeline so
// the commands reach Redis as a single round trip. The pipeline is not a
// transaction with the Postgres commit; callers treat failures here as
// best-effort.
func (c *Cache) AddOrder(ctx context.Context, o *domain.Order) error {
	fields, err := orderFields(o)
	if err != nil {
		return err
	}
	key := orderKey(o.ID)

	pipe := c.rdb.Pipeline()
	pipe.HSet(ctx, key, fields)
	pipe.ZAdd(ctx, indexKey, redis.Z{Score: float64(o.ID), Member: key})
	for _, it := range o.Items {
		pipe.IncrBy(ctx, soldQtyKey(it.ProductID), int64(it.Quantity))
	}
	_, err = pipe.Exec(ctx)
	return err
}

// RemoveOrder drops the hash and index entry. Sold-quantity counters are
// left untouched: they record cumulative units sold, not live inventory.
// Removing an order that was never projected is a no-op.
func (c *Cache) RemoveOrder(ctx context.Context, id int64) error {
	key := orderKey(id)
	pipe := c.rdb.Pipeline()
	pipe.ZRem(ctx, indexKey, key)
	pipe.Del(ctx, key)
	_, err := pipe.Exec(ctx)
	return err
}

// GetOrder reads a single projection hash. A missing hash yields
// domain.ErrNotFound; the ledger is never consulted on this path.
func (c *Cache) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	raw, err := c.rdb.HGetAll(ctx, orderKey(id)).Result()
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, domain.ErrNotFound
	}
	o := orderFromFields(raw)
	return &o, nil
}

// RecentOrders walks the sorted index newest-first and decodes up to limit
// hashes. Index entries whose hash has vanished (a racing delete) are
// skipped silently.
func (c *Cache) RecentOrders(ctx context.Context, limit int) ([]domain.Order, error) {
	stop := int64(limit) - 1
	if stop < 0 {
		stop = 0
	}
	keys, err := c.rdb.ZRevRange(ctx, indexKey, 0, stop).Result()
	if err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(keys))
	for _, key := range keys {
		raw, err := c.rdb.HGetAll(ctx, key).Result()
		if err != nil {
			return nil, err
		}
		if len(raw) == 0 {
			continue
		}
		orders = append(orders, orderFromFields(raw))
	}
	return orders, nil
}

// BulkLoad writes summary projections (no item detail, no counters) for a
// cache rebuild, all in one pipeline.
func (c *Cache) BulkLoad(ctx context.Context, orders []domain.Order) error {
	pipe := c.rdb.Pipeline()
	for i := range orders {
		o := orders[i]
		key := orderKey(o.ID)
		pipe.HSet(ctx, key, summaryFields(&o))
		pipe.ZAdd(ctx, indexKey, redis.Z{Score: float64(o.ID), Member: key})
	}
	_, err := pipe.Exec(ctx)
	return err
}

// OrderCount counts order hashes via incremental SCAN. Non-zero means the
// projection is considered synchronized.
func (c *Cache) OrderCount(ctx context.Context) (int, error) {
	var (
		cursor uint64
		count  int
	)
	for {
		keys, next, err := c.rdb.Scan(ctx, cursor, orderKeyPrefix+"*", scanBatch).Result()
		if err != nil {
			return 0, err
		}
		count += len(keys)
		if next == 0 {
			return count, nil
		}
		cursor = next
	}
}

// SpendTotals accumulates total_amount per user over the entire index.
// Entries whose user id or total fail to parse are skipped rather than
// failing the whole report.
func (c *Cache) SpendTotals(ctx context.Context) (map[int64]float64, error) {
	keys, err := c.rdb.ZRevRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	totals := make(map[int64]float64)
	for _, key := range keys {
		raw, err := c.rdb.HGetAll(ctx, key).Result()
		if err != nil {
			return nil, err
		}
		if len(raw) == 0 {
			continue
		}
		userID, total, ok := spendFromFields(raw)
		if !ok {
			c.logger.Debug("skipping unparsable order hash", zap.String("key", key))
			continue
		}
		totals[userID] += total
	}
	return totals, nil
}

// SoldQuantities enumerates every sold-quantity counter via SCAN (the scan
// may be served in many batches) and batch-fetches the values in one
// pipeline. Keys or values that fail to parse are skipped.
func (c *Cache) SoldQuantities(ctx context.Context) (map[int64]int64, error) {
	var (
		cursor uint64
		keys   []string
	)
	for {
		batch, next, err := c.rdb.Scan(ctx, cursor, soldQtyPattern, scanBatch).Result()
		if err != nil {
			return nil, err
		}
		keys = append(keys, batch...)
		if next == 0 {
			break
		}
		cursor = next
	}
	if len(keys) == 0 {
		return map[int64]int64{}, nil
	}

	pipe := c.rdb.Pipeline()
	cmds := make([]*redis.StringCmd, len(keys))
	for i, key := range keys {
		cmds[i] = pipe.Get(ctx, key)
	}
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, err
	}

	quantities := make(map[int64]int64, len(keys))
	for i, key := range keys {
		val, err := cmds[i].Result()
		if err != nil {
			continue
		}
		pid, qty, ok := counterFromKey(key, val)
		if !ok {
			c.logger.Debug("skipping unparsable counter", zap.String("key", key))
			continue
		}
		quantities[pid] = qty
	}
	return quantities, nil
}
