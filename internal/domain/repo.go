package domain

import (
	"context"
)

// Ledger is the transactional system of record for orders and catalog prices.
type Ledger interface {
	CreateOrder(ctx context.Context, order *Order) (int64, error)
	DeleteOrder(ctx context.Context, id int64) (int64, error)
	ProductPrices(ctx context.Context, ids []int64) (map[int64]float64, error)
	RecentOrders(ctx context.Context, limit int) ([]Order, error)
}

// Projection is the derived, rebuildable view kept in the cache store.
type Projection interface {
	AddOrder(ctx context.Context, order *Order) error
	RemoveOrder(ctx context.Context, id int64) error
	GetOrder(ctx context.Context, id int64) (*Order, error)
	RecentOrders(ctx context.Context, limit int) ([]Order, error)
	BulkLoad(ctx context.Context, orders []Order) error
	OrderCount(ctx context.Context) (int, error)
	SpendTotals(ctx context.Context) (map[int64]float64, error)
	SoldQuantities(ctx context.Context) (map[int64]int64, error)
}
