package database

import (
	"context"
	"fmt"

	"github.com/akarimov/ordercache/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	pool *pgxpool.Pool
}

var _ domain.Ledger = (*Repo)(nil)

func New(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pgx ping: %w", err)
	}
	return pool, nil
}

// CreateOrder inserts the order row and its items in one transaction and
// returns the id assigned by the database. Any item insert failure rolls
// back the whole order; partial orders are never visible.
func (r *Repo) CreateOrder(ctx context.Context, o *domain.Order) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var id int64
	if err := tx.QueryRow(ctx, `
		INSERT INTO orders (user_id, total_amount)
		VALUES ($1, $2)
		RETURNING id
	`, o.UserID, o.TotalAmount).Scan(&id); err != nil {
		return 0, err
	}

	batch := &pgx.Batch{}
	for _, it := range o.Items {
		batch.Queue(`
			INSERT INTO order_items (order_id, product_id, quantity, unit_price)
			VALUES ($1, $2, $3, $4)
		`, id, it.ProductID, it.Quantity, it.UnitPrice)
	}
	if br := tx.SendBatch(ctx, batch); br != nil {
		if err := br.Close(); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	o.ID = id
	return id, nil
}

// DeleteOrder removes the order and its items. Returns the number of order
// rows deleted (0 or 1); a missing id is not an error.
func (r *Repo) DeleteOrder(ctx context.Context, id int64) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM order_items WHERE order_id=$1`, id); err != nil {
		return 0, err
	}
	tag, err := tx.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// ProductPrices resolves current catalog prices for exactly the given ids
// with a single query. Ids absent from the catalog are absent from the map.
func (r *Repo) ProductPrices(ctx context.Context, ids []int64) (map[int64]float64, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, price FROM products WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prices := make(map[int64]float64, len(ids))
	for rows.Next() {
		var (
			id    int64
			price float64
		)
		if err := rows.Scan(&id, &price); err != nil {
			return nil, err
		}
		prices[id] = price
	}
	return prices, rows.Err()
}

// RecentOrders returns up to limit orders, newest first by id. Item detail
// is not loaded; this feeds the cache rebuild which stores summaries only.
func (r *Repo) RecentOrders(ctx context.Context, limit int) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, total_amount FROM orders
		ORDER BY id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.TotalAmount); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
