package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Order is the authoritative record kept in Postgres. The id is assigned
// by the database on insert; TotalAmount is always recomputed server-side
// from catalog prices, never taken from the caller.
type Order struct {
	ID          int64       `json:"id"`
	UserID      int64       `json:"user_id"`
	TotalAmount float64     `json:"total_amount"`
	Items       []OrderItem `json:"items"`
}

// OrderItem snapshots the unit price at order time. The price stays stable
// even if the product's catalog price changes later.
type OrderItem struct {
	ProductID int64   `json:"product_id"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Product rows are owned by the catalog; this service only reads prices.
type Product struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Scalar is a wire value that may arrive either quoted or bare
// ({"quantity": 2} and {"quantity": "2"} are both accepted).
type Scalar string

func (s *Scalar) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case string:
		*s = Scalar(t)
	case float64:
		*s = Scalar(strconv.FormatFloat(t, 'f', -1, 64))
	case nil:
		*s = ""
	default:
		return fmt.Errorf("unsupported scalar type %T", v)
	}
	return nil
}

// ItemRequest is a single requested line as received off the wire,
// before any validation or price lookup.
type ItemRequest struct {
	ProductID Scalar `json:"product_id"`
	Quantity  Scalar `json:"quantity"`
}

// PlaceOrderRequest is the payload accepted by the HTTP and Kafka ingest paths.
type PlaceOrderRequest struct {
	UserID int64         `json:"user_id"`
	Items  []ItemRequest `json:"items"`
}

// UserSpend is one row of the highest-spending-users report.
type UserSpend struct {
	UserID int64   `json:"user_id"`
	Total  float64 `json:"total_spent"`
}

// ProductSales is one row of the best-selling-products report.
type ProductSales struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}
