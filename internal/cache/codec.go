package cache

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/akarimov/ordercache/internal/domain"
	"github.com/akarimov/ordercache/internal/pkg/coerce"
)

// orderFields builds the full hash for a live order write, including the
// serialized item snapshot used by point lookups and listings.
func orderFields(o *domain.Order) (map[string]any, error) {
	items := o.Items
	if items == nil {
		items = []domain.OrderItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"id":           o.ID,
		"user_id":      o.UserID,
		"total_amount": o.TotalAmount,
		"items":        string(raw),
	}, nil
}

// summaryFields builds the reduced hash written by the sync path. Item
// detail and sold counters are not reconstructed from the ledger.
func summaryFields(o *domain.Order) map[string]any {
	return map[string]any{
		"id":           o.ID,
		"user_id":      o.UserID,
		"total_amount": o.TotalAmount,
	}
}

// orderFromFields decodes a projection hash. Redis hands every field back
// as text, and user_id may carry a float representation, so numeric fields
// go through tolerant coercion and default to zero when absent or
// malformed. Items default to an empty list.
func orderFromFields(raw map[string]string) domain.Order {
	var o domain.Order
	o.ID, _ = coerce.Int64(raw["id"])
	o.UserID, _ = coerce.Int64(raw["user_id"])
	o.TotalAmount, _ = coerce.Float64(raw["total_amount"])

	o.Items = []domain.OrderItem{}
	if enc := raw["items"]; enc != "" {
		var items []domain.OrderItem
		if err := json.Unmarshal([]byte(enc), &items); err == nil && items != nil {
			o.Items = items
		}
	}
	return o
}

// spendFromFields extracts the (user_id, total_amount) pair needed by the
// spending report. Unlike orderFromFields it fails closed: a hash whose
// fields are missing or unparsable contributes nothing to the report.
func spendFromFields(raw map[string]string) (userID int64, total float64, ok bool) {
	uidRaw, okUID := raw["user_id"]
	totRaw, okTot := raw["total_amount"]
	if !okUID || !okTot {
		return 0, 0, false
	}
	userID, err := coerce.Int64(uidRaw)
	if err != nil {
		return 0, 0, false
	}
	total, err = coerce.Float64(totRaw)
	if err != nil {
		return 0, 0, false
	}
	return userID, total, true
}

// counterFromKey parses "product:<id>:sold_qty" and its counter value.
func counterFromKey(key, val string) (productID, quantity int64, ok bool) {
	parts := strings.Split(key, ":")
	if len(parts) < 3 {
		return 0, 0, false
	}
	productID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	quantity, err = coerce.Int64(val)
	if err != nil {
		return 0, 0, false
	}
	return productID, quantity, true
}
