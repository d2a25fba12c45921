package service

import (
	"context"
	"sort"
	"time"

	"github.com/akarimov/ordercache/internal/domain"
)

// TopSpenders ranks users by their summed order totals across the whole
// projection index, descending. Ties break on ascending user id.
func (s *Service) TopSpenders(ctx context.Context, limit int) ([]domain.UserSpend, error) {
	t0 := time.Now()
	totals, err := s.projection.SpendTotals(ctx)
	if err != nil {
		return nil, err
	}

	report := make([]domain.UserSpend, 0, len(totals))
	for userID, total := range totals {
		report = append(report, domain.UserSpend{UserID: userID, Total: total})
	}
	sort.Slice(report, func(i, j int) bool {
		if report[i].Total != report[j].Total {
			return report[i].Total > report[j].Total
		}
		return report[i].UserID < report[j].UserID
	})
	report = truncate(report, limit)

	s.metrics.ObserveReport("top_spenders", sinceMs(t0))
	return report, nil
}

// BestSellers ranks products by cumulative sold quantity, descending.
// Deleting an order does not lower these numbers. Ties break on ascending
// product id.
func (s *Service) BestSellers(ctx context.Context, limit int) ([]domain.ProductSales, error) {
	t0 := time.Now()
	quantities, err := s.projection.SoldQuantities(ctx)
	if err != nil {
		return nil, err
	}

	report := make([]domain.ProductSales, 0, len(quantities))
	for productID, qty := range quantities {
		report = append(report, domain.ProductSales{ProductID: productID, Quantity: qty})
	}
	sort.Slice(report, func(i, j int) bool {
		if report[i].Quantity != report[j].Quantity {
			return report[i].Quantity > report[j].Quantity
		}
		return report[i].ProductID < report[j].ProductID
	})
	report = truncate(report, limit)

	s.metrics.ObserveReport("best_sellers", sinceMs(t0))
	return report, nil
}

func truncate[T any](s []T, limit int) []T {
	if limit >= 0 && len(s) > limit {
		return s[:limit]
	}
	return s
}
