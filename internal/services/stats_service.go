package services

import (
	"context"
	"time"

	"storefront/internal/models"
	"storefront/internal/repositories"

	"github.com/shopspring/decimal"
)

// StatsService computes the admin dashboard figures from the live order store.
type StatsService struct {
	orderRepo repositories.OrderRepository
	loc       *time.Location
	now       func() time.Time
}

// NewStatsService creates a StatsService bucketing in loc. now defaults to time.Now.
func NewStatsService(orderRepo repositories.OrderRepository, loc *time.Location, now func() time.Time) *StatsService {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &StatsService{orderRepo: orderRepo, loc: loc, now: now}
}

// GetStats reads one snapshot of all orders and aggregates it.
func (s *StatsService) GetStats(ctx context.Context) (models.Stats, error) {
	orders, err := s.orderRepo.GetAll(ctx)
	if err != nil {
		return models.Stats{}, err
	}
	return ComputeStats(orders, s.now(), s.loc), nil
}

// ComputeStats aggregates orders relative to now in loc. Completed orders are
// bucketed by their creation time.
func ComputeStats(orders []models.Order, now time.Time, loc *time.Location) models.Stats {
	now = now.In(loc)
	nowYear, nowMonth, nowDay := now.Date()
	nowISOYear, nowISOWeek := now.ISOWeek()

	stats := models.Stats{
		SalesToday:     decimal.Zero,
		SalesThisWeek:  decimal.Zero,
		SalesThisMonth: decimal.Zero,
		TotalOrders:    len(orders),
	}

	for _, o := range orders {
		switch o.Status {
		case models.OrderStatusPending:
			stats.PendingOrders++
			continue
		case models.OrderStatusCompleted:
		default:
			continue
		}

		created := o.CreatedAt.In(loc)
		y, m, d := created.Date()
		if y == nowYear && m == nowMonth {
			stats.CompletedThisMonth++
			stats.SalesThisMonth = stats.SalesThisMonth.Add(o.TotalPrice)
			if d == nowDay {
				stats.CompletedToday++
				stats.SalesToday = stats.SalesToday.Add(o.TotalPrice)
			}
		}
		if wy, w := created.ISOWeek(); wy == nowISOYear && w == nowISOWeek {
			stats.CompletedThisWeek++
			stats.SalesThisWeek = stats.SalesThisWeek.Add(o.TotalPrice)
		}
	}
	return stats
}
