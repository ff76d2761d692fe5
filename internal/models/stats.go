package models

import "github.com/shopspring/decimal"

func init() {
	// Storefront clients read prices and sales as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Stats is the admin dashboard summary.
type Stats struct {
	CompletedToday     int             `json:"completed_today"`
	CompletedThisWeek  int             `json:"completed_this_week"`
	CompletedThisMonth int             `json:"completed_this_month"`
	SalesToday         decimal.Decimal `json:"sales_today"`
	SalesThisWeek      decimal.Decimal `json:"sales_this_week"`
	SalesThisMonth     decimal.Decimal `json:"sales_this_month"`
	TotalOrders        int             `json:"total_orders"`
	PendingOrders      int             `json:"pending_orders"`
}
