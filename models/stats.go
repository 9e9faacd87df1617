package models

import (
	"context"

	"github.com/shopspring/decimal"
)

// DashboardStats aggregates the derived financials across every product.
// totalImportCost is the full purchasing outlay, sold or not.
type DashboardStats struct {
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
	TotalCost       decimal.Decimal `json:"totalCost"`
	TotalProfit     decimal.Decimal `json:"totalProfit"`
	TotalImportCost decimal.Decimal `json:"totalImportCost"`
}

func GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	products, err := ListAllProducts(ctx)
	if err != nil {
		return nil, err
	}

	stats := DashboardStats{
		TotalRevenue:    decimal.Zero,
		TotalCost:       decimal.Zero,
		TotalProfit:     decimal.Zero,
		TotalImportCost: decimal.Zero,
	}
	for _, p := range products {
		stats.TotalRevenue = stats.TotalRevenue.Add(p.Revenue)
		stats.TotalCost = stats.TotalCost.Add(p.Cost)
		stats.TotalProfit = stats.TotalProfit.Add(p.Profit)
		stats.TotalImportCost = stats.TotalImportCost.Add(
			p.ImportPrice.Mul(decimal.NewFromInt(int64(p.ImportQuantity))))
	}
	return &stats, nil
}
