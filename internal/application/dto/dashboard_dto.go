package dto

import "github.com/shopspring/decimal"

// StatusCountDTO cantidad de clientes por estado (solo estados con clientes).
type StatusCountDTO struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// TrendPointDTO punto de la serie de valores de contrato.
type TrendPointDTO struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// DashboardSummaryDTO métricas agregadas del panel general.
type DashboardSummaryDTO struct {
	TotalCustomers     int              `json:"total_customers"`
	PortfolioValue     decimal.Decimal  `json:"portfolio_value"`
	ActiveCount        int              `json:"active_count"`
	OverdueCount       int              `json:"overdue_count"`
	StatusDistribution []StatusCountDTO `json:"status_distribution"`
	ValueTrend         []TrendPointDTO  `json:"value_trend"`
}
