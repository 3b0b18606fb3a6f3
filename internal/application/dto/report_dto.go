package dto

import "github.com/shopspring/decimal"

// DashboardResponse datos agregados para el tablero.
type DashboardResponse struct {
	TotalProducts           int64             `json:"totalProducts"`
	TotalCustomers          int64             `json:"totalCustomers"`
	PendingDemands          int64             `json:"pendingDemands"`
	TotalAcceptedOfferValue decimal.Decimal   `json:"totalAcceptedOfferValue"`
	LowStockItems           []StockSummaryRow `json:"lowStockItems"`
	RecentActivities        []RecentActivity  `json:"recentActivities"`
}

// RecentActivity entrada del listado de actividad reciente del tablero.
type RecentActivity struct {
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
}
