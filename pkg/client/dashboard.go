package client

import (
	"context"
	"net/http"
)

// DashboardSummary aggregates inventory, sales and repair figures.
type DashboardSummary struct {
	VehiclesInStock   int64   `json:"vehicles_in_stock"`
	VehiclesSold      int64   `json:"vehicles_sold"`
	VehiclesInRepair  int64   `json:"vehicles_in_repair"`
	SalesCount        int64   `json:"sales_count"`
	SalesTotal        float64 `json:"sales_total"`
	RepairsInProgress int64   `json:"repairs_in_progress"`
	RepairsCompleted  int64   `json:"repairs_completed"`
	RepairsTotalCost  float64 `json:"repairs_total_cost"`
}

// GetDashboardSummary fetches the aggregate dealership figures.
func (c *Client) GetDashboardSummary(ctx context.Context) (*DashboardSummary, error) {
	var summary DashboardSummary
	if err := c.do(ctx, "dashboard.summary", http.MethodGet, "/dashboard/resumo", nil, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
