package ports

import "context"

// DashboardSummary is the aggregate view served by /dashboard/resumo.
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

// DashboardService computes the dealership summary.
type DashboardService interface {
	Summary(ctx context.Context) (*DashboardSummary, error)
}
