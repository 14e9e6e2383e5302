package client

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// Repair is the wire representation of a repair order.
type Repair struct {
	ID            string    `json:"id"`
	VehicleID     string    `json:"vehicle_id"`
	VehicleModel  string    `json:"vehicle_model"`
	Description   string    `json:"description"`
	EstimatedCost float64   `json:"estimated_cost"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateRepairInput carries the fields for opening a repair order.
type CreateRepairInput struct {
	VehicleID     string  `json:"vehicle_id"`
	Description   string  `json:"description"`
	EstimatedCost float64 `json:"estimated_cost,omitempty"`
}

// ListRepairs returns all repair orders.
func (c *Client) ListRepairs(ctx context.Context) ([]Repair, error) {
	var repairs []Repair
	if err := c.do(ctx, "repairs.list", http.MethodGet, "/reparos", nil, nil, &repairs); err != nil {
		return nil, err
	}
	return repairs, nil
}

// CreateRepair opens a repair order; the vehicle moves to the repair
// status.
func (c *Client) CreateRepair(ctx context.Context, input CreateRepairInput) (*Repair, error) {
	var repair Repair
	if err := c.do(ctx, "repairs.create", http.MethodPost, "/reparos", nil, input, &repair); err != nil {
		return nil, err
	}
	return &repair, nil
}

// UpdateRepairStatus transitions a repair order to a new status.
func (c *Client) UpdateRepairStatus(ctx context.Context, id, status string) (*Repair, error) {
	body := map[string]string{"status": status}
	var repair Repair
	if err := c.do(ctx, "repairs.update_status", http.MethodPatch, "/reparos/"+url.PathEscape(id)+"/status", nil, body, &repair); err != nil {
		return nil, err
	}
	return &repair, nil
}
