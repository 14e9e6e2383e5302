package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Vehicle is the full single-vehicle representation.
type Vehicle struct {
	ID            string               `json:"id"`
	Model         string               `json:"model"`
	Brand         string               `json:"brand"`
	Year          int                  `json:"year"`
	Price         float64              `json:"price"`
	Status        string               `json:"status"`
	Color         string               `json:"color,omitempty"`
	Mileage       int                  `json:"mileage,omitempty"`
	Description   string               `json:"description,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
	StatusHistory []StatusHistoryEntry `json:"status_history,omitempty"`
}

// StatusHistoryEntry records one status change of a vehicle.
type StatusHistoryEntry struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source,omitempty"`
}

// VehicleSummary is the lightweight list-item shape.
type VehicleSummary struct {
	ID      string  `json:"id"`
	Model   string  `json:"model"`
	Brand   string  `json:"brand"`
	Year    int     `json:"year"`
	Price   float64 `json:"price"`
	Status  string  `json:"status"`
	Color   string  `json:"color,omitempty"`
	Mileage int     `json:"mileage,omitempty"`
}

// Pagination describes the page window of a list response.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// VehicleList is the paged result of ListVehicles.
type VehicleList struct {
	Data       []VehicleSummary `json:"data"`
	Pagination Pagination       `json:"pagination"`
}

// VehicleFilter narrows a vehicle listing. Zero values mean "no
// filter".
type VehicleFilter struct {
	Status string
	Year   int
	Brand  string
	Page   int
	Limit  int
}

// CreateVehicleInput carries the fields for creating a vehicle.
type CreateVehicleInput struct {
	Model       string  `json:"model"`
	Brand       string  `json:"brand"`
	Year        int     `json:"year"`
	Price       float64 `json:"price"`
	Color       string  `json:"color,omitempty"`
	Mileage     int     `json:"mileage,omitempty"`
	Description string  `json:"description,omitempty"`
}

// UpdateVehicleInput carries a partial update; nil fields are left
// untouched.
type UpdateVehicleInput struct {
	Model       *string  `json:"model,omitempty"`
	Brand       *string  `json:"brand,omitempty"`
	Year        *int     `json:"year,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Color       *string  `json:"color,omitempty"`
	Mileage     *int     `json:"mileage,omitempty"`
	Description *string  `json:"description,omitempty"`
}

// ListVehicles returns a page of the inventory.
func (c *Client) ListVehicles(ctx context.Context, filter VehicleFilter) (*VehicleList, error) {
	query := url.Values{}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}
	if filter.Year > 0 {
		query.Set("year", strconv.Itoa(filter.Year))
	}
	if filter.Brand != "" {
		query.Set("brand", filter.Brand)
	}
	if filter.Page > 0 {
		query.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}

	var list VehicleList
	if err := c.do(ctx, "vehicles.list", http.MethodGet, "/veiculos", query, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetVehicle fetches one vehicle with its status history.
func (c *Client) GetVehicle(ctx context.Context, id string) (*Vehicle, error) {
	var v Vehicle
	if err := c.do(ctx, "vehicles.get", http.MethodGet, "/veiculos/"+url.PathEscape(id), nil, nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// CreateVehicle adds a vehicle to the inventory.
func (c *Client) CreateVehicle(ctx context.Context, input CreateVehicleInput) (*Vehicle, error) {
	var v Vehicle
	if err := c.do(ctx, "vehicles.create", http.MethodPost, "/veiculos", nil, input, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// UpdateVehicle applies a partial update to a vehicle.
func (c *Client) UpdateVehicle(ctx context.Context, id string, input UpdateVehicleInput) (*Vehicle, error) {
	var v Vehicle
	if err := c.do(ctx, "vehicles.update", http.MethodPut, "/veiculos/"+url.PathEscape(id), nil, input, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// DeleteVehicle removes a vehicle from the inventory.
func (c *Client) DeleteVehicle(ctx context.Context, id string) error {
	return c.do(ctx, "vehicles.delete", http.MethodDelete, "/veiculos/"+url.PathEscape(id), nil, nil, nil)
}
