package handler

import "time"

// --- Request types ---

type createVehicleRequest struct {
	Model       string  `json:"model"       validate:"required"`
	Brand       string  `json:"brand"       validate:"required"`
	Year        int     `json:"year"        validate:"required,gt=1900"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Color       string  `json:"color"`
	Mileage     int     `json:"mileage"     validate:"omitempty,gte=0"`
	Description string  `json:"description"`
}

type updateVehicleRequest struct {
	Model       *string  `json:"model"`
	Brand       *string  `json:"brand"`
	Year        *int     `json:"year"        validate:"omitempty,gt=1900"`
	Price       *float64 `json:"price"       validate:"omitempty,gt=0"`
	Color       *string  `json:"color"`
	Mileage     *int     `json:"mileage"     validate:"omitempty,gte=0"`
	Description *string  `json:"description"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// internal domain changes.

type statusHistoryItemResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source,omitempty"`
}

type vehicleResponse struct {
	ID            string                      `json:"id"`
	Model         string                      `json:"model"`
	Brand         string                      `json:"brand"`
	Year          int                         `json:"year"`
	Price         float64                     `json:"price"`
	Status        string                      `json:"status"`
	Color         string                      `json:"color,omitempty"`
	Mileage       int                         `json:"mileage,omitempty"`
	Description   string                      `json:"description,omitempty"`
	CreatedAt     time.Time                   `json:"created_at"`
	UpdatedAt     time.Time                   `json:"updated_at"`
	StatusHistory []statusHistoryItemResponse `json:"status_history,omitempty"`
}

// vehicleSummaryResponse is the lightweight item used in list responses.
// It intentionally omits status_history to keep payloads small.
type vehicleSummaryResponse struct {
	ID      string  `json:"id"`
	Model   string  `json:"model"`
	Brand   string  `json:"brand"`
	Year    int     `json:"year"`
	Price   float64 `json:"price"`
	Status  string  `json:"status"`
	Color   string  `json:"color,omitempty"`
	Mileage int     `json:"mileage,omitempty"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listVehiclesResponse struct {
	Data       []vehicleSummaryResponse `json:"data"`
	Pagination paginationResponse       `json:"pagination"`
}
