package client

import (
	"context"
	"net/http"
	"time"
)

// Sale is the wire representation of a recorded sale.
type Sale struct {
	ID            string    `json:"id"`
	VehicleID     string    `json:"vehicle_id"`
	VehicleModel  string    `json:"vehicle_model"`
	BuyerName     string    `json:"buyer_name"`
	BuyerEmail    string    `json:"buyer_email"`
	SalePrice     float64   `json:"sale_price"`
	PaymentMethod string    `json:"payment_method"`
	Date          time.Time `json:"date"`
}

// CreateSaleInput carries the fields for recording a sale.
type CreateSaleInput struct {
	VehicleID     string  `json:"vehicle_id"`
	BuyerName     string  `json:"buyer_name"`
	BuyerEmail    string  `json:"buyer_email"`
	SalePrice     float64 `json:"sale_price"`
	PaymentMethod string  `json:"payment_method"`
}

// ListSales returns all recorded sales.
func (c *Client) ListSales(ctx context.Context) ([]Sale, error) {
	var sales []Sale
	if err := c.do(ctx, "sales.list", http.MethodGet, "/vendas", nil, nil, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

// CreateSale records a sale; the sold vehicle leaves the available
// inventory.
func (c *Client) CreateSale(ctx context.Context, input CreateSaleInput) (*Sale, error) {
	var sale Sale
	if err := c.do(ctx, "sales.create", http.MethodPost, "/vendas", nil, input, &sale); err != nil {
		return nil, err
	}
	return &sale, nil
}
