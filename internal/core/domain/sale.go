package domain

import (
	"errors"
	"time"
)

var ErrSaleNotFound = errors.New("sale not found")

// Sale records a completed vehicle sale.
type Sale struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	VehicleID     string    `json:"vehicle_id" bson:"vehicle_id"`
	VehicleModel  string    `json:"vehicle_model" bson:"vehicle_model"`
	BuyerName     string    `json:"buyer_name" bson:"buyer_name"`
	BuyerEmail    string    `json:"buyer_email" bson:"buyer_email"`
	SalePrice     float64   `json:"sale_price" bson:"sale_price"`
	PaymentMethod string    `json:"payment_method" bson:"payment_method"`
	Date          time.Time `json:"date" bson:"date"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}
