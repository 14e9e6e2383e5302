package ports

import (
	"context"

	"github.com/gescar/dealership-system/internal/core/domain"
)

// CreateSaleInput carries all data needed to record a sale.
type CreateSaleInput struct {
	VehicleID     string
	BuyerName     string
	BuyerEmail    string
	SalePrice     float64
	PaymentMethod string
}

// SaleRepository defines persistence operations for sales.
type SaleRepository interface {
	Create(ctx context.Context, s *domain.Sale) (*domain.Sale, error)
	List(ctx context.Context) ([]*domain.Sale, error)
	// TotalRevenue returns the sum of all sale prices and the sale count.
	TotalRevenue(ctx context.Context) (float64, int64, error)
}

// SaleService defines use-case operations for sales.
type SaleService interface {
	CreateSale(ctx context.Context, input CreateSaleInput) (*domain.Sale, error)
	ListSales(ctx context.Context) ([]*domain.Sale, error)
}
