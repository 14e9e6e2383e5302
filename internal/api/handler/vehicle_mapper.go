package handler

import (
	"github.com/gescar/dealership-system/internal/core/domain"
	"github.com/gescar/dealership-system/internal/core/ports"
)

func toCreateVehicleInput(req createVehicleRequest) ports.CreateVehicleInput {
	return ports.CreateVehicleInput{
		Model:       req.Model,
		Brand:       req.Brand,
		Year:        req.Year,
		Price:       req.Price,
		Color:       req.Color,
		Mileage:     req.Mileage,
		Description: req.Description,
	}
}

func toUpdateVehicleInput(req updateVehicleRequest) ports.UpdateVehicleInput {
	return ports.UpdateVehicleInput{
		Model:       req.Model,
		Brand:       req.Brand,
		Year:        req.Year,
		Price:       req.Price,
		Color:       req.Color,
		Mileage:     req.Mileage,
		Description: req.Description,
	}
}

func toVehicleResponse(v *domain.Vehicle) vehicleResponse {
	history := make([]statusHistoryItemResponse, len(v.StatusHistory))
	for i, e := range v.StatusHistory {
		history[i] = statusHistoryItemResponse{
			Status:    string(e.Status),
			Timestamp: e.Timestamp.UTC(),
			Source:    e.Source,
		}
	}
	return vehicleResponse{
		ID:            v.ID,
		Model:         v.Model,
		Brand:         v.Brand,
		Year:          v.Year,
		Price:         v.Price,
		Status:        string(v.Status),
		Color:         v.Color,
		Mileage:       v.Mileage,
		Description:   v.Description,
		CreatedAt:     v.CreatedAt.UTC(),
		UpdatedAt:     v.UpdatedAt.UTC(),
		StatusHistory: history,
	}
}

func toListVehiclesResponse(r *ports.ListVehiclesResult) listVehiclesResponse {
	items := make([]vehicleSummaryResponse, len(r.Items))
	for i, v := range r.Items {
		items[i] = vehicleSummaryResponse{
			ID:      v.ID,
			Model:   v.Model,
			Brand:   v.Brand,
			Year:    v.Year,
			Price:   v.Price,
			Status:  string(v.Status),
			Color:   v.Color,
			Mileage: v.Mileage,
		}
	}
	return listVehiclesResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.Limit,
			TotalPages: r.TotalPages,
		},
	}
}
