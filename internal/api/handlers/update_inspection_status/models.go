package update_inspection_status

import (
	"time"

	"github.com/avtomix/ACS-InspectionService/internal/domain"
	"github.com/avtomix/ACS-InspectionService/internal/service/inspections/models"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// InspectionResponse HTTP response model с обновленной заявкой
type InspectionResponse struct {
	ID             int64   `json:"id"`
	CarID          int64   `json:"car_id"`
	FullName       string  `json:"full_name"`
	Phone          string  `json:"phone"`
	Email          *string `json:"email,omitempty"`
	InspectionDate string  `json:"inspection_date"`
	InspectionTime string  `json:"inspection_time"`
	Status         string  `json:"status"`
	CarBrand       string  `json:"car_brand"`
	CarModel       string  `json:"car_model"`
	Notes          *string `json:"notes,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.InspectionResponse) *InspectionResponse {
	return &InspectionResponse{
		ID:             resp.ID,
		CarID:          resp.CarID,
		FullName:       resp.FullName,
		Phone:          resp.Phone,
		Email:          resp.Email,
		InspectionDate: resp.InspectionDate.Format(domain.DateFormat),
		InspectionTime: resp.InspectionTime,
		Status:         resp.Status,
		CarBrand:       resp.CarBrand,
		CarModel:       resp.CarModel,
		Notes:          resp.Notes,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
	}
}
