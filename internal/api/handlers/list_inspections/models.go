package list_inspections

import (
	"time"

	"github.com/avtomix/ACS-InspectionService/internal/domain"
	"github.com/avtomix/ACS-InspectionService/internal/service/inspections/models"
)

// InspectionItem заявка на осмотр в списке
type InspectionItem struct {
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

// ListInspectionsResponse HTTP response model
type ListInspectionsResponse struct {
	Inspections []*InspectionItem `json:"inspections"`
	Total       int               `json:"total"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.InspectionListResponse) *ListInspectionsResponse {
	inspections := make([]*InspectionItem, len(resp.Inspections))
	for i, insp := range resp.Inspections {
		inspections[i] = &InspectionItem{
			ID:             insp.ID,
			CarID:          insp.CarID,
			FullName:       insp.FullName,
			Phone:          insp.Phone,
			Email:          insp.Email,
			InspectionDate: insp.InspectionDate.Format(domain.DateFormat),
			InspectionTime: insp.InspectionTime,
			Status:         insp.Status,
			CarBrand:       insp.CarBrand,
			CarModel:       insp.CarModel,
			Notes:          insp.Notes,
			CreatedAt:      insp.CreatedAt.Format(time.RFC3339),
		}
	}
	return &ListInspectionsResponse{
		Inspections: inspections,
		Total:       resp.Total,
	}
}
