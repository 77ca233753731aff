package create_inspection

import (
	"time"

	"github.com/avtomix/ACS-InspectionService/internal/domain"
	createInspection "github.com/avtomix/ACS-InspectionService/internal/usecase/create_inspection"
)

// CreateInspectionRequest HTTP request model
type CreateInspectionRequest struct {
	FullName       string `json:"full_name"`
	Phone          string `json:"phone"`
	Email          string `json:"email,omitempty"`
	InspectionDate string `json:"inspection_date"` // "2026-09-01"
	InspectionTime string `json:"inspection_time"` // "09:00-10:00"
}

// CarInfo данные автомобиля для страницы подтверждения
type CarInfo struct {
	ID    int64  `json:"id"`
	Brand string `json:"brand"`
	Model string `json:"model"`
}

// InspectionInfo созданная заявка на осмотр
type InspectionInfo struct {
	ID             int64   `json:"id"`
	FullName       string  `json:"full_name"`
	Phone          string  `json:"phone"`
	Email          *string `json:"email,omitempty"`
	InspectionDate string  `json:"inspection_date"`
	InspectionTime string  `json:"inspection_time"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"created_at"`
}

// CreateInspectionResponse HTTP response model
type CreateInspectionResponse struct {
	Car               CarInfo        `json:"car"`
	InspectionRequest InspectionInfo `json:"inspection_request"`
}

// SlotConflictResponse тело ответа 409: слот занят, приложен актуальный
// список свободных слотов на эту дату
type SlotConflictResponse struct {
	Code           int      `json:"code"`
	Message        string   `json:"message"`
	Date           string   `json:"date"`
	AvailableTimes []string `json:"available_times"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateInspectionRequest) ToUseCaseRequest(carID int64) (*createInspection.Request, error) {
	// Парсим дату; пустая или кривая дата отлавливается здесь,
	// содержательные проверки (прошлое, выходные) - в use case
	inspectionDate, err := time.Parse(domain.DateFormat, r.InspectionDate)
	if err != nil {
		return nil, err
	}

	return &createInspection.Request{
		CarID:          carID,
		FullName:       r.FullName,
		Phone:          r.Phone,
		Email:          r.Email,
		InspectionDate: inspectionDate,
		InspectionTime: domain.SlotLabel(r.InspectionTime),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createInspection.Response) *CreateInspectionResponse {
	return &CreateInspectionResponse{
		Car: CarInfo{
			ID:    resp.CarID,
			Brand: resp.CarBrand,
			Model: resp.CarModel,
		},
		InspectionRequest: InspectionInfo{
			ID:             resp.ID,
			FullName:       resp.FullName,
			Phone:          resp.Phone,
			Email:          resp.Email,
			InspectionDate: resp.InspectionDate.Format(domain.DateFormat),
			InspectionTime: string(resp.InspectionTime),
			Status:         resp.Status,
			CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		},
	}
}
