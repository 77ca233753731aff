package create_inspection

import (
	"time"

	"github.com/avtomix/ACS-InspectionService/internal/domain"
)

// Request модель запроса на создание заявки на осмотр.
// Телефон и email принимаются в сыром виде и нормализуются при валидации.
type Request struct {
	CarID          int64
	FullName       string
	Phone          string           // сырой ввод клиента
	Email          string           // опционально, пустая строка = не указан
	InspectionDate time.Time        // дата осмотра (без времени)
	InspectionTime domain.SlotLabel // метка слота, например "09:00-10:00"
}

// Response модель ответа с созданной заявкой
type Response struct {
	ID             int64
	CarID          int64
	FullName       string
	Phone          string // канонический формат +7 (XXX) XXX-XX-XX
	Email          *string
	InspectionDate time.Time
	InspectionTime domain.SlotLabel
	Status         string

	// Денормализованные данные автомобиля для страницы подтверждения
	CarBrand string
	CarModel string

	CreatedAt time.Time
}
