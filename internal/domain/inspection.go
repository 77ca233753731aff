package domain

import "time"

// InspectionStatus статус заявки на осмотр
type InspectionStatus string

const (
	StatusPending   InspectionStatus = "pending"
	StatusConfirmed InspectionStatus = "confirmed"
	StatusCancelled InspectionStatus = "cancelled"
	StatusCompleted InspectionStatus = "completed"
)

// InspectionRequest заявка на осмотр автомобиля.
// Записи никогда не удаляются физически - жизненный цикл управляется статусом.
type InspectionRequest struct {
	ID             int64
	CarID          int64
	FullName       string
	Phone          string // канонический формат +7 (XXX) XXX-XX-XX
	Email          *string
	InspectionDate time.Time
	InspectionTime SlotLabel
	Status         InspectionStatus

	// Денормализованные данные автомобиля для отображения в истории
	CarBrand string
	CarModel string

	Notes     *string // примечания администратора
	CreatedAt time.Time
}

// IsActive возвращает true, если заявка удерживает слот.
// Только активные заявки учитываются при проверке занятости слота.
func (r *InspectionRequest) IsActive() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// IsTerminal возвращает true для конечных статусов, из которых нет переходов
func (s InspectionStatus) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// allowedTransitions белый список переходов статусов.
// Переходы выполняет только администратор.
var allowedTransitions = map[InspectionStatus][]InspectionStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled, StatusCompleted},
}

// CanTransition проверяет допустимость перехода статуса
func CanTransition(from, to InspectionStatus) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsKnownStatus проверяет, что значение является одним из известных статусов
func IsKnownStatus(s InspectionStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// InspectionsFilter фильтр для выборки заявок администратором
type InspectionsFilter struct {
	Date   *time.Time        // заявки на конкретную дату (опционально)
	Status *InspectionStatus // фильтр по статусу (опционально)
}
