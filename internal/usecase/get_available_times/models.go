package get_available_times

import (
	"time"

	"github.com/avtomix/ACS-InspectionService/internal/domain"
)

// Request модель запроса доступных слотов
type Request struct {
	Date time.Time // дата осмотра (без времени)
}

// Response модель ответа со списком свободных слотов в порядке каталога
type Response struct {
	Date           time.Time
	AvailableTimes []domain.SlotLabel
}
