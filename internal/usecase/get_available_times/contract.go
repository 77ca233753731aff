package get_available_times

import (
	"context"
	"time"

	"github.com/avtomix/ACS-InspectionService/internal/domain"
)

// InspectionRepository интерфейс репозитория заявок на осмотр
type InspectionRepository interface {
	// BusySlots возвращает слоты, занятые активными заявками на дату
	BusySlots(ctx context.Context, date time.Time) ([]domain.SlotLabel, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
