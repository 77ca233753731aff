package create_inspection

import (
	"context"
	"time"

	"github.com/avtomix/ACS-InspectionService/internal/domain"
	"github.com/avtomix/ACS-InspectionService/internal/integrations/carcatalog"
)

// InspectionRepository интерфейс репозитория заявок на осмотр
type InspectionRepository interface {
	Create(ctx context.Context, req *domain.InspectionRequest) (*domain.InspectionRequest, error)
	BusySlots(ctx context.Context, date time.Time) ([]domain.SlotLabel, error)
}

// CarCatalogClient интерфейс клиента каталога автомобилей
type CarCatalogClient interface {
	GetPublishedCar(ctx context.Context, carID int64) (*carcatalog.Car, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
