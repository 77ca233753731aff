package inspections

import (
	"context"

	"github.com/avtomix/ACS-InspectionService/internal/domain"
)

// InspectionRepository интерфейс репозитория заявок на осмотр
type InspectionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.InspectionRequest, error)
	List(ctx context.Context, filter domain.InspectionsFilter) ([]*domain.InspectionRequest, error)
	UpdateStatus(ctx context.Context, id int64, status domain.InspectionStatus) error
	UpdateNotes(ctx context.Context, id int64, notes string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
