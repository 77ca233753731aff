package update_inspection_status

import (
	"context"

	"github.com/avtomix/ACS-InspectionService/internal/service/inspections/models"
)

type InspectionsService interface {
	UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) error
	GetByID(ctx context.Context, id int64) (*models.InspectionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
