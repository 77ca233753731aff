package list_inspections

import (
	"context"

	"github.com/avtomix/ACS-InspectionService/internal/service/inspections/models"
)

type InspectionsService interface {
	List(ctx context.Context, req *models.ListRequest) (*models.InspectionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
