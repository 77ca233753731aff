package create_inspection

import (
	"context"

	createInspection "github.com/avtomix/ACS-InspectionService/internal/usecase/create_inspection"
)

type CreateInspectionUseCase interface {
	Execute(ctx context.Context, req *createInspection.Request) (*createInspection.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
