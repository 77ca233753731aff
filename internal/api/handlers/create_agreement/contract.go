package create_agreement

import (
	"context"

	"github.com/avtomix/ACS-InspectionService/internal/service/agreements/models"
)

type AgreementsService interface {
	Create(ctx context.Context, carID int64, req *models.CreateAgreementRequest) (*models.AgreementResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
