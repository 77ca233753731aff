package get_agreement

import (
	"context"

	"github.com/avtomix/ACS-InspectionService/internal/service/agreements/models"
)

type AgreementsService interface {
	GetByID(ctx context.Context, id int64) (*models.AgreementResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
