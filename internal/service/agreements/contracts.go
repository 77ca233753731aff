package agreements

import (
	"context"

	"github.com/avtomix/ACS-InspectionService/internal/domain"
	"github.com/avtomix/ACS-InspectionService/internal/integrations/carcatalog"
)

// AgreementRepository интерфейс репозитория договоров
type AgreementRepository interface {
	Create(ctx context.Context, agr *domain.PurchaseAgreement) (*domain.PurchaseAgreement, error)
	GetByID(ctx context.Context, id int64) (*domain.PurchaseAgreement, error)
}

// CarCatalogClient интерфейс клиента каталога автомобилей
type CarCatalogClient interface {
	GetPublishedCar(ctx context.Context, carID int64) (*carcatalog.Car, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// SellerInfo реквизиты продавца, подставляемые в каждый договор.
// Загружаются из конфигурации при старте.
type SellerInfo struct {
	FullName            string
	PassportSeries      string
	PassportNumber      string
	PassportIssued      string
	RegistrationAddress string
	Phone               string
}
