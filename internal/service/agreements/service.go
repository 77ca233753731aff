package agreements

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/avtomix/ACS-InspectionService/internal/domain"
	agreementRepo "github.com/avtomix/ACS-InspectionService/internal/infra/storage/agreement"
	catalogClient "github.com/avtomix/ACS-InspectionService/internal/integrations/carcatalog"
	"github.com/avtomix/ACS-InspectionService/internal/service/agreements/models"
	"github.com/avtomix/ACS-InspectionService/pkg/ptr"
)

// Service сервис оформления договоров купли-продажи.
// Собирает финализированную запись с буквальными значениями полей
// (покупатель из формы, продавец из конфигурации, автомобиль из каталога);
// формирование самого документа выполняется отдельным пайплайном.
type Service struct {
	agreementRepo AgreementRepository
	catalogClient CarCatalogClient
	seller        SellerInfo
	logger        Logger
}

// NewService создает новый экземпляр сервиса договоров
func NewService(
	agreementRepo AgreementRepository,
	catalogClient CarCatalogClient,
	seller SellerInfo,
	logger Logger,
) *Service {
	return &Service{
		agreementRepo: agreementRepo,
		catalogClient: catalogClient,
		seller:        seller,
		logger:        logger,
	}
}

// Create оформляет договор для автомобиля carID
func (s *Service) Create(ctx context.Context, carID int64, req *models.CreateAgreementRequest) (*models.AgreementResponse, error) {
	s.logger.Info("CreateAgreement: car=%d, buyer=%s", carID, req.BuyerFullName)

	validated, vErr := validateRequest(req)
	if vErr != nil {
		s.logger.Warn("CreateAgreement: validation failed: %v", vErr)
		return nil, vErr
	}

	car, err := s.catalogClient.GetPublishedCar(ctx, carID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrCarNotFound) {
			s.logger.Warn("CreateAgreement: car id=%d not found or not listed", carID)
			return nil, ErrCarNotFound
		}
		s.logger.Error("CreateAgreement: failed to get car id=%d: %v", carID, err)
		return nil, fmt.Errorf("%w: failed to get car: %v", ErrInternal, err)
	}

	// VIN и госномер из формы имеют приоритет над данными каталога
	vin := validated.CarVIN
	if vin == nil {
		vin = car.VIN
	}
	plate := validated.CarLicensePlate
	if plate == nil {
		plate = car.LicensePlate
	}

	var sellerPhone *string
	if s.seller.Phone != "" {
		sellerPhone = ptr.Ptr(s.seller.Phone)
	}

	agreement := &domain.PurchaseAgreement{
		Number: uuid.NewString(),
		CarID:  car.ID,

		BuyerFullName:            validated.BuyerFullName,
		BuyerPassportSeries:      validated.BuyerPassportSeries,
		BuyerPassportNumber:      validated.BuyerPassportNumber,
		BuyerPassportIssued:      validated.BuyerPassportIssued,
		BuyerRegistrationAddress: validated.BuyerRegistrationAddress,
		BuyerPhone:               validated.BuyerPhone,

		SellerFullName:            s.seller.FullName,
		SellerPassportSeries:      s.seller.PassportSeries,
		SellerPassportNumber:      s.seller.PassportNumber,
		SellerPassportIssued:      s.seller.PassportIssued,
		SellerRegistrationAddress: s.seller.RegistrationAddress,
		SellerPhone:               sellerPhone,

		CarBrand:        car.Brand,
		CarModel:        car.Model,
		CarYear:         car.Year,
		CarVIN:          vin,
		CarLicensePlate: plate,
		CarPrice:        car.Price,
	}

	created, err := s.agreementRepo.Create(ctx, agreement)
	if err != nil {
		s.logger.Error("CreateAgreement: failed to create agreement for car id=%d: %v", carID, err)
		return nil, fmt.Errorf("%w: failed to create agreement: %v", ErrInternal, err)
	}

	s.logger.Info("CreateAgreement: successfully created agreement id=%d number=%s", created.ID, created.Number)
	return models.FromDomainAgreement(created), nil
}

// GetByID получает договор по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AgreementResponse, error) {
	agreement, err := s.agreementRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, agreementRepo.ErrAgreementNotFound) {
			s.logger.Warn("GetByID: agreement id=%d not found", id)
			return nil, ErrAgreementNotFound
		}
		s.logger.Error("GetByID: repository error for agreement id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAgreement(agreement), nil
}
