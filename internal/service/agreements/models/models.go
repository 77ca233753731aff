package models

import (
	"time"

	"github.com/avtomix/ACS-InspectionService/internal/domain"
)

// CreateAgreementRequest запрос на оформление договора купли-продажи.
// Данные покупателя приходят из формы, данные продавца и автомобиля
// подставляет сервис.
type CreateAgreementRequest struct {
	CarID                    int64
	BuyerFullName            string
	BuyerPassportSeries      string
	BuyerPassportNumber      string
	BuyerPassportIssued      string
	BuyerRegistrationAddress string
	BuyerPhone               string // опционально, сырой ввод
	CarVIN                   string // опционально
	CarLicensePlate          string // опционально
}

// AgreementResponse финализированная запись договора - контракт для
// пайплайна формирования документа
type AgreementResponse struct {
	ID     int64
	Number string
	CarID  int64

	BuyerFullName            string
	BuyerPassportSeries      string
	BuyerPassportNumber      string
	BuyerPassportIssued      string
	BuyerRegistrationAddress string
	BuyerPhone               *string

	SellerFullName            string
	SellerPassportSeries      string
	SellerPassportNumber      string
	SellerPassportIssued      string
	SellerRegistrationAddress string
	SellerPhone               *string

	CarBrand        string
	CarModel        string
	CarYear         int
	CarVIN          *string
	CarLicensePlate *string
	CarPrice        int64

	CreatedAt time.Time
}

// FromDomainAgreement конвертирует доменную модель в ответ сервиса
func FromDomainAgreement(agr *domain.PurchaseAgreement) *AgreementResponse {
	return &AgreementResponse{
		ID:                        agr.ID,
		Number:                    agr.Number,
		CarID:                     agr.CarID,
		BuyerFullName:             agr.BuyerFullName,
		BuyerPassportSeries:       agr.BuyerPassportSeries,
		BuyerPassportNumber:       agr.BuyerPassportNumber,
		BuyerPassportIssued:       agr.BuyerPassportIssued,
		BuyerRegistrationAddress:  agr.BuyerRegistrationAddress,
		BuyerPhone:                agr.BuyerPhone,
		SellerFullName:            agr.SellerFullName,
		SellerPassportSeries:      agr.SellerPassportSeries,
		SellerPassportNumber:      agr.SellerPassportNumber,
		SellerPassportIssued:      agr.SellerPassportIssued,
		SellerRegistrationAddress: agr.SellerRegistrationAddress,
		SellerPhone:               agr.SellerPhone,
		CarBrand:                  agr.CarBrand,
		CarModel:                  agr.CarModel,
		CarYear:                   agr.CarYear,
		CarVIN:                    agr.CarVIN,
		CarLicensePlate:           agr.CarLicensePlate,
		CarPrice:                  agr.CarPrice,
		CreatedAt:                 agr.CreatedAt,
	}
}
