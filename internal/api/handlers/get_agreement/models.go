package get_agreement

import (
	"time"

	"github.com/avtomix/ACS-InspectionService/internal/service/agreements/models"
)

// AgreementResponse HTTP response model
type AgreementResponse struct {
	ID     int64  `json:"id"`
	Number string `json:"number"`
	CarID  int64  `json:"car_id"`

	BuyerFullName            string  `json:"buyer_full_name"`
	BuyerPassportSeries      string  `json:"buyer_passport_series"`
	BuyerPassportNumber      string  `json:"buyer_passport_number"`
	BuyerPassportIssued      string  `json:"buyer_passport_issued"`
	BuyerRegistrationAddress string  `json:"buyer_registration_address"`
	BuyerPhone               *string `json:"buyer_phone,omitempty"`

	SellerFullName            string  `json:"seller_full_name"`
	SellerPassportSeries      string  `json:"seller_passport_series"`
	SellerPassportNumber      string  `json:"seller_passport_number"`
	SellerPassportIssued      string  `json:"seller_passport_issued"`
	SellerRegistrationAddress string  `json:"seller_registration_address"`
	SellerPhone               *string `json:"seller_phone,omitempty"`

	CarBrand        string  `json:"car_brand"`
	CarModel        string  `json:"car_model"`
	CarYear         int     `json:"car_year"`
	CarVIN          *string `json:"car_vin,omitempty"`
	CarLicensePlate *string `json:"car_license_plate,omitempty"`
	CarPrice        int64   `json:"car_price"`

	CreatedAt string `json:"created_at"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.AgreementResponse) *AgreementResponse {
	return &AgreementResponse{
		ID:                        resp.ID,
		Number:                    resp.Number,
		CarID:                     resp.CarID,
		BuyerFullName:             resp.BuyerFullName,
		BuyerPassportSeries:       resp.BuyerPassportSeries,
		BuyerPassportNumber:       resp.BuyerPassportNumber,
		BuyerPassportIssued:       resp.BuyerPassportIssued,
		BuyerRegistrationAddress:  resp.BuyerRegistrationAddress,
		BuyerPhone:                resp.BuyerPhone,
		SellerFullName:            resp.SellerFullName,
		SellerPassportSeries:      resp.SellerPassportSeries,
		SellerPassportNumber:      resp.SellerPassportNumber,
		SellerPassportIssued:      resp.SellerPassportIssued,
		SellerRegistrationAddress: resp.SellerRegistrationAddress,
		SellerPhone:               resp.SellerPhone,
		CarBrand:                  resp.CarBrand,
		CarModel:                  resp.CarModel,
		CarYear:                   resp.CarYear,
		CarVIN:                    resp.CarVIN,
		CarLicensePlate:           resp.CarLicensePlate,
		CarPrice:                  resp.CarPrice,
		CreatedAt:                 resp.CreatedAt.Format(time.RFC3339),
	}
}
