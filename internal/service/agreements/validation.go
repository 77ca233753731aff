package agreements

import (
	"regexp"
	"strings"

	"github.com/avtomix/ACS-InspectionService/internal/domain"
	"github.com/avtomix/ACS-InspectionService/internal/service/agreements/models"
	"github.com/avtomix/ACS-InspectionService/pkg/ptr"
)

// Сообщения об ошибках валидации по полям формы договора
const (
	msgBuyerNameRequired    = "укажите ФИО покупателя"
	msgPassportSeriesDigits = "серия паспорта должна содержать 4 цифры"
	msgPassportNumberDigits = "номер паспорта должен содержать 6 цифр"
	msgPassportIssued       = "укажите, кем и когда выдан паспорт"
	msgAddressRequired      = "укажите адрес регистрации"
	msgInvalidPhone         = "номер телефона должен содержать 11 цифр"
	msgInvalidVIN           = "VIN должен содержать 17 символов без I, O, Q"
	msgInvalidLicensePlate  = "неверный формат госномера, пример: А123ВС777"
)

var (
	// VIN: 17 символов, без I, O, Q
	vinPattern = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]{17}$`)

	// Российский госномер: буква, три цифры, две буквы, регион из 2-3 цифр.
	// Допускаются кириллические и похожие латинские буквы.
	licensePlatePattern = regexp.MustCompile(`^[АВЕКМНОРСТУХABEKMHOPCTYX]\d{3}[АВЕКМНОРСТУХABEKMHOPCTYX]{2}\d{2,3}$`)

	digitsPattern = regexp.MustCompile(`^\d+$`)
)

// validatedAgreement нормализованные данные покупателя и автомобиля
type validatedAgreement struct {
	BuyerFullName            string
	BuyerPassportSeries      string
	BuyerPassportNumber      string
	BuyerPassportIssued      string
	BuyerRegistrationAddress string
	BuyerPhone               *string
	CarVIN                   *string
	CarLicensePlate          *string
}

// validateRequest проверяет форму договора и нормализует данные.
// Нарушения независимых полей собираются в один ValidationError.
func validateRequest(req *models.CreateAgreementRequest) (*validatedAgreement, *ValidationError) {
	fields := make(map[string]string)

	fullName := strings.TrimSpace(req.BuyerFullName)
	if fullName == "" {
		fields["buyer_full_name"] = msgBuyerNameRequired
	}

	series := strings.TrimSpace(req.BuyerPassportSeries)
	if len(series) != 4 || !digitsPattern.MatchString(series) {
		fields["buyer_passport_series"] = msgPassportSeriesDigits
	}

	number := strings.TrimSpace(req.BuyerPassportNumber)
	if len(number) != 6 || !digitsPattern.MatchString(number) {
		fields["buyer_passport_number"] = msgPassportNumberDigits
	}

	issued := strings.TrimSpace(req.BuyerPassportIssued)
	if issued == "" {
		fields["buyer_passport_issued"] = msgPassportIssued
	}

	address := strings.TrimSpace(req.BuyerRegistrationAddress)
	if address == "" {
		fields["buyer_registration_address"] = msgAddressRequired
	}

	var phone *string
	if req.BuyerPhone != "" {
		normalized, err := domain.NormalizePhone(req.BuyerPhone)
		if err != nil {
			fields["buyer_phone"] = msgInvalidPhone
		} else {
			phone = ptr.Ptr(normalized)
		}
	}

	var vin *string
	if req.CarVIN != "" {
		normalized := strings.ToUpper(strings.TrimSpace(req.CarVIN))
		if !vinPattern.MatchString(normalized) {
			fields["car_vin"] = msgInvalidVIN
		} else {
			vin = ptr.Ptr(normalized)
		}
	}

	var plate *string
	if req.CarLicensePlate != "" {
		normalized := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(req.CarLicensePlate), " ", ""))
		if !licensePlatePattern.MatchString(normalized) {
			fields["car_license_plate"] = msgInvalidLicensePlate
		} else {
			plate = ptr.Ptr(normalized)
		}
	}

	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	return &validatedAgreement{
		BuyerFullName:            fullName,
		BuyerPassportSeries:      series,
		BuyerPassportNumber:      number,
		BuyerPassportIssued:      issued,
		BuyerRegistrationAddress: address,
		BuyerPhone:               phone,
		CarVIN:                   vin,
		CarLicensePlate:          plate,
	}, nil
}
