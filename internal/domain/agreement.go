package domain

import "time"

// PurchaseAgreement заявка на договор купли-продажи.
// Финализированная запись с буквальными значениями полей - контракт
// для пайплайна формирования документа, сам рендеринг вне этого сервиса.
type PurchaseAgreement struct {
	ID     int64
	Number string // номер договора (uuid)
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

	// Денормализованные данные автомобиля на момент оформления
	CarBrand        string
	CarModel        string
	CarYear         int
	CarVIN          *string
	CarLicensePlate *string
	CarPrice        int64

	CreatedAt time.Time
}
