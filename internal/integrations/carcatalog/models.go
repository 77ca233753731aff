package carcatalog

// Car модель автомобиля из сервиса каталога
type Car struct {
	ID           int64   `json:"id"`
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	Year         int     `json:"year"`
	Price        int64   `json:"price"`
	Color        string  `json:"color"`
	VIN          *string `json:"vin,omitempty"`
	LicensePlate *string `json:"license_plate,omitempty"`
	IsPublished  bool    `json:"is_published"`
	IsSold       bool    `json:"is_sold"`
}

// ErrorResponse модель ошибки от сервиса каталога
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
