package carcatalog

import "errors"

var (
	// ErrCarNotFound возвращается, когда автомобиль не найден в каталоге
	ErrCarNotFound = errors.New("carcatalog client: car not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("carcatalog client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("carcatalog client: invalid response")
)
