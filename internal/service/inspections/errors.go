package inspections

import "errors"

var (
	// ErrInspectionNotFound возвращается, когда заявка не найдена
	ErrInspectionNotFound = errors.New("inspections: inspection request not found")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса.
	// Заявка при этом не изменяется.
	ErrInvalidTransition = errors.New("inspections: invalid status transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("inspections: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("inspections: internal error")
)
