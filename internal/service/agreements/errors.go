package agreements

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrCarNotFound возвращается, когда автомобиль не найден или не опубликован
	ErrCarNotFound = errors.New("agreements: car not found")

	// ErrAgreementNotFound возвращается, когда договор не найден
	ErrAgreementNotFound = errors.New("agreements: agreement not found")

	// ErrValidation возвращается при нарушении правил заполнения формы
	ErrValidation = errors.New("agreements: validation failed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("agreements: internal error")
)

// ValidationError ошибка валидации формы договора с сообщениями по полям
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fmt.Sprintf("%v: %s", ErrValidation, strings.Join(fields, ", "))
}

// Unwrap позволяет сопоставлять ошибку через errors.Is(err, ErrValidation)
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
