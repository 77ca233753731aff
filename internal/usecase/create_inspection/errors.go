package create_inspection

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/avtomix/ACS-InspectionService/internal/domain"
)

var (
	// ErrCarNotFound возвращается, когда автомобиль не найден или не опубликован
	ErrCarNotFound = errors.New("create_inspection: car not found")

	// ErrValidation возвращается при нарушении правил заполнения формы
	ErrValidation = errors.New("create_inspection: validation failed")

	// ErrSlotTaken возвращается, когда слот удерживается другой активной заявкой
	ErrSlotTaken = errors.New("create_inspection: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_inspection: internal error")
)

// ValidationError ошибка валидации формы с сообщениями по каждому полю.
// Нарушения независимых полей собираются все сразу, а не только первое.
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

// SlotConflictError конфликт бронирования слота. Несет список свободных
// слотов, пересчитанный ПОСЛЕ проигранной гонки, чтобы вызывающая сторона
// могла предложить клиенту актуальные альтернативы.
type SlotConflictError struct {
	Date           time.Time
	AvailableSlots []domain.SlotLabel
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("%v: date=%s, %d slots remaining",
		ErrSlotTaken, e.Date.Format(domain.DateFormat), len(e.AvailableSlots))
}

// Unwrap позволяет сопоставлять ошибку через errors.Is(err, ErrSlotTaken)
func (e *SlotConflictError) Unwrap() error {
	return ErrSlotTaken
}
