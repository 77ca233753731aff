package create_inspection

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/avtomix/ACS-InspectionService/internal/domain"
)

// Сообщения об ошибках валидации по полям формы
const (
	msgFullNameRequired = "укажите ФИО"
	msgFullNameTooLong  = "ФИО слишком длинное"
	msgInvalidEmail     = "некорректный email"
	msgInvalidPhone     = "номер телефона должен содержать 11 цифр"
	msgDateRequired     = "укажите дату осмотра"
	msgDateInPast       = "нельзя выбрать прошедшую дату"
	msgWeekendClosed    = "автосалон не работает по выходным, выберите будний день"
	msgUnknownSlot      = "некорректное время осмотра"
)

var validate = validator.New()

// validatedRequest результат успешной валидации: нормализованная заявка,
// готовая к проверке конфликтов
type validatedRequest struct {
	FullName       string
	Phone          string // канонический формат
	Email          *string
	InspectionDate time.Time
	InspectionTime domain.SlotLabel
}

// validateRequest проверяет правила заполнения формы и нормализует данные.
// Нарушения независимых полей собираются в один ValidationError.
// Занятость слота здесь не проверяется - это зона ответственности
// транзакционной проверки при создании заявки.
func validateRequest(req *Request, now time.Time) (*validatedRequest, *ValidationError) {
	fields := make(map[string]string)

	// Дата: строго сегодня или позже, только будние дни
	switch {
	case req.InspectionDate.IsZero():
		fields["inspection_date"] = msgDateRequired
	case isDateInPast(req.InspectionDate, now):
		fields["inspection_date"] = msgDateInPast
	case isWeekend(req.InspectionDate):
		fields["inspection_date"] = msgWeekendClosed
	}

	// Слот обязан входить в фиксированный каталог
	if !domain.IsValidSlot(req.InspectionTime) {
		fields["inspection_time"] = msgUnknownSlot
	}

	// Телефон нормализуется к виду +7 (XXX) XXX-XX-XX
	phone, err := domain.NormalizePhone(req.Phone)
	if err != nil {
		fields["phone"] = msgInvalidPhone
	}

	if err := validate.Var(req.FullName, "required"); err != nil {
		fields["full_name"] = msgFullNameRequired
	} else if err := validate.Var(req.FullName, "max=200"); err != nil {
		fields["full_name"] = msgFullNameTooLong
	}

	var email *string
	if req.Email != "" {
		if err := validate.Var(req.Email, "email"); err != nil {
			fields["email"] = msgInvalidEmail
		} else {
			email = &req.Email
		}
	}

	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	return &validatedRequest{
		FullName:       req.FullName,
		Phone:          phone,
		Email:          email,
		InspectionDate: truncateToDay(req.InspectionDate),
		InspectionTime: req.InspectionTime,
	}, nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	return truncateToDay(date).Before(truncateToDay(now))
}

// isWeekend проверяет, что дата приходится на субботу или воскресенье
func isWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
