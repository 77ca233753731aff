package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPhone возвращается, когда номер невозможно привести к каноническому виду
var ErrInvalidPhone = errors.New("phone number must contain 11 digits")

// NormalizePhone приводит телефон к каноническому виду +7 (XXX) XXX-XX-XX.
// Из ввода удаляются все нецифровые символы; междугородний префикс 8
// заменяется на код страны 7, отсутствующий код страны дописывается.
// После нормализации номер обязан содержать ровно 11 цифр.
func NormalizePhone(raw string) (string, error) {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	phone := digits.String()
	if strings.HasPrefix(phone, "8") {
		phone = "7" + phone[1:]
	} else if !strings.HasPrefix(phone, "7") {
		phone = "7" + phone
	}

	if len(phone) != 11 {
		return "", ErrInvalidPhone
	}

	return fmt.Sprintf("+7 (%s) %s-%s-%s", phone[1:4], phone[4:7], phone[7:9], phone[9:11]), nil
}
