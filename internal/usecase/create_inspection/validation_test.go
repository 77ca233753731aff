package create_inspection

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avtomix/ACS-InspectionService/internal/domain"
)

// Понедельник, 10:00
var testNow = time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)

func validRequest() *Request {
	return &Request{
		CarID:          1,
		FullName:       "Иванов Иван Иванович",
		Phone:          "89991234567",
		Email:          "ivanov@example.com",
		InspectionDate: time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC), // вторник
		InspectionTime: "09:00-10:00",
	}
}

func TestValidateRequest(t *testing.T) {
	t.Run("Valid request", func(t *testing.T) {
		validated, vErr := validateRequest(validRequest(), testNow)

		require.Nil(t, vErr)
		assert.Equal(t, "Иванов Иван Иванович", validated.FullName)
		assert.Equal(t, "+7 (999) 123-45-67", validated.Phone)
		require.NotNil(t, validated.Email)
		assert.Equal(t, "ivanov@example.com", *validated.Email)
		assert.Equal(t, domain.SlotLabel("09:00-10:00"), validated.InspectionTime)
	})

	t.Run("Today is allowed", func(t *testing.T) {
		req := validRequest()
		req.InspectionDate = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

		_, vErr := validateRequest(req, testNow)
		assert.Nil(t, vErr)
	})

	t.Run("Yesterday is rejected", func(t *testing.T) {
		req := validRequest()
		req.InspectionDate = time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC) // прошедшая пятница

		_, vErr := validateRequest(req, testNow)
		require.NotNil(t, vErr)
		assert.Equal(t, msgDateInPast, vErr.Fields["inspection_date"])
	})

	t.Run("Saturday is rejected", func(t *testing.T) {
		req := validRequest()
		req.InspectionDate = time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

		_, vErr := validateRequest(req, testNow)
		require.NotNil(t, vErr)
		assert.Equal(t, msgWeekendClosed, vErr.Fields["inspection_date"])
	})

	t.Run("Sunday is rejected", func(t *testing.T) {
		req := validRequest()
		req.InspectionDate = time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)

		_, vErr := validateRequest(req, testNow)
		require.NotNil(t, vErr)
		assert.Equal(t, msgWeekendClosed, vErr.Fields["inspection_date"])
	})

	t.Run("Zero date is rejected", func(t *testing.T) {
		req := validRequest()
		req.InspectionDate = time.Time{}

		_, vErr := validateRequest(req, testNow)
		require.NotNil(t, vErr)
		assert.Equal(t, msgDateRequired, vErr.Fields["inspection_date"])
	})

	t.Run("Unknown slot is rejected", func(t *testing.T) {
		req := validRequest()
		req.InspectionTime = "08:00-09:00"

		_, vErr := validateRequest(req, testNow)
		require.NotNil(t, vErr)
		assert.Equal(t, msgUnknownSlot, vErr.Fields["inspection_time"])
	})

	t.Run("Invalid phone is rejected", func(t *testing.T) {
		req := validRequest()
		req.Phone = "123"

		_, vErr := validateRequest(req, testNow)
		require.NotNil(t, vErr)
		assert.Equal(t, msgInvalidPhone, vErr.Fields["phone"])
	})

	t.Run("Empty full name is rejected", func(t *testing.T) {
		req := validRequest()
		req.FullName = ""

		_, vErr := validateRequest(req, testNow)
		require.NotNil(t, vErr)
		assert.Equal(t, msgFullNameRequired, vErr.Fields["full_name"])
	})

	t.Run("Too long full name is rejected", func(t *testing.T) {
		req := validRequest()
		req.FullName = strings.Repeat("и", domain.MaxFullNameLength+1)

		_, vErr := validateRequest(req, testNow)
		require.NotNil(t, vErr)
		assert.Equal(t, msgFullNameTooLong, vErr.Fields["full_name"])
	})

	t.Run("Empty email is optional", func(t *testing.T) {
		req := validRequest()
		req.Email = ""

		validated, vErr := validateRequest(req, testNow)
		require.Nil(t, vErr)
		assert.Nil(t, validated.Email)
	})

	t.Run("Invalid email is rejected", func(t *testing.T) {
		req := validRequest()
		req.Email = "not-an-email"

		_, vErr := validateRequest(req, testNow)
		require.NotNil(t, vErr)
		assert.Equal(t, msgInvalidEmail, vErr.Fields["email"])
	})

	t.Run("All violations are collected at once", func(t *testing.T) {
		req := &Request{
			CarID:          1,
			FullName:       "",
			Phone:          "123",
			Email:          "not-an-email",
			InspectionDate: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC), // суббота
			InspectionTime: "bad-slot",
		}

		_, vErr := validateRequest(req, testNow)
		require.NotNil(t, vErr)
		assert.Len(t, vErr.Fields, 5)
		assert.ErrorIs(t, vErr, ErrValidation)
	})

	t.Run("Date is truncated to day", func(t *testing.T) {
		req := validRequest()
		req.InspectionDate = time.Date(2026, 9, 8, 15, 30, 45, 0, time.UTC)

		validated, vErr := validateRequest(req, testNow)
		require.Nil(t, vErr)
		assert.Equal(t, time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC), validated.InspectionDate)
	})
}
